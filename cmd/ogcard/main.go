package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/ogcard/internal/cli"
	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/renderer"
	"github.com/linuxmatters/ogcard/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Output  string `short:"o" type:"path" help:"Output PNG file" default:"${output}" placeholder:"path"`
	Preview bool   `help:"Show a colour preview of the card in the terminal"`
	Version bool   `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ogcard"),
		kong.Description(cli.AppDescription),
		kong.Vars{"version": version, "output": config.DefaultOutputPath},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	_ = ctx // Kong context available for future use

	generateCard(CLI.Output, CLI.Preview)
}

func generateCard(outputPath string, preview bool) {
	cli.PrintBanner()

	card := config.Default()
	resolver := fonts.NewResolver(nil)

	start := time.Now()
	result, err := renderer.GenerateCard(outputPath, card, resolver)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	elapsed := time.Since(start)

	cli.PrintSuccess(fmt.Sprintf("Saved: %s (%s)", result.Path, cli.FormatDimensions(result.Width, result.Height)))

	// Faces are resolved lazily, so sources are only known after rendering
	cli.PrintSection("Fonts")
	for _, style := range fonts.Styles {
		source := resolver.Source(style)
		cli.PrintInfo(style.String(), source)
		if source == fonts.SourceBasic {
			cli.PrintWarning(fmt.Sprintf("no scalable %s font found; text is drawn with the 7x13 bitmap font", style))
		}
	}

	size := "unknown"
	if info, err := os.Stat(result.Path); err == nil {
		size = cli.FormatBytes(info.Size())
	}
	cli.PrintCardSummary(result.Path, cli.FormatDimensions(result.Width, result.Height), size, cli.FormatDuration(elapsed))

	if preview {
		fmt.Print(ui.RenderCardPreview(result.Image, ui.DefaultPreviewConfig()))
	}
}
