package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func renderHelp(t *testing.T, cli any) string {
	t.Helper()

	var buf bytes.Buffer
	parser := kong.Must(cli,
		kong.Name("ogcard"),
		kong.Writers(&buf, &buf),
	)

	ctx, err := kong.Trace(parser, nil)
	if err != nil {
		t.Fatalf("failed to build kong context: %v", err)
	}

	printer := StyledHelpPrinter(kong.HelpOptions{Compact: true})
	if err := printer(kong.HelpOptions{Compact: true}, ctx); err != nil {
		t.Fatalf("help printer failed: %v", err)
	}

	return buf.String()
}

func TestStyledHelpPrinterListsFlags(t *testing.T) {
	var cli struct {
		Output  string `short:"o" type:"path" help:"Output PNG file" default:"public/og-image.png" placeholder:"path"`
		Preview bool   `help:"Show a colour preview of the card in the terminal"`
		Version bool   `help:"Show version information"`
	}

	out := renderHelp(t, &cli)

	abs, err := filepath.Abs("public/og-image.png")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Usage:",
		"ogcard [flags]",
		"-h, --help",
		"-o, --output=PATH",
		"(default: public/og-image.png)",
		"--preview",
		"--version",
		"Writes to:",
		abs,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Arguments:") {
		t.Error("help output should not list positional arguments")
	}
}

func TestStyledHelpPrinterSkipsResolutionForPlainStrings(t *testing.T) {
	var cli struct {
		Label string `help:"A plain string" default:"hello"`
	}

	out := renderHelp(t, &cli)

	if !strings.Contains(out, "(default: hello)") {
		t.Errorf("help output missing default:\n%s", out)
	}
	if strings.Contains(out, "Writes to:") {
		t.Errorf("plain string flags should not be resolved as paths:\n%s", out)
	}
}
