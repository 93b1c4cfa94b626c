package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles - Luma theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LumaViolet).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(LumaMuted).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(LumaCyan).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(LumaViolet).
			Bold(true)

	helpPathStyle = lipgloss.NewStyle().
			Foreground(LumaPink)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(LumaMuted).
				Italic(true)
)

// StyledHelpPrinter creates a custom help printer with Lipgloss styling.
// Flags declared with type:"path" also show where their default lands
// relative to the current directory.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(AppName))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(AppDescription))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [flags]", ctx.Model.Name))
		sb.WriteString("\n")

		flags := describeFlags(ctx.Model.Node.Flags)
		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Flags:"))
		sb.WriteString("\n")
		for _, f := range flags {
			sb.WriteString("  ")
			sb.WriteString(helpFlagStyle.Render(f.flags))
			if f.help != "" {
				sb.WriteString("  ")
				sb.WriteString(f.help)
			}
			if f.defaultVal != "" {
				sb.WriteString(" ")
				sb.WriteString(helpDefaultStyle.Render("(default: " + f.defaultVal + ")"))
			}
			sb.WriteString("\n")
		}

		// Resolved destinations, so a run from the wrong directory is obvious
		var paths []flagHelp
		for _, f := range flags {
			if f.resolved != "" {
				paths = append(paths, f)
			}
		}
		if len(paths) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Writes to:"))
			sb.WriteString("\n")
			for _, f := range paths {
				sb.WriteString("  ")
				sb.WriteString(helpPathStyle.Render(f.resolved))
				sb.WriteString("\n")
			}
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

type flagHelp struct {
	flags      string
	help       string
	defaultVal string
	resolved   string // absolute form of a path default
}

func describeFlags(modelFlags []*kong.Flag) []flagHelp {
	flags := []flagHelp{{
		flags: "-h, --help",
		help:  "Show context-sensitive help.",
	}}

	for _, f := range modelFlags {
		if f.Name == "help" {
			continue // Already added
		}

		flagStr := fmt.Sprintf("--%s", f.Name)
		if f.Short != 0 {
			flagStr = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			flagStr += "=" + strings.ToUpper(f.PlaceHolder)
		}

		fh := flagHelp{flags: flagStr, help: f.Help}
		if f.HasDefault && !f.IsBool() && f.Default != "" {
			fh.defaultVal = f.Default
			if f.Tag != nil && f.Tag.Type == "path" {
				if abs, err := filepath.Abs(f.Default); err == nil {
					fh.resolved = abs
				}
			}
		}

		flags = append(flags, fh)
	}

	return flags
}
