package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Application identity used by the banner, version and help output
const (
	AppName        = "ogcard ✦"
	AppDescription = "Render the Luma Tools Open Graph share card as a 1200x630 PNG."
)

// Color palette
var (
	primaryColor   = LumaViolet
	accentColor    = LumaCyan
	successColor   = lipgloss.Color("#50C878") // Green
	errorColor     = lipgloss.Color("#FF5A5A") // Red
	mutedColor     = LumaMuted
	highlightColor = lipgloss.Color("#FFA032") // Orange
	textColor      = LumaText
)

// Styles
var (
	// Title style - bold violet
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Println(SubtitleStyle.Render(AppDescription))
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDimensions formats an image size as WIDTHxHEIGHT
func FormatDimensions(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// CardSummary formats the boxed report shown after a card is written
func CardSummary(path, dimensions, size, elapsed string) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Card Rendered!"))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("Output:     "))
	b.WriteString(ValueStyle.Render(path))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Dimensions: "))
	b.WriteString(ValueStyle.Render(dimensions))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("File Size:  "))
	b.WriteString(ValueStyle.Render(size))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Render:     "))
	b.WriteString(ValueStyle.Render(elapsed))

	return b.String()
}

// PrintCardSummary prints the card report in a box
func PrintCardSummary(path, dimensions, size, elapsed string) {
	PrintBox(CardSummary(path, dimensions, size, elapsed))
}
