package cli

import "github.com/charmbracelet/lipgloss"

// Luma palette
// Shared with the card itself so terminal output matches the rendered image
var (
	LumaViolet = lipgloss.Color("#7C5CFF") // Accent
	LumaCyan   = lipgloss.Color("#00D4FF") // Second accent
	LumaPink   = lipgloss.Color("#FF6BCA") // Third accent

	// Text colours
	LumaText  = lipgloss.Color("#F0F0F5")
	LumaMuted = lipgloss.Color("#8888A0")
)
