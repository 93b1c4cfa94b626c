package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Canvas settings
const (
	Width  = 1200
	Height = 630

	// DefaultOutputPath is resolved against the working directory (the repository root)
	DefaultOutputPath = "public/og-image.png"
)

// Palette - Luma Tools site colours
// Values mirror the CSS custom properties used by the site (--accent, --accent-2, --accent-3)
var (
	Background  = MustHex("#0A0A0F")
	Accent      = MustHex("#7C5CFF") // --accent
	AccentCyan  = MustHex("#00D4FF") // --accent-2
	AccentPink  = MustHex("#FF6BCA") // --accent-3
	TextPrimary = MustHex("#F0F0F5")
	TextMuted   = MustHex("#8888A0")

	// Category colours not covered by the accents
	Green  = MustHex("#50C878")
	Orange = MustHex("#FFA032")
	Red    = MustHex("#FF5A5A")
	Slate  = MustHex("#AAAAC8")
)

// Glow describes one soft radial orb. The centre may lie outside the canvas.
type Glow struct {
	X, Y      int
	Radius    int
	Colour    color.RGBA
	PeakAlpha uint8
}

// Grid is the sparse dot lattice drawn over the orbs
type Grid struct {
	Step   int
	Radius float64
	Alpha  uint8
}

// AccentBar is the stack of short gradient segments left of the title
type AccentBar struct {
	X, Y     int
	Width    int
	Height   int
	Pitch    int // vertical distance between segment tops
	Segments int
}

// Title holds the headline block: title, shadow, tagline and divider
type Title struct {
	X, Y         int
	Lead         string // drawn in the accent colour
	Tail         string // drawn in the primary text colour after Lead
	Size         float64
	ShadowOffset int
	ShadowAlpha  uint8

	Tagline       string
	TaglineOffset int
	TaglineSize   float64

	DividerOffset    int
	DividerWidth     int
	DividerThickness int
}

// Category is a labelled pill
type Category struct {
	Label  string
	Colour color.RGBA
}

// Pills controls pill geometry and the flow-wrap rule
type Pills struct {
	Offset       int // gap between divider and first row
	Size         float64
	PadX, PadY   int
	Height       int
	Radius       float64
	Gap          int
	RowGap       int
	WrapMargin   int // rows wrap once the cursor passes Width-WrapMargin
	Tint         float64
	OutlineAlpha uint8
}

// Stat is a value/label pair shown as a chip
type Stat struct {
	Value string
	Label string
}

// Stats controls statistic chip geometry
type Stats struct {
	Offset    int // distance below the last pill row
	ValueSize float64
	LabelSize float64
	LabelGap  int
	LabelDrop int
	ChipGap   int
}

// Footer is the bottom URL strip
type Footer struct {
	Height    int
	Hairline  int
	Darken    uint8
	URL       string
	URLSize   float64
	URLOffset int
}

// Card is the complete, immutable description of the share card.
// Build it once with Default and pass it by value.
type Card struct {
	Width, Height int

	Background  color.RGBA
	Accent      color.RGBA
	AccentCyan  color.RGBA
	AccentPink  color.RGBA
	TextPrimary color.RGBA
	TextMuted   color.RGBA

	Glows       []Glow
	GlowSteps   int
	GlowFalloff float64

	Grid      Grid
	AccentBar AccentBar
	Title     Title

	Pills      Pills
	Categories []Category

	Stats    Stats
	StatList []Stat

	Footer Footer
}

// Default returns the Luma Tools share card
func Default() Card {
	return Card{
		Width:  Width,
		Height: Height,

		Background:  Background,
		Accent:      Accent,
		AccentCyan:  AccentCyan,
		AccentPink:  AccentPink,
		TextPrimary: TextPrimary,
		TextMuted:   TextMuted,

		Glows: []Glow{
			{X: 1080, Y: -60, Radius: 520, Colour: Accent, PeakAlpha: 80},
			{X: -60, Y: 600, Radius: 420, Colour: AccentCyan, PeakAlpha: 70},
			{X: 610, Y: 380, Radius: 320, Colour: AccentPink, PeakAlpha: 22},
		},
		GlowSteps:   60,
		GlowFalloff: 1.8,

		Grid: Grid{Step: 38, Radius: 1.5, Alpha: 18},

		AccentBar: AccentBar{X: 72, Y: 145, Width: 5, Height: 31, Pitch: 40, Segments: 6},

		Title: Title{
			X:            100,
			Y:            138,
			Lead:         "Luma ",
			Tail:         "Tools",
			Size:         82,
			ShadowOffset: 3,
			ShadowAlpha:  255,

			Tagline:       "All-in-One Browser Toolkit",
			TaglineOffset: 96,
			TaglineSize:   34,

			DividerOffset:    148,
			DividerWidth:     680,
			DividerThickness: 3,
		},

		Pills: Pills{
			Offset:       26,
			Size:         22,
			PadX:         16,
			PadY:         9,
			Height:       36,
			Radius:       18,
			Gap:          12,
			RowGap:       10,
			WrapMargin:   200,
			Tint:         0.18,
			OutlineAlpha: 255,
		},
		Categories: []Category{
			{Label: "AI Study Tools", Colour: Accent},
			{Label: "Image Tools", Colour: Green},
			{Label: "Video Tools", Colour: Orange},
			{Label: "Audio Tools", Colour: AccentCyan},
			{Label: "PDF Tools", Colour: AccentPink},
			{Label: "Downloader", Colour: Red},
			{Label: "Utilities", Colour: Slate},
		},

		Stats: Stats{
			Offset:    58,
			ValueSize: 36,
			LabelSize: 19,
			LabelGap:  8,
			LabelDrop: 8,
			ChipGap:   48,
		},
		StatList: []Stat{
			{Value: "45+", Label: "Free Tools"},
			{Value: "0", Label: "Uploads Required"},
			{Value: "100%", Label: "Private"},
		},

		Footer: Footer{
			Height:    58,
			Hairline:  2,
			Darken:    3,
			URL:       "tools.lumaplayground.com",
			URLSize:   26,
			URLOffset: 14,
		},
	}
}

// ParseHexColor parses a 6-digit hex colour with an optional leading '#'
func ParseHexColor(s string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return raw[0], raw[1], raw[2], nil
}

// MustHex is ParseHexColor for palette literals; it panics on malformed input
func MustHex(s string) color.RGBA {
	r, g, b, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
