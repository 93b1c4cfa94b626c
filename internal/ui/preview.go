package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/ogcard/internal/cli"
)

// PreviewConfig holds configuration for the card preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells
}

// DefaultPreviewConfig returns a sensible default preview size.
// Each cell shows two source rows with a half block, so 80x21 cells
// sample 80x42 regions, close to the card's 1.9:1.
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  80,
		Height: 21,
	}
}

var previewBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(cli.LumaViolet)

var previewTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(cli.LumaCyan)

// DownsampleFrame averages each rectangular region of frame into one sample,
// returning config.Height rows of config.Width samples
func DownsampleFrame(frame image.Image, config PreviewConfig) [][]color.RGBA {
	if config.Width <= 0 || config.Height <= 0 {
		return nil
	}

	bounds := frame.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	// Source pixels per sample, at least one so tiny frames still fill the grid
	cellWidth := max(srcWidth/config.Width, 1)
	cellHeight := max(srcHeight/config.Height, 1)

	preview := make([][]color.RGBA, config.Height)
	for row := 0; row < config.Height; row++ {
		preview[row] = make([]color.RGBA, config.Width)
		for col := 0; col < config.Width; col++ {
			srcX := col * cellWidth
			srcY := row * cellHeight

			var sumR, sumG, sumB uint32
			pixelCount := 0

			for y := srcY; y < srcY+cellHeight && y < srcHeight; y++ {
				for x := srcX; x < srcX+cellWidth && x < srcWidth; x++ {
					r, g, b, _ := frame.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
					// RGBA() returns 16-bit values, convert to 8-bit
					sumR += r >> 8
					sumG += g >> 8
					sumB += b >> 8
					pixelCount++
				}
			}

			if pixelCount > 0 {
				preview[row][col] = color.RGBA{
					R: uint8(sumR / uint32(pixelCount)),
					G: uint8(sumG / uint32(pixelCount)),
					B: uint8(sumB / uint32(pixelCount)),
					A: 255,
				}
			}
		}
	}

	return preview
}

// RenderPreview draws a sample grid with upper half blocks: the foreground
// colour is the upper sample and the background colour the one below it.
// An odd final row repeats its samples in both halves.
func RenderPreview(preview [][]color.RGBA, title string) string {
	if len(preview) == 0 || len(preview[0]) == 0 {
		return ""
	}

	var body strings.Builder
	for row := 0; row < len(preview); row += 2 {
		upper := preview[row]
		lower := upper
		if row+1 < len(preview) {
			lower = preview[row+1]
		}

		if row > 0 {
			body.WriteString("\n")
		}
		for col := range upper {
			top, bottom := upper[col], lower[col]
			// 24-bit foreground then background, reset after every cell
			fmt.Fprintf(&body, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(previewTitleStyle.Render(title))
		sb.WriteString("\n")
	}
	sb.WriteString(previewBoxStyle.Render(body.String()))
	sb.WriteString("\n")

	return sb.String()
}

// RenderCardPreview downsamples a rendered card for the terminal
func RenderCardPreview(card image.Image, config PreviewConfig) string {
	samples := DownsampleFrame(card, PreviewConfig{Width: config.Width, Height: config.Height * 2})
	return RenderPreview(samples, "Card Preview:")
}
