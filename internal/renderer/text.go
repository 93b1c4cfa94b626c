package renderer

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// FaceSource supplies font faces by pixel size and style
type FaceSource interface {
	Face(size float64, style fonts.Style) font.Face
}

// measureText returns the advance width of text, truncated to whole pixels
func measureText(face font.Face, text string) int {
	return font.MeasureString(face, text).Floor()
}

// drawText draws text with its line box top-left at (x, y) and returns the advance width.
// The baseline sits one ascent below y.
func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) int {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	d.Dot = freetype.Pt(x, y+face.Metrics().Ascent.Ceil())
	d.DrawString(text)

	return measureText(face, text)
}
