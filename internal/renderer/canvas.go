package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas creates an opaque canvas filled with bg
func NewCanvas(width, height int, bg color.RGBA) *image.RGBA {
	bg.A = 255
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// NewOverlay creates a fully transparent layer the size of bounds
func NewOverlay(bounds image.Rectangle) *image.RGBA {
	return image.NewRGBA(bounds)
}

// Composite alpha-composites overlay onto dst
func Composite(dst *image.RGBA, overlay *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), overlay, overlay.Bounds().Min, draw.Over)
}
