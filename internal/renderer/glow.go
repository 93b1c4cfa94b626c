package renderer

import (
	"image"
	"math"

	"github.com/linuxmatters/ogcard/internal/config"
	"golang.org/x/image/draw"
)

// DrawGlow paints a soft orb as steps concentric circles, largest first.
// Circle i of steps has radius Radius*i/steps and alpha
// PeakAlpha*((steps-i+1)/steps)^falloff, so the rim fades to nothing and
// the innermost circle carries PeakAlpha. Circles replace rather than stack,
// on a layer of their own, so no pixel exceeds PeakAlpha. The finished layer
// is composited over overlay, leaving earlier orbs intact.
func DrawGlow(overlay *image.RGBA, g config.Glow, steps int, falloff float64) {
	if steps <= 0 || g.Radius <= 0 {
		return
	}

	area := image.Rect(g.X-g.Radius-1, g.Y-g.Radius-1, g.X+g.Radius+1, g.Y+g.Radius+1).Intersect(overlay.Bounds())
	if area.Empty() {
		return
	}
	layer := NewOverlay(area)

	cx, cy := float64(g.X), float64(g.Y)
	for i := steps; i > 0; i-- {
		radius := int(float64(g.Radius) * float64(i) / float64(steps))
		strength := float64(steps-i+1) / float64(steps)
		alpha := uint8(float64(g.PeakAlpha) * math.Pow(strength, falloff))
		if radius <= 0 || alpha == 0 {
			continue
		}

		ReplaceCircle(layer, cx, cy, float64(radius), WithAlpha(g.Colour, alpha))
	}

	draw.Draw(overlay, area, layer, area.Min, draw.Over)
}

// DrawDotGrid paints a dot at every lattice point (x, y) with x < width and y < height.
// Each dot is centred on its pixel, so a 1.5 radius covers the 3x3 block around it.
func DrawDotGrid(overlay *image.RGBA, grid config.Grid) {
	if grid.Step <= 0 {
		return
	}

	b := overlay.Bounds()
	dot := WithAlpha(white, grid.Alpha)
	for x := b.Min.X; x < b.Max.X; x += grid.Step {
		for y := b.Min.Y; y < b.Max.Y; y += grid.Step {
			FillCircle(overlay, float64(x)+0.5, float64(y)+0.5, grid.Radius, dot)
		}
	}
}
