package renderer

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle
const kappa = 0.5522847498307936

// shape rasterizes a path over a clipped window of the destination.
// Coordinates passed to its methods are destination coordinates.
type shape struct {
	ras    *vector.Rasterizer
	bounds image.Rectangle
}

// newShape prepares a rasterizer covering box, clipped to dst.
// It returns nil when nothing of box is visible.
func newShape(dst draw.Image, minX, minY, maxX, maxY float64) *shape {
	box := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(dst.Bounds())
	if box.Empty() {
		return nil
	}

	return &shape{
		ras:    vector.NewRasterizer(box.Dx(), box.Dy()),
		bounds: box,
	}
}

func (s *shape) pt(x, y float64) (float32, float32) {
	return float32(x - float64(s.bounds.Min.X)), float32(y - float64(s.bounds.Min.Y))
}

func (s *shape) moveTo(x, y float64) {
	s.ras.MoveTo(s.pt(x, y))
}

func (s *shape) lineTo(x, y float64) {
	s.ras.LineTo(s.pt(x, y))
}

func (s *shape) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := s.pt(x1, y1)
	bx, by := s.pt(x2, y2)
	cx, cy := s.pt(x3, y3)
	s.ras.CubeTo(ax, ay, bx, by, cx, cy)
}

// circle adds a closed circle; reverse flips the winding to punch holes
func (s *shape) circle(cx, cy, r float64, reverse bool) {
	k := r * kappa
	s.moveTo(cx+r, cy)
	if !reverse {
		s.cubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		s.cubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		s.cubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		s.cubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		s.cubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		s.cubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		s.cubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		s.cubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	s.ras.ClosePath()
}

// roundedRect adds a closed rectangle with corner radius r, clamped to half
// the shorter side; reverse flips the winding to punch holes
func (s *shape) roundedRect(x0, y0, x1, y1, r float64, reverse bool) {
	r = math.Min(r, (x1-x0)/2)
	r = math.Min(r, (y1-y0)/2)
	if r < 0 {
		r = 0
	}
	k := r * (1 - kappa)

	if !reverse {
		s.moveTo(x0+r, y0)
		s.lineTo(x1-r, y0)
		s.cubeTo(x1-k, y0, x1, y0+k, x1, y0+r)
		s.lineTo(x1, y1-r)
		s.cubeTo(x1, y1-k, x1-k, y1, x1-r, y1)
		s.lineTo(x0+r, y1)
		s.cubeTo(x0+k, y1, x0, y1-k, x0, y1-r)
		s.lineTo(x0, y0+r)
		s.cubeTo(x0, y0+k, x0+k, y0, x0+r, y0)
	} else {
		s.moveTo(x0+r, y0)
		s.cubeTo(x0+k, y0, x0, y0+k, x0, y0+r)
		s.lineTo(x0, y1-r)
		s.cubeTo(x0, y1-k, x0+k, y1, x0+r, y1)
		s.lineTo(x1-r, y1)
		s.cubeTo(x1-k, y1, x1, y1-k, x1, y1-r)
		s.lineTo(x1, y0+r)
		s.cubeTo(x1, y0+k, x1-k, y0, x1-r, y0)
	}
	s.ras.ClosePath()
}

// fill composites the accumulated path over dst in colour c
func (s *shape) fill(dst draw.Image, c color.Color) {
	s.ras.Draw(dst, s.bounds, image.NewUniform(c), image.Point{})
}

// FillCircle draws an anti-aliased disc centred on (cx, cy)
func FillCircle(dst draw.Image, cx, cy, r float64, c color.Color) {
	fillCircleOp(dst, cx, cy, r, c, draw.Over)
}

// ReplaceCircle is FillCircle with draw.Src: covered pixels take c outright,
// alpha included, and edge pixels mix c with what was there by coverage
func ReplaceCircle(dst draw.Image, cx, cy, r float64, c color.Color) {
	fillCircleOp(dst, cx, cy, r, c, draw.Src)
}

func fillCircleOp(dst draw.Image, cx, cy, r float64, c color.Color, op draw.Op) {
	if r <= 0 {
		return
	}
	s := newShape(dst, cx-r, cy-r, cx+r, cy+r)
	if s == nil {
		return
	}
	s.ras.DrawOp = op
	s.circle(cx, cy, r, false)
	s.fill(dst, c)
}

// FillRoundedRect draws a filled rounded rectangle spanning rect
func FillRoundedRect(dst draw.Image, rect image.Rectangle, r float64, c color.Color) {
	if rect.Empty() {
		return
	}
	x0, y0, x1, y1 := float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y)
	s := newShape(dst, x0, y0, x1, y1)
	if s == nil {
		return
	}
	s.roundedRect(x0, y0, x1, y1, r, false)
	s.fill(dst, c)
}

// StrokeRoundedRect draws the inside outline of a rounded rectangle, width px thick
func StrokeRoundedRect(dst draw.Image, rect image.Rectangle, r, width float64, c color.Color) {
	if rect.Empty() || width <= 0 {
		return
	}
	x0, y0, x1, y1 := float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Max.X), float64(rect.Max.Y)
	s := newShape(dst, x0, y0, x1, y1)
	if s == nil {
		return
	}
	s.roundedRect(x0, y0, x1, y1, r, false)
	if x1-x0 > 2*width && y1-y0 > 2*width {
		s.roundedRect(x0+width, y0+width, x1-width, y1-width, r-width, true)
	}
	s.fill(dst, c)
}

// FillRect composites a solid rectangle over dst
func FillRect(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}
