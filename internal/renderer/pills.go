package renderer

import (
	"image"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// pillFlow derives the flow-wrap rule for the card's pills
func pillFlow(card config.Card, left int) layout.Flow {
	p := card.Pills
	return layout.Flow{
		Left:     left,
		Height:   p.Height,
		Gap:      p.Gap,
		RowGap:   p.RowGap,
		WrapAt:   card.Width - p.WrapMargin,
		MaxRight: card.Width,
	}
}

// LayoutPills measures each category label and flows the pills from start.
// It returns the pill rectangles and the cursor after the last pill.
func LayoutPills(card config.Card, faces FaceSource, start layout.Cursor) ([]image.Rectangle, layout.Cursor) {
	face := faces.Face(card.Pills.Size, fonts.Semibold)

	widths := make([]int, len(card.Categories))
	for i, cat := range card.Categories {
		widths[i] = measureText(face, cat.Label) + card.Pills.PadX*2
	}

	return layout.FlowPills(widths, start, pillFlow(card, start.X))
}

// DrawPills draws the category badges: a tinted rounded fill, a translucent
// outline in the category colour, and the label inset by the padding
func DrawPills(img *image.RGBA, card config.Card, faces FaceSource, start layout.Cursor) layout.Cursor {
	p := card.Pills
	face := faces.Face(p.Size, fonts.Semibold)

	rects, cur := LayoutPills(card, faces, start)
	for i, r := range rects {
		cat := card.Categories[i]

		FillRoundedRect(img, r, p.Radius, Blend(cat.Colour, card.Background, p.Tint))
		StrokeRoundedRect(img, r, p.Radius, 1, WithAlpha(cat.Colour, p.OutlineAlpha))
		drawText(img, face, cat.Label, r.Min.X+p.PadX, r.Min.Y+p.PadY, cat.Colour)
	}

	return cur
}
