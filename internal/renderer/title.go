package renderer

import (
	"image"
	"image/color"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// DrawAccentBar draws the short vertical segments left of the title,
// fading from accent to pink top to bottom
func DrawAccentBar(img *image.RGBA, card config.Card) {
	bar := card.AccentBar
	for i := 0; i < bar.Segments; i++ {
		t := 0.0
		if bar.Segments > 1 {
			t = float64(i) / float64(bar.Segments-1)
		}

		top := bar.Y + i*bar.Pitch
		FillRect(img, image.Rect(bar.X, top, bar.X+bar.Width, top+bar.Height), Lerp(card.Accent, card.AccentPink, t))
	}
}

// DrawTitle draws the title with its drop shadow, the tagline and the
// gradient divider. It returns the divider's top-left corner.
func DrawTitle(img *image.RGBA, card config.Card, faces FaceSource) layout.Cursor {
	title := card.Title
	logo := faces.Face(title.Size, fonts.Bold)

	shadow := color.NRGBA{A: title.ShadowAlpha}
	drawText(img, logo, title.Lead+title.Tail, title.X+title.ShadowOffset, title.Y+title.ShadowOffset, shadow)

	leadWidth := drawText(img, logo, title.Lead, title.X, title.Y, card.Accent)
	drawText(img, logo, title.Tail, title.X+leadWidth, title.Y, card.TextPrimary)

	tagline := faces.Face(title.TaglineSize, fonts.Semibold)
	drawText(img, tagline, title.Tagline, title.X, title.Y+title.TaglineOffset, card.TextMuted)

	divider := layout.Cursor{X: title.X, Y: title.Y + title.DividerOffset}
	drawDivider(img, card, divider)

	return divider
}

// drawDivider draws an accent -> cyan -> pink rule. Each column is two pixels
// wide so neighbours overlap and the rule has no seams.
func drawDivider(img *image.RGBA, card config.Card, at layout.Cursor) {
	title := card.Title
	stops := []color.RGBA{card.Accent, card.AccentCyan, card.AccentPink}

	for i := 0; i < title.DividerWidth; i++ {
		c := LerpStops(stops, float64(i)/float64(title.DividerWidth))
		x := at.X + i
		FillRect(img, image.Rect(x, at.Y, x+2, at.Y+title.DividerThickness), c)
	}
}
