package renderer

import (
	"image"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// DrawFooter draws the bottom strip, its accent -> cyan hairline and the centred URL
func DrawFooter(img *image.RGBA, card config.Card, faces FaceSource) {
	f := card.Footer
	top := card.Height - f.Height

	FillRect(img, image.Rect(0, top, card.Width, card.Height), Darken(card.Background, f.Darken))

	for x := 0; x < card.Width; x++ {
		c := Lerp(card.Accent, card.AccentCyan, float64(x)/float64(card.Width))
		FillRect(img, image.Rect(x, top, x+2, top+f.Hairline), c)
	}

	face := faces.Face(f.URLSize, fonts.Regular)
	x := layout.CenterX(card.Width, measureText(face, f.URL))
	drawText(img, face, f.URL, x, top+f.URLOffset, card.TextMuted)
}
