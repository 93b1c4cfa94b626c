package renderer

import (
	"image"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// DrawStats draws the value/label chips left to right from start.
// There is no wrapping; the cursor after the last chip is returned.
func DrawStats(img *image.RGBA, card config.Card, faces FaceSource, start layout.Cursor) layout.Cursor {
	s := card.Stats
	valueFace := faces.Face(s.ValueSize, fonts.Bold)
	labelFace := faces.Face(s.LabelSize, fonts.Regular)
	chip := layout.Chip{LabelGap: s.LabelGap, LabelDrop: s.LabelDrop, ChipGap: s.ChipGap}

	cur := start
	for _, stat := range card.StatList {
		valueWidth := drawText(img, valueFace, stat.Value, cur.X, cur.Y, card.Accent)

		at := chip.LabelOrigin(cur, valueWidth)
		labelWidth := drawText(img, labelFace, stat.Label, at.X, at.Y, card.TextMuted)

		cur = chip.Advance(cur, valueWidth, labelWidth)
	}

	return cur
}
