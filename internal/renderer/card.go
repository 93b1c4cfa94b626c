package renderer

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// Result describes a written card
type Result struct {
	Path   string // absolute
	Width  int
	Height int
	Image  *image.RGBA
}

// GenerateCard renders the card and saves it as a PNG at outputPath.
// The rendered image is returned with the result for further use.
func GenerateCard(outputPath string, card config.Card, faces FaceSource) (Result, error) {
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve output path: %w", err)
	}

	img := RenderCard(card, faces)

	if err := SavePNG(absPath, img); err != nil {
		return Result{}, fmt.Errorf("failed to save card: %w", err)
	}

	b := img.Bounds()
	return Result{Path: absPath, Width: b.Dx(), Height: b.Dy(), Image: img}, nil
}

// RenderCard runs the drawing pipeline: background, glows, dot grid, title block,
// pills, stats and footer. Each stage only draws on top of the previous ones.
func RenderCard(card config.Card, faces FaceSource) *image.RGBA {
	img := NewCanvas(card.Width, card.Height, card.Background)

	orbs := NewOverlay(img.Bounds())
	for _, g := range card.Glows {
		DrawGlow(orbs, g, card.GlowSteps, card.GlowFalloff)
	}
	Composite(img, orbs)

	dots := NewOverlay(img.Bounds())
	DrawDotGrid(dots, card.Grid)
	Composite(img, dots)

	DrawAccentBar(img, card)
	divider := DrawTitle(img, card, faces)

	cur := DrawPills(img, card, faces, layout.Cursor{X: divider.X, Y: divider.Y + card.Pills.Offset})
	DrawStats(img, card, faces, layout.Cursor{X: divider.X, Y: cur.Y + card.Stats.Offset})

	DrawFooter(img, card, faces)

	return img
}
