package renderer

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/ogcard/internal/config"
	"github.com/linuxmatters/ogcard/internal/fonts"
	"github.com/linuxmatters/ogcard/internal/layout"
)

// fallbackFaces resolves every style to the embedded Go fonts regardless of host fonts
func fallbackFaces() *fonts.Resolver {
	return fonts.NewResolver(map[fonts.Style][]string{})
}

func TestRenderCardDimensions(t *testing.T) {
	testCases := []struct {
		name  string
		faces FaceSource
	}{
		{name: "embedded fonts", faces: fallbackFaces()},
		{name: "host fonts", faces: fonts.NewResolver(nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := RenderCard(config.Default(), tc.faces)

			if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
				t.Fatalf("card is %dx%d, want 1200x630", b.Dx(), b.Dy())
			}
			if !img.Opaque() {
				t.Error("card should be fully opaque")
			}
		})
	}
}

func TestRenderCardIsDeterministic(t *testing.T) {
	var outputs [2][]byte
	for i := range outputs {
		var buf bytes.Buffer
		if err := EncodePNG(&buf, RenderCard(config.Default(), fallbackFaces())); err != nil {
			t.Fatalf("encode %d: %v", i, err)
		}
		outputs[i] = buf.Bytes()
	}

	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("two renders with the same fonts produced different PNG bytes")
	}
}

func TestRenderCardLandmarks(t *testing.T) {
	card := config.Default()
	img := RenderCard(card, fallbackFaces())

	testCases := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{name: "accent bar top segment", x: 72, y: 145, want: card.Accent},
		{name: "accent bar bottom segment", x: 72, y: 345, want: card.AccentPink},
		{name: "divider start", x: 100, y: 286, want: card.Accent},
		{name: "footer hairline start", x: 0, y: 572, want: card.Accent},
		{name: "footer strip", x: 5, y: 625, want: color.RGBA{R: 7, G: 7, B: 12, A: 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

// The top-right orb tints the corner well above the flat background
func TestRenderCardGlowTintsCorner(t *testing.T) {
	card := config.Default()
	img := RenderCard(card, fallbackFaces())

	corner := img.RGBAAt(1150, 20)
	if corner.B <= card.Background.B+20 {
		t.Errorf("corner %v shows no accent glow over background %v", corner, card.Background)
	}
}

// The faint pink orb behind the content tints it without washing it out
func TestRenderCardGlowStaysFaint(t *testing.T) {
	card := config.Default()
	img := RenderCard(card, fallbackFaces())

	// Between the divider and the pills, inside only the pink orb
	got := img.RGBAAt(640, 300)
	bg := card.Background

	// Alpha 22 over the background lifts red by at most (255-10)*22/255
	if got.R <= bg.R || got.R > bg.R+22 {
		t.Errorf("pixel (640,300) = %v, want a faint pink tint over %v", got, bg)
	}
	if got.G > bg.G+22 {
		t.Errorf("pixel (640,300) = %v, green channel too strong for the pink orb", got)
	}
}

func TestRenderCardPillOutlinesAreSolid(t *testing.T) {
	card := config.Default()
	faces := fallbackFaces()
	img := RenderCard(card, faces)

	start := layout.Cursor{X: card.Title.X, Y: card.Title.Y + card.Title.DividerOffset + card.Pills.Offset}
	rects, _ := LayoutPills(card, faces, start)

	for i, r := range rects {
		want := card.Categories[i].Colour
		got := img.RGBAAt(r.Min.X+r.Dx()/2, r.Min.Y)
		if absDiff(got.R, want.R) > 2 || absDiff(got.G, want.G) > 2 || absDiff(got.B, want.B) > 2 {
			t.Errorf("pill %d (%s) top edge = %v, want solid %v", i, card.Categories[i].Label, got, want)
		}
	}
}

func TestLayoutPillsStayOnCanvas(t *testing.T) {
	card := config.Default()
	rects, cur := LayoutPills(card, fallbackFaces(), layout.Cursor{X: 100, Y: 312})

	if len(rects) != len(card.Categories) {
		t.Fatalf("got %d pills, want %d", len(rects), len(card.Categories))
	}

	for i, r := range rects {
		if r.Max.X > card.Width {
			t.Errorf("pill %d (%s) right edge %d exceeds canvas", i, card.Categories[i].Label, r.Max.X)
		}
		if r.Dy() != card.Pills.Height {
			t.Errorf("pill %d height %d, want %d", i, r.Dy(), card.Pills.Height)
		}
	}

	if cur.Y+card.Stats.Offset >= card.Height-card.Footer.Height {
		t.Errorf("stats row at y=%d would overlap the footer", cur.Y+card.Stats.Offset)
	}
}

// TestGenerateSampleCard writes a card exactly as the CLI does and checks the file header.
// Set OGCARD_KEEP to a directory to keep the output for inspection.
func TestGenerateSampleCard(t *testing.T) {
	dir := t.TempDir()
	if keep := os.Getenv("OGCARD_KEEP"); keep != "" {
		dir = keep
	}
	outputPath := filepath.Join(dir, "public", "og-image.png")

	result, err := GenerateCard(outputPath, config.Default(), fallbackFaces())
	if err != nil {
		t.Fatalf("failed to generate card: %v", err)
	}

	if !filepath.IsAbs(result.Path) {
		t.Errorf("result path %q is not absolute", result.Path)
	}
	if result.Width != 1200 || result.Height != 630 {
		t.Errorf("result dimensions %dx%d, want 1200x630", result.Width, result.Height)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("card file was not created: %v", err)
	}

	// IHDR follows the 8-byte signature: length, type, width, height, depth, colour type
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		t.Fatalf("output does not start with a PNG IHDR chunk")
	}
	if w, h := binary.BigEndian.Uint32(data[16:20]), binary.BigEndian.Uint32(data[20:24]); w != 1200 || h != 630 {
		t.Errorf("IHDR size %dx%d, want 1200x630", w, h)
	}
	if depth, colourType := data[24], data[25]; depth != 8 || colourType != 2 {
		t.Errorf("IHDR depth=%d colour type=%d, want 8-bit RGB (8, 2)", depth, colourType)
	}

	if result.Image == nil {
		t.Fatal("result carries no image")
	}
	var reencoded bytes.Buffer
	if err := EncodePNG(&reencoded, result.Image); err != nil {
		t.Fatalf("re-encoding result image: %v", err)
	}
	if !bytes.Equal(reencoded.Bytes(), data) {
		t.Error("result image differs from the file written to disk")
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
		t.Errorf("decoded size %dx%d, want 1200x630", b.Dx(), b.Dy())
	}

	t.Logf("✓ Generated sample card: %s (%d bytes)", result.Path, len(data))
}

func TestSavePNGReportsUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	img := NewCanvas(4, 4, config.Background)
	if err := SavePNG(filepath.Join(blocker, "og-image.png"), img); err == nil {
		t.Error("expected an error writing beneath a regular file")
	}
}
