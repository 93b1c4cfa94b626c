package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style selects a font weight
type Style int

const (
	Regular Style = iota
	Semibold
	Bold
)

func (s Style) String() string {
	switch s {
	case Semibold:
		return "semibold"
	case Bold:
		return "bold"
	default:
		return "regular"
	}
}

// Styles lists every style in display order
var Styles = []Style{Regular, Semibold, Bold}

// Source names used when no candidate path could be loaded
const (
	SourceBasic = "basicfont 7x13"
)

// DefaultCandidates are probed in order; the first file that exists and parses wins.
// Windows paths come first to match the site's Segoe UI typography.
var DefaultCandidates = map[Style][]string{
	Bold: {
		"C:/Windows/Fonts/segoeuib.ttf",
		"C:/Windows/Fonts/arialbd.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"/usr/share/fonts/noto/NotoSans-Bold.ttf",
	},
	Semibold: {
		"C:/Windows/Fonts/segoeuisb.ttf",
		"C:/Windows/Fonts/segoeuib.ttf",
		"C:/Windows/Fonts/arialbd.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/usr/share/fonts/truetype/noto/NotoSans-SemiBold.ttf",
		"/usr/share/fonts/noto/NotoSans-SemiBold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	},
	Regular: {
		"C:/Windows/Fonts/segoeui.ttf",
		"C:/Windows/Fonts/arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	},
}

// embedded are the built-in Go fonts used when no candidate path is usable
var embedded = map[Style]struct {
	name string
	data []byte
}{
	Regular:  {name: "Go Regular (embedded)", data: goregular.TTF},
	Semibold: {name: "Go Medium (embedded)", data: gomedium.TTF},
	Bold:     {name: "Go Bold (embedded)", data: gobold.TTF},
}

// parsedFont holds whichever parser accepted the file
type parsedFont struct {
	tt *truetype.Font
	ot *opentype.Font
}

type faceKey struct {
	size  float64
	style Style
}

// Resolver hands out font faces by (size, style), probing the filesystem once per style.
// It never fails: missing or unreadable fonts degrade to the embedded Go fonts,
// and those to basicfont.
type Resolver struct {
	candidates map[Style][]string

	faces   map[faceKey]font.Face
	fonts   map[Style]*parsedFont
	sources map[Style]string
}

// NewResolver creates a resolver over the given candidate table.
// A nil table uses DefaultCandidates.
func NewResolver(candidates map[Style][]string) *Resolver {
	if candidates == nil {
		candidates = DefaultCandidates
	}
	return &Resolver{
		candidates: candidates,
		faces:      make(map[faceKey]font.Face),
		fonts:      make(map[Style]*parsedFont),
		sources:    make(map[Style]string),
	}
}

// Face returns a face of the given pixel size and style
func (r *Resolver) Face(size float64, style Style) font.Face {
	key := faceKey{size: size, style: style}
	if face, ok := r.faces[key]; ok {
		return face
	}

	face := r.newFace(size, style)
	r.faces[key] = face
	return face
}

// Source reports where faces of the given style come from.
// It is empty until a face of that style has been requested.
func (r *Resolver) Source(style Style) string {
	return r.sources[style]
}

func (r *Resolver) newFace(size float64, style Style) font.Face {
	pf := r.font(style)
	if pf == nil {
		return basicfont.Face7x13
	}

	if pf.tt != nil {
		return truetype.NewFace(pf.tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	face, err := opentype.NewFace(pf.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		r.sources[style] = SourceBasic
		return basicfont.Face7x13
	}
	return face
}

// font returns the parsed font for a style, resolving it on first use.
// A nil result means only basicfont is left.
func (r *Resolver) font(style Style) *parsedFont {
	if pf, ok := r.fonts[style]; ok {
		return pf
	}

	var pf *parsedFont
	source := SourceBasic

	for _, path := range r.candidates[style] {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		loaded, err := loadFile(path)
		if err != nil {
			continue
		}
		pf, source = loaded, path
		break
	}

	if pf == nil {
		if e, ok := embedded[style]; ok {
			if tt, err := truetype.Parse(e.data); err == nil {
				pf, source = &parsedFont{tt: tt}, e.name
			}
		}
	}

	r.fonts[style] = pf
	r.sources[style] = source
	return pf
}

// loadFile parses a font file, choosing the parser by extension.
// TrueType files go through freetype; OpenType and collections through x/image.
func loadFile(path string) (*parsedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".otf":
		ot, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &parsedFont{ot: ot}, nil

	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing collection %s: %w", path, err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("collection %s has no fonts", path)
		}
		ot, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("reading font 0 of %s: %w", path, err)
		}
		return &parsedFont{ot: ot}, nil

	default:
		tt, err := truetype.Parse(data)
		if err == nil {
			return &parsedFont{tt: tt}, nil
		}
		// Some .ttf files carry CFF outlines freetype cannot read
		ot, oerr := opentype.Parse(data)
		if oerr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &parsedFont{ot: ot}, nil
	}
}
