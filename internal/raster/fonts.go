package raster

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"

	"profilecraft/internal/catalog"
)

// FontSource makes fonts available to the renderer. A family it does not
// know renders in the default face.
type FontSource interface {
	Face(family string, weight int, size float64) (font.Face, error)
}

type cut struct {
	regular []byte
	bold    []byte
}

var cuts = map[catalog.FontCategory]cut{
	catalog.Sans:        {regular: goregular.TTF, bold: gobold.TTF},
	catalog.Serif:       {regular: gomedium.TTF, bold: gobold.TTF},
	catalog.Display:     {regular: gosmallcaps.TTF, bold: gobold.TTF},
	catalog.Mono:        {regular: gomono.TTF, bold: gomonobold.TTF},
	catalog.Handwriting: {regular: goitalic.TTF, bold: gobolditalic.TTF},
}

var defaultCut = cuts[catalog.Sans]

// GoFonts stands in for the catalog's remote fonts with the embedded Go
// font family, picked by the catalog font's category.
type GoFonts struct {
	families map[string]catalog.FontCategory

	mu     sync.Mutex
	parsed map[*byte]*truetype.Font
}

// NewGoFonts indexes fonts by CSS family.
func NewGoFonts(fonts []catalog.Font) *GoFonts {
	g := &GoFonts{
		families: make(map[string]catalog.FontCategory, len(fonts)),
		parsed:   make(map[*byte]*truetype.Font),
	}
	for _, f := range fonts {
		g.families[f.Family] = f.Category
	}
	return g
}

// Face returns a new face for family at size points. Faces are not safe
// for concurrent use, so every call gets its own.
func (g *GoFonts) Face(family string, weight int, size float64) (font.Face, error) {
	c := defaultCut
	if cat, ok := g.families[family]; ok {
		c = cuts[cat]
	}
	ttf := c.regular
	if weight >= 600 {
		ttf = c.bold
	}

	f, err := g.parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (g *GoFonts) parse(ttf []byte) (*truetype.Font, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := &ttf[0]
	if f, ok := g.parsed[key]; ok {
		return f, nil
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	g.parsed[key] = f
	return f, nil
}
