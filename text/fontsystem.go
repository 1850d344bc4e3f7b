package text

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names the embedded defaults register under.
const (
	familyGo      = "go"
	familyLMRoman = "latin modern roman"
	familyLMMono  = "latin modern mono"
)

// FontSystem owns the set of loaded fonts and resolves Font values to
// concrete faces during shaping. It ships with embedded defaults so text
// works without touching system fonts: the Go fonts for sans-serif and
// Latin Modern for serif and monospace.
//
// A FontSystem is safe for concurrent use. The underlying font map and
// run splitter are not, so access to them is serialized; share one
// FontSystem rather than creating one per render.
type FontSystem struct {
	// mu protects fontMap, splitter, and loaded.
	mu       sync.Mutex
	fontMap  *fontscan.FontMap
	splitter shaping.Segmenter
	loaded   int

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state and is NOT safe for concurrent use, but
	// reusing instances across sequential calls is efficient.
	shaperPool sync.Pool
}

// NewFontSystem creates a FontSystem with the embedded default fonts
// registered.
func NewFontSystem() *FontSystem {
	fm := fontscan.NewFontMap(nil)

	// Embedded fonts parse cleanly; an error here would be a packaging
	// problem, not a runtime condition.
	embedded := []struct {
		data   []byte
		name   string
		family string
	}{
		{goregular.TTF, "goregular", familyGo},
		{gobold.TTF, "gobold", familyGo},
		{goitalic.TTF, "goitalic", familyGo},
		{lmroman10regular.TTF, "lmroman10-regular", familyLMRoman},
		{lmroman10bold.TTF, "lmroman10-bold", familyLMRoman},
		{lmroman10italic.TTF, "lmroman10-italic", familyLMRoman},
		{lmmono10regular.TTF, "lmmono10-regular", familyLMMono},
	}
	for _, e := range embedded {
		_ = fm.AddFont(bytes.NewReader(e.data), e.name, e.family)
	}

	return &FontSystem{
		fontMap: fm,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Load registers a font from raw TTF/OTF data. The font becomes
// selectable through Font.Family using the family name declared in the
// font file.
func (s *FontSystem) Load(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded++
	name := fmt.Sprintf("loaded-%d", s.loaded)
	if err := s.fontMap.AddFont(bytes.NewReader(data), name, ""); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFontData, err)
	}
	return nil
}

// families returns the candidate family list for a font, most specific
// first. Generic families map to the embedded defaults; unknown families
// fall back to sans-serif.
func (s *FontSystem) families(f Font) []string {
	fam := strings.ToLower(strings.TrimSpace(f.Family))
	switch fam {
	case "", FamilySansSerif:
		return []string{familyGo}
	case FamilySerif:
		return []string{familyLMRoman, familyGo}
	case FamilyMonospace:
		return []string{familyLMMono, familyGo}
	default:
		return []string{fam, familyGo}
	}
}

// aspect converts Font attributes to a go-text font aspect.
func aspect(f Font) font.Aspect {
	w := f.Weight
	if w == 0 {
		w = WeightNormal
	}
	slant := 0
	if f.Style != StyleNormal {
		// Fonts rarely carry a separate oblique face; match italic.
		slant = 1
	}
	return font.Aspect{
		Style:   font.Style(1 + slant),
		Weight:  font.Weight(float32(w)),
		Stretch: font.Stretch(f.Stretch.ratio()),
	}
}

// query builds the fontscan query for a font.
func (s *FontSystem) query(f Font) fontscan.Query {
	return fontscan.Query{
		Families: s.families(f),
		Aspect:   aspect(f),
	}
}
