package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is a single positioned glyph within a run. X and Y are offsets
// from the run origin on the baseline. Cluster is the rune index of the
// glyph's source cluster within the full content.
type Glyph struct {
	// ID is the glyph index in the run's face.
	ID uint32

	// Cluster is the rune index of the source cluster.
	Cluster int

	// X and Y position the glyph relative to the run origin.
	X, Y float64

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance float64
}

// Run is a maximal span of shaped glyphs sharing one face and direction.
// X is the run origin relative to the paragraph's left edge; glyph
// positions are relative to the run origin.
type Run struct {
	Glyphs []Glyph

	// Face is the concrete go-text face the run was shaped with.
	Face *font.Face

	// Size is the font size in logical pixels.
	Size float64

	// Direction is the visual direction of the run.
	Direction Direction

	// X is the run origin within the paragraph, alignment included.
	X float64

	// Advance is the total horizontal advance of the run.
	Advance float64

	// Ascent and Descent are the face's line metrics at Size, both
	// positive.
	Ascent  float64
	Descent float64

	// Start and End delimit the run's rune range within the content.
	Start, End int
}

// shapeParagraph shapes one paragraph (no hard breaks) into go-text
// outputs. Face resolution happens under the font map lock; HarfBuzz
// shaping itself runs on pooled shapers outside it.
func (s *FontSystem) shapeParagraph(runes []rune, t Text) []shaping.Output {
	if len(runes) == 0 {
		return nil
	}

	var segs []segment
	if t.Shaping == ShapingAdvanced {
		segs = segmentBidi(string(runes), DirectionLTR)
	} else {
		segs = []segment{{Start: 0, End: len(runes), Direction: DirectionLTR}}
	}

	size := floatToFixed(t.Size)

	s.mu.Lock()
	s.fontMap.SetQuery(s.query(t.Font))
	inputs := make([]shaping.Input, 0, len(segs))
	for _, seg := range segs {
		in := shaping.Input{
			Text:      runes,
			RunStart:  seg.Start,
			RunEnd:    seg.End,
			Direction: mapDirection(seg.Direction),
			Size:      size,
			Script:    detectScript(runes[seg.Start:seg.End]),
			Language:  language.NewLanguage("en"),
		}
		inputs = append(inputs, s.splitter.Split(in, s.fontMap)...)
	}
	s.mu.Unlock()

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	outs := make([]shaping.Output, 0, len(inputs))
	for _, in := range inputs {
		if in.Face == nil {
			continue
		}
		outs = append(outs, hb.Shape(in))
	}
	return outs
}

// convertRun converts a shaped output into a Run. size is the requested
// font size; paraStart is the rune offset of the paragraph within the
// full content.
func convertRun(out shaping.Output, size float64, paraStart int) Run {
	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		glyphs[i] = Glyph{
			ID:       uint32(g.GlyphID),
			Cluster:  paraStart + g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.Advance),
		}
		x += fixedToFloat(g.Advance)
	}

	dir := DirectionLTR
	if out.Direction == di.DirectionRTL {
		dir = DirectionRTL
	}

	return Run{
		Glyphs:    glyphs,
		Face:      out.Face,
		Size:      size,
		Direction: dir,
		Advance:   fixedToFloat(out.Advance),
		Ascent:    fixedToFloat(out.LineBounds.Ascent),
		Descent:   -fixedToFloat(out.LineBounds.Descent),
		Start:     paraStart + out.Runes.Offset,
		End:       paraStart + out.Runes.Offset + out.Runes.Count,
	}
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script segments are split further by the
// font map splitter.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
