package text

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"
)

func TestFixedConversion(t *testing.T) {
	tests := []struct {
		in   float64
		want fixed.Int26_6
	}{
		{16, 1024},
		{12.5, 800},
		{0, 0},
	}
	for _, tt := range tests {
		got := floatToFixed(tt.in)
		if got != tt.want {
			t.Errorf("floatToFixed(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if back := fixedToFloat(got); back != tt.in {
			t.Errorf("fixedToFloat(floatToFixed(%v)) = %v", tt.in, back)
		}
	}
}

func TestMapDirection(t *testing.T) {
	if got := mapDirection(DirectionLTR); got != di.DirectionLTR {
		t.Errorf("mapDirection(LTR) = %v", got)
	}
	if got := mapDirection(DirectionRTL); got != di.DirectionRTL {
		t.Errorf("mapDirection(RTL) = %v", got)
	}
}

func TestDetectScript(t *testing.T) {
	if got, want := detectScript([]rune("hello")), language.LookupScript('h'); got != want {
		t.Errorf("detectScript(latin) = %v, want %v", got, want)
	}
	// Leading whitespace is skipped.
	if got, want := detectScript([]rune("  \tשלום")), language.LookupScript('ש'); got != want {
		t.Errorf("detectScript(padded hebrew) = %v, want %v", got, want)
	}
	// Whitespace-only input falls back to Latin.
	if got := detectScript([]rune("   ")); got != language.Latin {
		t.Errorf("detectScript(spaces) = %v, want Latin", got)
	}
}

func TestShapeParagraphEmpty(t *testing.T) {
	fs := NewFontSystem()
	if outs := fs.shapeParagraph(nil, Text{Size: 16}); outs != nil {
		t.Errorf("shapeParagraph(empty) = %+v, want nil", outs)
	}
}

func TestShapeParagraphProducesGlyphs(t *testing.T) {
	fs := NewFontSystem()
	outs := fs.shapeParagraph([]rune("Hello"), Text{Size: 16})
	if len(outs) == 0 {
		t.Fatal("shapeParagraph produced no output runs")
	}

	glyphs := 0
	for _, out := range outs {
		if out.Face == nil {
			t.Error("shaped output has no face")
		}
		glyphs += len(out.Glyphs)
	}
	if glyphs == 0 {
		t.Error("shaped output has no glyphs")
	}
}

func TestConvertRun(t *testing.T) {
	fs := NewFontSystem()
	outs := fs.shapeParagraph([]rune("Hi"), Text{Size: 16})
	if len(outs) == 0 {
		t.Fatal("shapeParagraph produced no output runs")
	}

	const paraStart = 5
	run := convertRun(outs[0], 16, paraStart)

	if run.Size != 16 {
		t.Errorf("run size = %v, want 16", run.Size)
	}
	if run.Start != paraStart {
		t.Errorf("run start = %d, want %d", run.Start, paraStart)
	}
	if run.End != paraStart+2 {
		t.Errorf("run end = %d, want %d", run.End, paraStart+2)
	}
	if run.Advance <= 0 {
		t.Errorf("run advance = %v, want > 0", run.Advance)
	}
	if run.Ascent <= 0 {
		t.Errorf("run ascent = %v, want > 0", run.Ascent)
	}
	if run.Descent < 0 {
		t.Errorf("run descent = %v, want >= 0", run.Descent)
	}
	for i, g := range run.Glyphs {
		if g.Cluster < paraStart || g.Cluster >= paraStart+2 {
			t.Errorf("glyph %d cluster = %d, want within [%d, %d)", i, g.Cluster, paraStart, paraStart+2)
		}
	}

	// Successive glyph origins advance monotonically for LTR text.
	for i := 1; i < len(run.Glyphs); i++ {
		if run.Glyphs[i].X < run.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v before glyph %d at x=%v", i, run.Glyphs[i].X, i-1, run.Glyphs[i-1].X)
		}
	}
}

// Shaping an RTL segment keeps the run direction RTL after conversion.
func TestConvertRunDirection(t *testing.T) {
	fs := NewFontSystem()
	outs := fs.shapeParagraph([]rune("שלום"), Text{Size: 16, Shaping: ShapingAdvanced})
	if len(outs) == 0 {
		t.Fatal("shapeParagraph produced no output runs")
	}
	run := convertRun(outs[0], 16, 0)
	if run.Direction != DirectionRTL {
		t.Errorf("run direction = %v, want RTL", run.Direction)
	}
}
