package text

import (
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"

	"github.com/easelui/easel/graphics"
)

// Line is a laid-out row of runs.
type Line struct {
	// Runs are in visual order. Run.X positions are paragraph-relative.
	Runs []Run

	// Width is the total advance of the line.
	Width float64

	// Ascent and Descent are the maximum run metrics, both positive.
	Ascent  float64
	Descent float64

	// Y is the baseline position within the paragraph.
	Y float64

	// Start and End delimit the line's rune range within the content.
	// End excludes a trailing hard break.
	Start, End int
}

// Paragraph is a shaped, line-wrapped block of text. It is immutable
// except for Resize; create one per distinct piece of content and reuse
// it across frames.
type Paragraph struct {
	fs         *FontSystem
	text       Text
	lines      []Line
	minWidth   float64
	lineHeight float64
}

// NewParagraph shapes and lays out the given text.
func NewParagraph(fs *FontSystem, t Text) *Paragraph {
	p := &Paragraph{fs: fs, text: t}
	p.layout()
	return p
}

// Text returns the source text the paragraph was built from.
func (p *Paragraph) Text() Text {
	return p.text
}

// Lines returns the laid-out lines. The returned slice must not be
// modified.
func (p *Paragraph) Lines() []Line {
	return p.lines
}

// LineHeight returns the effective distance between baselines.
func (p *Paragraph) LineHeight() float64 {
	return p.lineHeight
}

// MinWidth returns the width of the widest line.
func (p *Paragraph) MinWidth() float64 {
	return p.minWidth
}

// MinHeight returns the height occupied by all lines.
func (p *Paragraph) MinHeight() float64 {
	return float64(len(p.lines)) * p.lineHeight
}

// MinBounds returns the smallest size that fits the laid-out content.
func (p *Paragraph) MinBounds() graphics.Size {
	return graphics.Sz(p.minWidth, p.MinHeight())
}

// Resize re-lays out the paragraph within new bounds. Shaping is reused
// conceptually but recomputed; callers should avoid resizing every frame.
func (p *Paragraph) Resize(bounds graphics.Size) {
	p.text.Bounds = bounds
	p.layout()
}

func (p *Paragraph) layout() {
	p.lines = p.lines[:0]
	p.minWidth = 0
	p.lineHeight = p.text.ResolvedLineHeight()

	content := normalizeNewlines(p.text.Content)
	paras := strings.Split(content, "\n")

	maxWidth := 1 << 30
	if p.text.Wrapping != WrapNone && p.text.Bounds.Width > 0 {
		maxWidth = int(p.text.Bounds.Width)
	}

	brk := shaping.WhenNecessary
	switch p.text.Wrapping {
	case WrapWord:
		brk = shaping.Never
	case WrapGlyph:
		brk = shaping.Always
	}
	cfg := shaping.WrapConfig{
		Direction:   di.DirectionLTR,
		BreakPolicy: brk,
	}

	var wrapper shaping.LineWrapper

	paraStart := 0
	for _, para := range paras {
		runes := []rune(para)
		outs := p.fs.shapeParagraph(runes, p.text)
		if len(outs) == 0 {
			// A blank paragraph still occupies a line.
			p.appendLine(Line{Start: paraStart, End: paraStart})
			paraStart += len(runes) + 1
			continue
		}

		wrapped, _ := wrapper.WrapParagraph(cfg, maxWidth, runes, shaping.NewSliceIterator(outs))
		for _, wl := range wrapped {
			p.appendLine(buildLine(wl, p.text.Size, paraStart))
		}
		paraStart += len(runes) + 1
	}

	container := p.text.Bounds.Width
	if container <= 0 {
		container = p.minWidth
	}
	for i := range p.lines {
		ln := &p.lines[i]
		ln.Y = float64(i)*p.lineHeight + ln.Ascent
		applyAlignment(ln, p.text.AlignX, container)
	}
}

func (p *Paragraph) appendLine(ln Line) {
	if ln.Width > p.minWidth {
		p.minWidth = ln.Width
	}
	p.lines = append(p.lines, ln)
}

// buildLine converts one wrapped go-text line into a Line with
// paragraph-relative run origins.
func buildLine(wl shaping.Line, size float64, paraStart int) Line {
	ln := Line{Runs: make([]Run, 0, len(wl))}
	var x float64
	for i, out := range wl {
		run := convertRun(out, size, paraStart)
		run.X = x
		x += run.Advance

		if i == 0 {
			ln.Start = run.Start
			ln.End = run.End
		} else {
			ln.Start = min(ln.Start, run.Start)
			ln.End = max(ln.End, run.End)
		}
		ln.Ascent = max(ln.Ascent, run.Ascent)
		ln.Descent = max(ln.Descent, run.Descent)

		ln.Runs = append(ln.Runs, run)
	}
	ln.Width = x
	return ln
}

// applyAlignment shifts run origins to align the line within the
// container width.
func applyAlignment(ln *Line, align Alignment, container float64) {
	var offset float64
	switch align {
	case AlignCenter:
		offset = (container - ln.Width) / 2
	case AlignRight:
		offset = container - ln.Width
	default:
		return
	}
	if offset <= 0 {
		return
	}
	for i := range ln.Runs {
		ln.Runs[i].X += offset
	}
}

// HitTest maps a point in paragraph coordinates to the rune index of the
// nearest cluster boundary. It reports false when the point lies outside
// the paragraph's minimum bounds.
func (p *Paragraph) HitTest(pt graphics.Point) (int, bool) {
	if len(p.lines) == 0 {
		return 0, false
	}
	if pt.Y < 0 || pt.Y >= p.MinHeight() {
		return 0, false
	}

	li := int(pt.Y / p.lineHeight)
	if li >= len(p.lines) {
		li = len(p.lines) - 1
	}
	ln := &p.lines[li]

	if pt.X < lineStartX(ln) {
		return ln.Start, true
	}

	for ri := range ln.Runs {
		run := &ln.Runs[ri]
		pen := run.X
		for gi := range run.Glyphs {
			adv := run.Glyphs[gi].XAdvance
			if pt.X >= pen && pt.X < pen+adv {
				if pt.X < pen+adv/2 {
					return run.Glyphs[gi].Cluster, true
				}
				return clusterEnd(run, gi), true
			}
			pen += adv
		}
	}

	return ln.End, true
}

// GraphemePosition returns the position of the boundary before the rune
// at index within the given line, as the top of the caret. Positions
// inside right-to-left runs are the visual pen position of the cluster.
func (p *Paragraph) GraphemePosition(line, index int) (graphics.Point, bool) {
	if line < 0 || line >= len(p.lines) {
		return graphics.Point{}, false
	}
	ln := &p.lines[line]
	top := float64(line) * p.lineHeight

	if index < ln.Start || index > ln.End {
		return graphics.Point{}, false
	}
	if index == ln.Start {
		return graphics.Pt(lineStartX(ln), top), true
	}

	var end float64
	for ri := range ln.Runs {
		run := &ln.Runs[ri]
		pen := run.X
		for gi := range run.Glyphs {
			if run.Glyphs[gi].Cluster == index {
				return graphics.Pt(pen, top), true
			}
			pen += run.Glyphs[gi].XAdvance
		}
		end = pen
	}

	// index falls on the line end or inside a ligature with no exact
	// cluster boundary; use the line end.
	return graphics.Pt(end, top), true
}

// lineStartX returns the x origin of the first visual run.
func lineStartX(ln *Line) float64 {
	if len(ln.Runs) == 0 {
		return 0
	}
	return ln.Runs[0].X
}

// clusterEnd returns the first rune index after the cluster of glyph gi.
// Glyphs are stored in visual order, so the scan direction depends on the
// run direction.
func clusterEnd(run *Run, gi int) int {
	c := run.Glyphs[gi].Cluster
	if run.Direction == DirectionRTL {
		for i := gi - 1; i >= 0; i-- {
			if run.Glyphs[i].Cluster != c {
				return run.Glyphs[i].Cluster
			}
		}
	} else {
		for i := gi + 1; i < len(run.Glyphs); i++ {
			if run.Glyphs[i].Cluster != c {
				return run.Glyphs[i].Cluster
			}
		}
	}
	return run.End
}

// normalizeNewlines converts Windows and legacy Mac line endings.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
