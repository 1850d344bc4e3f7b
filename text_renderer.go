package easel

import (
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/text"
)

// DefaultFont returns the font used when a text run leaves its font
// unset.
func (r *Renderer) DefaultFont() text.Font {
	return r.active().DefaultFont()
}

// DefaultSize returns the text size used when a text run leaves its
// size unset.
func (r *Renderer) DefaultSize() float64 {
	return r.active().DefaultSize()
}

// FontSystem returns the font system backing text layout. Paragraphs
// and editors drawn through the renderer must be shaped against it.
func (r *Renderer) FontSystem() *text.FontSystem {
	return r.active().FontSystem()
}

// LoadFont registers font data for subsequent text runs. Text shaped
// before the load does not pick the new font up retroactively.
func (r *Renderer) LoadFont(data []byte) error {
	return r.active().LoadFont(data)
}

// FillParagraph draws an externally shaped paragraph anchored at
// position, confined to clip.
func (r *Renderer) FillParagraph(p *text.Paragraph, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.active().FillParagraph(p, position, color, clip)
}

// FillEditor draws the shaped view of a text editor anchored at
// position, confined to clip.
func (r *Renderer) FillEditor(e *text.Editor, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.active().FillEditor(e, position, color, clip)
}

// FillText draws a block of text shaped at draw time, anchored at
// position and confined to clip. Prefer FillParagraph when the same
// content draws across frames; it shapes once.
func (r *Renderer) FillText(t text.Text, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.active().FillText(t, position, color, clip)
}
