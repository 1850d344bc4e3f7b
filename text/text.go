package text

import "github.com/easelui/easel/graphics"

// DefaultLineHeightFactor is the line height multiplier applied to the
// font size when Text.LineHeight is zero.
const DefaultLineHeightFactor = 1.3

// Alignment specifies horizontal text alignment. It also determines how
// the text relates to its anchor position: left-aligned text starts at
// the anchor, centered text is centered on it, right-aligned text ends
// at it.
type Alignment int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VerticalAlignment specifies how text relates vertically to its anchor
// position.
type VerticalAlignment int

const (
	// VAlignTop places the top of the text at the anchor (default).
	VAlignTop VerticalAlignment = iota
	// VAlignCenter centers the text vertically on the anchor.
	VAlignCenter
	// VAlignBottom places the bottom of the text at the anchor.
	VAlignBottom
)

// String returns the string representation of the vertical alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case VAlignTop:
		return "Top"
	case VAlignCenter:
		return "Center"
	case VAlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// Shaping selects the shaping strategy for a piece of text.
type Shaping int

const (
	// ShapingBasic treats the text as a single left-to-right run. It is
	// cheaper and sufficient for simple alphabets.
	ShapingBasic Shaping = iota
	// ShapingAdvanced performs bidirectional segmentation and per-script
	// shaping. Required for RTL scripts and mixed-script content.
	ShapingAdvanced
)

// String returns the string representation of the shaping strategy.
func (s Shaping) String() string {
	switch s {
	case ShapingBasic:
		return "Basic"
	case ShapingAdvanced:
		return "Advanced"
	default:
		return unknownStr
	}
}

// Wrapping selects where lines may break when text exceeds its bounds.
type Wrapping int

const (
	// WrapWord breaks lines at word boundaries (default).
	WrapWord Wrapping = iota
	// WrapGlyph breaks lines at any glyph.
	WrapGlyph
	// WrapWordOrGlyph breaks at word boundaries, falling back to glyph
	// boundaries when a single word exceeds the bounds.
	WrapWordOrGlyph
	// WrapNone disables wrapping; text may overflow its bounds.
	WrapNone
)

// String returns the string representation of the wrapping mode.
func (w Wrapping) String() string {
	switch w {
	case WrapWord:
		return "Word"
	case WrapGlyph:
		return "Glyph"
	case WrapWordOrGlyph:
		return "WordOrGlyph"
	case WrapNone:
		return "None"
	default:
		return unknownStr
	}
}

// Text is a block of content together with the attributes needed to lay
// it out.
type Text struct {
	// Content is the string to draw.
	Content string

	// Bounds is the layout area. Width limits line length for wrapping;
	// Height is used by vertical alignment.
	Bounds graphics.Size

	// Size is the font size in logical pixels.
	Size float64

	// LineHeight is the vertical distance between baselines in logical
	// pixels. Zero selects Size * DefaultLineHeightFactor.
	LineHeight float64

	// Font selects the typeface.
	Font Font

	// AlignX is the horizontal alignment relative to the anchor.
	AlignX Alignment

	// AlignY is the vertical alignment relative to the anchor.
	AlignY VerticalAlignment

	// Shaping selects the shaping strategy.
	Shaping Shaping

	// Wrapping selects where lines may break.
	Wrapping Wrapping
}

// ResolvedLineHeight returns the effective distance between baselines.
func (t Text) ResolvedLineHeight() float64 {
	if t.LineHeight > 0 {
		return t.LineHeight
	}
	return t.Size * DefaultLineHeightFactor
}
