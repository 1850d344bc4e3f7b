package graphics

// Style describes what a shape is filled or stroked with. This is a sealed
// interface - a style is a Solid color, a Gradient, or a Pattern. The set of
// styles a renderer accepts is a capability contract: every backend must be
// able to draw any of them.
type Style interface {
	styleMarker()
}

// FillRule determines which regions of a self-intersecting path count as
// inside.
type FillRule int

const (
	// NonZero fills regions with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd fills regions crossed by an odd number of edges.
	EvenOdd
)

// Fill describes how a path interior is painted.
type Fill struct {
	Style Style
	Rule  FillRule
}

// ColorFill fills with a single solid color using the non-zero rule.
func ColorFill(c RGBA) Fill {
	return Fill{Style: Solid{Color: c}}
}

// GradientFill fills with a gradient using the non-zero rule.
func GradientFill(g Gradient) Fill {
	return Fill{Style: g}
}

// PatternFill tiles an image across the filled region using the non-zero
// rule.
func PatternFill(p Pattern) Fill {
	return Fill{Style: p}
}

// Pattern fills a region by tiling an image.
type Pattern struct {
	Image ImageHandle
}

func (Pattern) styleMarker() {}
