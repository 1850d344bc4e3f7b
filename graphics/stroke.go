package graphics

// LineCap defines how line endpoints are drawn.
type LineCap int

const (
	// CapButt ends the line exactly at the endpoint.
	CapButt LineCap = iota
	// CapRound extends the line with a semicircle.
	CapRound
	// CapSquare extends the line with a half square.
	CapSquare
)

// LineJoin defines how line segments are connected.
type LineJoin int

const (
	// JoinMiter extends the outer edges to meet at a sharp point.
	JoinMiter LineJoin = iota
	// JoinRound connects segments with a circular arc.
	JoinRound
	// JoinBevel connects segments with a straight edge.
	JoinBevel
)

// Dash describes a dashing pattern applied along a stroked path. Segments
// alternate between drawn and skipped lengths; Offset shifts where the
// pattern starts.
type Dash struct {
	Segments []float64
	Offset   float64
}

// Stroke describes how a path outline is painted.
type Stroke struct {
	Style      Style
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// DefaultStroke returns a 1px solid black stroke with butt caps and miter
// joins.
func DefaultStroke() Stroke {
	return Stroke{
		Style:      Solid{Color: Black},
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}

// WithColor returns a copy of the stroke painted in a solid color.
func (s Stroke) WithColor(c RGBA) Stroke {
	s.Style = Solid{Color: c}
	return s
}

// WithWidth returns a copy of the stroke with the given line width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}
