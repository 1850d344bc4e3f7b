package graphics

// Radius holds per-corner rounding radii for a quad.
type Radius struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// RadiusAll returns a Radius with the same value on every corner.
func RadiusAll(r float64) Radius {
	return Radius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Border describes the outline of a quad.
type Border struct {
	Color  RGBA
	Width  float64
	Radius Radius
}

// Shadow describes a drop shadow cast by a quad.
type Shadow struct {
	Color      RGBA
	Offset     Vector
	BlurRadius float64
}

// Quad is an axis-aligned rectangle with an optional border and shadow.
// Quads are the workhorse primitive of widget rendering; they are cheaper
// than a full path fill on every backend.
type Quad struct {
	Bounds Rectangle
	Border Border
	Shadow Shadow
}
