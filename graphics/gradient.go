package graphics

import "sort"

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop is a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a smooth color transition usable both as a Background and as
// a fill Style. This is a sealed interface - a gradient is either a
// LinearGradient or a RadialGradient.
type Gradient interface {
	Background
	Style
	gradientMarker()
}

// LinearGradient interpolates colors along the line from Start to End.
type LinearGradient struct {
	Start, End Point
	Stops      []ColorStop
	Extend     ExtendMode
}

func (LinearGradient) backgroundMarker() {}
func (LinearGradient) styleMarker()      {}
func (LinearGradient) gradientMarker()   {}

// Linear creates a linear gradient between two points with no stops.
func Linear(start, end Point) LinearGradient {
	return LinearGradient{Start: start, End: end}
}

// AddStop returns a copy of the gradient with an additional color stop.
// Stops are kept sorted by offset.
func (g LinearGradient) AddStop(offset float64, color RGBA) LinearGradient {
	g.Stops = addStop(g.Stops, offset, color)
	return g
}

// RadialGradient interpolates colors outward from Center up to Radius.
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []ColorStop
	Extend ExtendMode
}

func (RadialGradient) backgroundMarker() {}
func (RadialGradient) styleMarker()      {}
func (RadialGradient) gradientMarker()   {}

// Radial creates a radial gradient with no stops.
func Radial(center Point, radius float64) RadialGradient {
	return RadialGradient{Center: center, Radius: radius}
}

// AddStop returns a copy of the gradient with an additional color stop.
// Stops are kept sorted by offset.
func (g RadialGradient) AddStop(offset float64, color RGBA) RadialGradient {
	g.Stops = addStop(g.Stops, offset, color)
	return g
}

// addStop appends a stop without mutating the input slice and keeps the
// result ordered by offset.
func addStop(stops []ColorStop, offset float64, color RGBA) []ColorStop {
	out := make([]ColorStop, len(stops), len(stops)+1)
	copy(out, stops)
	out = append(out, ColorStop{Offset: offset, Color: color})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}
