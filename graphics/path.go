package graphics

import "math"

// PathElement represents a single element in a path. This is a sealed
// interface - only the element types in this package implement it.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an immutable vector path. Build one with NewPath or one of the
// shape constructors.
type Path struct {
	elements []PathElement
}

// NewPath builds a path by running the given function against a fresh
// Builder.
func NewPath(build func(*Builder)) *Path {
	b := NewBuilder()
	build(b)
	return b.Build()
}

// Elements returns the path elements. The returned slice must not be
// modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Transform returns a copy of the path with a transformation applied to
// every point.
func (p *Path) Transform(t Transformation) *Path {
	b := NewBuilder()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b.MoveTo(t.TransformPoint(e.Point))
		case LineTo:
			b.LineTo(t.TransformPoint(e.Point))
		case QuadTo:
			b.QuadraticTo(t.TransformPoint(e.Control), t.TransformPoint(e.Point))
		case CubicTo:
			b.CubicTo(
				t.TransformPoint(e.Control1),
				t.TransformPoint(e.Control2),
				t.TransformPoint(e.Point),
			)
		case Close:
			b.Close()
		}
	}
	return b.Build()
}

// Bounds returns the axis-aligned bounding rectangle of the path's control
// polygon. Curves may render slightly inside it but never outside.
func (p *Path) Bounds() Rectangle {
	if len(p.elements) == 0 {
		return Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	if math.IsInf(minX, 1) {
		return Rectangle{}
	}
	return Rect(minX, minY, maxX-minX, maxY-minY)
}

// LinePath creates a path consisting of a single straight line.
func LinePath(from, to Point) *Path {
	return NewPath(func(b *Builder) {
		b.MoveTo(from)
		b.LineTo(to)
	})
}

// RectanglePath creates a closed rectangular path.
func RectanglePath(topLeft Point, size Size) *Path {
	return NewPath(func(b *Builder) {
		b.Rectangle(topLeft, size)
	})
}

// CirclePath creates a closed circular path.
func CirclePath(center Point, radius float64) *Path {
	return NewPath(func(b *Builder) {
		b.Circle(center, radius)
	})
}

// Builder accumulates path elements. Call Build to obtain the finished
// immutable Path.
type Builder struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewBuilder creates an empty path builder.
func NewBuilder() *Builder {
	return &Builder{
		elements: make([]PathElement, 0, 16),
	}
}

// Build returns the accumulated path. The builder must not be used after
// calling Build.
func (b *Builder) Build() *Path {
	return &Path{elements: b.elements}
}

// MoveTo moves to a point without drawing, starting a new subpath.
func (b *Builder) MoveTo(p Point) {
	b.elements = append(b.elements, MoveTo{Point: p})
	b.start = p
	b.current = p
}

// LineTo draws a line to a point.
func (b *Builder) LineTo(p Point) {
	b.elements = append(b.elements, LineTo{Point: p})
	b.current = p
}

// QuadraticTo draws a quadratic Bezier curve to a point.
func (b *Builder) QuadraticTo(control, p Point) {
	b.elements = append(b.elements, QuadTo{Control: control, Point: p})
	b.current = p
}

// CubicTo draws a cubic Bezier curve to a point.
func (b *Builder) CubicTo(control1, control2, p Point) {
	b.elements = append(b.elements, CubicTo{
		Control1: control1,
		Control2: control2,
		Point:    p,
	})
	b.current = p
}

// Close closes the current subpath by drawing a line to its start point.
func (b *Builder) Close() {
	b.elements = append(b.elements, Close{})
	b.current = b.start
}

// CurrentPoint returns the current point.
func (b *Builder) CurrentPoint() Point {
	return b.current
}

// Rectangle adds a closed rectangle subpath.
func (b *Builder) Rectangle(topLeft Point, size Size) {
	b.MoveTo(topLeft)
	b.LineTo(Pt(topLeft.X+size.Width, topLeft.Y))
	b.LineTo(Pt(topLeft.X+size.Width, topLeft.Y+size.Height))
	b.LineTo(Pt(topLeft.X, topLeft.Y+size.Height))
	b.Close()
}

// Circle adds a closed circle subpath approximated with cubic Bezier
// curves.
func (b *Builder) Circle(center Point, radius float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	cx, cy, r := center.X, center.Y, radius
	offset := r * k

	b.MoveTo(Pt(cx+r, cy))
	b.CubicTo(Pt(cx+r, cy+offset), Pt(cx+offset, cy+r), Pt(cx, cy+r))
	b.CubicTo(Pt(cx-offset, cy+r), Pt(cx-r, cy+offset), Pt(cx-r, cy))
	b.CubicTo(Pt(cx-r, cy-offset), Pt(cx-offset, cy-r), Pt(cx, cy-r))
	b.CubicTo(Pt(cx+offset, cy-r), Pt(cx+r, cy-offset), Pt(cx+r, cy))
	b.Close()
}

// Ellipse adds a closed ellipse subpath.
func (b *Builder) Ellipse(center Point, rx, ry float64) {
	const k = 0.5522847498307936
	cx, cy := center.X, center.Y
	ox := rx * k
	oy := ry * k

	b.MoveTo(Pt(cx+rx, cy))
	b.CubicTo(Pt(cx+rx, cy+oy), Pt(cx+ox, cy+ry), Pt(cx, cy+ry))
	b.CubicTo(Pt(cx-ox, cy+ry), Pt(cx-rx, cy+oy), Pt(cx-rx, cy))
	b.CubicTo(Pt(cx-rx, cy-oy), Pt(cx-ox, cy-ry), Pt(cx, cy-ry))
	b.CubicTo(Pt(cx+ox, cy-ry), Pt(cx+rx, cy-oy), Pt(cx+rx, cy))
	b.Close()
}

// Arc adds a circular arc from startAngle to endAngle (radians) around
// center.
func (b *Builder) Arc(center Point, radius, startAngle, endAngle float64) {
	// Normalize angles
	const twoPi = 2 * math.Pi
	for endAngle < startAngle {
		endAngle += twoPi
	}

	// Split into multiple cubic Bezier curves, at most 90 degrees each
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((endAngle - startAngle) / maxAngle))
	if numSegments == 0 {
		numSegments = 1
	}
	angleStep := (endAngle - startAngle) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := startAngle + float64(i)*angleStep
		a2 := a1 + angleStep
		b.arcSegment(center.X, center.Y, radius, a1, a2)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (b *Builder) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(b.elements) == 0 {
		b.MoveTo(Pt(x1, y1))
	}
	b.CubicTo(Pt(c1x, c1y), Pt(c2x, c2y), Pt(x2, y2))
}

// RoundedRectangle adds a closed rectangle subpath with rounded corners.
func (b *Builder) RoundedRectangle(topLeft Point, size Size, radius float64) {
	x, y := topLeft.X, topLeft.Y
	w, h := size.Width, size.Height

	// Clamp radius to half of the smaller dimension
	maxR := math.Min(w, h) / 2
	if radius > maxR {
		radius = maxR
	}
	r := radius

	b.MoveTo(Pt(x+r, y))
	b.LineTo(Pt(x+w-r, y))
	b.Arc(Pt(x+w-r, y+r), r, -math.Pi/2, 0)
	b.LineTo(Pt(x+w, y+h-r))
	b.Arc(Pt(x+w-r, y+h-r), r, 0, math.Pi/2)
	b.LineTo(Pt(x+r, y+h))
	b.Arc(Pt(x+r, y+h-r), r, math.Pi/2, math.Pi)
	b.LineTo(Pt(x, y+r))
	b.Arc(Pt(x+r, y+r), r, math.Pi, 3*math.Pi/2)
	b.Close()
}
