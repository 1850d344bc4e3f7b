package graphics

import "math"

// Rectangle is an axis-aligned rectangle given by its top-left corner and
// its size.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// InfiniteRect returns a rectangle covering every point a drawing can
// reach. It is the neutral element for clipping: intersecting with it
// changes nothing. The corner sits at half the most negative finite
// value rather than -Inf so bounds arithmetic never yields NaN.
func InfiniteRect() Rectangle {
	return Rectangle{
		X:      -math.MaxFloat64 / 2,
		Y:      -math.MaxFloat64 / 2,
		Width:  math.Inf(1),
		Height: math.Inf(1),
	}
}

// Rect is a convenience function to create a Rectangle.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rectangle from a top-left corner and a size.
func RectAt(topLeft Point, size Size) Rectangle {
	return Rectangle{X: topLeft.X, Y: topLeft.Y, Width: size.Width, Height: size.Height}
}

// RectWithSize creates a Rectangle of the given size with its top-left
// corner at the origin.
func RectWithSize(size Size) Rectangle {
	return Rectangle{Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner of the rectangle.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies within the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether the two rectangles overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Intersection returns the overlapping region of two rectangles.
// The second return value is false when they do not overlap.
func (r Rectangle) Intersection(o Rectangle) (Rectangle, bool) {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.X+r.Width, o.X+o.Width)
	bottom := min(r.Y+r.Height, o.Y+o.Height)
	if right <= x || bottom <= y {
		return Rectangle{}, false
	}
	return Rectangle{X: x, Y: y, Width: right - x, Height: bottom - y}, true
}

// Add returns the rectangle translated by a vector.
func (r Rectangle) Add(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
