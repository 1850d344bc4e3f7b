package graphics

import "math"

// Transformation is a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Transformation struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation.
func Translate(x, y float64) Transformation {
	return Transformation{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling transformation.
func Scale(x, y float64) Transformation {
	return Transformation{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation (angle in radians).
func Rotate(angle float64) Transformation {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transformation{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply composes two transformations (t * other).
// The result applies other first, then t.
func (t Transformation) Multiply(other Transformation) Transformation {
	return Transformation{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// TransformPoint applies the transformation to a point.
func (t Transformation) TransformPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (t Transformation) TransformVector(v Vector) Vector {
	return Vector{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// TransformRectangle applies an axis-preserving transformation to a
// rectangle. The result is only meaningful when IsAxisAligned reports true.
func (t Transformation) TransformRectangle(r Rectangle) Rectangle {
	tl := t.TransformPoint(Point{X: r.X, Y: r.Y})
	br := t.TransformPoint(Point{X: r.X + r.Width, Y: r.Y + r.Height})
	return Rectangle{
		X:      min(tl.X, br.X),
		Y:      min(tl.Y, br.Y),
		Width:  math.Abs(br.X - tl.X),
		Height: math.Abs(br.Y - tl.Y),
	}
}

// Invert returns the inverse transformation.
// Returns the identity if the transformation is not invertible.
func (t Transformation) Invert() Transformation {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Transformation{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}
}

// IsIdentity reports whether the transformation is the identity.
func (t Transformation) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}

// IsTranslation reports whether the transformation is only a translation.
func (t Transformation) IsTranslation() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}

// IsAxisAligned reports whether the transformation maps axis-aligned
// rectangles to axis-aligned rectangles (no rotation or shear).
func (t Transformation) IsAxisAligned() bool {
	return t.B == 0 && t.D == 0
}
