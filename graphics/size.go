package graphics

// Size is a width and height in logical pixels.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Expand returns the size grown by a vector.
func (s Size) Expand(v Vector) Size {
	return Size{Width: s.Width + v.X, Height: s.Height + v.Y}
}
