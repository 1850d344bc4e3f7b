package graphics

// Background is what the renderer paints behind content, most prominently
// in quad fills. This is a sealed interface - only types in this package
// implement it.
//
// A Background is either a Solid color or a gradient (LinearGradient,
// RadialGradient). Image patterns are deliberately not backgrounds; they
// participate only in vector-path fills (see Style).
type Background interface {
	// backgroundMarker is an unexported method that seals this interface.
	backgroundMarker()
}

// Solid is a single-color background or fill style.
type Solid struct {
	Color RGBA
}

func (Solid) backgroundMarker() {}
func (Solid) styleMarker()      {}
