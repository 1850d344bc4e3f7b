package easel

import (
	"github.com/easelui/easel/backend/gpu"
	"github.com/easelui/easel/backend/soft"
)

// Geometry is a finished batch of vector drawing baked by a frame.
// It carries the backend variant of the renderer the frame was made
// for; Renderer.Draw accepts it only on that same variant. Geometries
// are cheap to copy and safe to draw many times across redraws.
type Geometry struct {
	soft *soft.Primitive
	gpu  *gpu.Primitive
}

// matches reports whether g carries r's backend variant.
func (g Geometry) matches(r *Renderer) bool {
	return (g.soft != nil) == (r.soft != nil) && (g.gpu != nil) == (r.gpu != nil)
}
