package soft

import "github.com/easelui/easel/internal/record"

// Primitive is a finished batch of software drawing operations. A frame
// produces one via IntoPrimitive; Renderer.DrawPrimitive splices it back
// into the scene, possibly many times across redraws.
type Primitive struct {
	Ops []record.Op
}
