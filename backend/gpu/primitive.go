package gpu

import "github.com/easelui/easel/internal/record"

// Primitive is a finished batch of GPU drawing operations. Text runs are
// kept apart from the rest: the glyph pipeline draws them in their own
// pass, above every tessellated shape in the batch.
type Primitive struct {
	Ops   []record.Op
	Texts []record.Text
}
