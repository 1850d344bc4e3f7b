package gpu

import (
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/internal/record"
	"github.com/easelui/easel/text"
)

// Frame records vector drawing into a region of the given size. Shapes
// are captured under the current transform; text runs are staged
// separately so the glyph pipeline can draw them above the tessellated
// content. The recording becomes a reusable Primitive via IntoPrimitive.
type Frame struct {
	size      graphics.Size
	transform graphics.Transformation
	stack     []graphics.Transformation
	ops       []record.Op
	texts     []record.Text
}

// NewFrame returns an empty frame covering size.
func NewFrame(size graphics.Size) *Frame {
	return &Frame{size: size, transform: graphics.Identity()}
}

// Size returns the frame dimensions.
func (f *Frame) Size() graphics.Size { return f.size }

// Fill paints the interior of path with the given style.
func (f *Frame) Fill(path *graphics.Path, fill graphics.Fill) {
	f.ops = append(f.ops, record.Fill{
		Path:      path,
		Transform: f.transform,
		Style:     fill.Style,
		Rule:      fill.Rule,
	})
}

// FillRectangle paints an axis-aligned rectangle. Under a pure
// translation the rectangle is baked into final coordinates so it
// tessellates as a single quad; any other transform routes through the
// path pipeline.
func (f *Frame) FillRectangle(topLeft graphics.Point, size graphics.Size, fill graphics.Fill) {
	if f.transform.IsTranslation() {
		v := graphics.Vec(f.transform.C, f.transform.F)
		f.ops = append(f.ops, record.Rect{
			Bounds: graphics.RectAt(topLeft, size).Add(v),
			Style:  record.TranslateStyle(fill.Style, v),
		})
		return
	}
	f.ops = append(f.ops, record.Fill{
		Path:      graphics.RectanglePath(topLeft, size),
		Transform: f.transform,
		Style:     fill.Style,
		Rule:      fill.Rule,
	})
}

// Stroke paints the outline of path.
func (f *Frame) Stroke(path *graphics.Path, stroke graphics.Stroke) {
	f.ops = append(f.ops, record.Stroke{
		Path:      path,
		Transform: f.transform,
		Stroke:    stroke,
	})
}

// FillText stages a text block anchored at position. The current
// transform moves the anchor only; glyphs are drawn upright at their
// nominal size, above everything else in the frame.
func (f *Frame) FillText(t text.Text, position graphics.Point, color graphics.RGBA) {
	f.texts = append(f.texts, record.Text{
		Text:     t,
		Position: f.transform.TransformPoint(position),
		Color:    color,
		Clip:     graphics.InfiniteRect(),
	})
}

// PushTransform saves the current transform for a later PopTransform.
func (f *Frame) PushTransform() {
	f.stack = append(f.stack, f.transform)
}

// PopTransform restores the most recently pushed transform. It panics
// when nothing has been pushed.
func (f *Frame) PopTransform() {
	if len(f.stack) == 0 {
		panic("gpu: transform stack is empty")
	}
	f.transform = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}

// Translate shifts everything drawn afterwards by v.
func (f *Frame) Translate(v graphics.Vector) {
	f.transform = f.transform.Multiply(graphics.Translate(v.X, v.Y))
}

// Rotate turns everything drawn afterwards by angle radians.
func (f *Frame) Rotate(angle float64) {
	f.transform = f.transform.Multiply(graphics.Rotate(angle))
}

// Scale resizes everything drawn afterwards by a uniform factor.
func (f *Frame) Scale(factor float64) {
	f.ScaleXY(graphics.Vec(factor, factor))
}

// ScaleXY resizes everything drawn afterwards per axis.
func (f *Frame) ScaleXY(s graphics.Vector) {
	f.transform = f.transform.Multiply(graphics.Scale(s.X, s.Y))
}

// Clip merges a finished sub-frame so its content lands at origin and
// stays confined to the sub-frame's own bounds placed there. Staged text
// is clipped here: runs falling entirely outside the region are dropped,
// the rest keep the region as their clip bounds.
func (f *Frame) Clip(sub *Frame, origin graphics.Point) {
	v := graphics.Vec(origin.X, origin.Y)
	region := graphics.RectAt(origin, sub.size)
	f.ops = append(f.ops, record.Clip{
		Bounds: region,
		Ops:    record.TranslateOps(sub.ops, v),
	})
	for _, t := range record.TranslateTexts(sub.texts, v) {
		clipped, ok := t.Clip.Intersection(region)
		if !ok {
			continue
		}
		t.Clip = clipped
		f.texts = append(f.texts, t)
	}
}

// IntoPrimitive hands the recorded operations over as a primitive. The
// frame keeps its size and transform but no longer owns any content.
func (f *Frame) IntoPrimitive() Primitive {
	ops, texts := f.ops, f.texts
	f.ops, f.texts = nil, nil
	return Primitive{Ops: ops, Texts: texts}
}
