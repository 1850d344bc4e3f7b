package easel

import (
	"github.com/easelui/easel/backend/gpu"
	"github.com/easelui/easel/backend/soft"
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/text"
)

// Frame records vector drawing - paths, shapes, overlay text - under a
// transform stack. A frame is created on a renderer's backend and bakes
// into a Geometry for that same backend; the variant never changes in
// between.
//
// IntoGeometry consumes the frame. Any use after that panics.
type Frame struct {
	soft     *soft.Frame
	gpu      *gpu.Frame
	consumed bool
}

// frameOps is the operation surface both backend frames provide.
type frameOps interface {
	Size() graphics.Size
	Fill(path *graphics.Path, fill graphics.Fill)
	FillRectangle(topLeft graphics.Point, size graphics.Size, fill graphics.Fill)
	Stroke(path *graphics.Path, stroke graphics.Stroke)
	FillText(t text.Text, position graphics.Point, color graphics.RGBA)
	PushTransform()
	PopTransform()
	Translate(v graphics.Vector)
	Rotate(angle float64)
	Scale(factor float64)
	ScaleXY(s graphics.Vector)
}

var (
	_ frameOps = (*soft.Frame)(nil)
	_ frameOps = (*gpu.Frame)(nil)
)

// NewFrame returns an empty frame of the given size on r's backend.
func NewFrame(r *Renderer, size graphics.Size) *Frame {
	switch {
	case r.soft != nil:
		return &Frame{soft: soft.NewFrame(size)}
	case r.gpu != nil:
		return &Frame{gpu: gpu.NewFrame(size)}
	default:
		panic("easel: renderer has no active backend")
	}
}

// active returns the live backend frame, refusing consumed frames.
func (f *Frame) active() frameOps {
	if f.consumed {
		panic("easel: frame used after IntoGeometry")
	}
	switch {
	case f.soft != nil:
		return f.soft
	case f.gpu != nil:
		return f.gpu
	default:
		panic("easel: frame has no backend")
	}
}

// Size returns the frame dimensions.
func (f *Frame) Size() graphics.Size {
	return f.active().Size()
}

// Width returns the frame width.
func (f *Frame) Width() float64 {
	return f.active().Size().Width
}

// Height returns the frame height.
func (f *Frame) Height() float64 {
	return f.active().Size().Height
}

// Center returns the midpoint of the frame in its own coordinates.
func (f *Frame) Center() graphics.Point {
	s := f.active().Size()
	return graphics.Pt(s.Width/2, s.Height/2)
}

// Fill paints the interior of path with the given style.
func (f *Frame) Fill(path *graphics.Path, fill graphics.Fill) {
	f.active().Fill(path, fill)
}

// FillRectangle paints an axis-aligned rectangle with the given style.
func (f *Frame) FillRectangle(topLeft graphics.Point, size graphics.Size, fill graphics.Fill) {
	f.active().FillRectangle(topLeft, size, fill)
}

// Stroke paints the outline of path.
func (f *Frame) Stroke(path *graphics.Path, stroke graphics.Stroke) {
	f.active().Stroke(path, stroke)
}

// FillText draws a block of text anchored at position, composited above
// all other frame content. The frame transform moves the anchor but
// leaves the glyphs upright at their nominal size; for transformed or
// interleaved text, draw through the renderer's text operations instead.
func (f *Frame) FillText(t text.Text, position graphics.Point, color graphics.RGBA) {
	f.active().FillText(t, position, color)
}

// WithSave runs fn with the current transform saved, restoring it on
// every exit path, panics included.
func (f *Frame) WithSave(fn func(*Frame)) {
	b := f.active()
	b.PushTransform()
	defer b.PopTransform()
	fn(f)
}

// WithClip runs fn on a fresh sub-frame sized like region, then merges
// the result back with its origin at region's top-left corner. Content
// records in the sub-frame's local coordinates and cannot escape the
// region once merged.
func (f *Frame) WithClip(region graphics.Rectangle, fn func(*Frame)) {
	if f.consumed {
		panic("easel: frame used after IntoGeometry")
	}
	switch {
	case f.soft != nil:
		sub := &Frame{soft: soft.NewFrame(region.Size())}
		fn(sub)
		f.soft.Clip(sub.soft, region.Position())
	case f.gpu != nil:
		sub := &Frame{gpu: gpu.NewFrame(region.Size())}
		fn(sub)
		f.gpu.Clip(sub.gpu, region.Position())
	default:
		panic("easel: frame has no backend")
	}
}

// Translate shifts everything drawn afterwards by v.
func (f *Frame) Translate(v graphics.Vector) {
	f.active().Translate(v)
}

// Rotate turns everything drawn afterwards by angle radians.
func (f *Frame) Rotate(angle float64) {
	f.active().Rotate(angle)
}

// Scale resizes everything drawn afterwards by a uniform factor.
func (f *Frame) Scale(factor float64) {
	f.active().Scale(factor)
}

// ScaleXY resizes everything drawn afterwards per axis.
func (f *Frame) ScaleXY(s graphics.Vector) {
	f.active().ScaleXY(s)
}

// IntoGeometry bakes the recording into a geometry and consumes the
// frame.
func (f *Frame) IntoGeometry() Geometry {
	if f.consumed {
		panic("easel: frame used after IntoGeometry")
	}
	f.consumed = true
	switch {
	case f.soft != nil:
		p := f.soft.IntoPrimitive()
		return Geometry{soft: &p}
	case f.gpu != nil:
		p := f.gpu.IntoPrimitive()
		return Geometry{gpu: &p}
	default:
		panic("easel: frame has no backend")
	}
}
