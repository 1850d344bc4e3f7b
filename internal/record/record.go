// Package record defines the drawing operations renderers batch while a
// scene is assembled. Both backends share the op set; they differ only in
// how text is staged relative to other content.
package record

import (
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/text"
)

// Op is a single recorded drawing operation. This is a sealed interface -
// only the types in this package implement it.
type Op interface {
	op()
}

// Rect fills an axis-aligned rectangle. It is the baked fast path for
// rectangle fills recorded under axis-preserving transforms.
type Rect struct {
	Bounds graphics.Rectangle
	Style  graphics.Style
}

func (Rect) op() {}

// Fill paints a path interior. The path stays in local coordinates;
// Transform carries the frame transform captured at record time.
type Fill struct {
	Path      *graphics.Path
	Transform graphics.Transformation
	Style     graphics.Style
	Rule      graphics.FillRule
}

func (Fill) op() {}

// Stroke paints a path outline. The path stays in local coordinates;
// Transform carries the frame transform captured at record time.
type Stroke struct {
	Path      *graphics.Path
	Transform graphics.Transformation
	Stroke    graphics.Stroke
}

func (Stroke) op() {}

// Text draws a block of text shaped at draw time. Position is the anchor
// point with the frame transform already applied; the glyphs themselves
// are never transformed.
type Text struct {
	Text     text.Text
	Position graphics.Point
	Color    graphics.RGBA
	Clip     graphics.Rectangle
}

func (Text) op() {}

// Paragraph draws an externally shaped paragraph.
type Paragraph struct {
	Paragraph *text.Paragraph
	Position  graphics.Point
	Color     graphics.RGBA
	Clip      graphics.Rectangle
}

func (Paragraph) op() {}

// Editor draws the shaped view of a text editor.
type Editor struct {
	Editor   *text.Editor
	Position graphics.Point
	Color    graphics.RGBA
	Clip     graphics.Rectangle
}

func (Editor) op() {}

// Quad draws a background into a bordered, possibly shadowed rectangle.
type Quad struct {
	Quad       graphics.Quad
	Background graphics.Background
}

func (Quad) op() {}

// Image draws a raster image scaled into Bounds.
type Image struct {
	Handle graphics.ImageHandle
	Filter graphics.FilterMethod
	Bounds graphics.Rectangle
}

func (Image) op() {}

// Svg draws a vector image scaled into Bounds. A non-nil Color replaces
// the document's own fill colors.
type Svg struct {
	Handle graphics.SVGHandle
	Color  *graphics.RGBA
	Bounds graphics.Rectangle
}

func (Svg) op() {}

// Mesh draws a triangle mesh at the current origin.
type Mesh struct {
	Mesh graphics.Mesh
}

func (Mesh) op() {}

// Custom carries an opaque primitive for a custom render pipeline.
type Custom struct {
	Bounds    graphics.Rectangle
	Primitive any
}

func (Custom) op() {}

// Clip confines nested ops to Bounds. Ops share the coordinate space of
// Bounds.
type Clip struct {
	Bounds graphics.Rectangle
	Ops    []Op
}

func (Clip) op() {}

// Layer draws nested ops atop all preceding content, clipped to Bounds.
// Ops share the coordinate space of Bounds.
type Layer struct {
	Bounds graphics.Rectangle
	Ops    []Op
}

func (Layer) op() {}

// Transform maps nested op coordinates into the surrounding space.
type Transform struct {
	Transformation graphics.Transformation
	Ops            []Op
}

func (Transform) op() {}

// Group splices a finished geometry into a batch. Texts draw after Ops,
// above every other op in the group.
type Group struct {
	Ops   []Op
	Texts []Text
}

func (Group) op() {}
