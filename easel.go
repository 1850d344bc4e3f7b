package easel

import (
	"github.com/easelui/easel/backend/gpu"
	"github.com/easelui/easel/backend/soft"
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/internal/record"
	"github.com/easelui/easel/text"
)

// Renderer batches drawing operations on the one backend it was created
// with. Exactly one variant is set by the constructors and it never
// changes: a renderer born on the CPU rasterizer stays there, and
// geometries it produces can only come back to a renderer of the same
// variant.
//
// The zero Renderer has no backend; every operation on it panics. Use
// New, NewSoftware, or NewGPU.
type Renderer struct {
	soft   *soft.Renderer
	gpu    *gpu.Renderer
	device *gpu.Device
}

// backendRenderer is the operation surface both backends provide. The
// root renderer forwards single-backend operations through it; anything
// pairing two unions (Draw, NewFrame, Cache) matches variants explicitly.
type backendRenderer interface {
	StartLayer() []record.Op
	EndLayer(prev []record.Op, bounds graphics.Rectangle)
	StartTransformation() []record.Op
	EndTransformation(prev []record.Op, t graphics.Transformation)
	CancelScope(prev []record.Op)
	FillQuad(quad graphics.Quad, background graphics.Background)
	Clear()
	DefaultFont() text.Font
	DefaultSize() float64
	FontSystem() *text.FontSystem
	LoadFont(data []byte) error
	FillParagraph(p *text.Paragraph, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle)
	FillEditor(e *text.Editor, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle)
	FillText(t text.Text, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle)
	ImageSize(h graphics.ImageHandle) (graphics.Size, error)
	DrawImage(h graphics.ImageHandle, filter graphics.FilterMethod, bounds graphics.Rectangle)
	SVGSize(h graphics.SVGHandle) (graphics.Size, error)
	DrawSVG(h graphics.SVGHandle, color *graphics.RGBA, bounds graphics.Rectangle)
	Recording() []record.Op
}

var (
	_ backendRenderer = (*soft.Renderer)(nil)
	_ backendRenderer = (*gpu.Renderer)(nil)
)

// active returns the live backend. It panics for a Renderer that was not
// made by a constructor.
func (r *Renderer) active() backendRenderer {
	switch {
	case r.soft != nil:
		return r.soft
	case r.gpu != nil:
		return r.gpu
	default:
		panic("easel: renderer has no active backend")
	}
}

// WithLayer draws everything fn produces on a layer above the current
// content, clipped to bounds. When fn panics, the half-built layer is
// discarded and the recording from before the call stays intact.
func (r *Renderer) WithLayer(bounds graphics.Rectangle, fn func(*Renderer)) {
	backend := r.active()
	prev := backend.StartLayer()

	completed := false
	defer func() {
		if !completed {
			backend.CancelScope(prev)
		}
	}()

	fn(r)

	completed = true
	backend.EndLayer(prev, bounds)
}

// WithTransformation draws everything fn produces with t applied. When
// fn panics, the half-built scope is discarded and the recording from
// before the call stays intact.
func (r *Renderer) WithTransformation(t graphics.Transformation, fn func(*Renderer)) {
	backend := r.active()
	prev := backend.StartTransformation()

	completed := false
	defer func() {
		if !completed {
			backend.CancelScope(prev)
		}
	}()

	fn(r)

	completed = true
	backend.EndTransformation(prev, t)
}

// FillQuad draws a rounded, bordered, possibly shadowed rectangle filled
// with a solid color or gradient.
func (r *Renderer) FillQuad(quad graphics.Quad, background graphics.Background) {
	r.active().FillQuad(quad, background)
}

// Clear drops everything drawn since the last Clear.
func (r *Renderer) Clear() {
	r.active().Clear()
}

// DrawMesh draws a triangle mesh with per-vertex colors. Meshes need the
// GPU; the software backend logs a warning and draws nothing.
func (r *Renderer) DrawMesh(m graphics.Mesh) {
	switch {
	case r.gpu != nil:
		r.gpu.DrawMesh(m)
	case r.soft != nil:
		Logger().Warn("unsupported mesh primitive on the software backend",
			"vertices", len(m.Vertices), "indices", len(m.Indices))
	default:
		panic("easel: renderer has no active backend")
	}
}

// DrawPipeline draws a custom shader pipeline covering bounds. Custom
// pipelines need the GPU; the software backend logs a warning and draws
// nothing.
func (r *Renderer) DrawPipeline(bounds graphics.Rectangle, p gpu.Pipeline) {
	switch {
	case r.gpu != nil:
		r.gpu.DrawPipeline(bounds, p)
	case r.soft != nil:
		Logger().Warn("custom shader pipelines are unavailable on the software backend")
	default:
		panic("easel: renderer has no active backend")
	}
}

// Draw replays finished geometries above the current content, lowest
// first. Every geometry must carry the renderer's own variant; a
// mismatch is a programming error and panics.
func (r *Renderer) Draw(layers []Geometry) {
	switch {
	case r.soft != nil:
		for _, g := range layers {
			if g.soft == nil {
				panic("easel: geometry drawn on a mismatched renderer backend")
			}
			r.soft.DrawPrimitive(*g.soft)
		}
	case r.gpu != nil:
		for _, g := range layers {
			if g.gpu == nil {
				panic("easel: geometry drawn on a mismatched renderer backend")
			}
			r.gpu.DrawPrimitive(*g.gpu)
		}
	default:
		panic("easel: renderer has no active backend")
	}
}

// Close releases GPU resources the renderer owns. Renderers on the
// software backend, and GPU renderers built around a borrowed device,
// own none; Close is then a no-op.
func (r *Renderer) Close() {
	if r.device != nil {
		r.device.Close()
		r.device = nil
	}
}
