package easel

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/easelui/easel/backend/gpu"
	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/internal/record"
	"github.com/easelui/easel/text"
)

func newSoftRenderer() *Renderer {
	return NewSoftware(Settings{})
}

// newGPURenderer builds a GPU-variant renderer without probing for an
// adapter. The renderer records fine without a device.
func newGPURenderer() *Renderer {
	return &Renderer{gpu: gpu.New()}
}

func testQuad(x, y, w, h float64) graphics.Quad {
	return graphics.Quad{Bounds: graphics.Rect(x, y, w, h)}
}

// captureLogs routes package logging into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func mustPanic(t *testing.T, fn func()) any {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	if got == nil {
		t.Fatal("expected panic, got none")
	}
	return got
}

// nopPipeline satisfies gpu.Pipeline for dispatch tests.
type nopPipeline struct{}

func (nopPipeline) ShaderSource() string { return "" }

func (nopPipeline) Prepare(gpucontext.Device, gpucontext.Queue, gputypes.TextureFormat, []uint32, graphics.Rectangle) error {
	return nil
}

func TestFillQuadRecordsOnActiveBackend(t *testing.T) {
	tests := []struct {
		name string
		r    *Renderer
	}{
		{"software", newSoftRenderer()},
		{"gpu", newGPURenderer()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quad := testQuad(5, 6, 30, 20)
			tt.r.FillQuad(quad, graphics.Solid{Color: graphics.RGB(1, 0, 0)})

			ops := tt.r.active().Recording()
			if len(ops) != 1 {
				t.Fatalf("len(Recording()) = %d, want 1", len(ops))
			}
			q, ok := ops[0].(record.Quad)
			if !ok {
				t.Fatalf("op = %T, want record.Quad", ops[0])
			}
			if q.Quad.Bounds != quad.Bounds {
				t.Errorf("quad bounds = %v, want %v", q.Quad.Bounds, quad.Bounds)
			}
		})
	}
}

func TestClearDropsRecording(t *testing.T) {
	r := newSoftRenderer()
	r.FillQuad(testQuad(0, 0, 10, 10), graphics.Solid{})
	r.Clear()
	if ops := r.active().Recording(); len(ops) != 0 {
		t.Errorf("len(Recording()) after Clear = %d, want 0", len(ops))
	}
}

func TestWithLayerClipsToBounds(t *testing.T) {
	r := newGPURenderer()
	bounds := graphics.Rect(0, 0, 50, 50)
	quad := testQuad(10, 10, 20, 20)

	r.WithLayer(bounds, func(r *Renderer) {
		r.FillQuad(quad, graphics.Solid{Color: graphics.RGB(1, 0, 0)})
	})

	ops := r.active().Recording()
	if len(ops) != 1 {
		t.Fatalf("len(Recording()) = %d, want 1", len(ops))
	}
	layer, ok := ops[0].(record.Layer)
	if !ok {
		t.Fatalf("op = %T, want record.Layer", ops[0])
	}
	if layer.Bounds != bounds {
		t.Errorf("layer bounds = %v, want %v", layer.Bounds, bounds)
	}
	if len(layer.Ops) != 1 {
		t.Fatalf("len(layer.Ops) = %d, want 1", len(layer.Ops))
	}
	if q, ok := layer.Ops[0].(record.Quad); !ok || q.Quad.Bounds != quad.Bounds {
		t.Errorf("layer content = %#v, want quad at %v", layer.Ops[0], quad.Bounds)
	}
}

func TestWithLayerNested(t *testing.T) {
	r := newSoftRenderer()
	outer := graphics.Rect(0, 0, 100, 100)
	inner := graphics.Rect(10, 10, 40, 40)

	r.WithLayer(outer, func(r *Renderer) {
		r.WithLayer(inner, func(r *Renderer) {
			r.FillQuad(testQuad(15, 15, 10, 10), graphics.Solid{})
		})
	})

	ops := r.active().Recording()
	if len(ops) != 1 {
		t.Fatalf("len(Recording()) = %d, want 1", len(ops))
	}
	layer := ops[0].(record.Layer)
	if layer.Bounds != outer {
		t.Errorf("outer bounds = %v, want %v", layer.Bounds, outer)
	}
	sub, ok := layer.Ops[0].(record.Layer)
	if !ok {
		t.Fatalf("inner op = %T, want record.Layer", layer.Ops[0])
	}
	if sub.Bounds != inner {
		t.Errorf("inner bounds = %v, want %v", sub.Bounds, inner)
	}
}

func TestWithLayerPanicKeepsRecording(t *testing.T) {
	r := newSoftRenderer()
	r.FillQuad(testQuad(0, 0, 10, 10), graphics.Solid{})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic in layer closure did not propagate")
			}
		}()
		r.WithLayer(graphics.Rect(0, 0, 50, 50), func(r *Renderer) {
			r.FillQuad(testQuad(1, 1, 2, 2), graphics.Solid{})
			panic("widget failure")
		})
	}()

	ops := r.active().Recording()
	if len(ops) != 1 {
		t.Fatalf("len(Recording()) after panic = %d, want 1", len(ops))
	}
	if _, ok := ops[0].(record.Quad); !ok {
		t.Errorf("surviving op = %T, want record.Quad", ops[0])
	}

	// The renderer keeps working after the abandoned scope.
	r.FillQuad(testQuad(5, 5, 5, 5), graphics.Solid{})
	if ops := r.active().Recording(); len(ops) != 2 {
		t.Errorf("len(Recording()) after recovery draw = %d, want 2", len(ops))
	}
}

func TestWithTransformationWrapsOps(t *testing.T) {
	r := newGPURenderer()
	tr := graphics.Translate(7, 9)

	r.WithTransformation(tr, func(r *Renderer) {
		r.FillQuad(testQuad(0, 0, 10, 10), graphics.Solid{})
	})

	ops := r.active().Recording()
	if len(ops) != 1 {
		t.Fatalf("len(Recording()) = %d, want 1", len(ops))
	}
	node, ok := ops[0].(record.Transform)
	if !ok {
		t.Fatalf("op = %T, want record.Transform", ops[0])
	}
	if node.Transformation != tr {
		t.Errorf("transformation = %v, want %v", node.Transformation, tr)
	}
	if len(node.Ops) != 1 {
		t.Errorf("len(node.Ops) = %d, want 1", len(node.Ops))
	}
}

func TestDrawAppendsLowestFirst(t *testing.T) {
	r := newSoftRenderer()

	first := NewFrame(r, graphics.Sz(10, 10))
	first.FillRectangle(graphics.Pt(0, 0), graphics.Sz(1, 1), graphics.ColorFill(graphics.RGB(1, 0, 0)))
	second := NewFrame(r, graphics.Sz(10, 10))
	second.FillRectangle(graphics.Pt(2, 2), graphics.Sz(1, 1), graphics.ColorFill(graphics.RGB(0, 1, 0)))

	r.Draw([]Geometry{first.IntoGeometry(), second.IntoGeometry()})

	ops := r.active().Recording()
	if len(ops) != 2 {
		t.Fatalf("len(Recording()) = %d, want 2", len(ops))
	}
	g0 := ops[0].(record.Group)
	if rect := g0.Ops[0].(record.Rect); rect.Bounds.X != 0 {
		t.Errorf("first geometry rect at x=%v, want 0", rect.Bounds.X)
	}
	g1 := ops[1].(record.Group)
	if rect := g1.Ops[0].(record.Rect); rect.Bounds.X != 2 {
		t.Errorf("second geometry rect at x=%v, want 2", rect.Bounds.X)
	}
}

func TestDrawMismatchedGeometryPanics(t *testing.T) {
	soft := newSoftRenderer()
	f := NewFrame(soft, graphics.Sz(10, 10))
	f.FillRectangle(graphics.Pt(0, 0), graphics.Sz(5, 5), graphics.ColorFill(graphics.RGB(1, 0, 0)))
	g := f.IntoGeometry()

	got := mustPanic(t, func() {
		newGPURenderer().Draw([]Geometry{g})
	})
	msg, ok := got.(string)
	if !ok || !strings.Contains(msg, "mismatched") {
		t.Errorf("panic = %v, want message naming the backend mismatch", got)
	}
}

func TestDrawMeshDegradation(t *testing.T) {
	mesh := graphics.Mesh{
		Vertices: []graphics.Vertex{
			{Position: graphics.Pt(0, 0), Color: graphics.RGB(1, 0, 0)},
			{Position: graphics.Pt(10, 0), Color: graphics.RGB(0, 1, 0)},
			{Position: graphics.Pt(0, 10), Color: graphics.RGB(0, 0, 1)},
		},
		Indices: []uint32{0, 1, 2},
		Size:    graphics.Sz(10, 10),
	}

	t.Run("software skips with warning", func(t *testing.T) {
		buf := captureLogs(t)
		r := newSoftRenderer()

		r.DrawMesh(mesh)

		if ops := r.active().Recording(); len(ops) != 0 {
			t.Errorf("len(Recording()) = %d, want 0", len(ops))
		}
		if !strings.Contains(buf.String(), "unsupported mesh primitive") {
			t.Errorf("log output = %q, want mesh warning", buf.String())
		}

		// Degradation must not poison the renderer.
		r.FillQuad(testQuad(0, 0, 5, 5), graphics.Solid{})
		if ops := r.active().Recording(); len(ops) != 1 {
			t.Errorf("len(Recording()) after follow-up draw = %d, want 1", len(ops))
		}
	})

	t.Run("gpu records", func(t *testing.T) {
		r := newGPURenderer()
		r.DrawMesh(mesh)

		ops := r.active().Recording()
		if len(ops) != 1 {
			t.Fatalf("len(Recording()) = %d, want 1", len(ops))
		}
		m, ok := ops[0].(record.Mesh)
		if !ok {
			t.Fatalf("op = %T, want record.Mesh", ops[0])
		}
		if len(m.Mesh.Vertices) != 3 {
			t.Errorf("vertices = %d, want 3", len(m.Mesh.Vertices))
		}
	})
}

func TestDrawPipelineDegradation(t *testing.T) {
	bounds := graphics.Rect(0, 0, 64, 64)

	t.Run("software skips with warning", func(t *testing.T) {
		buf := captureLogs(t)
		r := newSoftRenderer()

		r.DrawPipeline(bounds, nopPipeline{})

		if ops := r.active().Recording(); len(ops) != 0 {
			t.Errorf("len(Recording()) = %d, want 0", len(ops))
		}
		if !strings.Contains(buf.String(), "custom shader pipelines") {
			t.Errorf("log output = %q, want pipeline warning", buf.String())
		}
	})

	t.Run("gpu records", func(t *testing.T) {
		r := newGPURenderer()
		r.DrawPipeline(bounds, nopPipeline{})

		ops := r.active().Recording()
		if len(ops) != 1 {
			t.Fatalf("len(Recording()) = %d, want 1", len(ops))
		}
		c, ok := ops[0].(record.Custom)
		if !ok {
			t.Fatalf("op = %T, want record.Custom", ops[0])
		}
		if c.Bounds != bounds {
			t.Errorf("bounds = %v, want %v", c.Bounds, bounds)
		}
	})
}

func TestZeroRendererPanics(t *testing.T) {
	var r Renderer

	tests := []struct {
		name string
		fn   func()
	}{
		{"FillQuad", func() { r.FillQuad(testQuad(0, 0, 1, 1), graphics.Solid{}) }},
		{"Clear", func() { r.Clear() }},
		{"DrawMesh", func() { r.DrawMesh(graphics.Mesh{}) }},
		{"DrawPipeline", func() { r.DrawPipeline(graphics.Rect(0, 0, 1, 1), nopPipeline{}) }},
		{"Draw", func() { r.Draw(nil) }},
		{"WithLayer", func() { r.WithLayer(graphics.Rect(0, 0, 1, 1), func(*Renderer) {}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustPanic(t, tt.fn)
			if msg, ok := got.(string); !ok || !strings.Contains(msg, "no active backend") {
				t.Errorf("panic = %v, want backend panic", got)
			}
		})
	}
}

func TestFrameToDrawRoundTrip(t *testing.T) {
	r := newGPURenderer()
	f := NewFrame(r, graphics.Sz(100, 100))
	red := graphics.RGB(1, 0, 0)
	f.FillRectangle(graphics.Pt(10, 10), graphics.Sz(20, 20), graphics.ColorFill(red))

	r.Draw([]Geometry{f.IntoGeometry()})

	ops := r.active().Recording()
	if len(ops) != 1 {
		t.Fatalf("len(Recording()) = %d, want 1", len(ops))
	}
	group, ok := ops[0].(record.Group)
	if !ok {
		t.Fatalf("op = %T, want record.Group", ops[0])
	}
	if len(group.Ops) != 1 {
		t.Fatalf("len(group.Ops) = %d, want 1", len(group.Ops))
	}
	rect, ok := group.Ops[0].(record.Rect)
	if !ok {
		t.Fatalf("group op = %T, want record.Rect", group.Ops[0])
	}
	if want := graphics.Rect(10, 10, 20, 20); rect.Bounds != want {
		t.Errorf("rect bounds = %v, want %v", rect.Bounds, want)
	}
	solid, ok := rect.Style.(graphics.Solid)
	if !ok {
		t.Fatalf("style = %T, want graphics.Solid", rect.Style)
	}
	if solid.Color != red {
		t.Errorf("color = %v, want %v", solid.Color, red)
	}
}

func TestTextOperations(t *testing.T) {
	r := newSoftRenderer()

	r.FillText(text.Text{Content: "hello", Size: 14},
		graphics.Pt(5, 5), graphics.RGB(0, 0, 0), graphics.Rect(0, 0, 100, 40))

	p := text.NewParagraph(r.FontSystem(), text.Text{Content: "body", Size: 12})
	r.FillParagraph(p, graphics.Pt(0, 20), graphics.RGB(0, 0, 0), graphics.Rect(0, 0, 100, 40))

	e := text.NewEditor(r.FontSystem(), text.Text{Size: 12})
	e.InsertString("edit me")
	r.FillEditor(e, graphics.Pt(0, 40), graphics.RGB(0, 0, 0), graphics.Rect(0, 0, 100, 40))

	ops := r.active().Recording()
	if len(ops) != 3 {
		t.Fatalf("len(Recording()) = %d, want 3", len(ops))
	}
	if _, ok := ops[0].(record.Text); !ok {
		t.Errorf("ops[0] = %T, want record.Text", ops[0])
	}
	if _, ok := ops[1].(record.Paragraph); !ok {
		t.Errorf("ops[1] = %T, want record.Paragraph", ops[1])
	}
	if _, ok := ops[2].(record.Editor); !ok {
		t.Errorf("ops[2] = %T, want record.Editor", ops[2])
	}
}

func TestLoadFontInvalidData(t *testing.T) {
	r := newSoftRenderer()
	err := r.LoadFont([]byte("not a font"))
	if !errors.Is(err, text.ErrInvalidFontData) {
		t.Errorf("LoadFont(junk) = %v, want ErrInvalidFontData", err)
	}
}

func TestCloseReleasesOwnedDevice(t *testing.T) {
	r := &Renderer{gpu: gpu.New(), device: &gpu.Device{}}
	r.Close()
	if r.device != nil {
		t.Error("Close did not release the owned device")
	}
	// Close is idempotent, and a software renderer owns nothing.
	r.Close()
	newSoftRenderer().Close()
}
