package soft

import (
	"log/slog"

	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/internal/imagecache"
	"github.com/easelui/easel/internal/record"
	"github.com/easelui/easel/text"
)

// defaultTextSize is used when no option overrides it.
const defaultTextSize = 16

// Option configures a Renderer during creation.
type Option func(*options)

type options struct {
	fontSystem  *text.FontSystem
	defaultFont text.Font
	defaultSize float64
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{defaultSize: defaultTextSize}
}

// WithFontSystem shares an existing font system instead of creating a
// fresh one. Renderers that serve the same application should share one
// so loaded fonts and shaping caches are not duplicated.
func WithFontSystem(fs *text.FontSystem) Option {
	return func(o *options) { o.fontSystem = fs }
}

// WithDefaultFont sets the font used when a text run leaves its font
// unset.
func WithDefaultFont(f text.Font) Option {
	return func(o *options) { o.defaultFont = f }
}

// WithDefaultTextSize sets the text size used when a text run leaves its
// size unset.
func WithDefaultTextSize(size float64) Option {
	return func(o *options) { o.defaultSize = size }
}

// WithLogger routes package diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Renderer batches drawing operations for the CPU rasterizer.
// Operations accumulate lowest-first until Clear.
type Renderer struct {
	fonts       *text.FontSystem
	defaultFont text.Font
	defaultSize float64
	images      *imagecache.Cache
	ops         []record.Op
}

// New returns a software renderer.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	fonts := o.fontSystem
	if fonts == nil {
		fonts = text.NewFontSystem()
	}
	return &Renderer{
		fonts:       fonts,
		defaultFont: o.defaultFont,
		defaultSize: o.defaultSize,
		images:      imagecache.New(),
	}
}

// StartLayer suspends the current recording and begins a fresh one for a
// layer. It returns the suspended operations; hand them back to EndLayer
// or CancelScope.
func (r *Renderer) StartLayer() []record.Op {
	prev := r.ops
	r.ops = nil
	return prev
}

// EndLayer resumes the recording suspended by StartLayer and places the
// scoped operations on top of it, clipped to bounds.
func (r *Renderer) EndLayer(prev []record.Op, bounds graphics.Rectangle) {
	layer := record.Layer{Bounds: bounds, Ops: r.ops}
	r.ops = append(prev, layer)
}

// StartTransformation suspends the current recording and begins a fresh
// one for a transformed scope. It returns the suspended operations; hand
// them back to EndTransformation or CancelScope.
func (r *Renderer) StartTransformation() []record.Op {
	prev := r.ops
	r.ops = nil
	return prev
}

// EndTransformation resumes the recording suspended by
// StartTransformation and appends the scoped operations mapped through t.
func (r *Renderer) EndTransformation(prev []record.Op, t graphics.Transformation) {
	node := record.Transform{Transformation: t, Ops: r.ops}
	r.ops = append(prev, node)
}

// CancelScope discards whatever was recorded since the matching start
// call and resumes the suspended recording. It keeps the renderer usable
// when a scope function panics out of its layer.
func (r *Renderer) CancelScope(prev []record.Op) {
	if n := len(r.ops); n > 0 {
		Logger().Warn("discarding operations from abandoned scope", "ops", n)
	}
	r.ops = prev
}

// FillQuad records a styled quad.
func (r *Renderer) FillQuad(quad graphics.Quad, background graphics.Background) {
	r.ops = append(r.ops, record.Quad{Quad: quad, Background: background})
}

// Clear drops every recorded operation.
func (r *Renderer) Clear() {
	r.ops = nil
}

// DefaultFont returns the font used when a text run leaves its font
// unset.
func (r *Renderer) DefaultFont() text.Font { return r.defaultFont }

// DefaultSize returns the text size used when a text run leaves its size
// unset.
func (r *Renderer) DefaultSize() float64 { return r.defaultSize }

// FontSystem returns the font system backing text layout.
func (r *Renderer) FontSystem() *text.FontSystem { return r.fonts }

// LoadFont registers font data with the font system.
func (r *Renderer) LoadFont(data []byte) error {
	return r.fonts.Load(data)
}

// FillParagraph records an externally shaped paragraph.
func (r *Renderer) FillParagraph(p *text.Paragraph, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.ops = append(r.ops, record.Paragraph{Paragraph: p, Position: position, Color: color, Clip: clip})
}

// FillEditor records the shaped view of a text editor.
func (r *Renderer) FillEditor(e *text.Editor, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.ops = append(r.ops, record.Editor{Editor: e, Position: position, Color: color, Clip: clip})
}

// FillText records a text block shaped at draw time.
func (r *Renderer) FillText(t text.Text, position graphics.Point, color graphics.RGBA, clip graphics.Rectangle) {
	r.ops = append(r.ops, record.Text{Text: t, Position: position, Color: color, Clip: clip})
}

// ImageSize reports the pixel dimensions of the image behind h.
func (r *Renderer) ImageSize(h graphics.ImageHandle) (graphics.Size, error) {
	return r.images.ImageSize(h)
}

// DrawImage records a raster image scaled into bounds.
func (r *Renderer) DrawImage(h graphics.ImageHandle, filter graphics.FilterMethod, bounds graphics.Rectangle) {
	r.ops = append(r.ops, record.Image{Handle: h, Filter: filter, Bounds: bounds})
}

// SVGSize reports the intrinsic dimensions of the vector image behind h.
func (r *Renderer) SVGSize(h graphics.SVGHandle) (graphics.Size, error) {
	return r.images.SVGSize(h)
}

// DrawSVG records a vector image scaled into bounds. A non-nil color
// replaces the document's own fill colors.
func (r *Renderer) DrawSVG(h graphics.SVGHandle, color *graphics.RGBA, bounds graphics.Rectangle) {
	r.ops = append(r.ops, record.Svg{Handle: h, Color: color, Bounds: bounds})
}

// DrawPrimitive splices a finished primitive into the recording.
func (r *Renderer) DrawPrimitive(p Primitive) {
	r.ops = append(r.ops, record.Group{Ops: p.Ops})
}

// Recording returns the operations recorded so far, lowest first. The
// rasterizer walks this list when the surface presents.
func (r *Renderer) Recording() []record.Op {
	return r.ops
}
