package easel

import (
	"github.com/easelui/easel/graphics"
)

// ImageDimensions reports the pixel size of the image behind h. Images
// that cannot be read or decoded report zero by zero; the failure is
// logged at debug level.
func (r *Renderer) ImageDimensions(h graphics.ImageHandle) (width, height int) {
	sz, err := r.active().ImageSize(h)
	if err != nil {
		Logger().Debug("image size unavailable", "handle", h.ID(), "err", err)
		return 0, 0
	}
	return int(sz.Width), int(sz.Height)
}

// DrawImage draws the raster image behind h scaled into bounds.
func (r *Renderer) DrawImage(h graphics.ImageHandle, filter graphics.FilterMethod, bounds graphics.Rectangle) {
	r.active().DrawImage(h, filter, bounds)
}

// SVGDimensions reports the intrinsic size of the vector image behind
// h. Documents without usable dimensions report zero by zero; the
// failure is logged at debug level.
func (r *Renderer) SVGDimensions(h graphics.SVGHandle) (width, height int) {
	sz, err := r.active().SVGSize(h)
	if err != nil {
		Logger().Debug("svg size unavailable", "handle", h.ID(), "err", err)
		return 0, 0
	}
	return int(sz.Width), int(sz.Height)
}

// DrawSVG draws the vector image behind h scaled into bounds. A non-nil
// color replaces the document's own fill colors.
func (r *Renderer) DrawSVG(h graphics.SVGHandle, color *graphics.RGBA, bounds graphics.Rectangle) {
	r.active().DrawSVG(h, color, bounds)
}
