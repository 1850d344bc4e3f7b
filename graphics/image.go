package graphics

import "sync/atomic"

var nextHandleID atomic.Uint64

// ImageSource identifies where an image's data comes from. This is a
// sealed interface - a source is a FileSource, a BytesSource, or a
// PixelsSource.
type ImageSource interface {
	imageSource()
}

// FileSource loads image data from a file path.
type FileSource struct {
	Path string
}

func (FileSource) imageSource() {}

// BytesSource holds encoded image data in memory.
type BytesSource struct {
	Data []byte
}

func (BytesSource) imageSource() {}

// PixelsSource holds raw RGBA pixels, 4 bytes per pixel in row-major
// order.
type PixelsSource struct {
	Width  uint32
	Height uint32
	Pixels []byte
}

func (PixelsSource) imageSource() {}

// ImageHandle identifies a raster image. Handles with the same ID refer to
// the same image data; renderers use the ID as a cache key.
type ImageHandle struct {
	id     uint64
	source ImageSource
}

// ImageFromPath creates a handle for an image file on disk.
func ImageFromPath(path string) ImageHandle {
	return ImageHandle{id: nextHandleID.Add(1), source: FileSource{Path: path}}
}

// ImageFromBytes creates a handle for encoded image data in memory.
func ImageFromBytes(data []byte) ImageHandle {
	return ImageHandle{id: nextHandleID.Add(1), source: BytesSource{Data: data}}
}

// ImageFromPixels creates a handle for raw RGBA pixel data.
func ImageFromPixels(width, height uint32, pixels []byte) ImageHandle {
	return ImageHandle{
		id: nextHandleID.Add(1),
		source: PixelsSource{
			Width:  width,
			Height: height,
			Pixels: pixels,
		},
	}
}

// ID returns the unique identifier of the handle.
func (h ImageHandle) ID() uint64 {
	return h.id
}

// Source returns where the image data comes from.
func (h ImageHandle) Source() ImageSource {
	return h.source
}

// FilterMethod selects how an image is sampled when scaled.
type FilterMethod int

const (
	// FilterLinear blends neighboring pixels for smooth scaling.
	FilterLinear FilterMethod = iota
	// FilterNearest picks the closest pixel for crisp pixel art.
	FilterNearest
)

// String returns the name of the filter method.
func (f FilterMethod) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	default:
		return "linear"
	}
}
