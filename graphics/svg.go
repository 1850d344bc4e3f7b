package graphics

// SVGHandle identifies a vector image. Handles with the same ID refer to
// the same document; renderers use the ID as a cache key.
type SVGHandle struct {
	id     uint64
	source ImageSource
}

// SVGFromPath creates a handle for an SVG file on disk.
func SVGFromPath(path string) SVGHandle {
	return SVGHandle{id: nextHandleID.Add(1), source: FileSource{Path: path}}
}

// SVGFromBytes creates a handle for SVG data in memory.
func SVGFromBytes(data []byte) SVGHandle {
	return SVGHandle{id: nextHandleID.Add(1), source: BytesSource{Data: data}}
}

// ID returns the unique identifier of the handle.
func (h SVGHandle) ID() uint64 {
	return h.id
}

// Source returns where the SVG data comes from.
func (h SVGHandle) Source() ImageSource {
	return h.source
}
