package easel

import (
	"sync"

	"github.com/easelui/easel/graphics"
)

// Cache memoizes a frame recording across redraws. Draw hands back the
// cached geometry as long as the requested size and the renderer's
// backend variant are unchanged; either changing invalidates the entry
// and re-runs the draw closure on a fresh frame.
//
// A Cache is safe for concurrent use and starts out empty.
type Cache struct {
	mu    sync.Mutex
	valid bool
	size  graphics.Size
	geom  Geometry
}

// Draw returns the cached geometry for size, rebuilding it first when
// the cache is empty, the size differs, or r's backend variant differs
// from the cached geometry's. fn receives an empty frame of the given
// size on r's backend.
func (c *Cache) Draw(r *Renderer, size graphics.Size, fn func(*Frame)) Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.size == size && c.geom.matches(r) {
		return c.geom
	}

	f := NewFrame(r, size)
	fn(f)

	c.geom = f.IntoGeometry()
	c.size = size
	c.valid = true
	return c.geom
}

// Clear drops the cached geometry. The next Draw rebuilds it.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.geom = Geometry{}
}
