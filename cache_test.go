package easel

import (
	"sync"
	"testing"

	"github.com/easelui/easel/graphics"
)

func countingDraw(calls *int) func(*Frame) {
	return func(f *Frame) {
		*calls++
		f.FillRectangle(graphics.Pt(0, 0), graphics.Sz(1, 1), graphics.ColorFill(graphics.RGB(1, 0, 0)))
	}
}

func TestCacheReusesGeometry(t *testing.T) {
	r := newSoftRenderer()
	var cache Cache
	calls := 0
	size := graphics.Sz(64, 64)

	first := cache.Draw(r, size, countingDraw(&calls))
	second := cache.Draw(r, size, countingDraw(&calls))

	if calls != 1 {
		t.Errorf("draw closure ran %d times, want 1", calls)
	}
	if first != second {
		t.Error("second Draw did not return the cached geometry")
	}
}

func TestCacheRedrawsOnSizeChange(t *testing.T) {
	r := newSoftRenderer()
	var cache Cache
	calls := 0

	cache.Draw(r, graphics.Sz(64, 64), countingDraw(&calls))
	cache.Draw(r, graphics.Sz(32, 32), countingDraw(&calls))

	if calls != 2 {
		t.Errorf("draw closure ran %d times, want 2", calls)
	}
}

func TestCacheRedrawsOnVariantChange(t *testing.T) {
	var cache Cache
	calls := 0
	size := graphics.Sz(64, 64)

	cache.Draw(newSoftRenderer(), size, countingDraw(&calls))
	g := cache.Draw(newGPURenderer(), size, countingDraw(&calls))

	if calls != 2 {
		t.Errorf("draw closure ran %d times, want 2", calls)
	}
	if g.gpu == nil {
		t.Error("geometry after variant change should carry the gpu variant")
	}

	// The rebuilt entry is reusable in turn.
	cache.Draw(newGPURenderer(), size, countingDraw(&calls))
	if calls != 2 {
		t.Errorf("draw closure ran %d times after reuse, want 2", calls)
	}
}

func TestCacheClearForcesRedraw(t *testing.T) {
	r := newSoftRenderer()
	var cache Cache
	calls := 0
	size := graphics.Sz(64, 64)

	cache.Draw(r, size, countingDraw(&calls))
	cache.Clear()
	cache.Draw(r, size, countingDraw(&calls))

	if calls != 2 {
		t.Errorf("draw closure ran %d times, want 2", calls)
	}
}

func TestCacheConcurrentDraw(t *testing.T) {
	r := newSoftRenderer()
	var cache Cache
	calls := 0
	size := graphics.Sz(64, 64)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Draw(r, size, countingDraw(&calls))
		}()
	}
	wg.Wait()

	// The mutex serializes Draw, so only the first call builds.
	if calls != 1 {
		t.Errorf("draw closure ran %d times, want 1", calls)
	}
}
