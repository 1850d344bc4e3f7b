package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/easelui/easel/graphics"
	"github.com/easelui/easel/internal/record"
)

// Pipeline is a custom render pipeline drawn through DrawPipeline. The
// renderer compiles its shader and hands over the device before the
// frame is encoded; everything else the pipeline manages itself.
type Pipeline interface {
	// ShaderSource returns the WGSL source of the pipeline's shader
	// module. Compilation is cached by source text.
	ShaderSource() string

	// Prepare uploads whatever the pipeline needs before drawing.
	// shader holds the SPIR-V words compiled from ShaderSource.
	Prepare(device gpucontext.Device, queue gpucontext.Queue, format gputypes.TextureFormat, shader []uint32, bounds graphics.Rectangle) error
}

// shaderCache memoizes WGSL compilation keyed by source text.
type shaderCache struct {
	mu       sync.Mutex
	compiled map[string][]uint32
}

// compile translates WGSL to SPIR-V words. SPIR-V is little-endian
// 32-bit words.
func (c *shaderCache) compile(wgsl string) ([]uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if code, ok := c.compiled[wgsl]; ok {
		return code, nil
	}

	raw, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: shader compilation failed: %w", err)
	}
	code := make([]uint32, len(raw)/4)
	for i := range code {
		code[i] = uint32(raw[i*4]) |
			uint32(raw[i*4+1])<<8 |
			uint32(raw[i*4+2])<<16 |
			uint32(raw[i*4+3])<<24
	}

	if c.compiled == nil {
		c.compiled = make(map[string][]uint32)
	}
	c.compiled[wgsl] = code
	return code, nil
}

// collectPipelines gathers custom-pipeline ops from a recording,
// including those nested in clips, layers, transforms, and groups.
func collectPipelines(ops []record.Op) []record.Custom {
	var out []record.Custom
	var walk func([]record.Op)
	walk = func(ops []record.Op) {
		for _, op := range ops {
			switch o := op.(type) {
			case record.Custom:
				out = append(out, o)
			case record.Clip:
				walk(o.Ops)
			case record.Layer:
				walk(o.Ops)
			case record.Transform:
				walk(o.Ops)
			case record.Group:
				walk(o.Ops)
			}
		}
	}
	walk(ops)
	return out
}
