package easel

import (
	"os"

	"github.com/easelui/easel/backend/gpu"
	"github.com/easelui/easel/backend/soft"
	"github.com/easelui/easel/text"
)

// Settings configures renderer construction. The zero value is usable:
// no preferred font, 16px text, no GPU antialiasing.
type Settings struct {
	// DefaultFont is used when a text run leaves its font unset.
	DefaultFont text.Font

	// DefaultTextSize is used when a text run leaves its size unset.
	// Zero selects 16.
	DefaultTextSize float64

	// Antialiasing enables multisampled tessellation on the GPU
	// backend. The software rasterizer antialiases regardless.
	Antialiasing bool
}

// EnvBackend is the environment variable that forces backend selection.
// Recognized values are "soft" (or "software") and "gpu".
const EnvBackend = "EASEL_BACKEND"

// gpuProbe creates the device New uses to decide whether the GPU
// backend is viable. Swapped out in tests.
var gpuProbe = gpu.NewDevice

// New selects a backend and returns a renderer on it. The GPU is tried
// first; when no compatible adapter turns up, the CPU rasterizer takes
// over with a logged warning. EASEL_BACKEND overrides the probe.
//
// Call Close on the returned renderer to release GPU resources it owns.
func New(settings Settings) *Renderer {
	switch backend := os.Getenv(EnvBackend); backend {
	case "":
	case "soft", "software":
		Logger().Info("backend forced by environment", "backend", "soft")
		return NewSoftware(settings)
	case "gpu":
		Logger().Info("backend forced by environment", "backend", "gpu")
		r, err := NewGPU(settings)
		if err != nil {
			Logger().Warn("forced gpu backend unavailable, using software", "err", err)
			return NewSoftware(settings)
		}
		return r
	default:
		Logger().Warn("unrecognized backend override ignored", "value", backend)
	}

	r, err := NewGPU(settings)
	if err != nil {
		Logger().Warn("no compatible gpu, using software", "err", err)
		return NewSoftware(settings)
	}
	return r
}

// NewSoftware returns a renderer on the CPU rasterizer.
func NewSoftware(settings Settings) *Renderer {
	opts := []soft.Option{
		soft.WithDefaultFont(settings.DefaultFont),
	}
	if settings.DefaultTextSize > 0 {
		opts = append(opts, soft.WithDefaultTextSize(settings.DefaultTextSize))
	}
	return &Renderer{soft: soft.New(opts...)}
}

// NewGPU returns a renderer on the GPU backend, or an error when no
// compatible adapter is found. The renderer owns the probed device;
// Close releases it.
func NewGPU(settings Settings) (*Renderer, error) {
	device, err := gpuProbe()
	if err != nil {
		return nil, err
	}
	opts := []gpu.Option{
		gpu.WithDefaultFont(settings.DefaultFont),
		gpu.WithAntialiasing(settings.Antialiasing),
	}
	if settings.DefaultTextSize > 0 {
		opts = append(opts, gpu.WithDefaultTextSize(settings.DefaultTextSize))
	}
	return &Renderer{gpu: gpu.New(opts...), device: device}, nil
}
