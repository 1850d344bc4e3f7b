// Package gpu records drawing operations for the wgpu renderer.
//
// The renderer itself needs no GPU to record: operations batch into an
// internal op list exactly like the software variant, with text hoisted
// into a separate pass the way the glyph pipeline consumes it. A device
// only becomes necessary when custom pipelines are prepared or the frame
// is encoded.
//
// Device bring-up goes through NewDevice, which walks instance, adapter,
// device, and queue in order. Programs embedded in a host that already
// owns a device hand it over with WithDevice instead:
//
//	r := gpu.New(gpu.WithDevice(provider))
//
// Most programs never use this package directly; the root easel package
// selects it when a compatible adapter is present.
package gpu
