// Package soft records drawing operations for the CPU rasterizer.
//
// The software renderer is always available: it needs no adapter, no
// device, and no shader toolchain. Operations are batched into an
// internal op list and rasterized when the surface presents.
//
// Most programs never use this package directly. The root easel package
// wraps a soft renderer (or its GPU counterpart) behind a single facade
// and picks the variant at startup:
//
//	r := easel.NewSoftware(easel.Settings{})
//	r.FillQuad(quad, background)
package soft
