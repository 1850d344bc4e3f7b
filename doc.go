// Package easel provides a 2D rendering layer with interchangeable
// backends.
//
// # Overview
//
// easel batches drawing operations - quads, text, images, vector
// geometry - and hands them to one of two backends: a CPU rasterizer
// that is always available, and a GPU renderer built on gogpu/wgpu. The
// backend is fixed when a renderer is created; everything drawn through
// the renderer goes to that one backend for its whole lifetime.
//
// # Quick Start
//
//	r := easel.New(easel.Settings{})
//
//	r.FillQuad(graphics.Quad{
//		Bounds: graphics.Rect(10, 10, 100, 40),
//	}, graphics.Solid{Color: graphics.RGB(0.2, 0.4, 0.8)})
//
// New probes for a GPU and falls back to the CPU rasterizer when none is
// found. NewSoftware and NewGPU pick a backend explicitly, and the
// EASEL_BACKEND environment variable overrides the probe.
//
// # Geometry
//
// Vector drawing goes through frames. A Frame records paths, shapes, and
// text under a transform stack, and bakes into a Geometry that Draw
// replays in order:
//
//	f := easel.NewFrame(r, graphics.Sz(200, 200))
//	f.FillRectangle(graphics.Pt(10, 10), graphics.Sz(20, 20),
//		graphics.ColorFill(graphics.RGB(1, 0, 0)))
//	r.Draw([]easel.Geometry{f.IntoGeometry()})
//
// Frames and geometries carry their renderer's backend. Mixing variants,
// such as drawing a software geometry on a GPU renderer, is a
// programming error and panics.
//
// # Capability Degradation
//
// Triangle meshes and custom shader pipelines need the GPU. On the
// software backend those operations log a warning and draw nothing;
// every other operation behaves identically on both backends.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package easel
