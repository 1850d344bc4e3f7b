// Package graphics provides the shared value types of the easel drawing
// model: geometry (points, vectors, sizes, rectangles, affine
// transformations), colors, gradients, fill and stroke descriptions, vector
// paths, quads, meshes, and image handles.
//
// Everything in this package is a plain value with no backend affinity.
// Both rendering backends consume these types unchanged; none of them
// carries drawing state of its own.
package graphics
