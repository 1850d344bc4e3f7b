package graphics

// Vertex is a single mesh vertex with a position in local coordinates and
// a color.
type Vertex struct {
	Position Point
	Color    RGBA
}

// Mesh is a triangle mesh with per-vertex colors. Indices reference the
// Vertices slice in groups of three; Size is the logical extent the mesh
// occupies.
//
// Meshes require GPU support. Backends without it skip the mesh and log a
// warning instead of failing.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Size     Size
}

// IsEmpty reports whether the mesh has no triangles to draw.
func (m Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) < 3
}
