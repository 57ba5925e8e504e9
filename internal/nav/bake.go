package nav

import "github.com/go-gl/mathgl/mgl32"

// bounds is a planar axis-aligned bounding box.
type bounds struct {
	min, max mgl32.Vec2
}

func (b *bounds) extend(p mgl32.Vec2) {
	if p.X() < b.min.X() {
		b.min[0] = p.X()
	}
	if p.Y() < b.min.Y() {
		b.min[1] = p.Y()
	}
	if p.X() > b.max.X() {
		b.max[0] = p.X()
	}
	if p.Y() > b.max.Y() {
		b.max[1] = p.Y()
	}
}

func (b *bounds) contains(p mgl32.Vec2) bool {
	return p.X() >= b.min.X() && p.X() <= b.max.X() &&
		p.Y() >= b.min.Y() && p.Y() <= b.max.Y()
}

// Mesh is a polygon navigation mesh. A Mesh becomes queryable after Bake
// and is immutable from then on.
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon

	baked      bool
	bounds     bounds
	polyBounds []bounds
	neighbors  [][]int32
	corner     []bool
}

// NewMesh assembles a mesh from fully resolved vertices and polygons.
func NewMesh(vertices []Vertex, polygons []Polygon) *Mesh {
	return &Mesh{
		Vertices: vertices,
		Polygons: polygons,
	}
}

// Bake finalizes the spatial query structures: per-polygon and overall
// bounding boxes, true shared-edge neighbor sets derived from the resolved
// vertex rings, and per-vertex corner flags. Baking twice is a no-op.
func (m *Mesh) Bake() {
	if m.baked {
		return
	}

	m.polyBounds = make([]bounds, len(m.Polygons))
	for pi := range m.Polygons {
		b := &m.polyBounds[pi]
		first := m.Vertices[m.Polygons[pi].Vertices[0]].Coords
		b.min, b.max = first, first
		for _, vi := range m.Polygons[pi].Vertices[1:] {
			b.extend(m.Vertices[vi].Coords)
		}
	}

	if len(m.polyBounds) > 0 {
		m.bounds = m.polyBounds[0]
		for _, b := range m.polyBounds[1:] {
			m.bounds.extend(b.min)
			m.bounds.extend(b.max)
		}
	}

	// Two consecutive real entries in a vertex ring share the edge between
	// them, which is exactly the neighbor relation the path search needs.
	// A vertex whose ring contains an obstacle is a corner of the mesh.
	m.neighbors = make([][]int32, len(m.Polygons))
	m.corner = make([]bool, len(m.Vertices))
	seen := make(map[[2]int32]bool)
	for vi := range m.Vertices {
		ring := m.Vertices[vi].Polygons
		for i, ref := range ring {
			if ref.IsObstacle() {
				m.corner[vi] = true
				continue
			}
			next := ring[(i+1)%len(ring)]
			if next.IsObstacle() || next == ref {
				continue
			}
			a, b := int32(ref), int32(next)
			key := [2]int32{a, b}
			if a > b {
				key = [2]int32{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			m.neighbors[a] = append(m.neighbors[a], b)
			m.neighbors[b] = append(m.neighbors[b], a)
		}
	}

	m.baked = true
}

// Baked reports whether Bake has run.
func (m *Mesh) Baked() bool {
	return m.baked
}

// Neighbors returns the polygons sharing an edge with the given polygon.
// Only valid after Bake.
func (m *Mesh) Neighbors(poly int) []int32 {
	return m.neighbors[poly]
}

// IsCorner reports whether the vertex sits on an obstacle boundary.
// Only valid after Bake.
func (m *Mesh) IsCorner(vertex int) bool {
	return m.corner[vertex]
}
