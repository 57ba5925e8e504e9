// Package nav builds traversable polygon navigation meshes from authored
// level geometry and answers pathfinding queries on them.
//
// The baking pipeline runs in five stages: mesh extraction from a scene
// node, world-space projection onto the horizontal plane, polygon building,
// per-vertex adjacency resolution, and a final bake that freezes the mesh
// and prepares its spatial query structures. Each run owns its buffers
// exclusively, so bakes for different source nodes may run in parallel.
package nav

import "github.com/go-gl/mathgl/mgl32"

// PolyRef is an entry in a vertex's polygon ring: either a polygon index or
// an obstacle marker. Negative index values denote "no polygon here", the
// same convention the half-edge literature uses for empty faces.
type PolyRef int32

// Obstacle marks a gap in a vertex's polygon ring: the angular sector
// between the two surrounding polygons has no neighbor (a doorway edge,
// geometry discontinuity, or the outer boundary).
const Obstacle PolyRef = -1

// IsObstacle reports whether the reference is an obstacle marker rather
// than a polygon index.
func (r PolyRef) IsObstacle() bool {
	return r < 0
}

// Vertex is a planar navmesh vertex together with its ring of polygons.
type Vertex struct {
	// Coords is the horizontal-plane projection of the world-space point:
	// X carries world X, Y carries world Z.
	Coords mgl32.Vec2

	// Polygons is the ring of polygons around this vertex. Before adjacency
	// resolution it holds every polygon containing the vertex in ascending
	// index order; afterwards it is ordered counterclockwise around the
	// vertex with Obstacle markers inserted at every gap.
	Polygons []PolyRef
}

// Polygon is one triangle of the navmesh. Vertices keep the source
// triangle's counterclockwise winding.
type Polygon struct {
	Vertices [3]int

	// OneWay is set when the polygon sits on the outer boundary of the
	// navigable area, meaning at least one of its edges has no neighbor.
	OneWay bool
}

// edges returns the directed edges of the polygon in winding order.
func (p *Polygon) edges() [3][2]int {
	v := p.Vertices
	return [3][2]int{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
}

// counterclockwiseEdge returns the polygon edge ending at the given vertex.
// With counterclockwise winding the vertex is always the second endpoint of
// exactly one edge; ok is false when the vertex is not part of the polygon.
func (p *Polygon) counterclockwiseEdge(vertex int) (edge [2]int, ok bool) {
	for _, e := range p.edges() {
		if e[1] == vertex {
			return e, true
		}
	}
	return [2]int{}, false
}

// clockwiseEdge returns the polygon edge starting at the given vertex.
func (p *Polygon) clockwiseEdge(vertex int) (edge [2]int, ok bool) {
	for _, e := range p.edges() {
		if e[0] == vertex {
			return e, true
		}
	}
	return [2]int{}, false
}
