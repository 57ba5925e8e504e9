package nav

import "github.com/go-gl/mathgl/mgl32"

// cross2 returns the z-component of the cross product of (b-a) and (p-a).
func cross2(a, b, p mgl32.Vec2) float32 {
	return (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
}

// Centroid returns the center point of a polygon.
func (m *Mesh) Centroid(poly int) mgl32.Vec2 {
	p := &m.Polygons[poly]
	var c mgl32.Vec2
	for _, vi := range p.Vertices {
		c = c.Add(m.Vertices[vi].Coords)
	}
	return c.Mul(1.0 / 3.0)
}

// PolygonContaining returns the index of the polygon containing the planar
// point, or -1 if the point is outside the mesh. Only valid after Bake.
func (m *Mesh) PolygonContaining(pt mgl32.Vec2) int {
	if !m.bounds.contains(pt) {
		return -1
	}
	for pi := range m.Polygons {
		if !m.polyBounds[pi].contains(pt) {
			continue
		}
		if m.polygonContains(pi, pt) {
			return pi
		}
	}
	return -1
}

// polygonContains tests point-in-triangle via edge cross products. Points
// on an edge count as inside.
func (m *Mesh) polygonContains(poly int, pt mgl32.Vec2) bool {
	v := m.Polygons[poly].Vertices
	a := m.Vertices[v[0]].Coords
	b := m.Vertices[v[1]].Coords
	c := m.Vertices[v[2]].Coords

	d0 := cross2(a, b, pt)
	d1 := cross2(b, c, pt)
	d2 := cross2(c, a, pt)

	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

// ClosestPolygon returns the polygon whose centroid is nearest to the
// point. Returns -1 on an empty mesh. Only valid after Bake.
func (m *Mesh) ClosestPolygon(pt mgl32.Vec2) int {
	best := -1
	var bestDist float32
	for pi := range m.Polygons {
		d := m.Centroid(pi).Sub(pt).LenSqr()
		if best == -1 || d < bestDist {
			best = pi
			bestDist = d
		}
	}
	return best
}

// sharedEdge returns the undirected edge two polygons have in common.
// ok is false when the polygons do not share an edge.
func (m *Mesh) sharedEdge(a, b int) (v0, v1 int, ok bool) {
	for _, ea := range m.Polygons[a].edges() {
		for _, eb := range m.Polygons[b].edges() {
			if ea[0] == eb[1] && ea[1] == eb[0] {
				return ea[0], ea[1], true
			}
		}
	}
	return 0, 0, false
}
