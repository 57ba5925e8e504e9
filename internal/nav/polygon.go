package nav

import "github.com/go-gl/mathgl/mgl32"

// triangulate groups the index buffer into triangle index triples,
// preserving order. The caller has already validated the buffer length.
func triangulate(indices []uint32) [][3]int {
	out := make([][3]int, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		out = append(out, [3]int{int(indices[i]), int(indices[i+1]), int(indices[i+2])})
	}
	return out
}

// buildVertices creates one planar vertex per coordinate, each holding the
// unordered fan of polygons that contain it. Fans are in ascending polygon
// index order, which fixes the deterministic starting polygon for the
// angular sort later on.
func buildVertices(coords []mgl32.Vec2, triangles [][3]int) []Vertex {
	vertices := make([]Vertex, len(coords))
	for i, c := range coords {
		vertices[i].Coords = c
	}
	for pi, tri := range triangles {
		for _, vi := range tri {
			vertices[vi].Polygons = append(vertices[vi].Polygons, PolyRef(pi))
		}
	}
	return vertices
}

// buildPolygons creates polygon records from the triangle triples and
// computes their one-way flags from the still-unordered vertex fans.
//
// An interior triangle shares each of its edges with a distinct neighbor,
// so its vertices collectively touch at least 3 distinct polygons. Fewer
// than 3 means some edge has no neighbor: the polygon is on the boundary.
// This holds for manifold triangulated input; behavior on degenerate or
// non-manifold meshes is undefined.
func buildPolygons(triangles [][3]int, vertices []Vertex) []Polygon {
	polygons := make([]Polygon, len(triangles))
	for pi, tri := range triangles {
		distinct := make(map[PolyRef]struct{}, 3)
		for _, vi := range tri {
			for _, ref := range vertices[vi].Polygons {
				distinct[ref] = struct{}{}
				if len(distinct) >= 3 {
					break
				}
			}
			if len(distinct) >= 3 {
				break
			}
		}
		polygons[pi] = Polygon{
			Vertices: tri,
			OneWay:   len(distinct) < 3,
		}
	}
	return polygons
}
