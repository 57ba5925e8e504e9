package nav

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coopbri/foxtrot/pkg/formats"
)

// ToNav converts a baked mesh into its cache file representation.
func (m *Mesh) ToNav() *formats.Nav {
	n := &formats.Nav{
		Version:  formats.NavVersion{Major: 1, Minor: 0},
		Vertices: make([]formats.NavVertex, len(m.Vertices)),
		Polygons: make([]formats.NavPolygon, len(m.Polygons)),
	}
	for i, v := range m.Vertices {
		ring := make([]int32, len(v.Polygons))
		for j, ref := range v.Polygons {
			ring[j] = int32(ref)
		}
		n.Vertices[i] = formats.NavVertex{
			X:    v.Coords.X(),
			Y:    v.Coords.Y(),
			Ring: ring,
		}
	}
	for i, p := range m.Polygons {
		n.Polygons[i] = formats.NavPolygon{
			Vertices: [3]uint32{uint32(p.Vertices[0]), uint32(p.Vertices[1]), uint32(p.Vertices[2])},
			OneWay:   p.OneWay,
		}
	}
	return n
}

// MeshFromNav rebuilds a baked mesh from its cache file representation.
func MeshFromNav(n *formats.Nav) (*Mesh, error) {
	vertices := make([]Vertex, len(n.Vertices))
	for i, v := range n.Vertices {
		ring := make([]PolyRef, len(v.Ring))
		for j, ref := range v.Ring {
			if ref >= 0 && int(ref) >= len(n.Polygons) {
				return nil, fmt.Errorf("vertex %d ring references polygon %d of %d", i, ref, len(n.Polygons))
			}
			ring[j] = PolyRef(ref)
		}
		vertices[i] = Vertex{
			Coords:   mgl32.Vec2{v.X, v.Y},
			Polygons: ring,
		}
	}

	polygons := make([]Polygon, len(n.Polygons))
	for i, p := range n.Polygons {
		for _, vi := range p.Vertices {
			if int(vi) >= len(n.Vertices) {
				return nil, fmt.Errorf("polygon %d references vertex %d of %d", i, vi, len(n.Vertices))
			}
		}
		polygons[i] = Polygon{
			Vertices: [3]int{int(p.Vertices[0]), int(p.Vertices[1]), int(p.Vertices[2])},
			OneWay:   p.OneWay,
		}
	}

	m := NewMesh(vertices, polygons)
	m.Bake()
	return m, nil
}
