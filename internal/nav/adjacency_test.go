package nav

import (
	"errors"
	gomath "math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// resolve runs the polygon-building and adjacency stages on planar input.
func resolve(t *testing.T, coords []mgl32.Vec2, tris [][3]int) ([]Vertex, []Polygon) {
	t.Helper()
	vertices := buildVertices(coords, tris)
	polygons := buildPolygons(tris, vertices)
	if err := resolveAdjacency(vertices, polygons); err != nil {
		t.Fatalf("resolveAdjacency failed: %v", err)
	}
	return vertices, polygons
}

func refs(rs ...PolyRef) []PolyRef { return rs }

// singleTriangle is one isolated counterclockwise triangle.
func singleTriangle() ([]mgl32.Vec2, [][3]int) {
	coords := []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}}
	return coords, [][3]int{{0, 1, 2}}
}

// quad is a unit square split along the v0-v2 diagonal into two
// counterclockwise triangles.
func quad() ([]mgl32.Vec2, [][3]int) {
	coords := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	return coords, [][3]int{{0, 1, 2}, {0, 2, 3}}
}

// hexFan is a hexagon triangulated as a fan around a center vertex. The
// center vertex (index 0) is fully surrounded: no boundary touches it.
func hexFan() ([]mgl32.Vec2, [][3]int) {
	coords := []mgl32.Vec2{{0, 0}}
	for i := 0; i < 6; i++ {
		a := float64(i) * gomath.Pi / 3
		coords = append(coords, mgl32.Vec2{float32(gomath.Cos(a)), float32(gomath.Sin(a))})
	}
	var tris [][3]int
	for i := 1; i <= 6; i++ {
		next := i + 1
		if next > 6 {
			next = 1
		}
		tris = append(tris, [3]int{0, i, next})
	}
	return coords, tris
}

func TestResolve_SingleTriangle(t *testing.T) {
	coords, tris := singleTriangle()
	vertices, _ := resolve(t, coords, tris)

	// Every vertex touches the lone polygon plus one obstacle closing the
	// ring. The ring is cyclic, so [Obstacle, 0] is the canonical result of
	// the deterministic walk.
	want := refs(Obstacle, 0)
	for vi, v := range vertices {
		if !reflect.DeepEqual(v.Polygons, want) {
			t.Errorf("vertex %d: expected ring %v, got %v", vi, want, v.Polygons)
		}
	}
}

func TestResolve_QuadDiagonal(t *testing.T) {
	coords, tris := quad()
	vertices, _ := resolve(t, coords, tris)

	// Vertices 1 and 3 touch only one triangle each.
	if got := vertices[1].Polygons; !reflect.DeepEqual(got, refs(Obstacle, 0)) {
		t.Errorf("vertex 1: expected [Obstacle 0], got %v", got)
	}
	if got := vertices[3].Polygons; !reflect.DeepEqual(got, refs(Obstacle, 1)) {
		t.Errorf("vertex 3: expected [Obstacle 1], got %v", got)
	}

	// The diagonal endpoints (0 and 2) touch both triangles. The triangles
	// are adjacent across the diagonal, so no obstacle separates them; the
	// single obstacle in each ring covers the gap outside the square.
	for _, vi := range []int{0, 2} {
		ring := vertices[vi].Polygons
		if len(ring) != 3 {
			t.Fatalf("vertex %d: expected ring of 3 (two polygons + one gap), got %v", vi, ring)
		}
		obstacles := 0
		for _, ref := range ring {
			if ref.IsObstacle() {
				obstacles++
			}
		}
		if obstacles != 1 {
			t.Errorf("vertex %d: expected exactly 1 obstacle, got %v", vi, ring)
		}
		// Polygons 0 and 1 must be cyclically consecutive without an
		// obstacle between them (the diagonal is an interior edge).
		adjacent := false
		for i, ref := range ring {
			next := ring[(i+1)%len(ring)]
			if !ref.IsObstacle() && !next.IsObstacle() {
				adjacent = true
			}
		}
		if !adjacent {
			t.Errorf("vertex %d: polygons not adjacent across the diagonal: %v", vi, ring)
		}
	}
}

func TestResolve_InteriorVertexHasNoObstacles(t *testing.T) {
	coords, tris := hexFan()
	vertices, _ := resolve(t, coords, tris)

	// The fully surrounded center vertex must have a pure polygon ring.
	center := vertices[0].Polygons
	if len(center) != 6 {
		t.Fatalf("center: expected ring of 6, got %v", center)
	}
	for _, ref := range center {
		if ref.IsObstacle() {
			t.Fatalf("center: unexpected obstacle in ring %v", center)
		}
	}

	// Each rim vertex touches two triangles with one outer gap.
	for vi := 1; vi <= 6; vi++ {
		ring := vertices[vi].Polygons
		if len(ring) != 3 {
			t.Errorf("vertex %d: expected ring of 3, got %v", vi, ring)
		}
	}
}

func TestResolve_RingInvariants(t *testing.T) {
	coords, tris := hexFan()
	vertices, _ := resolve(t, coords, tris)

	for vi, v := range vertices {
		neighbors, gaps := 0, 0
		for i, ref := range v.Polygons {
			if ref.IsObstacle() {
				gaps++
				next := v.Polygons[(i+1)%len(v.Polygons)]
				if next.IsObstacle() {
					t.Errorf("vertex %d: adjacent obstacles in ring %v", vi, v.Polygons)
				}
			} else {
				neighbors++
			}
		}
		if len(v.Polygons) != neighbors+gaps {
			t.Errorf("vertex %d: ring length %d != %d polygons + %d gaps", vi, len(v.Polygons), neighbors, gaps)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	coords, tris := quad()

	first, _ := resolve(t, coords, tris)
	second, _ := resolve(t, coords, tris)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolving the same input twice produced different rings:\n%v\n%v", first, second)
	}
}

func TestResolve_MalformedPolygonFailsFast(t *testing.T) {
	// Vertex 0's fan claims polygon 0, but the polygon does not list
	// vertex 0. The resolver must report this instead of producing a
	// silently wrong ring.
	vertices := []Vertex{
		{Coords: mgl32.Vec2{0, 0}, Polygons: refs(0)},
		{Coords: mgl32.Vec2{1, 0}},
		{Coords: mgl32.Vec2{0, 1}},
		{Coords: mgl32.Vec2{1, 1}},
	}
	polygons := []Polygon{{Vertices: [3]int{1, 2, 3}}}

	err := resolveAdjacency(vertices, polygons)
	if err == nil {
		t.Fatal("expected error for malformed polygon/vertex association")
	}
	if !errors.Is(err, ErrMalformedPolygon) {
		t.Errorf("expected ErrMalformedPolygon, got %v", err)
	}
}

func TestBuildPolygons_OneWay(t *testing.T) {
	coords, tris := quad()
	vertices := buildVertices(coords, tris)
	polygons := buildPolygons(tris, vertices)

	// Each triangle of the split quad touches only 2 distinct polygons
	// across its vertices, below the 3 needed for an interior polygon.
	for pi, p := range polygons {
		if !p.OneWay {
			t.Errorf("polygon %d: expected one-way", pi)
		}
	}

	// Hexagon fan triangles all touch the center vertex, whose fan holds
	// all 6 polygons, so none are flagged one-way by the heuristic.
	coords, tris = hexFan()
	vertices = buildVertices(coords, tris)
	polygons = buildPolygons(tris, vertices)
	for pi, p := range polygons {
		if p.OneWay {
			t.Errorf("polygon %d: expected interior by the fan heuristic", pi)
		}
	}
}

func TestBuildVertices_FanOrder(t *testing.T) {
	coords, tris := quad()
	vertices := buildVertices(coords, tris)

	// Unordered fans hold polygons in ascending index order.
	if got := vertices[0].Polygons; !reflect.DeepEqual(got, refs(0, 1)) {
		t.Errorf("vertex 0: expected fan [0 1], got %v", got)
	}
	if got := vertices[1].Polygons; !reflect.DeepEqual(got, refs(0)) {
		t.Errorf("vertex 1: expected fan [0], got %v", got)
	}
}
