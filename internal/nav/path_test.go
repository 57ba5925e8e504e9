package nav

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFindPath_SamePolygon(t *testing.T) {
	coords, tris := quad()
	m := buildMesh(t, coords, tris)

	from := mgl32.Vec2{0.6, 0.1}
	to := mgl32.Vec2{0.9, 0.3}
	path := m.FindPath(from, to)
	if len(path) != 2 {
		t.Fatalf("expected direct 2-point path, got %v", path)
	}
	if path[0] != from || path[1] != to {
		t.Errorf("expected [%v %v], got %v", from, to, path)
	}
}

func TestFindPath_AcrossMesh(t *testing.T) {
	m := gridMesh(t, 4, 4)

	from := mgl32.Vec2{0.3, 0.3}
	to := mgl32.Vec2{3.7, 3.7}
	path := m.FindPath(from, to)
	if path == nil {
		t.Fatal("expected a path across the grid, got nil")
	}
	if path[0] != from {
		t.Errorf("path should start at %v, got %v", from, path[0])
	}
	if path[len(path)-1] != to {
		t.Errorf("path should end at %v, got %v", to, path[len(path)-1])
	}

	// All intermediate waypoints stay inside the mesh.
	for _, p := range path {
		if m.PolygonContaining(p) < 0 {
			t.Errorf("waypoint %v is outside the mesh", p)
		}
	}
}

func TestFindPath_OffMesh(t *testing.T) {
	coords, tris := quad()
	m := buildMesh(t, coords, tris)

	if path := m.FindPath(mgl32.Vec2{5, 5}, mgl32.Vec2{0.5, 0.2}); path != nil {
		t.Errorf("expected nil path for off-mesh start, got %v", path)
	}
	if path := m.FindPath(mgl32.Vec2{0.5, 0.2}, mgl32.Vec2{5, 5}); path != nil {
		t.Errorf("expected nil path for off-mesh goal, got %v", path)
	}
}

func TestFindPath_DisconnectedComponents(t *testing.T) {
	// Two isolated triangles with a gap between them.
	coords := []mgl32.Vec2{
		{0, 0}, {1, 0}, {0, 1},
		{5, 5}, {6, 5}, {5, 6},
	}
	tris := [][3]int{{0, 1, 2}, {3, 4, 5}}
	m := buildMesh(t, coords, tris)

	if path := m.FindPath(mgl32.Vec2{0.2, 0.2}, mgl32.Vec2{5.2, 5.2}); path != nil {
		t.Errorf("expected nil path between disconnected components, got %v", path)
	}
}

func TestFindPath_Unbaked(t *testing.T) {
	coords, tris := quad()
	vertices, polygons := resolve(t, coords, tris)
	m := NewMesh(vertices, polygons)

	if path := m.FindPath(mgl32.Vec2{0.5, 0.2}, mgl32.Vec2{0.2, 0.5}); path != nil {
		t.Errorf("expected nil path on unbaked mesh, got %v", path)
	}
}
