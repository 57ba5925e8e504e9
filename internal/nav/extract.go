package nav

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/coopbri/foxtrot/internal/scene"
)

// Content contract errors. These indicate bad authoring and abort the bake
// for the offending source before any adjacency work begins.
var (
	ErrNoMesh          = errors.New("navmesh source has no mesh-bearing child")
	ErrMultipleMeshes  = errors.New("navmesh source has more than one mesh-bearing child")
	ErrNotTriangleList = errors.New("navmesh source mesh is not a triangle list")
	ErrNoPositions     = errors.New("navmesh source mesh has no vertex positions")
	ErrBadIndexCount   = errors.New("navmesh source mesh index count is not a multiple of 3")
)

// extractMesh locates the single mesh-bearing child of a navmesh source
// node and validates its topology. Exactly one child must carry mesh data;
// anything else is a content contract violation.
func extractMesh(reg *scene.Registry, source scene.NodeID) (scene.NodeID, *scene.MeshData, error) {
	var meshNode scene.NodeID
	var mesh *scene.MeshData

	for _, child := range reg.Children(source) {
		n := reg.Get(child)
		if n == nil || n.Mesh == nil {
			continue
		}
		if mesh != nil {
			return 0, nil, fmt.Errorf("%w: node %d", ErrMultipleMeshes, source)
		}
		meshNode = child
		mesh = n.Mesh
	}

	if mesh == nil {
		return 0, nil, fmt.Errorf("%w: node %d", ErrNoMesh, source)
	}
	if mesh.Topology != scene.TriangleList {
		return 0, nil, fmt.Errorf("%w: node %d has %s", ErrNotTriangleList, source, mesh.Topology)
	}
	if len(mesh.Positions) == 0 {
		return 0, nil, fmt.Errorf("%w: node %d", ErrNoPositions, source)
	}
	if len(mesh.Indices) == 0 || len(mesh.Indices)%3 != 0 {
		return 0, nil, fmt.Errorf("%w: node %d has %d indices", ErrBadIndexCount, source, len(mesh.Indices))
	}

	return meshNode, mesh, nil
}

// projectVertices applies the composed world transform to each position and
// drops the vertical axis. Navigation is 2D-planar: the planar X/Y carry
// world X/Z.
func projectVertices(world mgl32.Mat4, positions []mgl32.Vec3) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(positions))
	for i, p := range positions {
		w := mgl32.TransformCoordinate(p, world)
		out[i] = mgl32.Vec2{w.X(), w.Z()}
	}
	return out
}
