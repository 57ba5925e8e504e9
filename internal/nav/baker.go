package nav

import (
	"strings"

	"go.uber.org/zap"

	"github.com/coopbri/foxtrot/internal/scene"
)

// DefaultTag is the node name marker for navmesh source nodes.
const DefaultTag = "[navmesh]"

// Baker discovers navmesh source nodes in a scene and bakes their geometry
// into queryable meshes. Baking is event-driven: ProcessAdded reacts to
// newly spawned nodes rather than polling on a schedule.
type Baker struct {
	reg    *scene.Registry
	tag    string
	log    *zap.Logger
	meshes map[scene.NodeID]*Mesh
}

// NewBaker creates a baker for the given registry. tag is matched
// case-insensitively as a substring of node names; empty means DefaultTag.
func NewBaker(reg *scene.Registry, tag string, log *zap.Logger) *Baker {
	if tag == "" {
		tag = DefaultTag
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Baker{
		reg:    reg,
		tag:    strings.ToLower(tag),
		log:    log,
		meshes: make(map[scene.NodeID]*Mesh),
	}
}

// ProcessAdded scans nodes spawned since the last call and bakes every
// navmesh source among them. The raw mesh-bearing child of each baked
// source is despawned and the resulting mesh stored under the source's ID.
// Failures are logged and publish nothing. Returns the number of meshes
// baked.
func (b *Baker) ProcessAdded() int {
	baked := 0
	for _, id := range b.reg.DrainAdded() {
		n := b.reg.Get(id)
		if n == nil || !strings.Contains(strings.ToLower(n.Name), b.tag) {
			continue
		}

		meshNode, mesh, err := b.Build(id)
		if err != nil {
			b.log.Error("navmesh bake failed",
				zap.Uint32("node", uint32(id)),
				zap.String("name", n.Name),
				zap.Error(err))
			continue
		}

		b.reg.Despawn(meshNode)
		b.meshes[id] = mesh
		baked++

		b.log.Info("navmesh baked",
			zap.Uint32("node", uint32(id)),
			zap.String("name", n.Name),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Int("polygons", len(mesh.Polygons)))
	}
	return baked
}

// Build runs the full pipeline for one source node: extract, project,
// build polygons, resolve adjacency, bake. It owns all intermediate
// buffers, so concurrent builds for different sources are independent.
// The returned node is the mesh-bearing child the geometry came from.
func (b *Baker) Build(source scene.NodeID) (scene.NodeID, *Mesh, error) {
	meshNode, raw, err := extractMesh(b.reg, source)
	if err != nil {
		return 0, nil, err
	}

	world := scene.WorldTransform(b.reg, source)
	coords := projectVertices(world, raw.Positions)

	triangles := triangulate(raw.Indices)
	vertices := buildVertices(coords, triangles)
	polygons := buildPolygons(triangles, vertices)

	if err := resolveAdjacency(vertices, polygons); err != nil {
		return 0, nil, err
	}

	mesh := NewMesh(vertices, polygons)
	mesh.Bake()
	return meshNode, mesh, nil
}

// Mesh returns the baked navmesh for a source node, or nil.
func (b *Baker) Mesh(source scene.NodeID) *Mesh {
	return b.meshes[source]
}

// Meshes returns the store of all baked navmeshes keyed by source node.
func (b *Baker) Meshes() map[scene.NodeID]*Mesh {
	return b.meshes
}
