// Package scene provides a minimal scene graph: named nodes with parent
// links, local transforms, and optional mesh data.
package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeID identifies a node in a Registry. 0 is never a valid ID and doubles
// as the "no parent" value.
type NodeID uint32

// Topology describes how a mesh's index buffer is interpreted.
type Topology int

// Supported primitive topologies.
const (
	TriangleList Topology = iota
	LineList
	PointList
)

// String returns a human-readable topology name.
func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "TriangleList"
	case LineList:
		return "LineList"
	case PointList:
		return "PointList"
	default:
		return "Unknown"
	}
}

// MeshData holds raw mesh geometry attached to a node.
type MeshData struct {
	Topology  Topology
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Node is a single scene-graph node. Transforms are local to the parent.
type Node struct {
	ID     NodeID
	Name   string
	Parent NodeID

	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3

	Mesh *MeshData
}

// Registry owns the nodes of a scene and tracks newly spawned ones so that
// systems can react to additions.
type Registry struct {
	nodes  map[NodeID]*Node
	nextID NodeID
	added  []NodeID
}

// NewRegistry creates an empty scene registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes:  make(map[NodeID]*Node),
		nextID: 1,
	}
}

// Spawn creates a new node under the given parent (0 for a root node).
// The node starts with an identity transform.
func (r *Registry) Spawn(name string, parent NodeID) *Node {
	n := &Node{
		ID:       r.nextID,
		Name:     name,
		Parent:   parent,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
	r.nextID++
	r.nodes[n.ID] = n
	r.added = append(r.added, n.ID)
	return n
}

// Get returns the node with the given ID, or nil.
func (r *Registry) Get(id NodeID) *Node {
	return r.nodes[id]
}

// Children returns the IDs of all direct children of a node, in ID order.
func (r *Registry) Children(id NodeID) []NodeID {
	var out []NodeID
	for _, n := range r.nodes {
		if n.Parent == id {
			out = append(out, n.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Despawn removes a node and all of its descendants.
func (r *Registry) Despawn(id NodeID) {
	for _, child := range r.Children(id) {
		r.Despawn(child)
	}
	delete(r.nodes, id)
}

// DrainAdded returns the IDs of nodes spawned since the last call and resets
// the added list. IDs of nodes that were despawned in the meantime are skipped.
func (r *Registry) DrainAdded() []NodeID {
	var out []NodeID
	for _, id := range r.added {
		if r.nodes[id] != nil {
			out = append(out, id)
		}
	}
	r.added = r.added[:0]
	return out
}

// Len returns the number of live nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}
