package scene

import "github.com/go-gl/mathgl/mgl32"

// LocalTransform returns the node's local matrix: Translation * Rotation * Scale.
func LocalTransform(n *Node) mgl32.Mat4 {
	t := mgl32.Translate3D(n.Translation.X(), n.Translation.Y(), n.Translation.Z())
	rot := n.Rotation.Mat4()
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(rot).Mul4(s)
}

// WorldTransform composes local transforms from the root down to the node.
// It is a pure function of the registry's parent links and local transforms;
// freshly spawned nodes may not have been through any propagation pass yet,
// so no cached global transform is consulted.
func WorldTransform(r *Registry, id NodeID) mgl32.Mat4 {
	visited := make(map[NodeID]bool)
	return worldTransform(r, id, visited)
}

func worldTransform(r *Registry, id NodeID, visited map[NodeID]bool) mgl32.Mat4 {
	// Prevent infinite recursion on malformed parent links
	if visited[id] {
		return mgl32.Ident4()
	}
	visited[id] = true

	n := r.Get(id)
	if n == nil {
		return mgl32.Ident4()
	}

	local := LocalTransform(n)
	if n.Parent == 0 || r.Get(n.Parent) == nil {
		return local
	}
	return worldTransform(r, n.Parent, visited).Mul4(local)
}
