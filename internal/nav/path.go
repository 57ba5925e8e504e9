package nav

import (
	"container/heap"

	"github.com/go-gl/mathgl/mgl32"
)

// pathNode represents a polygon in the A* search frontier.
type pathNode struct {
	poly   int32
	g      float32 // Cost from start
	h      float32 // Heuristic (straight-line to goal)
	f      float32 // Total cost (G + H)
	at     mgl32.Vec2
	parent *pathNode
	index  int // Index in heap
}

// pathHeap implements a priority queue for the polygon A* search.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *pathHeap) Push(x interface{}) {
	n := len(*h)
	node := x.(*pathNode)
	node.index = n
	*h = append(*h, node)
}

func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[0 : n-1]
	return node
}

// FindPath finds a planar path between two points using A* over the
// polygon adjacency graph, crossing polygons at shared-edge midpoints.
// Returns nil when either point is outside the mesh or no path exists.
// Only valid after Bake.
func (m *Mesh) FindPath(from, to mgl32.Vec2) []mgl32.Vec2 {
	if !m.baked || len(m.Polygons) == 0 {
		return nil
	}

	startPoly := m.PolygonContaining(from)
	goalPoly := m.PolygonContaining(to)
	if startPoly < 0 || goalPoly < 0 {
		return nil
	}

	if startPoly == goalPoly {
		return []mgl32.Vec2{from, to}
	}

	openSet := &pathHeap{}
	heap.Init(openSet)

	closedSet := make(map[int32]bool)
	nodeMap := make(map[int32]*pathNode)

	startNode := &pathNode{
		poly: int32(startPoly),
		at:   from,
		h:    to.Sub(from).Len(),
	}
	startNode.f = startNode.g + startNode.h
	heap.Push(openSet, startNode)
	nodeMap[startNode.poly] = startNode

	maxIterations := len(m.Polygons) + 1 // Search visits each polygon at most once

	for openSet.Len() > 0 && maxIterations > 0 {
		maxIterations--

		current := heap.Pop(openSet).(*pathNode)
		if current.poly == int32(goalPoly) {
			return m.reconstructPath(current, to)
		}
		closedSet[current.poly] = true

		for _, next := range m.neighbors[current.poly] {
			if closedSet[next] {
				continue
			}

			// Enter the neighbor through the midpoint of the shared edge.
			v0, v1, ok := m.sharedEdge(int(current.poly), int(next))
			if !ok {
				continue
			}
			entry := m.Vertices[v0].Coords.Add(m.Vertices[v1].Coords).Mul(0.5)
			g := current.g + entry.Sub(current.at).Len()

			neighbor, exists := nodeMap[next]
			if !exists {
				neighbor = &pathNode{
					poly:   next,
					g:      g,
					h:      to.Sub(entry).Len(),
					at:     entry,
					parent: current,
				}
				neighbor.f = neighbor.g + neighbor.h
				nodeMap[next] = neighbor
				heap.Push(openSet, neighbor)
			} else if g < neighbor.g {
				neighbor.g = g
				neighbor.f = neighbor.g + neighbor.h
				neighbor.at = entry
				neighbor.parent = current
				heap.Fix(openSet, neighbor.index)
			}
		}
	}

	// No path found
	return nil
}

// reconstructPath walks parent links back to the start and returns the
// waypoints in travel order, ending at the goal point.
func (m *Mesh) reconstructPath(node *pathNode, to mgl32.Vec2) []mgl32.Vec2 {
	var path []mgl32.Vec2
	path = append(path, to)
	for node != nil {
		path = append(path, node.at)
		node = node.parent
	}
	// Reverse (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
