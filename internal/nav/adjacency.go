package nav

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"
)

// ErrMalformedPolygon reports a polygon/vertex association that does not
// hold: an edge lookup was asked for a vertex the polygon does not contain.
// This is an internal consistency failure and aborts the bake.
var ErrMalformedPolygon = errors.New("polygon does not contain expected vertex")

// resolveAdjacency orders every vertex's polygon fan counterclockwise and
// inserts Obstacle markers wherever two angularly-adjacent polygons do not
// share the edge between them. After it returns, each vertex's Polygons
// ring is final and must not be mutated again.
func resolveAdjacency(vertices []Vertex, polygons []Polygon) error {
	for vi := range vertices {
		if err := resolveVertex(vi, vertices, polygons); err != nil {
			return err
		}
	}
	return nil
}

// resolveVertex computes the final polygon ring of a single vertex.
func resolveVertex(vi int, vertices []Vertex, polygons []Polygon) error {
	v := &vertices[vi]
	if len(v.Polygons) == 0 {
		return nil
	}

	// Sort the fan by the angle of each polygon's counterclockwise-incident
	// edge at this vertex: the edge arrives at the vertex, so the far
	// endpoint gives the direction in which the polygon's sector ends.
	type fanEntry struct {
		ref   PolyRef
		angle float64
	}
	entries := make([]fanEntry, len(v.Polygons))
	for i, ref := range v.Polygons {
		edge, ok := polygons[ref].counterclockwiseEdge(vi)
		if !ok {
			return fmt.Errorf("%w: polygon %d, vertex %d (counterclockwise edge)", ErrMalformedPolygon, ref, vi)
		}
		d := vertices[edge[0]].Coords.Sub(v.Coords)
		entries[i] = fanEntry{
			ref:   ref,
			angle: gomath.Atan2(float64(d.Y()), float64(d.X())),
		}
	}
	// Stable sort with a total order: valid geometry never produces NaN
	// angles, but the comparator must stay total regardless. NaN sorts last.
	sort.SliceStable(entries, func(i, j int) bool {
		ai, aj := entries[i].angle, entries[j].angle
		if gomath.IsNaN(ai) {
			return false
		}
		if gomath.IsNaN(aj) {
			return true
		}
		return ai < aj
	})

	// Walk the sorted fan as a ring: the first polygon is appended again at
	// the end so the pair wrapping around the start is checked too. Two
	// polygons are true neighbors when the current one's counterclockwise
	// edge and the next one's clockwise edge are the same undirected edge
	// traversed in opposite winding; otherwise there is a gap between them.
	ring := make([]PolyRef, 0, len(entries)+1)
	ring = append(ring, entries[0].ref)
	for i := 1; i <= len(entries); i++ {
		next := entries[i%len(entries)].ref
		last := ring[len(ring)-1]

		lastEdge, ok := polygons[last].counterclockwiseEdge(vi)
		if !ok {
			return fmt.Errorf("%w: polygon %d, vertex %d (counterclockwise edge)", ErrMalformedPolygon, last, vi)
		}
		nextEdge, ok := polygons[next].clockwiseEdge(vi)
		if !ok {
			return fmt.Errorf("%w: polygon %d, vertex %d (clockwise edge)", ErrMalformedPolygon, next, vi)
		}

		if lastEdge[0] != nextEdge[1] || lastEdge[1] != nextEdge[0] {
			ring = append(ring, Obstacle)
		}
		ring = append(ring, next)
	}

	// The first element shows up again as the final one; drop the duplicate.
	v.Polygons = ring[1:]
	return nil
}
