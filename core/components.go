// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// components.go - connectivity and component queries.
//
// Both queries are breadth-first sweeps over adjacency: a FIFO of vertex
// indices (gammazero/deque) and a visited bitmap (roaring). Visit order is
// not observable in the results, only reachability.
//
// Complexity: O(V + E) time, O(V) auxiliary space.

package core

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/gammazero/deque"
)

// IsConnected reports whether every vertex is reachable from vertex 0.
// Graphs with zero or one vertex are connected by definition.
func (g *Graph) IsConnected() bool {
	if g.n <= 1 {
		return true
	}
	if len(g.edges) == 0 {
		return false
	}

	visited := roaring.New()
	reached := g.sweep(0, visited, nil)

	return reached == g.n
}

// CountComponents returns the number of connected components. An edgeless
// graph has VertexCount() components.
func (g *Graph) CountComponents() int {
	visited := roaring.New()
	components := 0

	for v := 0; v < g.n; v++ {
		if visited.Contains(uint32(v)) {
			continue
		}
		components++
		g.sweep(v, visited, nil)
	}

	return components
}

// Components returns the vertex set of each component. Each set is sorted
// ascending; sets are ordered by their smallest vertex.
func (g *Graph) Components() [][]int {
	visited := roaring.New()
	var comps [][]int

	for v := 0; v < g.n; v++ {
		if visited.Contains(uint32(v)) {
			continue
		}
		member := roaring.New()
		g.sweep(v, visited, member)

		comp := make([]int, 0, member.GetCardinality())
		it := member.Iterator()
		for it.HasNext() {
			comp = append(comp, int(it.Next()))
		}
		comps = append(comps, comp)
	}

	return comps
}

// sweep runs BFS from start, marking vertices in visited (and member, if
// non-nil). It returns the number of vertices newly reached, start included.
func (g *Graph) sweep(start int, visited, member *roaring.Bitmap) int {
	var queue deque.Deque[int]

	visited.Add(uint32(start))
	if member != nil {
		member.Add(uint32(start))
	}
	queue.PushBack(start)
	reached := 1

	for queue.Len() > 0 {
		current := queue.PopFront()
		for _, e := range g.adjacency[current] {
			if !visited.CheckedAdd(uint32(e.destination)) {
				continue // seen
			}
			if member != nil {
				member.Add(uint32(e.destination))
			}
			queue.PushBack(e.destination)
			reached++
		}
	}

	return reached
}
