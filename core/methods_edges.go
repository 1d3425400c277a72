// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// methods_edges.go - edge insertion and edge queries.
//
// AddEdge stores every edge twice in adjacency: the forward copy under the
// source and a mirrored copy under the destination. The flat edge list keeps
// one entry per insertion.

package core

import "fmt"

// AddEdge connects vertices src and dst with the given weight, using their
// current labels.
//
// Errors (checked in this order):
//   - ErrInvalidVertexIndex if either index is outside [0, n).
//   - ErrInvalidWeight if weight < 0.
//   - ErrSelfLoopNotAllowed if src == dst.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst int, weight int64) error {
	if !g.inRange(src) || !g.inRange(dst) {
		return fmt.Errorf("AddEdge(%d, %d): %w", src, dst, ErrInvalidVertexIndex)
	}

	return g.addEdge(src, dst, weight, g.labels[src], g.labels[dst])
}

// AddEdgeByLabel connects the vertices named from and to.
// Returns ErrUnknownLabel (wrapped with the missing name) if either label is
// absent, otherwise the same errors as AddEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeByLabel(from, to string, weight int64) error {
	src, ok := g.index[from]
	if !ok {
		return fmt.Errorf("AddEdgeByLabel(%q, %q): %q: %w", from, to, from, ErrUnknownLabel)
	}
	dst, ok := g.index[to]
	if !ok {
		return fmt.Errorf("AddEdgeByLabel(%q, %q): %q: %w", from, to, to, ErrUnknownLabel)
	}

	return g.addEdge(src, dst, weight, from, to)
}

// addEdge validates and stores one edge plus its mirror.
func (g *Graph) addEdge(src, dst int, weight int64, from, to string) error {
	if !g.inRange(src) || !g.inRange(dst) {
		return fmt.Errorf("addEdge(%d, %d): %w", src, dst, ErrInvalidVertexIndex)
	}
	if weight < 0 {
		return fmt.Errorf("addEdge(%s, %s) weight %d: %w", from, to, weight, ErrInvalidWeight)
	}
	if src == dst {
		return fmt.Errorf("addEdge(%s, %s): %w", from, to, ErrSelfLoopNotAllowed)
	}

	e := Edge{source: src, destination: dst, weight: weight, from: from, to: to}
	g.edges = append(g.edges, e)

	g.adjacency[src] = append(g.adjacency[src], e)
	g.adjacency[dst] = append(g.adjacency[dst], e.Reversed())

	return nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// AdjacentEdges returns a copy of the edges incident to v, each oriented
// outward from v (Source() == v).
// Returns ErrInvalidVertexIndex if v is outside [0, n).
// Complexity: O(deg(v)).
func (g *Graph) AdjacentEdges(v int) ([]Edge, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("AdjacentEdges(%d): %w", v, ErrInvalidVertexIndex)
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Neighbors returns the destination index of every edge incident to v, in
// insertion order. Parallel edges yield repeated indices.
// Returns ErrInvalidVertexIndex if v is outside [0, n).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrInvalidVertexIndex)
	}
	out := make([]int, len(g.adjacency[v]))
	for i, e := range g.adjacency[v] {
		out[i] = e.destination
	}

	return out, nil
}

// Degree returns the number of edges incident to v.
// Returns ErrInvalidVertexIndex if v is outside [0, n).
func (g *Graph) Degree(v int) (int, error) {
	if !g.inRange(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrInvalidVertexIndex)
	}

	return len(g.adjacency[v]), nil
}

// EdgeCount returns the number of edges added. O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
