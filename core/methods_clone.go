// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// methods_clone.go - deep copy and statistics snapshot.

package core

import "maps"

// Clone returns a deep copy of g: labels, metadata, edges and adjacency.
// The copy shares nothing mutable with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		n:              g.n,
		edges:          make([]Edge, len(g.edges)),
		adjacency:      make([][]Edge, g.n),
		labels:         make([]string, g.n),
		index:          maps.Clone(g.index),
		name:           g.name,
		hasName:        g.hasName,
		description:    g.description,
		hasDescription: g.hasDescription,
		id:             g.id,
		strictLabels:   g.strictLabels,
		log:            g.log,
	}
	copy(clone.edges, g.edges)
	copy(clone.labels, g.labels)
	for v, adj := range g.adjacency {
		clone.adjacency[v] = make([]Edge, len(adj))
		copy(clone.adjacency[v], adj)
	}

	return clone
}

// Stats returns a snapshot of counts, connectivity and weight range.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: g.n,
		EdgeCount:   len(g.edges),
		Components:  g.CountComponents(),
	}
	stats.Connected = g.n <= 1 || stats.Components == 1

	for i, e := range g.edges {
		stats.TotalWeight += e.weight
		if i == 0 || e.weight < stats.MinWeight {
			stats.MinWeight = e.weight
		}
		if e.weight > stats.MaxWeight {
			stats.MaxWeight = e.weight
		}
	}

	return stats
}
