// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (new graphs derived from an existing one).
// Determinism:
//   - Kept vertices are renumbered 0..k-1 in the order given by the caller.
//   - Edges keep their insertion order and labels.

package core

import "fmt"

// InducedSubgraph returns a new Graph on the vertices in keep (renumbered in
// the given order) with every edge whose endpoints are both kept. Labels and
// metadata are carried over; g is not mutated.
//
// Returns ErrInvalidVertexCount if keep is empty and ErrInvalidVertexIndex for
// an out-of-range or repeated index.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep []int) (*Graph, error) {
	if len(keep) == 0 {
		return nil, fmt.Errorf("InducedSubgraph: %w", ErrInvalidVertexCount)
	}

	remap := make(map[int]int, len(keep)) // old index → new index
	labels := make([]string, len(keep))
	for i, v := range keep {
		if !g.inRange(v) {
			return nil, fmt.Errorf("InducedSubgraph: keep[%d]=%d: %w", i, v, ErrInvalidVertexIndex)
		}
		if _, dup := remap[v]; dup {
			return nil, fmt.Errorf("InducedSubgraph: keep[%d]=%d repeated: %w", i, v, ErrInvalidVertexIndex)
		}
		remap[v] = i
		labels[i] = g.labels[v]
	}

	out := newGraph(len(keep), []GraphOption{WithLogger(g.log), WithID(g.id)})
	out.name, out.hasName = g.name, g.hasName
	out.description, out.hasDescription = g.description, g.hasDescription
	for i, label := range labels {
		out.labels[i] = label
		out.index[label] = i
	}

	for _, e := range g.edges {
		src, okSrc := remap[e.source]
		dst, okDst := remap[e.destination]
		if !okSrc || !okDst {
			continue
		}
		if err := out.addEdge(src, dst, e.weight, e.from, e.to); err != nil {
			return nil, fmt.Errorf("InducedSubgraph: %w", err)
		}
	}

	return out, nil
}
