// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// validate.go - structural self-check of an already constructed graph.
//
// AddEdge already rejects every violation checked here, so under normal use
// Validate always succeeds. It reports rather than fails: a violation means
// an earlier bug, not caller misuse.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Validate reports whether every stored edge has a non-negative weight and
// both endpoints in range. On failure it logs a warning through the graph's
// logger and returns false. It never panics.
// Complexity: O(E).
func (g *Graph) Validate() bool {
	err := g.ValidateErr()
	if err != nil {
		g.log.Warn("invalid graph",
			zap.String("graph", g.name),
			zap.Int("graph_id", g.id),
			zap.Error(err),
		)

		return false
	}

	return true
}

// ValidateErr is Validate for programmatic callers: it returns the first
// violation wrapped around ErrInvalidWeight or ErrInvalidVertexIndex.
// Weights are checked across all edges before endpoints.
func (g *Graph) ValidateErr() error {
	for i, e := range g.edges {
		if e.weight < 0 {
			return fmt.Errorf("edges[%d]: negative edge weight %d: %w", i, e.weight, ErrInvalidWeight)
		}
	}
	for i, e := range g.edges {
		if !g.inRange(e.source) || !g.inRange(e.destination) {
			return fmt.Errorf("edges[%d]: vertex index out of bounds (%d, %d): %w",
				i, e.source, e.destination, ErrInvalidVertexIndex)
		}
	}

	return nil
}
