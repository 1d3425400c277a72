// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits i–j for every i < j in lexicographic (i, j) order: n(n-1)/2 edges.
//
// Complexity:
//   - Time: O(n²).

package builder

import "github.com/katalvlaran/wgraph/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return nil, err
		}
		g, err := cfg.newGraph(MethodComplete, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, cfg, i, j); err != nil {
					return nil, err
				}
			}
		}

		return g, nil
	}
}
