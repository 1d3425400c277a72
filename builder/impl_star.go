// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): vertex 0 is the center, 1..n-1 are leaves.
//   - Emits 0–i for i=1..n-1 in increasing order.

package builder

import "github.com/katalvlaran/wgraph/core"

// Star returns a Constructor that builds the star S_{n-1} centered at vertex 0.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return nil, err
		}
		g, err := cfg.newGraph(MethodStar, n)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodStar, g, cfg, 0, i); err != nil {
				return nil, err
			}
		}

		return g, nil
	}
}
