// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path 0–1–…–(n-1) then the closing edge (n-1)–0.

package builder

import "github.com/katalvlaran/wgraph/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return nil, err
		}
		g, err := cfg.newGraph(MethodCycle, n)
		if err != nil {
			return nil, err
		}
		if err = addPathEdges(MethodCycle, g, cfg, 0, n); err != nil {
			return nil, err
		}
		if err = addEdge(MethodCycle, g, cfg, n-1, 0); err != nil {
			return nil, err
		}

		return g, nil
	}
}
