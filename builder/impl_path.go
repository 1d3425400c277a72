// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - implementation of Path(n) and Empty(n).
//
// Contract:
//   - Path: n ≥ 2 (else ErrTooFewVertices); edges (i-1)–i for i=1..n-1.
//   - Empty: n ≥ 1; no edges (n components).
//   - Labels via cfg.idFn in ascending index order.
//
// Complexity:
//   - Time: O(n).

package builder

import "github.com/katalvlaran/wgraph/core"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return nil, err
		}
		g, err := cfg.newGraph(MethodPath, n)
		if err != nil {
			return nil, err
		}
		if err = addPathEdges(MethodPath, g, cfg, 0, n); err != nil {
			return nil, err
		}

		return g, nil
	}
}

// Empty returns a Constructor that builds n isolated vertices.
func Empty(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodEmpty, n, MinEmptyNodes); err != nil {
			return nil, err
		}

		return cfg.newGraph(MethodEmpty, n)
	}
}
