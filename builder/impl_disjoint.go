// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_disjoint.go - implementation of Disjoint(parts...).
//
// Contract:
//   - At least one part, every part ≥ 1 (else ErrTooFewVertices).
//   - Part k occupies a contiguous index block and is wired as a path, so
//     the result has exactly len(parts) components.

package builder

import "github.com/katalvlaran/wgraph/core"

// Disjoint returns a Constructor that builds a union of paths with the
// given sizes. A part of size 1 is an isolated vertex.
func Disjoint(parts ...int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if err := validateMin(MethodDisjoint, len(parts), MinDisjointParts); err != nil {
			return nil, err
		}
		total := 0
		for _, p := range parts {
			if err := validateMin(MethodDisjoint, p, 1); err != nil {
				return nil, err
			}
			total += p
		}

		g, err := cfg.newGraph(MethodDisjoint, total)
		if err != nil {
			return nil, err
		}
		offset := 0
		for _, p := range parts {
			if err = addPathEdges(MethodDisjoint, g, cfg, offset, p); err != nil {
				return nil, err
			}
			offset += p
		}

		return g, nil
	}
}
