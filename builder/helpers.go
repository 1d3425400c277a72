// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// helpers.go - edge emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// addEdge inserts u–v with the next configured weight, wrapping failures
// with method context and ErrConstructFailed.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addPathEdges emits (offset+i-1)–(offset+i) for i=1..n-1.
func addPathEdges(method string, g *core.Graph, cfg builderConfig, offset, n int) error {
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, cfg, offset+i-1, offset+i); err != nil {
			return err
		}
	}

	return nil
}
