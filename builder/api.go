// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - the Constructor type and BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor builds a complete graph from a resolved configuration.
// Constructors validate their parameters before allocating.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// BuildGraph resolves opts and runs cons.
// Returns the constructor's error wrapped once with "BuildGraph:".
func BuildGraph(cons Constructor, opts ...BuilderOption) (*core.Graph, error) {
	if cons == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	g, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
