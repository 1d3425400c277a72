// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// config.go - resolved builder configuration.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wgraph/core"
)

// builderConfig holds the resolved options for one BuildGraph call.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	graphOpts []core.GraphOption // metadata forwarded to core
}

// newBuilderConfig applies opts over the defaults: decimal labels, no RNG,
// constant DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newGraph allocates an n-vertex graph labeled by cfg.idFn.
func (cfg builderConfig) newGraph(method string, n int) (*core.Graph, error) {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = cfg.idFn(i)
	}
	g, err := core.NewLabeledGraph(labels, cfg.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return g, nil
}

// weight draws the next edge weight.
func (cfg builderConfig) weight() int64 {
	return cfg.weightFn(cfg.rng)
}
