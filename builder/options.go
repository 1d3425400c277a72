// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors panic on nil functions: that is a programmer error,
// not a runtime condition.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/wgraph/core"
)

// BuilderOption configures a builder run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex labeling function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand sets the RNG passed to the weight function.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for the weight function.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight function.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithGraphOptions forwards metadata options (name, description, ID,
// logger) to the constructed core.Graph.
func WithGraphOptions(opts ...core.GraphOption) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
