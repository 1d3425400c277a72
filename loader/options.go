// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// options.go - functional options shared by the loader entry points.

package loader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

// DefaultMaxVertices caps the vertex count of any single graph read from a
// document unless WithMaxVertices says otherwise.
const DefaultMaxVertices = 1 << 20

// Option configures a loader call.
type Option func(*options)

type options struct {
	log         *zap.Logger
	strict      bool
	maxVertices int
}

func newOptions(opts []Option) options {
	o := options{log: zap.NewNop(), maxVertices: DefaultMaxVertices}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger for parse diagnostics. Every loaded graph
// receives the same logger for its Validate reports. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithStrictLabels rejects node lists with repeated labels
// (core.ErrDuplicateLabel) instead of letting the later node shadow the earlier.
func WithStrictLabels(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithMaxVertices sets the largest vertex count a graph may declare. Larger
// graphs fail with core.ErrInvalidVertexCount before anything is allocated.
// Values below 1 are ignored.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxVertices = n
		}
	}
}

// checkVertices enforces the configured vertex limit.
func (o options) checkVertices(n int) error {
	if n > o.maxVertices {
		return fmt.Errorf("%d exceeds limit %d: %w", n, o.maxVertices, core.ErrInvalidVertexCount)
	}

	return nil
}

// graphOptions returns the core options every loaded graph is built with.
func (o options) graphOptions(extra ...core.GraphOption) []core.GraphOption {
	out := append([]core.GraphOption{core.WithLogger(o.log)}, extra...)
	if o.strict {
		out = append(out, core.WithStrictLabels())
	}

	return out
}
