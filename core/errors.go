// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// errors.go - sentinel errors for the core package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Call sites attach context (indices, labels) with %w wrapping.
//   • Validate() is the one operation that reports instead of returning an error.

package core

import "errors"

var (
	// ErrInvalidVertexCount indicates a non-positive vertex count at construction.
	ErrInvalidVertexCount = errors.New("core: number of vertices must be positive")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight cannot be negative")

	// ErrInvalidVertexIndex indicates an index outside [0, VertexCount()).
	ErrInvalidVertexIndex = errors.New("core: invalid vertex index")

	// ErrUnknownLabel indicates a label that is absent from the label map.
	ErrUnknownLabel = errors.New("core: node name not found")

	// ErrSelfLoopNotAllowed indicates an edge whose endpoints coincide.
	ErrSelfLoopNotAllowed = errors.New("core: self-loops are not allowed")

	// ErrInvalidEndpoint indicates Other(v) was called with a vertex that is
	// neither endpoint of the edge.
	ErrInvalidEndpoint = errors.New("core: invalid endpoint")

	// ErrDuplicateLabel indicates a repeated vertex label in strict-label mode.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")
)
