// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w (see builderErrorf).
//   • Constructors never panic at runtime; panics are confined to option
//     constructor functions (WithX..., XxxWeightFn) for programmer errors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum allowed by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the underlying core.Graph rejected a vertex
// table or an edge (e.g. a weight function produced a negative weight).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with a "<Method>: <message>" prefix.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
