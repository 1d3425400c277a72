// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// validators.go - parameter checks shared by constructors.

package builder

// validateMin returns ErrTooFewVertices (with method context) if got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}
