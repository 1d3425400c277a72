// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// errors.go - sentinel errors for the loader package.
//
// Every error returned by Read, ReadFile, Validate and ValidateFile wraps
// one of these sentinels (or a core sentinel when the document is well
// formed but describes an illegal graph), prefixed with the JSON path of
// the offending element, e.g. "graphs[1]: edges[0].weight".

package loader

import "errors"

var (
	// ErrEmptyDocument indicates the input holds no JSON value at all.
	ErrEmptyDocument = errors.New("loader: empty document")

	// ErrMalformedDocument indicates invalid JSON or a value of the wrong type.
	ErrMalformedDocument = errors.New("loader: malformed document")

	// ErrMissingField indicates a required field is absent or null.
	ErrMissingField = errors.New("loader: missing required field")
)
