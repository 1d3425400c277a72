// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// validate.go - structural checks that build no graphs.

package loader

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Validate checks that r holds a document Read could parse as named-format
// graphs: with a "graphs" array every element is checked, otherwise the
// root object is. Each graph needs "nodes" and "edges", and each edge needs
// "from", "to" and "weight".
//
// Legacy "datasets" documents are not recognized here and fail on the
// missing "nodes" field. Label resolution, weight signs and self-loops are
// left to Read.
func Validate(r io.Reader) error {
	doc, err := decodeDocument(r)
	if err != nil {
		return err
	}
	if !doc.has(keyGraphs) {
		_, err = decodeNamed(doc.raw)
		return err
	}

	items, err := doc.elements(keyGraphs)
	if err != nil {
		return err
	}
	for i, raw := range items {
		if _, err = decodeNamed(raw); err != nil {
			return fmt.Errorf("%s[%d]: %w", keyGraphs, i, err)
		}
	}

	return nil
}

// ValidateFile opens path and calls Validate on its contents.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	if err = Validate(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// IsValid reports whether ValidateFile accepts path, logging the reason
// at Warn when it does not.
func IsValid(path string, opts ...Option) bool {
	o := newOptions(opts)
	if err := ValidateFile(path); err != nil {
		o.log.Warn("invalid graph document", zap.String("path", path), zap.Error(err))
		return false
	}

	return true
}
