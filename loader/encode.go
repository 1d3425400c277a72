// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// encode.go - writes graphs back as a named-format "graphs" document.

package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/wgraph/core"
)

type encodedDocument struct {
	Graphs []encodedGraph `json:"graphs"`
}

type encodedGraph struct {
	ID          *int        `json:"id,omitempty"`
	Description string      `json:"description,omitempty"`
	Nodes       []string    `json:"nodes"`
	Edges       []core.Edge `json:"edges"`
}

// Encode writes graphs to w as {"graphs": [...]} in the named format,
// indented by two spaces. Reading the output back yields graphs with the
// same IDs, descriptions, labels and edges; names are re-derived from IDs,
// so a legacy name does not survive. Graphs without an ID omit the field.
//
// Edges are written by label, so a graph with a repeated label has no
// faithful encoding. Encode returns core.ErrDuplicateLabel for it and writes
// nothing.
func Encode(w io.Writer, graphs []*core.Graph) error {
	for i, g := range graphs {
		if err := checkUniqueLabels(g); err != nil {
			return fmt.Errorf("loader: encode: graphs[%d]: %w", i, err)
		}
	}

	doc := encodedDocument{Graphs: make([]encodedGraph, 0, len(graphs))}
	for _, g := range graphs {
		eg := encodedGraph{
			Description: g.Description(),
			Nodes:       g.Labels(),
			Edges:       g.Edges(),
		}
		if g.ID() != core.NoID {
			id := g.ID()
			eg.ID = &id
		}
		if eg.Edges == nil {
			eg.Edges = []core.Edge{}
		}
		doc.Graphs = append(doc.Graphs, eg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return nil
}

func checkUniqueLabels(g *core.Graph) error {
	labels := g.Labels()
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return fmt.Errorf("label %q repeated: %w", l, core.ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}
