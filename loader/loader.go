// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// loader.go - Read and ReadFile: JSON documents to core graphs.

package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

// Read decodes one JSON document from r and builds every graph it holds,
// in document order.
//
// Shape detection on the root object:
//   - "graphs" present: an array of named-format graphs;
//   - "datasets" present: an array of legacy-format graphs;
//   - otherwise the root itself is one named-format graph.
//
// Named graphs get Name "Graph <id>" (id defaults to core.NoID) and an empty
// description when absent; edges are added by label. Legacy graphs get Name
// "Unnamed" when absent, no ID, and index-addressed edges.
//
// A graph declaring more vertices than the limit (DefaultMaxVertices, or
// WithMaxVertices) is rejected before allocation.
//
// The first failure aborts the read. Errors wrap ErrEmptyDocument,
// ErrMalformedDocument, ErrMissingField, or the core sentinel that rejected
// a vertex count, label or edge.
func Read(r io.Reader, opts ...Option) ([]*core.Graph, error) {
	o := newOptions(opts)

	doc, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}
	o.log.Debug("decoded graph document", zap.String("shape", doc.shape()))

	switch {
	case doc.has(keyGraphs):
		return readAll(doc, keyGraphs, o, readNamed)
	case doc.has(keyDatasets):
		return readAll(doc, keyDatasets, o, readLegacy)
	default:
		g, err := readNamed(doc.raw, o)
		if err != nil {
			return nil, err
		}
		return []*core.Graph{g}, nil
	}
}

// ReadFile opens path and calls Read on its contents.
func ReadFile(path string, opts ...Option) ([]*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	graphs, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return graphs, nil
}

type readFunc func(raw json.RawMessage, o options) (*core.Graph, error)

func readAll(doc document, key string, o options, read readFunc) ([]*core.Graph, error) {
	items, err := doc.elements(key)
	if err != nil {
		return nil, err
	}
	graphs := make([]*core.Graph, 0, len(items))
	for i, raw := range items {
		g, err := read(raw, o)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

func readNamed(raw json.RawMessage, o options) (*core.Graph, error) {
	ng, err := decodeNamed(raw)
	if err != nil {
		return nil, err
	}

	id := core.NoID
	if ng.ID != nil {
		id = *ng.ID
	}
	description := defaultDescription
	if ng.Description != nil {
		description = *ng.Description
	}

	if err = o.checkVertices(len(ng.Nodes)); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	g, err := core.NewLabeledGraph(ng.Nodes, o.graphOptions(
		core.WithID(id),
		core.WithName(fmt.Sprintf("Graph %d", id)),
		core.WithDescription(description),
	)...)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	for j, e := range ng.Edges {
		if err = g.AddEdgeByLabel(*e.From, *e.To, *e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", j, err)
		}
	}
	logLoaded(o.log, g)

	return g, nil
}

func readLegacy(raw json.RawMessage, o options) (*core.Graph, error) {
	lg, err := decodeLegacy(raw)
	if err != nil {
		return nil, err
	}

	name := defaultLegacyName
	if lg.Name != nil {
		name = *lg.Name
	}
	description := defaultDescription
	if lg.Description != nil {
		description = *lg.Description
	}

	if err = o.checkVertices(*lg.Vertices); err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}
	g, err := core.NewGraph(*lg.Vertices, o.graphOptions(
		core.WithName(name),
		core.WithDescription(description),
	)...)
	if err != nil {
		return nil, fmt.Errorf("vertices: %w", err)
	}
	for j, e := range lg.Edges {
		if err = g.AddEdge(*e.Source, *e.Destination, *e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", j, err)
		}
	}
	logLoaded(o.log, g)

	return g, nil
}

func logLoaded(log *zap.Logger, g *core.Graph) {
	log.Debug("loaded graph",
		zap.Int("graph_id", g.ID()),
		zap.String("graph", g.Name()),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)
}
