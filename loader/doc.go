// SPDX-License-Identifier: MIT
// Package loader reads weighted undirected graphs from JSON documents into
// core.Graph values, checks document structure, prints summaries and writes
// graphs back out.
//
// Three document shapes are recognized:
//
//	{"graphs": [ {named}, ... ]}     multi-graph wrapper
//	{"datasets": [ {legacy}, ... ]}  legacy wrapper
//	{named}                          single graph
//
// Named graphs address vertices by label:
//
//	{"id": 1, "description": "triangle", "nodes": ["A","B","C"],
//	 "edges": [{"from": "A", "to": "B", "weight": 5}]}
//
// Legacy graphs address vertices by index:
//
//	{"vertices": 3, "name": "path",
//	 "edges": [{"source": 0, "destination": 1, "weight": 5}]}
//
// Usage:
//
//	graphs, err := loader.ReadFile("graphs.json", loader.WithLogger(log))
//	if err != nil { ... }
//	_ = loader.PrintSummary(os.Stdout, "graphs.json", graphs)
//
// Errors wrap ErrEmptyDocument, ErrMalformedDocument or ErrMissingField,
// or a core sentinel (core.ErrUnknownLabel, core.ErrInvalidWeight, ...)
// when the JSON is well formed but the graph it describes is not.
package loader
