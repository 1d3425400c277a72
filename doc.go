// Package wgraph is a small toolkit for weighted undirected graphs that
// live in JSON files: load them, check them, inspect their connectivity
// and write them back.
//
// 🚀 What is wgraph?
//
//	A fixed-size, label-addressed graph model plus the tooling around it:
//		• Core model: vertices by index or label, weighted edges, connectivity
//		• Loader: named, multi-graph and legacy JSON documents, structure checks
//		• Traversal: BFS with hooks, depth limits and neighbor filters
//		• Builders: paths, cycles, stars, cliques and disjoint unions for fixtures
//
// ✨ Why choose wgraph?
//
//   - Two addressing modes – every vertex has an index and a label
//   - Invariants enforced at insertion – no negative weights, no self-loops
//   - Self-checking – Validate() re-verifies every stored edge
//   - Structured diagnostics – inject a *zap.Logger anywhere
//
// Packages:
//
//	core/      - Graph and Edge, connectivity, validation, rendering
//	loader/    - JSON → core.Graph, structure validation, summaries, encoding
//	bfs/       - breadth-first traversal over core.Graph
//	builder/   - deterministic topology constructors
//	cmd/wgraph - command-line front end (summary, show, validate, encode, path, demo)
//
// Quick ASCII example:
//
//	    A──5──B
//	     \    │
//	      0   3
//	       \  │
//	         C
//
// is {"nodes": ["A","B","C"], "edges": [{"from":"A","to":"B","weight":5},
// {"from":"B","to":"C","weight":3}, {"from":"C","to":"A","weight":0}]}.
//
//	go get github.com/katalvlaran/wgraph
package wgraph
