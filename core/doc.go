// Package core provides a fixed-size, undirected, non-negatively weighted
// Graph with dual vertex addressing: every vertex has a zero-based index and
// a string label.
//
// The Graph G = (V,E) is built once and then queried:
//
//   - Vertex count and labels are fixed at construction (NewGraph, NewLabeledGraph).
//   - Edges are append-only (AddEdge, AddEdgeByLabel); no removal.
//   - Name, description and ID stay mutable (SetName, SetDescription, SetID).
//
// Storage:
//
//	edges        []Edge    one entry per insertion, in order
//	adjacency[v] []Edge    both directions: AddEdge(a,b,w) appends a→b under a
//	                       and the mirrored b→a under b, so adjacency[v]
//	                       always yields edges oriented outward from v
//	labels / index         index→label and label→index tables
//
// Queries:
//
//	Edges(), AdjacentEdges(v)   copies, never live slices
//	IsConnected()               BFS from vertex 0, O(V+E)
//	CountComponents()           repeated BFS from the lowest unvisited vertex
//	Components()                vertex sets per component
//	Validate()                  self-check; logs and returns false, never panics
//	String()                    multi-line report with the edge list
//	Clone(), InducedSubgraph()  independent copies, whole or restricted
//	Stats()                     counts, connectivity and weight range
//
// Errors:
//
//	ErrInvalidVertexCount  – n ≤ 0 at construction
//	ErrInvalidWeight       – negative weight
//	ErrInvalidVertexIndex  – index outside [0, n)
//	ErrUnknownLabel        – label not registered
//	ErrSelfLoopNotAllowed  – src == dst
//	ErrInvalidEndpoint     – Edge.Other with a foreign vertex
//	ErrDuplicateLabel      – repeated label under WithStrictLabels
//
// Repeated labels are accepted by default: the label map keeps the last
// index, so the earlier vertex is reachable by index only.
//
// Concurrency: a Graph carries no locks. Share it read-only across
// goroutines, or synchronize externally around AddEdge and the setters.
package core
