// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent: vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual adjacency entries via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute fewest-hop paths in O(V + E) time.
//   - Discover the component of a vertex and its level layering.
//
// Weights are carried through to FilterNeighbor but never affect order.
//
// Determinism
//
//	core.Graph.AdjacentEdges returns edges in insertion order, and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited flags)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int, w int64) bool { return w < 10 }),
//	)
//	path, err := res.PathTo(5)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
