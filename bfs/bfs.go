// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   deque.Deque[queueItem]
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from vertex start,
// applying any number of functional Options. Edge weights are ignored.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error (wrapped).
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartVertexNotFound, start, n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent (if any),
// calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.opts.OnEnqueue(v, d)
	w.queue.PushBack(queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.PopFront()
		w.opts.OnDequeue(item.v, item.depth)
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors walks the outward adjacency of item.v, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	edges, err := w.graph.AdjacentEdges(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	for _, e := range edges {
		nbr := e.Destination()
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.v, nbr, e.Weight()) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}

	return nil
}
