// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// types.go - Graph, GraphOption and the constructors.
//
// Invariants (hold after every successful call):
//   - VertexCount() == len(labels) > 0, fixed at construction.
//   - Every stored edge has both indices in [0, n), weight ≥ 0 and no self-loop.
//   - adjacency[i] holds exactly the edges incident to i, oriented outward from i.
//   - index is the inverse of labels (the last index wins for a repeated label
//     unless WithStrictLabels is set).

package core

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
)

// NoID marks a graph without an identifier.
const NoID = -1

// MaxVertexCount is the largest vertex count a Graph accepts. Component
// sweeps keep vertex indices in a 32-bit bitmap.
const MaxVertexCount = math.MaxUint32

// checkVertexCount rejects counts outside [1, MaxVertexCount].
func checkVertexCount(op string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s(%d): %w", op, n, ErrInvalidVertexCount)
	}
	if int64(n) > MaxVertexCount {
		return fmt.Errorf("%s(%d): exceeds %d: %w", op, n, int64(MaxVertexCount), ErrInvalidVertexCount)
	}

	return nil
}

// Graph is a fixed-size undirected weighted graph with dual vertex addressing.
//
// Vertex count and labels are fixed at construction; edges are append-only.
// Name, description and ID remain mutable.
//
// A Graph has no internal locking. It is safe for concurrent readers once
// construction is finished; any call sequence that includes AddEdge or a
// metadata setter must be synchronized by the caller.
type Graph struct {
	n int // vertex count

	edges     []Edge   // insertion order, one entry per AddEdge
	adjacency [][]Edge // adjacency[v]: outward-oriented incident edges

	labels []string       // index → label
	index  map[string]int // label → index

	// Metadata
	name           string
	hasName        bool
	description    string
	hasDescription bool
	id             int

	strictLabels bool
	log          *zap.Logger
}

// GraphOption configures a Graph before its vertex tables are built.
type GraphOption func(g *Graph)

// WithName sets the graph name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name, g.hasName = name, true }
}

// WithDescription sets the graph description.
func WithDescription(description string) GraphOption {
	return func(g *Graph) { g.description, g.hasDescription = description, true }
}

// WithID sets the graph identifier. Negative values mean "no ID".
func WithID(id int) GraphOption {
	return func(g *Graph) { g.id = id }
}

// WithStrictLabels makes NewLabeledGraph reject repeated labels with
// ErrDuplicateLabel instead of letting the later index shadow the earlier one.
func WithStrictLabels() GraphOption {
	return func(g *Graph) { g.strictLabels = true }
}

// WithLogger routes Validate diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGraph creates a graph with n vertices labeled "0".."n-1".
// Returns ErrInvalidVertexCount if n ≤ 0 or n > MaxVertexCount.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if err := checkVertexCount("NewGraph", n); err != nil {
		return nil, err
	}
	g := newGraph(n, opts)

	for i := 0; i < n; i++ {
		label := strconv.Itoa(i)
		g.labels[i] = label
		g.index[label] = i
	}

	return g, nil
}

// NewLabeledGraph creates a graph whose vertices are named by labels, in order.
// Returns ErrInvalidVertexCount if labels is empty or longer than
// MaxVertexCount, and ErrDuplicateLabel for
// a repeated label when WithStrictLabels is given.
// Complexity: O(n).
func NewLabeledGraph(labels []string, opts ...GraphOption) (*Graph, error) {
	n := len(labels)
	if err := checkVertexCount("NewLabeledGraph", n); err != nil {
		return nil, err
	}
	g := newGraph(n, opts)

	for i, label := range labels {
		if prev, dup := g.index[label]; dup && g.strictLabels {
			return nil, fmt.Errorf("label %q at %d and %d: %w", label, prev, i, ErrDuplicateLabel)
		}
		g.labels[i] = label
		g.index[label] = i
	}

	return g, nil
}

// newGraph allocates storage and applies options; labels are filled by the caller.
func newGraph(n int, opts []GraphOption) *Graph {
	g := &Graph{
		n:         n,
		edges:     make([]Edge, 0),
		adjacency: make([][]Edge, n),
		labels:    make([]string, n),
		index:     make(map[string]int, n),
		id:        NoID,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of a graph's structure.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	Components  int
	Connected   bool
	TotalWeight int64
	MinWeight   int64 // 0 when there are no edges
	MaxWeight   int64 // 0 when there are no edges
}
