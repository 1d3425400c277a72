// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// methods_vertices.go - vertex addressing and metadata accessors.

package core

import "fmt"

// VertexCount returns the fixed number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// Label returns the label of vertex i.
// Returns ErrInvalidVertexIndex if i is outside [0, n).
func (g *Graph) Label(i int) (string, error) {
	if !g.inRange(i) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrInvalidVertexIndex)
	}

	return g.labels[i], nil
}

// Index returns the index registered for label. The boolean is false when
// the label is unknown.
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.index[label]

	return i, ok
}

// Labels returns a copy of all labels in index order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Name returns the graph name, or "" if none was set.
func (g *Graph) Name() string { return g.name }

// HasName reports whether a name was set.
func (g *Graph) HasName() bool { return g.hasName }

// SetName sets the graph name.
func (g *Graph) SetName(name string) { g.name, g.hasName = name, true }

// Description returns the graph description, or "" if none was set.
func (g *Graph) Description() string { return g.description }

// HasDescription reports whether a description was set.
func (g *Graph) HasDescription() bool { return g.hasDescription }

// SetDescription sets the graph description.
func (g *Graph) SetDescription(description string) {
	g.description, g.hasDescription = description, true
}

// ID returns the graph identifier, or NoID.
func (g *Graph) ID() int { return g.id }

// SetID sets the graph identifier. Negative values mean "no ID".
func (g *Graph) SetID(id int) { g.id = id }

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}
