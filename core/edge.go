// SPDX-License-Identifier: MIT
// Package: wgraph/core
//
// edge.go - the Edge value type.
//
// Contract:
//   - Weight is never negative (ErrInvalidWeight at construction).
//   - Equality ignores direction: Edge(a,b,w) equals Edge(b,a,w).
//   - Key/Hash are computed from the unordered pair (min, max, weight).
//   - Ordering is by weight ascending.
//   - Immutable once constructed; all fields are unexported.

package core

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// Edge is an undirected connection between two vertices of a Graph.
//
// The source/destination orientation only matters for labels and for the
// outward orientation of adjacency entries; equality ignores it.
type Edge struct {
	source      int
	destination int
	weight      int64
	from        string // label of source
	to          string // label of destination
}

// EdgeKey is the comparable, direction-free identity of an Edge.
// Lo ≤ Hi always holds.
type EdgeKey struct {
	Lo, Hi int
	Weight int64
}

// NewEdge builds an edge whose labels are the decimal forms of its endpoints.
// Returns ErrInvalidWeight if weight < 0.
func NewEdge(source, destination int, weight int64) (Edge, error) {
	return NewLabeledEdge(source, destination, weight, strconv.Itoa(source), strconv.Itoa(destination))
}

// NewLabeledEdge builds an edge with explicit endpoint labels.
// Returns ErrInvalidWeight if weight < 0.
func NewLabeledEdge(source, destination int, weight int64, from, to string) (Edge, error) {
	if weight < 0 {
		return Edge{}, fmt.Errorf("%d--%d weight %d: %w", source, destination, weight, ErrInvalidWeight)
	}

	return Edge{source: source, destination: destination, weight: weight, from: from, to: to}, nil
}

// Source returns the source vertex index.
func (e Edge) Source() int { return e.source }

// Destination returns the destination vertex index.
func (e Edge) Destination() int { return e.destination }

// Weight returns the edge weight (always ≥ 0).
func (e Edge) Weight() int64 { return e.weight }

// From returns the label of the source vertex.
func (e Edge) From() string { return e.from }

// To returns the label of the destination vertex.
func (e Edge) To() string { return e.to }

// Either returns the stored source index, for callers that do not care
// about direction.
func (e Edge) Either() int { return e.source }

// Other returns the endpoint opposite to v.
// Returns ErrInvalidEndpoint if v is neither endpoint.
func (e Edge) Other(v int) (int, error) {
	switch v {
	case e.source:
		return e.destination, nil
	case e.destination:
		return e.source, nil
	default:
		return 0, fmt.Errorf("vertex %d on edge %d--%d: %w", v, e.source, e.destination, ErrInvalidEndpoint)
	}
}

// Reversed returns the mirrored edge (destination→source, labels swapped).
func (e Edge) Reversed() Edge {
	return Edge{source: e.destination, destination: e.source, weight: e.weight, from: e.to, to: e.from}
}

// Key returns the direction-free identity of e, usable as a map key.
func (e Edge) Key() EdgeKey {
	return EdgeKey{Lo: min(e.source, e.destination), Hi: max(e.source, e.destination), Weight: e.weight}
}

// Hash folds Key() into a scalar: 31*(31*lo + hi) + weight.
func (e Edge) Hash() uint64 {
	k := e.Key()

	return 31*(31*uint64(k.Lo)+uint64(k.Hi)) + uint64(k.Weight)
}

// Equal reports whether e and o connect the same unordered pair with the
// same weight. Labels are not compared.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// Compare orders edges by weight ascending. It returns -1, 0 or +1.
func (e Edge) Compare(o Edge) int {
	return cmp.Compare(e.weight, o.weight)
}

// SortByWeight sorts edges in place by ascending weight, keeping the
// relative order of equal weights.
func SortByWeight(edges []Edge) {
	slices.SortStableFunc(edges, Edge.Compare)
}

// String renders the edge as "<from>--<to> (weight: <w>)".
func (e Edge) String() string {
	return fmt.Sprintf("%s--%s (weight: %d)", e.from, e.to, e.weight)
}

// edgeJSON is the minimal wire form of an Edge.
type edgeJSON struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// MarshalJSON encodes e as {"from": <label>, "to": <label>, "weight": <int>}.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal(edgeJSON{From: e.from, To: e.to, Weight: e.weight})
}
