// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures for wgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep magic numbers and labels out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common vertex labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"

	LabelMissing = "Z"
)

// Common weights used across core tests.
const (
	WeightNeg = -1
	Weight0   = 0
	Weight3   = 3
	Weight5   = 5
	Weight7   = 7
)

// NewPathIndices returns the 3-vertex path 0-1-2 with edges (0,1,5),(1,2,3).
func NewPathIndices(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(3)
	require.NoError(t, err, "NewGraph(3)")
	require.NoError(t, g.AddEdge(0, 1, Weight5), "AddEdge(0,1,5)")
	require.NoError(t, g.AddEdge(1, 2, Weight3), "AddEdge(1,2,3)")

	return g
}

// NewABC returns an edgeless graph labeled A, B, C with full metadata.
func NewABC(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewLabeledGraph(
		[]string{LabelA, LabelB, LabelC},
		core.WithName("Graph 1"),
		core.WithDescription("three letters"),
		core.WithID(1),
	)
	require.NoError(t, err, "NewLabeledGraph(A,B,C)")

	return g
}
