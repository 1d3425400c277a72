// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// TestInducedSubgraph_Component extracts one component and checks renumbering.
func TestInducedSubgraph_Component(t *testing.T) {
	g, err := core.NewLabeledGraph([]string{LabelA, LabelB, LabelC, LabelD}, core.WithName("letters"))
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeByLabel(LabelA, LabelB, Weight5))
	require.NoError(t, g.AddEdgeByLabel(LabelC, LabelD, Weight3))
	require.NoError(t, g.AddEdgeByLabel(LabelD, LabelB, Weight7))

	sub, err := g.InducedSubgraph([]int{3, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{LabelD, LabelC}, sub.Labels())
	assert.Equal(t, "letters", sub.Name())
	require.Equal(t, 1, sub.EdgeCount())
	e := sub.Edges()[0]
	assert.Equal(t, "C--D (weight: 3)", e.String())
	assert.Equal(t, 1, e.Source())
	assert.Equal(t, 0, e.Destination())
	assert.True(t, sub.IsConnected())
	assert.Equal(t, 3, g.EdgeCount(), "source graph untouched")
}

// TestInducedSubgraph_Errors covers empty, out-of-range and repeated indices.
func TestInducedSubgraph_Errors(t *testing.T) {
	g := NewPathIndices(t)

	_, err := g.InducedSubgraph(nil)
	require.ErrorIs(t, err, core.ErrInvalidVertexCount)
	_, err = g.InducedSubgraph([]int{0, 3})
	require.ErrorIs(t, err, core.ErrInvalidVertexIndex)
	_, err = g.InducedSubgraph([]int{1, 1})
	require.ErrorIs(t, err, core.ErrInvalidVertexIndex)
}
