// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying topology, counts, labels and default weights.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// pairs returns the (source, destination) of every edge in insertion order.
func pairs(g *core.Graph) [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.Source(), e.Destination()})
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctor       builder.Constructor
		wantV      int
		wantE      int
		wantComps  int
		wantPairs  [][2]int // nil skips the exact edge check
		wantDegree map[int]int
	}{
		{"Empty4", builder.Empty(4), 4, 0, 4, [][2]int{}, nil},
		{"Path4", builder.Path(4), 4, 3, 1, [][2]int{{0, 1}, {1, 2}, {2, 3}}, nil},
		{"Cycle4", builder.Cycle(4), 4, 4, 1, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, map[int]int{0: 2, 3: 2}},
		{"Star5", builder.Star(5), 5, 4, 1, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, map[int]int{0: 4, 1: 1}},
		{"Complete1", builder.Complete(1), 1, 0, 1, [][2]int{}, nil},
		{"Complete5", builder.Complete(5), 5, 10, 1, nil, map[int]int{0: 4, 4: 4}},
		{"Disjoint3_1_2", builder.Disjoint(3, 1, 2), 6, 3, 3, [][2]int{{0, 1}, {1, 2}, {4, 5}}, map[int]int{3: 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.wantComps, g.CountComponents())
			assert.Equal(t, tc.wantComps == 1, g.IsConnected())
			assert.True(t, g.Validate())
			if tc.wantPairs != nil {
				assert.Equal(t, tc.wantPairs, pairs(g))
			}
			for v, want := range tc.wantDegree {
				got, err := g.Degree(v)
				require.NoError(t, err)
				assert.Equal(t, want, got, "Degree(%d)", v)
			}
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight())
			}
		})
	}
}

// TestBuilders_TooFewVertices checks every constructor's minimum.
func TestBuilders_TooFewVertices(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Empty0":      builder.Empty(0),
		"Path1":       builder.Path(1),
		"Cycle2":      builder.Cycle(2),
		"Star1":       builder.Star(1),
		"Complete0":   builder.Complete(0),
		"Disjoint":    builder.Disjoint(),
		"Disjoint2_0": builder.Disjoint(2, 0),
	} {
		_, err := builder.BuildGraph(ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

// TestBuildGraph_NilConstructor rejects a nil constructor.
func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_Options checks labels, metadata and weights are forwarded.
func TestBuildGraph_Options(t *testing.T) {
	g, err := builder.BuildGraph(builder.Path(3),
		builder.WithIDScheme(builder.SymbolIDFn),
		builder.WithConstantWeight(7),
		builder.WithGraphOptions(core.WithName("abc"), core.WithID(9)),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Labels())
	assert.Equal(t, "abc", g.Name())
	assert.Equal(t, 9, g.ID())
	assert.Equal(t, "A--B (weight: 7)", g.Edges()[0].String())
}

// TestBuildGraph_SeededWeightsDeterministic builds twice with the same seed.
func TestBuildGraph_SeededWeightsDeterministic(t *testing.T) {
	build := func() []int64 {
		g, err := builder.BuildGraph(builder.Complete(6), builder.WithSeed(42), builder.WithUniformWeight(1, 9))
		require.NoError(t, err)
		ws := make([]int64, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight(), int64(1))
			assert.LessOrEqual(t, e.Weight(), int64(9))
			ws = append(ws, e.Weight())
		}
		return ws
	}

	assert.Equal(t, build(), build())
}

// TestBuildGraph_CoreErrorsPropagate surfaces core sentinels through the builder.
func TestBuildGraph_CoreErrorsPropagate(t *testing.T) {
	negative := func(_ *rand.Rand) int64 { return -1 }
	_, err := builder.BuildGraph(builder.Path(2), builder.WithWeightFn(negative))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrInvalidWeight)

	constant := func(int) string { return "same" }
	_, err = builder.BuildGraph(builder.Empty(2),
		builder.WithIDScheme(constant),
		builder.WithGraphOptions(core.WithStrictLabels()),
	)
	require.True(t, errors.Is(err, core.ErrDuplicateLabel))
}
