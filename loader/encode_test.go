package loader_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/loader"
)

func TestEncode_Format(t *testing.T) {
	g, err := core.NewLabeledGraph([]string{"A", "B"}, core.WithID(1), core.WithDescription("pair"))
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeByLabel("A", "B", 1))
	lone, err := core.NewGraph(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, []*core.Graph{g, lone}))

	assert.JSONEq(t, `{"graphs":[
		{"id":1,"description":"pair","nodes":["A","B"],"edges":[{"from":"A","to":"B","weight":1}]},
		{"nodes":["0"],"edges":[]}
	]}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"graphs\": [")
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, path := range []string{multiPath, legacyPath, singlePath} {
		t.Run(path, func(t *testing.T) {
			orig, err := loader.ReadFile(path)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, loader.Encode(&buf, orig))
			require.NoError(t, loader.Validate(bytes.NewReader(buf.Bytes())))

			back, err := loader.Read(&buf)
			require.NoError(t, err)
			require.Len(t, back, len(orig))
			for i := range orig {
				assert.Equal(t, orig[i].ID(), back[i].ID())
				assert.Equal(t, orig[i].Description(), back[i].Description())
				assert.Equal(t, orig[i].Labels(), back[i].Labels())
				assert.Equal(t, edgeStrings(orig[i]), edgeStrings(back[i]))
				assert.Equal(t, orig[i].Stats(), back[i].Stats())
			}
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, nil))
	assert.JSONEq(t, `{"graphs":[]}`, buf.String())
}

func TestEncode_RepeatedLabel(t *testing.T) {
	ok, err := core.NewLabeledGraph([]string{"P", "Q"})
	require.NoError(t, err)
	dup, err := core.NewLabeledGraph([]string{"A", "A", "B"}, core.WithID(7))
	require.NoError(t, err)
	require.NoError(t, dup.AddEdge(0, 2, 1))

	var buf bytes.Buffer
	err = loader.Encode(&buf, []*core.Graph{ok, dup})
	require.ErrorIs(t, err, core.ErrDuplicateLabel)
	assert.Contains(t, err.Error(), `graphs[1]: label "A" repeated`)
	assert.Zero(t, buf.Len(), "nothing is written when any graph is rejected")
}
