package loader_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/loader"
)

func TestPrintSummary(t *testing.T) {
	graphs, err := loader.ReadFile(multiPath)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.PrintSummary(&buf, multiPath, graphs))

	banner := strings.Repeat("=", 60)
	want := "\n" + banner + "\n" +
		"JSON FILE SUMMARY: testdata/multi.json\n" +
		banner + "\n" +
		"Total graphs: 2\n" +
		"\n" +
		"[ID: 1] Graph 1\n" +
		"    Nodes: [A, B, C]\n" +
		"    Vertices: 3, Edges: 3, Connected: Yes\n" +
		"[ID: 2] Graph 2\n" +
		"    Nodes: [X, Y, Z, W]\n" +
		"    Vertices: 4, Edges: 1, Connected: No\n" +
		banner + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loader.PrintSummary(&buf, "none", nil))
	assert.Contains(t, buf.String(), "Total graphs: 0\n")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrintSummary_WriteError(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	require.ErrorIs(t, loader.PrintSummary(failingWriter{}, "x", []*core.Graph{g}), errWrite)
}

func TestSummarizeFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loader.SummarizeFile(&buf, legacyPath))
	assert.Contains(t, buf.String(), "[ID: -1] Legacy path\n")
	assert.Contains(t, buf.String(), "    Nodes: [0, 1, 2]\n")

	buf.Reset()
	require.ErrorIs(t, loader.SummarizeFile(&buf, missingWeightPath), loader.ErrMissingField)
	assert.Empty(t, buf.String())
}
