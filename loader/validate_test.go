package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wgraph/loader"
)

func TestValidateFile(t *testing.T) {
	require.NoError(t, loader.ValidateFile(multiPath))
	require.NoError(t, loader.ValidateFile(singlePath))

	err := loader.ValidateFile(missingWeightPath)
	require.ErrorIs(t, err, loader.ErrMissingField)
	assert.Contains(t, err.Error(), "graphs[1]: edges[0].weight")

	// Legacy wrappers have no "nodes" at the root.
	err = loader.ValidateFile(legacyPath)
	require.ErrorIs(t, err, loader.ErrMissingField)
	assert.Contains(t, err.Error(), "nodes")
}

func TestValidate_StructureOnly(t *testing.T) {
	// Unknown labels and negative weights are Read's business.
	doc := `{"nodes":["A"],"edges":[{"from":"A","to":"Q","weight":-3}]}`
	require.NoError(t, loader.Validate(strings.NewReader(doc)))

	_, err := loader.Read(strings.NewReader(doc))
	require.Error(t, err)

	require.ErrorIs(t, loader.Validate(strings.NewReader("")), loader.ErrEmptyDocument)
	require.ErrorIs(t, loader.Validate(strings.NewReader("{")), loader.ErrMalformedDocument)
	require.ErrorIs(t, loader.Validate(strings.NewReader(`{"graphs":[{"nodes":["A"]}]}`)), loader.ErrMissingField)
}

func TestIsValid(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(obsCore)

	assert.True(t, loader.IsValid(multiPath, loader.WithLogger(log)))
	assert.Equal(t, 0, logs.Len())

	assert.False(t, loader.IsValid(missingWeightPath, loader.WithLogger(log)))
	assert.False(t, loader.IsValid(nonexistentPath, loader.WithLogger(log)))

	entries := logs.FilterMessage("invalid graph document").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, missingWeightPath, entries[0].ContextMap()["path"])
	assert.Contains(t, entries[0].ContextMap()["error"], "weight")

	// Without a logger the result is the same and nothing panics.
	assert.False(t, loader.IsValid(nonexistentPath))
}
