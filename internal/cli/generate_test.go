package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SoerenHenning/MIM-Width-Project/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorFor_Unknown(t *testing.T) {
	_, err := constructorFor("torus", &generateOpts{})
	assert.Error(t, err)
}

func TestRunGenerate_Expression(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cycle.txt")
	require.NoError(t, runGenerate("cycle", &generateOpts{n: 4, output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "0-1, 1-2, 2-3, 3-0\n", string(data))
}

func TestRunGenerate_DOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "path.dot")
	require.NoError(t, runGenerate("path", &generateOpts{n: 3, output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph G {"))
	assert.Contains(t, string(data), `"0" -- "1";`)
}

func TestRunGenerate_SparseNeedsSeed(t *testing.T) {
	err := runGenerate("sparse", &generateOpts{n: 5, prob: 0.5})
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRunGenerate_SparseSeeded(t *testing.T) {
	out := filepath.Join(t.TempDir(), "g.txt")
	err := runGenerate("sparse", &generateOpts{n: 5, prob: 0.5, seed: 9, seeded: true, output: out})
	require.NoError(t, err)

	first, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, runGenerate("sparse", &generateOpts{n: 5, prob: 0.5, seed: 9, seeded: true, output: out}))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must regenerate the same graph")
}
