package render_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/SoerenHenning/MIM-Width-Project/core"
	"github.com/SoerenHenning/MIM-Width-Project/mimwidth"
	"github.com/SoerenHenning/MIM-Width-Project/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decompose(t *testing.T) *mimwidth.Decomposition[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b"))
	dec, err := mimwidth.Decompose(g, &mimwidth.Options[string]{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return dec
}

func TestToDOT_Structure(t *testing.T) {
	dot := render.ToDOT(decompose(t), render.Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph decomposition {"))
	assert.Contains(t, dot, `n0 [label="{a b}"];`)
	assert.Contains(t, dot, "width: 1")
	assert.Contains(t, dot, "fillcolor=lightgrey", "singleton bags are shaded")
	assert.Contains(t, dot, "n0 -> n1;")
	assert.Contains(t, dot, "n0 -> n2;")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOT_HideWidths(t *testing.T) {
	dot := render.ToDOT(decompose(t), render.Options{HideWidths: true})
	assert.NotContains(t, dot, "width:")
}

func TestToDOT_Empty(t *testing.T) {
	dec, err := mimwidth.Decompose(core.NewGraph[string](), nil)
	require.NoError(t, err)
	dot := render.ToDOT(dec, render.Options{})
	assert.NotContains(t, dot, "n0")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOT_Deterministic(t *testing.T) {
	dec := decompose(t)
	assert.Equal(t, render.ToDOT(dec, render.Options{}), render.ToDOT(dec, render.Options{}))
}

func TestGraphToDOT(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2))
	g.AddVertex(3)

	dot := render.GraphToDOT(g)
	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, `"1" -- "2";`)
	assert.Contains(t, dot, `"3";`, "isolated vertices are emitted")
}
