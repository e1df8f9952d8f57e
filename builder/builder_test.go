package builder_test

import (
	"testing"

	"github.com/SoerenHenning/MIM-Width-Project/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestTopologies_Counts(t *testing.T) {
	tests := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"Cycle6", builder.Cycle(6), 6, 6},
		{"Path4", builder.Path(4), 4, 3},
		{"Star5", builder.Star(5), 5, 4},
		{"Complete1", builder.Complete(1), 1, 0},
		{"Complete5", builder.Complete(5), 5, 10},
		{"K23", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid3x3", builder.Grid(3, 3), 9, 12},
		{"Grid1x4", builder.Grid(1, 4), 4, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestTopologies_Validation(t *testing.T) {
	tests := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path1", builder.Path(1), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete0", builder.Complete(0), builder.ErrTooFewVertices},
		{"K03", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Grid0x2", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"SparseNeg", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"SparseBadP", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"SparseNoRNG", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCycle_EdgeOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, g.Vertices())
	for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "0"}} {
		assert.True(t, g.HasEdge(pair[0], pair[1]))
	}
}

func TestStar_CenterDegree(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)
	deg, err := g.Degree("Center")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

func TestCompleteBipartite_Prefixes(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithPartitionPrefix("u", "w")},
		builder.CompleteBipartite(1, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"u0", "w0", "w1"}, g.Vertices())
	assert.True(t, g.HasEdge("u0", "w1"))
	assert.False(t, g.HasEdge("w0", "w1"), "no edges inside a partition")
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []string {
		g, err := builder.BuildGraph([]builder.Option{builder.WithSeed(7)}, builder.RandomSparse(10, 0.3))
		require.NoError(t, err)
		var out []string
		for _, e := range g.Edges() {
			out = append(out, e.U+"-"+e.V)
		}
		return out
	}
	assert.Equal(t, build(), build(), "same seed must sample the same edge set")
}

func TestRandomSparse_ExtremeProbabilities(t *testing.T) {
	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, 5, empty.VertexCount())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount(), "p=1 yields K_5 without an rng")
}

func TestWithIDScheme(t *testing.T) {
	letters := func(i int) string { return string(rune('a' + i)) }
	g, err := builder.BuildGraph([]builder.Option{builder.WithIDScheme(letters)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
