// File: builder_impl_test.go
// Package builder_test contains functional tests for the deterministic
// constructors, verifying topology, counts and cost policy.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

// degrees returns the sorted-by-vertex degree list of g.
func degrees(t *testing.T, g *core.Graph[int]) []int {
	t.Helper()
	out := make([]int, 0, g.VertexCount())
	for _, v := range g.SortedVertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out = append(out, d)
	}
	return out
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		degrees []int
		edges   [][2]int // spot-checked edges
	}{
		{"Path(1)", builder.Path(1), 1, 0, []int{0}, nil},
		{"Path(4)", builder.Path(4), 4, 3, []int{1, 2, 2, 1}, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, []int{2, 2, 2, 2, 2}, [][2]int{{0, 1}, {4, 0}}},
		{"Star(4)", builder.Star(4), 4, 3, []int{3, 1, 1, 1}, [][2]int{{0, 1}, {0, 3}}},
		{"Complete(4)", builder.Complete(4), 4, 6, []int{3, 3, 3, 3}, [][2]int{{0, 3}, {1, 2}}},
		{"Random(6,0)", builder.Random(6, 0), 6, 0, []int{0, 0, 0, 0, 0, 0}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.degrees, degrees(t, g))
			for _, e := range tc.edges {
				assert.True(t, g.HasEdge(e[0], e[1]), "missing edge %v", e)
			}
			// No source configured: DefaultCostFn yields 0 for every edge.
			for e := range g.Edges() {
				assert.Zero(t, e.Cost)
			}
		})
	}
}

// TestBuilders_InvalidSizes maps undersized parameters to ErrInvalidConstructionParameters.
func TestBuilders_InvalidSizes(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Path(0)":      builder.Path(0),
		"Cycle(2)":     builder.Cycle(2),
		"Star(1)":      builder.Star(1),
		"Complete(0)":  builder.Complete(0),
		"Random(-1,0)": builder.Random(-1, 0),
	} {
		g, err := builder.BuildGraph(nil, ctor)
		assert.ErrorIs(t, err, builder.ErrInvalidConstructionParameters, name)
		assert.Nil(t, g, name)
	}
}

// TestBuildGraph_NilConstructor verifies the nil-constructor guard.
func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_LayeredConstructors verifies constructors sharing vertex IDs
// compose: existing vertices and edges are kept, only new ones are added.
func TestBuildGraph_LayeredConstructors(t *testing.T) {
	t.Parallel()

	// Cycle(4) then Complete(4): the two chords 0-2 and 1-3 complete K4.
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithCostFn(builder.ConstantCostFn(1))},
		builder.Cycle(4), builder.Complete(4),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []int{3, 3, 3, 3}, degrees(t, g))

	// Path(3) then Star(5): 0-1 exists, hub edges 0-2, 0-3, 0-4 are new.
	g, err = builder.BuildGraph(nil, builder.Path(3), builder.Star(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []int{4, 2, 2, 1, 1}, degrees(t, g))
}

// TestBuildGraph_LayeredKeepsCosts verifies an edge placed earlier keeps its
// cost and skipped edges consume no cost draw.
func TestBuildGraph_LayeredKeepsCosts(t *testing.T) {
	t.Parallel()

	var next int64
	counting := func(builder.IntSource) int64 {
		next++
		return next
	}

	// Path(3) draws 1, 2; Complete(3) only adds 0-2 and draws 3.
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithCostFn(counting)},
		builder.Path(3), builder.Complete(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[int]{
		{From: 0, To: 1, Cost: 1},
		{From: 0, To: 2, Cost: 3},
		{From: 1, To: 2, Cost: 2},
	}, g.SortedEdges())
}

// TestBuildGraph_RandomThenPath verifies a stochastic constructor composes
// with a deterministic one.
func TestBuildGraph_RandomThenPath(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.Random(5, 2), builder.Path(2),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasEdge(0, 1))
	// Path(2) adds 0-1 unless Random already drew it.
	assert.GreaterOrEqual(t, g.EdgeCount(), 2)
	assert.LessOrEqual(t, g.EdgeCount(), 3)
}

// TestBuildGraph_RandomRespectsTakenPairs verifies Random counts pairs joined
// by earlier constructors against its budget.
func TestBuildGraph_RandomRespectsTakenPairs(t *testing.T) {
	t.Parallel()

	// K4 leaves no free pair among 0..3.
	_, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Complete(4), builder.Random(4, 1),
	)
	require.ErrorIs(t, err, builder.ErrInvalidConstructionParameters)

	// Path(4) takes 3 of 6 pairs; the other 3 can be drawn.
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Path(4), builder.Random(4, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	// Random(5, m) after Complete(4) may still use pairs touching vertex 4.
	g, err = builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Complete(4), builder.Random(5, 4),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

// TestBuilders_CostFn verifies that the configured CostFn reaches every edge.
func TestBuilders_CostFn(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithCostFn(builder.ConstantCostFn(7))},
		builder.Cycle(6),
	)
	require.NoError(t, err)
	for e := range g.Edges() {
		assert.EqualValues(t, 7, e.Cost)
	}
	assert.EqualValues(t, 42, g.Stats().TotalCost)
}
