// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ugraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Check the graph's structural invariants through the public API only.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/core"
)

// Common vertex IDs used across core tests.
const (
	V1  = 1
	V2  = 2
	V3  = 3
	V4  = 4
	V5  = 5
	V98 = 98
	V99 = 99
)

// Common costs used across core tests.
const (
	Cost0 = 0
	Cost5 = 5
	Cost7 = 7
	Cost9 = 9
)

// newPair returns a graph with vertices 1, 2 joined by an edge of cost 5.
func newPair(t *testing.T) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	require.NoError(t, g.AddVertex(V1))
	require.NoError(t, g.AddVertex(V2))
	require.NoError(t, g.AddEdge(V1, V2, Cost5))

	return g
}

// newDiamond returns the graph
//
//	1───2
//	│ ╲ │
//	4───3
//
// with costs 12, 23, 34, 14 and 13 (the decimal concatenation of endpoints).
func newDiamond(t *testing.T) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for _, v := range []int{V1, V2, V3, V4} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 4}, {1, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], int64(e[0]*10+e[1])))
	}

	return g
}

// requireInvariants FAILS the test if the graph's collections disagree.
//
// Checked:
//   - every neighbour is itself a vertex;
//   - adjacency is symmetric and backed by an edge;
//   - edges are canonical (From < To) and their endpoints are linked;
//   - EdgeCount equals half the degree sum and the number of enumerated edges;
//   - VertexCount equals the number of enumerated vertices.
func requireInvariants[V core.Vertex](t *testing.T, g *core.Graph[V]) {
	t.Helper()

	vertices := slices.Collect(g.Vertices())
	require.Len(t, vertices, g.VertexCount(), "VertexCount vs Vertices()")

	degreeSum := 0
	for _, v := range vertices {
		nbrs, err := g.Neighbours(v)
		require.NoError(t, err)
		d, err := g.Degree(v)
		require.NoError(t, err)
		got := 0
		for u := range nbrs {
			got++
			require.True(t, g.HasVertex(u), "neighbour %v of %v is not a vertex", u, v)
			require.NotEqual(t, v, u, "self-loop on %v", v)
			require.True(t, g.HasEdge(v, u), "adjacency %v-%v has no edge", v, u)
			back, err := g.SortedNeighbours(u)
			require.NoError(t, err)
			require.Contains(t, back, v, "adjacency %v-%v is not symmetric", v, u)
		}
		require.Equal(t, d, got, "Degree(%v) vs Neighbours(%v)", v, v)
		degreeSum += d
	}

	edges := slices.Collect(g.Edges())
	require.Len(t, edges, g.EdgeCount(), "EdgeCount vs Edges()")
	require.Equal(t, degreeSum, 2*g.EdgeCount(), "degree sum vs 2*EdgeCount")

	seen := make(map[[2]V]struct{}, len(edges))
	for _, e := range edges {
		require.Less(t, e.From, e.To, "edge %v is not canonical", e)
		_, dup := seen[[2]V{e.From, e.To}]
		require.False(t, dup, "edge %v enumerated twice", e)
		seen[[2]V{e.From, e.To}] = struct{}{}

		nbrs, err := g.SortedNeighbours(e.From)
		require.NoError(t, err)
		require.Contains(t, nbrs, e.To)
		cost, err := g.EdgeCost(e.To, e.From)
		require.NoError(t, err)
		require.Equal(t, e.Cost, cost)
	}
}

// edgeSet renders the graph's edges as an order-free set for comparisons.
func edgeSet[V interface{ ~int | ~string }](g *core.Graph[V]) map[core.Edge[V]]struct{} {
	out := make(map[core.Edge[V]]struct{}, g.EdgeCount())
	for e := range g.Edges() {
		out[e] = struct{}{}
	}

	return out
}
