// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle, cost access & enumeration.
//
// Every method canonicalizes (a, b) to (min, max) before touching the cost
// mapping, so an undirected edge has one key regardless of argument order.

package core

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

const (
	methodAddEdge     = "AddEdge"
	methodRemoveEdge  = "RemoveEdge"
	methodEdgeCost    = "EdgeCost"
	methodSetEdgeCost = "SetEdgeCost"
)

// AddEdge connects a and b with the given cost.
//
// Implementation:
//   - Stage 1: Reject a == b (ErrLoopNotAllowed).
//   - Stage 2: Canonicalize and reject an existing pair (ErrEdgeExists).
//   - Stage 3: Reject a missing endpoint (ErrEdgeEndpointMissing).
//   - Stage 4: Link both neighbour sets and record the cost.
//
// All checks run before any mutation.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph[V]) AddEdge(a, b V, cost int64) error {
	// 1) loops are never stored
	if a == b {
		return fmt.Errorf("%s(%v,%v): %w", methodAddEdge, a, b, ErrLoopNotAllowed)
	}
	// 2) one key per undirected pair, so {a,b} and {b,a} collide here
	key := canonical(a, b)
	if _, ok := g.costs[key]; ok {
		return fmt.Errorf("%s(%v,%v): %w", methodAddEdge, key.lo, key.hi, ErrEdgeExists)
	}
	// 3) both endpoints must already be vertices
	if !g.HasVertex(key.lo) || !g.HasVertex(key.hi) {
		return fmt.Errorf("%s(%v,%v): %w", methodAddEdge, key.lo, key.hi, ErrEdgeEndpointMissing)
	}

	// 4) link both sides and record the cost
	g.neighbours[key.lo][key.hi] = struct{}{}
	g.neighbours[key.hi][key.lo] = struct{}{}
	g.costs[key] = cost

	return nil
}

// HasEdge reports whether a and b are connected, in either argument order.
// It is a total predicate: unknown vertices simply yield false.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(a, b V) bool {
	_, ok := g.costs[canonical(a, b)]
	return ok
}

// EdgeCost returns the cost of edge {a, b}.
//
// Errors:
//   - ErrEdgeNotFound: if the canonical pair has no entry.
func (g *Graph[V]) EdgeCost(a, b V) (int64, error) {
	key := canonical(a, b)
	cost, ok := g.costs[key]
	if !ok {
		return 0, fmt.Errorf("%s(%v,%v): %w", methodEdgeCost, key.lo, key.hi, ErrEdgeNotFound)
	}

	return cost, nil
}

// SetEdgeCost overwrites the cost of an existing edge {a, b}.
// Edge existence implies both endpoints exist; they are not checked separately.
//
// Errors:
//   - ErrEdgeNotFound: if the canonical pair has no entry.
func (g *Graph[V]) SetEdgeCost(a, b V, cost int64) error {
	key := canonical(a, b)
	if _, ok := g.costs[key]; !ok {
		return fmt.Errorf("%s(%v,%v): %w", methodSetEdgeCost, key.lo, key.hi, ErrEdgeNotFound)
	}
	g.costs[key] = cost

	return nil
}

// RemoveEdge deletes edge {a, b}. Its endpoints stay in the graph.
//
// Errors:
//   - ErrEdgeNotFound: if the canonical pair has no entry.
//
// Complexity:
//   - Time O(1).
func (g *Graph[V]) RemoveEdge(a, b V) error {
	if !g.HasEdge(a, b) {
		key := canonical(a, b)
		return fmt.Errorf("%s(%v,%v): %w", methodRemoveEdge, key.lo, key.hi, ErrEdgeNotFound)
	}
	g.unlink(a, b)

	return nil
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph[V]) EdgeCount() int {
	return len(g.costs)
}

// Edges returns a lazy sequence over all edges as canonical (From < To) triples.
//
// The sequence is restartable. Order is unspecified. Do not mutate the
// graph while ranging over it.
func (g *Graph[V]) Edges() iter.Seq[Edge[V]] {
	return func(yield func(Edge[V]) bool) {
		for key, cost := range g.costs {
			if !yield(Edge[V]{From: key.lo, To: key.hi, Cost: cost}) {
				return
			}
		}
	}
}

// SortedEdges returns a snapshot of all edges ordered by (From, To).
// Complexity: O(E log E).
func (g *Graph[V]) SortedEdges() []Edge[V] {
	return slices.SortedFunc(g.Edges(), compareEdges[V])
}

// compareEdges orders edges by From, then To.
func compareEdges[V Vertex](x, y Edge[V]) int {
	if c := cmp.Compare(x.From, y.From); c != 0 {
		return c
	}
	return cmp.Compare(x.To, y.To)
}

// unlink drops the cost entry of {a, b} and both neighbour-set links.
// The caller guarantees the edge exists.
func (g *Graph[V]) unlink(a, b V) {
	delete(g.costs, canonical(a, b))
	delete(g.neighbours[a], b)
	delete(g.neighbours[b], a)
}
