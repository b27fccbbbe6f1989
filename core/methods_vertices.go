// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Neighbours() follow map order (unspecified).
//   - SortedVertices() and SortedNeighbours() return ascending snapshots.

package core

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

const (
	methodAddVertex    = "AddVertex"
	methodRemoveVertex = "RemoveVertex"
	methodDegree       = "Degree"
	methodNeighbours   = "Neighbours"
)

// AddVertex inserts v with an empty neighbour set.
//
// Errors:
//   - ErrVertexExists: if v is already a member.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph[V]) AddVertex(v V) error {
	// duplicate vertices are rejected, the graph is left unchanged
	if _, ok := g.vertices[v]; ok {
		return fmt.Errorf("%s(%v): %w", methodAddVertex, v, ErrVertexExists)
	}
	// register the vertex with an empty neighbour set
	g.vertices[v] = struct{}{}
	g.neighbours[v] = make(map[V]struct{})

	return nil
}

// HasVertex reports whether v belongs to the graph. Never fails.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.vertices[v]
	return ok
}

// RemoveVertex deletes v together with every edge incident to it.
//
// Implementation:
//   - Stage 1: Verify membership (ErrVertexNotFound); nothing is touched on failure.
//   - Stage 2: Snapshot the neighbour set of v into a slice.
//   - Stage 3: Drop each incident edge from the snapshot (cost entry + both
//     neighbour-set links). Incidence guarantees each edge exists, so this
//     stage cannot fail.
//   - Stage 4: Delete v from the neighbour mapping and the vertex set.
//
// Errors:
//   - ErrVertexNotFound: if v is not a member.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)) for the snapshot.
func (g *Graph[V]) RemoveVertex(v V) error {
	// 1) the vertex must exist; nothing is touched otherwise
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("%s(%v): %w", methodRemoveVertex, v, ErrVertexNotFound)
	}

	// 2) snapshot the incident vertices: unlink mutates neighbours[v]
	incident := slices.Collect(maps.Keys(g.neighbours[v]))

	// 3) cascade: drop every incident edge from both sides and the cost mapping
	for _, u := range incident {
		g.unlink(v, u)
	}

	// 4) finally forget the vertex itself
	delete(g.neighbours, v)
	delete(g.vertices, v)

	return nil
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V]) VertexCount() int {
	return len(g.vertices)
}

// Degree returns the number of edges incident to v.
// Self-loops cannot exist, so this is exactly the size of v's neighbour set.
//
// Errors:
//   - ErrVertexNotFound: if v is not a member.
func (g *Graph[V]) Degree(v V) (int, error) {
	nbrs, ok := g.neighbours[v]
	if !ok {
		return 0, fmt.Errorf("%s(%v): %w", methodDegree, v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// Vertices returns a lazy sequence over all vertices.
//
// The sequence is restartable: each range re-reads the current vertex set.
// Order is unspecified. Do not mutate the graph while ranging over it.
func (g *Graph[V]) Vertices() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range g.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// SortedVertices returns an ascending snapshot of the vertex set.
// Complexity: O(V log V).
func (g *Graph[V]) SortedVertices() []V {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Neighbours returns a lazy sequence over the neighbours of v.
//
// Membership is checked when Neighbours is called, not when the sequence is
// ranged. The sequence is restartable and reads v's current neighbour set on
// every range; if v has been removed in the meantime it yields nothing.
//
// Errors:
//   - ErrVertexNotFound: if v is not a member.
func (g *Graph[V]) Neighbours(v V) (iter.Seq[V], error) {
	if _, ok := g.neighbours[v]; !ok {
		return nil, fmt.Errorf("%s(%v): %w", methodNeighbours, v, ErrVertexNotFound)
	}

	return func(yield func(V) bool) {
		for u := range g.neighbours[v] {
			if !yield(u) {
				return
			}
		}
	}, nil
}

// SortedNeighbours returns an ascending snapshot of v's neighbours.
//
// Errors:
//   - ErrVertexNotFound: if v is not a member.
func (g *Graph[V]) SortedNeighbours(v V) ([]V, error) {
	nbrs, err := g.Neighbours(v)
	if err != nil {
		return nil, err
	}

	return slices.Sorted(nbrs), nil
}
