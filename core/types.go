// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types, the sentinel errors
// returned by graph operations, and the NewGraph constructor.
//
// Storage model:
//
//	vertices   map[V]struct{}          vertex set
//	neighbours map[V]map[V]struct{}    per-vertex neighbour sets (symmetric)
//	costs      map[edgeKey[V]]int64    one entry per canonical pair (lo < hi)
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrVertexExists        - AddVertex on a vertex already present.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrEdgeExists          - AddEdge on a canonical pair already present.
//	ErrEdgeEndpointMissing - AddEdge where an endpoint is not a vertex.
//	ErrLoopNotAllowed      - AddEdge(v, v).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called for a vertex already in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates AddEdge was called for an edge already in the graph.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeEndpointMissing indicates AddEdge referenced an endpoint that is not a vertex.
	ErrEdgeEndpointMissing = errors.New("core: edge endpoint does not exist")

	// ErrLoopNotAllowed indicates a self-loop (a == b) was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex is the set of types that can identify a vertex: integers and
// strings. Floats are left out because NaN is not equal to itself and would
// break vertex uniqueness as a map key.
type Vertex interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~string
}

// Edge is an undirected edge reported by enumeration.
//
// From and To are always canonical: From < To.
type Edge[V Vertex] struct {
	// From is the smaller endpoint.
	From V

	// To is the larger endpoint.
	To V

	// Cost is the value attached to the edge.
	Cost int64
}

// edgeKey is the canonical (lo, hi) pair used as the single key of an undirected edge.
type edgeKey[V Vertex] struct {
	lo, hi V
}

// canonical orders (a, b) so that every undirected edge has exactly one key.
func canonical[V Vertex](a, b V) edgeKey[V] {
	if a > b {
		a, b = b, a
	}
	return edgeKey[V]{lo: a, hi: b}
}

// Graph is an in-memory undirected weighted graph.
//
// The vertex set, the neighbour sets and the cost mapping are kept mutually
// consistent by every exported method:
//   - a vertex is in vertices iff it is a key of neighbours;
//   - b ∈ neighbours[a] iff a ∈ neighbours[b];
//   - costs has an entry for (lo, hi) iff hi ∈ neighbours[lo].
//
// Graph is not safe for concurrent use; callers that share a Graph across
// goroutines must guard it with their own lock.
type Graph[V Vertex] struct {
	vertices   map[V]struct{}
	neighbours map[V]map[V]struct{}
	costs      map[edgeKey[V]]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V Vertex]() *Graph[V] {
	return &Graph[V]{
		vertices:   make(map[V]struct{}),
		neighbours: make(map[V]map[V]struct{}),
		costs:      make(map[edgeKey[V]]int64),
	}
}
