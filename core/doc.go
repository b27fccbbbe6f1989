// Package core provides an in-memory undirected weighted Graph with a
// minimal, composable API surface.
//
// The Graph G = (V, E) is generic over its vertex type: any integer or string
// type (see Vertex) can identify vertices. Ordering is what lets every
// undirected edge {a, b} be stored under one canonical key (min, max).
// Floats are excluded since NaN would defeat vertex uniqueness.
//
// Representation:
//
//   - vertex set:       map[V]struct{}
//   - neighbour sets:   map[V]map[V]struct{}, mirrored for both endpoints
//   - cost mapping:     map[(lo,hi)]int64, one entry per edge
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) error               // O(1); ErrVertexExists on duplicates
//	HasVertex(v V) bool                // O(1)
//	RemoveVertex(v V) error            // O(deg(v)); cascades to incident edges
//
//	// Edge lifecycle
//	AddEdge(a, b V, cost int64) error  // O(1); loops, duplicates, missing endpoints rejected
//	HasEdge(a, b V) bool               // O(1); symmetric
//	RemoveEdge(a, b V) error           // O(1); endpoints are kept
//	EdgeCost(a, b V) (int64, error)    // O(1)
//	SetEdgeCost(a, b V, c int64) error // O(1)
//
//	// Counts & degrees
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//	Degree(v V) (int, error)           // O(1)
//	Stats() GraphStats                 // O(V+E)
//
//	// Enumeration (lazy, restartable, unspecified order)
//	Vertices() iter.Seq[V]
//	Neighbours(v V) (iter.Seq[V], error)
//	Edges() iter.Seq[Edge[V]]          // From < To
//
//	// Deterministic snapshots
//	SortedVertices() []V
//	SortedNeighbours(v V) ([]V, error)
//	SortedEdges() []Edge[V]
//
//	// Cloning
//	Clone() *Graph[V]                  // O(V+E) deep copy
//	CloneEmpty() *Graph[V]             // O(V) vertices only
//	Clear()
//
// Errors:
//
//	ErrVertexNotFound      : missing vertex (Degree, Neighbours, RemoveVertex)
//	ErrVertexExists        : AddVertex on an existing vertex
//	ErrEdgeNotFound        : missing edge (EdgeCost, SetEdgeCost, RemoveEdge)
//	ErrEdgeExists          : AddEdge on an existing edge
//	ErrEdgeEndpointMissing : AddEdge with an endpoint that is not a vertex
//	ErrLoopNotAllowed      : AddEdge(v, v)
//
// Returned errors wrap these sentinels with the method name and arguments;
// branch on them with errors.Is.
//
// Every mutator validates before it writes, so a failed call leaves the
// graph exactly as it was.
//
// Graph is not safe for concurrent use.
package core
