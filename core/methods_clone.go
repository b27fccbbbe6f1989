// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Clones never share a map with their source: every neighbour set is
// reallocated, so mutating either graph leaves the other untouched.

package core

import "maps"

// CloneEmpty returns a new Graph with the same vertices but no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	clone := &Graph[V]{
		vertices:   maps.Clone(g.vertices),
		neighbours: make(map[V]map[V]struct{}, len(g.neighbours)),
		costs:      make(map[edgeKey[V]]int64),
	}
	// every vertex keeps a live, empty neighbour set
	for v := range g.vertices {
		clone.neighbours[v] = make(map[V]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertex set, every neighbour set
// and the cost mapping are copied into fresh maps.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	// vertex set and cost mapping hold values only, a shallow copy is deep
	clone := &Graph[V]{
		vertices:   maps.Clone(g.vertices),
		neighbours: make(map[V]map[V]struct{}, len(g.neighbours)),
		costs:      maps.Clone(g.costs),
	}
	// each neighbour set gets its own map so later mutations never alias
	for v, nbrs := range g.neighbours {
		clone.neighbours[v] = maps.Clone(nbrs)
	}

	return clone
}

// Clear removes every vertex and edge, leaving an empty graph.
// Complexity: O(1) for map reallocation.
func (g *Graph[V]) Clear() {
	g.vertices = make(map[V]struct{})
	g.neighbours = make(map[V]map[V]struct{})
	g.costs = make(map[edgeKey[V]]int64)
}
