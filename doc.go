// SPDX-License-Identifier: MIT

// Package ugraph is an in-memory, simple, undirected graph library with
// integer edge costs.
//
// The module is organised as:
//
//	core/        Graph[V]: vertices, edges, costs, cascade removal, Clone, iterators
//	builder/     BuildGraph and constructors: Random(n, m), Path, Cycle, Star, Complete
//	cmd/ugraph/  command-line front end generating and inspecting random graphs
//
// A graph never holds self-loops or parallel edges, and an edge {a, b} is
// always visible from both a and b with the same cost. Failures are reported
// as sentinel errors (core.ErrVertexNotFound, builder.ErrInvalidConstructionParameters, ...)
// wrapped with the failing method, so callers match them with errors.Is.
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	_ = g.AddEdge("A", "B", 7)
//	c, _ := g.EdgeCost("B", "A") // 7
//
// Graphs are not safe for concurrent mutation; callers share them behind
// their own lock.
package ugraph
