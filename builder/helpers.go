// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// helpers.go: vertex/edge emission shared by constructors.
//
// Emission is idempotent so constructors layer onto each other inside one
// BuildGraph call: a vertex or edge an earlier constructor already placed is
// kept as is (including its cost) and silently skipped.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// addVertices inserts vertices 0..n-1 in ascending order, skipping those that
// already exist.
func addVertices(method string, g *core.Graph[int], n int) error {
	for i := 0; i < n; i++ {
		// already placed by an earlier constructor
		if g.HasVertex(i) {
			continue
		}
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}

// addEdge inserts {u, v} with the next configured cost. An existing edge is
// left untouched and consumes no cost draw.
func addEdge(method string, g *core.Graph[int], cfg builderConfig, u, v int) error {
	if g.HasEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v, cfg.cost()); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// edgesWithin counts the edges of g whose endpoints both lie in 0..n-1.
func edgesWithin(g *core.Graph[int], n int) int {
	count := 0
	for e := range g.Edges() {
		// From < To, so checking both bounds once is enough
		if e.From >= 0 && e.To < n {
			count++
		}
	}
	return count
}
