// SPDX-License-Identifier: MIT
// File: api.go
// Role: Read-only summaries built on top of the core collections.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	// MinDegree and MaxDegree are 0 for a graph without vertices.
	MinDegree int
	MaxDegree int

	// TotalCost is the sum of all edge costs.
	TotalCost int64
}

// AverageDegree returns 2E/V, or 0 for a graph without vertices.
func (s GraphStats) AverageDegree() float64 {
	if s.VertexCount == 0 {
		return 0
	}
	return 2 * float64(s.EdgeCount) / float64(s.VertexCount)
}

// Stats produces a summary of the graph's counts, degree range and total cost.
//
// Implementation:
//   - Stage 1: Scan the neighbour mapping once for min/max degree.
//   - Stage 2: Scan the cost mapping once for the total cost.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph[V]) Stats() GraphStats {
	// counts come straight from the collections
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.costs),
	}

	// degree bounds: seed with the first vertex seen, then widen
	first := true
	for _, nbrs := range g.neighbours {
		d := len(nbrs)
		if first {
			stats.MinDegree, stats.MaxDegree = d, d
			first = false
			continue
		}
		stats.MinDegree = min(stats.MinDegree, d)
		stats.MaxDegree = max(stats.MaxDegree, d)
	}

	// each edge is stored once, so summing costs counts it once
	for _, c := range g.costs {
		stats.TotalCost += c
	}

	return stats
}
