// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrInvalidConstructionParameters); smaller rings would need
//     a loop or a duplicate edge.
//   • Emits edges {i, (i+1)%n} for i = 0..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/ugraph/core"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// validate before g is touched
		if err := validateMin(methodCycle, "n", n, minCycleVertices); err != nil {
			return err
		}
		// vertices 0..n-1; ones placed by earlier constructors are kept
		if err := addVertices(methodCycle, g, n); err != nil {
			return err
		}
		// chain consecutive vertices; (n-1)+1 wraps back to 0
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
