// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidConstructionParameters).
//   • Emits every pair {i, j}, i < j, for i asc then j asc: n*(n-1)/2 edges.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/ugraph/core"

// Complete returns a Constructor that builds the complete graph K_n.
// It is the saturated case of Random(n, n*(n-1)/2), without sampling.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// validate before g is touched
		if err := validateMin(methodComplete, "n", n, minCompleteVertices); err != nil {
			return err
		}
		// vertices 0..n-1; ones placed by earlier constructors are kept
		if err := addVertices(methodComplete, g, n); err != nil {
			return err
		}
		// every unordered pair once, i < j
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
