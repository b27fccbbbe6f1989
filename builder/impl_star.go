// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrInvalidConstructionParameters).
//   • Vertex 0 is the hub; leaves 1..n-1 each get one spoke {0, i}.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/ugraph/core"

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// validate before g is touched
		if err := validateMin(methodStar, "n", n, minStarVertices); err != nil {
			return err
		}
		// vertices 0..n-1; ones placed by earlier constructors are kept
		if err := addVertices(methodStar, g, n); err != nil {
			return err
		}
		// hub to every leaf
		for i := starCenter + 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, starCenter, i); err != nil {
				return err
			}
		}

		return nil
	}
}
