// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidConstructionParameters).
//   • Adds vertices 0..n-1, then edges {i, i+1} for i = 0..n-2 in that order.
//   • Costs come from cfg.costFn, one call per edge in emission order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/ugraph/core"

// Path returns a Constructor that builds the path P_n: 0─1─…─(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// validate before g is touched
		if err := validateMin(methodPath, "n", n, minPathVertices); err != nil {
			return err
		}
		// vertices 0..n-1; ones placed by earlier constructors are kept
		if err := addVertices(methodPath, g, n); err != nil {
			return err
		}
		// chain consecutive vertices
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
