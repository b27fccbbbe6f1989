// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// impl_random.go: implementation of the Random(n, m) constructor.
//
// Model:
//   - Vertices 0..n-1 are added in ascending order (existing ones are kept).
//   - Two endpoints are drawn with src.Intn(n); a pair that is a self-pair or
//     already joined is redrawn. Each accepted pair gets cfg.costFn(src).
//   - Sampling stops once m new edges exist.
//
// Contract:
//   - n ≥ 0 and 0 ≤ m ≤ n*(n-1)/2 (else ErrInvalidConstructionParameters).
//   - When earlier constructors already joined pairs inside 0..n-1, m must
//     also fit in the pairs still free. Both bounds guarantee termination.
//   - A source is required when m > 0 (else ErrNeedRandSource).
//   - All validation happens before the first vertex is added.
//
// Complexity:
//   - Expected draws grow as m approaches the free-pair count
//     (coupon-collector tail); each draw is O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Random returns a Constructor that adds vertices 0..n-1 and m distinct
// random edges between them.
func Random(n, m int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// 1) size parameters on their own
		if err := validateMin(methodRandom, "n", n, minRandomVertices); err != nil {
			return err
		}
		if err := validateEdgeBudget(methodRandom, n, m); err != nil {
			return err
		}

		// 2) pairs taken by earlier constructors shrink the budget
		taken := edgesWithin(g, n)
		if free := maxSimpleEdges(n) - int64(taken); int64(m) > free {
			return fmt.Errorf("%s: m=%d > free=%d for n=%d (%d pairs taken): %w",
				methodRandom, m, free, n, taken, ErrInvalidConstructionParameters)
		}

		// 3) sampling needs a source; an edgeless request does not
		if m > 0 && cfg.src == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		// 4) vertices first, so every drawn endpoint exists
		if err := addVertices(methodRandom, g, n); err != nil {
			return err
		}

		// 5) draw pairs until m new edges are placed; loops and duplicates are redrawn
		src := cfg.src
		for added := 0; added < m; {
			u, v := src.Intn(n), src.Intn(n)
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := addEdge(methodRandom, g, cfg, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
