// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// cost_fn.go: the random source contract and edge-cost generators.

package builder

import (
	"fmt"
	"math"
)

// IntSource is the uniform integer generator consumed by stochastic constructors.
//
// Intn returns an integer uniformly distributed in [0, n), independent across
// calls. *math/rand.Rand satisfies it.
type IntSource interface {
	Intn(n int) int
}

// CostFn produces an edge cost from an optional source. It is called once per
// emitted edge, in emission order, so a seeded source gives reproducible costs.
type CostFn func(src IntSource) int64

// DefaultCostFn draws a cost uniformly from [0, MaxRandomCost).
// Without a source it yields 0.
func DefaultCostFn(src IntSource) int64 {
	if src == nil {
		return 0
	}
	return int64(src.Intn(MaxRandomCost))
}

// ConstantCostFn returns a CostFn that always yields c.
func ConstantCostFn(c int64) CostFn {
	return func(IntSource) int64 { return c }
}

// UniformCostFn returns a CostFn drawing uniformly from [lo, hi).
// Without a source it yields lo.
// Panics if hi <= lo or if hi-lo does not fit in an int (the Intn domain).
func UniformCostFn(lo, hi int64) CostFn {
	if hi <= lo {
		panic(fmt.Sprintf("builder: UniformCostFn requires lo < hi, got lo=%d hi=%d", lo, hi))
	}
	// unsigned subtraction is exact for hi > lo, even across the int64 range
	width := uint64(hi) - uint64(lo)
	if width > math.MaxInt {
		panic(fmt.Sprintf("builder: UniformCostFn range too wide, got lo=%d hi=%d", lo, hi))
	}
	span := int(width)
	return func(src IntSource) int64 {
		if src == nil {
			return lo
		}
		return lo + int64(src.Intn(span))
	}
}
