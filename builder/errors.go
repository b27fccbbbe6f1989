// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     "Random: m=7 > max=6 for n=4: builder: invalid construction parameters".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidConstructionParameters indicates that a size parameter is out of
// its domain: a negative vertex or edge count, fewer vertices than a topology
// needs, or more edges than n vertices can hold without loops or duplicates
// (m > n*(n-1)/2).
var ErrInvalidConstructionParameters = errors.New("builder: invalid construction parameters")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// a random source (see WithSeed, WithRand, WithSource).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrConstructFailed indicates BuildGraph received a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
