// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs (nil).
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithSource.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithSeed attaches a new *rand.Rand seeded with seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.src = r
	}
}

// WithSource attaches any IntSource (e.g. a scripted source in tests). Panics on nil.
func WithSource(src IntSource) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}
