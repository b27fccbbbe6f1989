// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • src    = nil            (no randomness unless seeded)
//   • costFn = DefaultCostFn  (uniform [0, MaxRandomCost) with a source, 0 without)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// src drives vertex sampling and costs; nil means "no randomness".
	src IntSource
	// costFn produces one cost per emitted edge.
	costFn CostFn
}

// newBuilderConfig starts from the defaults and applies opts in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		src:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cost draws the next edge cost.
func (c builderConfig) cost() int64 {
	return c.costFn(c.src)
}
