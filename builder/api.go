// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// api.go: public entry points: Constructor, BuildGraph, NewRandom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ugraph/core"
)

// Constructor populates g according to a topology and the resolved config.
// Constructors validate their parameters before touching g and wrap every
// error with their method tag.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts once and applies each
// constructor in order. Constructors share vertex IDs 0..n-1 and layer onto
// each other: vertices and edges already placed are kept with their costs,
// so BuildGraph(nil, Cycle(4), Star(6)) yields a 4-cycle plus hub edges
// 0-2, 0-4 and 0-5 (0-1 and 0-3 already existed).
//
// Errors:
//   - ErrConstructFailed: a nil constructor was passed.
//   - Any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	// start from an empty graph and one resolved configuration
	g := core.NewGraph[int]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// a nil constructor is a caller bug, not an empty step
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		// each constructor validates before it mutates g
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// NewRandom builds a graph with vertices 0..n-1 and exactly m distinct random
// edges. It is shorthand for BuildGraph(opts, Random(n, m)).
//
// Example:
//
//	g, err := builder.NewRandom(100, 250, builder.WithSeed(7))
func NewRandom(n, m int, opts ...BuilderOption) (*core.Graph[int], error) {
	return BuildGraph(opts, Random(n, m))
}
