// Package builder populates core.Graph[int] instances: the randomized (n, m)
// construction and a handful of deterministic topologies.
//
// The package offers the following key components:
//
//   - Constructors (type Constructor), applied in order by BuildGraph and
//     layered on shared vertex IDs 0..n-1 (existing vertices/edges are kept):
//     - Random(n, m):   vertices 0..n-1 plus m distinct random edges.
//     - Path(n):        0─1─…─(n-1).
//     - Cycle(n):       Path(n) closed back to 0, n ≥ 3.
//     - Star(n):        hub 0 joined to leaves 1..n-1.
//     - Complete(n):    every pair joined.
//   - Configuration primitives (BuilderOption):
//     - WithSeed / WithRand / WithSource: the random source (IntSource).
//     - WithCostFn:     the per-edge cost generator (CostFn).
//   - Cost generators:
//     - DefaultCostFn:  uniform in [0, MaxRandomCost), 0 without a source.
//     - ConstantCostFn, UniformCostFn.
//
// Random validates m ≤ n*(n-1)/2 up front, so it never loops forever; a
// request that does not fit returns ErrInvalidConstructionParameters.
//
// Quick start:
//
//	g, err := builder.NewRandom(10, 20, builder.WithSeed(42))
//	if errors.Is(err, builder.ErrInvalidConstructionParameters) { ... }
package builder
