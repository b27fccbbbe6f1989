// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// constants.go: method tags and domain bounds shared by constructors.

package builder

// Method tags prefix every wrapped error ("Random: ...").
const (
	methodBuildGraph = "BuildGraph"
	methodRandom     = "Random"
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodComplete   = "Complete"
)

// Minimum vertex counts per topology.
const (
	minRandomVertices   = 0
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
)

// MaxRandomCost is the exclusive upper bound of DefaultCostFn: costs fall in [0, MaxRandomCost).
const MaxRandomCost = 10000

// starCenter is the hub vertex of Star(n); leaves are 1..n-1.
const starCenter = 0
