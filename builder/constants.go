// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// constants.go - method tags and parameter minima.

package builder

// Method tags used as error prefixes.
const (
	MethodEmpty    = "Empty"
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodStar     = "Star"
	MethodComplete = "Complete"
	MethodDisjoint = "Disjoint"
)

// Parameter minima.
const (
	MinEmptyNodes    = 1
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinDisjointParts = 1
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1
