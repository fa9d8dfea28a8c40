// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// constants.go: method tags, size minima and defaults shared by constructors.

package builder

// Canonical constructor names used as error context prefixes.
const (
	MethodBuildGraph   = "BuildGraph"
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest size for a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinCompleteNodes allows K_1 (no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a grid.
// A 1×1 grid has no edges but is valid.
const MinGridDim = 1

// CenterVertex is the hub of Star.
const CenterVertex = 1

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
