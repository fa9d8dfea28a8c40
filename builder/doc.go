// SPDX-License-Identifier: MIT

// Package builder provides deterministic fixture generators for weighted
// graphs over the vertex set {1,…,n}. It feeds the solver property tests,
// benchmarks and the `wdiam gen` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        create an n-vertex core.Graph and apply Constructors in order.
//     – Constructor:       a deterministic graph mutation (func(g, cfg) error).
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed / WithRand for stochastic topologies and weights.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer weight in [min,max].
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors and never panic.
//   - Every generated weight lies in [0, core.MaxEdgeWeight].
package builder
