// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates that the target graph has fewer vertices than the
// constructor needs (BuildGraph n smaller than the topology).
var ErrGraphTooSmall = errors.New("builder: graph has too few vertices")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error during composition, such as
// a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
