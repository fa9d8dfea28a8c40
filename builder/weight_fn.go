// SPDX-License-Identifier: MIT

// Package builder: edge-weight distributions for graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wdiam/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is outside [0, core.MaxEdgeWeight].
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 || value > core.MaxEdgeWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [0,%d], got %d", core.MaxEdgeWeight, value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics unless 0 ≤ min ≤ max ≤ core.MaxEdgeWeight.
// If rng is nil, yields min (deterministic fallback).
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min || max > core.MaxEdgeWeight {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ %d, got min=%d, max=%d",
			core.MaxEdgeWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U{min..max} via UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
