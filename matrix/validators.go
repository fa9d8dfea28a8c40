// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input checks of the
//    initializer/solver pair.
//  - Return plain sentinel errors (tagged) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size → Content).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures both solver inputs are present.
// Complexity: O(1).
func ValidateNotNil(w *Distances, pi *Predecessors) error {
	if w == nil || pi == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures w and pi have the same order.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameSize(w *Distances, pi *Predecessors) error {
	if w.n != pi.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize: %d vs %d", w.n, pi.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateWeights checks the W contract: every diagonal cell is Finite(0) and
// every reachable off-diagonal cell lies in [-core.MaxEdgeWeight, core.MaxEdgeWeight],
// so no path sum can overflow int64.
// Negative off-diagonal weights are legal at this level (directed inputs
// without negative cycles); the loader rejects them for edge lists.
// Assumes w is non-nil.
//
// Errors: ErrNonZeroDiagonal, ErrWeightOutOfRange.
// Complexity: O(n²).
func ValidateWeights(w *Distances) error {
	var (
		i, j int
		cell Distance
	)
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			cell = w.data[i*w.n+j]
			if i == j {
				if cell != Finite(0) {
					return validatorErrorf(fmt.Sprintf("ValidateWeights: [%d,%d]", i, j), ErrNonZeroDiagonal)
				}
				continue
			}
			if cell.Reachable && (cell.Value > core.MaxEdgeWeight || cell.Value < -core.MaxEdgeWeight) {
				return validatorErrorf(fmt.Sprintf("ValidateWeights: [%d,%d]=%d", i, j, cell.Value), ErrWeightOutOfRange)
			}
		}
	}

	return nil
}

// ValidateSolverInput is the composite used by FloydWarshall:
// NotNil → SameSize → Weights.
func ValidateSolverInput(w *Distances, pi *Predecessors) error {
	if err := ValidateNotNil(w, pi); err != nil {
		return err
	}
	if err := ValidateSameSize(w, pi); err != nil {
		return err
	}

	return ValidateWeights(w)
}
