// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the outer boundary via
// matrixErrorf; callers still match with errors.Is.

var (
	// ErrNoVertices is returned when a matrix of order n ≤ 0 is requested.
	ErrNoVertices = errors.New("matrix: no vertices")

	// ErrTooLarge is returned when a matrix of order n > core.MaxVertices is requested.
	ErrTooLarge = errors.New("matrix: order too large")

	// ErrWeightOutOfRange signals a weight cell whose magnitude exceeds
	// core.MaxEdgeWeight; path sums could overflow int64.
	ErrWeightOutOfRange = errors.New("matrix: weight out of range")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different order,
	// e.g. a weight matrix and a predecessor matrix of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed into the initializer.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNonZeroDiagonal signals a weight matrix whose diagonal is not 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeCycle signals that solving produced a negative diagonal entry.
	// The result matrices are meaningless in that case.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")

	// ErrBadPredecessor signals a predecessor cell holding an ID outside [0, n].
	ErrBadPredecessor = errors.New("matrix: predecessor out of range")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
