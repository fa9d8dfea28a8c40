// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - For a graph, call APSP; for hand-built matrices, NewWeights → Set →
//     InitPredecessors → FloydWarshall.

package matrix

import (
	"context"

	"github.com/katalvlaran/wdiam/core"
)

// APSP builds generation 0 from g and solves it.
// Thin composition of BuildWeights and FloydWarshall; same errors.
// Complexity: Θ(n³).
func APSP(ctx context.Context, g *core.Graph, opts ...Option) (*Distances, *Predecessors, error) {
	w, pi, err := BuildWeights(g)
	if err != nil {
		return nil, nil, err
	}

	return FloydWarshall(ctx, w, pi, opts...)
}

// FromRows builds a weight matrix from nested rows of optional weights:
// nil means Unreachable. The diagonal is forced to Finite(0).
// Useful for table-driven tests and JSON inputs.
//
// Errors: ErrNoVertices on an empty slice; ErrDimensionMismatch on a ragged one.
func FromRows(rows [][]*int64) (*Distances, error) {
	n := len(rows)
	w, err := NewWeights(n)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			if i == j || rows[i][j] == nil {
				continue
			}
			w.data[i*n+j] = Finite(*rows[i][j])
		}
	}

	return w, nil
}
