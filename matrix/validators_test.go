// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the solver input validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/matrix"
)

// TestValidateSolverInput covers nil inputs, order mismatch and the diagonal contract.
func TestValidateSolverInput(t *testing.T) {
	t.Parallel()

	weights := func(n int) *matrix.Distances {
		w, err := matrix.NewWeights(n)
		require.NoError(t, err)
		return w
	}
	preds := func(n int) *matrix.Predecessors {
		p, err := matrix.NewPredecessors(n)
		require.NoError(t, err)
		return p
	}
	badDiagonal := weights(3)
	require.NoError(t, badDiagonal.Set(2, 2, matrix.Finite(-1)))
	tooHeavy := weights(2)
	require.NoError(t, tooHeavy.Set(0, 1, matrix.Finite(core.MaxEdgeWeight+1)))
	tooLight := weights(2)
	require.NoError(t, tooLight.Set(1, 0, matrix.Finite(-core.MaxEdgeWeight-1)))

	tests := []struct {
		name    string
		w       *matrix.Distances
		pi      *matrix.Predecessors
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"weights nil", nil, preds(2), matrix.ErrNilMatrix},
		{"predecessors nil", weights(2), nil, matrix.ErrNilMatrix},
		{"order mismatch", weights(2), preds(3), matrix.ErrDimensionMismatch},
		{"negative diagonal", badDiagonal, preds(3), matrix.ErrNonZeroDiagonal},
		{"weight above bound", tooHeavy, preds(2), matrix.ErrWeightOutOfRange},
		{"weight below bound", tooLight, preds(2), matrix.ErrWeightOutOfRange},
		{"ok", weights(3), preds(3), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateSolverInput(tc.w, tc.pi)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateWeights_NegativeOffDiagonalAllowed keeps negative edges legal
// at the matrix level.
func TestValidateWeights_NegativeOffDiagonalAllowed(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateWeights(clrsWeights(t)))
}
