package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/matrix"
)

func TestBuildWeights_Undirected(t *testing.T) {
	g := mustGraph(t, 4, false, edge{1, 2, 3}, edge{2, 3, 0}, edge{4, 4, 8})
	w, pi, err := matrix.BuildWeights(g)
	require.NoError(t, err)

	assert.Equal(t, [][]int64{
		{0, 3, U, U},
		{3, 0, 0, U},
		{U, 0, 0, U},
		{U, U, U, 0}, // self-loop ignored
	}, distRows(w))
	assert.Equal(t, [][]int{
		{0, 1, 0, 0},
		{2, 0, 2, 0},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
	}, predRows(t, pi))
}

func TestBuildWeights_Directed(t *testing.T) {
	g := mustGraph(t, 3, true, edge{1, 2, 3}, edge{3, 1, 1})
	w, pi, err := matrix.BuildWeights(g)
	require.NoError(t, err)

	assert.Equal(t, [][]int64{
		{0, 3, U},
		{U, 0, U},
		{1, U, 0},
	}, distRows(w))
	assert.Equal(t, [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{3, 0, 0},
	}, predRows(t, pi))
}

func TestBuildWeights_NilGraph(t *testing.T) {
	_, _, err := matrix.BuildWeights(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestInitPredecessors_MatchesBuildWeights(t *testing.T) {
	g := mustGraph(t, 4, false, edge{1, 2, 1}, edge{2, 3, 1}, edge{3, 4, 1}, edge{1, 4, 9})
	w, pi, err := matrix.BuildWeights(g)
	require.NoError(t, err)

	derived, err := matrix.InitPredecessors(w)
	require.NoError(t, err)
	assert.True(t, pi.Equal(derived))

	_, err = matrix.InitPredecessors(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
