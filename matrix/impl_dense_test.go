package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/matrix"
)

func TestDistance_Ordering(t *testing.T) {
	one, two := matrix.Finite(1), matrix.Finite(2)
	inf := matrix.Unreachable

	assert.True(t, one.Less(two))
	assert.False(t, two.Less(one))
	assert.False(t, one.Less(one))
	assert.True(t, one.LessOrEqual(one))

	assert.True(t, two.Less(inf), "finite < unreachable")
	assert.False(t, inf.Less(two))
	assert.False(t, inf.Less(inf))
	assert.True(t, inf.LessOrEqual(inf), "unreachable ties with itself")

	assert.Equal(t, matrix.Finite(3), one.Plus(two))
	assert.Equal(t, inf, one.Plus(inf))
	assert.Equal(t, inf, inf.Plus(one))

	assert.Equal(t, "2", two.String())
	assert.Equal(t, "inf", inf.String())
}

func TestDense_Constructors(t *testing.T) {
	_, err := matrix.NewDistances(0)
	assert.ErrorIs(t, err, matrix.ErrNoVertices)
	_, err = matrix.NewPredecessors(-1)
	assert.ErrorIs(t, err, matrix.ErrNoVertices)
	_, err = matrix.NewWeights(0)
	assert.ErrorIs(t, err, matrix.ErrNoVertices)
	_, err = matrix.NewDistances(core.MaxVertices + 1)
	assert.ErrorIs(t, err, matrix.ErrTooLarge)
	_, err = matrix.NewPredecessors(core.MaxVertices + 1)
	assert.ErrorIs(t, err, matrix.ErrTooLarge)

	w, err := matrix.NewWeights(2)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Size())
	assert.Equal(t, "[0, inf]\n[inf, 0]\n", w.String())
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDistances(2)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 1, matrix.Finite(5)))
	v, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Finite(5), v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, matrix.Finite(1)), matrix.ErrOutOfRange)

	p, err := matrix.NewPredecessors(3)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 2, 3))
	assert.ErrorIs(t, p.Set(0, 2, 4), matrix.ErrBadPredecessor)
	assert.ErrorIs(t, p.Set(3, 0, 1), matrix.ErrOutOfRange)
	_, err = p.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[0, 0, 3]\n[0, 0, 0]\n[0, 0, 0]\n", p.String())
}

func TestDense_CloneIsDeep(t *testing.T) {
	d, err := matrix.NewWeights(2)
	require.NoError(t, err)
	c := d.Clone()
	require.NoError(t, c.Set(0, 1, matrix.Finite(9)))

	orig, _ := d.At(0, 1)
	assert.Equal(t, matrix.Unreachable, orig)
	assert.False(t, d.Equal(c))

	p, err := matrix.NewPredecessors(2)
	require.NoError(t, err)
	pc := p.Clone()
	require.NoError(t, pc.Set(1, 0, 2))
	assert.False(t, p.Equal(pc))
	assert.True(t, p.Equal(p.Clone()))
}

func TestFromRows(t *testing.T) {
	w, err := matrix.FromRows([][]*int64{
		{ptr(7), ptr(1)},
		{nil, nil},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1}, {U, 0}}, distRows(w), "diagonal is forced to zero")

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrNoVertices)

	_, err = matrix.FromRows([][]*int64{{nil, nil}, {nil}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
