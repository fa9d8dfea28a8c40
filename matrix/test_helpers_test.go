// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the initializer and solver.
//   • Keep expectations readable: distances as int64 with -1 meaning "unreachable".

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/matrix"
)

// U marks an unreachable cell in expectation tables.
const U = -1

// edge is a compact (u, v, w) triple for fixtures.
type edge struct {
	u, v int
	w    int64
}

// mustGraph builds an n-vertex graph from edges or fails the test.
func mustGraph(t *testing.T, n int, directed bool, edges ...edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithDirected(directed))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// mustSolve runs BuildWeights + FloydWarshall or fails the test.
func mustSolve(t *testing.T, g *core.Graph, opts ...matrix.Option) (*matrix.Distances, *matrix.Predecessors) {
	t.Helper()
	w, pi, err := matrix.BuildWeights(g)
	require.NoError(t, err)
	d, pre, err := matrix.FloydWarshall(t.Context(), w, pi, opts...)
	require.NoError(t, err)

	return d, pre
}

// distRows flattens d into int64 rows, U for unreachable.
func distRows(d *matrix.Distances) [][]int64 {
	out := make([][]int64, d.Size())
	for i, row := range d.Rows() {
		out[i] = make([]int64, len(row))
		for j, c := range row {
			if c.Reachable {
				out[i][j] = c.Value
			} else {
				out[i][j] = U
			}
		}
	}

	return out
}

// predRows copies pre into nested int rows.
func predRows(t *testing.T, pre *matrix.Predecessors) [][]int {
	t.Helper()
	n := pre.Size()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			v, err := pre.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// ptr returns &v; used to build FromRows fixtures.
func ptr(v int64) *int64 { return &v }

// clrsWeights is the W of the classic 5-vertex example with negative edges.
func clrsWeights(t *testing.T) *matrix.Distances {
	t.Helper()
	w, err := matrix.FromRows([][]*int64{
		{nil, ptr(3), ptr(8), nil, ptr(-4)},
		{nil, nil, nil, ptr(1), ptr(7)},
		{nil, ptr(4), nil, nil, nil},
		{ptr(2), nil, ptr(-5), nil, nil},
		{nil, nil, nil, ptr(6), nil},
	})
	require.NoError(t, err)

	return w
}
