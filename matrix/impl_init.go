// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build generation 0 of the solver: the weight matrix W and the
//     predecessor matrix Π, from a core.Graph or from scratch.
//
// Contract (for i, j in [1,n]):
//   - i == j            → W = Finite(0),  Π = NoPredecessor.
//   - edge i→j weight w → W = Finite(w),  Π = i.
//   - otherwise         → W = Unreachable, Π = NoPredecessor.
//
// Determinism: rows are filled in increasing vertex order; neighbors come
// sorted from core.

package matrix

import "github.com/katalvlaran/wdiam/core"

const opBuildWeights = "BuildWeights"

// NewWeights returns an n×n weight matrix with a zero diagonal and every
// off-diagonal cell Unreachable: the W of an edgeless graph.
//
// Errors: ErrNoVertices if n ≤ 0.
// Complexity: O(n²).
func NewWeights(n int) (*Distances, error) {
	w, err := NewDistances(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		w.data[i*n+i] = Finite(0)
	}

	return w, nil
}

// BuildWeights materializes W and Π from the adjacency mapping of g.
// A vertex with no outgoing edges yields an all-Unreachable row off the
// diagonal. Self-loops are ignored: the diagonal is always Finite(0).
//
// Errors: ErrGraphNil.
// Complexity: Time O(n² + E log d), Space O(n²).
func BuildWeights(g *core.Graph) (*Distances, *Predecessors, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opBuildWeights, ErrGraphNil)
	}

	n := g.VertexCount()
	w, err := NewWeights(n)
	if err != nil {
		return nil, nil, matrixErrorf(opBuildWeights, err)
	}
	pi, err := NewPredecessors(n)
	if err != nil {
		return nil, nil, matrixErrorf(opBuildWeights, err)
	}

	var (
		u, v, base int
		nbs        []int
		weight     int64
	)
	for u = 1; u <= n; u++ {
		nbs, err = g.Neighbors(u) // sorted; empty for vertices without edges
		if err != nil {
			return nil, nil, matrixErrorf(opBuildWeights, err)
		}
		base = (u - 1) * n
		for _, v = range nbs {
			if v == u {
				continue // self-loop: distance to self stays 0
			}
			weight, _ = g.Weight(u, v)
			w.data[base+v-1] = Finite(weight)
			pi.data[base+v-1] = u // u is the immediate predecessor of v via the direct edge
		}
	}

	return w, pi, nil
}

// InitPredecessors derives Π from a hand-built W: Π[i][j] = i for every
// reachable off-diagonal cell, NoPredecessor elsewhere.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func InitPredecessors(w *Distances) (*Predecessors, error) {
	if w == nil {
		return nil, matrixErrorf("InitPredecessors", ErrNilMatrix)
	}
	pi, err := NewPredecessors(w.n)
	if err != nil {
		return nil, matrixErrorf("InitPredecessors", err)
	}
	var i, j int
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			if i != j && w.data[i*w.n+j].Reachable {
				pi.data[i*w.n+j] = i + 1
			}
		}
	}

	return pi, nil
}
