// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with predecessor tracking and a
//     deterministic tie-break.
//   - Generation k is computed only from generation k-1; two live buffers
//     (current, next) are swapped after each k.
//
// Contract:
//   - W has a Finite(0) diagonal; Unreachable means "no direct edge".
//   - Π[i][j] is the predecessor of j on the best known i→j route.
//   - Tie-break: when D[i][j] ≤ D[i][k] + D[k][j] the previous predecessor is
//     kept; otherwise Pre[k][j] is adopted.

package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest distances D and predecessors Pre
// from generation 0 (w, pi). The inputs are never mutated.
//
// Determinism:
//   - Intermediates are processed in increasing order k = 1..n.
//   - Each generation reads only the previous one, so the result is identical
//     for any WithWorkers value.
//
// Cancellation:
//   - ctx is checked before every generation (the only safe cut point).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNonZeroDiagonal on bad input.
//   - ctx.Err() (wrapped) when cancelled between generations.
//   - ErrNegativeCycle when a diagonal entry ends up negative.
//
// Complexity: Time Θ(n³), Space Θ(n²) (two generations alive).
//
// AI-Hints:
//   - Use BuildWeights (or APSP) to obtain a valid generation 0 from a graph.
//   - WithWorkers(runtime.GOMAXPROCS(0)) pays off from a few hundred vertices on.
func FloydWarshall(ctx context.Context, w *Distances, pi *Predecessors, opts ...Option) (*Distances, *Predecessors, error) {
	// Validate: non-nil; same order; zero diagonal; bounded weights.
	if err := ValidateSolverInput(w, pi); err != nil {
		return nil, nil, matrixErrorf(opFloydWarshall, err)
	}
	o := gatherOptions(opts...)

	n := w.n
	workers := o.workers
	if workers > n {
		workers = n
	}
	log := o.logger.Named("floyd-warshall")
	log.Debug("solving", "vertices", n, "workers", workers)

	// Generation 0 is a private copy of the inputs; next is scratch space.
	cur, curPre := w.Clone(), pi.Clone()
	next := &Distances{square[Distance]{n: n, data: make([]Distance, n*n)}}
	nextPre := &Predecessors{square[int]{n: n, data: make([]int, n*n)}}

	var k int
	for k = 0; k < n; k++ { // outer: pick intermediate vertex k+1
		if err := ctx.Err(); err != nil {
			log.Debug("cancelled", "generation", k, "error", err)
			return nil, nil, matrixErrorf(opFloydWarshall, fmt.Errorf("generation %d of %d: %w", k, n, err))
		}

		if err := relaxGeneration(cur, curPre, next, nextPre, k, workers); err != nil {
			return nil, nil, matrixErrorf(opFloydWarshall, err)
		}

		// next is now generation k+1; the old current becomes scratch.
		cur, next = next, cur
		curPre, nextPre = nextPre, curPre

		log.Trace("generation complete", "k", k+1)
		if o.progress != nil {
			o.progress(k+1, n)
		}
	}

	// A negative diagonal can only come from a negative cycle.
	for k = 0; k < n; k++ {
		if d := cur.data[k*n+k]; d.Reachable && d.Value < 0 {
			return nil, nil, matrixErrorf(opFloydWarshall, fmt.Errorf("vertex %d: %w", k+1, ErrNegativeCycle))
		}
	}

	return cur, curPre, nil
}

// relaxGeneration writes generation k+1 into (next, nextPre) from (cur, curPre).
// With workers > 1 the i-dimension is split into contiguous row blocks;
// Wait() is the barrier that keeps generation k+2 from starting early.
func relaxGeneration(cur *Distances, curPre *Predecessors, next *Distances, nextPre *Predecessors, k, workers int) error {
	n := cur.n
	if workers <= 1 {
		relaxRows(cur, curPre, next, nextPre, k, 0, n)
		return nil
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			relaxRows(cur, curPre, next, nextPre, k, lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// relaxRows applies the recurrence to rows [lo, hi) for intermediate index k.
// Rows are written only by their owner; all reads hit the previous generation.
func relaxRows(cur *Distances, curPre *Predecessors, next *Distances, nextPre *Predecessors, k, lo, hi int) {
	n := cur.n
	src, srcPre := cur.data, curPre.data
	dst, dstPre := next.data, nextPre.data

	var (
		i, j         int
		baseI, baseK int
		ik, old      Distance
		cand         Distance
	)
	baseK = k * n
	for i = lo; i < hi; i++ { // middle: source vertex i
		baseI = i * n
		ik = src[baseI+k]
		if !ik.Reachable {
			// No route through k: every candidate is Unreachable, so the
			// "keep previous on ≤" rule copies the row unchanged.
			copy(dst[baseI:baseI+n], src[baseI:baseI+n])
			copy(dstPre[baseI:baseI+n], srcPre[baseI:baseI+n])
			continue
		}
		for j = 0; j < n; j++ { // inner: destination vertex j
			old = src[baseI+j]
			cand = ik.Plus(src[baseK+j])
			if old.LessOrEqual(cand) {
				dst[baseI+j] = old
				dstPre[baseI+j] = srcPre[baseI+j]
			} else {
				dst[baseI+j] = cand
				dstPre[baseI+j] = srcPre[baseK+j] // predecessor along the k→j leg
			}
		}
	}
}
