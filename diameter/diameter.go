// Package diameter finds the pair of vertices with the largest shortest-path
// distance and reconstructs the path between them.
//
// Scan order is row-major (i, then j) over the final distance matrix; the
// running maximum is replaced only on a strictly greater value, so the first
// maximal pair in scan order wins ties.
//
// Path reconstruction walks the predecessor matrix backward from the target:
// append j; while Pre[i][j] ≠ i { j = Pre[i][j]; append j }; append i; reverse.
//
// Complexity:
//
//   - Farthest: O(n²) time, O(1) space.
//   - Path:     O(n) time and space.
package diameter

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wdiam/matrix"
)

// Farthest scans d and returns the farthest pair under the configured policy.
//
// Returns:
//
//   - Pair with 1-based endpoints and the distance between them.
//   - ErrNilMatrix, ErrNoReachablePair, or ErrDisconnected (PolicyStrict).
func Farthest(d *matrix.Distances, opts ...Option) (Pair, error) {
	if d == nil {
		return Pair{}, ErrNilMatrix
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Policy == PolicySentinel {
		return farthestLegacy(d)
	}

	n := d.Size()
	var (
		i, j  int
		cell  matrix.Distance
		best  Pair
		found bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // always 0; never a meaningful farthest pair
			}
			cell, _ = d.At(i, j) // in bounds by construction
			if !cell.Reachable {
				if cfg.Policy == PolicyStrict {
					return Pair{}, fmt.Errorf("%w: %d cannot reach %d", ErrDisconnected, i+1, j+1)
				}
				continue
			}
			// Strictly greater: the first maximal pair in scan order is kept.
			if !found || best.Distance.Less(cell) {
				best = Pair{From: i + 1, To: j + 1, Distance: cell}
				found = true
			}
		}
	}
	if !found {
		return Pair{}, ErrNoReachablePair
	}

	return best, nil
}

// farthestLegacy is the 9999-era scan: running maximum starts at 0,
// unreachable cells count as LegacySentinel, the diagonal is scanned too.
func farthestLegacy(d *matrix.Distances) (Pair, error) {
	n := d.Size()
	var (
		i, j  int
		cell  matrix.Distance
		value int64
		best  Pair
		top   int64 // running maximum
		found bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cell, _ = d.At(i, j)
			value = cell.Value
			if !cell.Reachable {
				value = LegacySentinel
			}
			if value > top {
				top = value
				best = Pair{From: i + 1, To: j + 1, Distance: cell}
				found = true
			}
		}
	}
	if !found {
		// No cell ever exceeded 0.
		return Pair{}, ErrNoReachablePair
	}

	return best, nil
}

// Path reconstructs the shortest path from → to (1-based IDs) from pre.
// from == to yields [from].
//
// Errors: ErrNilMatrix, ErrVertexOutOfRange, ErrUnreachable (a NoPredecessor
// cell mid-walk), ErrCorruptPredecessors (walk longer than n vertices).
func Path(pre *matrix.Predecessors, from, to int) ([]int, error) {
	if pre == nil {
		return nil, ErrNilMatrix
	}
	n := pre.Size()
	if from < 1 || from > n || to < 1 || to > n {
		return nil, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrVertexOutOfRange, from, to, n)
	}
	if from == to {
		return []int{from}, nil
	}

	path := []int{to}
	j := to
	for {
		p, _ := pre.At(from-1, j-1)
		if p == from {
			break
		}
		if p == matrix.NoPredecessor {
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, from, to)
		}
		// A simple path holds at most n vertices: to, intermediates, from.
		if len(path)+2 > n {
			return nil, fmt.Errorf("%w: %d→%d", ErrCorruptPredecessors, from, to)
		}
		j = p
		path = append(path, j)
	}
	path = append(path, from)
	slices.Reverse(path)

	return path, nil
}

// Find runs Farthest and reconstructs the path of the winning pair.
// Under PolicySentinel an unreachable winner is returned with a nil Path.
func Find(d *matrix.Distances, pre *matrix.Predecessors, opts ...Option) (*Result, error) {
	if d == nil || pre == nil {
		return nil, ErrNilMatrix
	}
	pair, err := Farthest(d, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Pair: pair}
	if res.Unreachable() {
		return res, nil
	}
	if res.Path, err = Path(pre, pair.From, pair.To); err != nil {
		return nil, err
	}

	return res, nil
}
