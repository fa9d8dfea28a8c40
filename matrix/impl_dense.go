// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Indexing:
//   - Public accessors take 0-based indices; vertex v lives at index v-1.
//   - Predecessor cells hold 1-based vertex IDs (NoPredecessor == 0).
//
// Complexity quicksheet:
//   - New*: O(n²) init; At/Set: O(1); Clone: O(n²); Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wdiam/core"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform context and callsite indices.
func denseErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// square is the shared n×n row-major buffer behind Distances and Predecessors.
type square[T comparable] struct {
	n    int // order (rows == cols == n)
	data []T // contiguous row-major storage (len == n*n)
}

// checkOrder rejects orders that are empty or too large to allocate.
func checkOrder(n int) error {
	if n <= 0 {
		return ErrNoVertices
	}
	if n > core.MaxVertices {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, n, core.MaxVertices)
	}

	return nil
}

// inBounds reports whether (i,j) addresses a cell.
func (s *square[T]) inBounds(i, j int) bool {
	return i >= 0 && i < s.n && j >= 0 && j < s.n
}

// Size returns the order n of the matrix.
func (s *square[T]) Size() int { return s.n }

// equal compares two buffers cell by cell.
func (s *square[T]) equal(o *square[T]) bool {
	if s.n != o.n {
		return false
	}
	for k := range s.data {
		if s.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Distances is an n×n matrix of Distance values (W or D).
type Distances struct {
	square[Distance]
}

// Predecessors is an n×n matrix of predecessor vertex IDs (Π or Pre).
type Predecessors struct {
	square[int]
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Distances)(nil)
	_ fmt.Stringer = (*Predecessors)(nil)
)

// NewDistances returns an n×n matrix with every cell Unreachable,
// including the diagonal. Most callers want NewWeights instead.
//
// Errors:
//   - ErrNoVertices if n ≤ 0.
//   - ErrTooLarge if n > core.MaxVertices.
//
// Complexity: Time O(n²), Space O(n²).
func NewDistances(n int) (*Distances, error) {
	if err := checkOrder(n); err != nil {
		return nil, err
	}
	// make() zero-fills; the zero Distance is Unreachable.
	return &Distances{square[Distance]{n: n, data: make([]Distance, n*n)}}, nil
}

// NewPredecessors returns an n×n matrix filled with NoPredecessor.
//
// Errors:
//   - ErrNoVertices if n ≤ 0.
//   - ErrTooLarge if n > core.MaxVertices.
func NewPredecessors(n int) (*Predecessors, error) {
	if err := checkOrder(n); err != nil {
		return nil, err
	}

	return &Predecessors{square[int]{n: n, data: make([]int, n*n)}}, nil
}

// At returns the cell (i, j).
// Returns ErrOutOfRange (wrapped) on invalid indices.
func (d *Distances) At(i, j int) (Distance, error) {
	if !d.inBounds(i, j) {
		return Unreachable, denseErrorf("Distances", ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set assigns the cell (i, j).
// Returns ErrOutOfRange (wrapped) on invalid indices.
func (d *Distances) Set(i, j int, v Distance) error {
	if !d.inBounds(i, j) {
		return denseErrorf("Distances", ctxSet, i, j, ErrOutOfRange)
	}
	d.data[i*d.n+j] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(n²).
func (d *Distances) Clone() *Distances {
	buf := make([]Distance, len(d.data))
	copy(buf, d.data)

	return &Distances{square[Distance]{n: d.n, data: buf}}
}

// Equal reports whether d and o have the same order and identical cells.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.equal(&o.square)
}

// Rows returns a copy of the matrix as nested slices (row-major).
// Handy for JSON encoding and table-driven tests.
func (d *Distances) Rows() [][]Distance {
	out := make([][]Distance, d.n)
	for i := 0; i < d.n; i++ {
		row := make([]Distance, d.n)
		copy(row, d.data[i*d.n:(i+1)*d.n])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer; unreachable cells print as "inf".
func (d *Distances) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(d.data[i*d.n+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// At returns the predecessor vertex ID stored at (i, j).
func (p *Predecessors) At(i, j int) (int, error) {
	if !p.inBounds(i, j) {
		return NoPredecessor, denseErrorf("Predecessors", ctxAt, i, j, ErrOutOfRange)
	}

	return p.data[i*p.n+j], nil
}

// Set stores predecessor vertex ID v at (i, j). v must lie in [0, n].
func (p *Predecessors) Set(i, j, v int) error {
	if !p.inBounds(i, j) {
		return denseErrorf("Predecessors", ctxSet, i, j, ErrOutOfRange)
	}
	if v < NoPredecessor || v > p.n {
		return denseErrorf("Predecessors", ctxSet, i, j, ErrBadPredecessor)
	}
	p.data[i*p.n+j] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(n²).
func (p *Predecessors) Clone() *Predecessors {
	buf := make([]int, len(p.data))
	copy(buf, p.data)

	return &Predecessors{square[int]{n: p.n, data: buf}}
}

// Equal reports whether p and o have the same order and identical cells.
func (p *Predecessors) Equal(o *Predecessors) bool {
	if p == nil || o == nil {
		return p == o
	}

	return p.equal(&o.square)
}

// String implements fmt.Stringer.
func (p *Predecessors) String() string {
	var sb strings.Builder
	for i := 0; i < p.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < p.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", p.data[i*p.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
