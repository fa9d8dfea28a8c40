// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the initializer, the solver and the
// extractor. This file contains ONLY value types (Distance, vertex IDs) and
// their ordering rules; storage lives in impl_dense.go.
package matrix

import "strconv"

// NoPredecessor marks a predecessor cell with no known predecessor
// (i == j, or no path discovered yet). Real vertex IDs start at 1.
const NoPredecessor = 0

// Distance is a shortest-path length tagged with reachability.
// Value is meaningful only when Reachable is true.
//
// Ordering policy:
//   - every reachable distance is strictly less than Unreachable;
//   - Unreachable is not less than Unreachable (they compare equal).
type Distance struct {
	Value     int64 // path length; 0 when unreachable
	Reachable bool  // false ⇒ no path known
}

// Unreachable is the explicit "no path" marker. It replaces a magic
// sentinel weight, so any non-negative int64 remains a legal distance.
var Unreachable = Distance{}

// Finite returns a reachable Distance of length v.
func Finite(v int64) Distance {
	return Distance{Value: v, Reachable: true}
}

// Plus returns d + o. Unreachable absorbs: if either side is unreachable
// the sum is unreachable.
// Complexity: O(1).
func (d Distance) Plus(o Distance) Distance {
	if !d.Reachable || !o.Reachable {
		return Unreachable
	}

	return Distance{Value: d.Value + o.Value, Reachable: true}
}

// Less reports whether d is strictly shorter than o.
func (d Distance) Less(o Distance) bool {
	if !o.Reachable {
		return d.Reachable // finite < unreachable; unreachable ≮ unreachable
	}
	if !d.Reachable {
		return false
	}

	return d.Value < o.Value
}

// LessOrEqual reports whether d ≤ o under the ordering policy above.
func (d Distance) LessOrEqual(o Distance) bool {
	return !o.Less(d)
}

// String renders the value, or "inf" when unreachable.
func (d Distance) String() string {
	if !d.Reachable {
		return "inf"
	}

	return strconv.FormatInt(d.Value, 10)
}
