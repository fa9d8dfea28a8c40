// SPDX-License-Identifier: MIT

// Package edgelist reads and writes the plain-text formats of wdiam.
//
// Input (edge list):
//
//	n m          header: vertex count and declared edge count (exactly 2 integers)
//	u v w        one edge per line (exactly 3 integers), 1 ≤ u,v ≤ n, w ≥ 0
//
// The header may appear on any line; edges seen before it are buffered.
// Blank lines and lines starting with '#' are skipped. m is informational:
// a mismatch with the number of edge lines is logged, not rejected.
// Edges are undirected unless WithDirected is given; duplicate edges keep
// the last weight.
//
// Line-level problems are collected (hashicorp/go-multierror) up to
// WithMaxErrors and returned together, each prefixed with its line number.
// Use errors.Is against the sentinels of this package and of core.
//
// Output (result): four lines, see WriteResult.
package edgelist
