// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types over a fixed,
// contiguous vertex set {1,…,n}, and provides thread-safe primitives for
// building and querying weighted graphs.
//
// All core APIs use a single sync.RWMutex internally, so a Graph may be
// populated by one goroutine and read by many.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNoVertices        - vertex count is zero or negative.
//	ErrVertexOutOfRange  - vertex ID outside [1, n].
//	ErrNegativeWeight    - edge weight below zero.
//	ErrWeightTooLarge    - edge weight above MaxEdgeWeight.
//	ErrEdgeNotFound      - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// MaxEdgeWeight bounds a single edge weight so that the length of any simple
// path (at most n-1 edges, n ≤ MaxVertices) fits into int64.
const MaxEdgeWeight int64 = 1<<32 - 1

// MaxVertices is the hard ceiling on the vertex count. A solve keeps several
// dense n×n matrices alive (about 72 bytes per cell), so 4096 vertices
// already need over a gigabyte.
const MaxVertices = 1 << 12

// Sentinel errors for core graph operations.
var (
	// ErrNoVertices indicates a graph was requested with n ≤ 0.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrTooManyVertices indicates n exceeds MaxVertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrVertexOutOfRange indicates a vertex ID outside [1, n].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above MaxEdgeWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge represents a weighted connection between two vertices.
//
// For undirected graphs Edges() reports each connection once with From < To
// (self-loops with From == To).
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected; default false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory weighted graph over vertices 1..n.
//
// adjacency[u][v] holds the weight of the edge u→v. Undirected graphs store
// both orientations. Parallel edges collapse: the last AddEdge wins.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed bool // edge orientation policy
	n        int  // vertex count; immutable after construction

	edgeCount int                   // distinct connections (mirrors not counted)
	adjacency map[int]map[int]int64 // from → to → weight
}

// NewGraph creates an empty Graph over vertices {1,…,n}.
// By default, Graph is undirected.
// Complexity: O(1)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoVertices
	}
	if n > MaxVertices {
		return nil, ErrTooManyVertices
	}
	g := &Graph{
		n:         n,
		adjacency: make(map[int]map[int]int64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
