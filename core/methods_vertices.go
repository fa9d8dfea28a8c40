// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex queries over the fixed set {1,…,n}: VertexCount, HasVertex,
//       Neighbors, Degree, Directed.
// Determinism:
//   - Neighbors() returns IDs sorted ascending.

package core

import "sort"

// VertexCount returns n. Complexity: O(1).
func (g *Graph) VertexCount() int {
	// n is immutable; no lock needed.
	return g.n
}

// HasVertex reports whether id lies in [1, n]. Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 1 && id <= g.n
}

// Directed reports the orientation policy fixed at construction.
func (g *Graph) Directed() bool {
	return g.directed
}

// Neighbors returns the sorted IDs reachable from id by one edge.
// A vertex with no outgoing edges yields an empty slice.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if err := g.validateEndpoint(id); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.adjacency[id]
	out := make([]int, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of outgoing connections of id
// (a self-loop counts once).
func (g *Graph) Degree(id int) (int, error) {
	if err := g.validateEndpoint(id); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id]), nil
}
