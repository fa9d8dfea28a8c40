// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under the write lock; read queries under the read lock.
// AI-HINT (file):
//   - Re-adding an existing edge overwrites its weight (last write wins).
//   - Undirected graphs mirror every edge; Weight(u,v) == Weight(v,u).

package core

import (
	"fmt"
	"sort"
)

// validateEndpoint checks that id lies in [1, n].
func (g *Graph) validateEndpoint(id int) error {
	if id < 1 || id > g.n {
		return fmt.Errorf("vertex %d not in [1,%d]: %w", id, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge installs the edge from→to with the given weight. In undirected
// graphs the mirror to→from is installed as well. An existing edge between
// the same endpoints is overwritten.
//
// Steps:
//  1. Validate endpoints and weight.
//  2. Lock, count a new connection if none existed.
//  3. Store from→to; mirror when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Input validation
	if err := g.validateEndpoint(from); err != nil {
		return err
	}
	if err := g.validateEndpoint(to); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("edge %d→%d weight=%d: %w", from, to, weight, ErrNegativeWeight)
	}
	if weight > MaxEdgeWeight {
		return fmt.Errorf("edge %d→%d weight=%d: %w", from, to, weight, ErrWeightTooLarge)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		g.edgeCount++
	}
	g.link(from, to, weight)

	// 3) Mirror undirected
	if !g.directed && from != to {
		g.link(to, from, weight)
	}

	return nil
}

// link stores from→to; caller holds the write lock.
func (g *Graph) link(from, to int, weight int64) {
	row, ok := g.adjacency[from]
	if !ok {
		row = make(map[int]int64)
		g.adjacency[from] = row
	}
	row[to] = weight
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected).
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return fmt.Errorf("edge %d→%d: %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adjacency[from], to)
	if !g.directed {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to int) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns every stored connection sorted by (From, To).
// Undirected graphs report each connection once, with From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, row := range g.adjacency {
		for to, w := range row {
			if !g.directed && to < from {
				continue // reported via its mirror
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct connections (mirrors not counted).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
