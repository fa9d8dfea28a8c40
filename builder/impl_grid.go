// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c), 0-based, is vertex r*cols + c + 1 (row-major).
//   - For each cell emit Right then Bottom neighbor if present. In directed
//     graphs the reverse edge is added with the same weight so the grid stays
//     symmetric.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// GridVertex returns the vertex ID of cell (r, c) in a grid with cols columns.
func GridVertex(r, c, cols int) int {
	return r*cols + c + 1
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodGrid, rows*cols); err != nil {
			return err
		}

		directed := g.Directed()
		link := func(u, v int) error {
			w := cfg.nextWeight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", MethodGrid, u, v, w, err)
			}
			if directed {
				if err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", MethodGrid, v, u, w, err)
				}
			}

			return nil
		}

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = GridVertex(r, c, cols)
				if c+1 < cols {
					if err := link(u, GridVertex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridVertex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
