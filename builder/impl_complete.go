// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: emits i → j for i<j in lexicographic order.
//   - Directed:   emits every ordered pair i ≠ j (i asc, then j asc), each
//     with its own weight draw.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// Complete returns a Constructor that builds K_n on vertices 1..n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodComplete, n); err != nil {
			return err
		}

		directed := g.Directed()
		var i, j int
		for i = 1; i <= n; i++ {
			for j = 1; j <= n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err := addWeighted(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
