// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i → i+1 for i=1..n-1 in stable increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// Path returns a Constructor that builds a simple path P_n on vertices 1..n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodPath, n); err != nil {
			return err
		}

		var i int // left endpoint of the current segment
		for i = 1; i < n; i++ {
			if err := addWeighted(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
