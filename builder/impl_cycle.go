// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → i+1 for i=1..n-1, then the closing edge n → 1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// Cycle returns a Constructor that builds the ring C_n on vertices 1..n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodCycle, n); err != nil {
			return err
		}

		var i int
		for i = 1; i <= n; i++ {
			// i%n+1 wraps n back to 1.
			if err := addWeighted(g, cfg, MethodCycle, i, i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}
