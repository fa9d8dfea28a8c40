// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is CenterVertex (1); leaves are 2..n; emits 1 → leaf in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := requireVertices(g, MethodStar, n); err != nil {
			return err
		}

		var leaf int
		for leaf = CenterVertex + 1; leaf <= n; leaf++ {
			if err := addWeighted(g, cfg, MethodStar, CenterVertex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
