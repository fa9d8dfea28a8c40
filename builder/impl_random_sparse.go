// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires cfg.rng (else ErrNeedRandSource). p ∈ {0,1} is
//     deterministic and runs without an RNG.
//   - Undirected: trials over i<j; directed: over all ordered pairs i≠j.
//     Trial order is i asc, then j asc. An accepted trial draws its weight
//     immediately after, from the same RNG stream.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over vertices 1..n with independent edge probability p. The result is not
// necessarily connected; overlay Path(n) first when connectivity matters.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := requireVertices(g, MethodRandomSparse, n); err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		directed := g.Directed()
		var (
			i, j int
			keep bool
		)
		for i = 1; i <= n; i++ {
			for j = 1; j <= n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				keep = p == MaxProbability || cfg.rng.Float64() < p
				if !keep {
					continue
				}
				if err := addWeighted(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
