// SPDX-License-Identifier: MIT
// Package: wdiam/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go and place their vertices on IDs 1..k.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors in BuildGraph to overlay topologies on one vertex set
//     (e.g. Path(n) plus RandomSparse(n, p) gives a connected random graph).
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, UniformWeightFn).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph's directedness.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new n-vertex core.Graph with graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - core.ErrNoVertices / core.ErrTooManyVertices from graph creation.
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrGraphTooSmall, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}
