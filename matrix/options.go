// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the all-pairs solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: results never depend on the worker count.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers runs every generation on the calling goroutine.
const DefaultWorkers = 1

// ProgressFunc observes solver progress: called after generation k of n
// (1 ≤ k ≤ n) has been fully written.
type ProgressFunc func(k, n int)

// Options holds the resolved solver configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	workers  int          // goroutines per generation (≥1)
	logger   hclog.Logger // never nil after gatherOptions
	progress ProgressFunc // optional
}

// Option configures the solver.
type Option func(*Options)

// WithWorkers partitions the rows of each generation across n goroutines.
// A barrier separates generations. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("matrix.WithWorkers: n must be ≥ 1, got %d", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes solver diagnostics to l. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgress installs a hook invoked after each completed generation.
// The hook runs on the solver goroutine; keep it cheap.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.progress = fn }
}

// gatherOptions resolves defaults then applies opts left-to-right.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
