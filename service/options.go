// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/edgelist"
)

// Options holds the resolved pipeline configuration.
type Options struct {
	workers     int
	policy      diameter.Policy
	maxErrors   int
	maxVertices int
	directed    bool
	cacheSize   int
	logger      hclog.Logger
}

// Option configures a Pipeline.
type Option func(*Options)

// WithWorkers sets the solver's per-generation goroutine count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("service.WithWorkers: n must be ≥ 1, got %d", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithPolicy selects the disconnected-graph policy.
func WithPolicy(p diameter.Policy) Option {
	return func(o *Options) { o.policy = p }
}

// WithMaxErrors bounds loader error aggregation. Panics if k < 1.
func WithMaxErrors(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("service.WithMaxErrors: k must be ≥ 1, got %d", k))
	}

	return func(o *Options) { o.maxErrors = k }
}

// WithMaxVertices rejects inputs declaring more than k vertices.
// Panics if k is outside [1, core.MaxVertices].
func WithMaxVertices(k int) Option {
	if k < 1 || k > core.MaxVertices {
		panic(fmt.Sprintf("service.WithMaxVertices: k must be in [1, %d], got %d", core.MaxVertices, k))
	}

	return func(o *Options) { o.maxVertices = k }
}

// WithDirected reads edge lists as directed graphs.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithCacheSize keeps up to n outcomes; 0 disables caching. Panics if n < 0.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("service.WithCacheSize: n must be ≥ 0, got %d", n))
	}

	return func(o *Options) { o.cacheSize = n }
}

// WithLogger routes pipeline logs to l. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     1,
		policy:      diameter.PolicyExclude,
		maxErrors:   edgelist.DefaultMaxErrors,
		maxVertices: edgelist.DefaultMaxVertices,
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
