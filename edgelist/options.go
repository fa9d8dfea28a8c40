// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/wdiam/core"
)

// DefaultMaxErrors bounds how many line errors Read collects before giving up.
const DefaultMaxErrors = 10

// DefaultMaxVertices caps the header's n. The dense solver needs O(n²)
// memory, so the header alone must not be able to demand gigabytes.
const DefaultMaxVertices = 2048

// maxLineBytes is the longest accepted input line.
const maxLineBytes = 1 << 20

// Options holds the resolved loader configuration.
type Options struct {
	maxErrors   int
	maxVertices int
	directed    bool
	logger      hclog.Logger
}

// Option configures Read.
type Option func(*Options)

// WithMaxErrors stops reading after k collected errors. Panics if k < 1.
func WithMaxErrors(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("edgelist.WithMaxErrors: k must be ≥ 1, got %d", k))
	}

	return func(o *Options) { o.maxErrors = k }
}

// WithMaxVertices rejects headers declaring more than k vertices.
// Panics if k is outside [1, core.MaxVertices].
func WithMaxVertices(k int) Option {
	if k < 1 || k > core.MaxVertices {
		panic(fmt.Sprintf("edgelist.WithMaxVertices: k must be in [1, %d], got %d", core.MaxVertices, k))
	}

	return func(o *Options) { o.maxVertices = k }
}

// WithDirected installs each edge u→v only, without the mirror v→u.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithLogger routes loader warnings to l. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxErrors:   DefaultMaxErrors,
		maxVertices: DefaultMaxVertices,
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
