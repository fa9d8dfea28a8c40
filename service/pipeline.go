// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/edgelist"
	"github.com/katalvlaran/wdiam/matrix"
)

// Outcome is the answer for one graph. Result may be shared with the cache
// and must be treated as read-only.
type Outcome struct {
	Result   *diameter.Result
	Vertices int
	Digest   string // canonical input digest, the cache key
	Cached   bool
}

// Pipeline runs load → solve → extract. Safe for concurrent use.
type Pipeline struct {
	opts  Options
	log   hclog.Logger
	cache *lru.Cache[string, Outcome] // nil when caching is disabled
}

// New builds a Pipeline.
func New(opts ...Option) (*Pipeline, error) {
	o := gatherOptions(opts...)
	p := &Pipeline{opts: o, log: o.logger.Named("pipeline")}
	if o.cacheSize > 0 {
		c, err := lru.New[string, Outcome](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("service: cache: %w", err)
		}
		p.cache = c
	}

	return p, nil
}

// Run reads an edge list from r and returns its farthest pair and path.
//
// Errors: ErrBadInput (wrapping the loader error), diameter.ErrNoReachablePair,
// diameter.ErrDisconnected, and ctx.Err() (wrapped) when the solver is cut.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (*Outcome, error) {
	loadOpts := []edgelist.Option{
		edgelist.WithMaxErrors(p.opts.maxErrors),
		edgelist.WithMaxVertices(p.opts.maxVertices),
		edgelist.WithLogger(p.log),
	}
	if p.opts.directed {
		loadOpts = append(loadOpts, edgelist.WithDirected())
	}
	g, err := edgelist.Read(r, loadOpts...)
	if err != nil {
		runsTotal.WithLabelValues(outcomeBadInput).Inc()
		return nil, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return p.Solve(ctx, g)
}

// Solve answers for an already-built graph, consulting the cache first.
func (p *Pipeline) Solve(ctx context.Context, g *core.Graph) (*Outcome, error) {
	digest, err := p.digest(g)
	if err != nil {
		runsTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}
	if p.cache != nil {
		if hit, ok := p.cache.Get(digest); ok {
			runsTotal.WithLabelValues(outcomeCached).Inc()
			p.log.Debug("cache hit", "digest", digest[:12])
			hit.Cached = true
			return &hit, nil
		}
	}

	start := time.Now()
	d, pre, err := matrix.APSP(ctx, g, matrix.WithWorkers(p.opts.workers), matrix.WithLogger(p.log))
	if err != nil {
		runsTotal.WithLabelValues(classify(err)).Inc()
		return nil, err
	}
	res, err := diameter.Find(d, pre, diameter.WithPolicy(p.opts.policy))
	if err != nil {
		runsTotal.WithLabelValues(classify(err)).Inc()
		return nil, err
	}
	elapsed := time.Since(start)
	solveDuration.Observe(elapsed.Seconds())
	graphVertices.Observe(float64(g.VertexCount()))
	runsTotal.WithLabelValues(outcomeOK).Inc()
	p.log.Debug("solved", "vertices", g.VertexCount(), "distance", res.Length(), "elapsed", elapsed)

	out := Outcome{Result: res, Vertices: g.VertexCount(), Digest: digest}
	if p.cache != nil {
		p.cache.Add(digest, out)
		cacheEntries.Set(float64(p.cache.Len()))
	}

	return &out, nil
}

// digest hashes the canonical edge list together with the answer-shaping options.
func (p *Pipeline) digest(g *core.Graph) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "directed=%t policy=%s\n", g.Directed(), p.opts.policy)
	if err := edgelist.Write(h, g); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// classify maps a solve error to its metric outcome.
func classify(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return outcomeCanceled
	case errors.Is(err, diameter.ErrNoReachablePair), errors.Is(err, diameter.ErrDisconnected):
		return outcomeNoPair
	default:
		return outcomeError
	}
}
