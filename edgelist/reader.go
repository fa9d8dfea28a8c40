// SPDX-License-Identifier: MIT
// Package edgelist: Graph Loader.
//
// Purpose:
//   - Turn the whitespace-separated edge-list text into a core.Graph.
//   - Report every malformed line at once (bounded), not just the first.
//
// Contract:
//   - Exactly one header line ("n m"); it may appear anywhere.
//   - Edge lines before the header are buffered and applied once n is known.
//   - Validation of endpoints and weights is delegated to core.Graph.AddEdge,
//     so core.ErrVertexOutOfRange / core.ErrNegativeWeight surface unchanged.
//
// AI-Hints:
//   - Pass WithLogger(hclog.L().Named("loader")) to see m-mismatch warnings.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/wdiam/core"
)

// Token counts that classify a line.
const (
	headerTokens = 2
	edgeTokens   = 3
)

// commentPrefix starts a skipped line.
const commentPrefix = "#"

// pendingEdge is an edge line parsed before it can be applied.
type pendingEdge struct {
	line int
	u, v int
	w    int64
}

// header is the parsed "n m" line.
type header struct {
	line int
	n, m int
}

// collector accumulates line errors up to a bound.
type collector struct {
	err   *multierror.Error
	count int
	limit int
}

// add records err for line; reports false once the bound is reached.
func (c *collector) add(line int, err error) bool {
	c.err = multierror.Append(c.err, &LineError{Line: line, Err: err})
	c.count++

	return c.count < c.limit
}

// Read parses an edge list from r and returns the populated graph.
//
// Errors (aggregated with go-multierror, each wrapped in *LineError where a
// line applies): ErrMalformedLine, ErrBadToken, ErrDuplicateHeader,
// ErrMissingHeader, core.ErrNoVertices, core.ErrTooManyVertices (n above
// WithMaxVertices, default DefaultMaxVertices),
// core.ErrVertexOutOfRange, core.ErrNegativeWeight, core.ErrWeightTooLarge.
// An I/O failure from r is returned wrapped, without aggregation.
//
// Complexity: O(L + E) for L input lines and E edges.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := gatherOptions(opts...)
	log := cfg.logger.Named("edgelist")

	var (
		hdr     *header
		edges   []pendingEdge
		errs    = &collector{limit: cfg.maxErrors}
		lineNo  int
		fields  []string
		stopped bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for !stopped && sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		fields = strings.Fields(text)

		switch len(fields) {
		case headerTokens:
			if hdr != nil {
				stopped = !errs.add(lineNo, fmt.Errorf("first header on line %d: %w", hdr.line, ErrDuplicateHeader))
				continue
			}
			h, err := parseHeader(fields)
			if err != nil {
				stopped = !errs.add(lineNo, err)
				continue
			}
			h.line = lineNo
			hdr = &h

		case edgeTokens:
			e, err := parseEdge(fields)
			if err != nil {
				stopped = !errs.add(lineNo, err)
				continue
			}
			e.line = lineNo
			edges = append(edges, e)

		default:
			stopped = !errs.add(lineNo, fmt.Errorf("%d tokens: %w", len(fields), ErrMalformedLine))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if stopped {
		log.Warn("error limit reached, input not fully read", "limit", cfg.maxErrors, "line", lineNo)
		return nil, errs.err.ErrorOrNil()
	}
	if hdr == nil {
		return nil, multierror.Append(errs.err, ErrMissingHeader).ErrorOrNil()
	}

	if hdr.n > cfg.maxVertices {
		errs.add(hdr.line, fmt.Errorf("n=%d exceeds limit %d: %w", hdr.n, cfg.maxVertices, core.ErrTooManyVertices))
		return nil, errs.err.ErrorOrNil()
	}

	g, err := core.NewGraph(hdr.n, core.WithDirected(cfg.directed))
	if err != nil {
		errs.add(hdr.line, err)
		return nil, errs.err.ErrorOrNil()
	}
	for _, e := range edges {
		if err = g.AddEdge(e.u, e.v, e.w); err != nil {
			if !errs.add(e.line, err) {
				break
			}
		}
	}
	if merr := errs.err.ErrorOrNil(); merr != nil {
		return nil, merr
	}

	if hdr.m != len(edges) {
		log.Warn("declared edge count differs from edge lines", "declared", hdr.m, "found", len(edges))
	}
	log.Debug("graph loaded", "vertices", hdr.n, "edge_lines", len(edges), "directed", cfg.directed)

	return g, nil
}

// parseHeader reads "n m"; both must be non-negative integers.
func parseHeader(fields []string) (header, error) {
	n, err := parseCount(fields[0])
	if err != nil {
		return header{}, err
	}
	m, err := parseCount(fields[1])
	if err != nil {
		return header{}, err
	}

	return header{n: n, m: m}, nil
}

// parseEdge reads "u v w". Range checks are left to core.
func parseEdge(fields []string) (pendingEdge, error) {
	u, err := parseInt(fields[0])
	if err != nil {
		return pendingEdge{}, err
	}
	v, err := parseInt(fields[1])
	if err != nil {
		return pendingEdge{}, err
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return pendingEdge{}, fmt.Errorf("weight %q: %w", fields[2], ErrBadToken)
	}

	return pendingEdge{u: u, v: v, w: w}, nil
}

func parseInt(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadToken)
	}

	return v, nil
}

func parseCount(tok string) (int, error) {
	v, err := parseInt(tok)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative: %w", tok, ErrBadToken)
	}

	return v, nil
}
