// SPDX-License-Identifier: MIT
// Package edgelist: Result Writer and graph/matrix serializers.
//
// Result format (four lines, always newline-terminated):
//
//	dmax
//	start end
//	k                  number of vertices on the path
//	v1 v2 … vk         each vertex followed by one space
//
// An unreachable result (PolicySentinel) prints the legacy 9999 and an empty
// path (k = 0, line 4 empty).

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/matrix"
)

// WriteResult emits res in the four-line result format.
func WriteResult(w io.Writer, res *diameter.Result) error {
	if res == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d %d\n%d\n", res.Length(), res.From, res.To, len(res.Path))
	for _, v := range res.Path {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write result: %w", err)
	}

	return nil
}

// Write serializes g as an edge list readable by Read: header "n m", then
// one "u v w" line per connection in (From, To) order. Directed graphs must
// be read back WithDirected.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	edges := g.Edges()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write graph: %w", err)
	}

	return nil
}

// WriteMatrix prints d one row per line, cells separated by a single space;
// unreachable cells print as "inf".
func WriteMatrix(w io.Writer, d *matrix.Distances) error {
	if d == nil {
		return matrix.ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	for _, row := range d.Rows() {
		for j, cell := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(cell.String())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write matrix: %w", err)
	}

	return nil
}
