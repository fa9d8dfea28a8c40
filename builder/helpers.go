// SPDX-License-Identifier: MIT

// Package builder: helpers shared by constructor implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wdiam/core"
)

// requireVertices checks that g can hold vertices 1..need.
func requireVertices(g *core.Graph, method string, need int) error {
	if have := g.VertexCount(); have < need {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, have, ErrGraphTooSmall)
	}

	return nil
}

// addWeighted draws the next weight and installs u–v.
func addWeighted(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.nextWeight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
