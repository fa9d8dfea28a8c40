// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wdiam/builder"
	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/edgelist"
)

// genFlags are the knobs shared by every generator.
type genFlags struct {
	seed      int64
	minWeight int64
	maxWeight int64
	p         float64
	connected bool
}

func (a *app) genCmd() *cobra.Command {
	var gf genFlags
	cmd := &cobra.Command{
		Use:   "gen <path|cycle|star|complete|random> N | gen grid ROWS COLS",
		Short: "Emit a generated edge list",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, cons, err := topology(args, gf)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(n,
				[]core.GraphOption{core.WithDirected(a.cfg.Loader.Directed)},
				[]builder.BuilderOption{
					builder.WithSeed(gf.seed),
					builder.WithUniformWeight(gf.minWeight, gf.maxWeight),
				},
				cons...)
			if err != nil {
				return err
			}
			a.log.Debug("generated", "kind", args[0], "vertices", n, "edges", g.EdgeCount())

			return edgelist.Write(a.stdout, g)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&gf.seed, "seed", 1, "RNG seed for weights and random topologies")
	f.Int64Var(&gf.minWeight, "min-weight", 1, "smallest edge weight")
	f.Int64Var(&gf.maxWeight, "max-weight", 1, "largest edge weight")
	f.Float64Var(&gf.p, "p", 0.1, "edge probability (random)")
	f.BoolVar(&gf.connected, "connected", true, "lay a spanning path under random edges")

	return cmd
}

// topology maps CLI arguments to a vertex count and constructors.
func topology(args []string, gf genFlags) (int, []builder.Constructor, error) {
	if gf.minWeight < 0 || gf.maxWeight < gf.minWeight || gf.maxWeight > core.MaxEdgeWeight {
		return 0, nil, fmt.Errorf("weights: need 0 ≤ min-weight ≤ max-weight ≤ %d", core.MaxEdgeWeight)
	}
	sizes := make([]int, 0, 2)
	for _, s := range args[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, nil, fmt.Errorf("size %q: %w", s, err)
		}
		sizes = append(sizes, v)
	}

	kind := args[0]
	if kind == "grid" {
		if len(sizes) != 2 {
			return 0, nil, fmt.Errorf("grid takes ROWS COLS")
		}
		return sizes[0] * sizes[1], []builder.Constructor{builder.Grid(sizes[0], sizes[1])}, nil
	}
	if len(sizes) != 1 {
		return 0, nil, fmt.Errorf("%s takes N", kind)
	}
	n := sizes[0]

	switch kind {
	case "path":
		return n, []builder.Constructor{builder.Path(n)}, nil
	case "cycle":
		return n, []builder.Constructor{builder.Cycle(n)}, nil
	case "star":
		return n, []builder.Constructor{builder.Star(n)}, nil
	case "complete":
		return n, []builder.Constructor{builder.Complete(n)}, nil
	case "random":
		if gf.connected && n >= builder.MinPathNodes {
			return n, []builder.Constructor{builder.Path(n), builder.RandomSparse(n, gf.p)}, nil
		}
		return n, []builder.Constructor{builder.RandomSparse(n, gf.p)}, nil
	default:
		return 0, nil, fmt.Errorf("unknown topology %q", kind)
	}
}
