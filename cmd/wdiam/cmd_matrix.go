// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wdiam/edgelist"
	"github.com/katalvlaran/wdiam/matrix"
)

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix [file]",
		Short: "Print the all-pairs shortest-path distance matrix (inf = unreachable)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args)
			if err != nil {
				return err
			}
			defer in.Close()

			opts := []edgelist.Option{
				edgelist.WithMaxErrors(a.cfg.Loader.MaxErrors),
				edgelist.WithMaxVertices(a.cfg.Loader.MaxVertices),
				edgelist.WithLogger(a.log),
			}
			if a.cfg.Loader.Directed {
				opts = append(opts, edgelist.WithDirected())
			}
			g, err := edgelist.Read(in, opts...)
			if err != nil {
				return err
			}
			d, _, err := matrix.APSP(cmd.Context(), g,
				matrix.WithWorkers(a.cfg.Solver.Workers), matrix.WithLogger(a.log))
			if err != nil {
				return err
			}

			return edgelist.WriteMatrix(a.stdout, d)
		},
	}
}
