// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wdiam/edgelist"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Print the diameter, its endpoints and the path (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args)
			if err != nil {
				return err
			}
			defer in.Close()

			p, err := a.pipeline(0)
			if err != nil {
				return err
			}
			out, err := p.Run(cmd.Context(), in)
			if err != nil {
				return err
			}

			return edgelist.WriteResult(a.stdout, out.Result)
		},
	}
}
