// SPDX-License-Identifier: MIT

// Command wdiam computes the weighted diameter of a graph: the pair of
// vertices with the largest shortest-path distance, and the path between them.
//
//	wdiam < graph.txt          four result lines on stdout
//	wdiam matrix graph.txt     full distance matrix
//	wdiam gen grid 4 5         generated edge list
//	wdiam serve                HTTP service
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.root().ExecuteContext(ctx); err != nil {
		a.log.Error("wdiam failed", "error", err)
		stop()
		os.Exit(1)
	}
}
