// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/matrix"
)

// ExampleAPSP solves a small undirected graph and prints both matrices.
func ExampleAPSP() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(1, 3, 5)

	d, pre, err := matrix.APSP(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < d.Size(); i++ {
		for j := 0; j < d.Size(); j++ {
			if j > 0 {
				fmt.Print(" ")
			}
			dist, _ := d.At(i, j)
			p, _ := pre.At(i, j)
			fmt.Printf("%s/%d", dist, p)
		}
		fmt.Println()
	}

	// Output:
	// 0/0 1/1 2/2
	// 1/2 0/0 1/2
	// 2/2 1/3 0/0
}

// ExampleFromRows shows an unreachable cell surviving the solve.
func ExampleFromRows() {
	three := int64(3)
	w, _ := matrix.FromRows([][]*int64{
		{nil, &three},
		{nil, nil},
	})
	pi, _ := matrix.InitPredecessors(w)
	d, _, _ := matrix.FloydWarshall(context.Background(), w, pi)

	for _, row := range d.Rows() {
		fmt.Println(row[0], row[1])
	}

	// Output:
	// 0 3
	// inf 0
}
