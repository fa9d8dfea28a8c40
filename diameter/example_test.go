// SPDX-License-Identifier: MIT
package diameter_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wdiam/builder"
	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/matrix"
)

// ExampleFind finds the worst-case latency between two sites of a small
// fiber backbone.
//
// Scenario:
//
//	Six sites (1–6) joined by links with latencies in milliseconds.
//
//	      [1]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [2]---1---[3]
//	  | \        \10
//	5 |  \5      [5]
//	  |   \        \3
//	 [4]---6------[6]
//
// The slowest pair is 1 → 5: the direct 3–5 link (10) loses to the detour
// through 2 and 6.
func ExampleFind() {
	g, _ := core.NewGraph(6)
	for _, e := range [][3]int64{
		{1, 2, 4}, {1, 3, 2}, {2, 3, 1}, {2, 4, 5},
		{2, 6, 5}, {3, 5, 10}, {4, 6, 6}, {5, 6, 3},
	} {
		_ = g.AddEdge(int(e[0]), int(e[1]), e[2])
	}

	d, pre, err := matrix.APSP(context.Background(), g)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := diameter.Find(d, pre)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.From, "→", res.To, "in", res.Length(), "ms")
	fmt.Println(res.Path)

	// Output:
	// 1 → 5 in 11 ms
	// [1 3 2 6 5]
}

// ExampleFind_ring shows the tie rule on a six-vertex ring: every opposite
// pair is at distance 3 and the first one in scan order wins.
func ExampleFind_ring() {
	g, _ := builder.BuildGraph(6, nil, nil, builder.Cycle(6))
	d, pre, _ := matrix.APSP(context.Background(), g)
	res, _ := diameter.Find(d, pre)

	fmt.Println(res.Pair.From, res.Pair.To, res.Length(), res.Path)

	// Output:
	// 1 4 3 [1 2 3 4]
}
