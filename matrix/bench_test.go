package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/wdiam/core"
	"github.com/katalvlaran/wdiam/matrix"
)

// benchGraph returns a ring with deterministic chords.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		b.Fatalf("NewGraph(%d): %v", n, err)
	}
	for u := 1; u <= n; u++ {
		_ = g.AddEdge(u, u%n+1, int64(u%7+1))
		_ = g.AddEdge(u, (u*13)%n+1, int64(u%11+1))
	}

	return g
}

func BenchmarkFloydWarshall(b *testing.B) {
	for _, n := range []int{64, 256} {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				w, pi, err := matrix.BuildWeights(benchGraph(b, n))
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, _, err = matrix.FloydWarshall(context.Background(), w, pi, matrix.WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
