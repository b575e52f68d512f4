package mst_test

import (
	"math/rand"
	"testing"

	"github.com/solvekit/solvekit/core"
	"github.com/solvekit/solvekit/mst"
)

// buildBenchGraph returns a connected random graph with n vertices and
// roughly 4n edges, deterministic across runs.
func buildBenchGraph(n int) *core.WeightedGraph[int] {
	r := rand.New(rand.NewSource(42))
	g := core.NewWeightedGraph[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i, float64(1+r.Intn(100)))
	}
	for k := 0; k < 3*n; k++ {
		u, v := r.Intn(n), r.Intn(n)
		if u != v {
			_ = g.AddEdge(u, v, float64(1+r.Intn(100)))
		}
	}

	return g
}

func BenchmarkPrim(b *testing.B) {
	g := buildBenchGraph(2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, 0)
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := buildBenchGraph(2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}
