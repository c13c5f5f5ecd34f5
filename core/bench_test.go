package core_test

import (
	"testing"

	"github.com/katalvlaran/hampath/core"
)

// benchGraph builds an undirected complete graph on n vertices.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := core.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

// BenchmarkAddEdge measures edge insertion on a 1,000-vertex graph.
// Each iteration re-inserts an existing edge, exercising the idempotent path.
func BenchmarkAddEdge(b *testing.B) {
	g, err := core.New(1000)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%999, (i%999)+1)
	}
}

// BenchmarkNeighbors_K100 measures the degree-ordered neighbor query on K_100,
// where every vertex has 99 neighbors to collect and sort.
func BenchmarkNeighbors_K100(b *testing.B) {
	g := benchGraph(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(i % 100)
	}
}

// BenchmarkHasEdge_K100 measures the O(1) adjacency probe.
func BenchmarkHasEdge_K100(b *testing.B) {
	g := benchGraph(b, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(i%100, (i+1)%100)
	}
}
