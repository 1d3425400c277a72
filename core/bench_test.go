// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkAddEdge measures appending edges from a hub to every other vertex.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1 << 12
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewGraph(n)
		for v := 1; v < n; v++ {
			_ = g.AddEdge(0, v, int64(v))
		}
	}
}

// BenchmarkCountComponents_Chain measures a single BFS over a long chain.
func BenchmarkCountComponents_Chain(b *testing.B) {
	const n = 10000
	g, _ := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(v-1, v, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CountComponents()
	}
}

// BenchmarkCountComponents_Isolated measures the worst case for restarts.
func BenchmarkCountComponents_Isolated(b *testing.B) {
	const n = 10000
	g, _ := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CountComponents()
	}
}
