package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N + 1)
	for v := 0; v < N; v++ {
		_ = g.AddEdge(v, v+1, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10 (1023 vertices).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	n := (1 << depth) - 1

	g, _ := core.NewGraph(n)
	// parent p has children 2p+1 and 2p+2
	for p := 0; 2*p+2 < n; p++ {
		_ = g.AddEdge(p, 2*p+1, 1)
		_ = g.AddEdge(p, 2*p+2, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
