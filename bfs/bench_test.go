package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/supplynet/bfs"
	"github.com/katalvlaran/supplynet/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithSizeHint(N+1, N))
	for i := 0; i <= N; i++ {
		_ = g.AddNode(core.Node{ID: fmt.Sprintf("v%d", i)})
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(core.Edge{ID: fmt.Sprintf("e%d", i), Source: fmt.Sprintf("v%d", i), Target: fmt.Sprintf("v%d", i+1)})
	}
	s := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, "v0")
	}
}
