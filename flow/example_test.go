package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/flow"
)

// ExampleEdgeDisjointPaths counts independent routes from a port to a store.
//
//	port→dc1→store
//	port→dc2→store
//	dc1→dc2
func ExampleEdgeDisjointPaths() {
	g := core.NewGraph()
	for _, id := range []string{"port", "dc1", "dc2", "store"} {
		_ = g.AddNode(core.Node{ID: id})
	}
	_ = g.AddEdge(core.Edge{ID: "a", Source: "port", Target: "dc1"})
	_ = g.AddEdge(core.Edge{ID: "b", Source: "port", Target: "dc2"})
	_ = g.AddEdge(core.Edge{ID: "c", Source: "dc1", Target: "store"})
	_ = g.AddEdge(core.Edge{ID: "d", Source: "dc2", Target: "store"})
	_ = g.AddEdge(core.Edge{ID: "e", Source: "dc1", Target: "dc2"})

	k, _ := flow.EdgeDisjointPaths(context.Background(), g.Snapshot(), "port", "store")
	fmt.Println(k)
	// Output:
	// 2
}

// ExampleEdmondsKarp pushes flow limited by route cost used as capacity.
func ExampleEdmondsKarp() {
	g := core.NewGraph()
	for _, id := range []string{"s", "a", "b", "t"} {
		_ = g.AddNode(core.Node{ID: id})
	}
	_ = g.AddEdge(core.Edge{ID: "sa", Source: "s", Target: "a", Cost: 3})
	_ = g.AddEdge(core.Edge{ID: "at", Source: "a", Target: "t", Cost: 2})
	_ = g.AddEdge(core.Edge{ID: "sb", Source: "s", Target: "b", Cost: 2})
	_ = g.AddEdge(core.Edge{ID: "bt", Source: "b", Target: "t", Cost: 3})

	capacity := func(e core.Edge) float64 { return e.Cost }
	mf, _ := flow.EdmondsKarp(context.Background(), g.Snapshot(), "s", "t", capacity, nil)
	fmt.Println(mf)
	// Output:
	// 4
}
