package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
)

// LocalNodeConnectivity returns the number of internally node-disjoint paths
// between source and sink in the undirected projection of s.
//
// Every node i is split into i_in → i_out with capacity 1 and every projected
// edge {u,v} becomes u_out → v_in and v_out → u_in with capacity 1; flow is
// pushed from source_out to sink_in. A direct edge between the two endpoints
// therefore counts as one path.
func LocalNodeConnectivity(ctx context.Context, s *core.Snapshot, source, sink string) (int, error) {
	src, ok := s.Index(source)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	dst, ok := s.Index(sink)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if src == dst {
		return 0, fmt.Errorf("%w: %q", ErrSameEndpoints, source)
	}

	return localNodeConnectivity(ctx, s.UndirectedAdjacency(), src, dst)
}

// AverageNodeConnectivity returns the mean local node connectivity over all
// unordered pairs of distinct nodes in the undirected projection of s.
// Disconnected pairs contribute 0.
//
// Errors: ErrTooFewNodes for fewer than two nodes, ctx.Err() on cancellation.
// Complexity: O(V² · flow) with flow bounded by the minimum degree.
func AverageNodeConnectivity(ctx context.Context, s *core.Snapshot) (float64, error) {
	n := s.Len()
	if n < 2 {
		return 0, ErrTooFewNodes
	}

	adj := s.UndirectedAdjacency()
	comp := componentOf(adj)

	var sum, pairs int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			pairs++
			if comp[u] != comp[v] {
				continue
			}
			k, err := localNodeConnectivity(ctx, adj, u, v)
			if err != nil {
				return 0, err
			}
			sum += k
		}
	}

	return float64(sum) / float64(pairs), nil
}

// EdgeConnectivity returns the global edge connectivity λ of the undirected
// projection of s: the minimum number of edges whose removal disconnects it.
// A disconnected projection yields 0.
//
// For an undirected graph λ = min over v ≠ r of λ(r, v) for any fixed r; the
// first node in store order is used as r.
//
// Errors: ErrTooFewNodes for fewer than two nodes, ctx.Err() on cancellation.
func EdgeConnectivity(ctx context.Context, s *core.Snapshot) (int, error) {
	n := s.Len()
	if n < 2 {
		return 0, ErrTooFewNodes
	}

	adj := s.UndirectedAdjacency()
	best := -1
	for v := 1; v < n; v++ {
		k, err := localEdgeConnectivity(ctx, adj, 0, v)
		if err != nil {
			return 0, err
		}
		if best < 0 || k < best {
			best = k
		}
		if best == 0 {
			break
		}
	}

	return best, nil
}

// LocalEdgeConnectivity returns the number of edge-disjoint paths between
// source and sink in the undirected projection of s. Antiparallel and
// parallel routes collapse into a single undirected edge first.
func LocalEdgeConnectivity(ctx context.Context, s *core.Snapshot, source, sink string) (int, error) {
	src, ok := s.Index(source)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	dst, ok := s.Index(sink)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrSinkNotFound, sink)
	}
	if src == dst {
		return 0, fmt.Errorf("%w: %q", ErrSameEndpoints, source)
	}

	return localEdgeConnectivity(ctx, s.UndirectedAdjacency(), src, dst)
}

// localEdgeConnectivity models every undirected edge as two opposite unit arcs.
func localEdgeConnectivity(ctx context.Context, adj [][]int, src, dst int) (int, error) {
	nw := newNetwork(len(adj))
	for u := range adj {
		for _, w := range adj[u] {
			nw.addArc(u, w, 1)
		}
	}
	f, err := nw.maxFlow(ctx, src, dst, 1e-9)
	if err != nil {
		return 0, err
	}
	return int(f + 0.5), nil
}

func localNodeConnectivity(ctx context.Context, adj [][]int, src, dst int) (int, error) {
	n := len(adj)
	nw := newNetwork(2 * n)
	in := func(i int) int { return 2 * i }
	out := func(i int) int { return 2*i + 1 }

	for i := 0; i < n; i++ {
		nw.addArc(in(i), out(i), 1)
	}
	for u := 0; u < n; u++ {
		for _, v := range adj[u] {
			nw.addArc(out(u), in(v), 1)
		}
	}

	f, err := nw.maxFlow(ctx, out(src), in(dst), 1e-9)
	if err != nil {
		return 0, err
	}
	return int(f + 0.5), nil
}

// componentOf labels every node with the index of its connected component.
func componentOf(adj [][]int) []int {
	comp := make([]int, len(adj))
	for i := range comp {
		comp[i] = -1
	}
	label := 0
	for root := range adj {
		if comp[root] >= 0 {
			continue
		}
		comp[root] = label
		stack := []int{root}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if comp[v] < 0 {
					comp[v] = label
					stack = append(stack, v)
				}
			}
		}
		label++
	}
	return comp
}
