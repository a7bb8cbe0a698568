package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
)

// EdmondsKarp computes the maximum flow from source→sink over the routes of
// s, using capacity to turn each route into an arc. It uses the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Parallel routes contribute separate arcs; self-loops are ignored.
//
// Errors:
//   - ErrSourceNotFound / ErrSinkNotFound for unknown IDs.
//   - ErrSameEndpoints if source == sink.
//   - EdgeError for a capacity below -Epsilon.
//   - ctx.Err() on cancellation.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	s *core.Snapshot,
	source, sink string,
	capacity CapacityFunc,
	opts *FlowOptions,
) (float64, error) {
	eps := opts.epsilon()

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
	if capacity == nil {
		capacity = UnitCapacity
	}

	nw := newNetwork(s.Len())
	for j := 0; j < s.EdgeCount(); j++ {
		u, v := s.SourceOf(j), s.TargetOf(j)
		if u == v {
			continue
		}
		e := s.EdgeAt(j)
		c := capacity(e)
		if c < -eps {
			return 0, EdgeError{EdgeID: e.ID, From: e.Source, To: e.Target, Cap: c}
		}
		if c > eps {
			nw.addArc(u, v, c)
		}
	}

	return nw.maxFlow(ctx, src, dst, eps)
}

// EdgeDisjointPaths returns the number of pairwise edge-disjoint directed
// paths from source to sink: the unit-capacity max-flow.
func EdgeDisjointPaths(ctx context.Context, s *core.Snapshot, source, sink string) (int, error) {
	f, err := EdmondsKarp(ctx, s, source, sink, UnitCapacity, nil)
	if err != nil {
		return 0, err
	}
	return int(f + 0.5), nil
}
