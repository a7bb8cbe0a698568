// SPDX-License-Identifier: MIT
//
// File: centrality.go
// Role: Node importance measures on hop counts: Brandes betweenness and
//       outward closeness.
// Determinism:
//   - Sources are processed in store order; sums are exact on small integers,
//     so scores are reproducible for a given snapshot.
// Concurrency:
//   - Pure functions over an immutable *core.Snapshot.

// Package centrality computes betweenness and closeness centrality over the
// directed, unweighted view of a logistics network snapshot.
package centrality

import (
	"context"
	"sort"

	"github.com/katalvlaran/supplynet/bfs"
	"github.com/katalvlaran/supplynet/core"
)

// Score pairs a node ID with a centrality value.
type Score struct {
	ID    string
	Value float64
}

// Betweenness returns, for every node, the fraction of shortest directed
// paths between other ordered pairs that pass through it (Brandes).
//
// Path lengths are hop counts. Scores are normalized by (N−1)(N−2); for
// N ≤ 2 the raw (all-zero) sums are returned unscaled.
//
// Complexity: O(V·E) time, O(V + E) memory.
func Betweenness(ctx context.Context, s *core.Snapshot) (map[string]float64, error) {
	n := s.Len()
	cb := make([]float64, n)

	b := newBrandes(s)
	for src := 0; src < n; src++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.accumulate(src, cb)
	}

	scale := 1.0
	if n > 2 {
		scale = 1 / float64((n-1)*(n-2))
	}

	out := make(map[string]float64, n)
	for i, v := range cb {
		out[s.NodeAt(i).ID] = v * scale
	}
	return out, nil
}

// brandes holds per-source scratch buffers reused across sources.
type brandes struct {
	snap  *core.Snapshot
	sigma []float64 // number of shortest paths from the source
	dist  []int     // hop count, -1 when unreached
	delta []float64 // dependency accumulator
	preds [][]int   // shortest-path predecessors
	stack []int     // nodes in non-decreasing distance
	queue []int
}

func newBrandes(s *core.Snapshot) *brandes {
	n := s.Len()
	return &brandes{
		snap:  s,
		sigma: make([]float64, n),
		dist:  make([]int, n),
		delta: make([]float64, n),
		preds: make([][]int, n),
		stack: make([]int, 0, n),
		queue: make([]int, 0, n),
	}
}

// accumulate adds the dependencies of source src to cb.
func (b *brandes) accumulate(src int, cb []float64) {
	for i := range b.sigma {
		b.sigma[i] = 0
		b.dist[i] = -1
		b.delta[i] = 0
		b.preds[i] = b.preds[i][:0]
	}
	b.sigma[src] = 1
	b.dist[src] = 0
	b.stack = b.stack[:0]
	b.queue = append(b.queue[:0], src)

	for len(b.queue) > 0 {
		u := b.queue[0]
		b.queue = b.queue[1:]
		b.stack = append(b.stack, u)
		for _, j := range b.snap.OutAt(u) {
			v := b.snap.TargetOf(j)
			if b.dist[v] < 0 {
				b.dist[v] = b.dist[u] + 1
				b.queue = append(b.queue, v)
			}
			// parallel routes u→v count once
			if b.dist[v] == b.dist[u]+1 && !b.lastPred(v, u) {
				b.sigma[v] += b.sigma[u]
				b.preds[v] = append(b.preds[v], u)
			}
		}
	}

	for k := len(b.stack) - 1; k >= 0; k-- {
		w := b.stack[k]
		for _, v := range b.preds[w] {
			b.delta[v] += b.sigma[v] / b.sigma[w] * (1 + b.delta[w])
		}
		if w != src {
			cb[w] += b.delta[w]
		}
	}
}

func (b *brandes) lastPred(v, u int) bool {
	p := b.preds[v]
	return len(p) > 0 && p[len(p)-1] == u
}

// Closeness returns, for every node, 1 / Σ hop distances to the nodes it can
// reach along route direction. Unreachable nodes are left out of the sum; a
// node that reaches no other node scores 0.
//
// Complexity: O(V·(V + E)).
func Closeness(ctx context.Context, s *core.Snapshot) (map[string]float64, error) {
	out := make(map[string]float64, s.Len())
	for _, n := range s.Nodes() {
		res, err := bfs.BFS(s, n.ID, bfs.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		total := 0
		for _, d := range res.Depth {
			total += d
		}
		if total == 0 {
			out[n.ID] = 0
			continue
		}
		out[n.ID] = 1 / float64(total)
	}
	return out, nil
}

// Rank orders scores by value descending, then ID ascending, and keeps at
// most k entries (k ≤ 0 keeps all).
func Rank(scores map[string]float64, k int) []Score {
	ranked := make([]Score, 0, len(scores))
	for id, v := range scores {
		ranked = append(ranked, Score{ID: id, Value: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].ID < ranked[j].ID
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
