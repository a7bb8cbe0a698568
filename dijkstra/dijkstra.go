// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// routes of a core.Snapshot.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Weights are evaluated once per edge up front; a negative or NaN weight
//     fails fast with ErrNegativeWeight.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped.
//   - Heap ties are broken by node index, and a strictly shorter distance is
//     required to replace a predecessor, so equal-cost paths resolve to the
//     one found first in insertion order.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/supplynet/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of
// s reachable along route direction.
//
// Preconditions and validation (in order):
//  1. Option errors (ErrBadMaxDistance).
//  2. Source must be non-empty (ErrEmptySource).
//  3. s must be non-nil (ErrNilGraph).
//  4. s must contain Source (ErrNodeNotFound).
//  5. No weight may be negative (ErrNegativeWeight).
//
// Cancellation of Options.Ctx aborts the search with the context error.
func Dijkstra(s *core.Snapshot, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if s == nil {
		return nil, ErrNilGraph
	}
	src, ok := s.Index(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, cfg.Source)
	}

	weights := make([]float64, s.EdgeCount())
	for j := range weights {
		w := cfg.Weight(s.EdgeAt(j))
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %q weight=%g", ErrNegativeWeight, s.EdgeAt(j).ID, w)
		}
		weights[j] = w
	}

	V := s.Len()
	r := &runner{
		snap:     s,
		options:  cfg,
		weights:  weights,
		dist:     make([]float64, V),
		prevEdge: make([]int, V),
		visited:  make([]bool, V),
		pq:       make(nodePQ, 0, V),
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{snap: s, source: src, dist: r.dist, prevEdge: r.prevEdge}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap     *core.Snapshot
	options  Options
	weights  []float64 // weights[j] = Weight(edge j)
	dist     []float64
	prevEdge []int
	visited  []bool
	pq       nodePQ
}

// init sets every distance to +Inf and seeds the heap with the source.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prevEdge[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process settles nodes in increasing distance until the heap drains or the
// frontier passes MaxDistance.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}

	return nil
}

// relax improves distances to the targets of u's outgoing routes.
func (r *runner) relax(u int) {
	for _, j := range r.snap.OutAt(u) {
		v := r.snap.TargetOf(j)
		newDist := r.dist[u] + r.weights[j]
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prevEdge[v] = j
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then node index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
