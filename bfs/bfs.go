package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	snap    *core.Snapshot
	opts    BFSOptions
	ctx     context.Context
	in      [][]int // reverse adjacency, built only for Undirected
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on s starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
//
// Neighbours are expanded in route insertion order, so the visit sequence is
// reproducible for a given snapshot.
func BFS(s *core.Snapshot, startID string, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := s.Index(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := s.Len()
	w := &walker{
		snap:    s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if o.Direction == Undirected {
		w.in = reverseAdjacency(s)
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	id := w.snap.NodeAt(idx).ID
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.snap.NodeAt(parent).ID
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		id := w.snap.NodeAt(item.idx).ID
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, j := range w.snap.OutAt(item.idx) {
			w.relax(j, w.snap.TargetOf(j), next, item.idx)
		}
		if w.in != nil {
			for _, j := range w.in[item.idx] {
				w.relax(j, w.snap.SourceOf(j), next, item.idx)
			}
		}
	}
	return nil
}

// relax enqueues node v reached over edge j if it is unseen and allowed.
func (w *walker) relax(j, v, depth, parent int) {
	if w.visited[v] {
		return
	}
	if !w.opts.FilterEdge(w.snap.EdgeAt(j).ID, w.snap.NodeAt(v).ID) {
		return
	}
	w.enqueue(v, depth, parent)
}

// reverseAdjacency lists, per node index, the edges that end at it.
func reverseAdjacency(s *core.Snapshot) [][]int {
	in := make([][]int, s.Len())
	for j := 0; j < s.EdgeCount(); j++ {
		t := s.TargetOf(j)
		in[t] = append(in[t], j)
	}
	return in
}
