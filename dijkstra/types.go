// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Snapshot.
//
// Routes carry several weight dimensions (distance, cost, duration); the
// caller chooses one with a WeightFunc, so a single snapshot can be searched
// under different criteria without copying it.
//
// Options:
//
//	– Source:       ID of the starting node (must be non-empty and present).
//	– WithWeight:   weight function over core.Edge (default: Distance).
//	– WithMaxDistance: cap on distances to explore; nodes beyond are skipped.
//	– WithContext:  cancellation, checked once per settled node.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided snapshot pointer is nil.
//	– ErrNodeNotFound    if the source or path target is not in the snapshot.
//	– ErrNegativeWeight  if the weight function yields a negative or NaN value.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if PathTo is asked for an unreachable node.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/supplynet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Snapshot was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that a node ID does not exist in the snapshot.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that the weight function returned a value < 0 or NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the requested target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")
)

// WeightFunc maps a route to the non-negative weight minimised by the search.
type WeightFunc func(e core.Edge) float64

// Weight functions for the route dimensions.
var (
	ByDistance WeightFunc = func(e core.Edge) float64 { return e.Distance }
	ByCost     WeightFunc = func(e core.Edge) float64 { return e.Cost }
	ByDuration WeightFunc = func(e core.Edge) float64 { return e.Duration }
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID (must be non-empty and present in the snapshot).
// Weight      – weight function; default ByDistance.
// MaxDistance – nodes whose distance would exceed it are not explored. Default +Inf.
// Ctx         – cancellation.
type Options struct {
	Source      string
	Weight      WeightFunc
	MaxDistance float64
	Ctx         context.Context

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithWeight selects the weight function. A nil fn is ignored.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values surface as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options initialized with sensible defaults for the
// given source node ID.
//
// Defaults:
//   - Weight:      ByDistance.
//   - MaxDistance: +Inf (explore all reachable).
//   - Ctx:         context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Weight:      ByDistance,
		MaxDistance: math.Inf(1),
		Ctx:         context.Background(),
	}
}

// Result holds single-source shortest-path distances and the predecessor
// edge of every reached node.
type Result struct {
	snap     *core.Snapshot
	source   int
	dist     []float64 // +Inf if unreachable
	prevEdge []int     // -1 for source and unreachable nodes
}

// Source returns the ID of the search origin.
func (r *Result) Source() string { return r.snap.NodeAt(r.source).ID }

// Distance returns the shortest distance to id and whether id was reached.
func (r *Result) Distance(id string) (float64, bool) {
	i, ok := r.snap.Index(id)
	if !ok || math.IsInf(r.dist[i], 1) {
		return math.Inf(1), false
	}
	return r.dist[i], true
}

// PathTo reconstructs the node sequence and the traversed routes from the
// source to target. For target == source it returns a single-node path and
// no routes.
//
// Errors: ErrNodeNotFound, ErrNoPath.
func (r *Result) PathTo(target string) ([]string, []core.Edge, error) {
	t, ok := r.snap.Index(target)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, target)
	}
	if math.IsInf(r.dist[t], 1) {
		return nil, nil, fmt.Errorf("%w: %q → %q", ErrNoPath, r.Source(), target)
	}

	var edges []core.Edge
	nodes := []string{target}
	for cur := t; cur != r.source; {
		j := r.prevEdge[cur]
		edges = append(edges, r.snap.EdgeAt(j))
		cur = r.snap.SourceOf(j)
		nodes = append(nodes, r.snap.NodeAt(cur).ID)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges, nil
}
