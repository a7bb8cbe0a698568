// SPDX-License-Identifier: MIT
//
// File: analyze.go
// Role: Analyze entry point, overview metrics and centrality ranking.
// Determinism:
//   - Critical nodes: betweenness desc, ID asc. Centrality and bottleneck
//     lists: ID asc. Analyze is idempotent for a given snapshot.

package analyzer

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/supplynet/bfs"
	"github.com/katalvlaran/supplynet/centrality"
	"github.com/katalvlaran/supplynet/core"
)

// Analyze builds the NetworkReport of s.
//
// Errors: ErrNilSnapshot, ErrOptionViolation, ctx.Err(). Degenerate graphs
// never fail; resilience failures are reported through Resilience.Fallback.
func Analyze(ctx context.Context, s *core.Snapshot, opts ...Option) (*NetworkReport, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	bc, err := centrality.Betweenness(ctx, s)
	if err != nil {
		return nil, err
	}
	cc, err := centrality.Closeness(ctx, s)
	if err != nil {
		return nil, err
	}

	res, err := assessResilience(ctx, s, o.Strategy)
	if err != nil {
		return nil, err
	}

	bottlenecks := Bottlenecks(s)

	return &NetworkReport{
		Overview: Overview{
			TotalNodes:  s.Len(),
			TotalEdges:  s.EdgeCount(),
			Density:     Density(s.Len(), s.EdgeCount()),
			IsConnected: bfs.IsWeaklyConnected(s),
		},
		CriticalNodes:   criticalNodes(s, bc, o.CriticalNodeCount),
		Centrality:      nodeCentrality(bc, cc),
		Resilience:      res,
		Bottlenecks:     bottlenecks,
		Recommendations: Recommendations(res.Score, len(bottlenecks), s.Len()),
	}, nil
}

// Density returns E / (N(N−1)) for a directed graph, 0 for N < 2, clamped to
// 1 since parallel routes and self-loops can push the raw ratio higher.
func Density(nodes, edges int) float64 {
	if nodes < 2 {
		return 0
	}
	d := float64(edges) / float64(nodes*(nodes-1))
	return math.Min(d, 1)
}

func criticalNodes(s *core.Snapshot, bc map[string]float64, k int) []CriticalNode {
	ranked := centrality.Rank(bc, k)
	out := make([]CriticalNode, 0, len(ranked))
	for _, r := range ranked {
		n, _ := s.Node(r.ID)
		out = append(out, CriticalNode{
			NodeID:          r.ID,
			Name:            n.Name,
			CentralityScore: r.Value,
			Category:        n.Category,
		})
	}
	return out
}

func nodeCentrality(bc, cc map[string]float64) []NodeCentrality {
	out := make([]NodeCentrality, 0, len(bc))
	for id, b := range bc {
		out = append(out, NodeCentrality{NodeID: id, Betweenness: b, Closeness: cc[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NodeID < out[j].NodeID })
	return out
}

// assessResilience turns ResilienceScore into the report section, mapping
// ErrComputationFailure to the fallback score.
func assessResilience(ctx context.Context, s *core.Snapshot, strategy Strategy) (Resilience, error) {
	r := Resilience{Strategy: strategy}
	score, err := ResilienceScore(ctx, s, strategy)
	switch {
	case err == nil:
		r.Score = score
	case errors.Is(err, ErrComputationFailure):
		r.Score = DefaultResilience
		r.Fallback = true
		r.FallbackReason = err.Error()
	default:
		return Resilience{}, err
	}
	r.Level = ResilienceLevel(r.Score)
	return r, nil
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
