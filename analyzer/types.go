// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NetworkReport and its parts, options, sentinel errors.

// Package analyzer computes the structural report of a logistics network
// snapshot: overview metrics, critical nodes, centrality, the resilience
// heuristic, capacity bottlenecks and advisory recommendations.
//
// Every metric has a defined degenerate value, so Analyze succeeds on empty,
// single-node and disconnected graphs; it only fails on a nil snapshot or a
// cancelled context.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/supplynet/core"
)

// Sentinel errors.
var (
	// ErrNilSnapshot is returned when Analyze receives a nil snapshot.
	ErrNilSnapshot = errors.New("analyzer: snapshot is nil")

	// ErrComputationFailure marks a resilience computation that could not be
	// carried out (too few nodes, disconnected reference pair). Analyze maps it
	// to DefaultResilience and sets Resilience.Fallback.
	ErrComputationFailure = errors.New("analyzer: internal computation failure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analyzer: invalid option supplied")
)

// DefaultResilience is the score reported when the heuristic cannot be computed.
const DefaultResilience = 0.5

// Recommendation texts, in report order.
const (
	RecommendRedundancy  = "Consider adding redundant routes to improve network resilience"
	RecommendCapacity    = "Address capacity constraints at identified bottleneck nodes"
	RecommendExpansion   = "Expand network with additional suppliers or distribution centers"
	RecommendMonitoring  = "Implement real-time monitoring for critical network nodes"
	RecommendContingency = "Develop contingency plans for high-risk routes"
)

// Strategy selects how the resilience heuristic obtains its redundancy term.
type Strategy string

const (
	// StrategyReferencePair counts edge-disjoint paths between the first and
	// last node in store order.
	StrategyReferencePair Strategy = "reference_pair"
	// StrategyGlobal uses the global edge connectivity λ of the undirected
	// projection, independent of node order.
	StrategyGlobal Strategy = "global"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyReferencePair || s == StrategyGlobal
}

// Level is the qualitative band of a score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// NetworkReport is the result of Analyze.
type NetworkReport struct {
	Overview        Overview         `json:"network_overview" yaml:"network_overview"`
	CriticalNodes   []CriticalNode   `json:"critical_nodes" yaml:"critical_nodes"`
	Centrality      []NodeCentrality `json:"centrality" yaml:"centrality"`
	Resilience      Resilience       `json:"resilience" yaml:"resilience"`
	Bottlenecks     []Bottleneck     `json:"bottlenecks" yaml:"bottlenecks"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}

// Overview holds graph-level counts and connectivity.
type Overview struct {
	TotalNodes  int     `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges  int     `json:"total_edges" yaml:"total_edges"`
	Density     float64 `json:"network_density" yaml:"network_density"`
	IsConnected bool    `json:"is_connected" yaml:"is_connected"`
}

// CriticalNode is a node ranked by betweenness centrality.
type CriticalNode struct {
	NodeID          string        `json:"node_id" yaml:"node_id"`
	Name            string        `json:"name" yaml:"name"`
	CentralityScore float64       `json:"centrality_score" yaml:"centrality_score"`
	Category        core.Category `json:"type" yaml:"type"`
}

// NodeCentrality carries both centrality measures of one node.
type NodeCentrality struct {
	NodeID      string  `json:"node_id" yaml:"node_id"`
	Betweenness float64 `json:"betweenness" yaml:"betweenness"`
	Closeness   float64 `json:"closeness" yaml:"closeness"`
}

// Resilience is the heuristic resilience score.
//
// Fallback is set when the computation failed and Score holds
// DefaultResilience; FallbackReason then carries the cause.
type Resilience struct {
	Score          float64  `json:"score" yaml:"score"`
	Level          Level    `json:"level" yaml:"level"`
	Strategy       Strategy `json:"strategy" yaml:"strategy"`
	Fallback       bool     `json:"fallback" yaml:"fallback"`
	FallbackReason string   `json:"fallback_reason,omitempty" yaml:"fallback_reason,omitempty"`
}

// Bottleneck is a node whose utilization exceeds the bottleneck threshold.
type Bottleneck struct {
	NodeID      string  `json:"node_id" yaml:"node_id"`
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Utilization float64 `json:"utilization" yaml:"utilization"`
	Severity    Level   `json:"severity" yaml:"severity"`
}

// Options configures Analyze.
type Options struct {
	// CriticalNodeCount is how many nodes CriticalNodes keeps (default 3).
	CriticalNodeCount int
	// Strategy selects the resilience redundancy term (default reference_pair).
	Strategy Strategy

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns CriticalNodeCount 3 and StrategyReferencePair.
func DefaultOptions() Options {
	return Options{CriticalNodeCount: 3, Strategy: StrategyReferencePair}
}

// WithCriticalNodeCount sets how many critical nodes are reported. k must be positive.
func WithCriticalNodeCount(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: critical node count %d", ErrOptionViolation, k)
			return
		}
		o.CriticalNodeCount = k
	}
}

// WithResilienceStrategy selects the resilience strategy.
func WithResilienceStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.err = fmt.Errorf("%w: resilience strategy %q", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}
