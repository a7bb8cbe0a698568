// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: RouteResult and its parts, scoring weights, options, sentinel errors.

// Package optimizer ranks routes of a logistics network snapshot.
//
// Two modes:
//
//   - Point-to-point: three independent Dijkstra searches (distance, cost,
//     duration) between a source and a target, each reported with metrics
//     aggregated over the routes actually traversed.
//   - Global: every route scored by a composite of its four dimensions and
//     the top K returned by score.
package optimizer

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrNilSnapshot is returned when a nil snapshot is passed.
	ErrNilSnapshot = errors.New("optimizer: snapshot is nil")

	// ErrInvalidWeights is returned for negative, non-finite or all-zero weights.
	ErrInvalidWeights = errors.New("optimizer: invalid weights")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("optimizer: invalid option supplied")
)

// Mode tells which search produced a RouteResult.
type Mode string

const (
	ModePointToPoint Mode = "point_to_point"
	ModeGlobal       Mode = "global"
)

// Criterion names an optimization objective.
type Criterion string

const (
	ShortestDistance Criterion = "shortest_distance"
	LowestCost       Criterion = "lowest_cost"
	FastestTime      Criterion = "fastest_time"
	// LowestRisk is advertised in RouteResult.Criteria but never optimized;
	// risk is only reported per path.
	LowestRisk Criterion = "lowest_risk"
)

// Criteria is the header reported with every RouteResult.
func Criteria() []Criterion {
	return []Criterion{ShortestDistance, LowestCost, FastestTime, LowestRisk}
}

// RouteResult is the outcome of a route search.
//
// OptimalRoutes is filled in point-to-point mode, RankedRoutes in global
// mode. TotalRoutesAnalyzed is the number of entries returned.
type RouteResult struct {
	Mode                Mode          `json:"mode" yaml:"mode"`
	Criteria            []Criterion   `json:"criteria" yaml:"criteria"`
	OptimalRoutes       []PathRoute   `json:"optimal_routes,omitempty" yaml:"optimal_routes,omitempty"`
	RankedRoutes        []RankedRoute `json:"ranked_routes,omitempty" yaml:"ranked_routes,omitempty"`
	TotalRoutesAnalyzed int           `json:"total_routes_analyzed" yaml:"total_routes_analyzed"`
}

// PathRoute is the best path under one criterion.
type PathRoute struct {
	OptimizationType Criterion   `json:"optimization_type" yaml:"optimization_type"`
	Path             []string    `json:"path" yaml:"path"`
	EdgeIDs          []string    `json:"edge_ids" yaml:"edge_ids"`
	Metrics          PathMetrics `json:"metrics" yaml:"metrics"`
}

// PathMetrics aggregates the traversed routes of a path.
// AverageRisk is rounded to 2 decimals and is 0 for a single-node path.
type PathMetrics struct {
	TotalDistance float64 `json:"total_distance" yaml:"total_distance"`
	TotalCost     float64 `json:"total_cost" yaml:"total_cost"`
	TotalDuration float64 `json:"total_duration" yaml:"total_duration"`
	AverageRisk   float64 `json:"average_risk" yaml:"average_risk"`
}

// RankedRoute is one scored route in global mode.
type RankedRoute struct {
	RouteID   string      `json:"route_id" yaml:"route_id"`
	Source    string      `json:"source" yaml:"source"`
	Target    string      `json:"target" yaml:"target"`
	Score     float64     `json:"score" yaml:"score"`
	Metrics   EdgeMetrics `json:"metrics" yaml:"metrics"`
	RouteType string      `json:"route_type" yaml:"route_type"`
}

// EdgeMetrics are the raw weights of a route.
type EdgeMetrics struct {
	Distance  float64 `json:"distance" yaml:"distance"`
	Cost      float64 `json:"cost" yaml:"cost"`
	Duration  float64 `json:"duration" yaml:"duration"`
	RiskScore float64 `json:"risk_score" yaml:"risk_score"`
}

// Weights are the composite score coefficients. They are normalized to sum
// to 1 before scoring.
type Weights struct {
	Distance float64 `json:"distance" yaml:"distance"`
	Cost     float64 `json:"cost" yaml:"cost"`
	Duration float64 `json:"duration" yaml:"duration"`
	Risk     float64 `json:"risk" yaml:"risk"`
}

// DefaultWeights returns 0.2 distance, 0.3 cost, 0.3 duration, 0.2 risk.
func DefaultWeights() Weights {
	return Weights{Distance: 0.2, Cost: 0.3, Duration: 0.3, Risk: 0.2}
}

// Validate checks that every weight is finite and non-negative and that at
// least one is positive.
func (w Weights) Validate() error {
	sum := 0.0
	for _, v := range []float64{w.Distance, w.Cost, w.Duration, w.Risk} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v", ErrInvalidWeights, w)
		}
		sum += v
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}
	return nil
}

func (w Weights) normalized() Weights {
	sum := w.Distance + w.Cost + w.Duration + w.Risk
	return Weights{Distance: w.Distance / sum, Cost: w.Cost / sum, Duration: w.Duration / sum, Risk: w.Risk / sum}
}

// Options configures Global.
type Options struct {
	// TopK caps the number of ranked routes (default 10).
	TopK int
	// Weights are the composite score coefficients (default DefaultWeights).
	Weights Weights

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns TopK 10 and DefaultWeights.
func DefaultOptions() Options {
	return Options{TopK: 10, Weights: DefaultWeights()}
}

// WithTopK sets the ranked route cap. k must be positive.
func WithTopK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: top-k %d", ErrOptionViolation, k)
			return
		}
		o.TopK = k
	}
}

// WithWeights replaces the composite score weights.
func WithWeights(w Weights) Option {
	return func(o *Options) {
		if err := w.Validate(); err != nil {
			o.err = err
			return
		}
		o.Weights = w
	}
}
