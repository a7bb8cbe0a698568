// SPDX-License-Identifier: MIT
//
// File: resilience.go
// Role: The resilience heuristic.
//
// The score is a documented heuristic rather than a network-science measure:
//
//	score = clamp((avgNodeConnectivity + redundancy) / 5, 0, 1), rounded to 2
//
// avgNodeConnectivity is taken over the undirected projection. redundancy is,
// for StrategyReferencePair, the number of edge-disjoint paths between the
// first and last node in store order (undirected projection), and for
// StrategyGlobal the global edge connectivity λ. The reference-pair variant
// depends on insertion order.

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/flow"
)

const resilienceDivisor = 5.0

// ResilienceScore computes the heuristic score of s under strategy.
//
// Errors:
//   - ErrComputationFailure (wrapped with the cause) for fewer than two
//     nodes, or a disconnected reference pair under StrategyReferencePair.
//   - ErrOptionViolation for an unknown strategy.
//   - ctx.Err() on cancellation.
func ResilienceScore(ctx context.Context, s *core.Snapshot, strategy Strategy) (float64, error) {
	if !strategy.Valid() {
		return 0, fmt.Errorf("%w: resilience strategy %q", ErrOptionViolation, strategy)
	}
	if s.Len() < 2 {
		return 0, fmt.Errorf("%w: %d node(s)", ErrComputationFailure, s.Len())
	}

	connectivity, err := flow.AverageNodeConnectivity(ctx, s)
	if err != nil {
		return 0, mapFlowErr(err)
	}

	var redundancy int
	switch strategy {
	case StrategyGlobal:
		redundancy, err = flow.EdgeConnectivity(ctx, s)
		if err != nil {
			return 0, mapFlowErr(err)
		}
	default:
		first, last := s.NodeAt(0).ID, s.NodeAt(s.Len()-1).ID
		redundancy, err = flow.LocalEdgeConnectivity(ctx, s, first, last)
		if err != nil {
			return 0, mapFlowErr(err)
		}
		if redundancy == 0 {
			return 0, fmt.Errorf("%w: no path between reference nodes %q and %q", ErrComputationFailure, first, last)
		}
	}

	score := (connectivity + float64(redundancy)) / resilienceDivisor
	score = math.Max(0, math.Min(1, score))
	return round(score, 2), nil
}

// ResilienceLevel classifies a score: high > 0.7, medium > 0.4, otherwise low.
func ResilienceLevel(score float64) Level {
	switch {
	case score > 0.7:
		return LevelHigh
	case score > 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// mapFlowErr keeps cancellation as is and folds every other flow error into
// ErrComputationFailure.
func mapFlowErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrComputationFailure, err)
}
