package optimizer

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/dijkstra"
)

// search pairs a criterion with the route dimension it minimizes.
type search struct {
	criterion Criterion
	weight    dijkstra.WeightFunc
}

var searches = []search{
	{ShortestDistance, dijkstra.ByDistance},
	{LowestCost, dijkstra.ByCost},
	{FastestTime, dijkstra.ByDuration},
}

// PointToPoint finds the best path from source to target under each of
// distance, cost and duration. The three searches run concurrently over the
// same snapshot. A criterion without a path is omitted; if target is
// unreachable the result holds no routes.
//
// Errors: ErrNilSnapshot, core.ErrNotFound (wrapped) for an unknown source
// or target, ctx.Err() on cancellation.
func PointToPoint(ctx context.Context, s *core.Snapshot, source, target string) (*RouteResult, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	if _, err := s.Node(source); err != nil {
		return nil, fmt.Errorf("optimizer: source: %w", err)
	}
	if _, err := s.Node(target); err != nil {
		return nil, fmt.Errorf("optimizer: target: %w", err)
	}

	found := make([]*PathRoute, len(searches))
	g, gctx := errgroup.WithContext(ctx)
	for i, sr := range searches {
		i, sr := i, sr
		g.Go(func() error {
			route, err := bestPath(gctx, s, source, target, sr)
			if err != nil {
				return err
			}
			found[i] = route
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	routes := make([]PathRoute, 0, len(found))
	for _, r := range found {
		if r != nil {
			routes = append(routes, *r)
		}
	}

	return &RouteResult{
		Mode:                ModePointToPoint,
		Criteria:            Criteria(),
		OptimalRoutes:       routes,
		TotalRoutesAnalyzed: len(routes),
	}, nil
}

// bestPath runs one Dijkstra search; it returns nil without error when target
// is unreachable.
func bestPath(ctx context.Context, s *core.Snapshot, source, target string, sr search) (*PathRoute, error) {
	res, err := dijkstra.Dijkstra(s,
		dijkstra.Source(source),
		dijkstra.WithWeight(sr.weight),
		dijkstra.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}

	nodes, edges, err := res.PathTo(target)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	route := &PathRoute{
		OptimizationType: sr.criterion,
		Path:             nodes,
		EdgeIDs:          make([]string, 0, len(edges)),
		Metrics:          pathMetrics(edges),
	}
	for _, e := range edges {
		route.EdgeIDs = append(route.EdgeIDs, e.ID)
	}
	return route, nil
}

// pathMetrics sums distance, cost and duration over edges and averages risk.
func pathMetrics(edges []core.Edge) PathMetrics {
	var m PathMetrics
	var risk float64
	for _, e := range edges {
		m.TotalDistance += e.Distance
		m.TotalCost += e.Cost
		m.TotalDuration += e.Duration
		risk += e.RiskScore
	}
	if len(edges) > 0 {
		m.AverageRisk = round(risk/float64(len(edges)), 2)
	}
	return m
}
