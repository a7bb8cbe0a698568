package optimizer

import (
	"math"
	"sort"

	"github.com/katalvlaran/supplynet/core"
)

// Normalizers of the composite score sub-scores.
const (
	distanceScale = 1000.0 // km
	costScale     = 1000.0 // currency units
	durationScale = 24.0   // hours
)

// CompositeScore scores a route in (0, 1], higher is better:
//
//	w.Distance·1/(1+d/1000) + w.Cost·1/(1+c/1000) + w.Duration·1/(1+t/24) + w.Risk·(1−r)
//
// with w normalized to sum 1, rounded to 3 decimals. Invalid weights fall back
// to DefaultWeights.
func CompositeScore(e core.Edge, w Weights) float64 {
	if w.Validate() != nil {
		w = DefaultWeights()
	}
	w = w.normalized()

	score := w.Distance/(1+e.Distance/distanceScale) +
		w.Cost/(1+e.Cost/costScale) +
		w.Duration/(1+e.Duration/durationScale) +
		w.Risk*(1-e.RiskScore)

	return round(score, 3)
}

// Global scores every route of s and returns the top K by score descending,
// ties broken by route ID ascending. A graph without routes yields an empty
// ranking.
func Global(s *core.Snapshot, opts ...Option) (*RouteResult, error) {
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

	ranked := make([]RankedRoute, 0, s.EdgeCount())
	for _, e := range s.Edges() {
		ranked = append(ranked, RankedRoute{
			RouteID: e.ID,
			Source:  e.Source,
			Target:  e.Target,
			Score:   CompositeScore(e, o.Weights),
			Metrics: EdgeMetrics{
				Distance:  e.Distance,
				Cost:      e.Cost,
				Duration:  e.Duration,
				RiskScore: e.RiskScore,
			},
			RouteType: string(e.RouteType),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].RouteID < ranked[j].RouteID
	})
	if len(ranked) > o.TopK {
		ranked = ranked[:o.TopK]
	}

	return &RouteResult{
		Mode:                ModeGlobal,
		Criteria:            Criteria(),
		RankedRoutes:        ranked,
		TotalRoutesAnalyzed: len(ranked),
	}, nil
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
