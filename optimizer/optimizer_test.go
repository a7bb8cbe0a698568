package optimizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/dataset"
	"github.com/katalvlaran/supplynet/optimizer"
)

func sampleSnapshot(t *testing.T) *core.Snapshot {
	t.Helper()
	g, err := dataset.SampleGraph()
	require.NoError(t, err)
	return g.Snapshot()
}

// tradeoff builds two A→C branches: via B is short but expensive, via D is
// cheap and fast but long.
func tradeoff(t *testing.T) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "Z"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, e := range []core.Edge{
		{ID: "ab", Source: "A", Target: "B", Distance: 10, Cost: 500, Duration: 20, RiskScore: 0.2},
		{ID: "bc", Source: "B", Target: "C", Distance: 10, Cost: 500, Duration: 20, RiskScore: 0.4},
		{ID: "ad", Source: "A", Target: "D", Distance: 100, Cost: 50, Duration: 5, RiskScore: 0.1},
		{ID: "dc", Source: "D", Target: "C", Distance: 100, Cost: 50, Duration: 5, RiskScore: 0.1},
	} {
		require.NoError(t, g.AddEdge(e))
	}
	return g.Snapshot()
}

func TestPointToPoint_Sample(t *testing.T) {
	res, err := optimizer.PointToPoint(context.Background(), sampleSnapshot(t), "supplier_asia_1", "store_west_1")
	require.NoError(t, err)

	assert.Equal(t, optimizer.ModePointToPoint, res.Mode)
	assert.Equal(t, optimizer.Criteria(), res.Criteria)
	require.Len(t, res.OptimalRoutes, 3)
	assert.Equal(t, 3, res.TotalRoutesAnalyzed)

	wantPath := []string{"supplier_asia_1", "port_asia_1", "warehouse_us_west", "store_west_1"}
	wantMetrics := optimizer.PathMetrics{TotalDistance: 11650, TotalCost: 3800, TotalDuration: 256, AverageRisk: 0.15}
	for i, c := range []optimizer.Criterion{optimizer.ShortestDistance, optimizer.LowestCost, optimizer.FastestTime} {
		r := res.OptimalRoutes[i]
		assert.Equal(t, c, r.OptimizationType)
		assert.Equal(t, wantPath, r.Path)
		assert.Equal(t, []string{"route_supplier_port_1", "route_port_warehouse_1", "route_warehouse_store_1"}, r.EdgeIDs)
		assert.Equal(t, wantMetrics, r.Metrics)
	}
}

func TestPointToPoint_CriteriaDiverge(t *testing.T) {
	res, err := optimizer.PointToPoint(context.Background(), tradeoff(t), "A", "C")
	require.NoError(t, err)
	require.Len(t, res.OptimalRoutes, 3)

	byDistance, byCost, byTime := res.OptimalRoutes[0], res.OptimalRoutes[1], res.OptimalRoutes[2]
	assert.Equal(t, []string{"A", "B", "C"}, byDistance.Path)
	assert.Equal(t, optimizer.PathMetrics{TotalDistance: 20, TotalCost: 1000, TotalDuration: 40, AverageRisk: 0.3}, byDistance.Metrics)

	assert.Equal(t, []string{"A", "D", "C"}, byCost.Path)
	assert.Equal(t, []string{"A", "D", "C"}, byTime.Path)
	assert.Equal(t, optimizer.PathMetrics{TotalDistance: 200, TotalCost: 100, TotalDuration: 10, AverageRisk: 0.1}, byTime.Metrics)
}

func TestPointToPoint_Degenerate(t *testing.T) {
	ctx := context.Background()
	snap := tradeoff(t)

	res, err := optimizer.PointToPoint(ctx, snap, "A", "Z")
	require.NoError(t, err)
	assert.Empty(t, res.OptimalRoutes, "unreachable target yields no routes")
	assert.Zero(t, res.TotalRoutesAnalyzed)

	res, err = optimizer.PointToPoint(ctx, snap, "B", "B")
	require.NoError(t, err)
	require.Len(t, res.OptimalRoutes, 3)
	for _, r := range res.OptimalRoutes {
		assert.Equal(t, []string{"B"}, r.Path)
		assert.Empty(t, r.EdgeIDs)
		assert.Equal(t, optimizer.PathMetrics{}, r.Metrics)
	}
}

func TestPointToPoint_Errors(t *testing.T) {
	ctx := context.Background()
	snap := tradeoff(t)

	_, err := optimizer.PointToPoint(ctx, nil, "A", "C")
	require.ErrorIs(t, err, optimizer.ErrNilSnapshot)

	_, err = optimizer.PointToPoint(ctx, snap, "nowhere", "C")
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = optimizer.PointToPoint(ctx, snap, "A", "nowhere")
	require.ErrorIs(t, err, core.ErrNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = optimizer.PointToPoint(cancelled, snap, "A", "C")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGlobal_Sample(t *testing.T) {
	res, err := optimizer.Global(sampleSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, optimizer.ModeGlobal, res.Mode)
	assert.Empty(t, res.OptimalRoutes)
	require.Len(t, res.RankedRoutes, 5)
	assert.Equal(t, 5, res.TotalRoutesAnalyzed)

	want := []struct {
		id    string
		score float64
	}{
		{"route_supplier_port_1", 0.9},
		{"route_east_store", 0.83},
		{"route_warehouse_store_1", 0.765},
		{"route_cross_country", 0.403},
		{"route_port_warehouse_1", 0.251},
	}
	for i, w := range want {
		assert.Equal(t, w.id, res.RankedRoutes[i].RouteID)
		assert.InDelta(t, w.score, res.RankedRoutes[i].Score, 1e-9)
	}

	top := res.RankedRoutes[0]
	assert.Equal(t, "supplier_asia_1", top.Source)
	assert.Equal(t, "port_asia_1", top.Target)
	assert.Equal(t, "road", top.RouteType)
	assert.Equal(t, optimizer.EdgeMetrics{Distance: 50, Cost: 100, Duration: 4, RiskScore: 0.1}, top.Metrics)
}

func TestGlobal_TopKAndTies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "a"}))
	require.NoError(t, g.AddNode(core.Node{ID: "b"}))
	for _, id := range []string{"r3", "r1", "r2"} {
		require.NoError(t, g.AddEdge(core.Edge{ID: id, Source: "a", Target: "b", Distance: 10, Cost: 10, Duration: 1}))
	}
	require.NoError(t, g.AddEdge(core.Edge{ID: "r0", Source: "a", Target: "b", Distance: 9000, Cost: 9000, Duration: 300, RiskScore: 1}))

	res, err := optimizer.Global(g.Snapshot(), optimizer.WithTopK(2))
	require.NoError(t, err)
	require.Len(t, res.RankedRoutes, 2)
	assert.Equal(t, "r1", res.RankedRoutes[0].RouteID, "equal scores break ties by route ID")
	assert.Equal(t, "r2", res.RankedRoutes[1].RouteID)
	assert.Equal(t, 2, res.TotalRoutesAnalyzed)

	empty, err := optimizer.Global(core.NewGraph().Snapshot())
	require.NoError(t, err)
	assert.Empty(t, empty.RankedRoutes)
	assert.Zero(t, empty.TotalRoutesAnalyzed)
}

func TestGlobal_Errors(t *testing.T) {
	_, err := optimizer.Global(nil)
	require.ErrorIs(t, err, optimizer.ErrNilSnapshot)

	snap := core.NewGraph().Snapshot()
	_, err = optimizer.Global(snap, optimizer.WithTopK(0))
	require.ErrorIs(t, err, optimizer.ErrOptionViolation)
	_, err = optimizer.Global(snap, optimizer.WithWeights(optimizer.Weights{Distance: -1, Cost: 1}))
	require.ErrorIs(t, err, optimizer.ErrInvalidWeights)
	_, err = optimizer.Global(snap, optimizer.WithWeights(optimizer.Weights{}))
	require.ErrorIs(t, err, optimizer.ErrInvalidWeights)
}

func TestCompositeScore(t *testing.T) {
	free := core.Edge{ID: "free"}
	assert.Equal(t, 1.0, optimizer.CompositeScore(free, optimizer.DefaultWeights()))

	e := core.Edge{Distance: 1000, Cost: 1000, Duration: 24, RiskScore: 0.5}
	assert.Equal(t, 0.5, optimizer.CompositeScore(e, optimizer.DefaultWeights()))

	// weights are normalized, so scaling them leaves the score unchanged
	scaled := optimizer.Weights{Distance: 2, Cost: 3, Duration: 3, Risk: 2}
	assert.Equal(t,
		optimizer.CompositeScore(e, optimizer.DefaultWeights()),
		optimizer.CompositeScore(e, scaled))

	riskOnly := optimizer.Weights{Risk: 1}
	assert.Equal(t, 0.5, optimizer.CompositeScore(e, riskOnly))

	// invalid weights fall back to the defaults
	assert.Equal(t, 0.5, optimizer.CompositeScore(e, optimizer.Weights{Cost: -1}))
}
