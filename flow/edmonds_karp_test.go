package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/flow"
)

type route struct {
	id, from, to string
	cost         float64
}

// build creates a snapshot from node IDs and routes.
func build(t *testing.T, nodes []string, routes []route) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for _, r := range routes {
		require.NoError(t, g.AddEdge(core.Edge{ID: r.id, Source: r.from, Target: r.to, Cost: r.cost}))
	}
	return g.Snapshot()
}

func byCost(e core.Edge) float64 { return e.Cost }

// EdmondsKarpSuite groups tests for Edmonds–Karp and edge-disjoint paths.
type EdmondsKarpSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	snap := build(s.T(), []string{"A", "B"}, []route{{"ab", "A", "B", 5}})

	mf, err := flow.EdmondsKarp(s.ctx, snap, "A", "B", byCost, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "max flow should match single-edge capacity")
}

// TestMultiPath: two routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	snap := build(s.T(), []string{"A", "B", "C"}, []route{
		{"ab", "A", "B", 3},
		{"ac", "A", "C", 4},
		{"cb", "C", "B", 2},
	})

	mf, err := flow.EdmondsKarp(s.ctx, snap, "A", "B", byCost, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "flow should combine both paths (3 + 2)")
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	snap := build(s.T(), []string{"X", "Y"}, []route{{"xy", "X", "Y", 1}})
	neg := func(core.Edge) float64 { return -1 }

	_, err := flow.EdmondsKarp(s.ctx, snap, "X", "Y", neg, nil)
	var ee flow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), "xy", ee.EdgeID)
	require.Equal(s.T(), "X", ee.From)
	require.Equal(s.T(), "Y", ee.To)
	require.Equal(s.T(), -1.0, ee.Cap)
}

// TestEndpoints covers missing and identical endpoints.
func (s *EdmondsKarpSuite) TestEndpoints() {
	snap := build(s.T(), []string{"A"}, nil)

	_, err := flow.EdmondsKarp(s.ctx, snap, "X", "A", nil, nil)
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.EdmondsKarp(s.ctx, snap, "A", "Z", nil, nil)
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.EdgeDisjointPaths(s.ctx, snap, "A", "A")
	require.ErrorIs(s.T(), err, flow.ErrSameEndpoints)
}

// TestEdgeDisjointPaths counts directed, edge-disjoint routes including parallel ones.
func (s *EdmondsKarpSuite) TestEdgeDisjointPaths() {
	snap := build(s.T(), []string{"S", "M", "T"}, []route{
		{"sm1", "S", "M", 0},
		{"sm2", "S", "M", 0},
		{"mt", "M", "T", 0},
		{"st", "S", "T", 0},
		{"ts", "T", "S", 0},
	})

	k, err := flow.EdgeDisjointPaths(s.ctx, snap, "S", "T")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, k, "S→M→T and S→T; the second S→M arc is capped by M→T")

	k, err = flow.EdgeDisjointPaths(s.ctx, snap, "M", "S")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, k, "only M→T→S follows route direction")
}

// TestCancelled surfaces the context error.
func (s *EdmondsKarpSuite) TestCancelled() {
	snap := build(s.T(), []string{"A", "B"}, []route{{"ab", "A", "B", 1}})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := flow.EdgeDisjointPaths(ctx, snap, "A", "B")
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
