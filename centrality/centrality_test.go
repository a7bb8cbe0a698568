package centrality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/centrality"
	"github.com/katalvlaran/supplynet/core"
)

func build(t *testing.T, nodes []string, pairs [][2]string) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for _, id := range nodes {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	for i, p := range pairs {
		require.NoError(t, g.AddEdge(core.Edge{ID: string(rune('a' + i)), Source: p[0], Target: p[1]}))
	}
	return g.Snapshot()
}

// supplyShape is the sample network topology: a directed tree of six nodes
// plus an isolated supplier.
func supplyShape(t *testing.T) *core.Snapshot {
	return build(t,
		[]string{"supplier_asia_1", "supplier_asia_2", "port_asia_1", "warehouse_us_west", "warehouse_us_east", "store_west_1", "store_east_1"},
		[][2]string{
			{"supplier_asia_1", "port_asia_1"},
			{"port_asia_1", "warehouse_us_west"},
			{"warehouse_us_west", "store_west_1"},
			{"warehouse_us_west", "warehouse_us_east"},
			{"warehouse_us_east", "store_east_1"},
		})
}

func TestBetweenness_SupplyShape(t *testing.T) {
	bc, err := centrality.Betweenness(context.Background(), supplyShape(t))
	require.NoError(t, err)

	assert.InDelta(t, 6.0/30, bc["warehouse_us_west"], 1e-12)
	assert.InDelta(t, 4.0/30, bc["port_asia_1"], 1e-12)
	assert.InDelta(t, 3.0/30, bc["warehouse_us_east"], 1e-12)
	for _, id := range []string{"supplier_asia_1", "supplier_asia_2", "store_west_1", "store_east_1"} {
		assert.Zero(t, bc[id], id)
	}

	top := centrality.Rank(bc, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"warehouse_us_west", "port_asia_1", "warehouse_us_east"},
		[]string{top[0].ID, top[1].ID, top[2].ID})
}

func TestBetweenness_SplitPaths(t *testing.T) {
	// Two equal-length paths s→a→t and s→b→t share the credit.
	s := build(t, []string{"s", "a", "b", "t"}, [][2]string{{"s", "a"}, {"s", "b"}, {"a", "t"}, {"b", "t"}})

	bc, err := centrality.Betweenness(context.Background(), s)
	require.NoError(t, err)
	assert.InDelta(t, 0.5/6, bc["a"], 1e-12)
	assert.InDelta(t, 0.5/6, bc["b"], 1e-12)
}

func TestBetweenness_ParallelRoutesCountOnce(t *testing.T) {
	s := build(t, []string{"x", "m", "y", "n"}, [][2]string{{"x", "m"}, {"x", "m"}, {"m", "y"}, {"x", "n"}, {"n", "y"}})

	bc, err := centrality.Betweenness(context.Background(), s)
	require.NoError(t, err)
	assert.InDelta(t, bc["n"], bc["m"], 1e-12, "a duplicated route must not double the path count")
}

func TestBetweenness_Tiny(t *testing.T) {
	s := build(t, []string{"a", "b"}, [][2]string{{"a", "b"}})

	bc, err := centrality.Betweenness(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0, "b": 0}, bc)
}

func TestCloseness(t *testing.T) {
	cc, err := centrality.Closeness(context.Background(), supplyShape(t))
	require.NoError(t, err)

	// 1+2+3+3+4 hops from the first supplier
	assert.InDelta(t, 1.0/13, cc["supplier_asia_1"], 1e-12)
	assert.InDelta(t, 1.0/4, cc["warehouse_us_west"], 1e-12)
	assert.Equal(t, 1.0, cc["warehouse_us_east"])
	assert.Zero(t, cc["supplier_asia_2"])
	assert.Zero(t, cc["store_east_1"])
	for id, v := range cc {
		assert.GreaterOrEqual(t, v, 0.0, id)
		assert.LessOrEqual(t, v, 1.0, id)
	}
}

func TestRank_Ties(t *testing.T) {
	got := centrality.Rank(map[string]float64{"c": 0.5, "a": 0.5, "b": 0.9, "d": 0}, 0)
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := centrality.Betweenness(ctx, supplyShape(t))
	require.ErrorIs(t, err, context.Canceled)
	_, err = centrality.Closeness(ctx, supplyShape(t))
	require.ErrorIs(t, err, context.Canceled)
}
