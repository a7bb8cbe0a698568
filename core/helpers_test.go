// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
)

// Node IDs of the sample network.
const (
	SupplierAsia1 = "supplier_asia_1"
	SupplierAsia2 = "supplier_asia_2"
	PortAsia1     = "port_asia_1"
	WarehouseWest = "warehouse_us_west"
	WarehouseEast = "warehouse_us_east"
	StoreWest1    = "store_west_1"
	StoreEast1    = "store_east_1"
)

// Edge IDs of the sample network.
const (
	RouteSupplierPort  = "route_supplier_port_1"
	RoutePortWarehouse = "route_port_warehouse_1"
	RouteWestStore     = "route_warehouse_store_1"
	RouteCrossCountry  = "route_cross_country"
	RouteEastStore     = "route_east_store"
)

var sampleEdgeOrder = []string{
	RouteSupplierPort, RoutePortWarehouse, RouteWestStore, RouteCrossCountry, RouteEastStore,
}

func fill(v float64) *float64 { return &v }

// newSampleGraph builds the seven-node, five-route demo network.
func newSampleGraph(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithSizeHint(7, 5))
	nodes := []core.Node{
		{ID: SupplierAsia1, Category: core.CategorySupplier, Capacity: 15000, FillLevel: fill(12000), RiskLevel: core.RiskMedium},
		{ID: SupplierAsia2, Category: core.CategorySupplier, Capacity: 8000, FillLevel: fill(6500), RiskLevel: core.RiskLow},
		{ID: PortAsia1, Category: core.CategoryPort, Capacity: 100000, FillLevel: fill(75000), RiskLevel: core.RiskMedium},
		{ID: WarehouseWest, Category: core.CategoryWarehouse, Capacity: 50000, FillLevel: fill(35000), RiskLevel: core.RiskLow},
		{ID: WarehouseEast, Category: core.CategoryWarehouse, Capacity: 40000, FillLevel: fill(28000), RiskLevel: core.RiskLow},
		{ID: StoreWest1, Category: core.CategoryStore, Capacity: 2000, FillLevel: fill(1500), RiskLevel: core.RiskLow},
		{ID: StoreEast1, Category: core.CategoryStore, Capacity: 1800, FillLevel: fill(1200), RiskLevel: core.RiskLow},
	}
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}

	edges := []core.Edge{
		{ID: RouteSupplierPort, Source: SupplierAsia1, Target: PortAsia1, RouteType: core.RouteRoad, Distance: 50, Cost: 100, Duration: 4, RiskScore: 0.1},
		{ID: RoutePortWarehouse, Source: PortAsia1, Target: WarehouseWest, RouteType: core.RouteSea, Distance: 11000, Cost: 3500, Duration: 240, RiskScore: 0.3},
		{ID: RouteWestStore, Source: WarehouseWest, Target: StoreWest1, RouteType: core.RouteRoad, Distance: 600, Cost: 200, Duration: 12, RiskScore: 0.05},
		{ID: RouteCrossCountry, Source: WarehouseWest, Target: WarehouseEast, RouteType: core.RouteRail, Distance: 4500, Cost: 1200, Duration: 96, RiskScore: 0.15},
		{ID: RouteEastStore, Source: WarehouseEast, Target: StoreEast1, RouteType: core.RouteRoad, Distance: 300, Cost: 150, Duration: 8, RiskScore: 0.05},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}
