// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph declarations, enumerations, sentinel errors and the
//       NewGraph constructor.
// Concurrency:
//   - muNode guards the node catalog and its insertion order.
//   - muEdgeAdj guards the edge catalog, edge order and the outgoing adjacency.
//   - Lock order is always muNode -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for Graph Store operations.
var (
	// ErrEmptyID indicates that a node or edge was submitted with an empty ID.
	ErrEmptyID = errors.New("core: id is empty")

	// ErrDuplicateID indicates that the ID is already taken in its catalog.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrUnknownEndpoint indicates an edge whose source or target is absent.
	ErrUnknownEndpoint = errors.New("core: unknown endpoint")

	// ErrNotFound indicates a lookup of a node or edge that does not exist.
	ErrNotFound = errors.New("core: not found")

	// ErrInvalidNode indicates a node with out-of-range attributes.
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrInvalidEdge indicates an edge with out-of-range weights.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Category classifies a node in the logistics network. The set is open:
// datasets may introduce categories beyond the predefined ones.
type Category string

const (
	CategorySupplier  Category = "supplier"
	CategoryPort      Category = "port"
	CategoryWarehouse Category = "warehouse"
	CategoryStore     Category = "store"
)

// RiskLevel is the qualitative risk attached to a node.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// RouteType is the transport mode of an edge.
type RouteType string

const (
	RouteRoad RouteType = "road"
	RouteRail RouteType = "rail"
	RouteSea  RouteType = "sea"
	RouteAir  RouteType = "air"
)

// Valid reports whether t is one of the known transport modes.
func (t RouteType) Valid() bool {
	switch t {
	case RouteRoad, RouteRail, RouteSea, RouteAir:
		return true
	}
	return false
}

// Location is the geographic position of a node.
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

// Node is a facility in the logistics network.
//
// FillLevel is the current stock (warehouses, stores, suppliers) or current
// load (ports); the two are interchangeable. It is nil when unknown. A fill
// level above Capacity is legal and reads as over 100% utilization.
type Node struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"type"`
	Location  Location  `json:"location"`
	Capacity  float64   `json:"capacity"`
	FillLevel *float64  `json:"fill_level,omitempty"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// Utilization returns FillLevel/Capacity and true, or 0 and false when either
// value is missing or the capacity is zero.
func (n Node) Utilization() (float64, bool) {
	if n.FillLevel == nil || n.Capacity <= 0 {
		return 0, false
	}
	return *n.FillLevel / n.Capacity, true
}

// Edge is a directed route between two nodes.
//
// Distance, Cost and Duration are non-negative; RiskScore lies in [0, 1].
type Edge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source_id"`
	Target    string    `json:"target_id"`
	RouteType RouteType `json:"route_type"`
	Distance  float64   `json:"distance"`
	Cost      float64   `json:"cost"`
	Duration  float64   `json:"duration"`
	RiskScore float64   `json:"risk_score"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithSizeHint pre-sizes the catalogs for the expected number of nodes and edges.
// Negative values are ignored.
func WithSizeHint(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodeHint = nodes
		}
		if edges > 0 {
			g.edgeHint = edges
		}
	}
}

// Graph is the mutable, concurrency-safe Graph Store.
//
// Nodes and edges keep their insertion order; the analytics rely on it for
// reproducible output. out[nodeID] holds the IDs of edges leaving nodeID and is
// kept in lock-step with the edge catalog.
type Graph struct {
	muNode    sync.RWMutex // guards nodes, nodeOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, out

	nodeHint int
	edgeHint int

	nodes     map[string]*Node
	nodeOrder []string

	edges     map[string]*Edge
	edgeOrder []string

	// out[source] = edge IDs in insertion order
	out map[string][]string
}

// NewGraph creates an empty Graph Store.
// Complexity: O(1) plus the optional size hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[string]*Node, g.nodeHint)
	g.nodeOrder = make([]string, 0, g.nodeHint)
	g.edges = make(map[string]*Edge, g.edgeHint)
	g.edgeOrder = make([]string, 0, g.edgeHint)
	g.out = make(map[string][]string, g.nodeHint)

	return g
}
