// Package core provides the Graph Store for supplynet: a concurrency-safe,
// in-memory directed graph of logistics facilities and the routes between them.
//
// The store G = (V,E) holds:
//
//   - Nodes: suppliers, ports, warehouses, stores (Category is open to extension),
//     each with a location, capacity, optional fill level and risk level.
//   - Edges: directed routes with four non-negative weight dimensions
//     (distance, cost, duration, risk score ∈ [0,1]) and a transport mode.
//   - Outgoing adjacency per node, updated in lock-step with the edge catalog.
//
// Why two views?
//
//   - *Graph is the mutable store. Writers (AddNode, AddEdge, RemoveEdge) take
//     exclusive locks; readers take shared locks.
//   - *Snapshot is an immutable, index-based copy taken with Graph.Snapshot().
//     Every analytics package (bfs, dijkstra, flow, centrality, analyzer,
//     optimizer) reads a Snapshot, so one long-lived Graph can serve many
//     concurrent analyses while it keeps being edited.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error              // O(1)   ErrDuplicateID, ErrEmptyID, ErrInvalidNode
//	Node(id string) (Node, error)      // O(1)   ErrNotFound
//	HasNode(id string) bool            // O(1)
//	Nodes() []Node                     // O(V)   insertion order
//
//	// Edge lifecycle
//	AddEdge(e Edge) error              // O(1)   ErrUnknownEndpoint, ErrDuplicateID, ...
//	RemoveEdge(id string) error        // O(E)   ErrNotFound
//	Edge(id string) (Edge, error)      // O(1)   ErrNotFound
//	Edges() []Edge                     // O(E)   insertion order
//	OutEdges(id string) ([]Edge, error)// O(deg) ErrNotFound
//
//	// Frozen view
//	Snapshot() *Snapshot               // O(V+E)
//
// Errors are sentinels wrapped with context; test them with errors.Is:
//
//	ErrEmptyID          - node or edge ID is the empty string.
//	ErrDuplicateID      - a node or edge with the same ID already exists.
//	ErrUnknownEndpoint  - an edge references a node that is not in the store.
//	ErrNotFound         - lookup of an ID that does not exist.
//	ErrInvalidNode      - node attributes violate the data model.
//	ErrInvalidEdge      - edge weights violate the data model.
//
//	if err := g.AddEdge(e); errors.Is(err, core.ErrUnknownEndpoint) { ... }
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode(core.Node{ID: "port", Category: core.CategoryPort, Capacity: 100})
//	_ = g.AddNode(core.Node{ID: "dc", Category: core.CategoryWarehouse, Capacity: 50})
//	_ = g.AddEdge(core.Edge{ID: "r1", Source: "port", Target: "dc",
//		RouteType: core.RouteRail, Distance: 400, Cost: 90, Duration: 10, RiskScore: 0.1})
//	s := g.Snapshot()
package core
