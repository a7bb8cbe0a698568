// Package flow implements maximum-flow routines over a logistics network
// snapshot and the connectivity measures built on them.
//
// # Algorithms
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²); Memory: O(V + E).
//
//   - Capacities come from a CapacityFunc over core.Edge, so the same
//     snapshot can be read as a unit-capacity network or weighted by any
//     route attribute.
//
//   - EdgeDisjointPaths: unit-capacity max-flow along route direction.
//
//   - LocalNodeConnectivity / AverageNodeConnectivity: node-disjoint paths in
//     the undirected projection, via node splitting.
//
//   - LocalEdgeConnectivity / EdgeConnectivity: edge-disjoint paths between two
//     nodes, and the global edge connectivity λ, of the undirected projection.
//
// # Graph Support
//
//	– Parallel routes contribute separate arcs in directed flows and collapse
//	  into one edge in the undirected projection.
//	– Self-loops are ignored.
//
// # Errors
//
//	ErrSourceNotFound - the source node is missing.
//	ErrSinkNotFound   - the sink node is missing.
//	ErrSameEndpoints  - source and sink coincide.
//	ErrTooFewNodes    - graph-wide measures on fewer than two nodes.
//	EdgeError         - a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
package flow
