// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// routes of a logistics network snapshot, with a caller-chosen weight
// dimension.
//
// Overview:
//
//   - Computes minimum-weight paths from one source node to every node
//     reachable along route direction in O((V + E) log V).
//   - Weight is chosen per call (ByDistance, ByCost, ByDuration or any
//     WeightFunc), so the route optimizer can run one search per criterion
//     against the same immutable snapshot, concurrently.
//   - Result.PathTo returns both the node sequence and the routes actually
//     traversed, which matters when parallel routes join the same two nodes.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(snap,
//	    dijkstra.Source("supplier_asia_1"),
//	    dijkstra.WithWeight(dijkstra.ByCost),
//	)
//	if err != nil {
//	    return err
//	}
//	nodes, routes, err := res.PathTo("store_west_1")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable under route direction
//	}
package dijkstra
