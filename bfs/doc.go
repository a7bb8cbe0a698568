// Package bfs provides breadth-first search over a core.Snapshot,
// returning hop-count distances, parent links, and visit order, plus the
// weak-connectivity helpers used by network analysis.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Follow routes Outgoing (source → target) or Undirected (both ways).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → hop count from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Components / IsWeaklyConnected over the undirected projection.
//
// Determinism
//
//	Outgoing routes are expanded in insertion order, followed (for
//	Undirected) by incoming routes in insertion order, so the visit sequence
//	is fully reproducible for a given snapshot.
//
// Complexity (V = nodes, E = routes)
//
//   - Time:   O(V + E)
//   - Memory: O(V) (plus O(E) reverse adjacency for Undirected)
//
// Usage
//
//	res, err := bfs.BFS(snap, "port_asia_1",
//	    bfs.WithContext(ctx),
//	    bfs.WithDirection(bfs.Undirected),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil           if the snapshot pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    for invalid options (negative MaxDepth, unknown Direction).
//   - ctx.Err()             on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
