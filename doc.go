// Package supplynet models a logistics network (suppliers, ports,
// warehouses, stores) as a weighted directed graph and computes structural
// analytics over it.
//
// What you get:
//
//	• Graph Store: concurrency-safe nodes and routes with immutable snapshots
//	• Network analysis: density, connectivity, betweenness and closeness,
//	  resilience heuristic, capacity bottlenecks, recommendations
//	• Route optimization: best path by distance, cost or duration, and a
//	  weighted ranking of every route
//	• Datasets: YAML/JSON documents, validation, a SQLite repository
//
// Packages, leaf first:
//
//	core/         Graph Store, Node, Edge, Snapshot, sentinel errors
//	bfs/          hop-count traversal, weak components
//	dijkstra/     single-source shortest paths under a chosen route weight
//	flow/         Edmonds–Karp max-flow, edge-disjoint paths, connectivity
//	centrality/   Brandes betweenness, closeness
//	analyzer/     NetworkReport
//	optimizer/    point-to-point and global route ranking
//	analysis/     Service facade with logging and Prometheus metrics
//	dataset/      records, codec, graph builder, embedded sample network
//	store/        dataset repository interface; sqlite/ implements it
//	config/       YAML configuration
//	cmd/supplynet  command-line front end
//
// Quick start:
//
//	g, _ := dataset.SampleGraph()
//	svc := analysis.New()
//	report, _ := svc.AnalyzeNetwork(ctx, g)
//	routes, _ := svc.FindOptimalRoutes(ctx, g, analysis.RouteRequest{
//		Source: "supplier_asia_1", Target: "store_west_1",
//	})
//
// Every analysis runs on one snapshot of the store, so concurrent writers
// never tear a report.
package supplynet
