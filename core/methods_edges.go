// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/OutEdges/EdgeCount.
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order.
// Concurrency:
//   - Endpoint checks under muNode read lock, then mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts a directed route e.Source → e.Target.
//
// Steps:
//  1. Validate ID and weights.
//  2. Under muNode read lock, ensure both endpoints exist.
//  3. Under muEdgeAdj write lock, reject duplicate IDs, then store the edge
//     and append it to the source's adjacency bucket.
//
// Errors:
//   - ErrEmptyID, ErrInvalidEdge, ErrUnknownEndpoint, ErrDuplicateID.
//
// A failed call leaves the edge set and adjacency untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	if e.ID == "" {
		return fmt.Errorf("%w: edge", ErrEmptyID)
	}
	if err := validateEdge(e); err != nil {
		return err
	}

	// muNode stays read-locked until the edge is linked (lock order muNode -> muEdgeAdj).
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[e.Source]; !ok {
		return fmt.Errorf("%w: edge %q source %q", ErrUnknownEndpoint, e.ID, e.Source)
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return fmt.Errorf("%w: edge %q target %q", ErrUnknownEndpoint, e.ID, e.Target)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[e.ID]; exists {
		return fmt.Errorf("%w: edge %q", ErrDuplicateID, e.ID)
	}

	stored := e
	g.edges[e.ID] = &stored
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.out[e.Source] = append(g.out[e.Source], e.ID)

	return nil
}

// RemoveEdge deletes the edge with the given ID and drops it from its
// source's adjacency bucket, so no stale entry survives.
//
// Errors: ErrNotFound.
// Complexity: O(E) for the order bookkeeping.
func (g *Graph) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: edge %q", ErrNotFound, id)
	}
	delete(g.edges, id)
	g.edgeOrder = removeID(g.edgeOrder, id)
	g.out[e.Source] = removeID(g.out[e.Source], id)

	return nil
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(id string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// Edge returns a copy of the edge with the given ID, or ErrNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: edge %q", ErrNotFound, id)
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, *g.edges[id])
	}

	return out
}

// OutEdges returns the edges whose source is nodeID, in insertion order.
// The slice is empty when the node has no outgoing routes.
//
// Errors: ErrNotFound if nodeID is not a node of the store.
// Complexity: O(out-degree).
func (g *Graph) OutEdges(nodeID string) ([]Edge, error) {
	if !g.HasNode(nodeID) {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, nodeID)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := g.out[nodeID]
	out := make([]Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, *g.edges[id])
	}

	return out, nil
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []string, id string) []string {
	for i, cur := range ids {
		if cur == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

func validateEdge(e Edge) error {
	for _, w := range [...]struct {
		name string
		v    float64
	}{
		{"distance", e.Distance},
		{"cost", e.Cost},
		{"duration", e.Duration},
	} {
		if w.v < 0 || math.IsNaN(w.v) || math.IsInf(w.v, 0) {
			return fmt.Errorf("%w: edge %q %s %g", ErrInvalidEdge, e.ID, w.name, w.v)
		}
	}
	if e.RiskScore < 0 || e.RiskScore > 1 || math.IsNaN(e.RiskScore) {
		return fmt.Errorf("%w: edge %q risk score %g outside [0,1]", ErrInvalidEdge, e.ID, e.RiskScore)
	}
	if e.RouteType != "" && !e.RouteType.Valid() {
		return fmt.Errorf("%w: edge %q route type %q", ErrInvalidEdge, e.ID, e.RouteType)
	}
	return nil
}
