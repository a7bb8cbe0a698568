// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns nodes in insertion order.
// Concurrency:
//   - Node catalog protected by muNode.
//   - AddNode bootstraps the adjacency bucket under muEdgeAdj.

package core

import (
	"fmt"
	"math"
)

// AddNode inserts n into the store.
//
// Errors:
//   - ErrEmptyID: n.ID == "".
//   - ErrInvalidNode: negative or non-finite capacity/fill level, unknown risk level.
//   - ErrDuplicateID: a node with n.ID already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return fmt.Errorf("%w: node", ErrEmptyID)
	}
	if err := validateNode(n); err != nil {
		return err
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: node %q", ErrDuplicateID, n.ID)
	}

	stored := n
	if n.FillLevel != nil {
		fill := *n.FillLevel
		stored.FillLevel = &fill
	}
	g.nodes[n.ID] = &stored
	g.nodeOrder = append(g.nodeOrder, n.ID)

	g.muEdgeAdj.Lock()
	if _, ok := g.out[n.ID]; !ok {
		g.out[n.ID] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID, or ErrNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: node %q", ErrNotFound, id)
	}

	return cloneNode(n), nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, cloneNode(g.nodes[id]))
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// cloneNode copies n including its optional fill level, so callers can never
// alias store-owned memory.
func cloneNode(n *Node) Node {
	c := *n
	if n.FillLevel != nil {
		fill := *n.FillLevel
		c.FillLevel = &fill
	}
	return c
}

func validateNode(n Node) error {
	if n.Capacity < 0 || math.IsNaN(n.Capacity) || math.IsInf(n.Capacity, 0) {
		return fmt.Errorf("%w: node %q capacity %g", ErrInvalidNode, n.ID, n.Capacity)
	}
	if n.FillLevel != nil {
		fill := *n.FillLevel
		if fill < 0 || math.IsNaN(fill) || math.IsInf(fill, 0) {
			return fmt.Errorf("%w: node %q fill level %g", ErrInvalidNode, n.ID, fill)
		}
	}
	if n.RiskLevel != "" && !n.RiskLevel.Valid() {
		return fmt.Errorf("%w: node %q risk level %q", ErrInvalidNode, n.ID, n.RiskLevel)
	}
	return nil
}
