// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, index-based copy of a Graph consumed by the analytics packages.
// Determinism:
//   - Node index i is the i-th node in store insertion order; edge index j likewise.
// Concurrency:
//   - Snapshot() takes read locks on the source graph only.
//   - A *Snapshot is never mutated after construction and is safe for
//     unsynchronized concurrent reads.

package core

import (
	"fmt"
	"sort"
)

// Snapshot is a read-only view of a Graph frozen at one point in time.
//
// Algorithms address nodes and edges by dense integer indexes; the string-keyed
// accessors mirror the Graph read contract for callers.
type Snapshot struct {
	nodes []Node
	edges []Edge

	nodeIndex map[string]int
	edgeIndex map[string]int

	// out[i] = indexes of edges leaving node i, in insertion order
	out [][]int
}

// Snapshot copies the current nodes, edges and adjacency into a new *Snapshot.
// Later mutations of g are not visible through the result.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := &Snapshot{
		nodes:     make([]Node, len(g.nodeOrder)),
		edges:     make([]Edge, len(g.edgeOrder)),
		nodeIndex: make(map[string]int, len(g.nodeOrder)),
		edgeIndex: make(map[string]int, len(g.edgeOrder)),
		out:       make([][]int, len(g.nodeOrder)),
	}
	for i, id := range g.nodeOrder {
		s.nodes[i] = cloneNode(g.nodes[id])
		s.nodeIndex[id] = i
	}
	for j, id := range g.edgeOrder {
		e := *g.edges[id]
		s.edges[j] = e
		s.edgeIndex[id] = j
	}
	for i, id := range g.nodeOrder {
		bucket := g.out[id]
		if len(bucket) == 0 {
			continue
		}
		s.out[i] = make([]int, len(bucket))
		for k, eid := range bucket {
			s.out[i][k] = s.edgeIndex[eid]
		}
	}

	return s
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.nodes) }

// EdgeCount returns the number of edges.
func (s *Snapshot) EdgeCount() int { return len(s.edges) }

// Index returns the dense index of node id and whether it exists.
func (s *Snapshot) Index(id string) (int, bool) {
	i, ok := s.nodeIndex[id]
	return i, ok
}

// NodeAt returns the node at index i. It panics if i is out of range.
func (s *Snapshot) NodeAt(i int) Node { return s.nodes[i] }

// EdgeAt returns the edge at index j. It panics if j is out of range.
func (s *Snapshot) EdgeAt(j int) Edge { return s.edges[j] }

// OutAt returns the indexes of edges leaving node i. The slice must not be modified.
func (s *Snapshot) OutAt(i int) []int { return s.out[i] }

// SourceOf returns the node index of edge j's source.
func (s *Snapshot) SourceOf(j int) int { return s.nodeIndex[s.edges[j].Source] }

// TargetOf returns the node index of edge j's target.
func (s *Snapshot) TargetOf(j int) int { return s.nodeIndex[s.edges[j].Target] }

// Node returns the node with the given ID, or ErrNotFound.
func (s *Snapshot) Node(id string) (Node, error) {
	i, ok := s.nodeIndex[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: node %q", ErrNotFound, id)
	}
	return s.nodes[i], nil
}

// Edge returns the edge with the given ID, or ErrNotFound.
func (s *Snapshot) Edge(id string) (Edge, error) {
	j, ok := s.edgeIndex[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: edge %q", ErrNotFound, id)
	}
	return s.edges[j], nil
}

// Nodes returns all nodes in insertion order. The slice is a copy.
func (s *Snapshot) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns all edges in insertion order. The slice is a copy.
func (s *Snapshot) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// OutEdges returns the edges leaving nodeID, or ErrNotFound.
func (s *Snapshot) OutEdges(nodeID string) ([]Edge, error) {
	i, ok := s.nodeIndex[nodeID]
	if !ok {
		return nil, fmt.Errorf("%w: node %q", ErrNotFound, nodeID)
	}
	out := make([]Edge, len(s.out[i]))
	for k, j := range s.out[i] {
		out[k] = s.edges[j]
	}
	return out, nil
}

// UndirectedAdjacency returns, for every node index, the sorted distinct
// neighbour indexes of the undirected projection. Self-loops are dropped and
// parallel or antiparallel edges collapse into one neighbour entry.
//
// Complexity: O(V + E log E).
func (s *Snapshot) UndirectedAdjacency() [][]int {
	n := len(s.nodes)
	seen := make([]map[int]struct{}, n)
	for j := range s.edges {
		u, v := s.SourceOf(j), s.TargetOf(j)
		if u == v {
			continue
		}
		if seen[u] == nil {
			seen[u] = make(map[int]struct{})
		}
		if seen[v] == nil {
			seen[v] = make(map[int]struct{})
		}
		seen[u][v] = struct{}{}
		seen[v][u] = struct{}{}
	}

	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		if len(seen[u]) == 0 {
			continue
		}
		adj[u] = make([]int, 0, len(seen[u]))
		for v := range seen[u] {
			adj[u] = append(adj[u], v)
		}
		sort.Ints(adj[u])
	}
	return adj
}
