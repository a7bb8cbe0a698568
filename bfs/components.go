package bfs

import "github.com/katalvlaran/supplynet/core"

// Components partitions the nodes of s into weakly connected components,
// i.e. connected components of the undirected projection.
//
// Components are ordered by their first node in insertion order, and the IDs
// inside each component follow insertion order as well.
// Complexity: O(V + E log E).
func Components(s *core.Snapshot) [][]string {
	if s == nil || s.Len() == 0 {
		return nil
	}

	adj := s.UndirectedAdjacency()
	comp := make([]int, s.Len())
	for i := range comp {
		comp[i] = -1
	}

	count := 0
	stack := make([]int, 0, s.Len())
	for root := 0; root < s.Len(); root++ {
		if comp[root] >= 0 {
			continue
		}
		comp[root] = count
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, v := range adj[u] {
				if comp[v] < 0 {
					comp[v] = count
					stack = append(stack, v)
				}
			}
		}
		count++
	}

	out := make([][]string, count)
	for i, c := range comp {
		out[c] = append(out[c], s.NodeAt(i).ID)
	}
	return out
}

// IsWeaklyConnected reports whether the undirected projection of s is
// connected. A snapshot with no nodes is not connected; a single node is.
func IsWeaklyConnected(s *core.Snapshot) bool {
	if s == nil || s.Len() == 0 {
		return false
	}
	return len(Components(s)) == 1
}
