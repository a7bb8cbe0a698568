package flow

import (
	"context"
	"math"
)

// network is an index-based residual graph. Arcs are stored in pairs so that
// arc a and a^1 are each other's reverse.
type network struct {
	head [][]int   // head[u] = arc indexes leaving u
	to   []int     // to[a]   = arc target
	cap  []float64 // cap[a]  = residual capacity
}

func newNetwork(n int) *network {
	return &network{head: make([][]int, n)}
}

// addArc inserts u→v with capacity c and its zero-capacity reverse.
func (nw *network) addArc(u, v int, c float64) {
	nw.head[u] = append(nw.head[u], len(nw.to))
	nw.to = append(nw.to, v)
	nw.cap = append(nw.cap, c)

	nw.head[v] = append(nw.head[v], len(nw.to))
	nw.to = append(nw.to, u)
	nw.cap = append(nw.cap, 0)
}

// maxFlow runs Edmonds–Karp from s to t and leaves the residual capacities
// in place. Cancellation is checked once per augmentation.
//
// Complexity: O(V · E²).
func (nw *network) maxFlow(ctx context.Context, s, t int, eps float64) (float64, error) {
	var total float64
	n := len(nw.head)
	parentArc := make([]int, n)
	queue := make([]int, 0, n)

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		for i := range parentArc {
			parentArc[i] = -1
		}
		queue = append(queue[:0], s)
		reached := false
		for len(queue) > 0 && !reached {
			u := queue[0]
			queue = queue[1:]
			for _, a := range nw.head[u] {
				v := nw.to[a]
				if v == s || parentArc[v] >= 0 || nw.cap[a] <= eps {
					continue
				}
				parentArc[v] = a
				if v == t {
					reached = true
					break
				}
				queue = append(queue, v)
			}
		}
		if !reached {
			return total, nil
		}

		bottle := math.Inf(1)
		for v := t; v != s; v = nw.to[parentArc[v]^1] {
			bottle = math.Min(bottle, nw.cap[parentArc[v]])
		}
		for v := t; v != s; v = nw.to[parentArc[v]^1] {
			a := parentArc[v]
			nw.cap[a] -= bottle
			nw.cap[a^1] += bottle
		}
		total += bottle
	}
}
