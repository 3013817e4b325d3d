// Package distance computes all-pairs shortest paths over an adjgraph.Graph
// and exposes the result as a read-only Oracle.
package distance

import (
	"github.com/evanbrierton/barium-core/adjgraph"
	"github.com/evanbrierton/barium-core/core"
)

// Oracle holds all-pairs shortest-path distances, built once and read-only
// thereafter. Unreachable pairs are simply absent from the table.
type Oracle struct {
	dist map[core.GymStateID]map[core.GymStateID]int
}

// Build runs a breadth-first search from every node in g. Because every
// edge in the adjacency graph has unit weight, BFS from each source gives
// exact shortest-path distances — equivalent to Johnson's algorithm
// specialized to the unweighted case, and considerably cheaper (spec.md
// §4.4 allows either).
func Build(order []core.GymStateID, g *adjgraph.Graph) *Oracle {
	o := &Oracle{dist: make(map[core.GymStateID]map[core.GymStateID]int, len(order))}
	for _, src := range order {
		o.dist[src] = bfsFrom(src, g)
	}
	return o
}

func bfsFrom(src core.GymStateID, g *adjgraph.Graph) map[core.GymStateID]int {
	dist := map[core.GymStateID]int{src: 0}
	queue := []core.GymStateID{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, nbr := range g.Neighbors(cur) {
			if _, visited := dist[nbr]; visited {
				continue
			}
			dist[nbr] = dist[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return dist
}

// Distance returns the minimum number of single-plate-change steps to
// transform state u into state v, or (0, false) if v is unreachable from u.
// Distance(u, u) is always (0, true); Distance is symmetric because the
// underlying graph is undirected.
func (o *Oracle) Distance(u, v core.GymStateID) (int, bool) {
	row, ok := o.dist[u]
	if !ok {
		return 0, false
	}
	d, ok := row[v]
	return d, ok
}
