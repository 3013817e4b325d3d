// Package adjgraph builds the undirected, unit-weight adjacency graph over
// GymStates: two states are joined by an edge iff they differ on exactly
// one bar by one adjacent Loading.
package adjgraph

import "github.com/evanbrierton/barium-core/core"

// Adjacent reports whether GymStates a and b differ on exactly one bar by
// an adjacent Loading, with every other bar present in both holding an
// identical Loading (spec.md §4.3). Bars present in only one of the two
// states are ignored — adjacency is only evaluated over the bars they
// share, which in practice is every bar of the kind, since both states come
// from the same kind's state table.
func Adjacent(a, b core.GymState) bool {
	adjacentCount := 0
	for bar, la := range a.Loadings {
		lb, ok := b.Get(bar)
		if !ok {
			continue
		}

		switch {
		case la.Equal(lb):
			// identical loading on this bar, fine.
		case la.Adjacent(lb):
			adjacentCount++
			if adjacentCount > 1 {
				return false
			}
		default:
			return false
		}
	}
	return adjacentCount == 1
}

// Graph is an undirected, unit-weight adjacency graph over GymStateIDs.
type Graph struct {
	neighbors map[core.GymStateID][]core.GymStateID
}

// Build constructs the adjacency graph for one bar kind's full state table,
// testing every unordered pair of states for adjacency. This is O(N^2) in
// the number of states, which spec.md §4.3 accepts because N stays small —
// inventory typically permits only dozens to low-hundreds of Loadings.
func Build(order []core.GymStateID, states map[core.GymStateID]core.GymState) *Graph {
	g := &Graph{neighbors: make(map[core.GymStateID][]core.GymStateID, len(order))}
	for _, id := range order {
		g.neighbors[id] = nil
	}

	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			u, v := order[i], order[j]
			if Adjacent(states[u], states[v]) {
				g.neighbors[u] = append(g.neighbors[u], v)
				g.neighbors[v] = append(g.neighbors[v], u)
			}
		}
	}

	return g
}

// Neighbors returns the states adjacent to id, or nil if id is isolated or
// unknown.
func (g *Graph) Neighbors(id core.GymStateID) []core.GymStateID {
	return g.neighbors[id]
}

// Nodes returns every node the graph was built with.
func (g *Graph) Nodes() []core.GymStateID {
	nodes := make([]core.GymStateID, 0, len(g.neighbors))
	for id := range g.neighbors {
		nodes = append(nodes, id)
	}
	return nodes
}
