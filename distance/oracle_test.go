package distance_test

import (
	"testing"

	"github.com/evanbrierton/barium-core/adjgraph"
	"github.com/evanbrierton/barium-core/core"
	"github.com/evanbrierton/barium-core/distance"
)

// buildLine builds a path graph 0-1-...-(n-1) with adjgraph.Build over a
// hand-rolled core.GymState chain: state i mounts the first i plates of one
// heaviest-first sequence, so the adjacency predicate joins only states with
// consecutive plate counts.
func buildLine(t *testing.T, n int) (*adjgraph.Graph, []core.GymStateID) {
	t.Helper()
	bar := core.Bar{SelfWeight: 15000, Gauge: 50, Kind: core.Barbell}

	order := make([]core.GymStateID, n)
	states := make(map[core.GymStateID]core.GymState, n)
	for i := 0; i < n; i++ {
		plates := make([]core.Plate, i)
		for j := range plates {
			plates[j] = core.Plate{Weight: core.Weight(10000 - j*100), Gauge: 50}
		}
		id := core.GymStateID(i)
		order[i] = id
		states[id] = core.GymState{Loadings: map[core.Bar]core.Loading{bar: core.NewLoading(bar, plates)}}
	}

	return adjgraph.Build(order, states), order
}

func TestOracle_DistanceZeroSelf(t *testing.T) {
	g, order := buildLine(t, 4)
	o := distance.Build(order, g)

	for _, id := range order {
		d, ok := o.Distance(id, id)
		if !ok || d != 0 {
			t.Errorf("Distance(%v, %v) = (%d, %v), want (0, true)", id, id, d, ok)
		}
	}
}

func TestOracle_ShortestPathAlongChain(t *testing.T) {
	g, order := buildLine(t, 4)
	o := distance.Build(order, g)

	d, ok := o.Distance(order[0], order[3])
	if !ok || d != 3 {
		t.Errorf("Distance(0, 3) = (%d, %v), want (3, true)", d, ok)
	}
}

func TestOracle_Symmetric(t *testing.T) {
	g, order := buildLine(t, 4)
	o := distance.Build(order, g)

	for i := 0; i < len(order); i++ {
		for j := 0; j < len(order); j++ {
			dij, okij := o.Distance(order[i], order[j])
			dji, okji := o.Distance(order[j], order[i])
			if okij != okji || dij != dji {
				t.Fatalf("Distance(%d,%d)=(%d,%v) != Distance(%d,%d)=(%d,%v)", i, j, dij, okij, j, i, dji, okji)
			}
		}
	}
}

func TestOracle_UnreachablePairAbsent(t *testing.T) {
	bar := core.Bar{SelfWeight: 15000, Gauge: 50, Kind: core.Barbell}
	order := []core.GymStateID{0, 1}
	// Two states that differ by 5 plates: not adjacent, and the graph has no
	// other nodes to route through, so they stay disconnected.
	plates := make([]core.Plate, 5)
	for i := range plates {
		plates[i] = core.Plate{Weight: core.Weight(10000 - i*100), Gauge: 50}
	}
	states := map[core.GymStateID]core.GymState{
		0: {Loadings: map[core.Bar]core.Loading{bar: core.NewLoading(bar, nil)}},
		1: {Loadings: map[core.Bar]core.Loading{bar: core.NewLoading(bar, plates)}},
	}
	g := adjgraph.Build(order, states)
	o := distance.Build(order, g)

	if _, ok := o.Distance(0, 1); ok {
		t.Error("disconnected states should report unreachable")
	}
}
