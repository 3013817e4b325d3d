package gymstate_test

import (
	"testing"

	"github.com/evanbrierton/barium-core/core"
	"github.com/evanbrierton/barium-core/gymstate"
)

func TestBuild_EmptyBars(t *testing.T) {
	order, states := gymstate.Build(nil, nil)
	if len(order) != 0 || len(states) != 0 {
		t.Fatalf("Build(nil, nil) = (%v, %v), want empty", order, states)
	}
}

func TestBuild_CartesianProductSizeAndUniqueness(t *testing.T) {
	barA := core.Bar{SelfWeight: 15000, Gauge: 50, Kind: core.Barbell}
	barB := core.Bar{SelfWeight: 20000, Gauge: 50, Kind: core.Barbell}

	loadA := []core.Loading{
		core.NewLoading(barA, nil),
		core.NewLoading(barA, []core.Plate{{Weight: 10000, Gauge: 50}}),
	}
	loadB := []core.Loading{
		core.NewLoading(barB, nil),
		core.NewLoading(barB, []core.Plate{{Weight: 5000, Gauge: 50}}),
		core.NewLoading(barB, []core.Plate{{Weight: 10000, Gauge: 50}}),
	}

	bars := []core.Bar{barA, barB}
	loadingsByBar := map[core.Bar][]core.Loading{barA: loadA, barB: loadB}

	order, states := gymstate.Build(bars, loadingsByBar)

	if want := len(loadA) * len(loadB); len(order) != want || len(states) != want {
		t.Fatalf("len(order)=%d len(states)=%d, want %d (Cartesian product)", len(order), len(states), want)
	}

	seen := make(map[[2]core.Weight]bool)
	for _, id := range order {
		s := states[id]
		la, _ := s.Get(barA)
		lb, _ := s.Get(barB)
		key := [2]core.Weight{la.LiftedWeight(), lb.LiftedWeight()}
		if seen[key] {
			t.Fatalf("duplicate combination for state %v", id)
		}
		seen[key] = true
	}

	for i, id := range order {
		if int(id) != i {
			t.Fatalf("GymStateID %v not dense/ordered at position %d", id, i)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	barA := core.Bar{SelfWeight: 15000, Gauge: 50, Kind: core.Barbell}
	loadA := []core.Loading{
		core.NewLoading(barA, nil),
		core.NewLoading(barA, []core.Plate{{Weight: 10000, Gauge: 50}}),
	}
	bars := []core.Bar{barA}
	loadingsByBar := map[core.Bar][]core.Loading{barA: loadA}

	order1, states1 := gymstate.Build(bars, loadingsByBar)
	order2, states2 := gymstate.Build(bars, loadingsByBar)

	if len(order1) != len(order2) {
		t.Fatalf("non-deterministic output length across calls")
	}
	for i := range order1 {
		if order1[i] != order2[i] {
			t.Fatalf("non-deterministic GymStateID ordering at %d: %v vs %v", i, order1[i], order2[i])
		}
		l1, _ := states1[order1[i]].Get(barA)
		l2, _ := states2[order2[i]].Get(barA)
		if !l1.Equal(l2) {
			t.Fatalf("non-deterministic Loading assignment at %d", i)
		}
	}
}
