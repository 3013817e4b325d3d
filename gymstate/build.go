// Package gymstate builds the set of GymStates realizable across every bar
// of one BarKind, by taking the Cartesian product of each bar's enumerated
// Loadings.
package gymstate

import "github.com/evanbrierton/barium-core/core"

// Build computes the Cartesian product of loadingsByBar over bars, assigning
// each resulting combination a dense core.GymStateID in enumeration order
// (0..N-1).
//
// bars must already be in a fixed, deterministic order — callers sort by
// core.Bar.Less — since the product's enumeration order, and therefore every
// GymStateID, depends on it; two calls with the same bars order and the same
// per-bar loading lists always produce the same IDs (P8).
//
// The returned order slice lists IDs in that same enumeration order; states
// maps each ID to its GymState. If bars is empty, both returns are empty.
func Build(bars []core.Bar, loadingsByBar map[core.Bar][]core.Loading) ([]core.GymStateID, map[core.GymStateID]core.GymState) {
	if len(bars) == 0 {
		return nil, map[core.GymStateID]core.GymState{}
	}

	combos := [][]core.Loading{{}}
	for _, bar := range bars {
		options := loadingsByBar[bar]
		next := make([][]core.Loading, 0, len(combos)*len(options))
		for _, combo := range combos {
			for _, opt := range options {
				extended := make([]core.Loading, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = opt
				next = append(next, extended)
			}
		}
		combos = next
	}

	order := make([]core.GymStateID, 0, len(combos))
	states := make(map[core.GymStateID]core.GymState, len(combos))
	for i, combo := range combos {
		loadings := make(map[core.Bar]core.Loading, len(bars))
		for j, bar := range bars {
			loadings[bar] = combo[j]
		}
		id := core.GymStateID(i)
		states[id] = core.GymState{Loadings: loadings}
		order = append(order, id)
	}

	return order, states
}
