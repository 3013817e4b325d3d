package gym

import (
	"sort"

	"github.com/evanbrierton/barium-core/adjgraph"
	"github.com/evanbrierton/barium-core/core"
	"github.com/evanbrierton/barium-core/distance"
	"github.com/evanbrierton/barium-core/gymstate"
	"github.com/evanbrierton/barium-core/loading"
)

// Gym is a constructed planner over a fixed plate inventory and bar list.
// Every Loading, GymState, adjacency graph, and distance oracle it owns is
// built once in Construct and never mutated afterward.
type Gym struct {
	statesByKind  map[core.BarKind]map[core.GymStateID]core.GymState
	orderByKind   map[core.BarKind][]core.GymStateID
	oracleByKind  map[core.BarKind]*distance.Oracle
	weightsByKind map[core.BarKind][]core.Weight
}

// Construct builds a Gym from a plate inventory (multiplicity tracked by
// repetition) and the available bars. Construction never fails: an empty
// inventory simply leaves only bare-bar Loadings to choose from, and a bar
// kind with no bars is reported by Plan as an *InvalidConfigurationError
// when a requirement names it.
func Construct(plates []core.Plate, bars []core.Bar) *Gym {
	barsByKind := make(map[core.BarKind][]core.Bar)
	for _, b := range bars {
		barsByKind[b.Kind] = append(barsByKind[b.Kind], b)
	}
	for kind := range barsByKind {
		kindBars := barsByKind[kind]
		sort.Slice(kindBars, func(i, j int) bool { return kindBars[i].Less(kindBars[j]) })
		barsByKind[kind] = kindBars
	}

	statesByKind := make(map[core.BarKind]map[core.GymStateID]core.GymState, len(barsByKind))
	orderByKind := make(map[core.BarKind][]core.GymStateID, len(barsByKind))
	oracleByKind := make(map[core.BarKind]*distance.Oracle, len(barsByKind))
	weightsByKind := make(map[core.BarKind][]core.Weight, len(barsByKind))

	for kind, kindBars := range barsByKind {
		loadingsByBar := make(map[core.Bar][]core.Loading, len(kindBars))
		weightSet := make(map[core.Weight]bool)
		for _, bar := range kindBars {
			opts := loading.Enumerate(plates, bar)
			loadingsByBar[bar] = opts
			for _, l := range opts {
				weightSet[l.LiftedWeight()] = true
			}
		}

		order, states := gymstate.Build(kindBars, loadingsByBar)
		graph := adjgraph.Build(order, states)
		oracle := distance.Build(order, graph)

		weights := make([]core.Weight, 0, len(weightSet))
		for w := range weightSet {
			weights = append(weights, w)
		}
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })

		statesByKind[kind] = states
		orderByKind[kind] = order
		oracleByKind[kind] = oracle
		weightsByKind[kind] = weights
	}

	return &Gym{
		statesByKind:  statesByKind,
		orderByKind:   orderByKind,
		oracleByKind:  oracleByKind,
		weightsByKind: weightsByKind,
	}
}

// AvailableWeights returns the ordered set of distinct lifted weights
// realizable across all bars of kind, for a caller-owned UI to present as
// valid choices. The returned slice is a copy; mutating it does not affect
// the Gym.
func (g *Gym) AvailableWeights(kind core.BarKind) []core.Weight {
	src := g.weightsByKind[kind]
	out := make([]core.Weight, len(src))
	copy(out, src)
	return out
}
