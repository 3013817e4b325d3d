package gym

import (
	"errors"
	"sort"

	"github.com/evanbrierton/barium-core/core"
	"github.com/evanbrierton/barium-core/planner"
)

// requirementAt pairs a Requirement with its index in the original,
// ungrouped requirement list.
type requirementAt struct {
	req core.Requirement
	idx int
}

// Plan selects one GymState per requirement, minimizing the total number of
// plate add/remove transitions between consecutive states of the same bar
// kind, and materializes the result into a Workout.
//
// Requirements are grouped by bar kind, preserving each group's original
// relative order (spec.md §4.5.1); each group is solved independently, so
// the order requirements of different kinds are interleaved in the input
// does not affect the result, since Workout is keyed by bar rather than by
// request order.
//
// Plan fails fast: the first unsatisfiable requirement it encounters (by
// group-processing order) is reported via *ImpossibleRequirementError or
// *InvalidConfigurationError, and no partial Workout is returned.
func (g *Gym) Plan(requirements []core.Requirement) (core.Workout, error) {
	workout := core.NewWorkout()
	if len(requirements) == 0 {
		return workout, nil
	}

	groups, kindOrder := groupByKind(requirements)

	for _, kind := range kindOrder {
		reqs := groups[kind]

		states, ok := g.statesByKind[kind]
		if !ok || len(states) == 0 {
			return core.Workout{}, &InvalidConfigurationError{Requirement: reqs[0].req}
		}

		layers := make([][]core.GymStateID, len(reqs))
		for i, r := range reqs {
			layers[i] = g.candidatesFor(kind, r.req)
			if len(layers[i]) == 0 {
				return core.Workout{}, &ImpossibleRequirementError{Requirement: r.req}
			}
		}

		oracle := g.oracleByKind[kind]
		sequence, _, err := planner.Solve(layers, func(u, v core.GymStateID) (int, bool) {
			return oracle.Distance(u, v)
		})
		if err != nil {
			var ue *planner.UnreachableError
			if errors.As(err, &ue) {
				return core.Workout{}, &ImpossibleRequirementError{Requirement: reqs[ue.Layer].req}
			}
			return core.Workout{}, err
		}

		if err := materialize(&workout, states, reqs, sequence); err != nil {
			return core.Workout{}, err
		}
	}

	return workout, nil
}

func groupByKind(requirements []core.Requirement) (map[core.BarKind][]requirementAt, []core.BarKind) {
	groups := make(map[core.BarKind][]requirementAt)
	var order []core.BarKind
	for i, r := range requirements {
		if _, seen := groups[r.Kind]; !seen {
			order = append(order, r.Kind)
		}
		groups[r.Kind] = append(groups[r.Kind], requirementAt{req: r, idx: i})
	}
	return groups, order
}

// candidatesFor returns the GymStateIDs of kind that satisfy req, sorted by
// ascending plate count with ties broken by ascending GymStateID (spec.md
// §4.5.a), which also makes it safe for planner.Solve's single-requirement
// shortcut to simply take the first element.
func (g *Gym) candidatesFor(kind core.BarKind, req core.Requirement) []core.GymStateID {
	states := g.statesByKind[kind]

	var matches []core.GymStateID
	for _, id := range g.orderByKind[kind] {
		if stateSatisfies(states[id], req) {
			matches = append(matches, id)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		pi, pj := states[matches[i]].PlateCount(), states[matches[j]].PlateCount()
		if pi != pj {
			return pi < pj
		}
		return matches[i] < matches[j]
	})

	return matches
}

func stateSatisfies(state core.GymState, req core.Requirement) bool {
	for _, l := range state.Loadings {
		if req.Matches(l) {
			return true
		}
	}
	return false
}

// materialize appends, for each chosen state in sequence, the Loading that
// satisfies its requirement to the owning bar's entry in workout. A state
// can in principle satisfy the requirement on more than one bar at once
// (two bars loaded identically to the same target weight); every matching
// bar gets the appended Loading, in ascending Bar.Less order rather than
// map iteration order, so the first-seen order behind Workout.Bars() stays
// reproducible across runs (spec.md §9, hash-order nondeterminism).
func materialize(workout *core.Workout, states map[core.GymStateID]core.GymState, reqs []requirementAt, sequence []core.GymStateID) error {
	for i, id := range sequence {
		state := states[id]
		req := reqs[i].req

		bars := make([]core.Bar, 0, len(state.Loadings))
		for bar := range state.Loadings {
			bars = append(bars, bar)
		}
		sort.Slice(bars, func(a, b int) bool { return bars[a].Less(bars[b]) })

		matched := false
		for _, bar := range bars {
			if l := state.Loadings[bar]; req.Matches(l) {
				workout.Append(bar, l)
				matched = true
			}
		}
		if !matched {
			return &ImpossibleRequirementError{Requirement: req}
		}
	}
	return nil
}
