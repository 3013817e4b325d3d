// Package planner implements the layered shortest-path dynamic program that
// chooses one GymStateID per requirement, minimizing the total transition
// cost between consecutive choices (spec.md §4.5).
package planner

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/evanbrierton/barium-core/core"
)

// ErrUnreachable is the sentinel behind every UnreachableError.
var ErrUnreachable = errors.New("planner: no reachable sequence")

// UnreachableError reports the first layer (0-indexed, matching the
// requirement it was built from) that has no finite-cost path from any
// surviving predecessor.
type UnreachableError struct {
	Layer int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: layer %d", ErrUnreachable, e.Layer)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachable }

// DistanceFunc returns the transition cost between two states, and false if
// no path connects them.
type DistanceFunc func(u, v core.GymStateID) (int, bool)

// Solve picks one GymStateID per layer, minimizing the sum of pairwise
// DistanceFunc costs between consecutive picks.
//
// layers[i] is the candidate set for requirement i; callers must pre-sort
// each layer by ascending plate count with ties broken by ascending
// GymStateID (spec.md §4.5.a) — Solve trusts that order for the
// single-layer shortcut and otherwise only depends on layer membership, not
// its order, since the DP itself re-sorts predecessors by ID before
// scanning them.
//
// Returns the chosen sequence (one ID per layer) and its total cost. An
// empty layers slice returns (nil, 0, nil). If a layer is empty, or if no
// state in a later layer is reachable from any surviving state of the layer
// before it, the index of the first such layer is reported via an
// *UnreachableError. States of a layer that no predecessor reaches are
// dropped without error as long as at least one state of the layer is
// reachable.
//
// Complexity: O(n * C^2) where n = len(layers) and C = max layer size,
// matching spec.md's stated planner-loop complexity.
func Solve(layers [][]core.GymStateID, dist DistanceFunc) ([]core.GymStateID, int, error) {
	n := len(layers)
	if n == 0 {
		return nil, 0, nil
	}
	if len(layers[0]) == 0 {
		return nil, 0, &UnreachableError{Layer: 0}
	}
	if n == 1 {
		return []core.GymStateID{layers[0][0]}, 0, nil
	}

	type node struct {
		cost int
		prev core.GymStateID
	}

	const unreachable = math.MaxInt

	dp := make([]map[core.GymStateID]node, n)
	dp[0] = make(map[core.GymStateID]node, len(layers[0]))
	for _, id := range layers[0] {
		dp[0][id] = node{cost: 0}
	}

	for i := 1; i < n; i++ {
		if len(layers[i]) == 0 {
			return nil, 0, &UnreachableError{Layer: i}
		}

		prevIDs := make([]core.GymStateID, 0, len(dp[i-1]))
		for id := range dp[i-1] {
			prevIDs = append(prevIDs, id)
		}
		sort.Slice(prevIDs, func(a, b int) bool { return prevIDs[a] < prevIDs[b] })

		dp[i] = make(map[core.GymStateID]node, len(layers[i]))
		for _, cur := range layers[i] {
			bestCost := unreachable
			var bestPrev core.GymStateID
			found := false

			for _, prev := range prevIDs {
				d, ok := dist(prev, cur)
				if !ok {
					continue
				}
				total := saturatingAdd(dp[i-1][prev].cost, d)
				if total < bestCost {
					bestCost = total
					bestPrev = prev
					found = true
				}
			}

			if found {
				dp[i][cur] = node{cost: bestCost, prev: bestPrev}
			}
		}

		if len(dp[i]) == 0 {
			return nil, 0, &UnreachableError{Layer: i}
		}
	}

	finalIDs := make([]core.GymStateID, 0, len(dp[n-1]))
	for id := range dp[n-1] {
		finalIDs = append(finalIDs, id)
	}
	sort.Slice(finalIDs, func(a, b int) bool { return finalIDs[a] < finalIDs[b] })

	finalCost := unreachable
	var finalID core.GymStateID
	for _, id := range finalIDs {
		if c := dp[n-1][id].cost; c < finalCost {
			finalCost = c
			finalID = id
		}
	}

	path := make([]core.GymStateID, n)
	path[n-1] = finalID
	cur := finalID
	for i := n - 1; i > 0; i-- {
		cur = dp[i][cur].prev
		path[i-1] = cur
	}

	return path, finalCost, nil
}

// saturatingAdd adds a and b, clamping to math.MaxInt on overflow so a
// cumulative cost can never wrap around into a small, seemingly-reachable
// cost. Pairs the DistanceFunc reports as unconnected never get here: Solve
// skips them before adding.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
