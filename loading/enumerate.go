// Package loading implements the loading enumerator: given a plate
// inventory and one bar, it produces every distinct symmetric Loading that
// bar can realize.
package loading

import (
	"sort"
	"strconv"
	"strings"

	"github.com/evanbrierton/barium-core/core"
)

// Enumerate returns every distinct Loading realizable on bar from inventory,
// sorted by ascending lifted weight. The empty Loading (bare bar) is always
// present. Plates whose Gauge does not match bar's are ignored; if none
// match, only the bare-bar Loading is returned.
//
// Algorithm (mirrors spec.md §4.1):
//  1. Filter inventory to gauge-matched plates and count occurrences.
//  2. For each distinct weight, divide its count by
//     bar.Kind.RequiredSimilarPlates() to get how many times it may appear
//     on one side of a symmetric Loading.
//  3. Expand those counts into a flat slot multiset.
//  4. Enumerate the slot multiset's powerset; each subset, sorted
//     heaviest-first, is one candidate Loading (including the empty one).
//  5. Dedupe candidates by plate sequence.
//  6. Sort by ascending lifted weight.
//
// Complexity is O(2^k) in the number of usable slots k, which stays small in
// practice because realistic gym inventories offer only a handful of
// distinct plate weights per gauge.
func Enumerate(inventory []core.Plate, bar core.Bar) []core.Loading {
	counts := make(map[core.Plate]int, len(inventory))
	for _, p := range inventory {
		if p.Gauge != bar.Gauge {
			continue
		}
		counts[p]++
	}

	divisor := bar.Kind.RequiredSimilarPlates()
	slots := make([]core.Plate, 0, len(counts))
	for plate, count := range counts {
		usable := count / divisor
		for i := 0; i < usable; i++ {
			slots = append(slots, plate)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Weight != slots[j].Weight {
			return slots[i].Weight > slots[j].Weight
		}
		return slots[i].Gauge > slots[j].Gauge
	})

	n := len(slots)
	seen := make(map[string]bool, 1<<uint(n))
	loadings := make([]core.Loading, 0, 1<<uint(n))

	picked := make([]core.Plate, 0, n)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		picked = picked[:0]
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				picked = append(picked, slots[i])
			}
		}

		l := core.NewLoading(bar, picked)
		k := key(l)
		if seen[k] {
			continue
		}
		seen[k] = true
		loadings = append(loadings, l)
	}

	sort.SliceStable(loadings, func(i, j int) bool {
		return loadings[i].LiftedWeight() < loadings[j].LiftedWeight()
	})

	return loadings
}

// key builds a canonical, comparable string for deduplication. Loading
// itself embeds a slice and so is not directly usable as a map key.
func key(l core.Loading) string {
	var b strings.Builder
	for _, p := range l.Plates {
		b.WriteString(strconv.FormatInt(int64(p.Weight), 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(int64(p.Gauge), 10))
		b.WriteByte(',')
	}
	return b.String()
}
