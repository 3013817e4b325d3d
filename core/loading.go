package core

import "sort"

// Loading is a specific set of plates mounted symmetrically on one Bar.
// Plates are stored heaviest-first (canonical order, P4); two Loadings of
// the same Bar with the same plate sequence are equal even if they were
// built from differently-ordered input.
type Loading struct {
	Bar    Bar
	Plates []Plate
}

// NewLoading builds a Loading from an unordered plate slice, copying and
// sorting it into canonical heaviest-first order (ties broken by Gauge so
// the order is fully deterministic). It does not filter by gauge — the
// enumerator is responsible for only ever offering gauge-matched plates
// (P1); NewLoading just fixes ordering for whatever it is given.
func NewLoading(bar Bar, plates []Plate) Loading {
	sorted := make([]Plate, len(plates))
	copy(sorted, plates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		return sorted[i].Gauge > sorted[j].Gauge
	})
	return Loading{Bar: bar, Plates: sorted}
}

// LiftedWeight is the total mass the lifter moves: the bar's self-weight
// plus twice the per-side plate weight, once for each side of symmetry
// (P3). The same formula applies whether Bar.Kind is Barbell or Dumbbell;
// only the inventory divisor used to enumerate Loadings differs between the
// two kinds (see BarKind.RequiredSimilarPlates).
func (l Loading) LiftedWeight() Weight {
	var perSide Weight
	for _, p := range l.Plates {
		perSide += p.Weight
	}
	return l.Bar.SelfWeight + 2*perSide
}

// PlateCount is the number of plates mounted on one side.
func (l Loading) PlateCount() int {
	return len(l.Plates)
}

// Equal reports whether l and other mount the same Bar with the same plate
// sequence in the same order.
func (l Loading) Equal(other Loading) bool {
	if l.Bar != other.Bar || len(l.Plates) != len(other.Plates) {
		return false
	}
	for i, p := range l.Plates {
		if other.Plates[i] != p {
			return false
		}
	}
	return true
}

// Adjacent reports whether l and other differ by exactly one plate on one
// side, with the shorter loading's plate sequence a heaviest-first prefix
// of the longer's (P5). Adjacency is only meaningful between Loadings of
// the same Bar; Loadings of different Bars are never adjacent.
func (l Loading) Adjacent(other Loading) bool {
	if l.Bar != other.Bar {
		return false
	}

	shorter, longer := l, other
	if len(shorter.Plates) > len(longer.Plates) {
		shorter, longer = longer, shorter
	}
	if longer.PlateCount()-shorter.PlateCount() != 1 {
		return false
	}
	for i, p := range shorter.Plates {
		if longer.Plates[i] != p {
			return false
		}
	}
	return true
}
