package core

// GymStateID is an opaque, dense integer handle assigned when a bar kind's
// state table is built (0..N-1, in Cartesian-product enumeration order).
// IDs from different bar kinds' tables are not comparable to one another —
// each kind owns an independent table starting at 0 — so callers must never
// mix GymStateIDs across kinds.
type GymStateID int

// GymState assigns one Loading to every bar of a given kind: "simultaneously,
// every bar of this kind is loaded this way." It is the unit the adjacency
// graph and distance oracle operate over.
type GymState struct {
	Loadings map[Bar]Loading
}

// Get returns the Loading assigned to bar within this state, if bar is one
// of the bars this state covers.
func (s GymState) Get(bar Bar) (Loading, bool) {
	l, ok := s.Loadings[bar]
	return l, ok
}

// PlateCount is the sum of plate counts across every Loading in the state,
// used as a tie-breaker when multiple states satisfy the same requirement:
// prefer fewer plates mounted overall.
func (s GymState) PlateCount() int {
	total := 0
	for _, l := range s.Loadings {
		total += l.PlateCount()
	}
	return total
}
