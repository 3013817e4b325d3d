package core

import "fmt"

// Requirement is a requested (target weight, bar kind) pair: the planner
// must realize Weight on some bar of Kind.
type Requirement struct {
	Weight Weight
	Kind   BarKind
}

// Matches reports whether Loading l realizes this Requirement: l's lifted
// weight equals Weight and l's bar is of Kind.
func (r Requirement) Matches(l Loading) bool {
	return r.Weight == l.LiftedWeight() && r.Kind == l.Bar.Kind
}

// String renders the requirement for error messages; callers needing
// request-string parsing or unit-aware formatting own that layer themselves.
func (r Requirement) String() string {
	return fmt.Sprintf("%d %s", r.Weight, r.Kind)
}
