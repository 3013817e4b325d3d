// Package core defines the value types shared by every component of a
// loading planner: Plate, Bar, BarKind, Loading, GymState, GymStateID,
// Requirement, and Workout.
//
// Everything here is an immutable value built once and read many times.
// Plates, Bars, and Requirements are small enough to copy freely; Loadings
// and GymStates are larger and are normally passed by value but referenced
// by GymStateID once a state table exists. None of these types carry
// behavior beyond value equality, ordering, and the predicates spec.md
// assigns to them (LiftedWeight, Adjacent, Matches) — the algorithms that
// build, relate, and choose among them live in the loading, gymstate,
// adjgraph, distance, and planner packages.
package core
