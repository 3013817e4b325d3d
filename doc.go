// Package gym plans an ordered sequence of loaded bar configurations
// (dumbbells and barbells) that realizes a lifting session, given a fixed
// inventory of plates and bars.
//
// Construct builds a Gym once from a plate inventory and a bar list; Plan
// then takes an ordered list of weight/bar-kind Requirements and returns a
// Workout — a per-bar ordered list of Loadings — chosen to minimize the
// total number of plate add/remove transitions between consecutive
// loadings of the same bar, so a lifting session flows smoothly from one
// weight to the next.
//
// Gym composes five pieces, each in its own subpackage:
//
//	core/      — the value types: Plate, Bar, BarKind, Loading, GymState,
//	             GymStateID, Requirement, Workout.
//	loading/   — enumerates every Loading one bar can realize from a plate
//	             inventory.
//	gymstate/  — builds every GymState realizable across all bars of one
//	             BarKind, as the Cartesian product of their Loadings.
//	adjgraph/  — builds the undirected adjacency graph over GymStates,
//	             where an edge means "one plate add/remove away".
//	distance/  — computes all-pairs shortest paths over that graph.
//	planner/   — the layered dynamic program that picks one GymState per
//	             requirement, minimizing total transition cost.
//
// Gym itself, in this package, wires the five together and exposes the
// public surface: Construct, AvailableWeights, and Plan.
//
// Everything Gym builds — Loadings, GymStates, the adjacency graph, the
// distance oracle — is constructed once in Construct and is read-only
// thereafter, so a single Gym may safely serve concurrent Plan calls.
//
// The core never parses request strings, formats results for display, or
// persists anything; it consumes already-parsed Weight/Gauge values and
// BarKind tags, and returns typed values for the caller to present however
// it likes.
package gym
