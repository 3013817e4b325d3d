package core

// Weight is an exact mass, represented as an integer at a caller-chosen
// fixed-point scale (e.g. grams or milligrams). Equality is used
// extensively — Requirement.Matches, state membership, Loading dedup — so
// weights are never floating point: float equality would be nondeterministic
// and would break map-keyed dedup in the enumerator.
type Weight int64

// Gauge is an exact plate-hole / bar diameter, represented the same way as
// Weight. Plates only mount on bars of matching Gauge.
type Gauge int64

// Plate is an immutable, value-equal mass loadable onto a bar. Identical
// Plates (same Weight and Gauge) are interchangeable; inventory multiplicity
// is tracked by repeating a Plate value in a slice, not by a count field.
type Plate struct {
	Weight Weight
	Gauge  Gauge
}
