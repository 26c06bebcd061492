// Package interval provides Interval, a conservative range type over
// float32 used to bound a closed-form implicit-surface function across
// a box-shaped input region.
//
// Interval arithmetic here is deliberately not correctly-rounded: it
// runs in the ambient IEEE-754 round-to-nearest mode, so endpoints may
// be off by at most one ulp from the mathematically tight interval.
// Callers that need absolute conservativeness should enlarge their
// input boxes by a small epsilon before evaluation.
//
// Every operation whose mathematical codomain would produce NaN in one
// endpoint produces the NaN interval in both endpoints: half-NaN
// intervals are never constructed. NaN is a first-class, valid
// Interval value, not an error — it propagates downstream so that
// callers can decide whether a NaN region means "skip" or "refine".
package interval
