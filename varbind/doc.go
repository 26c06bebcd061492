// Package varbind maps named variables onto the flat vars []float32
// slice that eval.PointEval / eval.IntervalEval expect. A Binder is
// built once from a caller-supplied ordered list of names, one per
// tape variable slot (a tape itself declares only a count), and reused
// across many Bind calls without reallocating the backing slice.
package varbind
