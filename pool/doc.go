// Package pool makes concrete the concurrency model the evaluators
// assume: a tape.Tape is immutable and shareable, but each
// eval.IntervalEval is stateful and must belong to exactly one
// goroutine at a time. Pool pre-sizes a free-list of recycled
// evaluator storage; workers Lease an evaluator, use it, and Release
// it so a later lease can reuse its register files instead of
// reallocating them.
package pool
