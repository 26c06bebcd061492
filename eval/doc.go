// Package eval implements the generic evaluator harness that drives a
// pluggable backend.PointBackend / backend.IntervalBackend against a
// tape.Tape: it owns the tape, the choice buffer (sized to the tape's
// declared choice count and reset before each single-shot eval), and
// the back-end's own state, and exposes recursive subdivision and the
// bridge to tape simplification.
//
// No method here is re-entrant, and no evaluator is safe for
// concurrent use by multiple goroutines — callers needing parallelism
// construct one evaluator per worker (see package pool) instead.
package eval
