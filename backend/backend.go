package backend

import (
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/tape"
)

// Storage is opaque, reusable per-back-end scratch state, detached by
// Take and handed back to a PointBackendFactory/
// IntervalBackendFactory. Implementations are free to ignore
// storage that does not fit their internal shape.
type Storage interface{}

// PointBackend evaluates a tape at a single f32 point.
//
// EvalP must iterate t's clauses exactly once, writing a resolved
// choice (Left, Right, or Both — never Unknown) into choices[k] for
// the k-th choice clause encountered, without reading choices[k'] for
// any k' > k before it is written.
type PointBackend interface {
	// EvalP evaluates the tape at (x, y, z) with the given variable
	// bindings, writing choices as a side effect.
	EvalP(t tape.Tape, x, y, z float32, vars []float32, choices []choice.Choice) float32
	// Take detaches reusable storage, consuming the back-end.
	Take() Storage
}

// IntervalBackend evaluates a tape over a box-shaped input region.
//
// EvalI has the same choice-writing obligations as PointBackend.EvalP.
type IntervalBackend interface {
	EvalI(t tape.Tape, x, y, z interval.Interval, vars []float32, choices []choice.Choice) interval.Interval
	Take() Storage
}

// PointBackendFactory constructs a PointBackend over a tape, optionally
// reusing previously detached storage. Implementations that cannot use
// storage of an incompatible shape simply ignore it.
type PointBackendFactory func(t tape.Tape, storage Storage) PointBackend

// IntervalBackendFactory is the interval-evaluator analog of
// PointBackendFactory.
type IntervalBackendFactory func(t tape.Tape, storage Storage) IntervalBackend
