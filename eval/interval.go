package eval

import (
	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/tape"
)

// zeroBox is the degenerate [0,0] interval used by the eval_i_x/
// eval_i_xy convenience wrappers to fill in unused axes.
var zeroBox = interval.From(0)

// IntervalEvalStorage bundles an IntervalEval's detachable resources.
type IntervalEvalStorage struct {
	Choices []choice.Choice
	Backend backend.Storage
}

// IntervalEval owns a tape, a choice buffer, and a
// backend.IntervalBackend. It performs interval evaluation with choice
// capture, storage reuse, and recursive subdivision.
type IntervalEval struct {
	tape    tape.Tape
	choices []choice.Choice
	be      backend.IntervalBackend
}

// NewIntervalEval constructs an IntervalEval over t, building its
// back-end via factory.
func NewIntervalEval(t tape.Tape, factory backend.IntervalBackendFactory) *IntervalEval {
	return NewIntervalEvalWithStorage(t, factory, IntervalEvalStorage{})
}

// NewIntervalEvalWithStorage is like NewIntervalEval but reuses
// storage's choice buffer (resized to t.ChoiceCount(), new slots
// starting Unknown) and hands its back-end storage to factory.
func NewIntervalEvalWithStorage(t tape.Tape, factory backend.IntervalBackendFactory, storage IntervalEvalStorage) *IntervalEval {
	choices := resizeChoices(storage.Choices, t.ChoiceCount())
	be := factory(t, storage.Backend)
	return &IntervalEval{tape: t, choices: choices, be: be}
}

// Take detaches this IntervalEval's resources, consuming it.
func (e *IntervalEval) Take() IntervalEvalStorage {
	return IntervalEvalStorage{Choices: e.choices, Backend: e.be.Take()}
}

// Tape returns the underlying tape.
func (e *IntervalEval) Tape() tape.Tape {
	return e.tape
}

// Choices returns a read-only view of the current choice trace.
func (e *IntervalEval) Choices() []choice.Choice {
	return e.choices
}

// Simplify produces a specialized tape based on the last eval call.
func (e *IntervalEval) Simplify() (tape.Tape, error) {
	return e.tape.Simplify(e.choices)
}

// SimplifyWith is like Simplify but reuses ws/scratch where possible.
func (e *IntervalEval) SimplifyWith(ws *tape.Workspace, scratch tape.Scratch) (tape.Tape, error) {
	return e.tape.SimplifyWith(e.choices, ws, scratch)
}

func (e *IntervalEval) resetChoices() {
	choice.Fill(e.choices)
}

// EvalI resets the choice buffer, then evaluates the tape over the box
// (x, y, z) with the given variable bindings. It fails with
// BadVarSliceError iff len(vars) != tape.VarCount().
func (e *IntervalEval) EvalI(x, y, z interval.Interval, vars []float32) (interval.Interval, error) {
	if len(vars) != e.tape.VarCount() {
		return interval.NaN(), &BadVarSliceError{Given: len(vars), Expected: e.tape.VarCount()}
	}
	e.resetChoices()
	return e.be.EvalI(e.tape, x, y, z, vars, e.choices), nil
}

// EvalIX evaluates with y=z=[0,0] and no variables. It exists for
// testability and panics (rather than returning an error) if the tape
// declares any variables.
func (e *IntervalEval) EvalIX(x interval.Interval) interval.Interval {
	v, err := e.EvalI(x, zeroBox, zeroBox, nil)
	if err != nil {
		panic(err)
	}
	return v
}

// EvalIXY evaluates with z=[0,0] and no variables. See EvalIX.
func (e *IntervalEval) EvalIXY(x, y interval.Interval) interval.Interval {
	v, err := e.EvalI(x, y, zeroBox, nil)
	if err != nil {
		panic(err)
	}
	return v
}

// EvalISubdiv computes a bound on the tape over the box (x, y, z) by
// recursive axis-bisection to depth k, resetting the choice buffer
// once at the outer call and letting inner leaf calls accumulate their
// traces via the back-end's OR-merge. subdiv(..., 0) is observationally
// equivalent to EvalI(...).
func (e *IntervalEval) EvalISubdiv(x, y, z interval.Interval, vars []float32, k int) (interval.Interval, error) {
	if len(vars) != e.tape.VarCount() {
		return interval.NaN(), &BadVarSliceError{Given: len(vars), Expected: e.tape.VarCount()}
	}
	e.resetChoices()
	return e.subdivRecurse(x, y, z, vars, k), nil
}

func (e *IntervalEval) subdivRecurse(x, y, z interval.Interval, vars []float32, k int) interval.Interval {
	if k == 0 {
		return e.be.EvalI(e.tape, x, y, z, vars, e.choices)
	}
	dx := x.Width()
	dy := y.Width()
	dz := z.Width()

	var a, b interval.Interval
	switch {
	case dx >= dy && dx >= dz:
		mid := x.Lo + dx/2
		a = e.subdivRecurse(interval.New(x.Lo, mid), y, z, vars, k-1)
		b = e.subdivRecurse(interval.New(mid, x.Hi), y, z, vars, k-1)
	case dy >= dz:
		mid := y.Lo + dy/2
		a = e.subdivRecurse(x, interval.New(y.Lo, mid), z, vars, k-1)
		b = e.subdivRecurse(x, interval.New(mid, y.Hi), z, vars, k-1)
	default:
		mid := z.Lo + dz/2
		a = e.subdivRecurse(x, y, interval.New(z.Lo, mid), vars, k-1)
		b = e.subdivRecurse(x, y, interval.New(mid, z.Hi), vars, k-1)
	}

	if a.HasNaN() || b.HasNaN() {
		return interval.NaN()
	}
	return interval.New(min32(a.Lo, b.Lo), max32(a.Hi, b.Hi))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
