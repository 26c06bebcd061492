package eval

import (
	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/tape"
)

// PointEvalStorage bundles a PointEval's detachable resources: the
// choice buffer and the back-end's own scratch. Zero value is a valid
// empty storage.
type PointEvalStorage struct {
	Choices []choice.Choice
	Backend backend.Storage
}

// PointEval owns a tape, a choice buffer sized to its choice count,
// and a backend.PointBackend. It performs single-point f32 evaluation
// with choice capture.
type PointEval struct {
	tape    tape.Tape
	choices []choice.Choice
	be      backend.PointBackend
}

// NewPointEval constructs a PointEval over t, building its back-end
// via factory.
func NewPointEval(t tape.Tape, factory backend.PointBackendFactory) *PointEval {
	return NewPointEvalWithStorage(t, factory, PointEvalStorage{})
}

// NewPointEvalWithStorage is like NewPointEval but reuses storage's
// choice buffer and hands its back-end storage to factory, which is
// free to ignore it if unsuitable.
func NewPointEvalWithStorage(t tape.Tape, factory backend.PointBackendFactory, storage PointEvalStorage) *PointEval {
	choices := resizeChoices(storage.Choices, t.ChoiceCount())
	be := factory(t, storage.Backend)
	return &PointEval{tape: t, choices: choices, be: be}
}

func resizeChoices(buf []choice.Choice, n int) []choice.Choice {
	if cap(buf) < n {
		return make([]choice.Choice, n)
	}
	buf = buf[:n]
	choice.Fill(buf)
	return buf
}

// Take detaches this PointEval's resources, consuming it.
func (e *PointEval) Take() PointEvalStorage {
	return PointEvalStorage{Choices: e.choices, Backend: e.be.Take()}
}

// Tape returns the underlying tape.
func (e *PointEval) Tape() tape.Tape {
	return e.tape
}

// Choices returns a read-only view of the current choice trace.
func (e *PointEval) Choices() []choice.Choice {
	return e.choices
}

// Simplify produces a specialized tape based on the last EvalP call.
func (e *PointEval) Simplify() (tape.Tape, error) {
	return e.tape.Simplify(e.choices)
}

func (e *PointEval) resetChoices() {
	choice.Fill(e.choices)
}

// EvalP resets the choice buffer to Unknown, evaluates the tape at
// (x, y, z), and returns the result. After this call, no choice slot
// is Unknown.
//
// The point harness itself has no notion of named variables (matching
// the original single-point evaluator this spec distills); an empty
// slice is passed to the back-end's variable argument.
func (e *PointEval) EvalP(x, y, z float32) float32 {
	e.resetChoices()
	return e.be.EvalP(e.tape, x, y, z, nil, e.choices)
}
