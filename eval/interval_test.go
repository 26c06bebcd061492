package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/eval"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/tape"
	"github.com/katalvlaran/sdfeval/vm"
)

func minXY() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpVarY, A: -1, B: -1},
		{Op: tape.OpMin, A: 0, B: 1},
	}, 0)
}

func maxMaxXYZ() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpVarY, A: -1, B: -1},
		{Op: tape.OpVarZ, A: -1, B: -1},
		{Op: tape.OpMax, A: 0, B: 1},
		{Op: tape.OpMax, A: 3, B: 2},
	}, 0)
}

func absXPlusAbsY() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpVarY, A: -1, B: -1},
		{Op: tape.OpAbs, A: 0, B: -1},
		{Op: tape.OpAbs, A: 1, B: -1},
		{Op: tape.OpAdd, A: 2, B: 3},
	}, 0)
}

func sqrtX() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpSqrt, A: 0, B: -1},
	}, 0)
}

func recipX() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpRecip, A: 0, B: -1},
	}, 0)
}

func minXConst1() *tape.Program {
	return tape.NewProgram([]tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpConst, A: -1, B: -1, Imm: 1.0},
		{Op: tape.OpMin, A: 0, B: 1},
	}, 0)
}

func newIntervalEval(t tape.Tape) *eval.IntervalEval {
	return eval.NewIntervalEval(t, vm.NewInterval)
}

func TestMinOverlappingBoxesBoth(t *testing.T) {
	e := newIntervalEval(minXY())
	got, err := e.EvalI(interval.New(0, 1), interval.New(0.5, 1.5), interval.From(0), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, []choice.Choice{choice.Both}, e.Choices())
}

func TestMinDisjointLeft(t *testing.T) {
	e := newIntervalEval(minXY())
	got, err := e.EvalI(interval.New(0, 1), interval.New(2, 3), interval.From(0), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, []choice.Choice{choice.Left}, e.Choices())
}

func TestMinDisjointRight(t *testing.T) {
	e := newIntervalEval(minXY())
	got, err := e.EvalI(interval.New(2, 3), interval.New(0, 1), interval.From(0), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, []choice.Choice{choice.Right}, e.Choices())
}

func TestNestedMaxRecordsChoicePerClause(t *testing.T) {
	e := newIntervalEval(maxMaxXYZ())
	got, err := e.EvalI(interval.New(2, 3), interval.New(0, 1), interval.New(4, 5), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(4, 5), got)
	require.Equal(t, []choice.Choice{choice.Left, choice.Right}, e.Choices())
}

func TestAbsSumIsExactWhenBothLowerBoundsAreZero(t *testing.T) {
	// abs([-6,5]) = [0,6], abs([-4,3]) = [0,4]; the sum is exact
	// because both abs-intervals share a lower bound of zero.
	e := newIntervalEval(absXPlusAbsY())
	got, err := e.EvalI(interval.New(-6, 5), interval.New(-4, 3), interval.From(0), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(0, 10), got)
}

func TestSqrtClampsNegativeLowerBound(t *testing.T) {
	e := newIntervalEval(sqrtX())
	got := e.EvalIX(interval.New(-2, 4))
	require.Equal(t, interval.New(0, 2), got)
}

func TestRecipStraddleReturnsNaNNotError(t *testing.T) {
	e := newIntervalEval(recipX())
	got, err := e.EvalI(interval.New(-2, 3), zeroInterval(), zeroInterval(), nil)
	require.NoError(t, err)
	require.True(t, got.HasNaN())
}

func TestMinAgainstImmediateConstantRight(t *testing.T) {
	e := newIntervalEval(minXConst1())
	got, err := e.EvalI(interval.New(2, 3), zeroInterval(), zeroInterval(), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(1, 1), got)
	require.Equal(t, []choice.Choice{choice.Right}, e.Choices())
}

func zeroInterval() interval.Interval {
	return interval.From(0)
}

func TestBadVarSliceError(t *testing.T) {
	e := newIntervalEval(minXY())
	_, err := e.EvalI(interval.New(0, 1), interval.New(0, 1), zeroInterval(), []float32{1})
	require.Error(t, err)
	var bad *eval.BadVarSliceError
	require.ErrorAs(t, err, &bad)
	require.Equal(t, 1, bad.Given)
	require.Equal(t, 0, bad.Expected)
}

func TestResetPurity(t *testing.T) {
	e := newIntervalEval(minXY())
	for _, c := range e.Choices() {
		require.Equal(t, choice.Unknown, c)
	}
	_, err := e.EvalI(interval.New(0, 1), interval.New(2, 3), zeroInterval(), nil)
	require.NoError(t, err)
	for _, c := range e.Choices() {
		require.NotEqual(t, choice.Unknown, c)
	}
}

func TestSubdivZeroEquivalentToEvalI(t *testing.T) {
	e1 := newIntervalEval(minXY())
	direct, err := e1.EvalI(interval.New(0, 1), interval.New(0.5, 1.5), zeroInterval(), nil)
	require.NoError(t, err)

	e2 := newIntervalEval(minXY())
	sub, err := e2.EvalISubdiv(interval.New(0, 1), interval.New(0.5, 1.5), zeroInterval(), nil, 0)
	require.NoError(t, err)
	require.Equal(t, direct, sub)
}

func TestSubdivTightensWithDepth(t *testing.T) {
	e := newIntervalEval(absXPlusAbsY())
	w0, err := e.EvalISubdiv(interval.New(-6, 5), interval.New(-4, 3), zeroInterval(), nil, 0)
	require.NoError(t, err)
	w1, err := e.EvalISubdiv(interval.New(-6, 5), interval.New(-4, 3), zeroInterval(), nil, 1)
	require.NoError(t, err)
	w2, err := e.EvalISubdiv(interval.New(-6, 5), interval.New(-4, 3), zeroInterval(), nil, 2)
	require.NoError(t, err)
	require.LessOrEqual(t, w1.Width(), w0.Width())
	require.LessOrEqual(t, w2.Width(), w1.Width())
}

func TestStorageRoundTrip(t *testing.T) {
	p := minXY()
	e1 := newIntervalEval(p)
	_, err := e1.EvalI(interval.New(0, 1), interval.New(2, 3), zeroInterval(), nil)
	require.NoError(t, err)

	s := e1.Take()
	e2 := eval.NewIntervalEvalWithStorage(p, vm.NewInterval, s)
	got, err := e2.EvalI(interval.New(0, 1), interval.New(0.5, 1.5), zeroInterval(), nil)
	require.NoError(t, err)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, []choice.Choice{choice.Both}, e2.Choices())
}
