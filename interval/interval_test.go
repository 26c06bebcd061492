package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/interval"
)

func i(lo, hi float32) interval.Interval { return interval.New(lo, hi) }

func requireInterval(t *testing.T, want, got interval.Interval) {
	t.Helper()
	if want.HasNaN() {
		require.True(t, got.HasNaN(), "want NaN interval, got %+v", got)
		return
	}
	require.Equal(t, want, got)
}

func TestConstructors(t *testing.T) {
	require.Equal(t, interval.Interval{Lo: 2, Hi: 2}, interval.From(2))
	require.Equal(t, i(1, 2), interval.FromPair(1, 2))
	require.Panics(t, func() { interval.New(2, 1) })
}

func TestAbs(t *testing.T) {
	requireInterval(t, i(1, 5), i(1, 5).Abs())
	requireInterval(t, i(1, 6), i(-6, -1).Abs())
	requireInterval(t, i(0, 6), i(-6, 5).Abs())
}

func TestSquare(t *testing.T) {
	requireInterval(t, i(0, 16), i(0, 4).Square())
	requireInterval(t, i(4, 16), i(2, 4).Square())
	requireInterval(t, i(0, 16), i(-2, 4).Square())
	requireInterval(t, i(4, 36), i(-6, -2).Square())
	requireInterval(t, i(0, 36), i(-6, 1).Square())
}

func TestSqrt(t *testing.T) {
	requireInterval(t, i(0, 1), i(0, 1).Sqrt())
	requireInterval(t, i(0, 2), i(0, 4).Sqrt())
	requireInterval(t, i(0, 2), i(-2, 4).Sqrt())
	requireInterval(t, interval.NaN(), i(-2, -1).Sqrt())
}

func TestRecip(t *testing.T) {
	requireInterval(t, i(-1, -0.5), i(-2, -1).Recip())
	requireInterval(t, i(0.5, 1), i(1, 2).Recip())
	requireInterval(t, interval.NaN(), i(-2, 3).Recip())
	requireInterval(t, interval.NaN(), i(0, 1).Recip())
}

func TestAddSubNeg(t *testing.T) {
	requireInterval(t, i(-1, 1), i(0, 1).Sub(i(0, 1)))
	requireInterval(t, i(1, 2), i(0, 1).Add(i(1, 1)))
	requireInterval(t, i(-1, 0), i(0, 1).Neg())
}

func TestMul(t *testing.T) {
	requireInterval(t, i(0, 1), i(0, 1).Mul(i(0, 1)))
	requireInterval(t, i(0, 2), i(0, 1).Mul(i(0, 2)))
	requireInterval(t, i(-2, 1), i(-2, 1).Mul(i(0, 1)))
	requireInterval(t, i(4, 10), i(-2, -1).Mul(i(-5, -4)))
	requireInterval(t, i(-18, 6), i(-3, -1).Mul(i(-2, 6)))

	nan := interval.New(float32(math.NaN()), float32(math.NaN()))
	requireInterval(t, interval.NaN(), nan.Mul(i(0, 1)))
}

func TestDiv(t *testing.T) {
	requireInterval(t, interval.NaN(), i(0, 1).Div(i(-1, 1)))
	requireInterval(t, interval.NaN(), i(0, 1).Div(i(-2, 0)))
	requireInterval(t, i(-1, 0), i(-1, 0).Div(i(1, 2)))
	requireInterval(t, i(-8, 2), i(-1, 4).Div(i(-1, -0.5)))
	requireInterval(t, i(-2, 8), i(-1, 4).Div(i(0.5, 1)))
}

func TestMinChoice(t *testing.T) {
	v, c := i(0, 1).MinChoice(i(0.5, 1.5))
	requireInterval(t, i(0, 1), v)
	require.Equal(t, choice.Both, c)

	v, c = i(0, 1).MinChoice(i(2, 3))
	requireInterval(t, i(0, 1), v)
	require.Equal(t, choice.Left, c)

	v, c = i(2, 3).MinChoice(i(0, 1))
	requireInterval(t, i(0, 1), v)
	require.Equal(t, choice.Right, c)

	v, c = i(2, 3).MinChoice(interval.From(1))
	requireInterval(t, interval.From(1), v)
	require.Equal(t, choice.Right, c)
}

func TestMaxChoice(t *testing.T) {
	v, c := i(2, 3).MaxChoice(i(0, 1))
	requireInterval(t, i(2, 3), v)
	require.Equal(t, choice.Left, c)

	v, c = i(0, 1).MaxChoice(i(2, 3))
	requireInterval(t, i(2, 3), v)
	require.Equal(t, choice.Right, c)

	_, c = i(0, 1).MaxChoice(i(0.5, 1.5))
	require.Equal(t, choice.Both, c)
}

func TestNaNMonotone(t *testing.T) {
	nan := interval.NaN()
	_, c := nan.MinChoice(i(0, 1))
	require.Equal(t, choice.Both, c)
	_, c = nan.MaxChoice(i(0, 1))
	require.Equal(t, choice.Both, c)
	requireInterval(t, interval.NaN(), nan.Mul(i(0, 1)))
	requireInterval(t, interval.NaN(), i(0, 1).Div(nan))
}
