package interval

import "github.com/katalvlaran/sdfeval/choice"

// MinChoice returns the interval of min(a, b) together with a trace
// of which operand(s) could have determined that result for some
// point in the box.
//
// If either operand has NaN, the result is the NaN interval and the
// choice is Both (no simplification is safe). Otherwise the numeric
// result is componentwise min; the choice is Left when a is strictly
// smaller everywhere (a.Hi < b.Lo), Right when b is strictly smaller
// everywhere (b.Hi < a.Lo), and Both otherwise — including ties,
// which are the conservative (safe) direction since either operand
// may be selected for some point in the box.
func (a Interval) MinChoice(b Interval) (Interval, choice.Choice) {
	if a.HasNaN() || b.HasNaN() {
		return nanInterval, choice.Both
	}
	result := Interval{Lo: min32(a.Lo, b.Lo), Hi: min32(a.Hi, b.Hi)}
	switch {
	case a.Hi < b.Lo:
		return result, choice.Left
	case b.Hi < a.Lo:
		return result, choice.Right
	default:
		return result, choice.Both
	}
}

// MaxChoice returns the interval of max(a, b) together with a trace
// of which operand(s) could have determined that result. See
// MinChoice for the shared tie/NaN semantics; max is Left when
// a.Lo > b.Hi, Right when b.Lo > a.Hi, Both otherwise.
func (a Interval) MaxChoice(b Interval) (Interval, choice.Choice) {
	if a.HasNaN() || b.HasNaN() {
		return nanInterval, choice.Both
	}
	result := Interval{Lo: max32(a.Lo, b.Lo), Hi: max32(a.Hi, b.Hi)}
	switch {
	case a.Lo > b.Hi:
		return result, choice.Left
	case b.Lo > a.Hi:
		return result, choice.Right
	default:
		return result, choice.Both
	}
}
