package interval

import "math"

// Interval is a closed range [Lo, Hi] of float32, or the NaN interval
// (both endpoints NaN). Either Lo <= Hi (in IEEE order, with -Inf less
// than any finite value less than +Inf) or both endpoints are NaN; no
// other half-NaN combination is ever constructed.
type Interval struct {
	Lo, Hi float32
}

// nanInterval is the canonical NaN interval.
var nanInterval = Interval{Lo: float32(math.NaN()), Hi: float32(math.NaN())}

// New constructs [lo, hi]. It panics if hi < lo and the pair is not
// both-NaN: that combination is a programmer error, not a recoverable
// condition.
func New(lo, hi float32) Interval {
	if isNaN32(lo) && isNaN32(hi) {
		return nanInterval
	}
	if isNaN32(lo) || isNaN32(hi) {
		panic("interval: half-NaN interval constructed")
	}
	if hi < lo {
		panic("interval: New called with hi < lo")
	}
	return Interval{Lo: lo, Hi: hi}
}

// From coerces a scalar to the degenerate singleton interval [f, f].
func From(f float32) Interval {
	if isNaN32(f) {
		return nanInterval
	}
	return Interval{Lo: f, Hi: f}
}

// FromPair coerces [a, b] to New(a, b).
func FromPair(a, b float32) Interval {
	return New(a, b)
}

// NaN returns the canonical NaN interval.
func NaN() Interval {
	return nanInterval
}

// HasNaN reports whether either endpoint is NaN.
func (i Interval) HasNaN() bool {
	return isNaN32(i.Lo) || isNaN32(i.Hi)
}

// Width returns Hi - Lo, or NaN if the interval has NaN endpoints.
func (i Interval) Width() float32 {
	return i.Hi - i.Lo
}

func isNaN32(f float32) bool {
	return f != f
}

// Neg returns [-Hi, -Lo].
func (i Interval) Neg() Interval {
	if i.HasNaN() {
		return nanInterval
	}
	return Interval{Lo: -i.Hi, Hi: -i.Lo}
}

// Abs returns the interval of |x| for x in i.
func (i Interval) Abs() Interval {
	if i.HasNaN() {
		return nanInterval
	}
	switch {
	case i.Lo >= 0:
		return i
	case i.Hi <= 0:
		return Interval{Lo: -i.Hi, Hi: -i.Lo}
	default:
		return Interval{Lo: 0, Hi: max32(i.Hi, -i.Lo)}
	}
}

// Square returns the interval of x*x for x in i.
func (i Interval) Square() Interval {
	switch {
	case i.HasNaN():
		return nanInterval
	case i.Hi < 0:
		return Interval{Lo: i.Hi * i.Hi, Hi: i.Lo * i.Lo}
	case i.Lo > 0:
		return Interval{Lo: i.Lo * i.Lo, Hi: i.Hi * i.Hi}
	default:
		m := max32(abs32(i.Lo), abs32(i.Hi))
		return Interval{Lo: 0, Hi: m * m}
	}
}

// Sqrt returns the interval of sqrt(x) for x in i.
//
// The negative part of a straddling interval is clamped to zero
// (sqrt is treated as a real-valued function, not extended to
// complex results); a strictly-negative interval yields NaN. This
// asymmetry is inherited from the original Rust implementation and
// kept as-is rather than re-derived.
func (i Interval) Sqrt() Interval {
	if i.HasNaN() {
		return nanInterval
	}
	if i.Lo < 0 {
		if i.Hi > 0 {
			return Interval{Lo: 0, Hi: sqrt32(i.Hi)}
		}
		if i.Hi == 0 && i.Lo == 0 {
			return Interval{Lo: 0, Hi: 0}
		}
		return nanInterval
	}
	return Interval{Lo: sqrt32(i.Lo), Hi: sqrt32(i.Hi)}
}

// Recip returns the interval of 1/x for x in i. Division by an
// interval containing zero is undefined and yields NaN.
func (i Interval) Recip() Interval {
	if i.HasNaN() {
		return nanInterval
	}
	if i.Lo > 0 || i.Hi < 0 {
		return Interval{Lo: 1 / i.Hi, Hi: 1 / i.Lo}
	}
	return nanInterval
}

// Add returns the interval of a+b.
func (a Interval) Add(b Interval) Interval {
	if a.HasNaN() || b.HasNaN() {
		return nanInterval
	}
	return Interval{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

// Sub returns the interval of a-b.
func (a Interval) Sub(b Interval) Interval {
	if a.HasNaN() || b.HasNaN() {
		return nanInterval
	}
	return Interval{Lo: a.Lo - b.Hi, Hi: a.Hi - b.Lo}
}

// Mul returns the interval of a*b via the four-corner min/max method.
func (a Interval) Mul(b Interval) Interval {
	if a.HasNaN() || b.HasNaN() {
		return nanInterval
	}
	p := [4]float32{a.Lo * b.Lo, a.Lo * b.Hi, a.Hi * b.Lo, a.Hi * b.Hi}
	return cornersToInterval(p)
}

// Div returns the interval of a/b. NaN numerator, or a denominator
// that contains zero, yields NaN.
func (a Interval) Div(b Interval) Interval {
	if a.HasNaN() {
		return nanInterval
	}
	if !(b.Lo > 0 || b.Hi < 0) {
		return nanInterval
	}
	p := [4]float32{a.Lo / b.Lo, a.Lo / b.Hi, a.Hi / b.Lo, a.Hi / b.Hi}
	return cornersToInterval(p)
}

func cornersToInterval(p [4]float32) Interval {
	lo, hi := p[0], p[0]
	for _, v := range p[1:] {
		lo = min32(lo, v)
		hi = max32(hi, v)
	}
	return Interval{Lo: lo, Hi: hi}
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

func abs32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
