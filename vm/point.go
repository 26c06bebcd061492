package vm

import (
	"math"

	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/tape"
)

// PointStorage is the reusable register-file storage for a
// PointInterpreter, handed back by Take and accepted by NewPoint.
type PointStorage struct {
	Regs []float32
}

// PointInterpreter is the reference backend.PointBackend.
type PointInterpreter struct {
	regs []float32
}

// NewPoint constructs a PointInterpreter over t, reusing storage's
// register file when it has enough capacity.
func NewPoint(t tape.Tape, storage backend.Storage) backend.PointBackend {
	p := &PointInterpreter{}
	if s, ok := storage.(*PointStorage); ok {
		p.regs = s.Regs
	}
	p.ensure(len(t.Clauses()))
	return p
}

func (p *PointInterpreter) ensure(n int) {
	if cap(p.regs) < n {
		p.regs = make([]float32, n)
	} else {
		p.regs = p.regs[:n]
	}
}

// Take detaches the register file for reuse by a future interpreter.
func (p *PointInterpreter) Take() backend.Storage {
	return &PointStorage{Regs: p.regs}
}

// EvalP walks t's clauses once, evaluating at (x, y, z) with the given
// variable bindings and OR-merging a resolved choice for every min/max
// clause it crosses.
func (p *PointInterpreter) EvalP(t tape.Tape, x, y, z float32, vars []float32, choices []choice.Choice) float32 {
	clauses := t.Clauses()
	p.ensure(len(clauses))
	regs := p.regs
	ci := 0
	for idx, c := range clauses {
		switch c.Op {
		case tape.OpVarX:
			regs[idx] = x
		case tape.OpVarY:
			regs[idx] = y
		case tape.OpVarZ:
			regs[idx] = z
		case tape.OpVar:
			regs[idx] = vars[c.VarSlot]
		case tape.OpConst:
			regs[idx] = c.Imm
		case tape.OpAdd:
			regs[idx] = regs[c.A] + regs[c.B]
		case tape.OpSub:
			regs[idx] = regs[c.A] - regs[c.B]
		case tape.OpMul:
			regs[idx] = regs[c.A] * regs[c.B]
		case tape.OpDiv:
			regs[idx] = regs[c.A] / regs[c.B]
		case tape.OpNeg:
			regs[idx] = -regs[c.A]
		case tape.OpAbs:
			v := regs[c.A]
			if v < 0 {
				v = -v
			}
			regs[idx] = v
		case tape.OpSquare:
			v := regs[c.A]
			regs[idx] = v * v
		case tape.OpSqrt:
			regs[idx] = float32(math.Sqrt(float64(regs[c.A])))
		case tape.OpRecip:
			regs[idx] = 1 / regs[c.A]
		case tape.OpMin:
			a, b := regs[c.A], regs[c.B]
			res, ch := pointMin(a, b)
			regs[idx] = res
			choices[ci] = choices[ci].Or(ch)
			ci++
		case tape.OpMax:
			a, b := regs[c.A], regs[c.B]
			res, ch := pointMax(a, b)
			regs[idx] = res
			choices[ci] = choices[ci].Or(ch)
			ci++
		case tape.OpIdentity:
			regs[idx] = regs[c.A]
		}
	}
	if len(clauses) == 0 {
		return 0
	}
	return regs[len(clauses)-1]
}

func pointMin(a, b float32) (float32, choice.Choice) {
	switch {
	case isNaN(a) || isNaN(b):
		return float32(math.NaN()), choice.Both
	case a < b:
		return a, choice.Left
	case b < a:
		return b, choice.Right
	default:
		return a, choice.Both
	}
}

func pointMax(a, b float32) (float32, choice.Choice) {
	switch {
	case isNaN(a) || isNaN(b):
		return float32(math.NaN()), choice.Both
	case a > b:
		return a, choice.Left
	case b > a:
		return b, choice.Right
	default:
		return a, choice.Both
	}
}

func isNaN(f float32) bool {
	return f != f
}
