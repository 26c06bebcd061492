package vm

import (
	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/tape"
)

// IntervalStorage is the reusable register-file storage for an
// IntervalInterpreter.
type IntervalStorage struct {
	Regs []interval.Interval
}

// IntervalInterpreter is the reference backend.IntervalBackend.
type IntervalInterpreter struct {
	regs []interval.Interval
}

// NewInterval constructs an IntervalInterpreter over t, reusing
// storage's register file when it has enough capacity.
func NewInterval(t tape.Tape, storage backend.Storage) backend.IntervalBackend {
	p := &IntervalInterpreter{}
	if s, ok := storage.(*IntervalStorage); ok {
		p.regs = s.Regs
	}
	p.ensure(len(t.Clauses()))
	return p
}

func (p *IntervalInterpreter) ensure(n int) {
	if cap(p.regs) < n {
		p.regs = make([]interval.Interval, n)
	} else {
		p.regs = p.regs[:n]
	}
}

// Take detaches the register file for reuse by a future interpreter.
func (p *IntervalInterpreter) Take() backend.Storage {
	return &IntervalStorage{Regs: p.regs}
}

// EvalI walks t's clauses once over the box (x, y, z), OR-merging a
// resolved choice for every min/max clause it crosses.
func (p *IntervalInterpreter) EvalI(t tape.Tape, x, y, z interval.Interval, vars []float32, choices []choice.Choice) interval.Interval {
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
			regs[idx] = interval.From(vars[c.VarSlot])
		case tape.OpConst:
			regs[idx] = interval.From(c.Imm)
		case tape.OpAdd:
			regs[idx] = regs[c.A].Add(regs[c.B])
		case tape.OpSub:
			regs[idx] = regs[c.A].Sub(regs[c.B])
		case tape.OpMul:
			regs[idx] = regs[c.A].Mul(regs[c.B])
		case tape.OpDiv:
			regs[idx] = regs[c.A].Div(regs[c.B])
		case tape.OpNeg:
			regs[idx] = regs[c.A].Neg()
		case tape.OpAbs:
			regs[idx] = regs[c.A].Abs()
		case tape.OpSquare:
			regs[idx] = regs[c.A].Square()
		case tape.OpSqrt:
			regs[idx] = regs[c.A].Sqrt()
		case tape.OpRecip:
			regs[idx] = regs[c.A].Recip()
		case tape.OpMin:
			res, ch := regs[c.A].MinChoice(regs[c.B])
			regs[idx] = res
			choices[ci] = choices[ci].Or(ch)
			ci++
		case tape.OpMax:
			res, ch := regs[c.A].MaxChoice(regs[c.B])
			regs[idx] = res
			choices[ci] = choices[ci].Or(ch)
			ci++
		case tape.OpIdentity:
			regs[idx] = regs[c.A]
		}
	}
	if len(clauses) == 0 {
		return interval.From(0)
	}
	return regs[len(clauses)-1]
}
