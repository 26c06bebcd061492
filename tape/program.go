package tape

import "github.com/katalvlaran/sdfeval/choice"

// defaultRegLimit is the register-file bound reference Programs are
// planned for. Unlike a native-code back-end, the interpreter in
// package vm has no real register pressure, so this is a nominal
// value rather than an enforced allocation budget.
const defaultRegLimit = 4096

// Program is a flat, register-addressed reference tape: each clause's
// register is its own index into Clauses. It implements Tape.
type Program struct {
	clauses     []Clause
	nVars       int
	choiceCount int
	regLimit    int
}

// NewProgram builds a Program from clauses (in evaluation order,
// operand indices referring only to earlier clauses) declaring nVars
// named variable slots. The last clause is the tape's output.
func NewProgram(clauses []Clause, nVars int) *Program {
	cc := 0
	for _, c := range clauses {
		if c.Op.IsChoice() {
			cc++
		}
	}
	return &Program{
		clauses:     clauses,
		nVars:       nVars,
		choiceCount: cc,
		regLimit:    defaultRegLimit,
	}
}

func (p *Program) ChoiceCount() int   { return p.choiceCount }
func (p *Program) VarCount() int      { return p.nVars }
func (p *Program) Clauses() []Clause  { return p.clauses }
func (p *Program) RegLimit() int      { return p.regLimit }

// Clone returns a cheap, shared-ownership copy: Program is immutable
// after construction, so this simply shares the backing clause slice.
func (p *Program) Clone() Tape {
	cp := *p
	return &cp
}

// Simplify allocates fresh storage; see SimplifyWith for the
// reuse-aware variant and the dead-clause-elimination algorithm.
func (p *Program) Simplify(choices []choice.Choice) (Tape, error) {
	return p.SimplifyWith(choices, &Workspace{}, Scratch{})
}

// SimplifyWith rewrites choice clauses resolved to Left/Right into
// OpIdentity aliases, then compacts away clauses no longer reachable
// from the output. ws and scratch's backing arrays are reused when
// their capacity suffices, avoiding reallocation across repeated
// calls against tapes of similar size.
func (p *Program) SimplifyWith(choices []choice.Choice, ws *Workspace, scratch Scratch) (Tape, error) {
	if len(choices) != p.choiceCount {
		return nil, &BadChoiceSliceError{Given: len(choices), Expected: p.choiceCount}
	}
	n := len(p.clauses)
	ws.ensure(n)

	// Pass 1: resolve choice clauses in place (on a working copy),
	// rewriting Left/Right results to OpIdentity.
	resolved := ws.resolved[:0]
	if cap(resolved) < n {
		resolved = make([]Clause, n)
		ws.resolved = resolved
	} else {
		resolved = resolved[:n]
	}
	ci := 0
	for idx, c := range p.clauses {
		if c.Op.IsChoice() {
			switch choices[ci] {
			case choice.Left:
				c = Clause{Op: OpIdentity, A: c.A, B: -1}
			case choice.Right:
				c = Clause{Op: OpIdentity, A: c.B, B: -1}
			}
			ci++
		}
		resolved[idx] = c
	}

	// Pass 2: mark live registers by walking backward from the output
	// (the last clause), following only the operands each live clause
	// actually reads after resolution.
	live := ws.live[:n]
	for i := range live {
		live[i] = false
	}
	if n > 0 {
		live[n-1] = true
	}
	for idx := n - 1; idx >= 0; idx-- {
		if !live[idx] {
			continue
		}
		c := resolved[idx]
		if c.A >= 0 {
			live[c.A] = true
		}
		if c.B >= 0 {
			live[c.B] = true
		}
	}

	// Pass 3: compact, remapping old register indices to new ones in
	// order, reusing scratch's backing array when large enough.
	remap := ws.remap[:n]
	out := scratch.Clauses[:0]
	for idx := 0; idx < n; idx++ {
		if !live[idx] {
			remap[idx] = -1
			continue
		}
		c := resolved[idx]
		if c.A >= 0 {
			c.A = remap[c.A]
		}
		if c.B >= 0 {
			c.B = remap[c.B]
		}
		remap[idx] = len(out)
		out = append(out, c)
	}

	newClauses := make([]Clause, len(out))
	copy(newClauses, out)
	return NewProgram(newClauses, p.nVars), nil
}

// Workspace holds reusable scratch buffers for repeated SimplifyWith
// calls against tapes of similar size, avoiding per-call allocation.
type Workspace struct {
	live     []bool
	remap    []int
	resolved []Clause
}

func (w *Workspace) ensure(n int) {
	if cap(w.live) < n {
		w.live = make([]bool, n)
	} else {
		w.live = w.live[:n]
	}
	if cap(w.remap) < n {
		w.remap = make([]int, n)
	} else {
		w.remap = w.remap[:n]
	}
}

// Scratch carries a backing clause array a caller is willing to let
// SimplifyWith reuse for its output, analogous to the evaluator
// storage reuse protocol in package eval.
type Scratch struct {
	Clauses []Clause
}
