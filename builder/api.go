package builder

import (
	"github.com/katalvlaran/sdfeval/tape"
)

// Expr is a handle to a previously-appended clause: its register
// index within the owning Builder. Expr values from one Builder must
// never be passed to another.
type Expr int

// Builder accumulates tape.Clause values in evaluation order. The zero
// value is not usable; construct with New.
type Builder struct {
	clauses []tape.Clause
	nVars   int
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) push(c tape.Clause) Expr {
	b.clauses = append(b.clauses, c)
	return Expr(len(b.clauses) - 1)
}

// X appends the x-coordinate clause.
func (b *Builder) X() Expr { return b.push(tape.Clause{Op: tape.OpVarX, A: -1, B: -1}) }

// Y appends the y-coordinate clause.
func (b *Builder) Y() Expr { return b.push(tape.Clause{Op: tape.OpVarY, A: -1, B: -1}) }

// Z appends the z-coordinate clause.
func (b *Builder) Z() Expr { return b.push(tape.Clause{Op: tape.OpVarZ, A: -1, B: -1}) }

// Var appends a named-variable clause reading slot from the vars
// slice supplied at eval time. It extends the builder's declared
// variable count to cover slot if necessary.
func (b *Builder) Var(slot int) Expr {
	if slot+1 > b.nVars {
		b.nVars = slot + 1
	}
	return b.push(tape.Clause{Op: tape.OpVar, A: -1, B: -1, VarSlot: slot})
}

// Const appends an immediate-constant clause.
func (b *Builder) Const(v float32) Expr {
	return b.push(tape.Clause{Op: tape.OpConst, A: -1, B: -1, Imm: v})
}

func (b *Builder) binary(op tape.Op, a, c Expr) Expr {
	return b.push(tape.Clause{Op: op, A: int(a), B: int(c)})
}

func (b *Builder) unary(op tape.Op, a Expr) Expr {
	return b.push(tape.Clause{Op: op, A: int(a), B: -1})
}

// Add appends a+b.
func (b *Builder) Add(a, c Expr) Expr { return b.binary(tape.OpAdd, a, c) }

// Sub appends a-b.
func (b *Builder) Sub(a, c Expr) Expr { return b.binary(tape.OpSub, a, c) }

// Mul appends a*b.
func (b *Builder) Mul(a, c Expr) Expr { return b.binary(tape.OpMul, a, c) }

// Div appends a/b.
func (b *Builder) Div(a, c Expr) Expr { return b.binary(tape.OpDiv, a, c) }

// Min appends min(a,b), a choice clause.
func (b *Builder) Min(a, c Expr) Expr { return b.binary(tape.OpMin, a, c) }

// Max appends max(a,b), a choice clause.
func (b *Builder) Max(a, c Expr) Expr { return b.binary(tape.OpMax, a, c) }

// Neg appends -a.
func (b *Builder) Neg(a Expr) Expr { return b.unary(tape.OpNeg, a) }

// Abs appends |a|.
func (b *Builder) Abs(a Expr) Expr { return b.unary(tape.OpAbs, a) }

// Square appends a*a.
func (b *Builder) Square(a Expr) Expr { return b.unary(tape.OpSquare, a) }

// Sqrt appends sqrt(a).
func (b *Builder) Sqrt(a Expr) Expr { return b.unary(tape.OpSqrt, a) }

// Recip appends 1/a.
func (b *Builder) Recip(a Expr) Expr { return b.unary(tape.OpRecip, a) }

// Build finalizes the tape with root as its output clause. It fails
// with DanglingRootError if root is not the last clause appended,
// since tape.Tape's contract defines the program's result as its final
// clause.
func (b *Builder) Build(root Expr) (*tape.Program, error) {
	last := len(b.clauses) - 1
	if int(root) != last {
		return nil, &DanglingRootError{Root: int(root), Last: last}
	}
	return tape.NewProgram(b.clauses, b.nVars), nil
}
