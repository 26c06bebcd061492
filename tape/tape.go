package tape

import "github.com/katalvlaran/sdfeval/choice"

// Op identifies a clause's operation.
type Op uint8

const (
	OpVarX Op = iota
	OpVarY
	OpVarZ
	OpVar
	OpConst
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpAbs
	OpSquare
	OpSqrt
	OpRecip
	OpMin
	OpMax
	// OpIdentity aliases another clause's register. Simplify rewrites a
	// resolved Min/Max clause to OpIdentity pointing at the selected
	// operand; register indices are then remapped when unreachable
	// clauses are compacted away.
	OpIdentity
)

// IsChoice reports whether op is a choice (min/max) operator.
func (op Op) IsChoice() bool {
	return op == OpMin || op == OpMax
}

// Clause is one instruction of a Program. A and B are register
// indices (positions within the owning Program's Clauses slice) for
// binary/unary operands; unused operand slots are -1. Imm holds an
// immediate constant for OpConst. VarSlot indexes into the vars slice
// bound at eval time for OpVar.
type Clause struct {
	Op      Op
	A, B    int
	Imm     float32
	VarSlot int
}

// Tape is the contract the evaluator harness (package eval) drives.
// Program below is the only implementation in this repository; a
// production system would compile Tape from an expression graph
// instead (out of scope — see doc.go).
type Tape interface {
	// ChoiceCount returns the number of choice (min/max) clauses.
	ChoiceCount() int
	// VarCount returns the number of named variable slots the tape expects.
	VarCount() int
	// Clauses returns the tape's clause list in evaluation order.
	Clauses() []Clause
	// RegLimit returns the register-file bound this tape is planned for.
	RegLimit() int
	// Clone returns a cheap, shared-ownership copy.
	Clone() Tape
	// Simplify produces a specialized tape valid wherever choices holds,
	// allocating fresh storage.
	Simplify(choices []choice.Choice) (Tape, error)
	// SimplifyWith is like Simplify but reuses ws and scratch's backing
	// storage where their shape (capacity) allows.
	SimplifyWith(choices []choice.Choice, ws *Workspace, scratch Scratch) (Tape, error)
}
