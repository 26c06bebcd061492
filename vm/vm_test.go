package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/choice"
	"github.com/katalvlaran/sdfeval/interval"
	"github.com/katalvlaran/sdfeval/tape"
	"github.com/katalvlaran/sdfeval/vm"
)

func sumXY() *tape.Program {
	clauses := []tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpVarY, A: -1, B: -1},
		{Op: tape.OpAdd, A: 0, B: 1},
	}
	return tape.NewProgram(clauses, 0)
}

func TestPointInterpreterBasic(t *testing.T) {
	p := sumXY()
	interp := vm.NewPoint(p, nil)
	choices := make([]choice.Choice, p.ChoiceCount())
	got := interp.EvalP(p, 1, 2, 0, nil, choices)
	require.Equal(t, float32(3), got)
}

func TestPointInterpreterStorageRoundTrip(t *testing.T) {
	p := sumXY()
	interp := vm.NewPoint(p, nil)
	choices := make([]choice.Choice, p.ChoiceCount())
	interp.EvalP(p, 1, 2, 0, nil, choices)

	var s backend.Storage = interp.Take()
	interp2 := vm.NewPoint(p, s)
	got := interp2.EvalP(p, 4, 5, 0, nil, choices)
	require.Equal(t, float32(9), got)
}

func TestIntervalInterpreterMinChoiceOrMerge(t *testing.T) {
	clauses := []tape.Clause{
		{Op: tape.OpVarX, A: -1, B: -1},
		{Op: tape.OpVarY, A: -1, B: -1},
		{Op: tape.OpMin, A: 0, B: 1},
	}
	p := tape.NewProgram(clauses, 0)
	interp := vm.NewInterval(p, nil)
	choices := make([]choice.Choice, p.ChoiceCount())

	got := interp.EvalI(p, interval.New(0, 1), interval.New(2, 3), interval.New(0, 0), nil, choices)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, choice.Left, choices[0])

	// A second call without resetting OR-merges into the prior trace,
	// the accumulation behavior subdivision relies on.
	got = interp.EvalI(p, interval.New(5, 6), interval.New(0, 1), interval.New(0, 0), nil, choices)
	require.Equal(t, interval.New(0, 1), got)
	require.Equal(t, choice.Both, choices[0])
}
