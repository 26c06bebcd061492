package eval

import "fmt"

// BadVarSliceError is returned by IntervalEval.EvalI (and friends) when
// the supplied variable slice does not have length tape.VarCount().
type BadVarSliceError struct {
	Given, Expected int
}

func (e *BadVarSliceError) Error() string {
	return fmt.Sprintf("eval: var slice length %d does not match var count %d", e.Given, e.Expected)
}
