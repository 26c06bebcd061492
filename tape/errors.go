package tape

import "fmt"

// BadChoiceSliceError is returned when a choice slice passed to
// Simplify/SimplifyWith does not have length ChoiceCount().
type BadChoiceSliceError struct {
	Given, Expected int
}

func (e *BadChoiceSliceError) Error() string {
	return fmt.Sprintf("tape: choice slice length %d does not match choice count %d", e.Given, e.Expected)
}
