package varbind

import "fmt"

// UnknownNameError is returned by Binder.Bind when name was never
// registered with NewBinder.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("varbind: unknown variable %q", e.Name)
}

// SlotCountError is returned by NewBinder when the number of names
// given does not match the tape's declared variable count.
type SlotCountError struct {
	Given, Expected int
}

func (e *SlotCountError) Error() string {
	return fmt.Sprintf("varbind: %d names given, tape declares %d variables", e.Given, e.Expected)
}
