package varbind

import (
	"github.com/iancoleman/strcase"
)

// Binder maps variable names to their slot in a flat vars slice, built
// once and reused across many Bind calls without reallocating.
//
// Names are normalized with strcase.ToSnake before lookup, so
// "RadiusSq", "radius_sq", and "radius-sq" all resolve to the same
// slot.
type Binder struct {
	slots map[string]int
	vars  []float32
}

// NewBinder builds a Binder for the given ordered variable names,
// backing it with a freshly-allocated vars slice of len(names). It
// fails with SlotCountError if len(names) != expected (typically
// tape.VarCount()).
func NewBinder(names []string, expected int) (*Binder, error) {
	if len(names) != expected {
		return nil, &SlotCountError{Given: len(names), Expected: expected}
	}
	slots := make(map[string]int, len(names))
	for i, n := range names {
		slots[strcase.ToSnake(n)] = i
	}
	return &Binder{slots: slots, vars: make([]float32, len(names))}, nil
}

// Bind sets the value of the named variable in the binder's backing
// slice. It fails with UnknownNameError if name was not among those
// passed to NewBinder.
func (b *Binder) Bind(name string, value float32) error {
	slot, ok := b.slots[strcase.ToSnake(name)]
	if !ok {
		return &UnknownNameError{Name: name}
	}
	b.vars[slot] = value
	return nil
}

// Vars returns the flat slice suitable for passing as the vars
// argument to eval.PointEval / eval.IntervalEval. The returned slice
// aliases the binder's internal storage and is reused by subsequent
// Bind calls; callers that need a stable snapshot must copy it.
func (b *Binder) Vars() []float32 {
	return b.vars
}

// Len returns the number of declared variable slots.
func (b *Binder) Len() int {
	return len(b.vars)
}
