package main

import (
	"fmt"

	"github.com/katalvlaran/sdfeval/builder"
	"github.com/katalvlaran/sdfeval/tape"
)

// demoTapes holds small fixed tapes for the CLI to exercise, since
// builder is a programmatic Go API rather than a textual front-end;
// there is no expression parser to hand an arbitrary formula to.
var demoTapes = map[string]func() (*tape.Program, error){
	"min-xy": func() (*tape.Program, error) {
		b := builder.New()
		x := b.X()
		y := b.Y()
		return b.Build(b.Min(x, y))
	},
	"max-max-xyz": func() (*tape.Program, error) {
		b := builder.New()
		x := b.X()
		y := b.Y()
		z := b.Z()
		return b.Build(b.Max(b.Max(x, y), z))
	},
	"sphere": func() (*tape.Program, error) {
		b := builder.New()
		x := b.X()
		y := b.Y()
		z := b.Z()
		sumSq := b.Add(b.Add(b.Square(x), b.Square(y)), b.Square(z))
		r := b.Const(1.0)
		return b.Build(b.Sub(b.Sqrt(sumSq), r))
	},
}

func buildDemoTape(name string) (*tape.Program, error) {
	fn, ok := demoTapes[name]
	if !ok {
		return nil, fmt.Errorf("tapebench: unknown demo tape %q", name)
	}
	return fn()
}
