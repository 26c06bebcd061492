// Package sdfeval evaluates closed-form implicit-surface expressions
// — tapes of arithmetic, min/max, and elementary-function clauses —
// at a single point or over a conservative interval bound, recording
// which operand of every min/max clause was observed along the way.
//
// Under the hood:
//
//	choice/   — the two-bit choice lattice (Unknown/Left/Right/Both)
//	interval/ — conservative float32 interval arithmetic
//	tape/     — the clause-list program representation and simplification
//	backend/  — the pluggable point/interval back-end contract
//	vm/       — a reference interpreter back-end
//	eval/     — the evaluator harness: choice capture, reset, subdivision
//	varbind/  — named-variable binding onto a flat vars slice
//	builder/  — a programmatic tape-construction facade
//	pool/     — a leasable pool of recycled evaluators for worker use
//
// This is a reference evaluator, not a production compiler: there is
// no expression-graph construction, constant folding, register
// allocation, or native code generation here — see tape/doc.go.
//
//	go get github.com/katalvlaran/sdfeval
package sdfeval
