// Package backend defines the contract a pluggable evaluation back-end
// must satisfy to be driven by the harnesses in package eval.
//
// A back-end owns whatever per-tape state it needs (a compiled
// register file, SIMD lanes, JIT'd machine code — package eval never
// inspects it) and is responsible for iterating a tape's clauses
// exactly once per eval call, writing a resolved choice.Choice (never
// Unknown) into slot k for the k-th choice operator encountered, in
// tape order, before reading any later slot.
package backend
