// Package builder provides a small method-per-clause facade (it takes
// no options) for constructing tape.Program values clause by clause, without
// requiring callers to hand-index registers themselves.
//
// It is deliberately not a parser or expression language: there is no
// grammar, no textual surface, and no constant folding. Each method
// appends exactly one clause and returns an Expr handle (the clause's
// register index) that later calls can reference as an operand.
package builder
