// Package choice defines Choice, the two-bit OR-lattice used to trace
// which operand of a min/max clause contributed to an evaluation.
//
// Choice is written by a back-end (package backend) for every min/max
// clause in a tape, once per sample, and merged (bitwise OR) across
// samples by that back-end; the evaluator harness in package eval only
// resets the buffer to Unknown before an evaluation. The lattice order
// is Unknown -> {Left, Right} -> Both; merge is commutative,
// associative, idempotent, and monotone in that order.
package choice
