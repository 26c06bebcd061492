// Package tape defines the minimal reference Tape the evaluator
// harness in package eval drives, along with its workspace/scratch
// reuse types and the Simplify dead-clause-elimination pass.
//
// A production implicit-surface system compiles a Tape from an
// expression graph (constant folding, register allocation, a full
// optimizing compiler, a native back-end); that machinery is out of
// scope here. Program is a deliberately small stand-in: a flat,
// register-addressed clause list with a straightforward
// reachability-based Simplify, included only so the rest of this
// repository has something concrete to execute and test against.
package tape
