// Package vm is a minimal reference interpreter back-end for
// tape.Program, implementing both backend.PointBackend and
// backend.IntervalBackend.
//
// A production tape compiler and native-code-generating back-end are
// out of scope; tape.Program and PointInterpreter/IntervalInterpreter
// are minimal reference stand-ins
// that exist so the harnesses in package eval have something concrete
// to execute in tests and in the cmd/tapebench demo. Each clause's
// register is its own index into the program's clause list (see
// package tape); the interpreter walks clauses once in order, writing
// results into a reused register file and OR-merging a resolved
// Choice into the choice buffer for every min/max clause it crosses.
package vm
