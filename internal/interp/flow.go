// Package interp is the semantic engine: the statement and expression
// evaluator (spec.md §4.6-§4.7) and method dispatch (§4.5), tying
// together the class registry (internal/classdef), the runtime data
// model (internal/runtime) and the host adapter (internal/host).
package interp

import "github.com/cwbudde/classlisp/internal/runtime"

// Flow is the threaded result of evaluating a statement or
// expression: either a normal continuation, a `return`, or a thrown
// exception. Grounded on the teacher's typed-result-object convention
// (internal/interp/evaluator/result.go) in place of a three-way
// multi-return, so every evaluator function has one uniform signature
// to check after each sub-evaluation, per spec.md §4.6's propagation
// contract.
type Flow struct {
	Returning bool
	Value     runtime.Value
	Exception *string
}

// Normal is the non-exceptional, non-returning flow.
func Normal() Flow { return Flow{} }

// Return signals a `return` statement with the given value (nil for
// a bare `return`).
func Return(v runtime.Value) Flow { return Flow{Returning: true, Value: v} }

// Throw signals a thrown exception carrying the given string payload.
func Throw(msg string) Flow { return Flow{Exception: &msg} }

// IsExceptional reports whether f carries a propagating exception.
func (f Flow) IsExceptional() bool { return f.Exception != nil }
