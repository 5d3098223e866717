// Package host defines the boundary between the evaluator and the
// outside world: writing `print` output and reading `inputi`/`inputs`
// lines, per spec.md §4.6's "blocking call into the host adapter".
// Grounded on the teacher's own io.Writer-parameterized Interpreter
// (internal/interp/interpreter.go's `New(output io.Writer)`), widened
// to a small interface so tests can supply a Buffer instead of stdio.
package host

import "github.com/cwbudde/classlisp/internal/herrors"

// Host is everything the evaluator needs from its environment: an
// output sink for `print`, a line source for `inputi`/`inputs`, and a
// sink for reporting a terminal (uncaught) error.
type Host interface {
	Output(line string)
	ReadLine() (string, error)
	ReportError(err herrors.Error)
}
