package interp

import (
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
)

// Scope bundles a method activation's local frame stack with its call
// frame (me/super/defining-class context) — spec.md §4.3's lookup
// rule spans both: local `let` frames first, then the defining
// class's own field map.
type Scope struct {
	Env   *runtime.Environment
	Frame *runtime.CallFrame
}

// NewScope starts a fresh activation for a dispatched method call.
func NewScope(frame *runtime.CallFrame) *Scope {
	return &Scope{Env: runtime.NewEnvironment(), Frame: frame}
}

// Resolve implements spec.md §4.3's lookup rule: local frames
// innermost-out, then the defining class's own field map. Fails NAME
// if neither holds the name.
func (s *Scope) Resolve(name string, line int) (*runtime.Field, error) {
	if f, ok := s.Env.Lookup(name); ok {
		return f, nil
	}
	if f, ok := s.Frame.DefiningObject().OwnField(name); ok {
		return f, nil
	}
	return nil, herrors.At(herrors.Name, line, herrors.MsgUndefinedName, name)
}
