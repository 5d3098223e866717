// Package runtime implements the core data model of spec.md §3/§4.1–
// 4.5: the tagged Value variants (C1), class/field/method metadata and
// object instances (C3/C4 storage shape), the environment/scope stack
// with me/super resolution (C5), and the pure type-checking utilities
// of C2 (default values, assignment compatibility, overload matching).
//
// Grounded on internal/interp/value.go's "one struct per kind, no
// subclass hierarchy" Value interface and internal/interp/class.go's
// ClassInfo/ObjectInstance split, adapted from DWScript's flattened
// single-field-map object (subclass fields shadow inherited ones by
// overwriting the same map) to spec.md §3's invariant 3: each
// superclass is a distinct sub-object with its own field map.
package runtime

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/cwbudde/classlisp/internal/types"
)

// Value is the tagged runtime value interface. Every dynamic value in
// the language implements this; there is no separate subclass
// hierarchy for values; each kind pattern-matches on a concrete Go
// type via a type switch at each operator (design note in spec.md §9).
type Value interface {
	Type() string
	String() string
}

// IntValue is the int primitive kind.
type IntValue struct{ Value int64 }

func (v *IntValue) Type() string   { return "int" }
func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// StringValue is the string primitive kind.
type StringValue struct{ Value string }

func (v *StringValue) Type() string   { return "string" }
func (v *StringValue) String() string { return v.Value }

// BoolValue is the bool primitive kind.
type BoolValue struct{ Value bool }

func (v *BoolValue) Type() string { return "bool" }
func (v *BoolValue) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// NullValue is the null value, assignable to any object/tclass
// destination per spec.md §4.2.
type NullValue struct{}

func (v *NullValue) Type() string   { return "null" }
func (v *NullValue) String() string { return "null" }

// ObjectValue wraps a live object reference: the "object" primitive
// kind of spec.md §3. Its declared class name for polymorphic
// assignment checks is the object's own concrete ClassName — every
// object already knows the class it was constructed from, so no
// separate "declared-class-name" field is carried on the value itself.
type ObjectValue struct{ Object *Object }

func (v *ObjectValue) Type() string   { return "object" }
func (v *ObjectValue) String() string { return v.Object.String() }

// Singletons for the stateless primitives, to avoid needless
// allocation in hot evaluator paths (arithmetic, comparisons).
var (
	True  = &BoolValue{Value: true}
	False = &BoolValue{Value: false}
	Null  = &NullValue{}
)

// Bool returns True or False for b.
func Bool(b bool) *BoolValue {
	if b {
		return True
	}
	return False
}

// Truthy reports whether v is the bool value true. Callers must have
// already verified v is a *BoolValue; this is a convenience accessor,
// not a coercion — the language has no implicit truthiness (spec.md
// §4.6's `if`/`while` predicates must be exactly bool).
func Truthy(v Value) bool {
	b, ok := v.(*BoolValue)
	return ok && b.Value
}

// NewInstanceID mints a fresh object identity tag, used only for
// diagnostics (distinguishing two instances of the same class in an
// error message or trace) — never for equality, which stays reference
// identity per spec.md §4.7.
func NewInstanceID() uuid.UUID {
	return uuid.New()
}

// DefaultValue returns the zero value for a declared type per
// spec.md §4.2: int→0, bool→false, string→"", object/tclass→null.
func DefaultValue(t *types.Descriptor) Value {
	switch t.Kind {
	case types.KindInt:
		return &IntValue{}
	case types.KindBool:
		return False
	case types.KindString:
		return &StringValue{}
	default: // KindClass, KindTClass, KindVoid
		return Null
	}
}
