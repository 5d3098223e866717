package runtime

import "github.com/cwbudde/classlisp/internal/types"

// IsAssignable implements the "is value V assignable to a destination
// declared as type T" relation of spec.md §4.2. It is the single
// compatibility routine every other component (field/let
// initialization, `set`, parameter binding, return-value checking,
// overload resolution) calls, so the rule is defined exactly once.
func IsAssignable(v Value, t *types.Descriptor) bool {
	switch t.Kind {
	case types.KindInt:
		_, ok := v.(*IntValue)
		return ok
	case types.KindBool:
		_, ok := v.(*BoolValue)
		return ok
	case types.KindString:
		_, ok := v.(*StringValue)
		return ok
	case types.KindVoid:
		return false
	case types.KindClass, types.KindTClass:
		if _, ok := v.(*NullValue); ok {
			return true
		}
		ov, ok := v.(*ObjectValue)
		if !ok {
			return false
		}
		return ov.Object.IsInstanceOfName(t.Name())
	default:
		return false
	}
}

// Signature is an ordered list of declared parameter types — the part
// of a method signature overload resolution matches argument values
// against (spec.md §4.1 invariant 1, §4.2's overload-match rule).
type Signature []*types.Descriptor

// SignatureEqual reports whether two parameter-type signatures are
// identical, used by the loader (C3) to detect a duplicate overload:
// spec.md §4.1 invariant 1 forbids two methods sharing both name AND
// parameter-type signature within one class.
func SignatureEqual(a, b Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// MatchOverload reports whether the given argument values are
// assignment-compatible, position-by-position, with sig — spec.md
// §4.2's overload-match rule: equal arity, then per-argument
// assignment compatibility.
func MatchOverload(sig Signature, args []Value) bool {
	if len(sig) != len(args) {
		return false
	}
	for i, t := range sig {
		if !IsAssignable(args[i], t) {
			return false
		}
	}
	return true
}
