// Package types implements the type descriptor model of spec.md §3:
// the closed set of primitive kinds plus class(NAME) and the recursive
// tclass(BASE, [ARGS...]) generic-instantiation descriptor, with
// structural equality over (BASE, ARGS).
//
// Grounded on internal/types/type_system.go's Kind+Descriptor split,
// adapted from DWScript's much larger type lattice (arrays, records,
// sets, interfaces, enums, ...) down to the closed set spec.md names.
package types

import "strings"

// Kind is the closed set of primitive/structural type tags a
// declared type in source can resolve to.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindVoid
	KindClass
	KindTClass
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindVoid:
		return "void"
	case KindClass:
		return "class"
	case KindTClass:
		return "tclass"
	default:
		return "?"
	}
}

// Descriptor is a resolved declared type: a primitive kind, a
// class(NAME) reference, or a tclass(BASE, ARGS) generic instantiation.
type Descriptor struct {
	Kind Kind

	// ClassName is set for KindClass: the registered class name.
	ClassName string

	// Base and Args are set for KindTClass: the generic class's base
	// name and its ordered, fully-resolved type arguments.
	Base string
	Args []*Descriptor
}

// Int, Bool, String, and Void are the primitive descriptors.
var (
	Int    = &Descriptor{Kind: KindInt}
	Bool   = &Descriptor{Kind: KindBool}
	String = &Descriptor{Kind: KindString}
	Void   = &Descriptor{Kind: KindVoid}
)

// Class builds a class(NAME) descriptor.
func Class(name string) *Descriptor {
	return &Descriptor{Kind: KindClass, ClassName: name}
}

// TClass builds a tclass(BASE, ARGS) descriptor.
func TClass(base string, args []*Descriptor) *Descriptor {
	return &Descriptor{Kind: KindTClass, Base: base, Args: args}
}

// IsPrimitive reports whether d is one of int/bool/string/void.
func (d *Descriptor) IsPrimitive() bool {
	switch d.Kind {
	case KindInt, KindBool, KindString, KindVoid:
		return true
	default:
		return false
	}
}

// Equal reports structural equality: primitives compare by Kind,
// class(NAME) by ClassName, and tclass(BASE, ARGS) recursively over
// (Base, Args) per spec.md §3 ("Equality on tclass is structural").
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case KindClass:
		return d.ClassName == other.ClassName
	case KindTClass:
		if d.Base != other.Base || len(d.Args) != len(other.Args) {
			return false
		}
		for i := range d.Args {
			if !d.Args[i].Equal(other.Args[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Name returns the registered-class name this descriptor denotes, for
// KindClass ("NAME") and KindTClass ("Base@Arg1@Arg2@…" via String()).
// Primitives return their Kind's spelling.
func (d *Descriptor) Name() string {
	switch d.Kind {
	case KindClass:
		return d.ClassName
	case KindTClass:
		return d.String()
	default:
		return d.Kind.String()
	}
}

// String renders the canonical "Base@Arg1@Arg2@…" surface spelling for
// a tclass descriptor, or the bare name for everything else, per
// spec.md §3/§6.
func (d *Descriptor) String() string {
	switch d.Kind {
	case KindClass:
		return d.ClassName
	case KindTClass:
		parts := make([]string, 0, len(d.Args)+1)
		parts = append(parts, d.Base)
		for _, a := range d.Args {
			parts = append(parts, a.String())
		}
		return strings.Join(parts, "@")
	default:
		return d.Kind.String()
	}
}
