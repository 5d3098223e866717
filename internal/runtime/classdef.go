package runtime

import "github.com/cwbudde/classlisp/internal/types"

// This file holds the storage shape for the Class Registry & Loader
// (C3) and Object Instantiation (C4) components: ClassDef/FieldDecl/
// MethodDecl/Registry live alongside Value/Object because, like the
// teacher's ClassInfo and ObjectInstance (internal/interp/class.go),
// class metadata and runtime values are tightly coupled — an Object
// always needs its ClassDef to dispatch a method. The *algorithms*
// that build and specialize these (the two-phase loader, template
// substitution) live in internal/classdef, which imports this package.

// Param is one (type, name) entry in a method's parameter list.
type Param struct {
	Type *types.Descriptor
	Name string
}

// FieldDecl is a class's field declaration: spec.md §3's Field =
// (name, declared type, initializer).
type FieldDecl struct {
	Name string
	Type *types.Descriptor
	// Init, if non-nil, is a parsed literal value for the field's
	// initializer. Stored as a runtime.Value (not an AST node) because
	// by the time a ClassDef is built the literal has already been
	// parsed and type-checked (or, for a templated class's deferred
	// fields, re-parsed and checked at specialization time).
	Init Value
}

// MethodDecl is one overload of a named method: spec.md §3's Method =
// (name, return type, ordered parameters, body AST).
type MethodDecl struct {
	Name       string
	ReturnType *types.Descriptor
	Params     []Param
	// Body is an ast.Node (internal/ast), kept as `any` here so this
	// package — which underlies the value model and must not depend
	// on the AST shape of statements — stays AST-agnostic; the
	// evaluator (internal/interp) type-asserts it back to ast.Node.
	Body any
}

// ClassDef is the immutable, load-time-built definition of a class or
// generic (template) class: spec.md §3's Class definition.
type ClassDef struct {
	Name   string
	Super  *ClassDef // nil if no `inherits` clause
	Fields []*FieldDecl
	// Methods maps a method name to its ordered overload list —
	// insertion (source) order, which spec.md §4.2's overload-match
	// rule selects the first compatible entry from.
	Methods map[string][]*MethodDecl

	// TemplateParams is non-empty only for a generic ("tclass") class:
	// its ordered template parameter names. Per spec.md §3 invariant
	// 4, a generic class is never itself instantiated — it exists
	// only to be specialized into a concrete ClassDef on demand.
	TemplateParams []string

	// DeferredInits holds, for a generic class only, the unparsed
	// initializer form of each field whose declared type is a template
	// parameter placeholder — the loader cannot type-check these until
	// specialization substitutes a concrete type in (spec.md §4.1).
	// Typed `any` (rather than ast.Node) so this package stays
	// AST-agnostic; internal/classdef type-asserts it back.
	DeferredInits map[string]any
}

// IsGeneric reports whether c is a template class.
func (c *ClassDef) IsGeneric() bool { return len(c.TemplateParams) > 0 }

// InheritsFrom reports whether c, or any class in its superclass
// chain, is named name.
func (c *ClassDef) InheritsFrom(name string) bool {
	for cur := c; cur != nil; cur = cur.Super {
		if cur.Name == name {
			return true
		}
	}
	return false
}

// LookupMethodOverloads returns the overload list for name, walking up
// the superclass chain and returning the first class in the chain that
// declares the name at all. It does no compatibility matching, and
// Dispatch does not use it: Dispatch walks the chain itself and tries
// each ancestor's *compatible* overload in turn (spec.md §4.5 step 3).
func (c *ClassDef) LookupMethodOverloads(name string) []*MethodDecl {
	if ov, ok := c.Methods[name]; ok {
		return ov
	}
	if c.Super != nil {
		return c.Super.LookupMethodOverloads(name)
	}
	return nil
}

// Registry is the immutable, load-once-built set of all top-level
// class definitions, keyed by declared name.
type Registry struct {
	classes map[string]*ClassDef
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*ClassDef)}
}

// Lookup returns the class definition registered under name, if any.
func (r *Registry) Lookup(name string) (*ClassDef, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Names returns all registered class names in discovery order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Register adds c to the registry. Callers (the loader) are
// responsible for rejecting duplicate names before calling this.
func (r *Registry) Register(c *ClassDef) {
	r.classes[c.Name] = c
	r.order = append(r.order, c.Name)
}
