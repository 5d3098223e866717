package runtime

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cwbudde/classlisp/internal/types"
)

// Field is a single mutable storage slot: a declared type fixed at
// class-load time, and a current value that may be reassigned (but
// must always stay assignment-compatible with Declared — spec.md §3
// invariant 2). Both local `let` bindings and object fields are
// stored as *Field so writes through either kind of lvalue share the
// same type-check-then-overwrite logic (§4.3, §4.6 `set`).
type Field struct {
	Name     string
	Declared *types.Descriptor
	Val      Value
}

// NewField creates a field with its default value already resolved
// from Declared (spec.md §4.2).
func NewField(name string, declared *types.Descriptor) *Field {
	return &Field{Name: name, Declared: declared, Val: DefaultValue(declared)}
}

// Object is a live class instance: spec.md §3's Object = (class name,
// reference to an instantiated superclass object, field map, method
// table reference). The method table itself is owned by the loader's
// ClassDef (immutable, shared across instances) — Object only stores
// what can differ per instance: its field values and its identity.
//
// Grounded on internal/interp/class.go's ObjectInstance, but keeping a
// separate Super *Object per instance (rather than one flattened field
// map) so a field shadowed in a subclass does not overwrite the
// inherited one, per spec.md §3 invariant 3 and §9's superclass-
// storage design note.
type Object struct {
	ID        uuid.UUID
	ClassName string // concrete class name, e.g. "node" or "node@int"
	// Def is the ClassDef this object was instantiated from: for a
	// plain class, the registry's own *ClassDef; for a specialized
	// generic class, the freestanding specialized definition built for
	// this instantiation (spec.md §4.4: "no global cache is required").
	Def    *ClassDef
	Super  *Object
	Fields map[string]*Field
}

// NewObject creates an empty object shell for the given class
// definition; callers populate Fields via AddField during
// instantiation (C4).
func NewObject(def *ClassDef) *Object {
	return &Object{ID: NewInstanceID(), ClassName: def.Name, Def: def, Fields: make(map[string]*Field)}
}

// AddField registers a field in this object's own field map (not its
// superclass's).
func (o *Object) AddField(f *Field) {
	o.Fields[f.Name] = f
}

// OwnField looks up a field declared directly on this object's class
// (not its superclass chain) — spec.md §9 open question (a): field
// lookup is restricted to the immediate class.
func (o *Object) OwnField(name string) (*Field, bool) {
	f, ok := o.Fields[name]
	return f, ok
}

// IsInstanceOfName reports whether this object's class, or any class
// in its superclass chain, is named exactly name. Because every live
// object's superclass is itself a fully constructed Object (spec.md §3
// invariant 3), this chain walk alone is enough to answer "is C' equal
// to or derived from C" without consulting the class registry —
// generic specializations compare by their full rendered name (e.g.
// "node@int"), implementing the "no variance" rule of spec.md §4.2.
func (o *Object) IsInstanceOfName(name string) bool {
	for cur := o; cur != nil; cur = cur.Super {
		if cur.ClassName == name {
			return true
		}
	}
	return false
}

func (o *Object) String() string {
	return fmt.Sprintf("<%s>", o.ClassName)
}
