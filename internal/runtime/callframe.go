package runtime

// CallFrame tracks the two receiver-like facts a method activation
// needs beyond its local variable frames (spec.md §4.3 rules 3-4):
// the most-derived object of the active call chain (`me`), and the
// class whose method body is currently executing (used to resolve
// `super` and to restrict bare field lookup to that class's own
// fields, per spec.md §9 open question (a)).
type CallFrame struct {
	Receiver      *Object
	DefiningClass *ClassDef
}

// NewCallFrame starts a fresh call: receiver is the object the method
// was dispatched against, definingClass is the class in whose method
// table the dispatched overload was found.
func NewCallFrame(receiver *Object, definingClass *ClassDef) *CallFrame {
	return &CallFrame{Receiver: receiver, DefiningClass: definingClass}
}

// DefiningObject returns the sub-object of Receiver's superclass chain
// whose class is exactly DefiningClass — the object whose own field
// map bare field references and `me.field` should see.
func (f *CallFrame) DefiningObject() *Object {
	for cur := f.Receiver; cur != nil; cur = cur.Super {
		if cur.Def == f.DefiningClass {
			return cur
		}
	}
	return f.Receiver
}

// SuperObject returns the immediate superclass object of
// DefiningObject, or false if DefiningClass has no superclass.
func (f *CallFrame) SuperObject() (*Object, bool) {
	do := f.DefiningObject()
	if do.Super == nil {
		return nil, false
	}
	return do.Super, true
}
