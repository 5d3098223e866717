package runtime

import (
	"testing"

	"github.com/cwbudde/classlisp/internal/types"
)

func TestNewObjectAndAddField(t *testing.T) {
	cd := &ClassDef{Name: "Foo"}
	obj := NewObject(cd)
	if obj.ClassName != "Foo" {
		t.Errorf("ClassName = %q, want %q", obj.ClassName, "Foo")
	}
	f := NewField("x", types.Int)
	obj.AddField(f)
	got, ok := obj.OwnField("x")
	if !ok || got != f {
		t.Error("OwnField should return the field just added")
	}
	if _, ok := obj.OwnField("missing"); ok {
		t.Error("OwnField should report false for an undeclared name")
	}
}

func TestOwnFieldDoesNotSearchSuper(t *testing.T) {
	superCd := &ClassDef{Name: "Base"}
	super := NewObject(superCd)
	super.AddField(NewField("baseField", types.Int))

	subCd := &ClassDef{Name: "Sub", Super: superCd}
	sub := NewObject(subCd)
	sub.Super = super

	if _, ok := sub.OwnField("baseField"); ok {
		t.Error("OwnField must not walk the superclass chain (spec.md §9 open question (a))")
	}
}

func TestIsInstanceOfNameWalksSuperChain(t *testing.T) {
	superCd := &ClassDef{Name: "Animal"}
	super := NewObject(superCd)

	subCd := &ClassDef{Name: "Dog", Super: superCd}
	sub := NewObject(subCd)
	sub.Super = super

	if !sub.IsInstanceOfName("Dog") {
		t.Error("a Dog should be an instance of Dog")
	}
	if !sub.IsInstanceOfName("Animal") {
		t.Error("a Dog should be an instance of Animal (its superclass)")
	}
	if sub.IsInstanceOfName("Cat") {
		t.Error("a Dog should not be an instance of an unrelated class")
	}
}

func TestObjectString(t *testing.T) {
	cd := &ClassDef{Name: "Foo"}
	obj := NewObject(cd)
	if got := obj.String(); got != "<Foo>" {
		t.Errorf("String() = %q, want %q", got, "<Foo>")
	}
}
