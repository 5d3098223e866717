package classdef

import "testing"

func TestInstantiateSimpleClass(t *testing.T) {
	prog := mustParse(t, `(class Counter (field int n 5))`)
	r, err := Load(prog)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	obj, err := Instantiate(r, "Counter", 0)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	f, ok := obj.OwnField("n")
	if !ok || f.Val.String() != "5" {
		t.Errorf("field n = %v, want 5", f)
	}
}

func TestInstantiateBuildsSuperChain(t *testing.T) {
	prog := mustParse(t, `(class Animal (field int age 1)) (class Dog inherits Animal (field string name "rex"))`)
	r, err := Load(prog)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	obj, err := Instantiate(r, "Dog", 0)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	if obj.Super == nil {
		t.Fatal("Dog instance should have a Super object")
	}
	if _, ok := obj.Super.OwnField("age"); !ok {
		t.Error("Dog's Super object should carry Animal's own field")
	}
	if _, ok := obj.OwnField("age"); ok {
		t.Error("Dog's own field map should not carry Animal's inherited field (spec.md §3 invariant 3)")
	}
}

func TestInstantiateRejectsBareGeneric(t *testing.T) {
	prog := mustParse(t, `(tclass node (T) (field T value 0))`)
	r, err := Load(prog)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := Instantiate(r, "node", 0); err == nil {
		t.Error("Instantiate should reject instantiating a generic class with no type arguments")
	}
}

func TestInstantiateSpecializesGeneric(t *testing.T) {
	prog := mustParse(t, `(tclass node (T) (field T value 0) (field node@T next null))`)
	r, err := Load(prog)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	obj, err := Instantiate(r, "node@int", 0)
	if err != nil {
		t.Fatalf("Instantiate(node@int) error = %v", err)
	}
	if obj.ClassName != "node@int" {
		t.Errorf("ClassName = %q, want %q", obj.ClassName, "node@int")
	}
	f, ok := obj.OwnField("value")
	if !ok {
		t.Fatal("specialized object should carry a \"value\" field")
	}
	if f.Val.Type() != "int" || f.Val.String() != "0" {
		t.Errorf("value field = %v, want int 0", f.Val)
	}
	next, ok := obj.OwnField("next")
	if !ok || next.Val.Type() != "null" {
		t.Errorf("next field = %v, want null", next.Val)
	}
}

func TestInstantiateGenericArityMismatch(t *testing.T) {
	prog := mustParse(t, `(tclass pair (A B) (field A first null) (field B second null))`)
	r, err := Load(prog)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := Instantiate(r, "pair@int", 0); err == nil {
		t.Error("Instantiate should reject a generic instantiation with the wrong number of type arguments")
	}
}
