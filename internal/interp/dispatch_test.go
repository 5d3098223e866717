package interp

import (
	"testing"

	"github.com/cwbudde/classlisp/internal/classdef"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/host"
	"github.com/cwbudde/classlisp/internal/sexpr"
)

func setupInterp(t *testing.T, src string) *Interp {
	t.Helper()
	prog, err := sexpr.Parse(src)
	if err != nil {
		t.Fatalf("sexpr.Parse() error = %v", err)
	}
	r, err := classdef.Load(prog)
	if err != nil {
		t.Fatalf("classdef.Load() error = %v", err)
	}
	return New(r, host.NewBuffer())
}

func TestDispatchNoMatchingOverloadFails(t *testing.T) {
	ip := setupInterp(t, `(class Foo (method void f ((int x)) (begin)))`)
	cd, _ := ip.Registry.Lookup("Foo")
	obj, err := classdef.Instantiate(ip.Registry, "Foo", 0)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	_ = cd
	_, _, err = ip.Dispatch(obj, "f", nil, 0)
	if err == nil {
		t.Fatal("Dispatch should fail when no overload matches the argument list")
	}
	he, ok := err.(*herrors.Error)
	if !ok || he.Category != herrors.Name {
		t.Errorf("error = %v, want a NAME category herrors.Error", err)
	}
}

func TestDispatchSelectsFirstCompatibleAncestorOverload(t *testing.T) {
	src := `(class A (method string who () (return "A")))
		(class B inherits A)`
	ip := setupInterp(t, src)
	obj, err := classdef.Instantiate(ip.Registry, "B", 0)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	v, flow, err := ip.Dispatch(obj, "who", nil, 0)
	if err != nil || flow.IsExceptional() {
		t.Fatalf("Dispatch() = (%v, %v, %v)", v, flow, err)
	}
	if v.String() != "A" {
		t.Errorf("result = %q, want %q (B has no override, so A's method runs)", v.String(), "A")
	}
}

func TestDispatchReturnTypeMismatchFails(t *testing.T) {
	// A method declared to return int but whose body returns a string
	// is a TYPE error raised when the value crosses back out of Dispatch.
	src := `(class Foo (method int f () (return "oops")))`
	ip := setupInterp(t, src)
	obj, err := classdef.Instantiate(ip.Registry, "Foo", 0)
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	_, _, err = ip.Dispatch(obj, "f", nil, 0)
	if err == nil {
		t.Fatal("Dispatch should fail when the returned value isn't assignable to the declared return type")
	}
	if he, ok := err.(*herrors.Error); !ok || he.Category != herrors.Type {
		t.Errorf("error = %v, want a TYPE category herrors.Error", err)
	}
}

func TestDispatchVoidMethodReturningValueFails(t *testing.T) {
	src := `(class Foo (method void f () (return 1)))`
	ip := setupInterp(t, src)
	obj, _ := classdef.Instantiate(ip.Registry, "Foo", 0)
	_, _, err := ip.Dispatch(obj, "f", nil, 0)
	if err == nil {
		t.Fatal("Dispatch should fail when a void method's body returns a value")
	}
}

func TestDispatchEmptyReturnYieldsDefault(t *testing.T) {
	src := `(class Foo (method int f () (return)))`
	ip := setupInterp(t, src)
	obj, _ := classdef.Instantiate(ip.Registry, "Foo", 0)
	v, flow, err := ip.Dispatch(obj, "f", nil, 0)
	if err != nil || flow.IsExceptional() {
		t.Fatalf("Dispatch() = (%v, %v, %v)", v, flow, err)
	}
	if v.String() != "0" {
		t.Errorf("result = %q, want the int default \"0\" (spec.md §8 boundary behavior)", v.String())
	}
}

func TestDispatchExceptionPropagatesAsFlow(t *testing.T) {
	src := `(class Foo (method void f () (throw "boom")))`
	ip := setupInterp(t, src)
	obj, _ := classdef.Instantiate(ip.Registry, "Foo", 0)
	_, flow, err := ip.Dispatch(obj, "f", nil, 0)
	if err != nil {
		t.Fatalf("a thrown exception must not surface as a Go error, got %v", err)
	}
	if !flow.IsExceptional() || *flow.Exception != "boom" {
		t.Errorf("flow = %+v, want an exceptional Flow carrying \"boom\"", flow)
	}
}
