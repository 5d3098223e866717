package classdef

import (
	"testing"

	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

func TestResolveTypePrimitives(t *testing.T) {
	r := runtime.NewRegistry()
	cases := map[string]*types.Descriptor{
		"int":    types.Int,
		"bool":   types.Bool,
		"string": types.String,
		"void":   types.Void,
	}
	for spelling, want := range cases {
		d, err := ResolveType(r, spelling)
		if err != nil {
			t.Fatalf("ResolveType(%q) error = %v", spelling, err)
		}
		if !d.Equal(want) {
			t.Errorf("ResolveType(%q) = %v, want %v", spelling, d, want)
		}
	}
}

func TestResolveTypeClass(t *testing.T) {
	r := runtime.NewRegistry()
	r.Register(&runtime.ClassDef{Name: "Foo"})

	d, err := ResolveType(r, "Foo")
	if err != nil {
		t.Fatalf("ResolveType(Foo) error = %v", err)
	}
	if d.Kind != types.KindClass || d.ClassName != "Foo" {
		t.Errorf("ResolveType(Foo) = %v, want class(Foo)", d)
	}
}

func TestResolveTypeUnknown(t *testing.T) {
	r := runtime.NewRegistry()
	if _, err := ResolveType(r, "Nope"); err == nil {
		t.Error("ResolveType should fail for an unregistered class name")
	}
}

func TestResolveTypeGenericArity(t *testing.T) {
	r := runtime.NewRegistry()
	r.Register(&runtime.ClassDef{Name: "node", TemplateParams: []string{"T"}})

	d, err := ResolveType(r, "node@int")
	if err != nil {
		t.Fatalf("ResolveType(node@int) error = %v", err)
	}
	if d.Kind != types.KindTClass || d.Base != "node" || len(d.Args) != 1 || !d.Args[0].Equal(types.Int) {
		t.Errorf("ResolveType(node@int) = %v, want tclass(node, [int])", d)
	}
}

func TestResolveTypeGenericArityMismatch(t *testing.T) {
	r := runtime.NewRegistry()
	r.Register(&runtime.ClassDef{Name: "node", TemplateParams: []string{"T"}})

	if _, err := ResolveType(r, "node"); err == nil {
		t.Error("ResolveType should fail when a generic class's arguments are omitted")
	}
}

func TestResolveTypeNestedGeneric(t *testing.T) {
	r := runtime.NewRegistry()
	r.Register(&runtime.ClassDef{Name: "box", TemplateParams: []string{"T"}})
	r.Register(&runtime.ClassDef{Name: "pair", TemplateParams: []string{"A", "B"}})

	d, err := ResolveType(r, "pair@box@int@string")
	if err != nil {
		t.Fatalf("ResolveType(pair@box@int@string) error = %v", err)
	}
	if d.Base != "pair" || len(d.Args) != 2 {
		t.Fatalf("unexpected descriptor: %v", d)
	}
	if d.Args[0].Base != "box" || !d.Args[0].Args[0].Equal(types.Int) {
		t.Errorf("first arg = %v, want tclass(box, [int])", d.Args[0])
	}
	if !d.Args[1].Equal(types.String) {
		t.Errorf("second arg = %v, want string", d.Args[1])
	}
}

func TestResolveTypeTemplateParamPlaceholder(t *testing.T) {
	r := runtime.NewRegistry()
	d, err := resolveTypeSpelling(r, "T", []string{"T"})
	if err != nil {
		t.Fatalf("resolveTypeSpelling error = %v", err)
	}
	if d.Kind != types.KindClass || d.ClassName != "T" {
		t.Errorf("template parameter should resolve to a class(T) placeholder, got %v", d)
	}
}
