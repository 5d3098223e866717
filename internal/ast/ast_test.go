package ast

import "testing"

func TestAtomString(t *testing.T) {
	plain := &Atom{Text: "42", Ln: 1}
	if got := plain.String(); got != "42" {
		t.Errorf("plain atom String() = %q, want %q", got, "42")
	}

	quoted := &Atom{Text: "hi", Ln: 1, Quoted: true}
	if got := quoted.String(); got != `"hi"` {
		t.Errorf("quoted atom String() = %q, want %q", got, `"hi"`)
	}
}

func TestListHeadAndAccessors(t *testing.T) {
	list := &List{
		Ln: 3,
		Items: []Node{
			&Atom{Text: "method", Ln: 3},
			&Atom{Text: "main", Ln: 3},
			&List{Ln: 3},
		},
	}
	if got := list.Head(); got != "method" {
		t.Errorf("Head() = %q, want %q", got, "method")
	}
	if name, ok := list.AtomAt(1); !ok || name != "main" {
		t.Errorf("AtomAt(1) = (%q, %v), want (\"main\", true)", name, ok)
	}
	if _, ok := list.AtomAt(2); ok {
		t.Error("AtomAt(2) should fail: item 2 is a List, not an Atom")
	}
	if sub, ok := list.ListAt(2); !ok || sub == nil {
		t.Error("ListAt(2) should return the nested list")
	}
	if n := list.Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
	if list.At(5) != nil {
		t.Error("At() out of range should return nil")
	}
}

func TestListHeadEmpty(t *testing.T) {
	empty := &List{}
	if got := empty.Head(); got != "" {
		t.Errorf("Head() of empty list = %q, want \"\"", got)
	}
}

func TestListStringRoundTrip(t *testing.T) {
	list := &List{Items: []Node{
		&Atom{Text: "print"},
		&Atom{Text: "hi", Quoted: true},
	}}
	want := `(print "hi")`
	if got := list.String(); got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}

func TestProgramString(t *testing.T) {
	prog := &Program{Forms: []*List{
		{Items: []Node{&Atom{Text: "a"}}},
		{Items: []Node{&Atom{Text: "b"}}},
	}}
	want := "(a)\n(b)"
	if got := prog.String(); got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}
