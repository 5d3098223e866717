// Package ast defines the nested-list AST shape the interpreter core
// consumes. The core never tokenizes or parses surface syntax itself
// (see internal/sexpr for the reference front end); it only walks
// already-built Node trees, so the node set here is deliberately thin:
// a leaf Atom carrying a surface string, and an ordered List of Nodes.
package ast

import "fmt"

// Node is either an Atom (leaf token) or a List (nested ordered form).
type Node interface {
	// Line returns the 1-based source line the node came from, or 0
	// if no position information is available.
	Line() int
	String() string
}

// Atom is a single leaf token: an identifier, keyword, or literal
// surface string (e.g. "42", `"hi"`, "x", "+").
//
// Quoted records whether this atom was written as a double-quoted
// string literal in the source; it is the only way to distinguish the
// string literal "true" from the boolean literal true, or a string
// containing digits from an integer literal.
type Atom struct {
	Text   string
	Ln     int
	Quoted bool
}

func (a *Atom) Line() int { return a.Ln }
func (a *Atom) String() string {
	if a.Quoted {
		return fmt.Sprintf("%q", a.Text)
	}
	return a.Text
}

// List is an ordered, nested sequence of nodes: a parenthesized form
// such as (method void main () (print "hi")).
type List struct {
	Items []Node
	Ln    int
}

func (l *List) Line() int { return l.Ln }

func (l *List) String() string {
	s := "("
	for i, it := range l.Items {
		if i > 0 {
			s += " "
		}
		s += it.String()
	}
	return s + ")"
}

// Head returns the surface text of the first element if it is an Atom,
// or "" if the list is empty or its first element is itself a List.
func (l *List) Head() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(*Atom); ok {
		return a.Text
	}
	return ""
}

// At returns the i'th item, or nil if out of range.
func (l *List) At(i int) Node {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}

// AtomAt returns the surface text of the i'th item if it is an Atom.
func (l *List) AtomAt(i int) (string, bool) {
	n := l.At(i)
	if n == nil {
		return "", false
	}
	a, ok := n.(*Atom)
	if !ok {
		return "", false
	}
	return a.Text, true
}

// ListAt returns the i'th item as a *List, or nil/false if it isn't one.
func (l *List) ListAt(i int) (*List, bool) {
	n := l.At(i)
	if n == nil {
		return nil, false
	}
	sub, ok := n.(*List)
	return sub, ok
}

// Len returns the number of items in the list.
func (l *List) Len() int { return len(l.Items) }

// Program is the top-level parsed unit: a sequence of top-level class
// or generic-class forms, per spec.md §6.
type Program struct {
	Forms []*List
}

func (p *Program) String() string {
	s := ""
	for i, f := range p.Forms {
		if i > 0 {
			s += "\n"
		}
		s += f.String()
	}
	return s
}

// RequireList asserts that n is a *List, returning a SYNTAX-flavored
// error message (without allocating an herrors.Error, to keep this
// package free of a dependency on internal/herrors) if not.
func RequireList(n Node, context string) (*List, error) {
	l, ok := n.(*List)
	if !ok {
		return nil, fmt.Errorf("malformed %s: expected a list", context)
	}
	return l, nil
}
