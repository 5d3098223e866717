package classdef

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/runtime"
)

// ParseLiteral parses an AST atom as one of the four literal forms
// spec.md §4.1 names for a field/let initializer: int (decimal), bool
// (true/false), string (double-quoted), or null.
func ParseLiteral(n ast.Node) (runtime.Value, error) {
	a, ok := n.(*ast.Atom)
	if !ok {
		return nil, fmt.Errorf("expected a literal, got a list")
	}
	if a.Quoted {
		return &runtime.StringValue{Value: a.Text}, nil
	}
	switch a.Text {
	case "true":
		return runtime.True, nil
	case "false":
		return runtime.False, nil
	case "null":
		return runtime.Null, nil
	}
	if iv, err := strconv.ParseInt(a.Text, 10, 64); err == nil {
		return &runtime.IntValue{Value: iv}, nil
	}
	return nil, fmt.Errorf("invalid literal %q", a.Text)
}
