package interp

import (
	"strconv"
	"strings"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
)

// evalStmt implements spec.md §4.6: it dispatches every statement
// form, threading a Flow for `return`/`throw` propagation and a plain
// Go error for fatal SYNTAX/NAME/TYPE/FAULT diagnostics (which, per
// spec.md §7, are never catchable by the language's own `try`).
//
// Forms not in the statement vocabulary below (literals, identifiers,
// operators, `call`) are evaluated as expressions and their value
// discarded — the grammar doesn't distinguish statements from
// expressions beyond this set, so an expression used in statement
// position is legal (e.g. a bare `(new Foo)` evaluated for its
// allocation side effect).
func (ip *Interp) evalStmt(scope *Scope, n ast.Node) (Flow, error) {
	list, ok := n.(*ast.List)
	if !ok {
		_, flow, err := ip.evalExpr(scope, n)
		return flow, err
	}
	line := list.Line()

	switch list.Head() {
	case "begin":
		for i := 1; i < list.Len(); i++ {
			flow, err := ip.evalStmt(scope, list.At(i))
			if err != nil || flow.Returning || flow.IsExceptional() {
				return flow, err
			}
		}
		return Normal(), nil

	case "set":
		lval, ok := list.AtomAt(1)
		if !ok {
			return Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgMalformedForm, "set")
		}
		val, flow, err := ip.evalExpr(scope, list.At(2))
		if err != nil || flow.IsExceptional() {
			return flow, err
		}
		f, rerr := scope.Resolve(lval, line)
		if rerr != nil {
			return Flow{}, rerr
		}
		if !runtime.IsAssignable(val, f.Declared) {
			return Flow{}, herrors.At(herrors.Type, line, herrors.MsgAssignMismatch, val.Type(), f.Declared.String())
		}
		f.Val = val
		return Normal(), nil

	case "if":
		pred, flow, err := ip.evalExpr(scope, list.At(1))
		if err != nil || flow.IsExceptional() {
			return flow, err
		}
		b, ok := pred.(*runtime.BoolValue)
		if !ok {
			return Flow{}, herrors.At(herrors.Type, line, herrors.MsgPredicateNotBool, "if")
		}
		if b.Value {
			return ip.evalStmt(scope, list.At(2))
		}
		if list.Len() > 3 {
			return ip.evalStmt(scope, list.At(3))
		}
		return Normal(), nil

	case "while":
		for {
			pred, flow, err := ip.evalExpr(scope, list.At(1))
			if err != nil || flow.IsExceptional() {
				return flow, err
			}
			b, ok := pred.(*runtime.BoolValue)
			if !ok {
				return Flow{}, herrors.At(herrors.Type, line, herrors.MsgPredicateNotBool, "while")
			}
			if !b.Value {
				return Normal(), nil
			}
			bodyFlow, err := ip.evalStmt(scope, list.At(2))
			if err != nil || bodyFlow.Returning || bodyFlow.IsExceptional() {
				return bodyFlow, err
			}
		}

	case "return":
		if list.Len() < 2 {
			return Return(nil), nil
		}
		val, flow, err := ip.evalExpr(scope, list.At(1))
		if err != nil || flow.IsExceptional() {
			return flow, err
		}
		return Return(val), nil

	case "print":
		var sb strings.Builder
		for i := 1; i < list.Len(); i++ {
			val, flow, err := ip.evalExpr(scope, list.At(i))
			if err != nil || flow.IsExceptional() {
				return flow, err
			}
			sb.WriteString(val.String())
		}
		ip.Host.Output(sb.String())
		return Normal(), nil

	case "inputi":
		return ip.evalInput(scope, list, line, true)

	case "inputs":
		return ip.evalInput(scope, list, line, false)

	case "new":
		_, flow, err := ip.evalExpr(scope, list)
		return flow, err

	case "let":
		return ip.evalLet(scope, list)

	case "try":
		return ip.evalTry(scope, list)

	case "throw":
		val, flow, err := ip.evalExpr(scope, list.At(1))
		if err != nil || flow.IsExceptional() {
			return flow, err
		}
		s, ok := val.(*runtime.StringValue)
		if !ok {
			return Flow{}, herrors.At(herrors.Type, line, herrors.MsgThrowNotString)
		}
		return Throw(s.Value), nil

	default:
		_, flow, err := ip.evalExpr(scope, list)
		return flow, err
	}
}

func (ip *Interp) evalInput(scope *Scope, list *ast.List, line int, isInt bool) (Flow, error) {
	varName, ok := list.AtomAt(1)
	if !ok {
		return Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgMalformedForm, "inputi/inputs")
	}
	f, err := scope.Resolve(varName, line)
	if err != nil {
		return Flow{}, err
	}
	raw, rerr := ip.Host.ReadLine()
	if rerr != nil {
		return Flow{}, herrors.At(herrors.Fault, line, "%s", rerr)
	}
	var val runtime.Value
	if isInt {
		n, perr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if perr != nil {
			return Flow{}, herrors.At(herrors.Fault, line, herrors.MsgNotAnInteger, "inputi")
		}
		val = &runtime.IntValue{Value: n}
	} else {
		val = &runtime.StringValue{Value: raw}
	}
	if !runtime.IsAssignable(val, f.Declared) {
		return Flow{}, herrors.At(herrors.Type, line, herrors.MsgAssignMismatch, val.Type(), f.Declared.String())
	}
	f.Val = val
	return Normal(), nil
}

// evalLet implements spec.md §4.6's `let ((T1 N1 INIT1?) …) S…`: push
// a frame with the declared locals, evaluate the body statements, and
// pop on every exit path (normal, return, or exception) — spec.md §8
// invariant 4.
func (ip *Interp) evalLet(scope *Scope, list *ast.List) (Flow, error) {
	bindings, ok := list.ListAt(1)
	if !ok {
		return Flow{}, herrors.At(herrors.Syntax, list.Line(), herrors.MsgMalformedForm, "let")
	}

	scope.Env.Push()
	defer scope.Env.Pop()

	for i := 0; i < bindings.Len(); i++ {
		binding, ok := bindings.ListAt(i)
		if !ok || binding.Len() < 2 {
			return Flow{}, herrors.At(herrors.Syntax, list.Line(), herrors.MsgMalformedForm, "let binding")
		}
		typeSpelling, _ := binding.AtomAt(0)
		name, _ := binding.AtomAt(1)
		declared, terr := ip.resolveLocalType(typeSpelling, list.Line())
		if terr != nil {
			return Flow{}, terr
		}

		var val runtime.Value
		if binding.Len() > 2 {
			v, flow, err := ip.evalExpr(scope, binding.At(2))
			if err != nil || flow.IsExceptional() {
				return flow, err
			}
			if !runtime.IsAssignable(v, declared) {
				return Flow{}, herrors.At(herrors.Type, list.Line(), herrors.MsgAssignMismatch, v.Type(), declared.String())
			}
			val = v
		} else {
			val = runtime.DefaultValue(declared)
		}
		scope.Env.Define(name, &runtime.Field{Name: name, Declared: declared, Val: val})
	}

	for i := 2; i < list.Len(); i++ {
		flow, err := ip.evalStmt(scope, list.At(i))
		if err != nil || flow.Returning || flow.IsExceptional() {
			return flow, err
		}
	}
	return Normal(), nil
}

// evalTry implements spec.md §4.6's `try TRY_STMT [CATCH_STMT]`: if
// TRY_STMT throws, bind `exception` to the payload in a fresh frame
// and evaluate CATCH_STMT; an uncaught exception (no catch clause)
// propagates.
func (ip *Interp) evalTry(scope *Scope, list *ast.List) (Flow, error) {
	flow, err := ip.evalStmt(scope, list.At(1))
	if err != nil {
		return Flow{}, err
	}
	if !flow.IsExceptional() {
		return flow, nil
	}
	if list.Len() < 3 {
		return flow, nil
	}

	scope.Env.Push()
	defer scope.Env.Pop()
	scope.Env.Define("exception", &runtime.Field{
		Name:     "exception",
		Declared: stringType,
		Val:      &runtime.StringValue{Value: *flow.Exception},
	})
	return ip.evalStmt(scope, list.At(2))
}
