package interp

import (
	"strconv"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/classdef"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
)

// evalExpr implements spec.md §4.7: literals, variable reference, the
// arithmetic/comparison/equality/logical/unary operators, `new` and
// `call`. Every sub-evaluation's Flow/error is checked immediately so
// an exception or fatal error short-circuits the rest of the form,
// per spec.md §4.6's propagation contract.
func (ip *Interp) evalExpr(scope *Scope, n ast.Node) (runtime.Value, Flow, error) {
	switch v := n.(type) {
	case *ast.Atom:
		return ip.evalAtom(scope, v)
	case *ast.List:
		return ip.evalList(scope, v)
	default:
		return nil, Flow{}, herrors.New(herrors.Syntax, "unrecognized node")
	}
}

func (ip *Interp) evalAtom(scope *Scope, a *ast.Atom) (runtime.Value, Flow, error) {
	if a.Quoted {
		return &runtime.StringValue{Value: a.Text}, Normal(), nil
	}
	switch a.Text {
	case "true":
		return runtime.True, Normal(), nil
	case "false":
		return runtime.False, Normal(), nil
	case "null":
		return runtime.Null, Normal(), nil
	case "me":
		return &runtime.ObjectValue{Object: scope.Frame.Receiver}, Normal(), nil
	case "super":
		sup, ok := scope.Frame.SuperObject()
		if !ok {
			return nil, Flow{}, herrors.At(herrors.Type, a.Line(), herrors.MsgNoSuper, scope.Frame.DefiningClass.Name)
		}
		return &runtime.ObjectValue{Object: sup}, Normal(), nil
	}
	if iv, err := strconv.ParseInt(a.Text, 10, 64); err == nil {
		return &runtime.IntValue{Value: iv}, Normal(), nil
	}
	f, err := scope.Resolve(a.Text, a.Line())
	if err != nil {
		return nil, Flow{}, err
	}
	return f.Val, Normal(), nil
}

func (ip *Interp) evalList(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	line := list.Line()
	switch list.Head() {
	case "new":
		spelling, ok := list.AtomAt(1)
		if !ok {
			return nil, Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgMalformedForm, "new")
		}
		obj, err := classdef.Instantiate(ip.Registry, spelling, line)
		if err != nil {
			return nil, Flow{}, err
		}
		return &runtime.ObjectValue{Object: obj}, Normal(), nil

	case "call":
		return ip.evalCall(scope, list)

	case "+", "-", "*", "/", "%":
		return ip.evalArith(scope, list)

	case "<", ">", "<=", ">=":
		return ip.evalCompare(scope, list)

	case "==", "!=":
		return ip.evalEquality(scope, list)

	case "&", "|":
		return ip.evalLogical(scope, list)

	case "!":
		return ip.evalNot(scope, list)

	default:
		return nil, Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgUnknownExpression, list.Head())
	}
}

func (ip *Interp) evalCall(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	line := list.Line()
	methodName, ok := list.AtomAt(2)
	if !ok {
		return nil, Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgMalformedForm, "call")
	}

	recvVal, flow, err := ip.resolveReceiverValue(scope, list.At(1), line)
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	if _, ok := recvVal.(*runtime.NullValue); ok {
		return nil, Flow{}, herrors.At(herrors.Fault, line, herrors.MsgNullDereference, methodName)
	}
	ov, ok := recvVal.(*runtime.ObjectValue)
	if !ok {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgCallOnNonObject, methodName)
	}

	args := make([]runtime.Value, 0, list.Len()-3)
	for i := 3; i < list.Len(); i++ {
		v, flow, err := ip.evalExpr(scope, list.At(i))
		if err != nil || flow.IsExceptional() {
			return nil, flow, err
		}
		args = append(args, v)
	}

	return ip.Dispatch(ov.Object, methodName, args, line)
}

// resolveReceiverValue resolves the `call` form's RECEIVER operand
// per spec.md §4.5 step 2: `me`/`super` specially, an identifier via
// scope lookup, or a nested expression evaluated generically.
func (ip *Interp) resolveReceiverValue(scope *Scope, n ast.Node, line int) (runtime.Value, Flow, error) {
	if a, ok := n.(*ast.Atom); ok && !a.Quoted {
		switch a.Text {
		case "me":
			return &runtime.ObjectValue{Object: scope.Frame.Receiver}, Normal(), nil
		case "super":
			sup, ok := scope.Frame.SuperObject()
			if !ok {
				return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgNoSuper, scope.Frame.DefiningClass.Name)
			}
			return &runtime.ObjectValue{Object: sup}, Normal(), nil
		default:
			f, err := scope.Resolve(a.Text, line)
			if err != nil {
				return nil, Flow{}, err
			}
			return f.Val, Normal(), nil
		}
	}
	return ip.evalExpr(scope, n)
}

func (ip *Interp) evalArith(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	op := list.Head()
	line := list.Line()
	l, flow, err := ip.evalExpr(scope, list.At(1))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	r, flow, err := ip.evalExpr(scope, list.At(2))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}

	if op == "+" {
		if ls, ok := l.(*runtime.StringValue); ok {
			if rs, ok := r.(*runtime.StringValue); ok {
				return &runtime.StringValue{Value: ls.Value + rs.Value}, Normal(), nil
			}
		}
	}

	li, lok := l.(*runtime.IntValue)
	ri, rok := r.(*runtime.IntValue)
	if !lok || !rok {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotInt, op)
	}
	switch op {
	case "+":
		return &runtime.IntValue{Value: li.Value + ri.Value}, Normal(), nil
	case "-":
		return &runtime.IntValue{Value: li.Value - ri.Value}, Normal(), nil
	case "*":
		return &runtime.IntValue{Value: li.Value * ri.Value}, Normal(), nil
	case "/":
		if ri.Value == 0 {
			return nil, Flow{}, herrors.At(herrors.Fault, line, "division by zero")
		}
		return &runtime.IntValue{Value: li.Value / ri.Value}, Normal(), nil
	case "%":
		if ri.Value == 0 {
			return nil, Flow{}, herrors.At(herrors.Fault, line, "division by zero")
		}
		return &runtime.IntValue{Value: li.Value % ri.Value}, Normal(), nil
	}
	return nil, Flow{}, herrors.At(herrors.Syntax, line, herrors.MsgUnknownExpression, op)
}

func (ip *Interp) evalCompare(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	op := list.Head()
	line := list.Line()
	l, flow, err := ip.evalExpr(scope, list.At(1))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	r, flow, err := ip.evalExpr(scope, list.At(2))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}

	if li, ok := l.(*runtime.IntValue); ok {
		ri, ok := r.(*runtime.IntValue)
		if !ok {
			return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotInt, op)
		}
		return runtime.Bool(compareInt(op, li.Value, ri.Value)), Normal(), nil
	}
	if ls, ok := l.(*runtime.StringValue); ok {
		rs, ok := r.(*runtime.StringValue)
		if !ok {
			return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotString, op)
		}
		return runtime.Bool(compareString(op, ls.Value, rs.Value)), Normal(), nil
	}
	return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotInt, op)
}

func compareInt(op string, a, b int64) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	default: // ">="
		return a >= b
	}
}

func compareString(op string, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	default: // ">="
		return a >= b
	}
}

func (ip *Interp) evalEquality(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	op := list.Head()
	line := list.Line()
	l, flow, err := ip.evalExpr(scope, list.At(1))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	r, flow, err := ip.evalExpr(scope, list.At(2))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}

	eq, ok := valuesEqual(l, r)
	if !ok {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgBadEquality, l.Type(), r.Type(), op)
	}
	if op == "!=" {
		eq = !eq
	}
	return runtime.Bool(eq), Normal(), nil
}

// valuesEqual implements spec.md §4.7's equality rule: matching
// primitive tags compare by value; object/null compares by reference
// identity provided one side is assignment-compatible with the
// other's declared class (either side being null always compares).
// The bool result reports whether the comparison is well-typed at all.
func valuesEqual(l, r runtime.Value) (eq bool, typeOK bool) {
	switch lv := l.(type) {
	case *runtime.IntValue:
		rv, ok := r.(*runtime.IntValue)
		return ok && lv.Value == rv.Value, ok
	case *runtime.StringValue:
		rv, ok := r.(*runtime.StringValue)
		return ok && lv.Value == rv.Value, ok
	case *runtime.BoolValue:
		rv, ok := r.(*runtime.BoolValue)
		return ok && lv.Value == rv.Value, ok
	case *runtime.NullValue:
		switch r.(type) {
		case *runtime.NullValue, *runtime.ObjectValue:
			_, rIsNull := r.(*runtime.NullValue)
			if rIsNull {
				return true, true
			}
			return false, true
		default:
			return false, false
		}
	case *runtime.ObjectValue:
		switch rv := r.(type) {
		case *runtime.NullValue:
			return false, true
		case *runtime.ObjectValue:
			compatible := lv.Object.IsInstanceOfName(rv.Object.ClassName) || rv.Object.IsInstanceOfName(lv.Object.ClassName)
			if !compatible {
				return false, false
			}
			return lv.Object == rv.Object, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}

func (ip *Interp) evalLogical(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	op := list.Head()
	line := list.Line()
	l, flow, err := ip.evalExpr(scope, list.At(1))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	r, flow, err := ip.evalExpr(scope, list.At(2))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	lb, lok := l.(*runtime.BoolValue)
	rb, rok := r.(*runtime.BoolValue)
	if !lok || !rok {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotBool, op)
	}
	if op == "&" {
		return runtime.Bool(lb.Value && rb.Value), Normal(), nil
	}
	return runtime.Bool(lb.Value || rb.Value), Normal(), nil
}

func (ip *Interp) evalNot(scope *Scope, list *ast.List) (runtime.Value, Flow, error) {
	line := list.Line()
	v, flow, err := ip.evalExpr(scope, list.At(1))
	if err != nil || flow.IsExceptional() {
		return nil, flow, err
	}
	b, ok := v.(*runtime.BoolValue)
	if !ok {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgOperandsNotBool, "!")
	}
	return runtime.Bool(!b.Value), Normal(), nil
}
