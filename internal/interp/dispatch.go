package interp

import (
	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

// Dispatch implements spec.md §4.5 steps 3-5: walk the superclass
// chain starting at receiver's class for the first overload whose
// parameter signature is compatible with args, bind a fresh call
// frame and parameter scope, evaluate the body, then coerce and
// type-check the return value.
//
// The returned error is always a fatal *herrors.Error (SYNTAX/NAME/
// TYPE/FAULT, per spec.md §7) that halts execution outright; a
// language-level `throw` propagates instead through the returned
// Flow, which only try/catch may intercept.
func (ip *Interp) Dispatch(receiver *runtime.Object, methodName string, args []runtime.Value, line int) (runtime.Value, Flow, error) {
	method, definingClass, ok := findOverload(receiver.Def, methodName, args)
	if !ok {
		return nil, Flow{}, herrors.At(herrors.Name, line, herrors.MsgNoMatchingOverload, methodName)
	}

	frame := runtime.NewCallFrame(receiver, definingClass)
	scope := NewScope(frame)
	scope.Env.Push()
	for i, p := range method.Params {
		if !runtime.IsAssignable(args[i], p.Type) {
			return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgAssignMismatch, args[i].Type(), p.Type.String())
		}
		scope.Env.Define(p.Name, &runtime.Field{Name: p.Name, Declared: p.Type, Val: args[i]})
	}

	body, _ := method.Body.(ast.Node)
	flow, err := ip.evalStmt(scope, body)
	scope.Env.Pop()
	if err != nil {
		return nil, Flow{}, err
	}
	if flow.IsExceptional() {
		return nil, flow, nil
	}

	result := flow.Value
	if result == nil {
		result = runtime.DefaultValue(method.ReturnType)
	}
	if method.ReturnType.Kind == types.KindVoid {
		if flow.Returning && flow.Value != nil {
			return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgVoidReturnsValue, methodName)
		}
		return result, Normal(), nil
	}
	if !runtime.IsAssignable(result, method.ReturnType) {
		return nil, Flow{}, herrors.At(herrors.Type, line, herrors.MsgReturnMismatch, methodName, result.Type(), method.ReturnType.String())
	}
	return result, Normal(), nil
}

// findOverload walks cd and its superclasses, returning the first
// overload whose signature matches args, and the class that declares
// it (spec.md §4.5 step 3: try each ancestor's compatible overload in
// turn, not just the first class that merely declares the name).
func findOverload(cd *runtime.ClassDef, name string, args []runtime.Value) (*runtime.MethodDecl, *runtime.ClassDef, bool) {
	for cur := cd; cur != nil; cur = cur.Super {
		for _, m := range cur.Methods[name] {
			if runtime.MatchOverload(paramSignature(m.Params), args) {
				return m, cur, true
			}
		}
	}
	return nil, nil, false
}

func paramSignature(params []runtime.Param) runtime.Signature {
	sig := make(runtime.Signature, len(params))
	for i, p := range params {
		sig[i] = p.Type
	}
	return sig
}
