package classdef

import (
	"fmt"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

// Instantiate implements Object Instantiation (C4) for spec.md §4.4's
// `(new SPELLING)` expression: resolve the type spelling, specialize a
// generic class on demand if it names one, then build the object
// graph bottom-up through the superclass chain.
func Instantiate(r *runtime.Registry, spelling string, line int) (*runtime.Object, error) {
	desc, err := resolveTypeSpelling(r, spelling, nil)
	if err != nil {
		return nil, herrors.At(herrors.Type, line, "%s", err)
	}

	switch desc.Kind {
	case types.KindClass:
		cd, ok := r.Lookup(desc.ClassName)
		if !ok {
			return nil, herrors.At(herrors.Type, line, herrors.MsgUnknownType, desc.ClassName)
		}
		if cd.IsGeneric() {
			return nil, herrors.At(herrors.Type, line, herrors.MsgTemplateArity, cd.Name, len(cd.TemplateParams), 0)
		}
		return instantiateConcrete(r, cd)

	case types.KindTClass:
		base, ok := r.Lookup(desc.Base)
		if !ok {
			return nil, herrors.At(herrors.Type, line, herrors.MsgUnknownType, desc.Base)
		}
		specialized, err := specialize(base, desc.Args, desc.String())
		if err != nil {
			return nil, herrors.At(herrors.Type, line, "%s", err)
		}
		return instantiateConcrete(r, specialized)

	default:
		return nil, herrors.At(herrors.Type, line, "cannot instantiate non-class type %q", desc.String())
	}
}

// instantiateConcrete builds a live Object from a fully concrete
// (non-generic) ClassDef, recursively instantiating the superclass
// chain first so Object.Super is itself a complete object — spec.md §3
// invariant 3.
func instantiateConcrete(r *runtime.Registry, cd *runtime.ClassDef) (*runtime.Object, error) {
	obj := runtime.NewObject(cd)

	if cd.Super != nil {
		super, err := instantiateConcrete(r, cd.Super)
		if err != nil {
			return nil, err
		}
		obj.Super = super
	}

	for _, fd := range cd.Fields {
		f := runtime.NewField(fd.Name, fd.Type)
		if fd.Init != nil {
			f.Val = fd.Init
		}
		obj.AddField(f)
	}

	return obj, nil
}

// specialize builds a freestanding ClassDef for a generic class
// instantiated with concrete type arguments — spec.md §4.4: no global
// cache is required, a fresh specialization is built on every call.
// Field and method signatures are substituted structurally; method
// bodies are substituted textually (AST rewrite), so a specialized
// method's `(new T)` resolves to the concrete argument type once
// control reaches it during evaluation.
func specialize(base *runtime.ClassDef, args []*types.Descriptor, name string) (*runtime.ClassDef, error) {
	if len(args) != len(base.TemplateParams) {
		return nil, fmt.Errorf(herrors.MsgTemplateArity, base.Name, len(base.TemplateParams), len(args))
	}

	out := &runtime.ClassDef{
		Name:  name,
		Super: base.Super,
	}

	fields := make([]*runtime.FieldDecl, 0, len(base.Fields))
	for _, fd := range base.Fields {
		substType := substituteType(fd.Type, base.TemplateParams, args)
		sfd := &runtime.FieldDecl{Name: fd.Name, Type: substType}

		if initAny, ok := base.DeferredInits[fd.Name]; ok {
			initNode, _ := initAny.(ast.Node)
			val, err := ParseLiteral(initNode)
			if err != nil {
				return nil, err
			}
			if !runtime.IsAssignable(val, substType) {
				return nil, fmt.Errorf(herrors.MsgBadInitializerType, fd.Name, substType.String())
			}
			sfd.Init = val
		} else {
			sfd.Init = fd.Init
		}
		fields = append(fields, sfd)
	}
	out.Fields = fields

	methods := make(map[string][]*runtime.MethodDecl, len(base.Methods))
	for name, overloads := range base.Methods {
		specOverloads := make([]*runtime.MethodDecl, 0, len(overloads))
		for _, m := range overloads {
			params := make([]runtime.Param, len(m.Params))
			for i, p := range m.Params {
				params[i] = runtime.Param{Name: p.Name, Type: substituteType(p.Type, base.TemplateParams, args)}
			}
			body := m.Body
			if n, ok := body.(ast.Node); ok {
				body = substituteNode(n, base.TemplateParams, args)
			}
			specOverloads = append(specOverloads, &runtime.MethodDecl{
				Name:       m.Name,
				ReturnType: substituteType(m.ReturnType, base.TemplateParams, args),
				Params:     params,
				Body:       body,
			})
		}
		methods[name] = specOverloads
	}
	out.Methods = methods

	return out, nil
}

// substituteType rewrites any class(NAME) placeholder matching one of
// params with the corresponding concrete argument, recursively
// descending into tclass(BASE, ARGS) nested arguments. Types that
// don't mention a template parameter are returned unchanged.
func substituteType(d *types.Descriptor, params []string, args []*types.Descriptor) *types.Descriptor {
	if d == nil {
		return nil
	}
	switch d.Kind {
	case types.KindClass:
		for i, p := range params {
			if p == d.ClassName {
				return args[i]
			}
		}
		return d
	case types.KindTClass:
		substArgs := make([]*types.Descriptor, len(d.Args))
		for i, a := range d.Args {
			substArgs[i] = substituteType(a, params, args)
		}
		return types.TClass(d.Base, substArgs)
	default:
		return d
	}
}

// substituteNode textually rewrites a method body: every non-quoted
// atom whose text exactly matches a template parameter name is
// replaced with the corresponding argument's surface type spelling
// (spec.md §4.4's "method bodies are substituted textually" rule),
// so a specialized `(new T)` becomes e.g. `(new int)`.
func substituteNode(n ast.Node, params []string, args []*types.Descriptor) ast.Node {
	switch v := n.(type) {
	case *ast.Atom:
		if v.Quoted {
			return v
		}
		for i, p := range params {
			if p == v.Text {
				return &ast.Atom{Text: args[i].String(), Ln: v.Ln, Quoted: false}
			}
		}
		return v
	case *ast.List:
		items := make([]ast.Node, len(v.Items))
		for i, it := range v.Items {
			items[i] = substituteNode(it, params, args)
		}
		return &ast.List{Items: items, Ln: v.Ln}
	default:
		return n
	}
}
