package classdef

import (
	"fmt"

	"github.com/cwbudde/classlisp/internal/ast"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

// rawClass pairs a ClassDef under construction with the class's own
// template parameter names, which the loader passes to type
// resolution while reading that class's members.
type rawClass struct {
	def            *runtime.ClassDef
	templateParams []string
}

// Load ingests a parsed program — a sequence of top-level class/tclass
// forms, per spec.md §6's grammar — into a fresh, immutable Registry,
// via the two-phase discovery/definition load of spec.md §4.1.
func Load(prog *ast.Program) (*runtime.Registry, error) {
	r := runtime.NewRegistry()
	raw := make(map[string]*rawClass)

	// Phase 1: discovery. Record every class name (and, for generic
	// classes, their template-parameter arity) so that forward
	// references between classes are resolvable during the definition
	// phase.
	for _, form := range prog.Forms {
		name, templateParams, line, err := discoverHeader(form)
		if err != nil {
			return nil, herrors.At(herrors.Syntax, line, "%s", err)
		}
		if _, dup := r.Lookup(name); dup {
			return nil, herrors.At(herrors.Type, line, herrors.MsgDuplicateClass, name)
		}
		cd := &runtime.ClassDef{
			Name:           name,
			Methods:        make(map[string][]*runtime.MethodDecl),
			TemplateParams: templateParams,
		}
		if len(templateParams) > 0 {
			cd.DeferredInits = make(map[string]any)
		}
		r.Register(cd)
		raw[name] = &rawClass{def: cd, templateParams: templateParams}
	}

	// Phase 2: definition. Link superclasses, then read field and
	// method declarations for every class.
	for _, form := range prog.Forms {
		name, _ := form.AtomAt(1)
		if err := define(r, raw[name], form); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// discoverHeader extracts the class name and (for a tclass form) its
// template parameter names, without resolving fields or methods.
func discoverHeader(form *ast.List) (name string, templateParams []string, line int, err error) {
	line = form.Line()
	head := form.Head()
	switch head {
	case "class":
		name, ok := form.AtomAt(1)
		if !ok {
			return "", nil, line, fmt.Errorf("malformed class form: missing name")
		}
		return name, nil, line, nil
	case "tclass":
		name, ok := form.AtomAt(1)
		if !ok {
			return "", nil, line, fmt.Errorf("malformed tclass form: missing name")
		}
		paramsList, ok := form.ListAt(2)
		if !ok {
			return "", nil, line, fmt.Errorf("malformed tclass form: missing template parameter list")
		}
		params := make([]string, 0, paramsList.Len())
		for i := 0; i < paramsList.Len(); i++ {
			p, ok := paramsList.AtomAt(i)
			if !ok {
				return "", nil, line, fmt.Errorf("malformed tclass form: template parameter must be an identifier")
			}
			params = append(params, p)
		}
		return name, params, line, nil
	default:
		return "", nil, line, fmt.Errorf("unknown top-level form %q", head)
	}
}

// define resolves the superclass link and reads field/method
// declarations for the class or tclass form.
func define(r *runtime.Registry, rc *rawClass, form *ast.List) error {
	head := form.Head()
	cd := rc.def

	var bodyStart int
	switch head {
	case "class":
		bodyStart = 2
		if s, ok := form.AtomAt(2); ok && s == "inherits" {
			superName, ok := form.AtomAt(3)
			if !ok {
				return herrors.At(herrors.Syntax, form.Line(), "malformed inherits clause in class %q", cd.Name)
			}
			super, ok := r.Lookup(superName)
			if !ok {
				return herrors.At(herrors.Type, form.Line(), herrors.MsgUnknownSuperclass, superName, cd.Name)
			}
			cd.Super = super
			bodyStart = 4
		}
	case "tclass":
		bodyStart = 3
	default:
		return herrors.At(herrors.Syntax, form.Line(), "unknown top-level form %q", head)
	}

	for i := bodyStart; i < form.Len(); i++ {
		bodyForm, ok := form.ListAt(i)
		if !ok {
			return herrors.At(herrors.Syntax, form.Line(), "malformed body entry in class %q", cd.Name)
		}
		switch bodyForm.Head() {
		case "field":
			if err := defineField(r, rc, bodyForm); err != nil {
				return err
			}
		case "method":
			if err := defineMethod(r, rc, bodyForm); err != nil {
				return err
			}
		default:
			return herrors.At(herrors.Syntax, bodyForm.Line(), "unknown class member form %q", bodyForm.Head())
		}
	}
	return nil
}

// defineField implements spec.md §4.1's `(field TYPE NAME INIT?)`.
func defineField(r *runtime.Registry, rc *rawClass, form *ast.List) error {
	cd := rc.def
	line := form.Line()
	typeSpelling, ok := form.AtomAt(1)
	if !ok {
		return herrors.At(herrors.Syntax, line, "malformed field declaration")
	}
	fieldName, ok := form.AtomAt(2)
	if !ok {
		return herrors.At(herrors.Syntax, line, "malformed field declaration")
	}
	for _, f := range cd.Fields {
		if f.Name == fieldName {
			return herrors.At(herrors.Name, line, herrors.MsgDuplicateField, fieldName, cd.Name)
		}
	}

	declared, err := resolveTypeSpelling(r, typeSpelling, rc.templateParams)
	if err != nil {
		return herrors.At(herrors.Type, line, "%s", err)
	}

	fd := &runtime.FieldDecl{Name: fieldName, Type: declared}
	init := form.At(3)

	switch {
	case init == nil:
		// no initializer: default value computed at instantiation time
	case declared.Kind == types.KindClass && isTemplateParam(declared.ClassName, rc.templateParams):
		// Deferred: cannot type-check a literal against a placeholder
		// type until specialization substitutes a concrete type in
		// (spec.md §4.1's staging form).
		cd.DeferredInits[fieldName] = init
	default:
		val, err := ParseLiteral(init)
		if err != nil {
			return herrors.At(herrors.Type, line, "%s", err)
		}
		if !runtime.IsAssignable(val, declared) {
			return herrors.At(herrors.Type, line, herrors.MsgBadInitializerType, fieldName, declared.String())
		}
		fd.Init = val
	}

	cd.Fields = append(cd.Fields, fd)
	return nil
}

// defineMethod implements spec.md §4.1's
// `(method RET NAME ((T1 P1) …) BODY)`.
func defineMethod(r *runtime.Registry, rc *rawClass, form *ast.List) error {
	cd := rc.def
	line := form.Line()
	retSpelling, ok := form.AtomAt(1)
	if !ok {
		return herrors.At(herrors.Syntax, line, "malformed method declaration")
	}
	methodName, ok := form.AtomAt(2)
	if !ok {
		return herrors.At(herrors.Syntax, line, "malformed method declaration")
	}
	paramsList, ok := form.ListAt(3)
	if !ok {
		return herrors.At(herrors.Syntax, line, "malformed method declaration: missing parameter list")
	}
	body := form.At(4)
	if body == nil {
		return herrors.At(herrors.Syntax, line, "malformed method declaration: missing body")
	}

	retType, err := resolveTypeSpelling(r, retSpelling, rc.templateParams)
	if err != nil {
		return herrors.At(herrors.Type, line, "%s", err)
	}

	params := make([]runtime.Param, 0, paramsList.Len())
	seen := make(map[string]bool, paramsList.Len())
	for i := 0; i < paramsList.Len(); i++ {
		pair, ok := paramsList.ListAt(i)
		if !ok || pair.Len() != 2 {
			return herrors.At(herrors.Syntax, line, "malformed parameter in method %q", methodName)
		}
		pTypeSpelling, _ := pair.AtomAt(0)
		pName, _ := pair.AtomAt(1)
		if seen[pName] {
			return herrors.At(herrors.Name, line, herrors.MsgDuplicateParam, pName, methodName)
		}
		seen[pName] = true
		pType, err := resolveTypeSpelling(r, pTypeSpelling, rc.templateParams)
		if err != nil {
			return herrors.At(herrors.Type, line, "%s", err)
		}
		params = append(params, runtime.Param{Type: pType, Name: pName})
	}

	sig := paramSignature(params)
	for _, existing := range cd.Methods[methodName] {
		if runtime.SignatureEqual(paramSignature(existing.Params), sig) {
			return herrors.At(herrors.Name, line, herrors.MsgDuplicateOverload, methodName, cd.Name)
		}
	}

	cd.Methods[methodName] = append(cd.Methods[methodName], &runtime.MethodDecl{
		Name:       methodName,
		ReturnType: retType,
		Params:     params,
		Body:       body,
	})
	return nil
}

func paramSignature(params []runtime.Param) runtime.Signature {
	sig := make(runtime.Signature, len(params))
	for i, p := range params {
		sig[i] = p.Type
	}
	return sig
}

func isTemplateParam(name string, params []string) bool {
	for _, p := range params {
		if p == name {
			return true
		}
	}
	return false
}
