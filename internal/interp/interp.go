package interp

import (
	"fmt"

	"github.com/cwbudde/classlisp/internal/classdef"
	"github.com/cwbudde/classlisp/internal/herrors"
	"github.com/cwbudde/classlisp/internal/host"
	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

var stringType = types.String

// Interp ties together the class registry, the host adapter, and the
// statement/expression evaluator — the top-level object the CLI
// drives.
type Interp struct {
	Registry *runtime.Registry
	Host     host.Host
}

// New builds an Interp over an already-loaded registry.
func New(r *runtime.Registry, h host.Host) *Interp {
	return &Interp{Registry: r, Host: h}
}

// Run instantiates the `main` class and invokes its parameterless
// `main` method, per spec.md §6's entry-point rule. A fatal
// SYNTAX/NAME/TYPE/FAULT diagnostic is reported through the host
// adapter and returned as an error; an exception that escapes `main`
// uncaught terminates the program per spec.md §7/§8 invariant 5.
func (ip *Interp) Run() error {
	cd, ok := ip.Registry.Lookup("main")
	if !ok {
		e := herrors.New(herrors.Name, herrors.MsgNoMainClass, "main")
		ip.Host.ReportError(*e)
		return e
	}
	if cd.IsGeneric() {
		e := herrors.New(herrors.Type, "class %q must not be generic to serve as the entry point", "main")
		ip.Host.ReportError(*e)
		return e
	}

	obj, err := classdef.Instantiate(ip.Registry, "main", 0)
	if err != nil {
		ip.reportFatal(err)
		return err
	}

	_, flow, err := ip.Dispatch(obj, "main", nil, 0)
	if err != nil {
		ip.reportFatal(err)
		return err
	}
	if flow.IsExceptional() {
		err := fmt.Errorf("uncaught exception: %s", *flow.Exception)
		ip.Host.ReportError(herrors.Error{Category: herrors.Fault, Message: err.Error()})
		return err
	}
	return nil
}

func (ip *Interp) reportFatal(err error) {
	if he, ok := err.(*herrors.Error); ok {
		ip.Host.ReportError(*he)
		return
	}
	ip.Host.ReportError(herrors.Error{Category: herrors.Fault, Message: err.Error()})
}

// resolveLocalType resolves a `let` binding's declared type against
// the registry, tagging any failure with line for diagnostics.
func (ip *Interp) resolveLocalType(spelling string, line int) (*types.Descriptor, error) {
	d, err := classdef.ResolveType(ip.Registry, spelling)
	if err != nil {
		return nil, herrors.At(herrors.Type, line, "%s", err)
	}
	return d, nil
}
