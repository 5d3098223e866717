package classdef

import (
	"fmt"
	"strings"

	"github.com/cwbudde/classlisp/internal/runtime"
	"github.com/cwbudde/classlisp/internal/types"
)

// ResolveType resolves a bare declared-type spelling against the
// registry with no surrounding template-parameter context — the form
// every caller outside the loader itself needs (e.g. a `let` binding
// inside a method body, where any template parameters have already
// been textually substituted away by specialization).
func ResolveType(r *runtime.Registry, spelling string) (*types.Descriptor, error) {
	return resolveTypeSpelling(r, spelling, nil)
}

// resolveTypeSpelling parses a declared-type surface spelling — a bare
// identifier (int/bool/string/void/ClassName) or the generic
// "Base@Arg1@Arg2@…" syntax of spec.md §6 — into a *types.Descriptor.
//
// templateParams names the surrounding class's own template
// parameters (if any): an identifier matching one of them resolves to
// a placeholder class(NAME) descriptor rather than a registry lookup,
// per spec.md §4.1's "staging form until template specialization".
//
// Nested generic arguments are supported by recursively consuming as
// many "@"-delimited tokens as the referenced generic class's own
// declared arity requires, since arity is always known up front after
// the discovery pass.
func resolveTypeSpelling(r *runtime.Registry, spelling string, templateParams []string) (*types.Descriptor, error) {
	tokens := strings.Split(spelling, "@")
	d, consumed, err := consumeTypeTokens(r, tokens, 0, templateParams)
	if err != nil {
		return nil, err
	}
	if consumed != len(tokens) {
		return nil, fmt.Errorf("malformed generic type spelling %q", spelling)
	}
	return d, nil
}

func consumeTypeTokens(r *runtime.Registry, tokens []string, idx int, templateParams []string) (*types.Descriptor, int, error) {
	if idx >= len(tokens) {
		return nil, idx, fmt.Errorf("incomplete generic type spelling %q", strings.Join(tokens, "@"))
	}
	name := tokens[idx]
	idx++

	switch name {
	case "int":
		return types.Int, idx, nil
	case "bool":
		return types.Bool, idx, nil
	case "string":
		return types.String, idx, nil
	case "void":
		return types.Void, idx, nil
	}

	for _, p := range templateParams {
		if p == name {
			return types.Class(name), idx, nil
		}
	}

	cd, ok := r.Lookup(name)
	if !ok {
		return nil, idx, fmt.Errorf("unknown type %q", name)
	}
	if !cd.IsGeneric() {
		return types.Class(name), idx, nil
	}

	n := len(cd.TemplateParams)
	if idx+n > len(tokens) {
		return nil, idx, fmt.Errorf("generic class %q expects %d type argument(s), got %d", name, n, len(tokens)-idx)
	}
	args := make([]*types.Descriptor, n)
	for i := 0; i < n; i++ {
		a, next, err := consumeTypeTokens(r, tokens, idx, templateParams)
		if err != nil {
			return nil, idx, err
		}
		args[i] = a
		idx = next
	}
	return types.TClass(name, args), idx, nil
}
