// Package registry supplies the two function collaborators spec.md §4.F
// calls out as external to the machine itself: a builtin library (function
// definitions built directly as expression trees) and a standard library
// (function definitions given as surface-syntax source, parsed on first use).
// Both are consulted by package cek's Resolver during T1 and T6, and both
// are walked by package driver when it builds the global environment.
package registry

import (
	"fmt"

	"t73f.de/r/zero/set"

	"lambdasx/expr"
)

// BuiltinEntry names a function whose definition is constructed directly as
// an expression tree, with no surface syntax involved.
type BuiltinEntry struct {
	Name   string
	Expand func() *expr.Expr
}

// StandardEntry names a function whose definition is given as surface-syntax
// source text, parsed lazily by whichever caller needs the expression (the
// original C evaluator re-parses the source on every lookup; this
// implementation parses once and reuses the tree via Expr.Copy, since the
// parsed form has no side effects worth repeating).
type StandardEntry struct {
	Name   string
	Source string
}

// Parse is supplied by the caller of New (cmd/lambdasx passes parser.Parse),
// so that registry does not depend on the concrete surface-syntax grammar in
// package parser.
type Parse func(source string) (*expr.Expr, error)

// Registry is the concrete function library handed to package driver. It
// implements cek.Resolver.
type Registry struct {
	builtins      map[string]*BuiltinEntry
	builtinOrder  []string
	standards     map[string]*StandardEntry
	standardOrder []string
	parse         Parse
	cache         map[string]*expr.Expr
}

// New builds a registry from the builtin and standard-function tables,
// rejecting duplicate names the way sxbuiltins/let.go rejects duplicate
// binding symbols (t73f.de/r/zero/set.New(...).Length() against the slice
// length).
func New(builtins []BuiltinEntry, standards []StandardEntry, parse Parse) (*Registry, error) {
	names := make([]string, 0, len(builtins)+len(standards))
	for _, b := range builtins {
		names = append(names, b.Name)
	}
	for _, s := range standards {
		names = append(names, s.Name)
	}
	if set.New(names...).Length() != len(names) {
		return nil, fmt.Errorf("registry: duplicate function name among builtins/standards")
	}

	r := &Registry{
		builtins:  make(map[string]*BuiltinEntry, len(builtins)),
		standards: make(map[string]*StandardEntry, len(standards)),
		parse:     parse,
		cache:     make(map[string]*expr.Expr),
	}
	for i := range builtins {
		r.builtins[builtins[i].Name] = &builtins[i]
		r.builtinOrder = append(r.builtinOrder, builtins[i].Name)
	}
	for i := range standards {
		r.standards[standards[i].Name] = &standards[i]
		r.standardOrder = append(r.standardOrder, standards[i].Name)
	}
	return r, nil
}

// ResolveFunction implements cek.Resolver: it looks name up in the builtin
// table first, then the standard-library table, returning a fresh copy of
// the expression tree each time (the machine takes ownership of whatever it
// is handed, so a shared tree must never be returned twice).
func (r *Registry) ResolveFunction(name string) (*expr.Expr, bool) {
	if b, ok := r.builtins[name]; ok {
		return b.Expand().Copy(), true
	}
	if _, ok := r.standards[name]; ok {
		tree, err := r.standardTree(name)
		if err != nil {
			return nil, false
		}
		return tree.Copy(), true
	}
	return nil, false
}

// Names lists every registered function name, builtins first in table
// order followed by standard functions in table order. Used by package
// driver to seed the global environment (spec.md §4.G, step 1).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builtinOrder)+len(r.standardOrder))
	names = append(names, r.builtinOrder...)
	names = append(names, r.standardOrder...)
	return names
}

func (r *Registry) standardTree(name string) (*expr.Expr, error) {
	if tree, ok := r.cache[name]; ok {
		return tree, nil
	}
	entry := r.standards[name]
	tree, err := r.parse(entry.Source)
	if err != nil {
		return nil, fmt.Errorf("registry: parsing standard function %q: %w", name, err)
	}
	r.cache[name] = tree
	return tree, nil
}
