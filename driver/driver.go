// Package driver wires package cek's machine to package registry's function
// libraries, implementing spec.md §4.G's top-level evaluate() algorithm:
// original_source/eval.c's evaluate()/buildGlobalEnvironment()/
// resolveFreeVariables() translated into this machine's Go types.
package driver

import (
	"fmt"

	"lambdasx/cek"
	"lambdasx/cekenv"
	"lambdasx/expr"
	"lambdasx/registry"
)

// Evaluator bundles a function registry with the machine it drives.
type Evaluator struct {
	registry *registry.Registry
}

// New builds an Evaluator over reg.
func New(reg *registry.Registry) *Evaluator {
	return &Evaluator{registry: reg}
}

// Evaluate runs e to a normal form and resolves any free variables that
// remain, following spec.md §4.G's five steps: build the global
// environment, construct the initial state, run the machine to
// termination, resolve leftover free variables, and return the result.
func (ev *Evaluator) Evaluate(e *expr.Expr) (*expr.Expr, error) {
	globalEnv := ev.buildGlobalEnvironment()

	result, err := cek.Run(e, globalEnv, ev.registry)
	if err != nil {
		return nil, err
	}

	resolved, err := ev.resolveFreeVariables(result.Expr, result.Env)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// buildGlobalEnvironment seeds one environment frame per registered
// function, each holding an already-reduced (nil-Env) closure so
// cekenv.Lookup never re-runs the machine over a builtin or standard
// definition — it returns the stored value directly.
func (ev *Evaluator) buildGlobalEnvironment() *cekenv.Env {
	var env *cekenv.Env
	for _, name := range ev.registry.Names() {
		fn, ok := ev.registry.ResolveFunction(name)
		if !ok {
			continue
		}
		env = cekenv.Extend(env, name, cekenv.MakeClosure(fn, nil))
	}
	return env
}

// resolveFreeVariables substitutes every free variable of e that resolves
// to an environment binding, recursively resolving that binding's own free
// variables first. A name the registry itself answers for is left alone: a
// builtin or standard function stays an identifier in the pretty-printed
// result rather than being inlined as its full definition.
func (ev *Evaluator) resolveFreeVariables(e *expr.Expr, env *cekenv.Env) (*expr.Expr, error) {
	fv := expr.FreeVars(e)
	result := e
	for _, name := range fv.Names() {
		if _, ok := ev.registry.ResolveFunction(name); ok {
			continue
		}
		cl, found, err := cekenv.Lookup(env, name, ev.force)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, cek.UndefinedVariable{Name: name}
		}
		resolvedValue, err := ev.resolveFreeVariables(cl.Expr, cl.Env)
		if err != nil {
			return nil, err
		}
		result = expr.Subst(result, name, resolvedValue)
	}
	return result, nil
}

// force drives the machine to completion on a binding resolveFreeVariables
// finds still unreduced: the main run only forces a binding when something
// actually looks it up mid-reduction, so a free variable captured in the
// final value's environment but never dereferenced reaches here unforced.
func (ev *Evaluator) force(e *expr.Expr, env *cekenv.Env) (*expr.Expr, *cekenv.Env, error) {
	cl, err := cek.Run(e, env, ev.registry)
	if err != nil {
		return nil, nil, fmt.Errorf("driver: forcing %v: %w", e, err)
	}
	return cl.Expr, cl.Env, nil
}
