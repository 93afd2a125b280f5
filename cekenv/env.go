// Package cekenv implements the environment frames used by the CEK machine
// in package cek: a linked chain of single-name bindings with a memoising
// lookup, matching spec.md §4.D.
package cekenv

import (
	"fmt"

	"lambdasx/expr"
)

// Closure pairs an expression with the environment its free variables are
// resolved in. A nil Env marks an already-reduced value (the memoised case):
// closures with a nil Env are never re-evaluated on lookup.
type Closure struct {
	Expr *expr.Expr
	Env  *Env
}

// MakeClosure builds a closure pairing e with env.
func MakeClosure(e *expr.Expr, env *Env) *Closure { return &Closure{Expr: e, Env: env} }

// Env is one frame of the environment chain: a single name bound to a
// closure, with a link to the parent frame. Frames are shared: several
// closures may reference the same chain, and Go's garbage collector keeps a
// frame alive for exactly as long as something still points to it — there is
// no separate reference count or arena to manage, per spec.md §9's own
// recommendation to let an immutable-shape design absorb that bookkeeping.
type Env struct {
	name    string
	closure *Closure
	parent  *Env
}

// Extend returns a new frame binding name to closure, with parent as the
// enclosing environment (nil for the outermost frame).
func Extend(parent *Env, name string, closure *Closure) *Env {
	return &Env{name: name, closure: closure, parent: parent}
}

// Parent returns the enclosing frame, or nil at the root.
func (e *Env) Parent() *Env {
	if e == nil {
		return nil
	}
	return e.parent
}

// Name returns the frame's bound identifier.
func (e *Env) Name() string { return e.name }

// Lookup walks the chain from e outward looking for name. When found, if the
// frame's closure has not yet been reduced (its Env is non-nil) it is forced
// in place: the stored expression is evaluated under its captured
// environment, the frame is updated to hold the resulting value closure, and
// that same closure is returned. This realises lazy, memoised evaluation of
// standard-library definitions (spec.md §4.D) and is idempotent: when force
// returned a nil Env, a second Lookup of the same frame returns the stored
// closure directly; when it returned an environment (an abstraction keeps the
// one it closes over), a second Lookup passes that value to force again, and
// package cek's force returns an already reduced value unchanged.
//
// force performs the actual reduction; it is supplied by package cek to
// avoid an import cycle (cekenv must not depend on the machine that reduces
// expressions).
func Lookup(env *Env, name string, force func(*expr.Expr, *Env) (*expr.Expr, *Env, error)) (*Closure, bool, error) {
	for cur := env; cur != nil; cur = cur.parent {
		if cur.name != name {
			continue
		}
		cl := cur.closure
		if cl.Env == nil {
			return cl, true, nil
		}
		resultExpr, resultEnv, err := force(cl.Expr, cl.Env)
		if err != nil {
			return nil, false, fmt.Errorf("forcing %q: %w", name, err)
		}
		forced := MakeClosure(resultExpr, resultEnv)
		cur.closure = forced
		return forced, true, nil
	}
	return nil, false, nil
}

// String renders the chain of frame names innermost-first, for diagnostics.
func (e *Env) String() string {
	if e == nil {
		return "<root>"
	}
	return fmt.Sprintf("%s->%v", e.name, e.parent)
}
