package expr

// Alpha picks a fresh name for the bound parameter of abs (which must be an
// Abs node) and returns the renamed abstraction. The fresh-name policy
// matches spec.md §4.C: append underscores to the current name until it is
// both different from the original and absent from the body's free
// variables, giving deterministic, reader-friendly names (x, x_, x__, ...).
func Alpha(abs *Expr) *Expr {
	fv := FreeVars(abs.Left)
	name := abs.Name
	for {
		name += "_"
		if name != abs.Name && !fv.Contains(name) {
			break
		}
	}
	fresh := NewId(name)
	return NewAbs(name, Subst(abs.Left, abs.Name, fresh))
}

// Subst returns e[x := v], a capture-avoiding substitution of v for free
// occurrences of x in e. It preserves the identity of e's shape when no
// substitution occurs (returns e itself, not a copy) and deep-copies v at
// every occurrence it replaces, per spec.md §4.C.
func Subst(e *Expr, x string, v *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.kind {
	case Id:
		if e.Name == x {
			return v.Copy()
		}
		return e
	case Const:
		return e
	case Abs:
		if e.Name == x || !FreeVars(e.Left).Contains(x) {
			// x is shadowed by this abstraction's parameter, or does not
			// occur free in its body: unchanged.
			return e
		}
		cur := e
		for FreeVars(v).Contains(cur.Name) {
			cur = Alpha(cur)
		}
		return NewAbs(cur.Name, Subst(cur.Left, x, v))
	case App:
		left, right := Subst(e.Left, x, v), Subst(e.Right, x, v)
		if left == e.Left && right == e.Right {
			return e
		}
		return NewApp(left, right)
	case Prim:
		left, right := Subst(e.Left, x, v), Subst(e.Right, x, v)
		if left == e.Left && right == e.Right {
			return e
		}
		return NewPrim(e.Op, left, right)
	default:
		return e
	}
}
