package expr

// VarSet is an insertion-ordered set of identifier names. Iteration order is
// deterministic so that diagnostics (e.g. the order free variables are
// resolved in, see package driver's resolveFreeVariables) do not depend on
// map order.
//
// A generic hash set such as the teacher's own t73f.de/r/zero/set (used in
// sxbuiltins/let.go) would lose that ordering guarantee, so this set is
// purpose-built rather than borrowed; see DESIGN.md.
type VarSet struct {
	order []string
	index map[string]int
}

// NewVarSet returns an empty set.
func NewVarSet() *VarSet {
	return &VarSet{index: make(map[string]int)}
}

// Add inserts name if not already present.
func (vs *VarSet) Add(name string) {
	if _, found := vs.index[name]; found {
		return
	}
	vs.index[name] = len(vs.order)
	vs.order = append(vs.order, name)
}

// Remove deletes name if present, keeping remaining elements in order.
func (vs *VarSet) Remove(name string) {
	pos, found := vs.index[name]
	if !found {
		return
	}
	vs.order = append(vs.order[:pos], vs.order[pos+1:]...)
	delete(vs.index, name)
	for i := pos; i < len(vs.order); i++ {
		vs.index[vs.order[i]] = i
	}
}

// Contains reports whether name is a member.
func (vs *VarSet) Contains(name string) bool {
	_, found := vs.index[name]
	return found
}

// Union returns a new set containing every name of vs and other, ordered
// first by vs's own order, then other's.
func (vs *VarSet) Union(other *VarSet) *VarSet {
	result := NewVarSet()
	for _, n := range vs.order {
		result.Add(n)
	}
	for _, n := range other.order {
		result.Add(n)
	}
	return result
}

// Names returns the members in insertion order. The caller must not mutate
// the returned slice.
func (vs *VarSet) Names() []string { return vs.order }

// Len returns the number of members.
func (vs *VarSet) Len() int { return len(vs.order) }

// FreeVars computes FV(e) per spec.md §4.B:
//
//	FV(Id x)        = {x}
//	FV(Const _)     = ∅
//	FV(Abs x b)     = FV(b) \ {x}
//	FV(App f a)     = FV(f) ∪ FV(a)
//	FV(Prim _ l r)  = FV(l) ∪ FV(r)
func FreeVars(e *Expr) *VarSet {
	result := NewVarSet()
	if e == nil {
		return result
	}
	switch e.kind {
	case Id:
		result.Add(e.Name)
	case Const:
		// no free variables
	case Abs:
		result = FreeVars(e.Left)
		result.Remove(e.Name)
	case App, Prim:
		result = FreeVars(e.Left).Union(FreeVars(e.Right))
	}
	return result
}
