package cek

import "lambdasx/cekenv"

// kontTag identifies which of the three continuation frame shapes a Kont
// node holds (spec.md §4, Continuation).
type kontTag int

const (
	// argTag: evaluating the function side of an application; Closure
	// captures the unevaluated argument with its environment.
	argTag kontTag = iota
	// opdTag: evaluating the left operand of a primitive; Closure holds the
	// full Prim node (left operand still attached) and the environment for
	// the right operand.
	opdTag
	// oprTag: the left operand is now a value; evaluating the right.
	oprTag
)

// Kont is one frame of the continuation stack. The terminal continuation is
// a nil *Kont.
type Kont struct {
	tag     kontTag
	closure *cekenv.Closure
	next    *Kont
}

func pushArg(argClosure *cekenv.Closure, next *Kont) *Kont {
	return &Kont{tag: argTag, closure: argClosure, next: next}
}

func pushOpd(primClosure *cekenv.Closure, next *Kont) *Kont {
	return &Kont{tag: opdTag, closure: primClosure, next: next}
}
