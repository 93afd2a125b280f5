// Package cek implements the CEK abstract machine of spec.md §4.E: a
// small-step control/environment/continuation state machine performing
// left-to-right, call-by-need-with-memoised-sharing reduction (the
// combination of deferred argument binding, §4.E T4, with memoising lookup,
// §4.D, needed for the Y combinator to terminate — see DESIGN.md).
package cek

import (
	"lambdasx/cekenv"
	"lambdasx/expr"
)

// Resolver looks up a name in the function registries (spec.md §4.F). It is
// consulted by T1 when an identifier is absent from the environment, and by
// T6 when a non-abstraction value appears in operator position.
type Resolver interface {
	ResolveFunction(name string) (*expr.Expr, bool)
}

// State is the machine's control/environment/continuation triple.
type State struct {
	Control *cekenv.Closure
	Kont    *Kont
}

// done reports whether state is terminal: the continuation is empty and the
// control expression is a constant or an abstraction. An identifier is never
// terminal: T1 looks it up even under an empty continuation.
func (s *State) done() bool {
	return s.Kont == nil && s.Control.Expr.IsValue() && s.Control.Expr.Kind() != expr.Id
}

// Run drives the machine from an initial (expr, env) pair to a terminal
// state and returns the resulting closure.
func Run(e *expr.Expr, env *cekenv.Env, resolver Resolver) (*cekenv.Closure, error) {
	state := &State{Control: cekenv.MakeClosure(e, env), Kont: nil}
	for !state.done() {
		next, err := step(state, resolver)
		if err != nil {
			return nil, err
		}
		state = next
	}
	return state.Control, nil
}

// force implements the callback cekenv.Lookup needs to memoise a not-yet
// reduced binding: it runs the machine to completion on (e, env) with a
// fresh, empty continuation.
func force(resolver Resolver) func(*expr.Expr, *cekenv.Env) (*expr.Expr, *cekenv.Env, error) {
	return func(e *expr.Expr, env *cekenv.Env) (*expr.Expr, *cekenv.Env, error) {
		cl, err := Run(e, env, resolver)
		if err != nil {
			return nil, nil, err
		}
		return cl.Expr, cl.Env, nil
	}
}

// step performs exactly one transition (spec.md §4.E, T1–T9).
func step(state *State, resolver Resolver) (*State, error) {
	control := state.Control
	kont := state.Kont
	e := control.Expr

	switch e.Kind() {
	case expr.Id:
		return stepId(control, kont, resolver)

	case expr.App:
		argClosure := cekenv.MakeClosure(e.Right, control.Env)
		newKont := pushArg(argClosure, kont)
		return &State{Control: cekenv.MakeClosure(e.Left, control.Env), Kont: newKont}, nil

	case expr.Prim:
		// Detach the left operand's slot to avoid double ownership of the
		// subtree, matching spec.md §4.E T3.
		primNode := expr.NewPrim(e.Op, nil, e.Right)
		primClosure := cekenv.MakeClosure(primNode, control.Env)
		newKont := pushOpd(primClosure, kont)
		return &State{Control: cekenv.MakeClosure(e.Left, control.Env), Kont: newKont}, nil

	default: // a value: Const or Abs (an Id is handled by stepId above)
		return stepValue(control, kont, resolver)
	}
}

func stepId(control *cekenv.Closure, kont *Kont, resolver Resolver) (*State, error) {
	name := control.Expr.Name
	cl, found, err := cekenv.Lookup(control.Env, name, force(resolver))
	if err != nil {
		return nil, err
	}
	if found {
		return &State{Control: cekenv.MakeClosure(cl.Expr.Copy(), cl.Env), Kont: kont}, nil
	}
	fun, found := resolver.ResolveFunction(name)
	if !found {
		return nil, UnboundIdentifier{Name: name}
	}
	return &State{Control: cekenv.MakeClosure(fun, control.Env), Kont: kont}, nil
}

// stepValue handles T4–T9: the control expression is a value (Const, Abs,
// or a free Id) and we dispatch on the top continuation frame.
func stepValue(control *cekenv.Closure, kont *Kont, resolver Resolver) (*State, error) {
	if kont == nil {
		return nil, MalformedContinuation{Detail: "stepValue called with empty continuation"}
	}

	switch kont.tag {
	case argTag:
		return stepArg(control, kont, resolver)
	case opdTag:
		return stepOpd(control, kont), nil
	case oprTag:
		return stepOpr(control, kont)
	default:
		return nil, MalformedContinuation{Detail: "unknown continuation tag"}
	}
}

// T4/T5/T6: the function side of an application has reduced to a value.
func stepArg(control *cekenv.Closure, kont *Kont, resolver Resolver) (*State, error) {
	fn := control.Expr
	switch fn.Kind() {
	case expr.Abs:
		// T4: bind the parameter to the (still unevaluated) argument
		// closure and continue with the body.
		argClosure := kont.closure
		frame := cekenv.Extend(control.Env, fn.Name, argClosure)
		return &State{Control: cekenv.MakeClosure(fn.Left, frame), Kont: kont.next}, nil
	case expr.Const:
		// T5
		return nil, ApplyConstant{}
	case expr.Id:
		// T6: the value is a free identifier; it might still be a
		// registry function materialised lazily.
		name := fn.Name
		funExpr, found := resolver.ResolveFunction(name)
		if !found {
			return nil, UndefinedFunction{Name: name}
		}
		return &State{Control: cekenv.MakeClosure(funExpr, control.Env), Kont: kont}, nil
	default:
		return nil, MalformedContinuation{Detail: "unexpected value kind under Arg frame"}
	}
}

// T7: the left operand of a primitive reduced to a value; re-tag the frame
// as Opr and shift focus to the right operand.
func stepOpd(control *cekenv.Closure, kont *Kont) *State {
	pc := kont.closure
	leftVal := control.Expr

	// Swap environments: pc's environment (captured for the right operand)
	// becomes the new control environment; the left value's environment is
	// stashed in pc alongside it.
	pc.Env, control.Env = control.Env, pc.Env

	pc.Expr.Left = leftVal
	rightOperand := pc.Expr.Right
	pc.Expr.Right = nil // detach, matching T3's detach discipline

	newKont := &Kont{tag: oprTag, closure: pc, next: kont.next}
	return &State{Control: cekenv.MakeClosure(rightOperand, control.Env), Kont: newKont}
}

// T8/T9: the right operand reduced to a value; fire the primitive if both
// operands are constants.
func stepOpr(control *cekenv.Closure, kont *Kont) (*State, error) {
	pc := kont.closure
	rightVal := control.Expr

	if rightVal.Kind() != expr.Const {
		return nil, PrimitiveNonConstant{Op: pc.Expr.Op}
	}
	if pc.Expr.Left.Kind() != expr.Const {
		return nil, PrimitiveNonConstant{Op: pc.Expr.Op}
	}

	result, err := evalPrim(pc.Expr.Op, pc.Expr.Left.Value, rightVal.Value)
	if err != nil {
		return nil, err
	}
	return &State{Control: cekenv.MakeClosure(expr.NewConst(result), nil), Kont: kont.next}, nil
}

// evalPrim computes the named binary primitive over two constants.
func evalPrim(op string, left, right int64) (int64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, DivisionByZero{}
		}
		return left / right, nil
	default:
		return 0, UnknownPrimitive{Op: op}
	}
}
