// Package expr implements the expression tree of the untyped lambda calculus
// extended with integer constants and binary primitives. Evaluation lives in
// package cek; this package only knows about shapes and syntactic operations
// on them (copying, free variables, substitution).
package expr

import (
	"fmt"
	"io"
	"strings"
)

// Kind identifies the shape of an Expr node.
type Kind int

const (
	// Id is a bare identifier reference.
	Id Kind = iota
	// Const is an integer literal.
	Const
	// Abs is a single-parameter abstraction: (lambda param body).
	Abs
	// App is a function application: (fun arg).
	App
	// Prim is a binary primitive operation on the left and right operand.
	Prim
)

func (k Kind) String() string {
	switch k {
	case Id:
		return "Id"
	case Const:
		return "Const"
	case Abs:
		return "Abs"
	case App:
		return "App"
	case Prim:
		return "Prim"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expr is a node of the expression tree. Every subtree is conceptually
// exclusively owned by its parent; Copy produces an independent deep copy
// and no operation in this package mutates a shared subtree in place.
//
// The zero value is not a valid Expr; use the constructors below.
type Expr struct {
	kind Kind

	// Name holds the identifier for Id and the bound parameter name for Abs.
	Name string

	// Value holds the literal for Const.
	Value int64

	// Op holds the operator name for Prim ("+", "-", "*", "/").
	Op string

	// Left/Right hold children: Abs uses Left as body (Name is the param,
	// Right unused); App uses Left as fun, Right as arg; Prim uses both.
	Left  *Expr
	Right *Expr
}

// Kind returns the node's shape.
func (e *Expr) Kind() Kind { return e.kind }

// NewId constructs an identifier reference.
func NewId(name string) *Expr { return &Expr{kind: Id, Name: name} }

// NewConst constructs an integer literal.
func NewConst(v int64) *Expr { return &Expr{kind: Const, Value: v} }

// NewAbs constructs a single-parameter abstraction.
func NewAbs(param string, body *Expr) *Expr {
	return &Expr{kind: Abs, Name: param, Left: body}
}

// NewApp constructs an application of fun to arg.
func NewApp(fun, arg *Expr) *Expr {
	return &Expr{kind: App, Left: fun, Right: arg}
}

// NewPrim constructs a binary primitive operation.
func NewPrim(op string, left, right *Expr) *Expr {
	return &Expr{kind: Prim, Op: op, Left: left, Right: right}
}

// IsValue reports whether e is in the machine's notion of normal form:
// a constant, an abstraction, or a (necessarily free) identifier.
func (e *Expr) IsValue() bool {
	switch e.kind {
	case Const, Abs, Id:
		return true
	default:
		return false
	}
}

// Copy returns a deep, independent duplicate of e. Names are copied, not
// aliased; a nil e copies to nil, tolerating a partially built tree.
func (e *Expr) Copy() *Expr {
	if e == nil {
		return nil
	}
	cp := &Expr{kind: e.kind, Name: e.Name, Value: e.Value, Op: e.Op}
	cp.Left = e.Left.Copy()
	cp.Right = e.Right.Copy()
	return cp
}

// Print writes the Go-internal debug form of e, used for tracing only; the
// user-facing surface form lives in package printer.
func (e *Expr) Print(w io.Writer) (int, error) {
	if e == nil {
		return io.WriteString(w, "<nil>")
	}
	switch e.kind {
	case Id:
		return io.WriteString(w, e.Name)
	case Const:
		return fmt.Fprintf(w, "%d", e.Value)
	case Abs:
		return fmt.Fprintf(w, "(lambda %s %v)", e.Name, reprWriter(e.Left))
	case App:
		return fmt.Fprintf(w, "(%v %v)", reprWriter(e.Left), reprWriter(e.Right))
	case Prim:
		return fmt.Fprintf(w, "(%s %v %v)", e.Op, reprWriter(e.Left), reprWriter(e.Right))
	default:
		return fmt.Fprintf(w, "<bad kind %v>", e.kind)
	}
}

func reprWriter(e *Expr) string {
	var sb strings.Builder
	_, _ = e.Print(&sb)
	return sb.String()
}

// String implements fmt.Stringer for debugging and error messages.
func (e *Expr) String() string { return reprWriter(e) }
