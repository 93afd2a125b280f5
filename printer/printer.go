// Package printer renders an expr.Expr in the surface "pretty form" spec.md
// §6 describes, the external interface a REPL shows the user. It is
// grounded directly on original_source/util.c's printExpression: a constant
// or identifier prints as itself, an abstraction wraps its body in
// "(lambda name ...)", and an application prints its two sides separated by
// a space with no enclosing parentheses. Integer constants and primitive
// operations, absent from the original grammar, extend the same style.
package printer

import (
	"fmt"
	"io"
	"strings"

	"lambdasx/expr"
)

// Print writes e's pretty form to w.
func Print(w io.Writer, e *expr.Expr) (int, error) {
	if e == nil {
		return 0, nil
	}
	switch e.Kind() {
	case expr.Id:
		return io.WriteString(w, e.Name)
	case expr.Const:
		return fmt.Fprintf(w, "%d", e.Value)
	case expr.Abs:
		n, err := fmt.Fprintf(w, "(lambda %s ", e.Name)
		if err != nil {
			return n, err
		}
		m, err := Print(w, e.Left)
		n += m
		if err != nil {
			return n, err
		}
		m, err = io.WriteString(w, ")")
		return n + m, err
	case expr.App:
		n, err := Print(w, e.Left)
		if err != nil {
			return n, err
		}
		m, err := io.WriteString(w, " ")
		n += m
		if err != nil {
			return n, err
		}
		m, err = Print(w, e.Right)
		return n + m, err
	case expr.Prim:
		n, err := fmt.Fprintf(w, "(%s ", e.Op)
		if err != nil {
			return n, err
		}
		m, err := Print(w, e.Left)
		n += m
		if err != nil {
			return n, err
		}
		m, err = io.WriteString(w, " ")
		n += m
		if err != nil {
			return n, err
		}
		m, err = Print(w, e.Right)
		n += m
		if err != nil {
			return n, err
		}
		m, err = io.WriteString(w, ")")
		return n + m, err
	default:
		return fmt.Fprintf(w, "<unknown kind %v>", e.Kind())
	}
}

// String renders e's pretty form into a string.
func String(e *expr.Expr) string {
	var sb strings.Builder
	_, _ = Print(&sb, e)
	return sb.String()
}
