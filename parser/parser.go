// Package parser turns surface syntax into an expr.Expr tree (spec.md's
// External Interfaces §5.2, treated there as an external collaborator). It
// is grounded on kanso-lang's participle-based grammar package: a
// struct-tag grammar built once with participle.Build and reused across
// calls.
package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"lambdasx/expr"
)

var build = participle.MustBuild[Form](
	participle.Lexer(tokenLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse converts one line of surface syntax into an expression tree.
func Parse(source string) (*expr.Expr, error) {
	form, err := build.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return toExpr(form)
}
