package parser

import "github.com/alecthomas/participle/v2/lexer"

// tokenLexer tokenises the surface syntax: parenthesised juxtaposition
// application, "lambda" binders, integer constants and the four arithmetic
// operators. Styled after kanso-lang's stateful lexer.
var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `[+\-*/]`},
	{Name: "Punctuation", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
