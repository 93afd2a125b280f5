package parser

// Form is a juxtaposed sequence of one or more atoms: a single atom is
// itself a value, two or more fold left-associatively into applications
// (f a b = (f a) b), matching the surface syntax original_source/main.c
// fed through yyparse.
type Form struct {
	Atoms []*Atom `@@ { @@ }`
}

// Atom is a single syntactic unit: an integer constant, an identifier, or a
// parenthesised group.
type Atom struct {
	Int   *string `@Integer`
	Ident *string `| @Ident`
	Group *Group  `| "(" @@ ")"`
}

// Group disambiguates the three parenthesised forms by leading token: the
// "lambda" keyword, an arithmetic operator, or (falling through) a plain
// sub-form.
type Group struct {
	Lambda *Lambda `  @@`
	Prim   *Prim   `| @@`
	Form   *Form   `| @@`
}

// Lambda is "(lambda p body)": exactly one parameter followed by the body
// form, so "(lambda x f (f x))" binds x over the application "f (f x)".
type Lambda struct {
	Params []string `"lambda" @Ident`
	Body   *Form    `@@`
}

// Prim is "(op left right)", the prefix surface form for the four
// arithmetic primitives (spec.md §4.A, Prim).
type Prim struct {
	Op    string `@("+" | "-" | "*" | "/")`
	Left  *Form  `@@`
	Right *Form  `@@`
}
