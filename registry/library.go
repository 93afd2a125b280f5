package registry

import "lambdasx/expr"

// Default returns the builtin and standard-library tables this evaluator
// ships with. The builtin table is not present in the retrieved original
// source (builtin.c was not part of the kept file set; see DESIGN.md) so its
// contents are the conventional Church encodings spec.md's Testable
// Properties section exercises directly: "true"/"false" booleans and the
// zero/succ numerals used to state the Church-boolean round trip property.
// The standard-library table is the literal four entries of stdlib.c,
// translated from the original's concrete surface syntax into this
// evaluator's own grammar.
func Default() ([]BuiltinEntry, []StandardEntry) {
	builtins := []BuiltinEntry{
		{Name: "true", Expand: func() *expr.Expr {
			return expr.NewAbs("x", expr.NewAbs("y", expr.NewId("x")))
		}},
		{Name: "false", Expand: func() *expr.Expr {
			return expr.NewAbs("x", expr.NewAbs("y", expr.NewId("y")))
		}},
		{Name: "zero", Expand: func() *expr.Expr {
			return expr.NewAbs("f", expr.NewAbs("x", expr.NewId("x")))
		}},
		{Name: "succ", Expand: func() *expr.Expr {
			// lambda n (lambda f (lambda x f (n f x)))
			nfx := expr.NewApp(expr.NewApp(expr.NewId("n"), expr.NewId("f")), expr.NewId("x"))
			return expr.NewAbs("n", expr.NewAbs("f", expr.NewAbs("x", expr.NewApp(expr.NewId("f"), nfx))))
		}},
	}

	// Source texts are stdlib.c's four entries verbatim: this evaluator's
	// surface grammar (package parser) accepts the same juxtaposition
	// application and unparenthesised "lambda x body" the original used.
	standards := []StandardEntry{
		{Name: "Y", Source: "(lambda f (lambda a (lambda x f (lambda g (x x) g)) (lambda x f (lambda g (x x) g)) a))"},
		{Name: "not", Source: "(lambda p (lambda x (lambda y p y x)))"},
		{Name: "or", Source: "(lambda p (lambda q p p q))"},
		{Name: "and", Source: "(lambda p (lambda q p q p))"},
	}

	return builtins, standards
}
