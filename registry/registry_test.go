package registry_test

import (
	"testing"

	"lambdasx/expr"
	"lambdasx/registry"
)

func constParse(tree *expr.Expr) registry.Parse {
	return func(string) (*expr.Expr, error) { return tree, nil }
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	builtins := []registry.BuiltinEntry{
		{Name: "zero", Expand: func() *expr.Expr { return expr.NewConst(0) }},
	}
	standards := []registry.StandardEntry{
		{Name: "zero", Source: "0"},
	}
	_, err := registry.New(builtins, standards, constParse(expr.NewConst(0)))
	if err == nil {
		t.Fatal("registry.New with a name shared between builtins and standards should fail")
	}
}

func TestNewRejectsDuplicateNamesWithinBuiltins(t *testing.T) {
	builtins := []registry.BuiltinEntry{
		{Name: "dup", Expand: func() *expr.Expr { return expr.NewConst(1) }},
		{Name: "dup", Expand: func() *expr.Expr { return expr.NewConst(2) }},
	}
	_, err := registry.New(builtins, nil, constParse(expr.NewConst(0)))
	if err == nil {
		t.Fatal("registry.New with a duplicate builtin name should fail")
	}
}

func TestResolveFunctionUnknownName(t *testing.T) {
	r, err := registry.New(nil, nil, constParse(expr.NewConst(0)))
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	if _, ok := r.ResolveFunction("missing"); ok {
		t.Error("ResolveFunction(missing) = ok, want not found")
	}
}

func TestResolveFunctionReturnsIndependentCopies(t *testing.T) {
	builtins := []registry.BuiltinEntry{
		{Name: "id", Expand: func() *expr.Expr { return expr.NewAbs("x", expr.NewId("x")) }},
	}
	r, err := registry.New(builtins, nil, constParse(expr.NewConst(0)))
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	first, ok := r.ResolveFunction("id")
	if !ok {
		t.Fatal("ResolveFunction(id) not found")
	}
	second, ok := r.ResolveFunction("id")
	if !ok {
		t.Fatal("ResolveFunction(id) not found on second call")
	}
	first.Name = "mutated"
	if second.Name == "mutated" {
		t.Error("ResolveFunction must return independent copies; mutating one affected the other")
	}
}

// TestResolveFunctionCachesStandardParse exercises registry.go's
// standardTree cache: the source text must be parsed exactly once no matter
// how many times the same standard function name is resolved.
func TestResolveFunctionCachesStandardParse(t *testing.T) {
	calls := 0
	parse := func(source string) (*expr.Expr, error) {
		calls++
		return expr.NewAbs("x", expr.NewId("x")), nil
	}
	standards := []registry.StandardEntry{
		{Name: "Y", Source: "(lambda x x)"},
	}
	r, err := registry.New(nil, standards, parse)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	if _, ok := r.ResolveFunction("Y"); !ok {
		t.Fatal("ResolveFunction(Y) not found")
	}
	if _, ok := r.ResolveFunction("Y"); !ok {
		t.Fatal("ResolveFunction(Y) not found on second call")
	}
	if calls != 1 {
		t.Errorf("parse called %d times, want exactly 1 (standardTree must cache)", calls)
	}
}

func TestNamesOrdersBuiltinsBeforeStandards(t *testing.T) {
	builtins := []registry.BuiltinEntry{
		{Name: "true", Expand: func() *expr.Expr { return expr.NewConst(1) }},
		{Name: "false", Expand: func() *expr.Expr { return expr.NewConst(0) }},
	}
	standards := []registry.StandardEntry{
		{Name: "Y", Source: "(lambda x x)"},
	}
	r, err := registry.New(builtins, standards, constParse(expr.NewConst(0)))
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	want := []string{"true", "false", "Y"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
