package parser

import (
	"fmt"
	"strconv"

	"t73f.de/r/zero/set"

	"lambdasx/expr"
)

// toExpr walks a parsed Form into an expr.Expr, left-folding juxtaposed
// atoms into applications.
func toExpr(f *Form) (*expr.Expr, error) {
	if len(f.Atoms) == 0 {
		return nil, fmt.Errorf("parser: empty form")
	}
	result, err := atomToExpr(f.Atoms[0])
	if err != nil {
		return nil, err
	}
	for _, a := range f.Atoms[1:] {
		arg, err := atomToExpr(a)
		if err != nil {
			return nil, err
		}
		result = expr.NewApp(result, arg)
	}
	return result, nil
}

func atomToExpr(a *Atom) (*expr.Expr, error) {
	switch {
	case a.Int != nil:
		v, err := strconv.ParseInt(*a.Int, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parser: malformed integer %q: %w", *a.Int, err)
		}
		return expr.NewConst(v), nil
	case a.Ident != nil:
		return expr.NewId(*a.Ident), nil
	case a.Group != nil:
		return groupToExpr(a.Group)
	default:
		return nil, fmt.Errorf("parser: empty atom")
	}
}

func groupToExpr(g *Group) (*expr.Expr, error) {
	switch {
	case g.Lambda != nil:
		return lambdaToExpr(g.Lambda)
	case g.Prim != nil:
		return primToExpr(g.Prim)
	case g.Form != nil:
		return toExpr(g.Form)
	default:
		return nil, fmt.Errorf("parser: empty group")
	}
}

// lambdaToExpr checks Params for a repeated name the way
// sxbuiltins/lambda.go:GetParameterSymbol does for its parameter list, then
// nests one Abs node per parameter. The grammar captures exactly one
// parameter per lambda, so the check never rejects a parsed lambda and the
// result is a single Abs.
func lambdaToExpr(l *Lambda) (*expr.Expr, error) {
	if set.New(l.Params...).Length() != len(l.Params) {
		return nil, fmt.Errorf("parser: duplicate parameter name in lambda %v", l.Params)
	}
	body, err := toExpr(l.Body)
	if err != nil {
		return nil, err
	}
	for i := len(l.Params) - 1; i >= 0; i-- {
		body = expr.NewAbs(l.Params[i], body)
	}
	return body, nil
}

func primToExpr(p *Prim) (*expr.Expr, error) {
	left, err := toExpr(p.Left)
	if err != nil {
		return nil, err
	}
	right, err := toExpr(p.Right)
	if err != nil {
		return nil, err
	}
	return expr.NewPrim(p.Op, left, right), nil
}
