package infer

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/types"
)

// scope maps lexically visible parameter names to the type variable minted
// for their binder. It is persistent: extending it for a subtree never
// changes what sibling subtrees see.
type scope = *immutable.Map[string, *types.Variable]

type annotator struct {
	next int
}

// Annotate assigns a fresh type variable to every node of expr, in
// pre-order with children visited in field order, numbering from 1.
//
// Two aliasing rules hold for the result, and the constraint collector
// depends on both:
//   - a function parameter and every lexically captured use of it inside
//     the body carry the *same* Variable (such uses mint no fresh variable);
//   - a let declaration name and its uses carry *independent* variables;
//     the collector equates them through its environment instead.
func Annotate(expr ast.Expr) *Term {
	a := &annotator{next: 1}
	return a.annotate(expr, immutable.NewMap[string, *types.Variable](nil))
}

func (a *annotator) fresh() *types.Variable {
	v := &types.Variable{ID: a.next}
	a.next++
	return v
}

func (a *annotator) annotate(expr ast.Expr, sc scope) *Term {
	switch e := expr.(type) {
	case *ast.Literal:
		return &Term{Range: ast.RangeOf(e), Type: a.fresh(), Kind: Integer{Value: e.Value}}

	case *ast.Var:
		if bound, ok := sc.Get(e.Name); ok {
			return &Term{Range: ast.RangeOf(e), Type: bound, Kind: Identifier{Name: e.Name}}
		}
		return &Term{Range: ast.RangeOf(e), Type: a.fresh(), Kind: Identifier{Name: e.Name}}

	case *ast.Call:
		t := &Term{Range: ast.RangeOf(e), Type: a.fresh()}
		fn := a.annotate(e.Fn, sc)
		arg := a.annotate(e.Argument, sc)
		t.Kind = FunctionApplication{Function: fn, Argument: arg}
		return t

	case *ast.Func:
		t := &Term{Range: ast.RangeOf(e), Type: a.fresh()}
		paramVar := a.fresh()
		param := &Term{Range: ast.RangeOf(e.Param), Type: paramVar, Kind: Identifier{Name: e.Param.Name}}
		body := a.annotate(e.Body, sc.Set(e.Param.Name, paramVar))
		t.Kind = FunctionDefinition{Parameter: param, Body: body}
		return t

	case *ast.If:
		t := &Term{Range: ast.RangeOf(e), Type: a.fresh()}
		cond := a.annotate(e.Cond, sc)
		thenBranch := a.annotate(e.Then, sc)
		elseBranch := a.annotate(e.Else, sc)
		t.Kind = IfExpression{Condition: cond, TrueBranch: thenBranch, FalseBranch: elseBranch}
		return t

	case *ast.Let:
		t := &Term{Range: ast.RangeOf(e), Type: a.fresh()}
		var name *Term
		bodyScope := sc
		if v, ok := e.Name.(*ast.Var); ok {
			// the declaration name always gets its own variable, never an
			// aliased one, and it shadows any parameter of the same name
			// in the let body (where the collector's environment takes over)
			name = &Term{Range: ast.RangeOf(v), Type: a.fresh(), Kind: Identifier{Name: v.Name}}
			bodyScope = sc.Delete(v.Name)
		} else {
			name = a.annotate(e.Name, sc)
		}
		value := a.annotate(e.Value, sc)
		body := a.annotate(e.Body, bodyScope)
		t.Kind = LetExpression{DeclarationName: name, DeclarationValue: value, Expression: body}
		return t

	default:
		panic(fmt.Sprintf("unhandled expression %T", expr))
	}
}
