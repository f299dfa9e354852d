// Package frontend ties the minml pipeline together: parsing, type
// variable annotation, constraint collection, and unification.
package frontend

import (
	"log/slog"

	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/frontend/infer"
	"github.com/minml-lang/minml/frontend/types"
	"github.com/minml-lang/minml/internal/log"
	"github.com/minml-lang/minml/parser"
)

var logger = log.DefaultLogger.With("section", "frontend")

// ParseToAST returns an ast.Expr without any additional processing,
// like type inference
func ParseToAST(src string) (ast.Expr, *ilerr.Errors) {
	expr, errs := parser.Parse(src)
	if errs.HasError() {
		logger.Debug("parse failed", slog.Any("errors", errs))
		return nil, errs
	}
	return expr, nil
}

// CollectConstraints annotates expr and returns the typed term together
// with its constraint sequence in traversal order.
func CollectConstraints(expr ast.Expr) (*infer.Term, []infer.Constraint) {
	term := infer.Annotate(expr)
	constraints := infer.Collect(term)
	logger.Debug("collected constraints", "count", len(constraints))
	return term, constraints
}

// Infer runs annotation, constraint collection, and unification, returning
// the typed term, the resolved type of the whole expression, and any type
// errors found while solving.
func Infer(expr ast.Expr) (*infer.Term, types.Type, *ilerr.Errors) {
	term, constraints := CollectConstraints(expr)
	subst, errs := infer.Unify(constraints)
	resolved := subst.Apply(term.Type)
	if free := types.FreeTypeVars(resolved); !free.Empty() {
		logger.Debug("inferred type is not ground", "freeVariables", free.Size())
	}
	return term, resolved, errs
}
