// Package parser tokenizes and parses minml source text into the untyped
// syntax tree consumed by the frontend phases.
package parser

import (
	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
)

// Parse parses a single minml expression. On failure the returned
// expression is nil and the errors describe what went wrong; input after a
// complete expression is also an error.
func Parse(src string) (ast.Expr, *ilerr.Errors) {
	tokens, errs := tokenize(src)
	if errs.HasError() {
		return nil, errs
	}
	p := &parser{tokens: tokens}
	expr := p.parseExpr()
	if expr == nil || p.errs.HasError() {
		return nil, p.errs
	}
	if tok := p.peek(); tok.Kind != EOF {
		p.errorf(tok, "unexpected '%s' after expression", describeToken(tok))
		return nil, p.errs
	}
	return expr, nil
}
