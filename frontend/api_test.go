package frontend_test

import (
	"testing"

	"github.com/minml-lang/minml/frontend"
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToAST(t *testing.T) {
	expr, errs := frontend.ParseToAST("fn x => x + 1")
	require.False(t, errs.HasError())
	require.NotNil(t, expr)
	assert.Equal(t, "Func", expr.ExprName())
}

func TestParseToASTReportsErrors(t *testing.T) {
	expr, errs := frontend.ParseToAST("fn => x")
	assert.Nil(t, expr)
	require.True(t, errs.HasError())
	assert.Equal(t, ilerr.Parse, errs.Errors()[0].Code())
}

func TestCollectConstraintsTraversalOrder(t *testing.T) {
	expr, errs := frontend.ParseToAST("if x then 1 else 0")
	require.False(t, errs.HasError())
	_, constraints := frontend.CollectConstraints(expr)
	// self-constraints come before the children's, in source order
	rendered := make([]string, len(constraints))
	for i, c := range constraints {
		rendered[i] = c.String()
	}
	assert.Equal(t, []string{
		"t1 = t3",
		"t1 = t4",
		"t2 = bool",
		"t3 = t4",
		"t3 = int",
		"t4 = int",
	}, rendered)
}

func TestInferEndToEnd(t *testing.T) {
	expr, errs := frontend.ParseToAST("let val id = fn x => x in id 42 end")
	require.False(t, errs.HasError())
	term, inferred, errs := frontend.Infer(expr)
	require.False(t, errs.HasError())
	require.NotNil(t, term)
	assert.True(t, types.Equal(types.Int, inferred))
}
