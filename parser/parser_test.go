package parser_test

import (
	"testing"

	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, errs := parser.Parse(src)
	require.False(t, errs.HasError(), "expected %q to parse, but got: %v", src, errs.Errors())
	require.NotNil(t, expr)
	return expr
}

func TestParseLiteral(t *testing.T) {
	expr := parse(t, "42")
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Value)
}

func TestParseBinaryOperatorsDesugarToApplication(t *testing.T) {
	// a + b is (+ a) b
	expr := parse(t, "a + b")
	outer, ok := expr.(*ast.Call)
	require.True(t, ok)
	inner, ok := outer.Fn.(*ast.Call)
	require.True(t, ok)
	op, ok := inner.Fn.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "+", op.Name)
	assert.Equal(t, "a", inner.Argument.(*ast.Var).Name)
	assert.Equal(t, "b", outer.Argument.(*ast.Var).Name)
}

func TestParseOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 is (+ 1) ((* 2) 3)
	expr := parse(t, "1 + 2 * 3")
	outer := expr.(*ast.Call)
	plus := outer.Fn.(*ast.Call).Fn.(*ast.Var)
	assert.Equal(t, "+", plus.Name)
	mul := outer.Argument.(*ast.Call).Fn.(*ast.Call).Fn.(*ast.Var)
	assert.Equal(t, "*", mul.Name)
}

func TestParseEqualityHasLowestPrecedence(t *testing.T) {
	// x = 1 + 2 is (= x) ((+ 1) 2)
	expr := parse(t, "x = 1 + 2")
	outer := expr.(*ast.Call)
	eq := outer.Fn.(*ast.Call).Fn.(*ast.Var)
	assert.Equal(t, "=", eq.Name)
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	// f x y is (f x) y
	expr := parse(t, "f x y")
	outer := expr.(*ast.Call)
	inner := outer.Fn.(*ast.Call)
	assert.Equal(t, "f", inner.Fn.(*ast.Var).Name)
	assert.Equal(t, "x", inner.Argument.(*ast.Var).Name)
	assert.Equal(t, "y", outer.Argument.(*ast.Var).Name)
}

func TestParseApplicationBindsTighterThanOperators(t *testing.T) {
	// f 1 + 2 is (+ (f 1)) 2
	expr := parse(t, "f 1 + 2")
	outer := expr.(*ast.Call)
	plus := outer.Fn.(*ast.Call).Fn.(*ast.Var)
	assert.Equal(t, "+", plus.Name)
	call := outer.Fn.(*ast.Call).Argument.(*ast.Call)
	assert.Equal(t, "f", call.Fn.(*ast.Var).Name)
}

func TestParseFunctionDefinition(t *testing.T) {
	expr := parse(t, "fn x => x + 1")
	def, ok := expr.(*ast.Func)
	require.True(t, ok)
	assert.Equal(t, "x", def.Param.Name)
	_, ok = def.Body.(*ast.Call)
	assert.True(t, ok)
}

func TestParseIfExpression(t *testing.T) {
	expr := parse(t, "if x then 1 else 0")
	ifExpr, ok := expr.(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "x", ifExpr.Cond.(*ast.Var).Name)
	assert.Equal(t, int64(1), ifExpr.Then.(*ast.Literal).Value)
	assert.Equal(t, int64(0), ifExpr.Else.(*ast.Literal).Value)
}

func TestParseLetExpression(t *testing.T) {
	expr := parse(t, "let val inc = fn x => x + 1 in inc 42 end")
	let, ok := expr.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "inc", let.Name.(*ast.Var).Name)
	_, ok = let.Value.(*ast.Func)
	assert.True(t, ok)
	_, ok = let.Body.(*ast.Call)
	assert.True(t, ok)
}

func TestParseParenthesizedFunctionApplication(t *testing.T) {
	expr := parse(t, "(fn x => x) 1")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	_, ok = call.Fn.(*ast.Func)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"fn => x",
		"fn x x",
		"let x = 1 in x end",
		"let val x = 1 in x",
		"if x then 1",
		"(1",
		"1 2)",
		"+",
	} {
		t.Run(src, func(t *testing.T) {
			expr, errs := parser.Parse(src)
			assert.Nil(t, expr)
			require.True(t, errs.HasError(), "expected %q to fail", src)
			assert.Equal(t, ilerr.Parse, errs.Errors()[0].Code())
		})
	}
}

func TestParseRangesCoverTheSource(t *testing.T) {
	expr := parse(t, "fn x => x")
	assert.Equal(t, ast.Range{PosStart: 1, PosEnd: 10}, ast.RangeOf(expr))
}
