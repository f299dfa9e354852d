package infer_test

import (
	"testing"

	"github.com/minml-lang/minml/frontend/infer"
	"github.com/minml-lang/minml/frontend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varID(t *testing.T, term *infer.Term) int {
	t.Helper()
	v, ok := term.Type.(*types.Variable)
	require.True(t, ok, "expected a type variable, got %v", term.Type.TypeName())
	return v.ID
}

func TestAnnotateNumbersNodesInPreOrder(t *testing.T) {
	term := annotated(t, "if x then 1 else 0")
	assert.Equal(t, 1, varID(t, term))
	ifKind, ok := term.Kind.(infer.IfExpression)
	require.True(t, ok)
	assert.Equal(t, 2, varID(t, ifKind.Condition))
	assert.Equal(t, 3, varID(t, ifKind.TrueBranch))
	assert.Equal(t, 4, varID(t, ifKind.FalseBranch))
}

func TestAnnotateAliasesParameterUses(t *testing.T) {
	term := annotated(t, "fn x => x")
	def, ok := term.Kind.(infer.FunctionDefinition)
	require.True(t, ok)
	// the parameter and its use share the very same type variable
	assert.Same(t, def.Parameter.Type, def.Body.Type)
	assert.Equal(t, 2, varID(t, def.Parameter))
}

func TestAnnotateAliasedUsesMintNoVariable(t *testing.T) {
	// in `fn x => x + 1` the body's x reuses variable 2, so the literal
	// ends up with variable 6, not 7
	term := annotated(t, "fn x => x + 1")
	def := term.Kind.(infer.FunctionDefinition)
	outerApp := def.Body.Kind.(infer.FunctionApplication)
	innerApp := outerApp.Function.Kind.(infer.FunctionApplication)

	assert.Equal(t, 3, varID(t, def.Body))
	assert.Equal(t, 4, varID(t, outerApp.Function))
	assert.Equal(t, 5, varID(t, innerApp.Function))
	assert.Same(t, def.Parameter.Type, innerApp.Argument.Type)
	assert.Equal(t, 6, varID(t, outerApp.Argument))
}

func TestAnnotateInnerParameterShadows(t *testing.T) {
	term := annotated(t, "fn x => fn x => x")
	outer := term.Kind.(infer.FunctionDefinition)
	inner := outer.Body.Kind.(infer.FunctionDefinition)
	assert.Same(t, inner.Parameter.Type, inner.Body.Type)
	assert.NotEqual(t, varID(t, outer.Parameter), varID(t, inner.Body))
}

func TestAnnotateLetNamesAreNotAliased(t *testing.T) {
	term := annotated(t, "let val x = 1 in x end")
	let := term.Kind.(infer.LetExpression)
	// declaration name and body use carry independent variables; the
	// collector's environment equates them later
	assert.NotEqual(t, varID(t, let.DeclarationName), varID(t, let.Expression))
}

func TestAnnotateLetNameShadowsParameter(t *testing.T) {
	term := annotated(t, "fn x => let val x = 1 in x end")
	def := term.Kind.(infer.FunctionDefinition)
	let := def.Body.Kind.(infer.LetExpression)
	// the use in the let body refers to the let-bound x, not the
	// parameter, so it must not alias the parameter's variable
	assert.NotEqual(t, varID(t, def.Parameter), varID(t, let.Expression))
	assert.NotEqual(t, varID(t, let.DeclarationName), varID(t, let.Expression))
}

func TestAnnotateUnboundIdentifierGetsFreshVariable(t *testing.T) {
	term := annotated(t, "x")
	assert.Equal(t, 1, varID(t, term))
	assert.Equal(t, infer.Identifier{Name: "x"}, term.Kind)
}
