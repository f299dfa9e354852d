// Package infer implements type inference for minml expressions:
// annotating the syntax tree with fresh type variables, collecting
// type-equality constraints, and solving them by unification.
package infer

import (
	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/types"
)

var (
	_ Kind = Integer{}
	_ Kind = Identifier{}
	_ Kind = FunctionApplication{}
	_ Kind = FunctionDefinition{}
	_ Kind = IfExpression{}
	_ Kind = LetExpression{}
)

// Term is a syntax node annotated with its own Type. The annotation pass
// builds the tree once; later phases only read it.
type Term struct {
	ast.Range
	Type types.Type
	Kind Kind
}

// Kind is the closed union of typed node kinds.
type Kind interface {
	kindNode()
}

// Integer is an integer literal node.
type Integer struct {
	Value int64
}

// Identifier is a variable, builtin operator, or let-bound name occurrence.
type Identifier struct {
	Name string
}

// FunctionApplication applies Function to a single Argument.
type FunctionApplication struct {
	Function *Term
	Argument *Term
}

// FunctionDefinition is a single-parameter abstraction. Parameter is
// normally an Identifier node.
type FunctionDefinition struct {
	Parameter *Term
	Body      *Term
}

// IfExpression is a conditional with both branches present.
type IfExpression struct {
	Condition   *Term
	TrueBranch  *Term
	FalseBranch *Term
}

// LetExpression is a non-recursive let-binding. DeclarationName is normally
// an Identifier node; when it is not, downstream phases skip the binding
// rather than fail.
type LetExpression struct {
	DeclarationName  *Term
	DeclarationValue *Term
	Expression       *Term
}

func (Integer) kindNode()             {}
func (Identifier) kindNode()          {}
func (FunctionApplication) kindNode() {}
func (FunctionDefinition) kindNode()  {}
func (IfExpression) kindNode()        {}
func (LetExpression) kindNode()       {}
