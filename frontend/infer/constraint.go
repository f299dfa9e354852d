package infer

import (
	"fmt"

	"github.com/minml-lang/minml/frontend/types"
)

// Constraint asserts that Type1 and Type2 must denote the same type once
// solved. The pair is semantically unordered; the collector's emission
// order is still deterministic so diagnostics are reproducible.
type Constraint struct {
	Type1 types.Type
	Type2 types.Type
}

func (c Constraint) String() string {
	return c.Type1.TypeName() + " = " + c.Type2.TypeName()
}

// Collect returns the constraints for a fully-annotated term, under a
// fresh environment seeded with the builtin operators. Collection is total:
// it never fails, whatever the shape of the term.
func Collect(term *Term) []Constraint {
	return collect(term, Builtins())
}

func collect(term *Term, bindings Bindings) []Constraint {
	switch kind := term.Kind.(type) {
	case Integer:
		return []Constraint{{term.Type, types.Int}}

	case Identifier:
		// only let-bound names and builtins resolve here; a missing name
		// means the annotator already aliased this occurrence's variable
		// to its binder's, so there is nothing to equate
		if bound, ok := bindings.Lookup(kind.Name); ok {
			return []Constraint{{term.Type, bound}}
		}
		return nil

	case FunctionApplication:
		constraints := []Constraint{
			{kind.Function.Type, types.Fn(kind.Argument.Type, term.Type)},
		}
		constraints = append(constraints, collect(kind.Function, bindings)...)
		return append(constraints, collect(kind.Argument, bindings)...)

	case FunctionDefinition:
		// the parameter is not added to the environment: its uses inside
		// the body share its variable already
		constraints := []Constraint{
			{term.Type, types.Fn(kind.Parameter.Type, kind.Body.Type)},
		}
		return append(constraints, collect(kind.Body, bindings)...)

	case IfExpression:
		constraints := []Constraint{
			{term.Type, kind.TrueBranch.Type},
			{term.Type, kind.FalseBranch.Type},
			{kind.Condition.Type, types.Bool},
			{kind.TrueBranch.Type, kind.FalseBranch.Type},
		}
		constraints = append(constraints, collect(kind.Condition, bindings)...)
		constraints = append(constraints, collect(kind.TrueBranch, bindings)...)
		return append(constraints, collect(kind.FalseBranch, bindings)...)

	case LetExpression:
		constraints := []Constraint{
			{term.Type, kind.Expression.Type},
			{kind.DeclarationName.Type, kind.DeclarationValue.Type},
		}
		// the declaration value cannot see its own name (no letrec);
		// a non-Identifier declaration name just skips the extension
		extended := bindings
		if name, ok := kind.DeclarationName.Kind.(Identifier); ok {
			extended = bindings.Extend(name.Name, kind.DeclarationName.Type)
		}
		constraints = append(constraints, collect(kind.DeclarationValue, bindings)...)
		return append(constraints, collect(kind.Expression, extended)...)

	default:
		panic(fmt.Sprintf("unhandled term kind %T", term.Kind))
	}
}
