package ast

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
)

// Expr is the base for all expressions.
//
// The following expressions are supported:
//
//	Literal:  integer literal
//	Var:      variable or builtin operator name
//	Call:     function application (single argument)
//	Func:     function abstraction (single parameter)
//	If:       conditional expression
//	Let:      non-recursive let-binding
type Expr interface {
	Positioner
	// ExprName is the name of the syntax-type of the expression.
	ExprName() string
	// Describe is what to call this expression in error messages
	Describe() string
	Hash() uint64
}

// Literal represents an integer literal value.
type Literal struct {
	Range
	Value int64
}

func (e *Literal) ExprName() string { return "Literal" }
func (e *Literal) Describe() string { return "int literal" }

// Hash returns a hash value for the Literal, based on its structural characteristics
func (e *Literal) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Literal"))
	_, _ = h.Write([]byte(strconv.FormatInt(e.Value, 10)))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Var represents a variable or operator name.
// Builtin operators are ordinary Vars: `a + b` parses as `(+ a) b`.
type Var struct {
	Range
	Name string
}

func (e *Var) ExprName() string { return "Var" }
func (e *Var) Describe() string { return "variable" }

// Hash returns a hash value for the Var, based on its structural characteristics
func (e *Var) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Var"))
	_, _ = h.Write([]byte(e.Name))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Call represents applying Fn to a single Argument.
type Call struct {
	Range
	Fn       Expr
	Argument Expr
}

func (e *Call) ExprName() string { return "Call" }
func (e *Call) Describe() string { return "function call" }

// Hash returns a hash value for the Call, based on its structural characteristics
func (e *Call) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Call"))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	if e.Fn != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Fn.Hash())
	}
	if e.Argument != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Argument.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Func represents a single-parameter function abstraction `fn x => body`.
type Func struct {
	Range
	Param *Var
	Body  Expr
}

func (e *Func) ExprName() string { return "Func" }
func (e *Func) Describe() string { return "function" }

// Hash returns a hash value for the Func, based on its structural characteristics
func (e *Func) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Func"))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	if e.Param != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Param.Hash())
	}
	if e.Body != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Body.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// If represents `if Cond then Then else Else`.
type If struct {
	Range
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) ExprName() string { return "If" }
func (e *If) Describe() string { return "conditional" }

// Hash returns a hash value for the If, based on its structural characteristics
func (e *If) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("If"))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	for _, child := range []Expr{e.Cond, e.Then, e.Else} {
		if child != nil {
			arr = binary.LittleEndian.AppendUint64(arr, child.Hash())
		}
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Let represents `let val Name = Value in Body end`.
//
// Name is an Expr rather than a *Var so that malformed declaration targets
// can be represented; downstream phases tolerate them (see infer).
type Let struct {
	Range
	Name  Expr
	Value Expr
	Body  Expr
}

func (e *Let) ExprName() string { return "Let" }
func (e *Let) Describe() string { return "let-binding" }

// Hash returns a hash value for the Let, based on its structural characteristics
func (e *Let) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Let"))
	arr := binary.LittleEndian.AppendUint64(nil, e.Range.Hash())
	for _, child := range []Expr{e.Name, e.Value, e.Body} {
		if child != nil {
			arr = binary.LittleEndian.AppendUint64(arr, child.Hash())
		}
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}
