package types

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

var (
	_ Type = (*Variable)(nil)
	_ Type = (*Integer)(nil)
	_ Type = (*Boolean)(nil)
	_ Type = (*Function)(nil)
)

// Type is the closed sum of minml types. A Type value is always a finite
// tree: a Function owns its parameter and return types exclusively.
type Type interface {
	// TypeName is how to render this type in diagnostics.
	TypeName() string
	Hash() uint64

	typeNode()
}

// Variable is a type variable minted by the annotation pass. Two Variables
// denote the same type iff their IDs are equal.
type Variable struct {
	ID int
}

func (t *Variable) typeNode()        {}
func (t *Variable) TypeName() string { return "t" + strconv.Itoa(t.ID) }

func (t *Variable) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Variable"))
	arr := binary.LittleEndian.AppendUint64(nil, uint64(t.ID))
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Integer is the ground type of integer literals and arithmetic.
type Integer struct{}

func (t *Integer) typeNode()        {}
func (t *Integer) TypeName() string { return "int" }

func (t *Integer) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Integer"))
	return h.Sum64()
}

// Boolean is the ground type of conditions.
type Boolean struct{}

func (t *Boolean) typeNode()        {}
func (t *Boolean) TypeName() string { return "bool" }

func (t *Boolean) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Boolean"))
	return h.Sum64()
}

// Function is the type of single-parameter functions.
type Function struct {
	Parameter Type
	Return    Type
}

func (t *Function) typeNode() {}

func (t *Function) TypeName() string {
	return "(" + t.Parameter.TypeName() + " -> " + t.Return.TypeName() + ")"
}

func (t *Function) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Function"))
	arr := binary.LittleEndian.AppendUint64(nil, t.Parameter.Hash())
	arr = binary.LittleEndian.AppendUint64(arr, t.Return.Hash())
	_, _ = h.Write(arr)
	return h.Sum64()
}

// Int and Bool are the canonical ground type values. Equality is structural
// (see Equal), so sharing these is a convenience, not a requirement.
var (
	Int  = &Integer{}
	Bool = &Boolean{}
)

// Fn builds a Function type.
func Fn(parameter, ret Type) *Function {
	return &Function{Parameter: parameter, Return: ret}
}

// Equal reports whether two types are structurally identical.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.ID == b.ID
	case *Integer:
		_, ok := b.(*Integer)
		return ok
	case *Boolean:
		_, ok := b.(*Boolean)
		return ok
	case *Function:
		b, ok := b.(*Function)
		return ok && Equal(a.Parameter, b.Parameter) && Equal(a.Return, b.Return)
	default:
		return false
	}
}
