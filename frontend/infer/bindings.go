package infer

import (
	"github.com/benbjohnson/immutable"
	"github.com/minml-lang/minml/frontend/types"
)

// Bindings maps identifier names to types, for names resolved by lexical
// lookup: the builtin operators and let-bound names. Function parameters
// never appear here; the annotator aliases their uses instead.
//
// Bindings is persistent: Extend returns a new value and never changes
// what the receiver's other holders see.
type Bindings struct {
	m *immutable.Map[string, types.Type]
}

func NewBindings() Bindings {
	return Bindings{m: immutable.NewMap[string, types.Type](nil)}
}

func (b Bindings) Lookup(name string) (types.Type, bool) {
	return b.m.Get(name)
}

// Extend returns a new Bindings with name bound to t.
func (b Bindings) Extend(name string, t types.Type) Bindings {
	return Bindings{m: b.m.Set(name, t)}
}

func (b Bindings) Len() int {
	return b.m.Len()
}

// BuiltinNames are the operator names bound in every top-level environment.
var BuiltinNames = []string{"+", "-", "*", "/", "="}

// Builtins returns a fresh environment binding the five builtin operators.
// All five are typed int -> int: `=` included, so applying it to two
// operands yields int, not bool.
func Builtins() Bindings {
	b := NewBindings()
	for _, name := range BuiltinNames {
		b = b.Extend(name, types.Fn(types.Int, types.Int))
	}
	return b
}
