package types

import (
	"github.com/hashicorp/go-set/v3"
)

// FreeTypeVars collects the IDs of every Variable occurring in t.
func FreeTypeVars(t Type) *set.Set[int] {
	vars := set.New[int](1)
	addFreeTypeVars(vars, t)
	return vars
}

func addFreeTypeVars(vars *set.Set[int], t Type) {
	switch t := t.(type) {
	case *Variable:
		vars.Insert(t.ID)
	case *Function:
		addFreeTypeVars(vars, t.Parameter)
		addFreeTypeVars(vars, t.Return)
	}
}
