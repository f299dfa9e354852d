package infer

import (
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/frontend/types"
)

// Substitution maps type variable IDs to the types they resolved to.
type Substitution struct {
	bindings map[int]types.Type
}

// Apply resolves every bound variable inside t, chasing chains of variable
// bindings. Unbound variables are left in place.
func (s *Substitution) Apply(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Variable:
		if bound, ok := s.bindings[t.ID]; ok {
			return s.Apply(bound)
		}
		return t
	case *types.Function:
		return types.Fn(s.Apply(t.Parameter), s.Apply(t.Return))
	default:
		return t
	}
}

// Unify solves a constraint sequence into a Substitution. A failing
// constraint is recorded and skipped rather than aborting the run, so a
// single pass reports every independent mismatch.
func Unify(constraints []Constraint) (*Substitution, *ilerr.Errors) {
	subst := &Substitution{bindings: map[int]types.Type{}}
	var errs *ilerr.Errors
	for _, c := range constraints {
		errs = errs.Merge(subst.unify(c.Type1, c.Type2))
	}
	return subst, errs
}

func (s *Substitution) unify(t1, t2 types.Type) *ilerr.Errors {
	t1, t2 = s.Apply(t1), s.Apply(t2)
	if types.Equal(t1, t2) {
		return nil
	}
	if v, ok := t1.(*types.Variable); ok {
		return s.bind(v, t2)
	}
	if v, ok := t2.(*types.Variable); ok {
		return s.bind(v, t1)
	}
	f1, ok1 := t1.(*types.Function)
	f2, ok2 := t2.(*types.Function)
	if ok1 && ok2 {
		errs := s.unify(f1.Parameter, f2.Parameter)
		return errs.Merge(s.unify(f1.Return, f2.Return))
	}
	var errs *ilerr.Errors
	return errs.With(ilerr.New(ilerr.NewTypeMismatch{First: t1, Second: t2}))
}

func (s *Substitution) bind(v *types.Variable, t types.Type) *ilerr.Errors {
	if types.FreeTypeVars(t).Contains(v.ID) {
		var errs *ilerr.Errors
		return errs.With(ilerr.New(ilerr.NewInfiniteType{Variable: v, Within: t}))
	}
	s.bindings[v.ID] = t
	return nil
}
