// Package minml is the library entry point: it loads a program and runs
// the inference pipeline over it.
package minml

import (
	"io/fs"

	"github.com/minml-lang/minml/frontend"
	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/frontend/infer"
	"github.com/minml-lang/minml/frontend/types"
	"github.com/minml-lang/minml/internal/log"
	"github.com/pkg/errors"
)

var programLogger = log.DefaultLogger.With("section", "frontend.program")

// Program is a single minml source file together with what the pipeline
// derived from it. A Program is a single expression; there are no modules.
type Program struct {
	name   string
	source string
	syntax ast.Expr
	errors *ilerr.Errors
}

// LoadProgram reads a single-file program from dir.
func LoadProgram(dir fs.FS, path string) (*Program, error) {
	src, err := fs.ReadFile(dir, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read program at %s", path)
	}
	return NewProgram(path, string(src)), nil
}

// NewProgram parses source. Parse failures are recorded on the Program
// rather than returned: they are compile errors, not load errors.
func NewProgram(name, source string) *Program {
	p := &Program{name: name, source: source}
	p.syntax, p.errors = frontend.ParseToAST(source)
	if p.errors.HasError() {
		programLogger.Debug("program failed to parse", "name", name)
	}
	return p
}

func (p *Program) Name() string {
	return p.name
}

// Syntax returns the parsed expression, or nil if parsing failed.
func (p *Program) Syntax() ast.Expr {
	return p.syntax
}

// Errors returns the parse errors recorded while loading.
func (p *Program) Errors() *ilerr.Errors {
	return p.errors
}

// Constraints returns the program's constraint sequence in traversal
// order, or nil if it did not parse. Every call annotates afresh, so
// independent calls never share type variables or environments.
func (p *Program) Constraints() []infer.Constraint {
	if p.syntax == nil {
		return nil
	}
	_, constraints := frontend.CollectConstraints(p.syntax)
	return constraints
}

// Check infers the type of the program. The returned errors hold parse
// errors when the program did not parse, and solver errors otherwise.
func (p *Program) Check() (types.Type, *ilerr.Errors) {
	if p.syntax == nil {
		return nil, p.errors
	}
	_, inferred, errs := frontend.Infer(p.syntax)
	return inferred, p.errors.Merge(errs)
}
