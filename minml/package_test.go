package minml_test

import (
	"testing"
	"testing/fstest"

	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/frontend/types"
	"github.com/minml-lang/minml/minml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProgramFromFS(t *testing.T) {
	dir := fstest.MapFS{
		"main.mml": &fstest.MapFile{
			Data: []byte("let val id = fn x => x in id 42 end"),
		},
	}
	program, err := minml.LoadProgram(dir, "main.mml")
	require.NoError(t, err)
	assert.Equal(t, "main.mml", program.Name())
	require.False(t, program.Errors().HasError())

	inferred, errs := program.Check()
	require.False(t, errs.HasError())
	assert.True(t, types.Equal(types.Int, inferred))
}

func TestLoadProgramMissingFile(t *testing.T) {
	_, err := minml.LoadProgram(fstest.MapFS{}, "nope.mml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read program at nope.mml")
}

func TestNewProgramRecordsParseErrors(t *testing.T) {
	program := minml.NewProgram("<expr>", "fn => x")
	require.True(t, program.Errors().HasError())
	assert.Equal(t, ilerr.Parse, program.Errors().Errors()[0].Code())
	assert.Nil(t, program.Syntax())
	assert.Nil(t, program.Constraints())

	inferred, errs := program.Check()
	assert.Nil(t, inferred)
	assert.True(t, errs.HasError())
}

func TestProgramConstraints(t *testing.T) {
	program := minml.NewProgram("<expr>", "42")
	constraints := program.Constraints()
	require.Len(t, constraints, 1)
	assert.Equal(t, "t1 = int", constraints[0].String())
}

func TestProgramCheckReportsTypeErrors(t *testing.T) {
	program := minml.NewProgram("<expr>", "if 1 then 2 else 3")
	_, errs := program.Check()
	require.True(t, errs.HasError())
	assert.Equal(t, ilerr.TypeMismatch, errs.Errors()[0].Code())
}

func TestIndependentProgramsDoNotShareState(t *testing.T) {
	first := minml.NewProgram("<a>", "let val y = 1 in y end")
	_ = first.Constraints()

	// y was bound only inside the first program's collection
	second := minml.NewProgram("<b>", "y")
	assert.Empty(t, second.Constraints())
}
