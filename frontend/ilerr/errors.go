package ilerr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/types"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None  ErrCode = iota
	Parse ErrCode = iota
	IllegalToken
	TypeMismatch
	InfiniteType
)

type MinmlError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) MinmlError
	getStack() []byte
}

func FormatWithCode(e MinmlError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E MinmlError](err E) MinmlError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Range
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) MinmlError {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Range
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) MinmlError {
	e.stack = stack
	return e
}

type NewIllegalToken struct {
	ast.Range
	Text  string
	stack []byte
}

func (e NewIllegalToken) Error() string {
	return fmt.Sprintf("illegal token '%s'", e.Text)
}
func (e NewIllegalToken) Code() ErrCode    { return IllegalToken }
func (e NewIllegalToken) getStack() []byte { return e.stack }
func (e NewIllegalToken) withStack(stack []byte) MinmlError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	ast.Range
	First  types.Type
	Second types.Type
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: expected type '%v', but found a different type '%v'", e.First.TypeName(), e.Second.TypeName())
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) MinmlError {
	e.stack = stack
	return e
}

type NewInfiniteType struct {
	ast.Range
	Variable *types.Variable
	Within   types.Type
	stack    []byte
}

func (e NewInfiniteType) Error() string {
	return fmt.Sprintf("cannot construct the infinite type %v = %v", e.Variable.TypeName(), e.Within.TypeName())
}
func (e NewInfiniteType) Code() ErrCode    { return InfiniteType }
func (e NewInfiniteType) getStack() []byte { return e.stack }
func (e NewInfiniteType) withStack(stack []byte) MinmlError {
	e.stack = stack
	return e
}
