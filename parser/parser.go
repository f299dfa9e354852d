package parser

import (
	"fmt"
	"strconv"

	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
)

type parser struct {
	tokens []Token
	pos    int
	errs   *ilerr.Errors
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind, what string) (Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		p.errorf(tok, "expected %s, found '%s'", what, describeToken(tok))
		return tok, false
	}
	return p.advance(), true
}

func (p *parser) errorf(at Token, format string, args ...any) {
	p.errs = p.errs.With(ilerr.New(ilerr.NewParse{
		Range:         at.Range,
		ParserMessage: fmt.Sprintf(format, args...),
	}))
}

func describeToken(tok Token) string {
	if tok.Kind == EOF {
		return "end of input"
	}
	return tok.Text
}

// parseExpr is the entry production:
//
//	expr := fn IDENT => expr
//	      | let val IDENT = expr in expr end
//	      | if expr then expr else expr
//	      | equality
func (p *parser) parseExpr() ast.Expr {
	switch p.peek().Kind {
	case FN:
		return p.parseFn()
	case LET:
		return p.parseLet()
	case IF:
		return p.parseIf()
	default:
		return p.parseEquality()
	}
}

func (p *parser) parseFn() ast.Expr {
	fnTok := p.advance()
	paramTok, ok := p.expect(IDENT, "parameter name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(ARROW, "'=>'"); !ok {
		return nil
	}
	body := p.parseExpr()
	if body == nil {
		return nil
	}
	return &ast.Func{
		Range: ast.RangeBetween(fnTok, body),
		Param: &ast.Var{Range: paramTok.Range, Name: paramTok.Text},
		Body:  body,
	}
}

func (p *parser) parseLet() ast.Expr {
	letTok := p.advance()
	if _, ok := p.expect(VAL, "'val'"); !ok {
		return nil
	}
	nameTok, ok := p.expect(IDENT, "declaration name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(EQUALS, "'='"); !ok {
		return nil
	}
	value := p.parseExpr()
	if value == nil {
		return nil
	}
	if _, ok := p.expect(IN, "'in'"); !ok {
		return nil
	}
	body := p.parseExpr()
	if body == nil {
		return nil
	}
	endTok, ok := p.expect(END, "'end'")
	if !ok {
		return nil
	}
	return &ast.Let{
		Range: ast.RangeBetween(letTok, endTok),
		Name:  &ast.Var{Range: nameTok.Range, Name: nameTok.Text},
		Value: value,
		Body:  body,
	}
}

func (p *parser) parseIf() ast.Expr {
	ifTok := p.advance()
	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(THEN, "'then'"); !ok {
		return nil
	}
	thenBranch := p.parseExpr()
	if thenBranch == nil {
		return nil
	}
	if _, ok := p.expect(ELSE, "'else'"); !ok {
		return nil
	}
	elseBranch := p.parseExpr()
	if elseBranch == nil {
		return nil
	}
	return &ast.If{
		Range: ast.RangeBetween(ifTok, elseBranch),
		Cond:  cond,
		Then:  thenBranch,
		Else:  elseBranch,
	}
}

// Binary operators are sugar for curried application: `a + b` becomes
// `(+ a) b`, with `+` an ordinary Var resolved like any identifier.
func (p *parser) parseEquality() ast.Expr {
	left := p.parseAdditive()
	for left != nil && p.peek().Kind == EQUALS {
		op := p.advance()
		right := p.parseAdditive()
		if right == nil {
			return nil
		}
		left = desugarBinary(op, left, right)
	}
	return left
}

func (p *parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for left != nil && (p.peek().Kind == PLUS || p.peek().Kind == MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = desugarBinary(op, left, right)
	}
	return left
}

func (p *parser) parseMultiplicative() ast.Expr {
	left := p.parseApplication()
	for left != nil && (p.peek().Kind == STAR || p.peek().Kind == SLASH) {
		op := p.advance()
		right := p.parseApplication()
		if right == nil {
			return nil
		}
		left = desugarBinary(op, left, right)
	}
	return left
}

func desugarBinary(op Token, left, right ast.Expr) ast.Expr {
	opVar := &ast.Var{Range: op.Range, Name: op.Text}
	return &ast.Call{
		Range: ast.RangeBetween(left, right),
		Fn: &ast.Call{
			Range:    ast.RangeBetween(left, opVar),
			Fn:       opVar,
			Argument: left,
		},
		Argument: right,
	}
}

func (p *parser) parseApplication() ast.Expr {
	fn := p.parseAtom()
	for fn != nil && startsAtom(p.peek().Kind) {
		arg := p.parseAtom()
		if arg == nil {
			return nil
		}
		fn = &ast.Call{
			Range:    ast.RangeBetween(fn, arg),
			Fn:       fn,
			Argument: arg,
		}
	}
	return fn
}

func startsAtom(kind TokenKind) bool {
	return kind == INT || kind == IDENT || kind == LPAREN
}

func (p *parser) parseAtom() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case INT:
		p.advance()
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			p.errorf(tok, "integer literal '%s' out of range", tok.Text)
			return nil
		}
		return &ast.Literal{Range: tok.Range, Value: value}
	case IDENT:
		p.advance()
		return &ast.Var{Range: tok.Range, Name: tok.Text}
	case LPAREN:
		p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(RPAREN, "')'"); !ok {
			return nil
		}
		return inner
	default:
		p.errorf(tok, "expected expression, found '%s'", describeToken(tok))
		return nil
	}
}
