package parser

import (
	"go/token"

	"github.com/minml-lang/minml/frontend/ast"
	"github.com/minml-lang/minml/frontend/ilerr"
)

// TokenKind represents the kind of token.
type TokenKind int

const (
	// Special
	EOF TokenKind = iota
	ILLEGAL

	// Literals & identifiers
	INT
	IDENT

	// Punctuation & operators
	LPAREN // "("
	RPAREN // ")"
	PLUS
	MINUS
	STAR
	SLASH
	EQUALS // "="
	ARROW  // "=>"

	// Keywords
	IF
	THEN
	ELSE
	FN
	LET
	VAL
	IN
	END
)

var keywords = map[string]TokenKind{
	"if":   IF,
	"then": THEN,
	"else": ELSE,
	"fn":   FN,
	"let":  LET,
	"val":  VAL,
	"in":   IN,
	"end":  END,
}

type Token struct {
	Kind TokenKind
	Text string
	ast.Range
}

type lexer struct {
	src string
	pos int
}

// tokenize scans src into a token slice terminated by an EOF token.
// Unrecognized characters are reported and skipped, so scanning always
// reaches the end of the input.
func tokenize(src string) ([]Token, *ilerr.Errors) {
	l := &lexer{src: src}
	var tokens []Token
	var errs *ilerr.Errors
	for {
		tok := l.next()
		if tok.Kind == ILLEGAL {
			errs = errs.With(ilerr.New(ilerr.NewIllegalToken{Range: tok.Range, Text: tok.Text}))
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, errs
		}
	}
}

func (l *lexer) next() Token {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return l.token(EOF, start)
	}

	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return l.token(LPAREN, start)
	case c == ')':
		l.pos++
		return l.token(RPAREN, start)
	case c == '+':
		l.pos++
		return l.token(PLUS, start)
	case c == '-':
		l.pos++
		return l.token(MINUS, start)
	case c == '*':
		l.pos++
		return l.token(STAR, start)
	case c == '/':
		l.pos++
		return l.token(SLASH, start)
	case c == '=':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '>' {
			l.pos++
			return l.token(ARROW, start)
		}
		return l.token(EQUALS, start)
	case isDigit(c):
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		return l.token(INT, start)
	case isLetter(c):
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		text := l.src[start:l.pos]
		if kind, ok := keywords[text]; ok {
			return l.token(kind, start)
		}
		return l.token(IDENT, start)
	default:
		l.pos++
		return l.token(ILLEGAL, start)
	}
}

func (l *lexer) token(kind TokenKind, start int) Token {
	return Token{
		Kind: kind,
		Text: l.src[start:l.pos],
		// positions are 1-based so that a zero Range means "no position"
		Range: ast.Range{PosStart: token.Pos(start + 1), PosEnd: token.Pos(l.pos + 1)},
	}
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }
