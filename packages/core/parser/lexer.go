package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenWhitespace
	TokenIdent
	TokenMut
	TokenComma
	TokenLeftParen
	TokenRightParen
	TokenIllegal
)

// Token is one lexical element of a directive payload. Column is 1-based
// and relative to the start of the payload.
type Token struct {
	Type   TokenType
	Value  string
	Column int
}

type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
	column  int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

func (l *Lexer) NextToken() Token {
	var tok Token
	tok.Column = l.column

	switch l.ch {
	case 0:
		tok.Type = TokenEOF
	case ',':
		tok.Type = TokenComma
		tok.Value = ","
		l.readChar()
	case '(':
		tok.Type = TokenLeftParen
		tok.Value = "("
		l.readChar()
	case ')':
		tok.Type = TokenRightParen
		tok.Value = ")"
		l.readChar()
	case ' ', '\t':
		tok = l.readWhitespace()
	default:
		if isIdentStart(l.ch) {
			ident := l.readIdentifier()
			typ := TokenIdent
			if ident == "mut" {
				typ = TokenMut
			}
			return Token{Type: typ, Value: ident, Column: tok.Column}
		}
		tok.Type = TokenIllegal
		tok.Value = string(l.ch)
		l.readChar()
	}

	return tok
}

func (l *Lexer) readWhitespace() Token {
	col := l.column
	var builder strings.Builder
	for l.ch == ' ' || l.ch == '\t' {
		builder.WriteByte(l.ch)
		l.readChar()
	}
	return Token{
		Type:   TokenWhitespace,
		Value:  builder.String(),
		Column: col,
	}
}

func (l *Lexer) readIdentifier() string {
	var builder strings.Builder
	for isIdentPart(l.ch) {
		builder.WriteByte(l.ch)
		l.readChar()
	}
	return builder.String()
}

// Bytes above utf8.RuneSelf are accepted here and validated as part of the
// assembled identifier, so multi-byte letters survive the byte-wise scan.
func isIdentStart(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch)) || ch >= utf8.RuneSelf
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
