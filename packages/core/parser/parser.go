package parser

import (
	"go/token"
	"strings"

	"github.com/clonecap/clonecap/packages/capture"
)

// Directive marker pieces. A directive comment starts with the prefix
// immediately followed by a verb, with no space after the slashes.
const (
	DirectivePrefix = "//clonecap:"
	VerbClone       = "clone"
)

// MatchDirective splits a comment into verb and payload. ok is false when
// the comment is not a clonecap directive at all. payloadOffset is the byte
// offset of the payload within text. Anything after an embedded // is a
// trailing comment and is cut from the payload.
func MatchDirective(text string) (verb, payload string, payloadOffset int, ok bool) {
	if !strings.HasPrefix(text, DirectivePrefix) {
		return "", "", 0, false
	}
	rest := text[len(DirectivePrefix):]
	i := 0
	for i < len(rest) && isIdentPart(rest[i]) {
		i++
	}
	verb = rest[:i]
	payload = rest[i:]
	if j := strings.Index(payload, "//"); j >= 0 {
		payload = payload[:j]
	}
	return verb, payload, len(DirectivePrefix) + i, true
}

type Parser struct {
	lexer    *Lexer
	curToken Token
	file     string
	base     Position
}

// ParseDirective parses the payload of a clone directive into a capture
// list. base locates the first payload byte in the host file, so specifier
// positions and errors come out absolute.
func ParseDirective(payload, file string, base Position) (capture.List, error) {
	p := &Parser{
		lexer: NewLexer(payload),
		file:  file,
		base:  base,
	}
	p.nextToken()
	return p.parseList()
}

func (p *Parser) nextToken() {
	p.curToken = p.lexer.NextToken()
	for p.curToken.Type == TokenWhitespace {
		p.curToken = p.lexer.NextToken()
	}
}

func (p *Parser) parseList() (capture.List, error) {
	parenthesized := false
	if p.curToken.Type == TokenLeftParen {
		parenthesized = true
		p.nextToken()
	}

	var list capture.List
	for {
		switch p.curToken.Type {
		case TokenEOF:
			if parenthesized {
				return nil, p.errorAt(p.curToken.Column, "unclosed '(' in capture list")
			}
			if len(list) == 0 {
				return nil, p.errorAt(p.curToken.Column, "empty capture list")
			}
			return list, nil
		case TokenRightParen:
			if !parenthesized {
				return nil, p.errorAt(p.curToken.Column, `unexpected ")"`)
			}
			if len(list) == 0 {
				return nil, p.errorAt(p.curToken.Column, "empty capture list")
			}
			p.nextToken()
			if p.curToken.Type != TokenEOF {
				return nil, p.errorAt(p.curToken.Column, "unexpected "+quoteToken(p.curToken)+" after ')'")
			}
			return list, nil
		}

		spec, err := p.parseSpecifier()
		if err != nil {
			return nil, err
		}
		list = append(list, spec)

		switch p.curToken.Type {
		case TokenComma:
			p.nextToken()
		case TokenEOF, TokenRightParen:
			// closed out at the top of the loop
		default:
			return nil, p.errorAt(p.curToken.Column, "expected ',' between entries, got "+quoteToken(p.curToken))
		}
	}
}

func (p *Parser) parseSpecifier() (capture.Specifier, error) {
	spec := capture.Specifier{
		Line:   p.base.Line,
		Column: p.base.Column + p.curToken.Column - 1,
	}

	if p.curToken.Type == TokenMut {
		spec.Mutable = true
		p.nextToken()
		if p.curToken.Type == TokenMut {
			return spec, p.errorAt(p.curToken.Column, "duplicate mut qualifier")
		}
		if p.curToken.Type != TokenIdent {
			return spec, p.errorAt(p.curToken.Column, "expected identifier after mut")
		}
	} else if p.curToken.Type != TokenIdent {
		return spec, p.errorAt(p.curToken.Column, "expected identifier, got "+quoteToken(p.curToken))
	}

	if !token.IsIdentifier(p.curToken.Value) {
		if token.Lookup(p.curToken.Value).IsKeyword() {
			return spec, p.errorAt(p.curToken.Column, `cannot capture Go keyword "`+p.curToken.Value+`"`)
		}
		return spec, p.errorAt(p.curToken.Column, "invalid identifier: "+p.curToken.Value)
	}
	spec.Name = p.curToken.Value
	p.nextToken()
	return spec, nil
}

func (p *Parser) errorAt(col int, message string) *ParseError {
	return &ParseError{
		File:    p.file,
		Line:    p.base.Line,
		Column:  p.base.Column + col - 1,
		Message: message,
	}
}

func quoteToken(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of list"
	}
	return `"` + tok.Value + `"`
}
