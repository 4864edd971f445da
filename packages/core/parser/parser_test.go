package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, payload string) ([]string, []bool) {
	t.Helper()
	list, err := ParseDirective(payload, "test.go", Position{Line: 1, Column: 1})
	require.NoError(t, err)
	muts := make([]bool, len(list))
	for i, s := range list {
		muts[i] = s.Mutable
	}
	return list.Names(), muts
}

func TestParseDirective_SingleEntry(t *testing.T) {
	names, muts := parse(t, " tx")
	assert.Equal(t, []string{"tx"}, names)
	assert.Equal(t, []bool{false}, muts)
}

func TestParseDirective_MutQualifier(t *testing.T) {
	names, muts := parse(t, " mut counter")
	assert.Equal(t, []string{"counter"}, names)
	assert.Equal(t, []bool{true}, muts)
}

func TestParseDirective_MixedEntriesKeepOrder(t *testing.T) {
	names, muts := parse(t, " a, mut b, c")
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []bool{false, true, false}, muts)
}

func TestParseDirective_TrailingCommaIsNoOp(t *testing.T) {
	withComma, withCommaMuts := parse(t, " x, mut y,")
	without, withoutMuts := parse(t, " x, mut y")
	assert.Equal(t, without, withComma)
	assert.Equal(t, withoutMuts, withCommaMuts)
}

func TestParseDirective_DuplicateNamesKept(t *testing.T) {
	names, muts := parse(t, " x, x")
	assert.Equal(t, []string{"x", "x"}, names)
	assert.Equal(t, []bool{false, false}, muts)

	names, muts = parse(t, " x, mut x")
	assert.Equal(t, []string{"x", "x"}, names)
	assert.Equal(t, []bool{false, true}, muts)
}

func TestParseDirective_Parenthesized(t *testing.T) {
	names, muts := parse(t, "(a, mut b)")
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []bool{false, true}, muts)

	names, _ = parse(t, "(a, b,)")
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestParseDirective_TrailingCommentCut(t *testing.T) {
	_, payload, _, ok := MatchDirective("//clonecap:clone x, y // keep these owned")
	require.True(t, ok)

	list, err := ParseDirective(payload, "test.go", Position{Line: 1, Column: 17})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, list.Names())
}

func TestParseDirective_UnicodeIdentifier(t *testing.T) {
	names, _ := parse(t, " zählwerk, état")
	assert.Equal(t, []string{"zählwerk", "état"}, names)
}

func TestParseDirective_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		message string
	}{
		{"empty", "", "empty capture list"},
		{"whitespace only", "   ", "empty capture list"},
		{"empty parens", "()", "empty capture list"},
		{"bare mut", " mut", "expected identifier after mut"},
		{"mut before comma", " mut, x", "expected identifier after mut"},
		{"double mut", " mut mut x", "duplicate mut qualifier"},
		{"leading comma", " , x", `expected identifier, got ","`},
		{"doubled comma", " x,, y", `expected identifier, got ","`},
		{"missing comma", " x y", `expected ',' between entries, got "y"`},
		{"unclosed paren", "(x", "unclosed '(' in capture list"},
		{"stray close paren", " x)", `unexpected ")"`},
		{"text after close paren", "(x) y", `unexpected "y" after ')'`},
		{"number entry", " 42", `expected identifier, got "4"`},
		{"dash in name", " x-y", `expected ',' between entries, got "-"`},
		{"keyword entry", " type", `cannot capture Go keyword "type"`},
		{"keyword after mut", " mut range", `cannot capture Go keyword "range"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirective(tt.payload, "test.go", Position{Line: 4, Column: 17})
			require.Error(t, err)
			parseErr, ok := err.(*ParseError)
			require.True(t, ok)
			assert.Equal(t, tt.message, parseErr.Message)
			assert.Equal(t, "test.go", parseErr.File)
			assert.Equal(t, 4, parseErr.Line)
		})
	}
}

func TestParseDirective_ErrorColumns(t *testing.T) {
	// Base column 17 is where the payload starts; "mut" begins one space in.
	_, err := ParseDirective(" x, mut", "test.go", Position{Line: 9, Column: 17})
	require.Error(t, err)
	parseErr := err.(*ParseError)
	// The error points past "mut" where the identifier should be.
	assert.Equal(t, 9, parseErr.Line)
	assert.Equal(t, 17+len(" x, mut"), parseErr.Column)
	assert.Equal(t, "test.go:9:24: expected identifier after mut", parseErr.Error())
}

func TestParseDirective_SpecifierPositions(t *testing.T) {
	list, err := ParseDirective(" a, mut b", "test.go", Position{Line: 3, Column: 17})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 3, list[0].Line)
	assert.Equal(t, 18, list[0].Column)
	// The mut entry is located at the qualifier, not the name.
	assert.Equal(t, 21, list[1].Column)
}

func TestMatchDirective(t *testing.T) {
	verb, payload, offset, ok := MatchDirective("//clonecap:clone x, mut y")
	require.True(t, ok)
	assert.Equal(t, "clone", verb)
	assert.Equal(t, " x, mut y", payload)
	assert.Equal(t, len("//clonecap:clone"), offset)

	verb, payload, _, ok = MatchDirective("//clonecap:clone(x)")
	require.True(t, ok)
	assert.Equal(t, "clone", verb)
	assert.Equal(t, "(x)", payload)

	verb, _, _, ok = MatchDirective("//clonecap:frobnicate x")
	require.True(t, ok)
	assert.Equal(t, "frobnicate", verb)

	verb, _, _, ok = MatchDirective("//clonecap:")
	require.True(t, ok)
	assert.Equal(t, "", verb)

	_, _, _, ok = MatchDirective("// clonecap:clone x")
	assert.False(t, ok)

	_, _, _, ok = MatchDirective("// plain comment")
	assert.False(t, ok)

	_, _, _, ok = MatchDirective("//go:generate stringer")
	assert.False(t, ok)
}

func TestLexer_Tokens(t *testing.T) {
	l := NewLexer("(mut état, x2)")

	expected := []Token{
		{Type: TokenLeftParen, Value: "(", Column: 1},
		{Type: TokenMut, Value: "mut", Column: 2},
		{Type: TokenWhitespace, Value: " ", Column: 5},
		{Type: TokenIdent, Value: "état", Column: 6},
		{Type: TokenComma, Value: ",", Column: 11},
		{Type: TokenWhitespace, Value: " ", Column: 12},
		{Type: TokenIdent, Value: "x2", Column: 13},
		{Type: TokenRightParen, Value: ")", Column: 15},
		{Type: TokenEOF, Value: "", Column: 16},
	}

	for i, want := range expected {
		tok := l.NextToken()
		assert.Equal(t, want, tok, "token %d", i)
	}
}
