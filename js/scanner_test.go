package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerBasicTokens(t *testing.T) {
	toks, errs := NewScanner("(1 + 2) * 3").ScanTokens()
	assert.Empty(t, errs)

	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{
		LeftParen, Number, Plus, Number, RightParen, Star, Number, EOF,
	}, types)
}

func TestScannerString(t *testing.T) {
	toks, errs := NewScanner(`"hello"`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, String, toks[0].Type)
	assert.Equal(t, "hello", toks[0].Literal.Str)
}

func TestScannerUnterminatedString(t *testing.T) {
	_, errs := NewScanner(`"hello`).ScanTokens()
	assert.Len(t, errs, 1)
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	toks, _ := NewScanner("var x = true").ScanTokens()
	assert.Equal(t, Var, toks[0].Type)
	assert.Equal(t, Identifier, toks[1].Type)
	assert.Equal(t, "x", toks[1].Lexeme)
	assert.Equal(t, Equal, toks[2].Type)
	assert.Equal(t, True, toks[3].Type)
}

func TestScannerLineComment(t *testing.T) {
	toks, _ := NewScanner("1 // comment\n2").ScanTokens()
	assert.Equal(t, Number, toks[0].Type)
	assert.Equal(t, Number, toks[1].Type)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScannerNumberWithFraction(t *testing.T) {
	toks, _ := NewScanner("3.14").ScanTokens()
	assert.Equal(t, Number, toks[0].Type)
	assert.Equal(t, 3.14, toks[0].Literal.Num)
}
