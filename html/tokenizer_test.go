package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type collectingHandler struct {
	tokens []Token
	errs   []ParseErrorCode
}

func (h *collectingHandler) HandleToken(t Token)          { h.tokens = append(h.tokens, t) }
func (h *collectingHandler) HandleParseError(c ParseErrorCode) { h.errs = append(h.errs, c) }

func tokenize(input string) *collectingHandler {
	h := &collectingHandler{}
	tok := NewTokenizer(input, h)
	tok.Run()
	return h
}

func TestTokenizerPlainText(t *testing.T) {
	h := tokenize("hello")
	var text string
	for _, tok := range h.tokens {
		if tok.Kind == CharacterToken {
			text += tok.Data
		}
	}
	assert.Equal(t, "hello", text)
	assert.Equal(t, EndOfFileToken, h.tokens[len(h.tokens)-1].Kind)
}

func TestTokenizerStartAndEndTag(t *testing.T) {
	h := tokenize("<div class=\"a\">x</div>")
	assert.Equal(t, StartTagToken, h.tokens[0].Kind)
	assert.Equal(t, "div", h.tokens[0].TagName)
	v, ok := h.tokens[0].attr("class")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	var sawEndTag bool
	for _, tok := range h.tokens {
		if tok.Kind == EndTagToken && tok.TagName == "div" {
			sawEndTag = true
		}
	}
	assert.True(t, sawEndTag)
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	h := tokenize("<br/>")
	assert.Equal(t, StartTagToken, h.tokens[0].Kind)
	assert.True(t, h.tokens[0].SelfClosing)
}

func TestTokenizerNullCharacterInData(t *testing.T) {
	h := tokenize("a\x00b")
	assert.Contains(t, h.errs, UnexpectedNullCharacter)
	var text string
	for _, tok := range h.tokens {
		if tok.Kind == CharacterToken {
			text += tok.Data
		}
	}
	assert.Equal(t, "a\x00b", text)
}

func TestTokenizerNamedCharacterReference(t *testing.T) {
	h := tokenize("a&amp;b")
	var text string
	for _, tok := range h.tokens {
		if tok.Kind == CharacterToken {
			text += tok.Data
		}
	}
	assert.Equal(t, "a&b", text)
}

func TestTokenizerNamedCharacterReferenceNoSemicolon(t *testing.T) {
	h := tokenize("a&ampb")
	assert.Contains(t, h.errs, MissingSemicolonAfterCharacterReference)
}

func TestTokenizerDecimalCharacterReference(t *testing.T) {
	h := tokenize("&#65;")
	assert.Equal(t, CharacterToken, h.tokens[0].Kind)
	assert.Equal(t, "A", h.tokens[0].Data)
}

func TestTokenizerHexCharacterReference(t *testing.T) {
	h := tokenize("&#x41;")
	assert.Equal(t, CharacterToken, h.tokens[0].Kind)
	assert.Equal(t, "A", h.tokens[0].Data)
}

func TestTokenizerNullCharacterReferenceIsReplacementChar(t *testing.T) {
	h := tokenize("&#0;")
	assert.Equal(t, "�", h.tokens[0].Data)
	assert.Contains(t, h.errs, NullCharacterReference)
}

func TestTokenizerComment(t *testing.T) {
	h := tokenize("<!-- hi -->")
	assert.Equal(t, CommentToken, h.tokens[0].Kind)
	assert.Equal(t, " hi ", h.tokens[0].Data)
}

func TestTokenizerAbruptClosingOfEmptyComment(t *testing.T) {
	h := tokenize("<!-->")
	assert.Contains(t, h.errs, AbruptClosingOfEmptyComment)
}

func TestTokenizerDoctype(t *testing.T) {
	h := tokenize("<!DOCTYPE html>")
	assert.Equal(t, DoctypeToken, h.tokens[0].Kind)
	assert.Equal(t, "html", h.tokens[0].Name)
	assert.False(t, h.tokens[0].ForceQuirks)
}

func TestTokenizerDuplicateAttribute(t *testing.T) {
	h := tokenize("<div a=\"1\" a=\"2\">")
	assert.Contains(t, h.errs, DuplicateAttribute)
	v, _ := h.tokens[0].attr("a")
	assert.Equal(t, "1", v)
}

func TestTokenizerEOFBeforeTagName(t *testing.T) {
	h := tokenize("<")
	assert.Contains(t, h.errs, EndOfFileBeforeTagName)
}
