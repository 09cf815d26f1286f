package html

import "strings"

// stateFn is one state of the tokenizer's ~80-state machine (spec §4.2).
// Each state consumes zero or more runes from the source and returns the
// next state to run, or nil when tokenization is finished.
//
// Grounded on the stateFn pattern used throughout chtml/expr.go's lexer
// ("Lexical Scanning in Go"), generalized from an expression lexer to the
// WHATWG HTML tokenizer's state set.
type stateFn func(*Tokenizer) stateFn

// TokenHandler receives tokens and parse errors as the tokenizer produces
// them. The tree constructor implements this to drive tree construction
// token-by-token without buffering the whole stream.
type TokenHandler interface {
	HandleToken(Token)
	HandleParseError(ParseErrorCode)
}

// Tokenizer implements the HTML tokenizer state machine (component B).
type Tokenizer struct {
	src *byteSource

	state        stateFn
	returnState  stateFn
	Handler      TokenHandler

	tok          Token
	buf          strings.Builder
	tempBuf      strings.Builder
	charRefCode  uint32
	lastStartTag string

	curAttrName       string
	curAttrValue      string
	pendingAttrName   string
	pendingAttrDup    bool
	charRefInAttr     bool
}

// NewTokenizer constructs a tokenizer over input, reporting tokens and
// parse errors to h.
func NewTokenizer(input string, h TokenHandler) *Tokenizer {
	t := &Tokenizer{
		src:     newByteSource(input),
		Handler: h,
	}
	t.state = dataState
	return t
}

// Run drives the state machine to completion, emitting tokens to Handler
// as it goes. It stops after the EndOfFile token is emitted.
func (t *Tokenizer) Run() {
	for t.state != nil {
		t.state = t.state(t)
	}
}

func (t *Tokenizer) emitError(code ParseErrorCode) {
	if t.Handler != nil {
		t.Handler.HandleParseError(code)
	}
}

func (t *Tokenizer) emit(tok Token) {
	if tok.Kind == StartTagToken {
		t.lastStartTag = tok.TagName
	}
	if t.Handler != nil {
		t.Handler.HandleToken(tok)
	}
}

func (t *Tokenizer) emitChar(r rune) {
	t.emit(Token{Kind: CharacterToken, Data: string(r)})
}

func (t *Tokenizer) emitEOF() {
	t.emit(Token{Kind: EndOfFileToken})
}

// appropriateEndTagToken reports whether the currently buffered end tag
// (t.tok, already TagName-populated) matches the most recent start tag
// name — the condition under which an end tag inside a RAWTEXT/script
// data state is treated as a real tag rather than character data.
//
// Fixes spec §9 item 5: compares against the tokenizer's own record of the
// last emitted start tag, not a stale tree-constructor field.
func (t *Tokenizer) appropriateEndTagToken() bool {
	return t.lastStartTag != "" && t.tok.TagName == t.lastStartTag
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool { return isASCIIUpper(r) || isASCIILower(r) }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
func isASCIIAlphanumeric(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) }
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ', '\r':
		return true
	}
	return false
}
func toLower(r rune) rune {
	if isASCIIUpper(r) {
		return r + 0x20
	}
	return r
}

// dataState is the tokenizer's entry state (spec §4.2): plain character
// data outside any tag, punctuated by '<' (tag open) and '&' (character
// reference).
func dataState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitEOF()
		return nil
	}
	switch r {
	case '&':
		t.returnState = dataState
		t.charRefInAttr = false
		return characterReferenceState
	case '<':
		return tagOpenState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.emitChar(r)
		return dataState
	default:
		t.emitChar(r)
		return dataState
	}
}

// rcdataState handles character data inside elements whose content model
// still allows character references (e.g. <title>, <textarea>). No
// transition enters this state yet, so such content is tokenized by
// dataState.
func rcdataState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitEOF()
		return nil
	}
	switch r {
	case '&':
		t.returnState = rcdataState
		t.charRefInAttr = false
		return characterReferenceState
	case '<':
		return rcdataLessThanSignState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.emitChar('�')
		return rcdataState
	default:
		t.emitChar(r)
		return rcdataState
	}
}

// rawtextState handles character data inside elements with no character
// references at all (e.g. <style>, <script> uses a further scriptData
// variant not modeled here — spec scopes script/CDATA sections out). No
// transition enters this state, so such content is tokenized by dataState.
func rawtextState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitEOF()
		return nil
	}
	switch r {
	case '<':
		return rawtextLessThanSignState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.emitChar('�')
		return rawtextState
	default:
		t.emitChar(r)
		return rawtextState
	}
}

func rcdataLessThanSignState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && r == '/' {
		t.src.advance()
		t.tempBuf.Reset()
		return rcdataEndTagOpenState
	}
	t.emitChar('<')
	return rcdataState
}

func rcdataEndTagOpenState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && isASCIIAlpha(r) {
		t.tok = Token{Kind: EndTagToken}
		return rcdataEndTagNameState
	}
	t.emitChar('<')
	t.emitChar('/')
	return rcdataState
}

func rcdataEndTagNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if ok && isASCIIAlpha(r) {
		t.tok.TagName += string(toLower(r))
		t.tempBuf.WriteRune(r)
		return rcdataEndTagNameState
	}
	if ok && isWhitespace(r) && t.appropriateEndTagToken() {
		return beforeAttributeNameState
	}
	if ok && r == '/' && t.appropriateEndTagToken() {
		return selfClosingStartTagState
	}
	if ok && r == '>' && t.appropriateEndTagToken() {
		t.emit(t.tok)
		return dataState
	}
	t.emitChar('<')
	t.emitChar('/')
	for _, c := range t.tempBuf.String() {
		t.emitChar(c)
	}
	if ok {
		t.src.rewind(1)
	}
	return rcdataState
}

func rawtextLessThanSignState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && r == '/' {
		t.src.advance()
		t.tempBuf.Reset()
		return rawtextEndTagOpenState
	}
	t.emitChar('<')
	return rawtextState
}

func rawtextEndTagOpenState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && isASCIIAlpha(r) {
		t.tok = Token{Kind: EndTagToken}
		return rawtextEndTagNameState
	}
	t.emitChar('<')
	t.emitChar('/')
	return rawtextState
}

func rawtextEndTagNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if ok && isASCIIAlpha(r) {
		t.tok.TagName += string(toLower(r))
		t.tempBuf.WriteRune(r)
		return rawtextEndTagNameState
	}
	if ok && isWhitespace(r) && t.appropriateEndTagToken() {
		return beforeAttributeNameState
	}
	if ok && r == '/' && t.appropriateEndTagToken() {
		return selfClosingStartTagState
	}
	if ok && r == '>' && t.appropriateEndTagToken() {
		t.emit(t.tok)
		return dataState
	}
	t.emitChar('<')
	t.emitChar('/')
	for _, c := range t.tempBuf.String() {
		t.emitChar(c)
	}
	if ok {
		t.src.rewind(1)
	}
	return rawtextState
}

// tagOpenState dispatches '<' to start-tag, end-tag, markup-declaration,
// bogus-comment, or a literal '<' character, per spec §4.2.
func tagOpenState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		t.emitError(EndOfFileBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
		return nil
	}
	switch {
	case r == '!':
		t.src.advance()
		return markupDeclarationOpenState
	case r == '/':
		t.src.advance()
		return endTagOpenState
	case isASCIIAlpha(r):
		t.tok = Token{Kind: StartTagToken}
		return tagNameState
	case r == '?':
		t.emitError(UnexpectedQuestionMarkInsteadOfTagName)
		t.tok = Token{Kind: CommentToken}
		return bogusCommentState
	default:
		t.emitError(InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		return dataState
	}
}

func endTagOpenState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		t.emitError(EndOfFileBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF()
		return nil
	}
	switch {
	case isASCIIAlpha(r):
		t.tok = Token{Kind: EndTagToken}
		return tagNameState
	case r == '>':
		t.src.advance()
		t.emitError(InvalidFirstCharacterOfTagName)
		return dataState
	default:
		t.emitError(InvalidFirstCharacterOfTagName)
		t.tok = Token{Kind: CommentToken}
		return bogusCommentState
	}
}

// markupDeclarationOpenState handles "<!--" (comment), "<!DOCTYPE"
// (doctype), and "<![CDATA[" (rejected per spec's CDATA non-goal) per
// spec §4.2.
func markupDeclarationOpenState(t *Tokenizer) stateFn {
	if t.matchLiteral("--") {
		t.tok = Token{Kind: CommentToken}
		t.buf.Reset()
		return commentStartState
	}
	if t.matchLiteralFold("DOCTYPE") {
		return doctypeState
	}
	if t.matchLiteral("[CDATA[") {
		t.emitError(CDATAInHTMLContent)
		t.tok = Token{Kind: CommentToken, Data: "[CDATA["}
		return bogusCommentState
	}
	t.emitError(IncorrectlyOpenedComment)
	t.tok = Token{Kind: CommentToken}
	t.buf.Reset()
	return bogusCommentState
}

// matchLiteral consumes exactly s if the upcoming input matches it,
// rewinding on failure. Per DESIGN.md fix #6, it never rewinds on success.
func (t *Tokenizer) matchLiteral(s string) bool {
	n := 0
	for _, want := range s {
		r, ok := t.src.advance()
		if ok {
			n++
		}
		if !ok || r != want {
			t.src.rewind(n)
			return false
		}
	}
	return true
}

// matchLiteralFold is matchLiteral with ASCII case-insensitive comparison,
// used for the "DOCTYPE" keyword.
func (t *Tokenizer) matchLiteralFold(s string) bool {
	n := 0
	for _, want := range s {
		r, ok := t.src.advance()
		if ok {
			n++
		}
		if !ok || toLower(r) != toLower(want) {
			t.src.rewind(n)
			return false
		}
	}
	return true
}
