package html

import "strings"

// characterReferenceState begins consuming a character reference from
// either data/RCDATA content or an attribute value (spec §4.2). It
// dispatches to the numeric sub-machine on '#' or attempts the longest
// named-reference match otherwise.
func characterReferenceState(t *Tokenizer) stateFn {
	t.tempBuf.Reset()
	t.tempBuf.WriteRune('&')
	r, ok := t.src.peek()
	if ok && isASCIIAlphanumeric(r) {
		return namedCharacterReferenceState
	}
	if ok && r == '#' {
		t.src.advance()
		t.tempBuf.WriteRune('#')
		return numericCharacterReferenceState
	}
	return flushCharRefAsLiteral(t)
}

// characterReferenceInAttributeState mirrors characterReferenceState but
// the result is appended to the attribute value buffer rather than
// emitted as character tokens.
func characterReferenceInAttributeState(t *Tokenizer) stateFn {
	return characterReferenceState(t)
}

func flushCharRefAsLiteral(t *Tokenizer) stateFn {
	t.flushTempBufAsCharacters()
	return t.returnState
}

// flushTempBufAsCharacters emits (or appends, in attribute context) the
// literal contents of tempBuf — used when a '&' turns out not to start a
// valid character reference.
func (t *Tokenizer) flushTempBufAsCharacters() {
	s := t.tempBuf.String()
	if t.inAttributeValue() {
		t.curAttrValue += s
		return
	}
	for _, c := range s {
		t.emitChar(c)
	}
}

// inAttributeValue reports whether the character reference currently being
// consumed is inside an attribute value, set by the attribute-value
// states right before they transition into characterReferenceState.
func (t *Tokenizer) inAttributeValue() bool {
	return t.charRefInAttr
}

func namedCharacterReferenceState(t *Tokenizer) stateFn {
	// Greedily consume ASCII alphanumerics (and a trailing ';') to build a
	// candidate string, then find the longest matching prefix.
	var candidate strings.Builder
	candidate.WriteRune('&')
	consumed := 0
	for {
		r, ok := t.src.peek()
		if !ok {
			break
		}
		if isASCIIAlphanumeric(r) || r == ';' {
			candidate.WriteRune(r)
			t.src.advance()
			consumed++
			if r == ';' {
				break
			}
			if consumed > 32 {
				break
			}
			continue
		}
		break
	}

	full := candidate.String()
	matched, repl, ok := longestNamedCharRefMatch(full)
	if !ok {
		t.src.rewind(consumed)
		return ambiguousAmpersandCheck(t)
	}

	// Rewind any runes consumed beyond the matched prefix.
	extra := len(full) - len(matched)
	if extra > 0 {
		t.src.rewind(runeLen(full[len(matched):]))
	}

	if t.inAttributeValue() {
		if !strings.HasSuffix(matched, ";") {
			next, nok := t.src.peek()
			if nok && (next == '=' || isASCIIAlphanumeric(next)) {
				t.tempBuf.Reset()
				t.tempBuf.WriteString(matched)
				t.flushTempBufAsCharacters()
				return t.returnState
			}
		}
		t.curAttrValue += repl
		if !strings.HasSuffix(matched, ";") {
			t.emitError(MissingSemicolonAfterCharacterReference)
		}
		return t.returnState
	}

	if !strings.HasSuffix(matched, ";") {
		t.emitError(MissingSemicolonAfterCharacterReference)
	}
	for _, c := range repl {
		t.emitChar(c)
	}
	return t.returnState
}

func runeLen(s string) int {
	return len([]rune(s))
}

func ambiguousAmpersandCheck(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && isASCIIAlphanumeric(r) {
		t.src.advance()
		if t.inAttributeValue() {
			t.curAttrValue += string(r)
		} else {
			t.emitChar(r)
		}
		return ambiguousAmpersandCheck(t)
	}
	if ok && r == ';' {
		t.src.advance()
		t.emitError(UnknownNamedCharacterReference)
	}
	t.flushAmpersand()
	return t.returnState
}

func (t *Tokenizer) flushAmpersand() {
	if t.inAttributeValue() {
		t.curAttrValue += "&"
		return
	}
	t.emitChar('&')
}

func numericCharacterReferenceState(t *Tokenizer) stateFn {
	t.charRefCode = 0
	r, ok := t.src.peek()
	if ok && (r == 'x' || r == 'X') {
		t.src.advance()
		t.tempBuf.WriteRune(r)
		return hexCharacterReferenceStartState
	}
	return decimalCharacterReferenceStartState
}

func hexCharacterReferenceStartState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && isHexDigit(r) {
		return hexCharacterReferenceState
	}
	t.emitError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufAsCharacters()
	return t.returnState
}

func hexCharacterReferenceState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if ok && isHexDigit(r) {
		t.charRefCode = t.charRefCode*16 + hexValue(r)
		return hexCharacterReferenceState
	}
	if ok && r == ';' {
		return numericCharacterReferenceEndState
	}
	if ok {
		t.src.rewind(1)
	}
	t.emitError(MissingSemicolonAfterCharacterReference)
	return numericCharacterReferenceEndState
}

func decimalCharacterReferenceStartState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if ok && isASCIIDigit(r) {
		return decimalCharacterReferenceState
	}
	t.emitError(AbsenceOfDigitsInNumericCharacterReference)
	t.flushTempBufAsCharacters()
	return t.returnState
}

func decimalCharacterReferenceState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if ok && isASCIIDigit(r) {
		t.charRefCode = t.charRefCode*10 + uint32(r-'0')
		return decimalCharacterReferenceState
	}
	if ok && r == ';' {
		return numericCharacterReferenceEndState
	}
	if ok {
		t.src.rewind(1)
	}
	t.emitError(MissingSemicolonAfterCharacterReference)
	return numericCharacterReferenceEndState
}

func numericCharacterReferenceEndState(t *Tokenizer) stateFn {
	result, perr := sanitizeNumericCharRef(t.charRefCode)
	if perr != nil {
		t.emitError(*perr)
	}
	if t.inAttributeValue() {
		t.curAttrValue += string(result)
	} else {
		t.emitChar(result)
	}
	return t.returnState
}

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) uint32 {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0')
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10
	default:
		return uint32(r-'A') + 10
	}
}
