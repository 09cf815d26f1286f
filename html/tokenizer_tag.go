package html

// tagNameState accumulates a start/end tag's name (spec §4.2).
func tagNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		return beforeAttributeNameState
	case r == '/':
		return selfClosingStartTagState
	case r == '>':
		t.emit(t.tok)
		return dataState
	case isASCIIUpper(r):
		t.tok.TagName += string(toLower(r))
		return tagNameState
	case r == 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.tok.TagName += "�"
		return tagNameState
	default:
		t.tok.TagName += string(r)
		return tagNameState
	}
}

func selfClosingStartTagState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	if r == '>' {
		t.tok.SelfClosing = true
		t.emit(t.tok)
		return dataState
	}
	t.emitError(UnexpectedCharacterInUnquotedAttributeValue)
	t.src.rewind(1)
	return beforeAttributeNameState
}

func beforeAttributeNameState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		return afterAttributeNameFinish(t)
	}
	switch {
	case isWhitespace(r):
		t.src.advance()
		return beforeAttributeNameState
	case r == '/' || r == '>':
		return afterAttributeNameFinish(t)
	case r == '=':
		t.src.advance()
		t.emitError(UnexpectedEqualsSignBeforeAttributeName)
		t.curAttrName = string(r)
		t.curAttrValue = ""
		return attributeNameState
	default:
		t.curAttrName = ""
		t.curAttrValue = ""
		return attributeNameState
	}
}

func afterAttributeNameFinish(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch {
	case r == '/':
		return selfClosingStartTagState
	case r == '>':
		t.emit(t.tok)
		return dataState
	default:
		t.src.rewind(1)
		t.curAttrName = ""
		t.curAttrValue = ""
		return attributeNameState
	}
}

func attributeNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		return finishAttributeName(t, true)
	}
	switch {
	case isWhitespace(r), r == '/', r == '>':
		t.src.rewind(1)
		return finishAttributeName(t, false)
	case r == '=':
		return finishAttributeNameThen(t, beforeAttributeValueState)
	case isASCIIUpper(r):
		t.curAttrName += string(toLower(r))
		return attributeNameState
	case r == 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrName += "�"
		return attributeNameState
	case r == '"' || r == '\'' || r == '<':
		t.emitError(UnexpectedCharacterInAttributeName)
		t.curAttrName += string(r)
		return attributeNameState
	default:
		t.curAttrName += string(r)
		return attributeNameState
	}
}

func finishAttributeName(t *Tokenizer, eof bool) stateFn {
	if t.tok.setAttr(t.curAttrName, t.curAttrValue) {
		t.emitError(DuplicateAttribute)
	}
	if eof {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	return beforeAttributeNameState
}

func finishAttributeNameThen(t *Tokenizer, next stateFn) stateFn {
	t.pendingAttrDup = t.tok.setAttr(t.curAttrName, t.curAttrValue)
	if t.pendingAttrDup {
		t.emitError(DuplicateAttribute)
	}
	t.pendingAttrName = t.curAttrName
	return next
}

func beforeAttributeValueState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		return attributeValueUnquotedState
	}
	switch {
	case isWhitespace(r):
		t.src.advance()
		return beforeAttributeValueState
	case r == '"':
		t.src.advance()
		t.curAttrValue = ""
		return attributeValueDoubleQuotedState
	case r == '\'':
		t.src.advance()
		t.curAttrValue = ""
		return attributeValueSingleQuotedState
	case r == '>':
		t.emitError(MissingAttributeValue)
		t.src.advance()
		t.emit(t.tok)
		return dataState
	default:
		t.curAttrValue = ""
		return attributeValueUnquotedState
	}
}

func attributeValueDoubleQuotedState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch r {
	case '"':
		t.updatePendingAttrValue()
		return afterAttributeValueQuotedState
	case '&':
		t.returnState = attributeValueDoubleQuotedState
		t.charRefInAttr = true
		return characterReferenceInAttributeState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrValue += "�"
		return attributeValueDoubleQuotedState
	default:
		t.curAttrValue += string(r)
		return attributeValueDoubleQuotedState
	}
}

func attributeValueSingleQuotedState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch r {
	case '\'':
		t.updatePendingAttrValue()
		return afterAttributeValueQuotedState
	case '&':
		t.returnState = attributeValueSingleQuotedState
		t.charRefInAttr = true
		return characterReferenceInAttributeState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrValue += "�"
		return attributeValueSingleQuotedState
	default:
		t.curAttrValue += string(r)
		return attributeValueSingleQuotedState
	}
}

func attributeValueUnquotedState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		t.updatePendingAttrValue()
		return beforeAttributeNameState
	case r == '&':
		t.returnState = attributeValueUnquotedState
		t.charRefInAttr = true
		return characterReferenceInAttributeState
	case r == '>':
		t.updatePendingAttrValue()
		t.emit(t.tok)
		return dataState
	case r == 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.curAttrValue += "�"
		return attributeValueUnquotedState
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.emitError(UnexpectedCharacterInUnquotedAttributeValue)
		t.curAttrValue += string(r)
		return attributeValueUnquotedState
	default:
		t.curAttrValue += string(r)
		return attributeValueUnquotedState
	}
}

// updatePendingAttrValue writes the accumulated value into the attribute
// most recently added to t.tok by finishAttributeNameThen.
func (t *Tokenizer) updatePendingAttrValue() {
	if t.pendingAttrDup {
		return
	}
	for i := range t.tok.Attributes {
		if t.tok.Attributes[i].Name == t.pendingAttrName {
			t.tok.Attributes[i].Value = t.curAttrValue
			return
		}
	}
}

func afterAttributeValueQuotedState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInTag)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		return beforeAttributeNameState
	case r == '/':
		return selfClosingStartTagState
	case r == '>':
		t.emit(t.tok)
		return dataState
	default:
		t.emitError(MissingWhitespaceBetweenAttributes)
		t.src.rewind(1)
		return beforeAttributeNameState
	}
}

func bogusCommentState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	switch r {
	case '>':
		t.emit(t.tok)
		return dataState
	case 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.tok.Data += "�"
		return bogusCommentState
	default:
		t.tok.Data += string(r)
		return bogusCommentState
	}
}
