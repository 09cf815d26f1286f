package html

// doctypeState is entered right after "<!DOCTYPE" has been consumed (spec
// §4.2). It handles a minimal DOCTYPE grammar: only the name is
// recognized. PUBLIC/SYSTEM identifiers are not parsed; anything after
// the name is an UnexpectedDoctype error, sets ForceQuirks and is skipped
// as a bogus doctype, so PublicIdentifier and SystemIdentifier stay unset.
func doctypeState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		t.emitError(EndOfFileInDoctype)
		t.tok = Token{Kind: DoctypeToken, ForceQuirks: true}
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	t.tok = Token{Kind: DoctypeToken}
	if isWhitespace(r) {
		t.src.advance()
		return beforeDoctypeNameState
	}
	return beforeDoctypeNameState
}

func beforeDoctypeNameState(t *Tokenizer) stateFn {
	r, ok := t.src.peek()
	if !ok {
		t.emitError(EndOfFileInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		t.src.advance()
		return beforeDoctypeNameState
	case r == '>':
		t.src.advance()
		t.emitError(MissingDoctypeName)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		return dataState
	default:
		return doctypeNameState
	}
}

func doctypeNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		return afterDoctypeNameState
	case r == '>':
		t.emit(t.tok)
		return dataState
	case isASCIIUpper(r):
		t.tok.Name += string(toLower(r))
		return doctypeNameState
	case r == 0x00:
		t.emitError(UnexpectedNullCharacter)
		t.tok.Name += "�"
		return doctypeNameState
	default:
		t.tok.Name += string(r)
		return doctypeNameState
	}
}

func afterDoctypeNameState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emitError(EndOfFileInDoctype)
		t.tok.ForceQuirks = true
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	switch {
	case isWhitespace(r):
		return afterDoctypeNameState
	case r == '>':
		t.emit(t.tok)
		return dataState
	default:
		t.emitError(UnexpectedDoctype)
		t.tok.ForceQuirks = true
		t.src.rewind(1)
		return bogusDoctypeState
	}
}

func bogusDoctypeState(t *Tokenizer) stateFn {
	r, ok := t.src.advance()
	if !ok {
		t.emit(t.tok)
		t.emitEOF()
		return nil
	}
	if r == '>' {
		t.emit(t.tok)
		return dataState
	}
	if r == 0x00 {
		t.emitError(UnexpectedNullCharacter)
	}
	return bogusDoctypeState
}
