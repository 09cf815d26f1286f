package html

// namedCharRefs maps entity strings (including the leading "&") to their
// replacement text. Lookup in the tokenizer matches the longest prefix
// present here, per spec §4.2. This is a representative subset of the
// WHATWG named character reference table — large enough to exercise the
// semicolon/no-semicolon and attribute-context rules spec §8 tests against,
// not the full ~2000-entry table (which golang.org/x/net/html keeps
// unexported and unvendored, so there is nothing in the corpus to carry
// forward verbatim; this table is hand-built from the entities spec.md
// names explicitly: &amp;, &amp, &lt;, &gt;, &AElig;).
var namedCharRefs = map[string]string{
	"&amp;":  "&",
	"&amp":   "&",
	"&lt;":   "<",
	"&lt":    "<",
	"&gt;":   ">",
	"&gt":    ">",
	"&quot;": "\"",
	"&quot":  "\"",
	"&apos;": "'",
	"&AElig;": "Æ",
	"&AElig":  "Æ",
	"&aelig;": "æ",
	"&aelig":  "æ",
	"&nbsp;":  " ",
	"&nbsp":   " ",
	"&copy;":  "©",
	"&copy":   "©",
}

// longestNamedCharRefMatch finds the longest prefix of s (s must start with
// "&") present in namedCharRefs. Returns the matched key and its
// replacement, or ("", "", false) if no entry matches any prefix.
func longestNamedCharRefMatch(s string) (matched, replacement string, ok bool) {
	best := -1
	for key, repl := range namedCharRefs {
		if len(key) <= best {
			continue
		}
		if len(key) <= len(s) && s[:len(key)] == key {
			best = len(key)
			matched = key
			replacement = repl
			ok = true
		}
	}
	return matched, replacement, ok
}

// win1252Overlay maps the C1 control range 0x80-0x9F onto the legacy
// Windows-1252 code points numeric character references are historically
// expected to produce, per spec §4.2.
var win1252Overlay = map[rune]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}

// sanitizeNumericCharRef maps the accumulated character reference code
// through the Windows-1252 overlay then the replacement/error rules of
// spec §4.2. It returns the resulting rune and any parse error raised.
//
// Fixes spec §9 item 4: the surrogate range check uses && (both bounds),
// not the original's buggy || (which matched every code point).
func sanitizeNumericCharRef(code uint32) (r rune, perr *ParseErrorCode) {
	if code == 0 {
		e := NullCharacterReference
		return '�', &e
	}
	if code > 0x10FFFF {
		e := CharacterReferenceOutsideUnicodeRange
		return '�', &e
	}
	if overlay, ok := win1252Overlay[rune(code)]; ok {
		return overlay, nil
	}
	if code >= 0xD800 && code <= 0xDFFF {
		e := SurrogateCharacterReference
		return '�', &e
	}
	if isNoncharacter(rune(code)) {
		e := NoncharacterCharacterReference
		return rune(code), &e
	}
	if isControlReferenceCode(code) {
		e := ControlCharacterReference
		return rune(code), &e
	}
	return rune(code), nil
}

func isNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	switch r & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func isControlReferenceCode(code uint32) bool {
	if code <= 0x1F {
		switch code {
		case 0x09, 0x0A, 0x0C:
			return false
		}
		return true
	}
	return code >= 0x7F && code <= 0x9F
}
