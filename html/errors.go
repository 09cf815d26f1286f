package html

import "fmt"

// ParseErrorCode is the closed enumeration of HTML parse errors from
// spec §7. Parse errors are diagnostic: processing never aborts because
// of one.
type ParseErrorCode int

const (
	UnexpectedNullCharacter ParseErrorCode = iota
	EndOfFileBeforeTagName
	InvalidFirstCharacterOfTagName
	DuplicateAttribute
	MissingSemicolonAfterCharacterReference
	AbruptClosingOfEmptyComment
	EndOfFileInTag
	EndOfFileInDoctype
	EndOfFileInComment
	EndOfFileInCDATA
	MissingDoctypeName
	MissingWhitespaceBeforeDoctypeName
	UnexpectedCharacterInAttributeName
	UnexpectedCharacterInUnquotedAttributeValue
	MissingAttributeValue
	MissingWhitespaceBetweenAttributes
	CDATAInHTMLContent
	IncorrectlyOpenedComment
	NestedComment
	UnknownNamedCharacterReference
	AbsenceOfDigitsInNumericCharacterReference
	ControlCharacterReference
	SurrogateCharacterReference
	NoncharacterCharacterReference
	NullCharacterReference
	CharacterReferenceOutsideUnicodeRange
	UnexpectedEqualsSignBeforeAttributeName
	UnexpectedQuestionMarkInsteadOfTagName
	UnexpectedDoctype
	UnexpectedEndTag
)

var parseErrorNames = map[ParseErrorCode]string{
	UnexpectedNullCharacter:                     "unexpected-null-character",
	EndOfFileBeforeTagName:                      "eof-before-tag-name",
	InvalidFirstCharacterOfTagName:               "invalid-first-character-of-tag-name",
	DuplicateAttribute:                           "duplicate-attribute",
	MissingSemicolonAfterCharacterReference:      "missing-semicolon-after-character-reference",
	AbruptClosingOfEmptyComment:                  "abrupt-closing-of-empty-comment",
	EndOfFileInTag:                               "eof-in-tag",
	EndOfFileInDoctype:                           "eof-in-doctype",
	EndOfFileInComment:                           "eof-in-comment",
	EndOfFileInCDATA:                             "eof-in-cdata",
	MissingDoctypeName:                           "missing-doctype-name",
	MissingWhitespaceBeforeDoctypeName:           "missing-whitespace-before-doctype-name",
	UnexpectedCharacterInAttributeName:           "unexpected-character-in-attribute-name",
	UnexpectedCharacterInUnquotedAttributeValue:  "unexpected-character-in-unquoted-attribute-value",
	MissingAttributeValue:                        "missing-attribute-value",
	MissingWhitespaceBetweenAttributes:           "missing-whitespace-between-attributes",
	CDATAInHTMLContent:                           "cdata-in-html-content",
	IncorrectlyOpenedComment:                     "incorrectly-opened-comment",
	NestedComment:                                "nested-comment",
	UnknownNamedCharacterReference:               "unknown-named-character-reference",
	AbsenceOfDigitsInNumericCharacterReference:    "absence-of-digits-in-numeric-character-reference",
	ControlCharacterReference:                    "control-character-reference",
	SurrogateCharacterReference:                  "surrogate-character-reference",
	NoncharacterCharacterReference:               "noncharacter-character-reference",
	NullCharacterReference:                       "null-character-reference",
	CharacterReferenceOutsideUnicodeRange:         "character-reference-outside-unicode-range",
	UnexpectedEqualsSignBeforeAttributeName:       "unexpected-equals-sign-before-attribute-name",
	UnexpectedQuestionMarkInsteadOfTagName:        "unexpected-question-mark-instead-of-tag-name",
	UnexpectedDoctype:                             "unexpected-doctype",
	UnexpectedEndTag:                              "unexpected-end-tag",
}

func (c ParseErrorCode) String() string {
	if name, ok := parseErrorNames[c]; ok {
		return name
	}
	return "unknown-parse-error"
}

// ParseError wraps a ParseErrorCode as an error value, so callers that
// want one (e.g. tests asserting on error codes) can use
// errors.Is/errors.As. The tokenizer and tree constructor themselves
// report bare ParseErrorCode values, never a ParseError, through
// TokenHandler.HandleParseError (see Tokenizer.Handler) and
// TreeBuilder.OnParseError; parsing never stops because of one.
//
// Grounded on chtml/err.go's typed-error shape (Error/Is) generalized to a
// closed enum instead of CHTML's free-form messages.
type ParseError struct {
	Code ParseErrorCode
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Code)
}

func (e *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
