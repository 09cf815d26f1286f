package js

import "fmt"

// ScanError is raised by the scanner for an unrecognized character or an
// unterminated string literal.
type ScanError struct {
	Line    int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseError is raised by the parser when a production's expected token
// is missing, grounded on parser.rs's consume() diagnostics (which the
// original only printed; here they're proper errors the caller can act
// on, while the parser itself carries on with the token at the cursor).
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("SyntaxError: %s (line %d)", e.Message, e.Line)
}
