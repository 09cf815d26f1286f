// Package js implements an ECMAScript scanner, recursive-descent parser
// and AST printer over a small expression/statement subset of the
// language; the tree-walking interpreter lives in package js/runtime.
package js

import "fmt"

// TokenType enumerates the lexical token kinds, grounded 1:1 on
// original_source/src/token.rs's TokenType enum.
type TokenType int

const (
	// Single-character tokens.
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	BitwiseNot
	Colon

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Reserved keywords (https://tc39.es/ecma262/#prod-ReservedWord).
	Class
	Else
	False
	For
	If
	Null
	Return
	Super
	This
	True
	Var
	While
	Await
	Break
	Case
	Catch
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Enum
	Export
	Extends
	Finally
	Function
	Import
	In
	Instanceof
	New
	Switch
	Throw
	Try
	Typeof
	Void
	With
	Yield

	EOF
)

var tokenTypeNames = map[TokenType]string{
	LeftParen: "LeftParen", RightParen: "RightParen", LeftBrace: "LeftBrace",
	RightBrace: "RightBrace", Comma: "Comma", Dot: "Dot", Minus: "Minus",
	Plus: "Plus", Semicolon: "Semicolon", Slash: "Slash", Star: "Star",
	BitwiseNot: "BitwiseNot", Colon: "Colon", Bang: "Bang",
	BangEqual: "BangEqual", Equal: "Equal", EqualEqual: "EqualEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual", Less: "Less",
	LessEqual: "LessEqual", Identifier: "Identifier", String: "String",
	Number: "Number", Class: "Class", Else: "Else", False: "False",
	For: "For", If: "If", Null: "Null", Return: "Return", Super: "Super",
	This: "This", True: "True", Var: "Var", While: "While", Await: "Await",
	Break: "Break", Case: "Case", Catch: "Catch", Const: "Const",
	Continue: "Continue", Debugger: "Debugger", Default: "Default",
	Delete: "Delete", Do: "Do", Enum: "Enum", Export: "Export",
	Extends: "Extends", Finally: "Finally", Function: "Function",
	Import: "Import", In: "In", Instanceof: "Instanceof", New: "New",
	Switch: "Switch", Throw: "Throw", Try: "Try", Typeof: "Typeof",
	Void: "Void", With: "With", Yield: "Yield", EOF: "EOF",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "Unknown"
}

// reservedKeywords maps identifier text to its reserved keyword token
// type (https://tc39.es/ecma262/#prod-ReservedWord), grounded 1:1 on
// scanner.rs's reserved_keywords table.
var reservedKeywords = map[string]TokenType{
	"await": Await, "break": Break, "case": Case, "catch": Catch,
	"class": Class, "const": Const, "continue": Continue,
	"debugger": Debugger, "default": Default, "delete": Delete, "do": Do,
	"else": Else, "enum": Enum, "export": Export, "extends": Extends,
	"false": False, "finally": Finally, "for": For, "function": Function,
	"if": If, "import": Import, "in": In, "instanceof": Instanceof,
	"new": New, "null": Null, "return": Return, "super": Super,
	"switch": Switch, "this": This, "throw": Throw, "true": True,
	"try": Try, "typeof": Typeof, "var": Var, "void": Void,
	"while": While, "with": With, "yield": Yield,
}

// LiteralKind discriminates the variants of a literal token value
// (https://tc39.es/ecma262/#prod-Literal).
type LiteralKind int

const (
	NoLiteral LiteralKind = iota
	StringLiteral
	NumericLiteral
	BooleanLiteral
	NullLiteral
)

// Literal is the value carried by a STRING/NUMBER/boolean/null token.
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

// Token is a single lexical token, grounded on token.rs's Token struct.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Literal
	Line    int
}

func (t Token) String() string {
	if t.Literal.Kind != NoLiteral {
		return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
