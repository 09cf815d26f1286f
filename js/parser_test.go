package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseExpr(t *testing.T, src string) Expression {
	t.Helper()
	toks, scanErrs := NewScanner(src).ScanTokens()
	assert.Empty(t, scanErrs)
	expr, parseErrs := NewParser(toks).ParseExpression()
	assert.Empty(t, parseErrs)
	return expr
}

func TestParserPrecedence(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, Plus, bin.Operator.Type)

	right, ok := bin.Right.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, Star, right.Operator.Type)
}

func TestParserParenthesizedOverridesPrecedence(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")
	bin, ok := expr.(*BinaryExpression)
	assert.True(t, ok)
	assert.Equal(t, Star, bin.Operator.Type)

	_, ok = bin.Left.(*ParenthesizedExpression)
	assert.True(t, ok)
}

func TestParserUnary(t *testing.T) {
	expr := parseExpr(t, "-5")
	u, ok := expr.(*UnaryExpression)
	assert.True(t, ok)
	assert.Equal(t, Minus, u.Operator.Type)
}

func TestParserCallExpression(t *testing.T) {
	expr := parseExpr(t, "foo(1, 2)")
	call, ok := expr.(*CallExpression)
	assert.True(t, ok)
	assert.Len(t, call.Arguments, 2)
	ident, ok := call.Callee.(*IdentifierExpression)
	assert.True(t, ok)
	assert.Equal(t, "foo", ident.BindingIdentifier.Lexeme)
}

func TestParserObjectLiteral(t *testing.T) {
	expr := parseExpr(t, `{a: 1, "b": 2}`)
	obj, ok := expr.(*ObjectLiteralExpression)
	assert.True(t, ok)
	assert.Len(t, obj.PropertyDefinitions, 2)
	assert.True(t, obj.PropertyDefinitions[0].PropertyName.IsIdentifier)
	assert.Equal(t, "a", obj.PropertyDefinitions[0].PropertyName.Identifier.Lexeme)
	assert.False(t, obj.PropertyDefinitions[1].PropertyName.IsIdentifier)
	assert.Equal(t, "b", obj.PropertyDefinitions[1].PropertyName.Literal.Str)
}

func TestParserAssignment(t *testing.T) {
	expr := parseExpr(t, "x = 5")
	assign, ok := expr.(*AssignmentExpression)
	assert.True(t, ok)
	ident, ok := assign.LeftHandSide.(*IdentifierExpression)
	assert.True(t, ok)
	assert.Equal(t, "x", ident.BindingIdentifier.Lexeme)
}

func TestParserVarDeclaration(t *testing.T) {
	toks, _ := NewScanner("var x = 1 + 2;").ScanTokens()
	stmts, errs := NewParser(toks).Parse()
	assert.Empty(t, errs)
	assert.Len(t, stmts, 1)

	decl, ok := stmts[0].(*VariableDeclarationStatement)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.BindingIdentifier.Lexeme)
	assert.NotNil(t, decl.Initializer)
}

func TestParserBlockStatement(t *testing.T) {
	toks, _ := NewScanner("{ var x = 1; x }").ScanTokens()
	stmts, errs := NewParser(toks).Parse()
	assert.Empty(t, errs)
	assert.Len(t, stmts, 1)

	block, ok := stmts[0].(*BlockStatement)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
}
