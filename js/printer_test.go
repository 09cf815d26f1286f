package js

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterBinaryExpression(t *testing.T) {
	expr := parseExpr(t, "1 + 2")
	out := (&Printer{}).PrintExpr(expr)
	assert.Contains(t, out, "BinaryExpression Plus")
	assert.Contains(t, out, "NumericLiteral 1")
	assert.Contains(t, out, "NumericLiteral 2")
}

func TestPrinterParenthesizedDoesNotRecurseForever(t *testing.T) {
	expr := parseExpr(t, "(1 + 2)")
	out := (&Printer{}).PrintExpr(expr)
	assert.Contains(t, out, "ParenthesizedExpression Plus")
}

func TestPrinterNestedParenthesized(t *testing.T) {
	expr := parseExpr(t, "((1))")
	out := (&Printer{}).PrintExpr(expr)
	assert.Contains(t, out, "ParenthesizedExpression")
	assert.Contains(t, out, "NumericLiteral 1")
}
