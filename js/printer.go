package js

import (
	"fmt"
	"strings"
)

// Printer renders an AST as a parenthesized S-expression string, grounded
// on ast_printer.rs's ASTPrettyPrinter — same node-name/operator labeling,
// translated to Go's visitor interfaces.
//
// Fixes spec §9 item 7: VisitParenthesized recurses into the wrapped
// inner expression, not back into the same ParenthesizedExpression node
// (the original's visit_parenthesized(node) call on its own ParenthesizedExpression
// arm recursed on itself forever).
type Printer struct{}

func (p *Printer) Print(s Statement) string {
	return fmt.Sprint(s.AcceptStatement(p))
}

func (p *Printer) PrintExpr(e Expression) string {
	return fmt.Sprint(e.AcceptExpression(p))
}

func (p *Printer) parenthesize(name string, exprs ...Expression) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(e.AcceptExpression(p)))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) parenthesizeStatements(name string, stmts []Statement) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, s := range stmts {
		b.WriteByte(' ')
		b.WriteString(fmt.Sprint(s.AcceptStatement(p)))
	}
	b.WriteByte(')')
	return b.String()
}

func (p *Printer) VisitExpressionStatement(s *ExpressionStatement) any {
	return s.Expression.AcceptExpression(p)
}

func (p *Printer) VisitVariableStatement(s *VariableDeclarationStatement) any {
	if s.Initializer != nil {
		init := fmt.Sprint(p.VisitAssignment(s.Initializer))
		return p.parenWithName(fmt.Sprintf("[VariableDeclarationStatement] BindingIdentifier:%q, Initializer:%q",
			s.BindingIdentifier.Lexeme, init))
	}
	return p.parenWithName(fmt.Sprintf("VariableDeclarationStatement %q", s.BindingIdentifier.Lexeme))
}

func (p *Printer) VisitBlockStatement(s *BlockStatement) any {
	return p.parenthesizeStatements("BlockStatement", s.Statements)
}

func (p *Printer) parenWithName(name string) string {
	return "(" + name + ")"
}

func (p *Printer) VisitBinary(e *BinaryExpression) any {
	return p.parenthesize(fmt.Sprintf("BinaryExpression %s", e.Operator.Type), e.Left, e.Right)
}

func (p *Printer) VisitLiteral(e *LiteralExpression) any {
	switch e.Value.Kind {
	case NumericLiteral:
		return fmt.Sprintf("NumericLiteral %v", e.Value.Num)
	case StringLiteral:
		return fmt.Sprintf("StringLiteral %s", e.Value.Str)
	case BooleanLiteral:
		return fmt.Sprintf("BooleanLiteral %v", e.Value.Bool)
	default:
		return "NullLiteral null"
	}
}

func (p *Printer) VisitParenthesized(e *ParenthesizedExpression) any {
	switch inner := e.Expression.(type) {
	case *BinaryExpression:
		return p.parenthesize(fmt.Sprintf("ParenthesizedExpression %s", inner.Operator.Type), inner.Left, inner.Right)
	case *LiteralExpression:
		return p.parenthesize("ParenthesizedExpression", inner)
	case *UnaryExpression:
		return p.parenthesize(fmt.Sprintf("ParenthesizedExpression %s", inner.Operator.Type), inner.Right)
	case *IdentifierExpression:
		return p.parenthesize(fmt.Sprintf("VariableExpression %q", inner.BindingIdentifier.Lexeme))
	case *ParenthesizedExpression:
		return p.VisitParenthesized(inner)
	case *CallExpression:
		return p.visitCallInner(inner)
	case *ObjectLiteralExpression:
		return p.parenthesize("ObjectLiteralExpression")
	case *AssignmentExpression:
		return p.parenthesize("AssignmentExpression", inner.LeftHandSide, inner.Expression)
	default:
		return p.parenthesize("ParenthesizedExpression")
	}
}

func (p *Printer) VisitIdentifier(e *IdentifierExpression) any {
	return p.parenthesize(fmt.Sprintf("IdentifierExpression %q", e.BindingIdentifier.Lexeme))
}

func (p *Printer) VisitUnary(e *UnaryExpression) any {
	return p.parenthesize(fmt.Sprintf("UnaryExpression %s", e.Operator.Type), e.Right)
}

func (p *Printer) VisitAssignment(e *AssignmentExpression) any {
	return p.parenthesize("AssignmentExpression", e.LeftHandSide, e.Expression)
}

func (p *Printer) VisitObjectLiteral(e *ObjectLiteralExpression) any {
	defs := make([]string, len(e.PropertyDefinitions))
	for i, d := range e.PropertyDefinitions {
		defs[i] = fmt.Sprint(p.VisitAssignment(d.AssignmentExpression))
	}
	return p.parenthesize(fmt.Sprintf("ObjectLiteralExpression PropertyDefinitions %s", strings.Join(defs, ", ")))
}

func (p *Printer) visitCallInner(e *CallExpression) string {
	var args strings.Builder
	args.WriteByte('(')
	for _, a := range e.Arguments {
		args.WriteString(fmt.Sprint(a.AcceptExpression(p)))
		args.WriteString(", ")
	}
	args.WriteByte(')')
	return p.parenthesize(fmt.Sprintf("CallExpression args: %q", args.String()), e.Callee)
}

func (p *Printer) VisitCall(e *CallExpression) any {
	return p.visitCallInner(e)
}
