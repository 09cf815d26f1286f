package js

// Statement is the ECMAScript Statement production
// (https://tc39.es/ecma262/#prod-Statement), grounded on ast.rs's
// Statement enum — expressed here as an interface + visitor rather than a
// tagged union, the idiomatic Go shape for a closed-but-extensible AST.
type Statement interface {
	AcceptStatement(StatementVisitor) any
}

// Expression is the ECMAScript ExpressionStatement production from
// ast.rs, covering the Literal/Binary/Unary/Identifier/Call/
// ObjectLiteral/Assignment/Parenthesized expression forms.
type Expression interface {
	AcceptExpression(ExpressionVisitor) any
}

// StatementVisitor dispatches over the Statement variants.
type StatementVisitor interface {
	VisitExpressionStatement(*ExpressionStatement) any
	VisitVariableStatement(*VariableDeclarationStatement) any
	VisitBlockStatement(*BlockStatement) any
}

// ExpressionVisitor dispatches over the Expression variants.
type ExpressionVisitor interface {
	VisitBinary(*BinaryExpression) any
	VisitLiteral(*LiteralExpression) any
	VisitParenthesized(*ParenthesizedExpression) any
	VisitUnary(*UnaryExpression) any
	VisitIdentifier(*IdentifierExpression) any
	VisitCall(*CallExpression) any
	VisitObjectLiteral(*ObjectLiteralExpression) any
	VisitAssignment(*AssignmentExpression) any
}

// ExpressionStatement wraps a bare expression used in statement position.
type ExpressionStatement struct {
	Expression Expression
}

func (s *ExpressionStatement) AcceptStatement(v StatementVisitor) any {
	return v.VisitExpressionStatement(s)
}

// VariableDeclarationStatement is the VariableDeclaration production
// (https://tc39.es/ecma262/#prod-VariableDeclaration). As in the
// original, only a single binding per "var" is supported — a list of
// VariableDeclaration's as the full grammar allows is not implemented.
type VariableDeclarationStatement struct {
	BindingIdentifier Token
	Initializer       *AssignmentExpression // nil if absent
}

func (s *VariableDeclarationStatement) AcceptStatement(v StatementVisitor) any {
	return v.VisitVariableStatement(s)
}

// BlockStatement is the Block production
// (https://tc39.es/ecma262/#prod-Block).
type BlockStatement struct {
	Statements []Statement
}

func (s *BlockStatement) AcceptStatement(v StatementVisitor) any {
	return v.VisitBlockStatement(s)
}

// BinaryExpression covers equality/relational/additive/multiplicative
// operators, all folded into one node per the original's BinaryExpression
// (grounded on ast.rs).
type BinaryExpression struct {
	Left     Expression
	Right    Expression
	Operator Token
}

func (e *BinaryExpression) AcceptExpression(v ExpressionVisitor) any { return v.VisitBinary(e) }

// LiteralExpression is a Literal production
// (https://tc39.es/ecma262/#prod-Literal).
type LiteralExpression struct {
	Value Literal
}

func (e *LiteralExpression) AcceptExpression(v ExpressionVisitor) any { return v.VisitLiteral(e) }

// ParenthesizedExpression is a CoverParenthesizedExpression.
type ParenthesizedExpression struct {
	Expression Expression
}

func (e *ParenthesizedExpression) AcceptExpression(v ExpressionVisitor) any {
	return v.VisitParenthesized(e)
}

// UnaryExpression covers prefix !, -, + (https://tc39.es/ecma262/#prod-UnaryExpression).
type UnaryExpression struct {
	Operator Token
	Right    Expression
}

func (e *UnaryExpression) AcceptExpression(v ExpressionVisitor) any { return v.VisitUnary(e) }

// IdentifierExpression is a BindingIdentifier reference
// (https://tc39.es/ecma262/#prod-IdentifierReference).
type IdentifierExpression struct {
	BindingIdentifier Token
}

func (e *IdentifierExpression) AcceptExpression(v ExpressionVisitor) any {
	return v.VisitIdentifier(e)
}

// CallExpression is the CallExpression production
// (https://tc39.es/ecma262/#prod-CallExpression).
type CallExpression struct {
	Callee    Expression
	Paren     Token // closing ')' token, kept for error-location reporting
	Arguments []Expression
}

func (e *CallExpression) AcceptExpression(v ExpressionVisitor) any { return v.VisitCall(e) }

// PropertyName is the PropertyName production
// (https://tc39.es/ecma262/#prod-PropertyName). Computed property names
// ([Expr]) are not supported, matching the original's scope.
type PropertyName struct {
	IsIdentifier bool
	Identifier   Token
	Literal      Literal
}

// PropertyDefinition is the PropertyDefinition production
// (https://tc39.es/ecma262/#prod-PropertyDefinition).
type PropertyDefinition struct {
	PropertyName        PropertyName
	AssignmentExpression *AssignmentExpression
}

// ObjectLiteralExpression is the ObjectLiteral production
// (https://tc39.es/ecma262/#prod-ObjectLiteral).
type ObjectLiteralExpression struct {
	PropertyDefinitions []PropertyDefinition
}

func (e *ObjectLiteralExpression) AcceptExpression(v ExpressionVisitor) any {
	return v.VisitObjectLiteral(e)
}

// AssignmentExpression is the AssignmentExpression production
// (https://tc39.es/ecma262/#prod-AssignmentExpression). As in the
// original, LeftHandSideExpression is represented loosely as an
// Expression rather than the full MemberExpression/NewExpression chain.
type AssignmentExpression struct {
	LeftHandSide Expression
	Expression   Expression
}

func (e *AssignmentExpression) AcceptExpression(v ExpressionVisitor) any {
	return v.VisitAssignment(e)
}
