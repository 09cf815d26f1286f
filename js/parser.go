package js

// Parser is a recursive-descent parser over a Token stream, grounded
// field-for-field on parser.rs's Parser: same token cursor, same
// production names translated from snake_case to Go method names, same
// precedence chain (assignment -> equality -> comparison -> term ->
// factor -> unary -> call -> primary).
//
// Unlike the original, parse errors are collected and returned rather
// than printed to stdout, and consume() on failure records the error and
// returns the token at the cursor so parsing continues.
type Parser struct {
	tokens  []Token
	current int
	errs    []error
}

// NewParser constructs a parser over tokens (normally the output of
// Scanner.ScanTokens).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the parser to completion, returning every top-level
// statement and any parse errors encountered. Mirrors parser.rs's parse().
func (p *Parser) Parse() ([]Statement, []error) {
	var statements []Statement
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements, p.errs
}

// ParseExpression parses a single expression, for contexts (the REPL,
// tests) that want an expression rather than a full program.
func (p *Parser) ParseExpression() (Expression, []error) {
	e := p.expression()
	return e, p.errs
}

func (p *Parser) expression() Expression {
	return p.assignmentExpression()
}

func (p *Parser) assignmentExpression() Expression {
	expr := p.equality()

	if p.matchToken(Equal) {
		equals := p.previous()
		if ident, ok := expr.(*IdentifierExpression); ok {
			return &AssignmentExpression{
				LeftHandSide: ident,
				Expression:   p.assignmentExpression(),
			}
		}
		p.errs = append(p.errs, &ParseError{Line: equals.Line, Message: "invalid assignment target"})
	}

	return expr
}

// statement implements the Statement production (spec §4.4's grammar
// skeleton), grounded on parser.rs's statement(). A standalone ';' is an
// empty statement and produces no node, rather than falling through to
// expressionStatement and parsing whatever follows (at end of stream,
// nothing) as an expression.
func (p *Parser) statement() Statement {
	if p.peek().Type == Semicolon {
		p.advance()
		return nil
	} else if p.matchToken(LeftBrace) {
		return p.blockStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) blockStatement() Statement {
	var statements []Statement
	for !p.check(RightBrace) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(RightBrace, "expect '}' after block")
	return &BlockStatement{Statements: statements}
}

func (p *Parser) declaration() Statement {
	if p.matchToken(Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() Statement {
	name := p.consume(Identifier, "missing variable name")

	if p.matchToken(Equal) {
		init := &AssignmentExpression{
			LeftHandSide: &IdentifierExpression{BindingIdentifier: name},
			Expression:   p.expression(),
		}
		return &VariableDeclarationStatement{BindingIdentifier: name, Initializer: init}
	}

	return &VariableDeclarationStatement{BindingIdentifier: name}
}

func (p *Parser) expressionStatement() Statement {
	return &ExpressionStatement{Expression: p.expression()}
}

func (p *Parser) equality() Expression {
	expr := p.comparison()
	for p.matchToken(BangEqual, EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpression{Left: expr, Right: right, Operator: op}
	}
	return expr
}

func (p *Parser) comparison() Expression {
	expr := p.term()
	for p.matchToken(Greater, GreaterEqual, Less, LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpression{Left: expr, Right: right, Operator: op}
	}
	return expr
}

func (p *Parser) term() Expression {
	expr := p.factor()
	for p.matchToken(Minus, Plus) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpression{Left: expr, Right: right, Operator: op}
	}
	return expr
}

func (p *Parser) factor() Expression {
	expr := p.unary()
	for p.matchToken(Slash, Star) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpression{Left: expr, Right: right, Operator: op}
	}
	return expr
}

func (p *Parser) unary() Expression {
	if p.matchToken(Bang, Minus, Plus) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpression{Operator: op, Right: right}
	}
	return p.callExpression()
}

func (p *Parser) callExpression() Expression {
	expr := p.primary()
	for {
		if p.matchToken(LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expression) Expression {
	var args []Expression
	if !p.check(RightParen) {
		args = append(args, p.expression())
		for p.matchToken(Comma) {
			args = append(args, p.expression())
			if p.check(RightParen) {
				break
			}
		}
	}
	paren := p.consume(RightParen, "expect ')' after arguments")
	return &CallExpression{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() Expression {
	switch {
	case p.matchToken(False):
		return &LiteralExpression{Value: Literal{Kind: BooleanLiteral, Bool: false}}
	case p.matchToken(True):
		return &LiteralExpression{Value: Literal{Kind: BooleanLiteral, Bool: true}}
	case p.matchToken(Null):
		return &LiteralExpression{Value: Literal{Kind: NullLiteral}}
	case p.matchToken(Number, String):
		return &LiteralExpression{Value: p.previous().Literal}
	case p.matchToken(Identifier):
		return &IdentifierExpression{BindingIdentifier: p.previous()}
	case p.matchToken(LeftBrace):
		return p.objectLiteral()
	case p.matchToken(LeftParen):
		expr := p.expression()
		p.consume(RightParen, "expect ')' after expression")
		return &ParenthesizedExpression{Expression: expr}
	}

	p.errs = append(p.errs, &ParseError{Line: p.peek().Line, Message: "unexpected token " + p.peek().Type.String()})
	if !p.atEnd() {
		p.advance()
	}
	return &LiteralExpression{Value: Literal{Kind: NullLiteral}}
}

func (p *Parser) objectLiteral() Expression {
	var props []PropertyDefinition
	if def, ok := p.propertyDefinition(); ok {
		props = append(props, def)
		for p.matchToken(Comma) {
			if p.check(RightBrace) {
				break
			}
			if d, ok := p.propertyDefinition(); ok {
				props = append(props, d)
			}
		}
	}
	p.consume(RightBrace, "expect '}' after expression")
	return &ObjectLiteralExpression{PropertyDefinitions: props}
}

// propertyDefinition implements https://tc39.es/ecma262/#sec-static-semantics-propertynamelist
// grounded on parser.rs's create_property_definition.
func (p *Parser) propertyDefinition() (PropertyDefinition, bool) {
	if !p.matchToken(Identifier, Number, String) {
		return PropertyDefinition{}, false
	}
	propToken := p.previous()
	p.consume(Colon, "missing ':' after property id")

	var name PropertyName
	if propToken.Type == Identifier {
		name = PropertyName{IsIdentifier: true, Identifier: propToken}
	} else {
		name = PropertyName{Literal: propToken.Literal}
	}

	value := p.expression()
	return PropertyDefinition{
		PropertyName: name,
		AssignmentExpression: &AssignmentExpression{
			LeftHandSide: &IdentifierExpression{BindingIdentifier: propToken},
			Expression:   value,
		},
	}, true
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errs = append(p.errs, &ParseError{Line: p.peek().Line, Message: message})
	return p.peek()
}

func (p *Parser) matchToken(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
