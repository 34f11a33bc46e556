package parser

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Expression precedence parsing using Pratt parser with dialect-aware precedence.
//
// Precedence levels (from core, higher binds tighter):
//
//	PrecedenceOr         = 10
//	PrecedenceAnd        = 20
//	PrecedenceNot        = 30  (prefix NOT)
//	PrecedenceComparison = 40  (=, <>, <, >, <=, >=, IS, IN, BETWEEN, LIKE, ILIKE)
//	PrecedenceBitwise*   = 50-54 (|, ^, &)
//	PrecedenceAddition   = 60  (+, -, ||)
//	PrecedenceMultiply   = 70  (*, /, %, DIV)
//	PrecedenceUnary      = 80  (prefix -, +)
//	PrecedencePostfix    = 90  (::)
//
// The parser uses dialect.Precedence() to look up operator precedence
// dynamically, so dialects add or reorder operators without parser changes.
// Left-associative operators parse their right operand at precedence+1,
// right-associative ones at the operator's own precedence.

// parseExpression parses an expression using precedence climbing.
func (p *Parser) parseExpression() (core.Expr, error) {
	return p.parseExpressionWithPrecedence(spi.PrecedenceNone + 1)
}

// parseExpressionWithPrecedence implements Pratt parsing with dialect-aware precedence.
func (p *Parser) parseExpressionWithPrecedence(minPrecedence int) (core.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	// Parse prefix (unary operators and primary expressions)
	left, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	// Parse infix operators while their precedence is >= minPrecedence
	for {
		prec := p.infixPrecedence()
		if prec == spi.PrecedenceNone || prec < minPrecedence {
			return left, nil
		}

		if left, err = p.parseInfixExpr(left, prec); err != nil {
			return nil, err
		}
	}
}

// parsePrefixExpr parses prefix expressions (unary operators and primary expressions).
func (p *Parser) parsePrefixExpr() (core.Expr, error) {
	start := p.token.Pos
	var (
		op      token.TokenType
		operand int
	)

	switch p.token.Type {
	case token.NOT:
		op, operand = token.NOT, spi.PrecedenceNot
	case token.MINUS, token.PLUS:
		op, operand = p.token.Type, spi.PrecedenceUnary
	default:
		if handler := p.dialect.PrefixHandler(p.token.Type); handler != nil {
			p.nextToken()
			expr, err := handler(p)
			if err != nil {
				return nil, err
			}
			p.finishExpr(expr, start)
			return expr, nil
		}
		return p.parsePrimary()
	}

	p.nextToken()
	expr, err := p.parseExpressionWithPrecedence(operand)
	if err != nil {
		return nil, err
	}
	unary := &core.UnaryExpr{Op: op, Expr: expr}
	p.finish(unary, start)
	return unary, nil
}

// infixPrecedence returns the precedence of the current token as an infix
// operator, or PrecedenceNone.
func (p *Parser) infixPrecedence() int {
	switch p.token.Type {
	case token.NOT:
		// NOT as infix only in NOT IN, NOT BETWEEN, NOT LIKE
		next := p.peekAt(1).Type
		if next == token.IN || next == token.BETWEEN || p.dialect.IsLikeOperator(next) {
			return spi.PrecedenceComparison
		}
		return spi.PrecedenceNone
	case token.IS, token.IN, token.BETWEEN:
		return spi.PrecedenceComparison
	}
	return p.dialect.Precedence(p.token.Type)
}

// parseInfixExpr parses an infix expression given the left operand and current precedence.
func (p *Parser) parseInfixExpr(left core.Expr, prec int) (core.Expr, error) {
	start := left.Pos()
	t := p.token.Type

	// Handle special infix operators first
	switch {
	case t == token.NOT:
		p.nextToken() // consume NOT
		return p.parseNegatableInfix(left, start, true)
	case t == token.IS:
		return p.parseIsExpr(left, start)
	case t == token.IN || t == token.BETWEEN || p.dialect.IsLikeOperator(t):
		return p.parseNegatableInfix(left, start, false)
	}

	// Check for custom infix handler (dialect-specific operators like ::)
	if handler := p.dialect.InfixHandler(t); handler != nil {
		p.nextToken()
		expr, err := handler(p, left)
		if err != nil {
			return nil, err
		}
		p.finishExpr(expr, start)
		return expr, nil
	}

	// Standard binary operators
	p.nextToken()
	rightMin := prec + 1
	if p.dialect.IsRightAssoc(t) {
		rightMin = prec
	}
	right, err := p.parseExpressionWithPrecedence(rightMin)
	if err != nil {
		return nil, err
	}
	bin := &core.BinaryExpr{Left: left, Op: t, Right: right}
	p.finish(bin, start)
	return bin, nil
}

// finishExpr records the span of a handler-built expression.
func (p *Parser) finishExpr(expr core.Expr, start token.Position) {
	if s, ok := expr.(spanner); ok && !expr.Pos().IsValid() {
		p.finish(s, start)
	}
}

// parseNegatableInfix parses IN, BETWEEN and the LIKE family, after an
// optional NOT has been consumed.
func (p *Parser) parseNegatableInfix(left core.Expr, start token.Position, not bool) (core.Expr, error) {
	switch t := p.token.Type; {
	case t == token.IN:
		p.nextToken()
		return p.parseInExpr(left, start, not)
	case t == token.BETWEEN:
		p.nextToken()
		return p.parseBetweenExpr(left, start, not)
	case p.dialect.IsLikeOperator(t):
		p.nextToken()
		return p.parseLikeExpr(left, start, not, t)
	default:
		return nil, p.errorf(ErrUnexpectedToken, "IN, BETWEEN or LIKE after NOT", p.token)
	}
}

// parseIsExpr parses IS [NOT] NULL / TRUE / FALSE / DISTINCT FROM expr.
func (p *Parser) parseIsExpr(left core.Expr, start token.Position) (core.Expr, error) {
	p.nextToken() // consume IS

	isNot := p.match(token.NOT)

	var expr interface {
		core.Expr
		spanner
	}
	switch p.token.Type {
	case token.NULL:
		p.nextToken()
		expr = &core.IsNullExpr{Expr: left, Not: isNot}

	case token.TRUE, token.FALSE:
		value := p.check(token.TRUE)
		p.nextToken()
		expr = &core.IsBoolExpr{Expr: left, Not: isNot, Value: value}

	case token.DISTINCT:
		p.nextToken()
		if err := p.expect(token.FROM); err != nil {
			return nil, err
		}
		right, err := p.parseExpressionWithPrecedence(spi.PrecedenceComparison + 1)
		if err != nil {
			return nil, err
		}
		expr = &core.IsDistinctExpr{Left: left, Not: isNot, Right: right}

	default:
		return nil, p.errorf(ErrUnexpectedToken, "NULL, TRUE, FALSE or DISTINCT FROM after IS", p.token)
	}

	p.finish(expr, start)
	return expr, nil
}

// parseInExpr parses the remainder of an IN expression: a value list or a subquery.
func (p *Parser) parseInExpr(left core.Expr, start token.Position, not bool) (core.Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	in := &core.InExpr{Expr: left, Not: not}

	var err error
	if startsQuery(p.token.Type) {
		in.Query, err = p.parseQuery()
	} else {
		in.Values, err = p.parseExpressionList()
	}
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	p.finish(in, start)
	return in, nil
}

// parseBetweenExpr parses the remainder of a BETWEEN expression.
// Bounds bind tighter than comparison so the AND is not captured.
func (p *Parser) parseBetweenExpr(left core.Expr, start token.Position, not bool) (core.Expr, error) {
	between := &core.BetweenExpr{Expr: left, Not: not}

	var err error
	if between.Low, err = p.parseExpressionWithPrecedence(spi.PrecedenceComparison + 1); err != nil {
		return nil, err
	}
	if err := p.expect(token.AND); err != nil {
		return nil, err
	}
	if between.High, err = p.parseExpressionWithPrecedence(spi.PrecedenceComparison + 1); err != nil {
		return nil, err
	}
	p.finish(between, start)
	return between, nil
}

// parseLikeExpr parses the remainder of a LIKE-family expression.
func (p *Parser) parseLikeExpr(left core.Expr, start token.Position, not bool, op token.TokenType) (core.Expr, error) {
	like := &core.LikeExpr{Expr: left, Not: not, Op: op}

	var err error
	if like.Pattern, err = p.parseExpressionWithPrecedence(spi.PrecedenceComparison + 1); err != nil {
		return nil, err
	}
	if p.match(token.ESCAPE) {
		if like.Escape, err = p.parseExpressionWithPrecedence(spi.PrecedenceComparison + 1); err != nil {
			return nil, err
		}
	}
	p.finish(like, start)
	return like, nil
}
