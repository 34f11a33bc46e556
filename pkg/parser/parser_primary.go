package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Primary expression parsing: literals, column refs, function calls.
//
// Grammar:
//
//	primary       → literal | placeholder | column_ref | func_call | paren_expr
//	              | case_expr | cast_expr | extract_expr | exists_expr
//	              | interval_expr | typed_literal
//	literal       → NUMBER | STRING | NSTRING | HEXSTRING | TRUE | FALSE | NULL
//	typed_literal → (DATE | TIME | TIMESTAMP) STRING
//	column_ref    → identifier ("." identifier)*
//	func_call     → name "(" [DISTINCT|ALL] [expr_list [ORDER BY order_list] | "*"] ")"
//	                [FILTER "(" WHERE expr ")"] [OVER window_spec]

// functionKeywords are reserved words that still name functions when
// followed by "(": LEFT('abc', 2), IF(a, b, c).
var functionKeywords = map[token.TokenType]bool{
	token.LEFT:    true,
	token.RIGHT:   true,
	token.IF:      true,
	token.REPLACE: true,
}

// niladicFunctions are reserved words that are called without parentheses.
var niladicFunctions = map[string]bool{
	"current_catalog":   true,
	"current_date":      true,
	"current_role":      true,
	"current_schema":    true,
	"current_time":      true,
	"current_timestamp": true,
	"current_user":      true,
	"localtime":         true,
	"localtimestamp":    true,
	"session_user":      true,
	"utc_date":          true,
	"utc_time":          true,
	"utc_timestamp":     true,
}

// parsePrimary parses primary expressions.
func (p *Parser) parsePrimary() (core.Expr, error) {
	start := p.token.Pos

	switch p.token.Type {
	case token.NUMBER:
		return p.parseLiteral(core.LiteralNumber, p.token.Literal)
	case token.STRING:
		return p.parseLiteral(core.LiteralString, p.token.Literal)
	case token.NSTRING:
		return p.parseLiteral(core.LiteralNationalString, p.token.Literal)
	case token.HEXSTRING:
		return p.parseLiteral(core.LiteralHexString, p.token.Literal)
	case token.TRUE:
		return p.parseLiteral(core.LiteralBool, "TRUE")
	case token.FALSE:
		return p.parseLiteral(core.LiteralBool, "FALSE")
	case token.NULL:
		return p.parseLiteral(core.LiteralNull, "NULL")

	case token.PLACEHOLDER:
		ph := &core.Placeholder{Value: p.token.Literal}
		p.nextToken()
		p.finish(ph, start)
		return ph, nil

	case token.CASE:
		return p.parseCaseExpr()
	case token.CAST, token.TRY_CAST:
		return p.parseCastExpr()
	case token.EXISTS:
		return p.parseExistsExpr()
	case token.LPAREN:
		return p.parseParenExpr()

	case token.EXTRACT:
		if p.checkPeek(token.LPAREN) {
			return p.parseExtractExpr()
		}
	case token.INTERVAL:
		return p.parseIntervalExpr()
	case token.DATE, token.TIME, token.TIMESTAMP:
		if p.checkPeek(token.STRING) {
			return p.parseTypedLiteral()
		}
	}

	if functionKeywords[p.token.Type] && p.checkPeek(token.LPAREN) {
		name := core.ObjectName{core.NewIdent(p.token.Literal)}
		p.nextToken()
		return p.parseFuncCall(name, start)
	}

	// Reserved words still name functions: MOD(a, 2), CURRENT_DATE.
	if p.token.Kind() == token.KindIdent && p.isReserved(p.token) &&
		(p.checkPeek(token.LPAREN) || niladicFunctions[strings.ToLower(p.token.Literal)]) {
		name := core.ObjectName{core.NewIdent(p.token.Literal)}
		p.nextToken()
		if p.check(token.LPAREN) {
			return p.parseFuncCall(name, start)
		}
		ref := &core.ColumnRef{Parts: name}
		p.finish(ref, start)
		return ref, nil
	}

	if p.isIdentifier(p.token) {
		return p.parseIdentifierExpr()
	}

	return nil, p.errorf(ErrExpectedExpression, p.token)
}

// parseLiteral consumes the current token as a literal of the given type.
func (p *Parser) parseLiteral(typ core.LiteralType, value string) (core.Expr, error) {
	start := p.token.Pos
	lit := &core.Literal{Type: typ, Value: value}
	p.nextToken()
	p.finish(lit, start)
	return lit, nil
}

// parseIdentifierExpr parses an identifier which could be a column ref or function call.
func (p *Parser) parseIdentifierExpr() (core.Expr, error) {
	start := p.token.Pos

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}

	// Check if it's a function call
	if p.check(token.LPAREN) {
		return p.parseFuncCall(name, start)
	}

	ref := &core.ColumnRef{Parts: name}
	p.finish(ref, start)
	return ref, nil
}

// parseFuncCall parses a function call. The name has been consumed.
func (p *Parser) parseFuncCall(name core.ObjectName, start token.Position) (core.Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	fn := &core.FuncCall{Name: name}

	// Handle COUNT(*) or other aggregate(*)
	switch {
	case p.match(token.STAR):
		fn.Star = true
	case !p.check(token.RPAREN):
		if p.match(token.DISTINCT) {
			fn.Distinct = true
		} else {
			p.match(token.ALL)
		}

		var err error
		if fn.Args, err = p.parseExpressionList(); err != nil {
			return nil, err
		}

		// Ordered-set aggregate: STRING_AGG(x, ',' ORDER BY y)
		if p.match(token.ORDER) {
			if err := p.expect(token.BY); err != nil {
				return nil, err
			}
			if fn.OrderBy, err = p.parseOrderByList(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	// FILTER clause (for aggregates)
	if p.check(token.FILTER) && p.checkPeek(token.LPAREN) {
		p.nextToken() // consume FILTER
		p.nextToken() // consume (
		if err := p.expect(token.WHERE); err != nil {
			return nil, err
		}
		var err error
		if fn.Filter, err = p.parseExpression(); err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	// OVER clause (window function)
	if p.match(token.OVER) {
		var err error
		if fn.Over, err = p.parseWindowSpec(); err != nil {
			return nil, err
		}
	}

	p.finish(fn, start)
	return fn, nil
}
