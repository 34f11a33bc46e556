package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Special expression parsing: CASE, CAST, EXTRACT, EXISTS, INTERVAL,
// typed literals, parenthesized expressions and subqueries.
//
// Grammar:
//
//	case_expr     → CASE [expr] (WHEN expr THEN expr)+ [ELSE expr] END
//	cast_expr     → (CAST | TRY_CAST) "(" expr AS data_type ")"
//	extract_expr  → EXTRACT "(" word FROM expr ")"
//	exists_expr   → EXISTS "(" query ")"
//	interval_expr → INTERVAL expr [unit]
//	paren_expr    → "(" query ")" | "(" expr ")" | "(" expr ("," expr)+ ")"

// intervalUnits are the words accepted after an INTERVAL value.
var intervalUnits = map[string]bool{
	"YEAR": true, "QUARTER": true, "MONTH": true, "WEEK": true, "DAY": true,
	"HOUR": true, "MINUTE": true, "SECOND": true,
}

// parseCaseExpr parses a CASE expression.
func (p *Parser) parseCaseExpr() (core.Expr, error) {
	start := p.token.Pos
	p.nextToken() // consume CASE
	caseExpr := &core.CaseExpr{}

	var err error
	// Simple CASE: CASE expr WHEN ...
	// A bare END or ELSE means the WHEN list is missing, not the operand.
	if !p.check(token.WHEN) && !p.check(token.END) && !p.check(token.ELSE) {
		if caseExpr.Operand, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if !p.check(token.WHEN) {
		return nil, p.errorf(ErrUnexpectedToken, "WHEN", p.token)
	}

	// WHEN clauses
	for p.match(token.WHEN) {
		when := core.WhenClause{}
		if when.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
		if err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		if when.Result, err = p.parseExpression(); err != nil {
			return nil, err
		}
		caseExpr.Whens = append(caseExpr.Whens, when)
	}

	// ELSE clause
	if p.match(token.ELSE) {
		if caseExpr.Else, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	p.finish(caseExpr, start)
	return caseExpr, nil
}

// parseCastExpr parses CAST(expr AS type) or TRY_CAST(expr AS type).
func (p *Parser) parseCastExpr() (core.Expr, error) {
	start := p.token.Pos
	cast := &core.CastExpr{Try: p.check(token.TRY_CAST)}
	p.nextToken() // consume CAST

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var err error
	if cast.Expr, err = p.parseExpression(); err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if cast.Type, err = p.parseDataType(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	p.finish(cast, start)
	return cast, nil
}

// parseExtractExpr parses EXTRACT(field FROM expr).
func (p *Parser) parseExtractExpr() (core.Expr, error) {
	start := p.token.Pos
	p.nextToken() // consume EXTRACT
	p.nextToken() // consume (

	if !isWord(p.token) {
		return nil, p.errorf(ErrUnexpectedToken, "date part", p.token)
	}
	extract := &core.ExtractExpr{Field: strings.ToUpper(p.token.Literal)}
	p.nextToken()

	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	var err error
	if extract.Expr, err = p.parseExpression(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	p.finish(extract, start)
	return extract, nil
}

// parseExistsExpr parses EXISTS (query).
func (p *Parser) parseExistsExpr() (core.Expr, error) {
	start := p.token.Pos
	p.nextToken() // consume EXISTS

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	exists := &core.ExistsExpr{Query: q}
	p.finish(exists, start)
	return exists, nil
}

// parseIntervalExpr parses INTERVAL value [unit]. The value binds like a
// unary operand so INTERVAL '1' DAY + x adds to the interval.
func (p *Parser) parseIntervalExpr() (core.Expr, error) {
	start := p.token.Pos
	p.nextToken() // consume INTERVAL

	value, err := p.parseExpressionWithPrecedence(spi.PrecedenceUnary)
	if err != nil {
		return nil, err
	}
	interval := &core.IntervalExpr{Value: value}
	if isWord(p.token) && intervalUnits[strings.ToUpper(p.token.Literal)] {
		interval.Unit = strings.ToUpper(p.token.Literal)
		p.nextToken()
	}
	p.finish(interval, start)
	return interval, nil
}

// parseTypedLiteral parses DATE '...', TIME '...' or TIMESTAMP '...'.
func (p *Parser) parseTypedLiteral() (core.Expr, error) {
	start := p.token.Pos
	lit := &core.TypedLiteral{Type: &core.DataType{Name: p.token.Type.String()}}
	p.nextToken()
	lit.Value = p.token.Literal
	p.nextToken()
	p.finish(lit, start)
	return lit, nil
}

// parseParenExpr parses a parenthesized expression, a tuple or a subquery.
// Grouping parentheses produce no node of their own.
func (p *Parser) parseParenExpr() (core.Expr, error) {
	start := p.token.Pos

	if query, direct := p.parenQueryAhead(); query {
		m := p.mark()
		sub, err := p.parseSubqueryExpr(start)
		if err == nil || direct {
			return sub, err
		}
		p.reset(m)
	}

	p.nextToken() // consume (
	exprs, err := p.parseExpressionList()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	tuple := &core.TupleExpr{Exprs: exprs}
	p.finish(tuple, start)
	return tuple, nil
}

// parseSubqueryExpr parses "(" query ")" as a scalar subquery.
func (p *Parser) parseSubqueryExpr(start token.Position) (core.Expr, error) {
	p.nextToken() // consume (
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	sub := &core.SubqueryExpr{Query: q}
	p.finish(sub, start)
	return sub, nil
}
