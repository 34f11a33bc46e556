// Package dialect provides SQL dialect capabilities for the lexer, parser and
// renderer.
//
// This file contains stateless clause and operator handlers that form the
// "toolbox" of reusable parsing logic. These handlers are pure functions that
// accept spi.ParserOps.
package dialect

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// ---------- Standard Clause Handlers ----------
// These are stateless functions that can be composed into any dialect.
// The leading keyword has already been consumed when these are called.

// ParseWhere handles the standard WHERE clause.
// The WHERE keyword has already been consumed.
func ParseWhere(p spi.ParserOps) (any, error) {
	return p.ParseExpression()
}

// ParseGroupBy handles the standard GROUP BY clause.
// The GROUP keyword has already been consumed.
func ParseGroupBy(p spi.ParserOps) (any, error) {
	if err := p.Expect(token.BY); err != nil {
		return nil, err
	}
	return p.ParseExpressionList()
}

// ParseHaving handles the standard HAVING clause.
// The HAVING keyword has already been consumed.
func ParseHaving(p spi.ParserOps) (any, error) {
	return p.ParseExpression()
}

// ParseQualify handles the QUALIFY clause (Snowflake).
// The QUALIFY keyword has already been consumed.
func ParseQualify(p spi.ParserOps) (any, error) {
	return p.ParseExpression()
}

// ---------- Operator Handlers ----------

// ParseCastOperator handles the postfix cast expr::type.
// The :: operator has already been consumed.
func ParseCastOperator(p spi.ParserOps, left core.Expr) (core.Expr, error) {
	typ, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	return &core.CastExpr{Expr: left, Type: typ}, nil
}
