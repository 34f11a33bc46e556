// Package spi provides Service Provider Interface types for dialect
// clause and operator handlers to interact with the parser without
// circular dependencies.
package spi

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// ParserOps exposes parser operations to dialect handlers.
type ParserOps interface {
	// Token access
	Token() token.Token
	Peek() token.Token

	// Consumption
	Match(t token.TokenType) bool
	Expect(t token.TokenType) error
	NextToken()
	Check(t token.TokenType) bool

	// Sub-parsers
	ParseExpression() (core.Expr, error)
	ParseExpressionWithPrecedence(minPrec int) (core.Expr, error)
	ParseExpressionList() ([]core.Expr, error)
	ParseOrderByList() ([]core.OrderByItem, error)
	ParseIdentifier() (core.Ident, error)
	ParseDataType() (*core.DataType, error)

	// Errorf returns a parse error positioned at the current token.
	Errorf(format string, args ...any) error
	Position() token.Position
}

// ClauseHandler parses a dialect-specific clause.
// Called AFTER the clause keyword has been consumed.
// The result type depends on the clause slot: an expression for
// WHERE/HAVING/QUALIFY, an expression list for GROUP BY.
type ClauseHandler func(p ParserOps) (any, error)

// InfixHandler parses a dialect-specific infix or postfix operator.
// Called AFTER the operator has been consumed; left is the already-parsed
// left operand.
type InfixHandler func(p ParserOps, left core.Expr) (core.Expr, error)

// PrefixHandler parses a dialect-specific prefix operator.
// Called AFTER the operator has been consumed.
type PrefixHandler func(p ParserOps) (core.Expr, error)

// Precedence levels, re-exported for dialect handlers.
const (
	PrecedenceNone       = core.PrecedenceNone
	PrecedenceOr         = core.PrecedenceOr
	PrecedenceAnd        = core.PrecedenceAnd
	PrecedenceNot        = core.PrecedenceNot
	PrecedenceComparison = core.PrecedenceComparison
	PrecedenceAddition   = core.PrecedenceAddition
	PrecedenceMultiply   = core.PrecedenceMultiply
	PrecedenceUnary      = core.PrecedenceUnary
	PrecedencePostfix    = core.PrecedencePostfix
)
