package dialect

// This file contains operator definitions that form the "toolbox" of
// reusable operator configurations. These can be composed into any dialect.

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// ANSIOperators contains standard SQL operators with their precedence.
var ANSIOperators = []core.OperatorDef{
	// Logical operators (lowest precedence)
	{Token: token.OR, Precedence: core.PrecedenceOr},
	{Token: token.AND, Precedence: core.PrecedenceAnd},

	// Comparison operators
	{Token: token.EQ, Precedence: core.PrecedenceComparison},
	{Token: token.NE, Precedence: core.PrecedenceComparison},
	{Token: token.LT, Precedence: core.PrecedenceComparison},
	{Token: token.GT, Precedence: core.PrecedenceComparison},
	{Token: token.LE, Precedence: core.PrecedenceComparison},
	{Token: token.GE, Precedence: core.PrecedenceComparison},
	{Token: token.LIKE, Precedence: core.PrecedenceComparison},
	{Token: token.IN, Precedence: core.PrecedenceComparison},
	{Token: token.BETWEEN, Precedence: core.PrecedenceComparison},
	{Token: token.IS, Precedence: core.PrecedenceComparison},

	// Arithmetic operators
	{Token: token.PLUS, Precedence: core.PrecedenceAddition},
	{Token: token.MINUS, Precedence: core.PrecedenceAddition},
	{Token: token.DPIPE, Precedence: core.PrecedenceAddition}, // || string concatenation

	// Multiplicative operators (highest precedence for binary ops)
	{Token: token.STAR, Precedence: core.PrecedenceMultiply},
	{Token: token.SLASH, Precedence: core.PrecedenceMultiply},
	{Token: token.PERCENT, Precedence: core.PrecedenceMultiply},
}

// BitwiseOperators are the C-style bitwise operators below addition.
var BitwiseOperators = []core.OperatorDef{
	{Token: token.PIPE, Symbol: "|", Precedence: core.PrecedenceBitwiseOr},
	{Token: token.CARET, Symbol: "^", Precedence: core.PrecedenceBitwiseXor},
	{Token: token.AMP, Symbol: "&", Precedence: core.PrecedenceBitwiseAnd},
}

// PostgresBitwiseOperators omits ^, which is exponentiation in PostgreSQL.
var PostgresBitwiseOperators = []core.OperatorDef{
	{Token: token.PIPE, Symbol: "|", Precedence: core.PrecedenceBitwiseOr},
	{Token: token.AMP, Symbol: "&", Precedence: core.PrecedenceBitwiseAnd},
}

// MSSQLBitwiseOperators binds &, | and ^ at the additive level as T-SQL does.
var MSSQLBitwiseOperators = []core.OperatorDef{
	{Token: token.PIPE, Symbol: "|", Precedence: core.PrecedenceAddition},
	{Token: token.CARET, Symbol: "^", Precedence: core.PrecedenceAddition},
	{Token: token.AMP, Symbol: "&", Precedence: core.PrecedenceAddition},
}

// MySQLOperators are the MySQL bitwise operators, with ^ binding tighter
// than multiplication, and integer division.
var MySQLOperators = []core.OperatorDef{
	{Token: token.PIPE, Symbol: "|", Precedence: core.PrecedenceBitwiseOr},
	{Token: token.AMP, Symbol: "&", Precedence: core.PrecedenceBitwiseAnd},
	{Token: token.CARET, Symbol: "^", Precedence: core.PrecedenceMultiply + 5},
	{Token: TokenDiv, Keyword: "DIV", Precedence: core.PrecedenceMultiply},
}
