package core

import "github.com/leapstack-labs/sqlparser/pkg/token"

// ClauseSlot specifies where a parsed clause result is stored in SelectCore.
// This lets dialects declare storage locations for their clauses.
type ClauseSlot int

// ClauseSlot constants define where parsed clause results are stored in SelectCore.
const (
	SlotWhere   ClauseSlot = iota // Expr
	SlotGroupBy                   // []Expr
	SlotHaving                    // Expr
	SlotQualify                   // Expr
)

// String returns the slot name for debugging.
func (s ClauseSlot) String() string {
	switch s {
	case SlotWhere:
		return "WHERE"
	case SlotGroupBy:
		return "GROUP BY"
	case SlotHaving:
		return "HAVING"
	case SlotQualify:
		return "QUALIFY"
	default:
		return "UNKNOWN"
	}
}

// Precedence levels for operator precedence parsing. Higher binds tighter.
// The gaps leave room for dialect levels such as MySQL's high-binding ^.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 10
	PrecedenceAnd        = 20
	PrecedenceNot        = 30 // prefix NOT
	PrecedenceComparison = 40 // =, <>, <, >, <=, >=, LIKE, ILIKE, IN, BETWEEN, IS
	PrecedenceBitwiseOr  = 50 // |
	PrecedenceBitwiseXor = 52 // ^
	PrecedenceBitwiseAnd = 54 // &
	PrecedenceAddition   = 60 // +, -, ||
	PrecedenceMultiply   = 70 // *, /, %, DIV
	PrecedenceUnary      = 80 // prefix - and +
	PrecedencePostfix    = 90 // ::
	PrecedenceMax        = 100
)

// ClauseDef bundles clause parsing logic with storage destination.
// Handler is stored as 'any' to avoid import cycles with pkg/spi.
// Consumers cast to spi.ClauseHandler when invoking.
type ClauseDef struct {
	Token    token.TokenType
	Handler  any // spi.ClauseHandler - cast at call site
	Slot     ClauseSlot
	Keywords []string // Keywords to print for this clause (e.g. "GROUP", "BY")
}

// OperatorDef defines an infix operator with precedence.
// Handler is stored as 'any' to avoid import cycles.
type OperatorDef struct {
	Token      token.TokenType
	Symbol     string // lexer symbol, empty for builtin or keyword operators
	Keyword    string // word operator such as DIV, registered as a dialect keyword
	Precedence int
	RightAssoc bool
	Handler    any // spi.InfixHandler - cast at call site
}
