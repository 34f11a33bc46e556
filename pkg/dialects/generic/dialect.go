// Package generic provides the permissive default dialect.
// This package is pure Go and is selected when no dialect flag is given.
package generic

import "github.com/leapstack-labs/sqlparser/pkg/dialect"

func init() {
	dialect.Register(Generic)
}

// Generic is the default dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE operator (SupportsIlike)
// - :: cast operator (SupportsCastOperator)
// - RETURNING clause (SupportsReturning)
var Generic = dialect.New(Config).
	// Clause Sequence - standard ANSI clauses
	Clauses(dialect.StandardSelectClauses...).
	// Operators - ANSI plus C-style bitwise operators
	Operators(
		dialect.ANSIOperators,
		dialect.BitwiseOperators,
	).
	// Join Types - standard ANSI
	JoinTypes(dialect.ANSIJoinTypes).
	Build()
