// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// postgresReservedWords contains common PostgreSQL reserved words.
// This is a manually maintained list of frequently problematic identifiers.
// For a complete list, use pg_get_keywords() at runtime.
var postgresReservedWords = []string{
	"user", "index", "any", "array", "asymmetric", "authorization",
	"binary", "both", "collate", "column", "current_catalog", "current_date",
	"current_role", "current_schema", "current_time", "current_timestamp",
	"current_user", "deferrable", "do", "freeze", "grant", "ilike",
	"initially", "isnull", "leading", "localtime", "localtimestamp",
	"notnull", "only", "overlaps", "placing", "session_user", "similar",
	"some", "symmetric", "to", "trailing", "variadic", "verbose",
}

// Postgres is the PostgreSQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - ILIKE operator (SupportsIlike)
// - :: cast operator (SupportsCastOperator)
// - RETURNING clause (SupportsReturning)
var Postgres = dialect.New(Config).
	// Clause Sequence - standard ANSI clauses (no QUALIFY)
	Clauses(dialect.StandardSelectClauses...).
	// Operators - standard ANSI operators plus & and | (ILIKE and DCOLON are auto-wired)
	Operators(dialect.ANSIOperators, dialect.PostgresBitwiseOperators).
	// Join Types - standard ANSI only
	JoinTypes(dialect.ANSIJoinTypes).
	// Reserved words
	WithReservedWords(postgresReservedWords...).
	Build()
