// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlparser/pkg/dialect"

func init() {
	dialect.Register(Snowflake)
}

// snowflakeReservedWords are Snowflake reserved words beyond the core set.
var snowflakeReservedWords = []string{
	"account", "column", "connection", "current_date", "current_time",
	"current_timestamp", "current_user", "database", "gscluster", "ilike",
	"increment", "issue", "localtime", "localtimestamp", "minus", "of",
	"organization", "qualify", "regexp", "revoke", "rlike", "sample",
	"schema", "some", "start", "tablesample", "to", "trigger", "try_cast",
	"view",
}

// Snowflake is the Snowflake SQL dialect.
// Builder reads Config flags and auto-wires standard features:
// - QUALIFY clause (SupportsQualify)
// - ILIKE operator (SupportsIlike)
// - :: cast operator (SupportsCastOperator)
var Snowflake = dialect.New(Config).
	// Clause Sequence - QUALIFY follows HAVING
	Clauses(
		dialect.StandardWhere,
		dialect.StandardGroupBy,
		dialect.StandardHaving,
		dialect.StandardQualify,
	).
	// Operators - standard ANSI (ILIKE and DCOLON are auto-wired)
	Operators(dialect.ANSIOperators).
	// Edge keywords - Snowflake-specific (not auto-wired)
	AddLike("RLIKE", dialect.TokenRlike).
	AddLike("REGEXP", dialect.TokenRegexp).
	// Join Types - standard ANSI
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(snowflakeReservedWords...).
	Build()

