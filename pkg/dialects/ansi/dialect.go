// Package ansi provides the base ANSI SQL dialect with the standard clause
// sequence, operator precedence and join types.
//
// It is the strictest dialect: double-quoted identifiers only and no vendor
// operators.
package ansi

import "github.com/leapstack-labs/sqlparser/pkg/dialect"

func init() {
	dialect.Register(ANSI)
}

// ansiReservedWords are SQL:2016 reserved words beyond the core set.
var ansiReservedWords = []string{
	"any", "array", "asymmetric", "both", "collate", "column", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"extract", "filter", "grant", "interval", "leading", "localtime",
	"localtimestamp", "over", "overlaps", "partition", "position", "range",
	"rows", "session_user", "similar", "some", "symmetric", "to",
	"trailing", "user",
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.New(Config).
	Clauses(dialect.StandardSelectClauses...).
	Operators(dialect.ANSIOperators).
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(ansiReservedWords...).
	Build()
