// Package hive provides the Apache Hive (HiveQL) dialect definition.
// This package is pure Go with no database driver dependencies.
package hive

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
)

func init() {
	dialect.Register(Hive)
}

// --- Hive-specific Operators ---

var hiveOperators = []core.OperatorDef{
	{Token: dialect.TokenDiv, Keyword: "DIV", Precedence: core.PrecedenceMultiply},
}

// hiveReservedWords are HiveQL reserved words beyond the core set.
var hiveReservedWords = []string{
	"array", "binary", "both", "column", "current_date", "current_timestamp",
	"cursor", "database", "exchange", "extended", "external", "function",
	"grant", "grouping", "if", "import", "interval", "lateral", "less",
	"local", "macro", "map", "more", "none", "of", "partition", "percent",
	"preserve", "procedure", "range", "reads", "reduce", "regexp", "revoke",
	"rlike", "rollup", "sync", "to", "transform", "trigger", "user", "view",
}

// Hive is the Hive dialect.
// Edge features (not auto-wired by the framework):
// - DIV integer division
// - RLIKE / REGEXP pattern matching
var Hive = dialect.New(Config).
	Clauses(dialect.StandardSelectClauses...).
	Operators(
		dialect.ANSIOperators,
		dialect.BitwiseOperators,
		hiveOperators,
	).
	AddLike("RLIKE", dialect.TokenRlike).
	AddLike("REGEXP", dialect.TokenRegexp).
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(hiveReservedWords...).
	Build()
