// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/sqlparser/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

// mysqlReservedWords are MySQL reserved words beyond the core set.
var mysqlReservedWords = []string{
	"accessible", "add", "analyze", "asensitive", "before", "both", "call",
	"cascade", "change", "column", "condition", "continue", "convert",
	"current_date", "current_time", "current_timestamp", "current_user",
	"database", "databases", "dual", "each", "elseif", "escaped", "exit",
	"explain", "fulltext", "grant", "if", "ignore", "index", "interval",
	"key", "keys", "kill", "leading", "leave", "lines", "load", "lock",
	"loop", "match", "mod", "modifies", "option", "optionally", "partition",
	"procedure", "range", "read", "regexp", "release", "rename", "repeat",
	"replace", "require", "restrict", "revoke", "rlike", "schema",
	"schemas", "separator", "show", "signal", "spatial", "sql", "ssl",
	"starting", "straight_join", "to", "trailing", "trigger", "undo",
	"unlock", "unsigned", "usage", "use", "utc_date", "utc_time",
	"utc_timestamp", "varying", "while", "write", "xor", "zerofill",
}

// MySQL is the MySQL dialect.
// Edge features (not auto-wired by the framework):
// - DIV integer division and MySQL bitwise precedence (^ above *)
// - RLIKE / REGEXP pattern matching
var MySQL = dialect.New(Config).
	Clauses(dialect.StandardSelectClauses...).
	Operators(
		dialect.ANSIOperators,
		dialect.MySQLOperators,
	).
	AddLike("RLIKE", dialect.TokenRlike).
	AddLike("REGEXP", dialect.TokenRegexp).
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(mysqlReservedWords...).
	Build()
