// Package mssql provides the Microsoft SQL Server (T-SQL) dialect definition.
// This package is pure Go with no database driver dependencies.
package mssql

import "github.com/leapstack-labs/sqlparser/pkg/dialect"

func init() {
	dialect.Register(MSSQL)
}

// mssqlReservedWords are T-SQL reserved words beyond the core set.
var mssqlReservedWords = []string{
	"add", "authorization", "backup", "begin", "break", "browse", "bulk",
	"cascade", "checkpoint", "close", "clustered", "column", "commit",
	"compute", "contains", "containstable", "continue", "convert",
	"current_date", "current_time", "current_timestamp", "current_user",
	"database", "dbcc", "deallocate", "declare", "deny", "disk", "distributed",
	"dump", "errlvl", "escape", "exec", "execute", "exit", "file",
	"fillfactor", "freetext", "function", "goto", "grant", "holdlock",
	"identity", "if", "index", "key", "kill", "lineno", "load", "merge",
	"nocheck", "nonclustered", "of", "off", "offsets", "open", "option",
	"over", "percent", "pivot", "plan", "print", "proc", "procedure",
	"public", "raiserror", "read", "readtext", "reconfigure", "replication",
	"restore", "restrict", "return", "revert", "revoke", "rollback",
	"rowcount", "rule", "save", "schema", "securityaudit", "session_user",
	"setuser", "shutdown", "some", "statistics", "system_user",
	"tablesample", "textsize", "to", "top", "tran", "transaction",
	"trigger", "truncate", "tsequal", "unpivot", "use", "user", "varying",
	"view", "waitfor", "while", "writetext",
}

// MSSQL is the SQL Server dialect.
// Builder reads Config flags and auto-wires standard features:
// - SELECT TOP n (SupportsTop)
// Bitwise operators bind at the additive level.
var MSSQL = dialect.New(Config).
	Clauses(dialect.StandardSelectClauses...).
	Operators(
		dialect.ANSIOperators,
		dialect.MSSQLBitwiseOperators,
	).
	JoinTypes(dialect.ANSIJoinTypes).
	WithReservedWords(mssqlReservedWords...).
	Build()
