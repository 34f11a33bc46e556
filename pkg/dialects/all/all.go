// Package all registers every built-in dialect. Import it for side effects
// or use ByFlag to resolve a command-line switch.
package all

import (
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/hive"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/snowflake"
)

// Dialects lists the built-in dialects in command-line flag order.
var Dialects = []*dialect.Dialect{
	ansi.ANSI,
	postgres.Postgres,
	mssql.MSSQL,
	mysql.MySQL,
	snowflake.Snowflake,
	hive.Hive,
	generic.Generic,
}

// Default returns the dialect used when none is selected.
func Default() *dialect.Dialect {
	return generic.Generic
}

// ByFlag resolves a dialect by name or flag, with or without leading dashes.
// An empty flag selects the default dialect.
func ByFlag(flag string) (*dialect.Dialect, error) {
	if flag == "" {
		return Default(), nil
	}
	return dialect.Lookup(flag)
}

// Flags returns the command-line flag of every built-in dialect.
func Flags() []string {
	out := make([]string, len(Dialects))
	for i, d := range Dialects {
		out[i] = d.Flag
	}
	return out
}
