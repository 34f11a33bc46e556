// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the MySQL dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "mysql",
	Flag:        "mysql",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseSensitive, // table names follow the file system
	},
	IdentStart: "@",
	IdentPart:  "$",

	BackslashEscapes: true,
	HashComments:     true,
	// MySQL does NOT support these:
	// - :: cast operator
	// - ILIKE
	// - RETURNING
}
