// Package mssql provides the Microsoft SQL Server (T-SQL) dialect definition.
// This package is pure Go with no database driver dependencies.
package mssql

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the SQL Server dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "mssql",
	Flag:        "ms",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: core.NormCaseInsensitive,
	},
	ExtraQuotes: []core.IdentifierConfig{
		{Quote: `"`, QuoteEnd: `"`, Escape: `""`},
	},
	IdentStart: "@#", // @variables and #temp tables
	IdentPart:  "$",

	// Framework Features (auto-wired by Builder)
	SupportsTop: true,
	// SQL Server does NOT support these:
	// - :: cast operator
	// - ILIKE
	// - RETURNING (it has OUTPUT instead)
}
