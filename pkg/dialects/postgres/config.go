// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the PostgreSQL dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "postgres",
	Flag:        "postgres",
	Placeholder: core.PlaceholderDollar,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormLowercase, // Postgres normalizes unquoted to lowercase
	},
	IdentPart: "$",

	// Framework Features (auto-wired by Builder)
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsReturning:    true,
	// PostgreSQL does NOT support these:
	// - QUALIFY (window filtering clause)
	// - TOP
}
