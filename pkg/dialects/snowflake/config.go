// Package snowflake provides the Snowflake SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package snowflake

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the Snowflake SQL dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "snowflake",
	Flag:        "snowflake",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // Snowflake normalizes to uppercase
	},
	IdentPart: "$",

	// Framework Features (auto-wired by Builder)
	SupportsQualify:      true,
	SupportsIlike:        true,
	SupportsCastOperator: true, // :: operator

	// Snowflake does NOT support these:
	// - RETURNING
	// - TOP (accepted by Snowflake, left out to keep TOP a plain identifier)
}
