// Package generic provides the permissive default dialect.
// It accepts the union of the common vendor extensions.
package generic

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the generic dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "generic",
	Flag:        "generic",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormCaseInsensitive,
	},
	ExtraQuotes: []core.IdentifierConfig{
		{Quote: "`", QuoteEnd: "`", Escape: "``"},
		{Quote: "[", QuoteEnd: "]", Escape: "]]"},
	},
	IdentStart: "@",
	IdentPart:  "$",

	// Framework Features (auto-wired by Builder)
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsReturning:    true,
	// Generic does NOT support these:
	// - QUALIFY (it would shadow a common column name)
	// - TOP (SELECT TOP is T-SQL only)
}
