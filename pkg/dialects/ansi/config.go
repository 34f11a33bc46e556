// Package ansi provides the base ANSI SQL dialect.
package ansi

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the ANSI SQL dialect configuration.
// ANSI enables no optional framework features.
var Config = &core.DialectConfig{
	Name:        "ansi",
	Flag:        "ansi",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase, // SQL standard folds unquoted names to upper case
	},
}
