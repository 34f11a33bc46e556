// Package hive provides the Apache Hive (HiveQL) dialect definition.
// This package is pure Go with no database driver dependencies.
package hive

import "github.com/leapstack-labs/sqlparser/pkg/core"

// Config is the Hive dialect configuration.
// The Builder reads feature flags and auto-wires standard capabilities.
var Config = &core.DialectConfig{
	Name:        "hive",
	Flag:        "hive",
	Placeholder: core.PlaceholderQuestion,
	Identifiers: core.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: core.NormCaseInsensitive,
	},

	BackslashEscapes: true,
	HashComments:     true,
	// Hive does NOT support these:
	// - :: cast operator
	// - QUALIFY
	// - RETURNING
}
