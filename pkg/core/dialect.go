package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data, no handler functions.
//
// The runtime behavior (clause handlers, operator table, keywords) lives in
// pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "mysql", "postgres")
	Name string

	// Flag is the command-line switch selecting the dialect, without dashes.
	Flag string

	// Identifiers defines the primary quoting and normalization rules
	Identifiers IdentifierConfig

	// ExtraQuotes lists additional identifier quote pairs the lexer accepts.
	ExtraQuotes []IdentifierConfig

	// IdentStart and IdentPart list characters beyond letters, digits and
	// underscore that may start or continue a bare identifier.
	IdentStart string
	IdentPart  string

	// Lexical features
	BackslashEscapes bool // '\n' style escapes inside string literals
	HashComments     bool // # starts a line comment

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// Framework Features (auto-wired by dialect.Builder)
	SupportsIlike        bool // ILIKE operator
	SupportsCastOperator bool // expr::type
	SupportsReturning    bool // INSERT/UPDATE/DELETE ... RETURNING
	SupportsQualify      bool // QUALIFY clause
	SupportsTop          bool // SELECT TOP n
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (Hive, SQL Server).
	NormCaseInsensitive
)

// String returns the strategy name.
func (n NormalizationStrategy) String() string {
	switch n {
	case NormLowercase:
		return "lowercase"
	case NormUppercase:
		return "uppercase"
	case NormCaseSensitive:
		return "case-sensitive"
	case NormCaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (MySQL, Hive).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}
