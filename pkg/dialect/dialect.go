// Package dialect provides SQL dialect capabilities for the lexer, parser and
// renderer.
//
// A Dialect is an immutable value built once with the fluent Builder. It
// describes identifier quoting, reserved words, the lexer symbol table, the
// operator precedence table, join types and the SELECT clause sequence.
// Concrete dialects are registered from pkg/dialects/*/ packages.
package dialect

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// ClauseOption configures a ClauseDef.
type ClauseOption func(*core.ClauseDef)

// WithKeywords sets the display keywords for a clause.
func WithKeywords(keywords ...string) ClauseOption {
	return func(c *core.ClauseDef) {
		c.Keywords = keywords
	}
}

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Flag        string // command-line switch, without dashes
	Identifiers core.IdentifierConfig
	Placeholder core.PlaceholderStyle

	features core.DialectConfig

	// Lexical behavior
	quotes     map[rune]rune // opening quote -> closing quote
	identStart string
	identPart  string

	// Keywords
	reservedWords map[string]struct{} // Words that need quoting as identifiers

	// Parsing behavior (for dialect-aware parsing)
	clauseSequence []token.TokenType                     // Order of clauses in a SELECT core
	clauseDefs     map[token.TokenType]core.ClauseDef    // Handler + Slot per clause
	symbols        map[string]token.TokenType            // Operators and punctuation: "::" -> DCOLON
	maxSymbolLen   int                                   // Longest symbol, for greedy matching
	dynamicKw      map[string]token.TokenType            // Custom keywords: "qualify" -> QUALIFY
	precedence     map[token.TokenType]int               // Operator precedence for expressions
	rightAssoc     map[token.TokenType]bool              // Right-associative operators
	likeOps        map[token.TokenType]struct{}          // LIKE and its variants (ILIKE, RLIKE)
	infixHandlers  map[token.TokenType]spi.InfixHandler  // Optional custom infix parsing
	prefixHandlers map[token.TokenType]spi.PrefixHandler // Prefix expression handlers
	joinTypes      map[token.TokenType]core.JoinTypeDef  // Join types keyed by leading keyword
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	cfg := d.features
	cfg.Name = d.Name
	cfg.Flag = d.Flag
	cfg.Identifiers = d.Identifiers
	cfg.Placeholder = d.Placeholder
	cfg.ExtraQuotes = append([]core.IdentifierConfig(nil), d.features.ExtraQuotes...)
	return &cfg
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// String returns the dialect name.
func (d *Dialect) String() string {
	return d.Name
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// IsReservedWord returns true if the word cannot be used as a bare identifier.
// Reserved words are compared case-insensitively regardless of normalization.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// ReservedWords returns the sorted reserved word list.
func (d *Dialect) ReservedWords() []string {
	words := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it's a reserved word.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// ---------- Lexical Behavior Methods ----------

// QuoteEnd returns the closing delimiter when r opens a quoted identifier.
func (d *Dialect) QuoteEnd(r rune) (rune, bool) {
	end, ok := d.quotes[r]
	return end, ok
}

// QuoteChars returns the opening identifier quote characters, primary first.
func (d *Dialect) QuoteChars() []rune {
	var out []rune
	if r, _ := utf8.DecodeRuneInString(d.Identifiers.Quote); r != utf8.RuneError {
		out = append(out, r)
	}
	for _, q := range d.features.ExtraQuotes {
		if r, _ := utf8.DecodeRuneInString(q.Quote); r != utf8.RuneError {
			out = append(out, r)
		}
	}
	return out
}

// IsIdentStart reports whether r may start a bare identifier.
func (d *Dialect) IsIdentStart(r rune) bool {
	return r == '_' || isLetter(r) || strings.ContainsRune(d.identStart, r)
}

// IsIdentPart reports whether r may continue a bare identifier.
func (d *Dialect) IsIdentPart(r rune) bool {
	return r == '_' || isLetter(r) || isDigit(r) ||
		strings.ContainsRune(d.identStart, r) || strings.ContainsRune(d.identPart, r)
}

// BackslashEscapes reports whether string literals interpret \ escapes.
func (d *Dialect) BackslashEscapes() bool { return d.features.BackslashEscapes }

// HashComments reports whether # starts a line comment.
func (d *Dialect) HashComments() bool { return d.features.HashComments }

// ---------- Feature Methods ----------

// SupportsReturning reports whether DML statements accept RETURNING.
func (d *Dialect) SupportsReturning() bool { return d.features.SupportsReturning }

// SupportsTop reports whether SELECT accepts TOP n.
func (d *Dialect) SupportsTop() bool { return d.features.SupportsTop }

// SupportsQualify reports whether SELECT accepts QUALIFY.
func (d *Dialect) SupportsQualify() bool { return d.features.SupportsQualify }

// SupportsCastOperator reports whether expr::type is accepted.
func (d *Dialect) SupportsCastOperator() bool { return d.features.SupportsCastOperator }

// SupportsIlike reports whether ILIKE is accepted.
func (d *Dialect) SupportsIlike() bool { return d.features.SupportsIlike }

// ---------- Parsing Behavior Methods ----------

// ClauseSequence returns the ordered list of clause token types for this dialect.
func (d *Dialect) ClauseSequence() []token.TokenType {
	return d.clauseSequence
}

// ClauseHandler returns the handler for a clause token type.
func (d *Dialect) ClauseHandler(t token.TokenType) spi.ClauseHandler {
	if def, ok := d.clauseDefs[t]; ok {
		if h, ok := def.Handler.(spi.ClauseHandler); ok {
			return h
		}
	}
	return nil
}

// ClauseDef returns the definition (handler + slot) for a clause token type.
func (d *Dialect) ClauseDef(t token.TokenType) (core.ClauseDef, bool) {
	def, ok := d.clauseDefs[t]
	return def, ok
}

// IsClauseToken returns true if this dialect supports the given clause token.
func (d *Dialect) IsClauseToken(t token.TokenType) bool {
	_, ok := d.ClauseDef(t)
	return ok
}

// Symbols returns the operator and punctuation table for lexer symbol matching.
func (d *Dialect) Symbols() map[string]token.TokenType {
	return d.symbols
}

// MatchSymbol returns the longest symbol that prefixes src and its byte length.
func (d *Dialect) MatchSymbol(src string) (token.TokenType, int) {
	n := d.maxSymbolLen
	if n > len(src) {
		n = len(src)
	}
	for ; n > 0; n-- {
		if t, ok := d.symbols[src[:n]]; ok {
			return t, n
		}
	}
	return token.ILLEGAL, 0
}

// LookupKeyword returns the token type for a dynamic keyword.
// Returns the token type and true if found, or IDENT and false if not.
func (d *Dialect) LookupKeyword(name string) (token.TokenType, bool) {
	if t, ok := d.dynamicKw[strings.ToLower(name)]; ok {
		return t, true
	}
	return token.IDENT, false
}

// Precedence returns the precedence level for an operator token.
// Returns 0 (PrecedenceNone) if the operator is not recognized.
func (d *Dialect) Precedence(t token.TokenType) int {
	if p, ok := d.precedence[t]; ok {
		return p
	}
	return core.PrecedenceNone
}

// IsRightAssoc reports whether an infix operator is right-associative.
func (d *Dialect) IsRightAssoc(t token.TokenType) bool {
	return d.rightAssoc[t]
}

// IsLikeOperator reports whether t is LIKE or a dialect variant of it.
func (d *Dialect) IsLikeOperator(t token.TokenType) bool {
	_, ok := d.likeOps[t]
	return ok
}

// InfixOperators returns the tokens with an infix precedence, ordered by
// precedence then name.
func (d *Dialect) InfixOperators() []token.TokenType {
	ops := make([]token.TokenType, 0, len(d.precedence))
	for t := range d.precedence {
		ops = append(ops, t)
	}
	sort.Slice(ops, func(i, j int) bool {
		pi, pj := d.precedence[ops[i]], d.precedence[ops[j]]
		if pi != pj {
			return pi < pj
		}
		return ops[i].String() < ops[j].String()
	})
	return ops
}

// InfixHandler returns the custom infix handler for an operator token.
func (d *Dialect) InfixHandler(t token.TokenType) spi.InfixHandler {
	if h, ok := d.infixHandlers[t]; ok {
		return h
	}
	return nil
}

// PrefixHandler returns the custom prefix handler for an operator token.
func (d *Dialect) PrefixHandler(t token.TokenType) spi.PrefixHandler {
	if h, ok := d.prefixHandlers[t]; ok {
		return h
	}
	return nil
}

// JoinTypeDef returns the definition for a join type keyed by its leading keyword.
func (d *Dialect) JoinTypeDef(t token.TokenType) (core.JoinTypeDef, bool) {
	def, ok := d.joinTypes[t]
	return def, ok
}

// IsJoinTypeToken returns true if the token starts a join type.
func (d *Dialect) IsJoinTypeToken(t token.TokenType) bool {
	_, ok := d.JoinTypeDef(t)
	return ok
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
