package dialect

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/spi"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
	config  *core.DialectConfig // Optional config for auto-wiring features
}

func newDialect(name string) *Dialect {
	return &Dialect{
		Name: name,
		Flag: name,
		Identifiers: core.IdentifierConfig{
			Quote:         `"`,
			QuoteEnd:      `"`,
			Escape:        `""`,
			Normalization: core.NormLowercase,
		},
		quotes:         make(map[rune]rune),
		reservedWords:  make(map[string]struct{}),
		clauseDefs:     make(map[token.TokenType]core.ClauseDef),
		symbols:        make(map[string]token.TokenType),
		dynamicKw:      make(map[string]token.TokenType),
		precedence:     make(map[token.TokenType]int),
		rightAssoc:     make(map[token.TokenType]bool),
		likeOps:        make(map[token.TokenType]struct{}),
		infixHandlers:  make(map[token.TokenType]spi.InfixHandler),
		prefixHandlers: make(map[token.TokenType]spi.PrefixHandler),
		joinTypes:      make(map[token.TokenType]core.JoinTypeDef),
	}
}

// NewDialect creates a new dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{dialect: newDialect(name)}
}

// New creates a dialect builder from a DialectConfig.
// The builder will auto-wire features based on config flags when Build() is called.
// This is the preferred constructor for dialects that use feature flags.
func New(cfg *core.DialectConfig) *Builder {
	d := newDialect(cfg.Name)
	if cfg.Flag != "" {
		d.Flag = cfg.Flag
	}
	if cfg.Identifiers.Quote != "" {
		d.Identifiers = cfg.Identifiers
	}
	d.Placeholder = cfg.Placeholder
	d.identStart = cfg.IdentStart
	d.identPart = cfg.IdentPart
	d.features = *cfg
	return &Builder{config: cfg, dialect: d}
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// ExtraQuote accepts an additional identifier quote pair.
func (b *Builder) ExtraQuote(quote, quoteEnd string) *Builder {
	b.dialect.features.ExtraQuotes = append(b.dialect.features.ExtraQuotes, core.IdentifierConfig{
		Quote:    quote,
		QuoteEnd: quoteEnd,
		Escape:   quoteEnd + quoteEnd,
	})
	return b
}

// IdentChars sets the extra characters allowed to start or continue a bare identifier.
func (b *Builder) IdentChars(start, part string) *Builder {
	b.dialect.identStart = start
	b.dialect.identPart = part
	return b
}

// PlaceholderStyle sets how query parameters are formatted.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Build returns the constructed dialect.
// Builtin punctuation and the core reserved words are always present.
// If the builder was created with New(cfg), this auto-wires features based on config flags.
func (b *Builder) Build() *Dialect {
	d := b.dialect

	for sym, t := range builtinSymbols {
		if _, ok := d.symbols[sym]; !ok {
			d.symbols[sym] = t
		}
	}
	b.WithReservedWords(CoreReservedWords...)
	d.likeOps[token.LIKE] = struct{}{}

	// Clause sequence falls back to the standard WHERE / GROUP BY / HAVING.
	// Seeded before autoWire so an auto-wired QUALIFY extends it.
	if len(d.clauseSequence) == 0 {
		b.Clauses(StandardSelectClauses...)
	}

	if cfg := b.config; cfg != nil {
		b.autoWire(cfg)
	}

	// Every dynamic keyword is reserved in the dialect that defines it.
	for name := range d.dynamicKw {
		d.reservedWords[name] = struct{}{}
	}

	b.buildQuotes()

	d.maxSymbolLen = 0
	for sym := range d.symbols {
		if len(sym) > d.maxSymbolLen {
			d.maxSymbolLen = len(sym)
		}
	}
	return d
}

func (b *Builder) autoWire(cfg *core.DialectConfig) {
	// ===== Auto-wire clause extensions =====

	// QUALIFY
	if cfg.SupportsQualify {
		b.AddKeyword("QUALIFY", TokenQualify)
		b.addClauseIfMissing(StandardQualify)
	}

	// ===== Auto-wire operator extensions =====

	if cfg.SupportsIlike {
		b.AddLike("ILIKE", TokenIlike)
	}

	if cfg.SupportsCastOperator {
		b.AddOperator("::", token.DCOLON)
		b.AddInfixWithHandler(token.DCOLON, core.PrecedencePostfix, ParseCastOperator)
	}
}

func (b *Builder) buildQuotes() {
	d := b.dialect
	add := func(cfg core.IdentifierConfig) {
		open, _ := utf8.DecodeRuneInString(cfg.Quote)
		end, _ := utf8.DecodeRuneInString(cfg.QuoteEnd)
		if open == utf8.RuneError {
			return
		}
		if end == utf8.RuneError {
			end = open
		}
		d.quotes[open] = end
	}
	add(d.Identifiers)
	for _, q := range d.features.ExtraQuotes {
		add(q)
	}
}

// addClauseIfMissing adds a clause only if not already registered.
func (b *Builder) addClauseIfMissing(def core.ClauseDef) {
	if _, exists := b.dialect.clauseDefs[def.Token]; exists {
		return
	}
	b.dialect.clauseDefs[def.Token] = def
	recordClause(def.Token, def.Token.String())
	for _, tok := range b.dialect.clauseSequence {
		if tok == def.Token {
			return
		}
	}
	b.dialect.clauseSequence = append(b.dialect.clauseSequence, def.Token)
}

// ---------- Parsing Behavior Builder Methods ----------

// AddOperator registers a custom operator symbol for the lexer.
func (b *Builder) AddOperator(symbol string, t token.TokenType) *Builder {
	b.dialect.symbols[symbol] = t
	return b
}

// AddKeyword registers a dynamic keyword for the lexer.
func (b *Builder) AddKeyword(name string, t token.TokenType) *Builder {
	b.dialect.dynamicKw[strings.ToLower(name)] = t
	return b
}

// AddLike registers a LIKE variant such as ILIKE or RLIKE. It parses like
// LIKE, including the NOT and ESCAPE forms, at comparison precedence.
func (b *Builder) AddLike(name string, t token.TokenType) *Builder {
	b.AddKeyword(name, t)
	b.dialect.precedence[t] = core.PrecedenceComparison
	b.dialect.likeOps[t] = struct{}{}
	return b
}

// ClauseHandler registers a handler for a clause token with storage slot
// and appends it to the clause sequence.
func (b *Builder) ClauseHandler(t token.TokenType, handler spi.ClauseHandler, slot core.ClauseSlot, opts ...ClauseOption) *Builder {
	def := core.ClauseDef{Token: t, Handler: handler, Slot: slot}
	for _, opt := range opts {
		opt(&def)
	}
	b.dialect.clauseDefs[t] = def
	b.dialect.clauseSequence = appendMissing(b.dialect.clauseSequence, t)
	// Register globally for error messages
	recordClause(t, t.String())
	return b
}

// AddClauseAfter inserts a clause into the sequence after another clause.
func (b *Builder) AddClauseAfter(after token.TokenType, def core.ClauseDef) *Builder {
	seq := b.dialect.clauseSequence
	for i, tok := range seq {
		if tok == after {
			newSeq := make([]token.TokenType, 0, len(seq)+1)
			newSeq = append(newSeq, seq[:i+1]...)
			newSeq = append(newSeq, def.Token)
			newSeq = append(newSeq, seq[i+1:]...)
			b.dialect.clauseSequence = newSeq
			break
		}
	}
	b.dialect.clauseSequence = appendMissing(b.dialect.clauseSequence, def.Token)
	b.dialect.clauseDefs[def.Token] = def
	recordClause(def.Token, def.Token.String())
	return b
}

// RemoveClause removes a clause from the sequence.
func (b *Builder) RemoveClause(t token.TokenType) *Builder {
	for i, tok := range b.dialect.clauseSequence {
		if tok == t {
			b.dialect.clauseSequence = append(b.dialect.clauseSequence[:i:i], b.dialect.clauseSequence[i+1:]...)
			break
		}
	}
	delete(b.dialect.clauseDefs, t)
	return b
}

// AddInfix registers a left-associative infix operator with precedence.
func (b *Builder) AddInfix(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	delete(b.dialect.rightAssoc, t)
	return b
}

// AddInfixRight registers a right-associative infix operator with precedence.
func (b *Builder) AddInfixRight(t token.TokenType, precedence int) *Builder {
	b.dialect.precedence[t] = precedence
	b.dialect.rightAssoc[t] = true
	return b
}

// AddInfixWithHandler registers an infix operator with custom handler.
func (b *Builder) AddInfixWithHandler(t token.TokenType, precedence int, handler spi.InfixHandler) *Builder {
	b.dialect.precedence[t] = precedence
	b.dialect.infixHandlers[t] = handler
	return b
}

// AddPrefix registers a prefix expression handler.
func (b *Builder) AddPrefix(t token.TokenType, handler spi.PrefixHandler) *Builder {
	b.dialect.prefixHandlers[t] = handler
	return b
}

// AddJoinType registers a join type keyed by its leading keyword.
func (b *Builder) AddJoinType(t token.TokenType, def core.JoinTypeDef) *Builder {
	b.dialect.joinTypes[t] = def
	return b
}

// ---------- Bulk Builder Methods (Toolbox Composition) ----------

// Clauses sets the clause sequence from a list of ClauseDefs.
// This replaces inheritance - explicitly list all supported clauses.
func (b *Builder) Clauses(defs ...core.ClauseDef) *Builder {
	b.dialect.clauseSequence = make([]token.TokenType, len(defs))
	for i, def := range defs {
		b.dialect.clauseSequence[i] = def.Token
		b.dialect.clauseDefs[def.Token] = def
		recordClause(def.Token, def.Token.String())
	}
	return b
}

// Operators adds operator definitions in bulk.
// Symbols are registered with the lexer and keyword operators become
// dialect keywords.
func (b *Builder) Operators(sets ...[]core.OperatorDef) *Builder {
	for _, set := range sets {
		for _, op := range set {
			b.dialect.precedence[op.Token] = op.Precedence
			if op.RightAssoc {
				b.dialect.rightAssoc[op.Token] = true
			} else {
				delete(b.dialect.rightAssoc, op.Token)
			}
			if h, ok := op.Handler.(spi.InfixHandler); ok && h != nil {
				b.dialect.infixHandlers[op.Token] = h
			}
			if op.Symbol != "" {
				b.dialect.symbols[op.Symbol] = op.Token
			}
			if op.Keyword != "" {
				b.AddKeyword(op.Keyword, op.Token)
			}
		}
	}
	return b
}

// JoinTypes adds join type definitions in bulk.
func (b *Builder) JoinTypes(sets ...[]core.JoinTypeDef) *Builder {
	for _, set := range sets {
		for _, jt := range set {
			b.dialect.joinTypes[jt.Token] = jt
		}
	}
	return b
}

func appendMissing(seq []token.TokenType, t token.TokenType) []token.TokenType {
	for _, tok := range seq {
		if tok == t {
			return seq
		}
	}
	return append(seq, t)
}
