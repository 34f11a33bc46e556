// Package token defines the token types for SQL parsing.
//
// Core tokens are defined as constants (IDs 0-999) for switch performance.
// Dialect-specific tokens are registered dynamically via Register().
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // ALL_CAPS names follow SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT       // identifier, bare or quoted
	NUMBER      // 123, 45.67, 1e10
	STRING      // 'hello'
	NSTRING     // N'hello'
	HEXSTRING   // X'1F'
	PLACEHOLDER // ?, $1, :name

	// Operators and punctuation
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	EQ        // =
	NE        // <> or !=
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	AMP       // &
	PIPE      // |
	CARET     // ^
	DCOLON    // ::
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]

	keywordBeg
	// Keywords (alphabetical)
	ALL
	ALTER
	AND
	AS
	ASC
	BEGIN
	BETWEEN
	BY
	CASCADE
	CASE
	CAST
	CHECK
	COLUMN
	COMMIT
	CONSTRAINT
	CREATE
	CROSS
	CURRENT
	DATE
	DEFAULT
	DELETE
	DESC
	DISTINCT
	DROP
	ELSE
	END
	ESCAPE
	EXCEPT
	EXISTS
	EXPLAIN
	EXTRACT
	FALSE
	FETCH
	FILTER
	FIRST
	FOLLOWING
	FOR
	FOREIGN
	FROM
	FULL
	GROUP
	GROUPS
	HAVING
	IF
	IN
	INDEX
	INNER
	INSERT
	INTERSECT
	INTERVAL
	INTO
	IS
	JOIN
	KEY
	LAST
	LATERAL
	LEFT
	LIKE
	LIMIT
	MATERIALIZED
	NATURAL
	NEXT
	NOT
	NULL
	NULLS
	OFFSET
	ON
	ONLY
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PRECEDING
	PRIMARY
	RANGE
	READ
	RECURSIVE
	REFERENCES
	RENAME
	REPLACE
	RESTRICT
	RETURNING
	RIGHT
	ROLLBACK
	ROW
	ROWS
	SCHEMA
	SELECT
	SET
	SHOW
	START
	TABLE
	TEMPORARY
	THEN
	TIME
	TIMESTAMP
	TO
	TOP
	TRANSACTION
	TRUE
	TRUNCATE
	TRY_CAST
	UNBOUNDED
	UNION
	UNIQUE
	UPDATE
	USE
	USING
	VALUES
	VIEW
	WHEN
	WHERE
	WINDOW
	WITH
	keywordEnd

	// Sentinel - dynamic tokens start after this
	maxBuiltin TokenType = 999
)

// String returns a human-readable representation of the token type.
// Operators render as their canonical symbol, keywords in upper case.
func (t TokenType) String() string {
	if name, ok := getDynamicName(t); ok {
		return name
	}
	if t >= 0 && int(t) < len(tokenNames) && tokenNames[t] != "" {
		return tokenNames[t]
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = [...]string{
	EOF:         "EOF",
	ILLEGAL:     "ILLEGAL",
	IDENT:       "IDENT",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	NSTRING:     "NSTRING",
	HEXSTRING:   "HEXSTRING",
	PLACEHOLDER: "PLACEHOLDER",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "<>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	AMP:       "&",
	PIPE:      "|",
	CARET:     "^",
	DCOLON:    "::",
	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",

	ALL:          "ALL",
	ALTER:        "ALTER",
	AND:          "AND",
	AS:           "AS",
	ASC:          "ASC",
	BEGIN:        "BEGIN",
	BETWEEN:      "BETWEEN",
	BY:           "BY",
	CASCADE:      "CASCADE",
	CASE:         "CASE",
	CAST:         "CAST",
	CHECK:        "CHECK",
	COLUMN:       "COLUMN",
	COMMIT:       "COMMIT",
	CONSTRAINT:   "CONSTRAINT",
	CREATE:       "CREATE",
	CROSS:        "CROSS",
	CURRENT:      "CURRENT",
	DATE:         "DATE",
	DEFAULT:      "DEFAULT",
	DELETE:       "DELETE",
	DESC:         "DESC",
	DISTINCT:     "DISTINCT",
	DROP:         "DROP",
	ELSE:         "ELSE",
	END:          "END",
	ESCAPE:       "ESCAPE",
	EXCEPT:       "EXCEPT",
	EXISTS:       "EXISTS",
	EXPLAIN:      "EXPLAIN",
	EXTRACT:      "EXTRACT",
	FALSE:        "FALSE",
	FETCH:        "FETCH",
	FILTER:       "FILTER",
	FIRST:        "FIRST",
	FOLLOWING:    "FOLLOWING",
	FOR:          "FOR",
	FOREIGN:      "FOREIGN",
	FROM:         "FROM",
	FULL:         "FULL",
	GROUP:        "GROUP",
	GROUPS:       "GROUPS",
	HAVING:       "HAVING",
	IF:           "IF",
	IN:           "IN",
	INDEX:        "INDEX",
	INNER:        "INNER",
	INSERT:       "INSERT",
	INTERSECT:    "INTERSECT",
	INTERVAL:     "INTERVAL",
	INTO:         "INTO",
	IS:           "IS",
	JOIN:         "JOIN",
	KEY:          "KEY",
	LAST:         "LAST",
	LATERAL:      "LATERAL",
	LEFT:         "LEFT",
	LIKE:         "LIKE",
	LIMIT:        "LIMIT",
	MATERIALIZED: "MATERIALIZED",
	NATURAL:      "NATURAL",
	NEXT:         "NEXT",
	NOT:          "NOT",
	NULL:         "NULL",
	NULLS:        "NULLS",
	OFFSET:       "OFFSET",
	ON:           "ON",
	ONLY:         "ONLY",
	OR:           "OR",
	ORDER:        "ORDER",
	OUTER:        "OUTER",
	OVER:         "OVER",
	PARTITION:    "PARTITION",
	PRECEDING:    "PRECEDING",
	PRIMARY:      "PRIMARY",
	RANGE:        "RANGE",
	READ:         "READ",
	RECURSIVE:    "RECURSIVE",
	REFERENCES:   "REFERENCES",
	RENAME:       "RENAME",
	REPLACE:      "REPLACE",
	RESTRICT:     "RESTRICT",
	RETURNING:    "RETURNING",
	RIGHT:        "RIGHT",
	ROLLBACK:     "ROLLBACK",
	ROW:          "ROW",
	ROWS:         "ROWS",
	SCHEMA:       "SCHEMA",
	SELECT:       "SELECT",
	SET:          "SET",
	SHOW:         "SHOW",
	START:        "START",
	TABLE:        "TABLE",
	TEMPORARY:    "TEMPORARY",
	THEN:         "THEN",
	TIME:         "TIME",
	TIMESTAMP:    "TIMESTAMP",
	TO:           "TO",
	TOP:          "TOP",
	TRANSACTION:  "TRANSACTION",
	TRUE:         "TRUE",
	TRUNCATE:     "TRUNCATE",
	TRY_CAST:     "TRY_CAST",
	UNBOUNDED:    "UNBOUNDED",
	UNION:        "UNION",
	UNIQUE:       "UNIQUE",
	UPDATE:       "UPDATE",
	USE:          "USE",
	USING:        "USING",
	VALUES:       "VALUES",
	VIEW:         "VIEW",
	WHEN:         "WHEN",
	WHERE:        "WHERE",
	WINDOW:       "WINDOW",
	WITH:         "WITH",
}

// keywords maps lowercase keyword strings to their token types.
var keywords map[string]TokenType

func init() {
	keywords = make(map[string]TokenType, keywordEnd-keywordBeg)
	for t := keywordBeg + 1; t < keywordEnd; t++ {
		keywords[strings.ToLower(tokenNames[t])] = t
	}
}

// LookupIdent returns the keyword token type for a bare word, or IDENT.
// The match is case-insensitive. Only builtin keywords are consulted;
// dialect keywords are resolved by the dialect itself.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a builtin keyword.
func IsKeyword(t TokenType) bool {
	return t > keywordBeg && t < keywordEnd
}

// IsOperator returns true if the token type is a builtin operator or punctuation.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RBRACKET
}

// Keywords returns all builtin keywords in upper case, in alphabetical order.
func Keywords() []string {
	out := make([]string, 0, keywordEnd-keywordBeg-1)
	for t := keywordBeg + 1; t < keywordEnd; t++ {
		out = append(out, tokenNames[t])
	}
	return out
}

// Kind is the coarse classification of a token.
type Kind int

const (
	KindEOF Kind = iota
	KindKeyword
	KindIdent
	KindQuotedIdent
	KindNumber
	KindString
	KindOperator
	KindPunctuation
	KindPlaceholder
)

var kindNames = [...]string{
	KindEOF:         "eof",
	KindKeyword:     "keyword",
	KindIdent:       "identifier",
	KindQuotedIdent: "quoted-identifier",
	KindNumber:      "number",
	KindString:      "string",
	KindOperator:    "operator",
	KindPunctuation: "punctuation",
	KindPlaceholder: "placeholder",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string   // keyword/identifier text as written, or the decoded literal value
	Quote   rune     // opening quote of a quoted identifier, 0 otherwise
	Pos     Position // first byte of the token
	End     Position // byte following the token
}

// Kind classifies the token. Dynamic tokens are keywords when their name is a
// word and operators otherwise.
func (t Token) Kind() Kind {
	switch {
	case t.Type == EOF:
		return KindEOF
	case t.Type == IDENT && t.Quote != 0:
		return KindQuotedIdent
	case t.Type == IDENT:
		return KindIdent
	case t.Type == NUMBER:
		return KindNumber
	case t.Type == STRING || t.Type == NSTRING || t.Type == HEXSTRING:
		return KindString
	case t.Type == PLACEHOLDER:
		return KindPlaceholder
	case IsKeyword(t.Type):
		return KindKeyword
	case t.Type == COMMA || t.Type == SEMICOLON || t.Type == LPAREN || t.Type == RPAREN ||
		t.Type == DOT || t.Type == LBRACKET || t.Type == RBRACKET:
		return KindPunctuation
	case IsDynamic(t.Type):
		name := t.Type.String()
		if name != "" && isWordByte(name[0]) {
			return KindKeyword
		}
		return KindOperator
	default:
		return KindOperator
	}
}

// Span returns the source span covered by the token.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT, NUMBER, PLACEHOLDER:
		return fmt.Sprintf("%s %q", t.Kind(), t.Literal)
	case STRING, NSTRING, HEXSTRING:
		return fmt.Sprintf("string '%s'", t.Literal)
	default:
		return t.Type.String()
	}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
