package dialect

import "github.com/leapstack-labs/sqlparser/pkg/token"

// Dialect-specific tokens, registered once and shared by every dialect that
// enables them.
var (
	TokenQualify = token.Register("QUALIFY")
	TokenIlike   = token.Register("ILIKE")
	TokenRlike   = token.Register("RLIKE")
	TokenDiv     = token.Register("DIV")
	TokenRegexp  = token.Register("REGEXP")
)

// builtinSymbols is the punctuation and operator set every dialect lexes.
// Dialect operators (::, &, |, ^) are added by the builder.
var builtinSymbols = map[string]token.TokenType{
	"+":  token.PLUS,
	"-":  token.MINUS,
	"*":  token.STAR,
	"/":  token.SLASH,
	"%":  token.PERCENT,
	"||": token.DPIPE,
	"=":  token.EQ,
	"<>": token.NE,
	"!=": token.NE,
	"<":  token.LT,
	">":  token.GT,
	"<=": token.LE,
	">=": token.GE,
	".":  token.DOT,
	",":  token.COMMA,
	";":  token.SEMICOLON,
	"(":  token.LPAREN,
	")":  token.RPAREN,
	"[":  token.LBRACKET,
	"]":  token.RBRACKET,
}

// CoreReservedWords are structural keywords no dialect accepts as bare
// identifiers or implicit aliases.
var CoreReservedWords = []string{
	"all", "alter", "and", "as", "asc", "between", "by", "case", "cast",
	"check", "constraint", "create", "cross", "default", "delete", "desc",
	"distinct", "drop", "else", "end", "except", "exists", "false", "fetch",
	"for", "foreign", "from", "full", "group", "having", "in", "inner",
	"insert", "intersect", "into", "is", "join", "lateral", "left", "like",
	"limit", "natural", "not", "null", "offset", "on", "or", "order", "outer",
	"primary", "references", "returning", "right", "select", "set", "table",
	"then", "true", "union", "unique", "update", "using", "values", "when",
	"where", "window", "with",
}
