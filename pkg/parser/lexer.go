package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

const (
	eof = -1
	bom = "\uFEFF"
)

// Lexer tokenizes SQL input according to a dialect.
//
// Offsets are byte offsets into the original input; columns count
// characters. A leading byte-order mark is skipped, so the first token of
// such input starts at offset 3, column 1.
type Lexer struct {
	input string
	pos   int  // offset of ch
	next  int  // offset after ch
	ch    rune // current char, eof at end of input
	line  int  // line of ch (1-based)
	col   int  // column of ch (1-based)

	dialect *dialect.Dialect
	prev    token.TokenType // last emitted token, to tell .5 from t.col
	bad     *token.Position // first byte that is not valid UTF-8

	// Comments collected during lexing (for formatter)
	Comments []token.Comment
}

// NewLexer creates a Lexer for the given input. d must not be nil.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     1,
		dialect: d,
		prev:    token.ILLEGAL,
	}
	if strings.HasPrefix(input, bom) {
		l.next = len(bom)
	}
	l.pos = l.next
	l.decode()
	return l
}

// decode loads the rune at l.next into ch without moving the column.
func (l *Lexer) decode() {
	l.pos = l.next
	if l.next >= len(l.input) {
		l.ch = eof
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.next:])
	if r == utf8.RuneError && w == 1 && l.bad == nil {
		pos := l.position()
		l.bad = &pos
	}
	l.ch = r
	l.next += w
}

// advance moves to the next character.
func (l *Lexer) advance() {
	switch l.ch {
	case eof:
		return
	case '\n':
		l.line++
		l.col = 1
	default:
		l.col++
	}
	l.decode()
}

// peekAt returns the character n positions after ch (n >= 1).
func (l *Lexer) peekAt(n int) rune {
	off := l.next
	for ; n > 1; n-- {
		if off >= len(l.input) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(l.input[off:])
		off += w
	}
	if off >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[off:])
	return r
}

func (l *Lexer) peek() rune {
	return l.peekAt(1)
}

// position returns the position of ch.
func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &TokenizeError{Pos: pos, Message: msg}
}

// NextToken returns the next token. At end of input it returns an EOF token
// whose Pos and End both point past the last character. Input that is not
// valid UTF-8 fails at the first token reaching the bad byte.
func (l *Lexer) NextToken() (token.Token, error) {
	tok, err := l.scan()
	if l.bad != nil && (err != nil || l.bad.Offset < tok.End.Offset) {
		return token.Token{}, l.errorf(*l.bad, ErrInvalidUTF8)
	}
	if err != nil {
		return token.Token{}, err
	}
	l.prev = tok.Type
	return tok, nil
}

func (l *Lexer) scan() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	start := l.position()
	tok := token.Token{Pos: start}
	d := l.dialect

	switch {
	case l.ch == eof:
		tok.Type = token.EOF

	case (l.ch == 'N' || l.ch == 'n') && l.peek() == '\'':
		l.advance()
		s, err := l.readString(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.NSTRING, s

	case (l.ch == 'X' || l.ch == 'x') && l.peek() == '\'':
		l.advance()
		s, err := l.readString(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.HEXSTRING, s

	case d.IsIdentStart(l.ch):
		word := l.readWord()
		tok.Literal = word
		tok.Type = token.LookupIdent(word)
		// Not a builtin keyword: check dialect keywords
		if tok.Type == token.IDENT {
			if dyn, ok := d.LookupKeyword(word); ok {
				tok.Type = dyn
			}
		}

	case l.isQuote():
		open := l.ch
		s, err := l.readQuotedIdent(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal, tok.Quote = token.IDENT, s, open

	case l.ch == '\'':
		s, err := l.readString(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.STRING, s

	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peek()) && !l.afterOperand()):
		n, err := l.readNumber(start)
		if err != nil {
			return tok, err
		}
		tok.Type, tok.Literal = token.NUMBER, n

	case l.ch == '?':
		l.advance()
		tok.Type, tok.Literal = token.PLACEHOLDER, "?"

	case l.ch == '$' && isDigit(l.peek()):
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
		tok.Type, tok.Literal = token.PLACEHOLDER, l.input[start.Offset:l.pos]

	case l.ch == ':' && d.IsIdentStart(l.peek()):
		l.advance()
		l.readWord()
		tok.Type, tok.Literal = token.PLACEHOLDER, l.input[start.Offset:l.pos]

	default:
		t, n := d.MatchSymbol(l.input[l.pos:])
		if n == 0 {
			return tok, l.errorf(start, ErrInvalidCharacter, l.ch)
		}
		for l.pos < start.Offset+n {
			l.advance()
		}
		tok.Type, tok.Literal = t, l.input[start.Offset:l.pos]
	}

	tok.End = l.position()
	return tok, nil
}

// afterOperand reports whether the previous token ends an operand, in which
// case a following '.' is a qualifier dot rather than a decimal point.
func (l *Lexer) afterOperand() bool {
	switch l.prev {
	case token.IDENT, token.RPAREN, token.RBRACKET:
		return true
	}
	return false
}

func (l *Lexer) isQuote() bool {
	_, ok := l.dialect.QuoteEnd(l.ch)
	return ok
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		for l.ch != eof && unicode.IsSpace(l.ch) {
			l.advance()
		}

		switch {
		case l.ch == '-' && l.peek() == '-':
			l.collectLineComment()
		case l.ch == '#' && l.dialect.HashComments():
			l.collectLineComment()
		case l.ch == '/' && l.peek() == '*':
			if err := l.collectBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// collectLineComment collects a line comment, excluding the newline.
func (l *Lexer) collectLineComment() {
	start := l.position()
	for l.ch != '\n' && l.ch != eof {
		l.advance()
	}
	l.Comments = append(l.Comments, token.Comment{
		Kind: token.LineComment,
		Text: l.input[start.Offset:l.pos],
		Span: token.Span{Start: start, End: l.position()},
	})
}

// collectBlockComment collects a block comment. Block comments nest.
func (l *Lexer) collectBlockComment() error {
	start := l.position()
	l.advance() // skip '/'
	l.advance() // skip '*'

	depth := 1
	for depth > 0 {
		switch {
		case l.ch == eof:
			return l.errorf(start, ErrUnterminatedComment)
		case l.ch == '*' && l.peek() == '/':
			depth--
			l.advance()
		case l.ch == '/' && l.peek() == '*':
			depth++
			l.advance()
		}
		l.advance()
	}

	l.Comments = append(l.Comments, token.Comment{
		Kind: token.BlockComment,
		Text: l.input[start.Offset:l.pos],
		Span: token.Span{Start: start, End: l.position()},
	})
	return nil
}

// readWord reads a bare identifier or keyword.
func (l *Lexer) readWord() string {
	start := l.pos
	l.advance()
	for l.ch != eof && l.dialect.IsIdentPart(l.ch) {
		l.advance()
	}
	return l.input[start:l.pos]
}

// readQuotedIdent reads a delimited identifier. A doubled closing
// delimiter stands for itself: "col""name" -> col"name.
func (l *Lexer) readQuotedIdent(start token.Position) (string, error) {
	end, _ := l.dialect.QuoteEnd(l.ch)
	l.advance() // skip opening quote

	var b strings.Builder
	for {
		switch {
		case l.ch == eof:
			return "", l.errorf(start, ErrUnterminatedIdent)
		case l.ch == end && l.peek() == end:
			b.WriteRune(end)
			l.advance()
			l.advance()
		case l.ch == end:
			l.advance()
			return b.String(), nil
		default:
			b.WriteRune(l.ch)
			l.advance()
		}
	}
}

// readString reads a single-quoted string literal and returns its value.
// Doubled quotes escape a quote; in dialects with backslash escapes the
// usual C escapes are decoded too, except \% and \_ which LIKE patterns
// keep verbatim.
func (l *Lexer) readString(start token.Position) (string, error) {
	l.advance() // skip opening quote
	backslash := l.dialect.BackslashEscapes()

	var b strings.Builder
	for {
		switch {
		case l.ch == eof:
			return "", l.errorf(start, ErrUnterminatedString)
		case l.ch == '\'' && l.peek() == '\'':
			b.WriteByte('\'')
			l.advance()
			l.advance()
		case l.ch == '\'':
			l.advance()
			return b.String(), nil
		case l.ch == '\\' && backslash:
			l.advance()
			if l.ch == eof {
				return "", l.errorf(start, ErrUnterminatedString)
			}
			b.WriteString(unescape(l.ch))
			l.advance()
		default:
			b.WriteRune(l.ch)
			l.advance()
		}
	}
}

func unescape(r rune) string {
	switch r {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case '%', '_':
		return `\` + string(r)
	default:
		return string(r)
	}
}

// readNumber reads a numeric literal: digits with at most one decimal point
// and an optional exponent.
func (l *Lexer) readNumber(start token.Position) (string, error) {
	for isDigit(l.ch) {
		l.advance()
	}

	if l.ch == '.' {
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
		if l.ch == '.' && isDigit(l.peek()) {
			return "", l.errorf(start, ErrMalformedNumber)
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peek()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
			l.advance() // skip 'e'
			if l.ch == '+' || l.ch == '-' {
				l.advance()
			}
			for isDigit(l.ch) {
				l.advance()
			}
		}
	}

	if l.ch != eof && l.dialect.IsIdentPart(l.ch) {
		return "", l.errorf(start, ErrMalformedNumber)
	}
	return l.input[start.Offset:l.pos], nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize returns all tokens of the input, ending with one EOF token, and
// the comments skipped along the way.
func Tokenize(input string, d *dialect.Dialect) ([]token.Token, []token.Comment, error) {
	if d == nil {
		return nil, nil, dialect.ErrDialectRequired
	}
	l := NewLexer(input, d)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, l.Comments, nil
		}
	}
}
