// Package parser provides SQL parsing with dialect-aware syntax validation.
//
// # Usage
//
//	stmts, err := parser.ParseStatements("SELECT a, b FROM t; SELECT 1", d)
//	if err != nil {
//	    // *parser.TokenizeError or *parser.ParseError
//	}
//
// The parser requires a dialect. Use the dialect registry to get one by
// name or command-line flag:
//
//	d, err := dialect.Lookup("postgres")
//	stmt, err := parser.Parse(sql, d)
//
// # Grammar Overview
//
// The parser is a recursive descent parser over a fully materialized token
// buffer, with precedence climbing for expressions:
//
//	statements    → [statement] {";" [statement]}
//	query         → [WITH cte_list] set_expr [ORDER BY ...] [LIMIT] [OFFSET] [FETCH]
//	set_expr      → set_operand {(UNION|EXCEPT|INTERSECT) [ALL|DISTINCT] set_operand}
//	set_operand   → select_core | VALUES rows | "(" query ")"
//	select_core   → SELECT [DISTINCT] [TOP n] select_list [FROM from_list]
//	                {dialect clause: WHERE, GROUP BY, HAVING, QUALIFY}
//
// See each file for detailed grammar rules for that section.
//
// Errors are all-or-nothing: the first tokenize or parse error aborts the
// whole input and no statements are returned.
package parser

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// maxDepth bounds expression and query nesting.
const maxDepth = 200

// Parser parses SQL into an AST.
type Parser struct {
	tokens  []token.Token // always ends with EOF
	pos     int           // index of the current token
	token   token.Token   // tokens[pos]
	dialect *dialect.Dialect
	depth   int
}

// NewParser tokenizes sql with dialect d and returns a parser positioned at
// the first token.
func NewParser(sql string, d *dialect.Dialect) (*Parser, error) {
	tokens, _, err := Tokenize(sql, d)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens, dialect: d}
	p.token = tokens[0]
	return p, nil
}

// ParseStatements parses a ';' separated sequence of statements. Trailing
// separators are allowed. Empty input yields no statements.
func ParseStatements(sql string, d *dialect.Dialect) ([]core.Stmt, error) {
	p, err := NewParser(sql, d)
	if err != nil {
		return nil, err
	}
	return p.ParseStatements()
}

// ParseScript is ParseStatements that also returns the comments the
// tokenizer skipped, in source order.
func ParseScript(sql string, d *dialect.Dialect) ([]core.Stmt, []token.Comment, error) {
	tokens, comments, err := Tokenize(sql, d)
	if err != nil {
		return nil, nil, err
	}
	p := &Parser{tokens: tokens, dialect: d}
	p.token = tokens[0]
	stmts, err := p.ParseStatements()
	if err != nil {
		return nil, nil, err
	}
	return stmts, comments, nil
}

// Parse parses exactly one statement, optionally followed by ';'.
func Parse(sql string, d *dialect.Dialect) (core.Stmt, error) {
	p, err := NewParser(sql, d)
	if err != nil {
		return nil, err
	}
	for p.match(token.SEMICOLON) {
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	for p.match(token.SEMICOLON) {
	}
	if !p.check(token.EOF) {
		return nil, p.errorf(ErrExpectedEnd, p.token)
	}
	return stmt, nil
}

// ParseExpr parses a standalone expression.
func ParseExpr(sql string, d *dialect.Dialect) (core.Expr, error) {
	p, err := NewParser(sql, d)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.check(token.EOF) {
		return nil, p.errorf(ErrUnexpectedToken, "end of expression", p.token)
	}
	return expr, nil
}

// ParseStatements parses all remaining statements.
func (p *Parser) ParseStatements() ([]core.Stmt, error) {
	var stmts []core.Stmt
	for {
		for p.match(token.SEMICOLON) {
		}
		if p.check(token.EOF) {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.check(token.SEMICOLON) && !p.check(token.EOF) {
			return nil, p.errorf(ErrExpectedEnd, p.token)
		}
	}
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// ---------- Token Helpers ----------

// nextToken advances to the next token. EOF is sticky.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.token = p.tokens[p.pos]
}

// peekAt returns the token n positions ahead of the current one.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

// mark returns the current buffer index for a later reset.
func (p *Parser) mark() int {
	return p.pos
}

// reset rewinds to an index returned by mark.
func (p *Parser) reset(m int) {
	p.pos = m
	p.token = p.tokens[m]
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the next token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peekAt(1).Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise returns an error.
func (p *Parser) expect(t token.TokenType) error {
	if p.match(t) {
		return nil
	}
	return p.errorf(ErrUnexpectedToken, describe(t), p.token)
}

// isWord reports whether tok is a bare word: an unquoted identifier or a
// keyword.
func isWord(tok token.Token) bool {
	switch tok.Kind() {
	case token.KindIdent, token.KindKeyword:
		return true
	}
	return false
}

// checkWord reports whether the current token is the bare word w. It
// matches words the lexer does not treat as keywords, like ISOLATION.
func (p *Parser) checkWord(w string) bool {
	return isWord(p.token) && strings.EqualFold(p.token.Literal, w)
}

// matchWord consumes the bare word w if present.
func (p *Parser) matchWord(w string) bool {
	if p.checkWord(w) {
		p.nextToken()
		return true
	}
	return false
}

// expectWord consumes the bare word w or returns an error.
func (p *Parser) expectWord(w string) error {
	if p.matchWord(w) {
		return nil
	}
	return p.errorf(ErrUnexpectedToken, w, p.token)
}

// errorf returns a parse error positioned at the current token.
func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{
		Pos:     p.token.Pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// prevEnd returns the end of the last consumed token.
func (p *Parser) prevEnd() token.Position {
	if p.pos == 0 {
		return p.token.Pos
	}
	return p.tokens[p.pos-1].End
}

type spanner interface {
	SetSpan(token.Span)
}

// finish records the span from start to the last consumed token.
func (p *Parser) finish(n spanner, start token.Position) {
	n.SetSpan(token.Span{Start: start, End: p.prevEnd()})
}

// enter guards recursion depth; callers defer p.leave().
func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf(ErrTooDeep, maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// describe renders an expected token type for error messages.
func describe(t token.TokenType) string {
	if token.IsOperator(t) {
		return "'" + t.String() + "'"
	}
	return t.String()
}

// ---------- Keyword Helpers ----------

// isReserved reports whether a word token cannot be used as a bare
// identifier in the current dialect.
func (p *Parser) isReserved(tok token.Token) bool {
	return p.dialect.IsReservedWord(tok.Literal)
}

// isIdentifier reports whether tok can serve as a bare identifier: a quoted
// identifier, or a word the dialect does not reserve.
func (p *Parser) isIdentifier(tok token.Token) bool {
	switch tok.Kind() {
	case token.KindQuotedIdent:
		return true
	case token.KindIdent, token.KindKeyword:
		return !p.isReserved(tok)
	}
	return false
}

// isNamePart reports whether tok can follow a dot in a qualified name.
// Dialect-reserved words are accepted there (u.user); builtin keywords
// still need the dialect to leave them unreserved.
func (p *Parser) isNamePart(tok token.Token) bool {
	return tok.Kind() == token.KindIdent || p.isIdentifier(tok)
}

// isImplicitAlias reports whether tok may start an alias written without AS.
func (p *Parser) isImplicitAlias(tok token.Token) bool {
	if !p.isIdentifier(tok) {
		return false
	}
	if p.dialect.IsClauseToken(tok.Type) || p.dialect.IsJoinTypeToken(tok.Type) {
		return false
	}
	return true
}

// startsQuery reports whether t can begin a query body.
func startsQuery(t token.TokenType) bool {
	return t == token.SELECT || t == token.WITH || t == token.VALUES
}

// parenQueryAhead reports whether the current '(' opens a run of
// parentheses whose first non-parenthesis token starts a query, and
// whether that query starts immediately after this '('.
func (p *Parser) parenQueryAhead() (query, direct bool) {
	i := 1
	for p.peekAt(i).Type == token.LPAREN {
		i++
	}
	return startsQuery(p.peekAt(i).Type), i == 1
}

// ---------- spi.ParserOps Implementation ----------
// These methods implement the spi.ParserOps interface for dialect handlers.

// Token returns the current token (implements spi.ParserOps).
func (p *Parser) Token() token.Token {
	return p.token
}

// Peek returns the lookahead token (implements spi.ParserOps).
func (p *Parser) Peek() token.Token {
	return p.peekAt(1)
}

// Match consumes the current token if it matches (implements spi.ParserOps).
func (p *Parser) Match(t token.TokenType) bool {
	return p.match(t)
}

// Expect consumes the current token if it matches, otherwise returns an error (implements spi.ParserOps).
func (p *Parser) Expect(t token.TokenType) error {
	return p.expect(t)
}

// NextToken advances to the next token (implements spi.ParserOps).
func (p *Parser) NextToken() {
	p.nextToken()
}

// Check returns true if the current token is of the given type (implements spi.ParserOps).
func (p *Parser) Check(t token.TokenType) bool {
	return p.check(t)
}

// ParseExpression parses an expression (implements spi.ParserOps).
func (p *Parser) ParseExpression() (core.Expr, error) {
	return p.parseExpression()
}

// ParseExpressionWithPrecedence parses an expression whose operators bind
// at least as tightly as minPrec (implements spi.ParserOps).
func (p *Parser) ParseExpressionWithPrecedence(minPrec int) (core.Expr, error) {
	return p.parseExpressionWithPrecedence(minPrec)
}

// ParseExpressionList parses a comma-separated list of expressions (implements spi.ParserOps).
func (p *Parser) ParseExpressionList() ([]core.Expr, error) {
	return p.parseExpressionList()
}

// ParseOrderByList parses an ORDER BY list (implements spi.ParserOps).
func (p *Parser) ParseOrderByList() ([]core.OrderByItem, error) {
	return p.parseOrderByList()
}

// ParseIdentifier parses an identifier (implements spi.ParserOps).
func (p *Parser) ParseIdentifier() (core.Ident, error) {
	return p.parseIdentifier()
}

// ParseDataType parses a data type (implements spi.ParserOps).
func (p *Parser) ParseDataType() (*core.DataType, error) {
	return p.parseDataType()
}

// Errorf returns a parse error at the current token (implements spi.ParserOps).
func (p *Parser) Errorf(format string, args ...any) error {
	return p.errorf(format, args...)
}

// Position returns the current token's position (implements spi.ParserOps).
func (p *Parser) Position() token.Position {
	return p.token.Pos
}
