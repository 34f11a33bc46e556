package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// TokenizeError reports malformed lexical content. Tokenizing stops at the
// first one.
type TokenizeError struct {
	Pos     token.Position
	Message string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ErrorPosition returns the source position carried by a TokenizeError or
// ParseError anywhere in err's chain.
func ErrorPosition(err error) (token.Position, bool) {
	var te *TokenizeError
	if errors.As(err, &te) {
		return te.Pos, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return token.Position{}, false
}

// Common error messages
const (
	ErrUnexpectedToken     = "expected %s, found %s"
	ErrExpectedStatement   = "expected a statement, found %s"
	ErrExpectedExpression  = "expected an expression, found %s"
	ErrExpectedIdentifier  = "expected identifier, found %s"
	ErrExpectedEnd         = "expected end of statement, found %s"
	ErrUnterminatedString  = "unterminated string literal"
	ErrUnterminatedIdent   = "unterminated quoted identifier"
	ErrUnterminatedComment = "unterminated block comment"
	ErrInvalidCharacter    = "invalid character %q"
	ErrInvalidUTF8         = "invalid UTF-8 encoding"
	ErrMalformedNumber     = "malformed numeric literal"
	ErrTooDeep             = "nesting exceeds %d levels"

	// Dialect-specific error messages
	ErrUnsupportedClause = "%s is not supported in %s dialect"
	ErrNoClauseHandler   = "no handler registered for clause %s"
)
