package mysql

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := MySQL
	require.NotNil(t, d)

	assert.Equal(t, "mysql", d.Name)
	assert.Equal(t, []rune{'`'}, d.QuoteChars())
	assert.True(t, d.BackslashEscapes())
	assert.True(t, d.HashComments())
	assert.False(t, d.SupportsCastOperator())
	assert.False(t, d.SupportsIlike())
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("mysql")
	require.True(t, ok, "mysql dialect should be registered")
	assert.Same(t, MySQL, d)
}

func TestOperators(t *testing.T) {
	assert.Greater(t, MySQL.Precedence(token.CARET), MySQL.Precedence(token.STAR))
	assert.Equal(t, core.PrecedenceMultiply, MySQL.Precedence(dialect.TokenDiv))

	div, ok := MySQL.LookupKeyword("div")
	require.True(t, ok)
	assert.Equal(t, dialect.TokenDiv, div)

	assert.True(t, MySQL.IsLikeOperator(dialect.TokenRlike))
	assert.True(t, MySQL.IsLikeOperator(dialect.TokenRegexp))
	assert.True(t, MySQL.IsReservedWord("rlike"))
}

func TestDoubleQuoteIsNotAnIdentifierQuote(t *testing.T) {
	_, ok := MySQL.QuoteEnd('"')
	assert.False(t, ok)
}

func TestIdentChars(t *testing.T) {
	assert.True(t, MySQL.IsIdentStart('@'))
	assert.True(t, MySQL.IsIdentPart('$'))
	assert.False(t, MySQL.IsIdentStart('#'))
}
