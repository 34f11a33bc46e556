package mssql

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := MSSQL
	require.NotNil(t, d)

	assert.Equal(t, "mssql", d.Name)
	assert.Equal(t, "ms", d.Flag)
	assert.Equal(t, []rune{'[', '"'}, d.QuoteChars())
	assert.True(t, d.SupportsTop())
	assert.False(t, d.SupportsReturning())
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("mssql")
	require.True(t, ok, "mssql dialect should be registered")
	assert.Same(t, MSSQL, d)

	byFlag, err := dialect.Lookup("ms")
	require.NoError(t, err)
	assert.Same(t, MSSQL, byFlag)
}

func TestBitwiseAtAdditiveLevel(t *testing.T) {
	for _, tok := range []token.TokenType{token.AMP, token.PIPE, token.CARET} {
		assert.Equal(t, core.PrecedenceAddition, MSSQL.Precedence(tok), tok.String())
	}
}

func TestIdentChars(t *testing.T) {
	assert.True(t, MSSQL.IsIdentStart('@'))
	assert.True(t, MSSQL.IsIdentStart('#'))
	assert.True(t, MSSQL.IsIdentPart('$'))
	assert.True(t, MSSQL.IsReservedWord("top"))
}
