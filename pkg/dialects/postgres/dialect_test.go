package postgres

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Postgres
	require.NotNil(t, d)

	assert.Equal(t, "postgres", d.Name)
	assert.Equal(t, `"`, d.Identifiers.Quote)
	assert.Equal(t, core.PlaceholderDollar, d.Placeholder)
	assert.Equal(t, "$1", d.FormatPlaceholder(1))

	assert.True(t, d.SupportsIlike())
	assert.True(t, d.SupportsCastOperator())
	assert.True(t, d.SupportsReturning())
	assert.False(t, d.SupportsQualify())
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("postgres")
	require.True(t, ok, "postgres dialect should be registered")
	assert.Same(t, Postgres, d)
}

func TestNoCaretOperator(t *testing.T) {
	_, n := Postgres.MatchSymbol("^")
	assert.Zero(t, n)
	assert.Equal(t, core.PrecedenceBitwiseAnd, Postgres.Precedence(token.AMP))
}

func TestBacktickIsNotAQuote(t *testing.T) {
	_, ok := Postgres.QuoteEnd('`')
	assert.False(t, ok)
}

func TestIdentChars(t *testing.T) {
	assert.True(t, Postgres.IsIdentPart('$'))
	assert.False(t, Postgres.IsIdentStart('$'))
	assert.True(t, Postgres.IsReservedWord("user"))
}
