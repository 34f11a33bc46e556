package hive

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Hive
	require.NotNil(t, d)

	assert.Equal(t, "hive", d.Name)
	assert.Equal(t, []rune{'`'}, d.QuoteChars())
	assert.True(t, d.BackslashEscapes())
	assert.True(t, d.HashComments())
	assert.False(t, d.SupportsQualify())
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("hive")
	require.True(t, ok, "hive dialect should be registered")
	assert.Same(t, Hive, d)
}

func TestOperators(t *testing.T) {
	assert.Equal(t, core.PrecedenceBitwiseXor, Hive.Precedence(token.CARET))
	assert.Equal(t, core.PrecedenceMultiply, Hive.Precedence(dialect.TokenDiv))
	assert.True(t, Hive.IsLikeOperator(dialect.TokenRlike))
}
