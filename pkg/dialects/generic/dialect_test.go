package generic

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Generic
	require.NotNil(t, d)

	assert.Equal(t, "generic", d.Name)
	assert.Equal(t, []rune{'"', '`', '['}, d.QuoteChars())

	assert.True(t, Config.SupportsIlike)
	assert.True(t, Config.SupportsCastOperator)
	assert.True(t, Config.SupportsReturning)
	assert.False(t, Config.SupportsQualify)
	assert.False(t, Config.SupportsTop)
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("generic")
	require.True(t, ok, "generic dialect should be registered")
	assert.Same(t, Generic, d)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		tok  token.TokenType
		prec int
	}{
		{token.PIPE, core.PrecedenceBitwiseOr},
		{token.CARET, core.PrecedenceBitwiseXor},
		{token.AMP, core.PrecedenceBitwiseAnd},
		{token.DCOLON, core.PrecedencePostfix},
		{dialect.TokenIlike, core.PrecedenceComparison},
		{token.STAR, core.PrecedenceMultiply},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			assert.Equal(t, tt.prec, Generic.Precedence(tt.tok))
		})
	}
}

func TestQuoting(t *testing.T) {
	for open, end := range map[rune]rune{'"': '"', '`': '`', '[': ']'} {
		got, ok := Generic.QuoteEnd(open)
		require.True(t, ok, "%c", open)
		assert.Equal(t, end, got)
	}
}
