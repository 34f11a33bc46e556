package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SharedAcrossDialects(t *testing.T) {
	// mysql and hive both define RLIKE; they must agree on its type.
	mysqlRlike := Register("RLIKE")
	hiveRlike := Register("rlike")
	assert.Equal(t, mysqlRlike, hiveRlike)

	assert.NotEqual(t, mysqlRlike, Register("REGEXP"))
	assert.True(t, IsDynamic(mysqlRlike))
	assert.Equal(t, "RLIKE", mysqlRlike.String())
}

func TestRegister_ConcurrentDialectInit(t *testing.T) {
	const dialects = 64
	var wg sync.WaitGroup
	got := make([]TokenType, dialects)

	for i := range dialects {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Register("TEST_SHARED_OPERATOR")
		}()
	}
	wg.Wait()

	for _, tt := range got[1:] {
		require.Equal(t, got[0], tt)
	}
}

func TestLookupDynamicKeyword(t *testing.T) {
	qualify := Register("QUALIFY")

	tests := []struct {
		word   string
		want   TokenType
		wantOK bool
	}{
		{"QUALIFY", qualify, true},
		{"qualify", qualify, true},
		{"Qualify", qualify, true},
		{"QUALIFIED", IDENT, false},
		{"select", IDENT, false}, // builtin keywords are not dynamic
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := LookupDynamicKeyword(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDynamic(t *testing.T) {
	for _, builtin := range []TokenType{EOF, IDENT, SELECT, WHERE, DCOLON} {
		assert.False(t, IsDynamic(builtin), builtin.String())
	}
	assert.True(t, IsDynamic(Register("DIV")))
}

func TestRegisteredTokens_ReturnsCopy(t *testing.T) {
	div := Register("DIV")

	snapshot := RegisteredTokens()
	assert.Equal(t, "DIV", snapshot[div])

	snapshot[div] = "changed"
	assert.Equal(t, "DIV", RegisteredTokens()[div])
}

func TestGetDynamicName(t *testing.T) {
	ilike := Register("ILIKE")

	name, ok := getDynamicName(ilike)
	require.True(t, ok)
	assert.Equal(t, "ILIKE", name)

	_, ok = getDynamicName(TokenType(99999))
	assert.False(t, ok)
	_, ok = getDynamicName(SELECT)
	assert.False(t, ok)
}
