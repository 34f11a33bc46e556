package parser_test

import (
	"sort"
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFunctionsByCategory(t *testing.T) {
	aggregates := parser.GetFunctionsByCategory(parser.CategoryAggregate)
	require.NotEmpty(t, aggregates)
	for _, fn := range aggregates {
		assert.True(t, fn.IsAggregate, fn.Name)
	}

	windows := parser.GetFunctionsByCategory(parser.CategoryWindow)
	names := make([]string, len(windows))
	for i, fn := range windows {
		names[i] = fn.Name
	}
	assert.Contains(t, names, "ROW_NUMBER")

	assert.Empty(t, parser.GetFunctionsByCategory("spatial"))
}

func TestSearchFunctions(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"row_", []string{"ROW_NUMBER"}},
		{"LA", []string{"LAG", "LAST_VALUE"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			var got []string
			for _, fn := range parser.SearchFunctions(tt.prefix) {
				got = append(got, fn.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, parser.SearchFunctions(""), len(parser.Catalog))
}

func TestCompletionWords(t *testing.T) {
	words := parser.CompletionWords()
	require.NotEmpty(t, words)
	assert.True(t, sort.StringsAreSorted(words))

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		assert.False(t, seen[w], "duplicate completion %q", w)
		seen[w] = true
	}

	// keywords and catalog functions both appear; LEFT is in both
	assert.True(t, seen["SELECT"])
	assert.True(t, seen["COALESCE"])
	assert.True(t, seen["LEFT"])
}
