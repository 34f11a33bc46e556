package core_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestIdentString(t *testing.T) {
	tests := []struct {
		name  string
		ident core.Ident
		want  string
	}{
		{"bare", core.NewIdent("users"), "users"},
		{"bare keeps case", core.NewIdent("MyTable"), "MyTable"},
		{"double quoted", core.Ident{Value: "Order", Quote: '"'}, `"Order"`},
		{"backtick", core.Ident{Value: "select", Quote: '`'}, "`select`"},
		{"bracket", core.Ident{Value: "my col", Quote: '['}, "[my col]"},
		{"doubled double quote", core.Ident{Value: `a"b`, Quote: '"'}, `"a""b"`},
		{"doubled bracket", core.Ident{Value: "a]b", Quote: '['}, "[a]]b]"},
		{"open bracket kept", core.Ident{Value: "a[b", Quote: '['}, "[a[b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ident.String())
		})
	}
}

func TestObjectName(t *testing.T) {
	name := core.ObjectName{core.NewIdent("db"), {Value: "My Schema", Quote: '"'}, core.NewIdent("t")}
	assert.Equal(t, `db."My Schema".t`, name.String())
	assert.Equal(t, "t", name.Last().Value)
	assert.Equal(t, core.Ident{}, core.ObjectName(nil).Last())
	assert.Equal(t, "a.b", core.NewObjectName("a", "b").String())
}

func TestColumnRefParts(t *testing.T) {
	ref := &core.ColumnRef{Parts: []core.Ident{core.NewIdent("s"), core.NewIdent("t"), core.NewIdent("c")}}
	assert.Equal(t, "c", ref.Column())
	assert.Equal(t, "t", ref.Table())

	bare := &core.ColumnRef{Parts: []core.Ident{core.NewIdent("c")}}
	assert.Equal(t, "c", bare.Column())
	assert.Empty(t, bare.Table())
}

func TestNodeInfoSpan(t *testing.T) {
	lit := &core.Literal{Type: core.LiteralNumber, Value: "1"}
	assert.False(t, lit.Pos().IsValid())

	span := token.Span{
		Start: token.Position{Line: 1, Column: 8, Offset: 7},
		End:   token.Position{Line: 1, Column: 9, Offset: 8},
	}
	lit.SetSpan(span)
	assert.Equal(t, span.Start, lit.Pos())
	assert.Equal(t, span.End, lit.End())
}

func TestClauseSlotString(t *testing.T) {
	tests := []struct {
		slot core.ClauseSlot
		want string
	}{
		{core.SlotWhere, "WHERE"},
		{core.SlotGroupBy, "GROUP BY"},
		{core.SlotHaving, "HAVING"},
		{core.SlotQualify, "QUALIFY"},
		{core.ClauseSlot(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.String())
		})
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	levels := []int{
		core.PrecedenceNone,
		core.PrecedenceOr,
		core.PrecedenceAnd,
		core.PrecedenceNot,
		core.PrecedenceComparison,
		core.PrecedenceBitwiseOr,
		core.PrecedenceBitwiseXor,
		core.PrecedenceBitwiseAnd,
		core.PrecedenceAddition,
		core.PrecedenceMultiply,
		core.PrecedenceUnary,
		core.PrecedencePostfix,
		core.PrecedenceMax,
	}
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i], "level %d", i)
	}
}
