package core_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func col(parts ...string) *core.ColumnRef {
	ref := &core.ColumnRef{}
	for _, p := range parts {
		ref.Parts = append(ref.Parts, core.NewIdent(p))
	}
	return ref
}

func num(v string) *core.Literal {
	return &core.Literal{Type: core.LiteralNumber, Value: v}
}

// sampleQuery builds:
// SELECT a FROM t JOIN u ON t.id = u.id WHERE a IN (SELECT b FROM v)
func sampleQuery() *core.SelectStmt {
	sub := &core.SelectStmt{Body: &core.SelectCore{
		Columns: []core.SelectItem{{Expr: col("b")}},
		From:    []*core.TableWithJoins{{Relation: &core.TableName{Name: core.NewObjectName("v")}}},
	}}
	return &core.SelectStmt{Body: &core.SelectCore{
		Columns: []core.SelectItem{{Expr: col("a")}},
		From: []*core.TableWithJoins{{
			Relation: &core.TableName{Name: core.NewObjectName("t")},
			Joins: []*core.Join{{
				Type:      core.JoinInner,
				Right:     &core.TableName{Name: core.NewObjectName("u")},
				Condition: &core.BinaryExpr{Left: col("t", "id"), Op: token.EQ, Right: col("u", "id")},
			}},
		}},
		Where: &core.InExpr{Expr: col("a"), Query: sub},
	}}
}

func TestWalkCollectsTables(t *testing.T) {
	var tables []string
	core.Walk(sampleQuery(), func(n any) bool {
		if tn, ok := n.(*core.TableName); ok {
			tables = append(tables, tn.Name.String())
		}
		return true
	})
	assert.Equal(t, []string{"t", "u", "v"}, tables)
}

func TestWalkSkipsChildren(t *testing.T) {
	var tables []string
	core.Walk(sampleQuery(), func(n any) bool {
		if _, ok := n.(*core.InExpr); ok {
			return false
		}
		if tn, ok := n.(*core.TableName); ok {
			tables = append(tables, tn.Name.String())
		}
		return true
	})
	assert.Equal(t, []string{"t", "u"}, tables)
}

func TestWalkNilSafe(t *testing.T) {
	calls := 0
	var stmt *core.SelectStmt
	core.Walk(stmt, func(any) bool { calls++; return true })
	core.Walk(nil, func(any) bool { calls++; return true })
	assert.Zero(t, calls)

	// Optional children left nil are never reported.
	core.Walk(&core.SelectStmt{Body: &core.SelectCore{}}, func(n any) bool {
		require.False(t, n == nil)
		calls++
		return true
	})
	assert.Equal(t, 2, calls)
}

func TestInspectOnlyNodes(t *testing.T) {
	var kinds []string
	core.Inspect(sampleQuery(), func(n core.Node) bool {
		switch n.(type) {
		case *core.BinaryExpr:
			kinds = append(kinds, "binary")
		case *core.InExpr:
			kinds = append(kinds, "in")
		}
		return true
	})
	assert.Equal(t, []string{"binary", "in"}, kinds)
}

func TestWalkStatements(t *testing.T) {
	tests := []struct {
		name string
		stmt core.Stmt
		want int // literals reached
	}{
		{
			name: "update",
			stmt: &core.UpdateStmt{
				Table:       &core.TableName{Name: core.NewObjectName("t")},
				Assignments: []core.Assignment{{Column: core.NewObjectName("a"), Value: num("1")}},
				Where:       &core.BinaryExpr{Left: col("b"), Op: token.EQ, Right: num("2")},
			},
			want: 2,
		},
		{
			name: "explain",
			stmt: &core.ExplainStmt{Stmt: &core.SelectStmt{Body: &core.SelectCore{
				Columns: []core.SelectItem{{Expr: num("1")}},
			}}},
			want: 1,
		},
		{
			name: "alter column default",
			stmt: &core.AlterTableStmt{
				Name:      core.NewObjectName("t"),
				Operation: &core.AlterColumn{Name: core.NewIdent("c"), Action: core.SetDefault, Default: num("0")},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0
			core.Walk(tt.stmt, func(n any) bool {
				if _, ok := n.(*core.Literal); ok {
					got++
				}
				return true
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := &core.BinaryExpr{Left: num("1"), Op: token.PLUS, Right: num("2")}
	b := &core.BinaryExpr{Left: num("1"), Op: token.PLUS, Right: num("2")}
	b.SetSpan(token.Span{Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 4, Offset: 3}})

	assert.True(t, core.Equal(a, b))
	assert.Empty(t, core.Diff(a, b))

	c := &core.BinaryExpr{Left: num("1"), Op: token.MINUS, Right: num("2")}
	assert.False(t, core.Equal(a, c))
	assert.NotEmpty(t, core.Diff(a, c))
}

func TestEqualEmptySlices(t *testing.T) {
	a := &core.FuncCall{Name: core.NewObjectName("now")}
	b := &core.FuncCall{Name: core.NewObjectName("now"), Args: []core.Expr{}}
	assert.True(t, core.Equal(a, b))
}
