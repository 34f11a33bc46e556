package parser_test

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Helpers ----------

func parseQuery(t *testing.T, sql string, d *dialect.Dialect) *core.SelectStmt {
	t.Helper()
	stmt, err := parser.Parse(sql, d)
	require.NoError(t, err)
	q, ok := stmt.(*core.SelectStmt)
	require.True(t, ok, "expected *core.SelectStmt, got %T", stmt)
	return q
}

func parseSelect(t *testing.T, sql string, d *dialect.Dialect) *core.SelectCore {
	t.Helper()
	q := parseQuery(t, sql, d)
	sel, ok := q.Body.(*core.SelectCore)
	require.True(t, ok, "expected *core.SelectCore body, got %T", q.Body)
	return sel
}

func mustExpr(t *testing.T, sql string) core.Expr {
	t.Helper()
	expr, err := parser.ParseExpr(sql, generic.Generic)
	require.NoError(t, err)
	return expr
}

func num(v string) core.Expr { return &core.Literal{Type: core.LiteralNumber, Value: v} }

func col(parts ...string) core.Expr { return &core.ColumnRef{Parts: core.NewObjectName(parts...)} }

func bin(l core.Expr, op token.TokenType, r core.Expr) core.Expr {
	return &core.BinaryExpr{Left: l, Op: op, Right: r}
}

func assertTree(t *testing.T, want, got any) {
	t.Helper()
	if diff := core.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

// ---------- Statement Sequences ----------

func TestParseStatements_Separators(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want int
	}{
		{"two statements with trailing separator", "SELECT 1; SELECT 2;", 2},
		{"leading and repeated separators", ";; SELECT 1;;; SELECT 2", 2},
		{"single statement without separator", "SELECT 1", 1},
		{"empty input", "", 0},
		{"separators only", " ; ;", 0},
		{"comments only", "-- nothing here\n/* at all */", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := parser.ParseStatements(tt.sql, generic.Generic)
			require.NoError(t, err)
			assert.Len(t, stmts, tt.want)
		})
	}
}

func TestParseScript_Comments(t *testing.T) {
	stmts, comments, err := parser.ParseScript("-- head\nSELECT 1; /* mid */ SELECT 2", generic.Generic)
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
	require.Len(t, comments, 2)
	assert.Equal(t, "-- head", comments[0].Text)
	assert.Equal(t, "/* mid */", comments[1].Text)

	_, comments, err = parser.ParseScript("-- c\nSELECT", generic.Generic)
	require.Error(t, err)
	assert.Nil(t, comments, "nothing is returned on error")
}

func TestParseStatements_MissingSeparator(t *testing.T) {
	_, err := parser.ParseStatements("SELECT 1 SELECT 2", generic.Generic)
	require.Error(t, err)

	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "expected end of statement, found SELECT", pe.Message)
	assert.Equal(t, 10, pe.Pos.Column)
}

func TestParseStatements_AllOrNothing(t *testing.T) {
	stmts, err := parser.ParseStatements("SELECT 1; SELECT FROM; SELECT 3", generic.Generic)
	require.Error(t, err)
	assert.Nil(t, stmts)
}

func TestParse_ExpectedStatement(t *testing.T) {
	for _, sql := range []string{"FOO bar", "42", "WHERE x = 1"} {
		t.Run(sql, func(t *testing.T) {
			_, err := parser.ParseStatements(sql, generic.Generic)
			require.Error(t, err)

			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.True(t, strings.HasPrefix(pe.Message, "expected a statement"), pe.Message)
			assert.Equal(t, 1, pe.Pos.Column)
		})
	}
}

func TestParse_IncompleteFromPointsPastFrom(t *testing.T) {
	_, err := parser.ParseStatements("SELECT * FROM", generic.Generic)
	require.Error(t, err)

	pos, ok := parser.ErrorPosition(err)
	require.True(t, ok)
	assert.GreaterOrEqual(t, pos.Offset, strings.Index("SELECT * FROM", "FROM"))
	assert.Contains(t, err.Error(), "end of input")
}

func TestParse_ExactlyOneStatement(t *testing.T) {
	_, err := parser.Parse("SELECT 1;", generic.Generic)
	require.NoError(t, err)

	_, err = parser.Parse("SELECT 1; SELECT 2", generic.Generic)
	require.Error(t, err)
}

func TestParse_Deterministic(t *testing.T) {
	sql := "WITH c AS (SELECT a FROM t) SELECT a, COUNT(*) FROM c JOIN d ON c.a = d.a WHERE a > 1 GROUP BY a"
	first, err := parser.ParseStatements(sql, generic.Generic)
	require.NoError(t, err)
	second, err := parser.ParseStatements(sql, generic.Generic)
	require.NoError(t, err)

	// Identical including spans
	assert.Equal(t, first, second)
}

func TestParse_NilDialect(t *testing.T) {
	_, err := parser.ParseStatements("SELECT 1", nil)
	require.ErrorIs(t, err, dialect.ErrDialectRequired)
}

// ---------- Expression Precedence ----------

func TestParseExpr_Precedence(t *testing.T) {
	a, b, c := col("a"), col("b"), col("c")

	tests := []struct {
		sql  string
		want core.Expr
	}{
		{"1 + 2 * 3", bin(num("1"), token.PLUS, bin(num("2"), token.STAR, num("3")))},
		{"1 - 2 - 3", bin(bin(num("1"), token.MINUS, num("2")), token.MINUS, num("3"))},
		{"(1 + 2) * 3", bin(bin(num("1"), token.PLUS, num("2")), token.STAR, num("3"))},
		{"1 - (2 - 3)", bin(num("1"), token.MINUS, bin(num("2"), token.MINUS, num("3")))},
		{"a OR b AND c", bin(a, token.OR, bin(b, token.AND, c))},
		{"a = 1 AND b = 2", bin(bin(a, token.EQ, num("1")), token.AND, bin(b, token.EQ, num("2")))},
		{"a || b || c", bin(bin(a, token.DPIPE, b), token.DPIPE, c)},
		{"-a * b", bin(&core.UnaryExpr{Op: token.MINUS, Expr: a}, token.STAR, b)},
		{"NOT a = b", &core.UnaryExpr{Op: token.NOT, Expr: bin(a, token.EQ, b)}},
		{"NOT a AND b", bin(&core.UnaryExpr{Op: token.NOT, Expr: a}, token.AND, b)},
		{"- -1", &core.UnaryExpr{Op: token.MINUS, Expr: &core.UnaryExpr{Op: token.MINUS, Expr: num("1")}}},
		{"a <> b", bin(a, token.NE, b)},
		{"a != b", bin(a, token.NE, b)},
		{"a & b | c", bin(bin(a, token.AMP, b), token.PIPE, c)},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assertTree(t, tt.want, mustExpr(t, tt.sql))
		})
	}
}

func TestParseExpr_SpecialForms(t *testing.T) {
	a, b := col("a"), col("b")

	tests := []struct {
		sql  string
		want core.Expr
	}{
		{"a BETWEEN 1 AND 2", &core.BetweenExpr{Expr: a, Low: num("1"), High: num("2")}},
		{"a NOT BETWEEN 1 AND 2 AND b", bin(&core.BetweenExpr{Expr: a, Not: true, Low: num("1"), High: num("2")}, token.AND, b)},
		{"a BETWEEN 1 + 1 AND 2 * 3", &core.BetweenExpr{
			Expr: a,
			Low:  bin(num("1"), token.PLUS, num("1")),
			High: bin(num("2"), token.STAR, num("3")),
		}},
		{"a IN (1, 2)", &core.InExpr{Expr: a, Values: []core.Expr{num("1"), num("2")}}},
		{"a NOT IN (1)", &core.InExpr{Expr: a, Not: true, Values: []core.Expr{num("1")}}},
		{"a IS NULL", &core.IsNullExpr{Expr: a}},
		{"a IS NOT NULL", &core.IsNullExpr{Expr: a, Not: true}},
		{"a IS TRUE", &core.IsBoolExpr{Expr: a, Value: true}},
		{"a IS NOT FALSE", &core.IsBoolExpr{Expr: a, Not: true}},
		{"a IS DISTINCT FROM b", &core.IsDistinctExpr{Left: a, Right: b}},
		{"a IS NOT DISTINCT FROM b", &core.IsDistinctExpr{Left: a, Not: true, Right: b}},
		{"a LIKE 'x%'", &core.LikeExpr{Expr: a, Op: token.LIKE, Pattern: &core.Literal{Type: core.LiteralString, Value: "x%"}}},
		{"a NOT LIKE 'x!%' ESCAPE '!'", &core.LikeExpr{
			Expr: a, Not: true, Op: token.LIKE,
			Pattern: &core.Literal{Type: core.LiteralString, Value: "x!%"},
			Escape:  &core.Literal{Type: core.LiteralString, Value: "!"},
		}},
		{"a ILIKE 'x'", &core.LikeExpr{Expr: a, Op: dialect.TokenIlike, Pattern: &core.Literal{Type: core.LiteralString, Value: "x"}}},
		{"NOT a IN (1)", &core.UnaryExpr{Op: token.NOT, Expr: &core.InExpr{Expr: a, Values: []core.Expr{num("1")}}}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assertTree(t, tt.want, mustExpr(t, tt.sql))
		})
	}
}

func TestParseExpr_Primaries(t *testing.T) {
	tests := []struct {
		sql  string
		want core.Expr
	}{
		{"'it''s'", &core.Literal{Type: core.LiteralString, Value: "it's"}},
		{"TRUE", &core.Literal{Type: core.LiteralBool, Value: "TRUE"}},
		{"null", &core.Literal{Type: core.LiteralNull, Value: "NULL"}},
		{"N'x'", &core.Literal{Type: core.LiteralNationalString, Value: "x"}},
		{"$1", &core.Placeholder{Value: "$1"}},
		{"s.t.c", col("s", "t", "c")},
		{`"My Col"`, &core.ColumnRef{Parts: core.ObjectName{{Value: "My Col", Quote: '"'}}}},
		{"COUNT(*)", &core.FuncCall{Name: core.NewObjectName("COUNT"), Star: true}},
		{"count(DISTINCT a)", &core.FuncCall{Name: core.NewObjectName("count"), Distinct: true, Args: []core.Expr{col("a")}}},
		{"now()", &core.FuncCall{Name: core.NewObjectName("now")}},
		{"LEFT('abc', 2)", &core.FuncCall{Name: core.NewObjectName("LEFT"), Args: []core.Expr{
			&core.Literal{Type: core.LiteralString, Value: "abc"}, num("2"),
		}}},
		{"CAST(a AS VARCHAR(10))", &core.CastExpr{Expr: col("a"), Type: &core.DataType{Name: "VARCHAR", Args: []string{"10"}}}},
		{"TRY_CAST(a AS int)", &core.CastExpr{Expr: col("a"), Type: &core.DataType{Name: "INT"}, Try: true}},
		{"a::numeric(10, 2)", &core.CastExpr{Expr: col("a"), Type: &core.DataType{Name: "NUMERIC", Args: []string{"10", "2"}}}},
		{"EXTRACT(year FROM d)", &core.ExtractExpr{Field: "YEAR", Expr: col("d")}},
		{"INTERVAL '1' DAY", &core.IntervalExpr{Value: &core.Literal{Type: core.LiteralString, Value: "1"}, Unit: "DAY"}},
		{"DATE '2024-01-01'", &core.TypedLiteral{Type: &core.DataType{Name: "DATE"}, Value: "2024-01-01"}},
		{"(1, 2)", &core.TupleExpr{Exprs: []core.Expr{num("1"), num("2")}}},
		{"((1))", num("1")},
		{"CASE WHEN a THEN 1 ELSE 2 END", &core.CaseExpr{
			Whens: []core.WhenClause{{Condition: col("a"), Result: num("1")}},
			Else:  num("2"),
		}},
		{"CASE a WHEN 1 THEN 'x' END", &core.CaseExpr{
			Operand: col("a"),
			Whens:   []core.WhenClause{{Condition: num("1"), Result: &core.Literal{Type: core.LiteralString, Value: "x"}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assertTree(t, tt.want, mustExpr(t, tt.sql))
		})
	}
}

func TestParseExpr_Subqueries(t *testing.T) {
	t.Run("scalar subquery", func(t *testing.T) {
		sub, ok := mustExpr(t, "(SELECT 1)").(*core.SubqueryExpr)
		require.True(t, ok)
		assert.IsType(t, &core.SelectCore{}, sub.Query.Body)
	})

	t.Run("parenthesized set operation", func(t *testing.T) {
		sub, ok := mustExpr(t, "((SELECT 1) UNION (SELECT 2))").(*core.SubqueryExpr)
		require.True(t, ok)
		setOp, ok := sub.Query.Body.(*core.SetOperation)
		require.True(t, ok)
		assert.Equal(t, core.SetOpUnion, setOp.Op)
	})

	t.Run("subquery as operand", func(t *testing.T) {
		expr, ok := mustExpr(t, "((SELECT 1) + 1)").(*core.BinaryExpr)
		require.True(t, ok)
		assert.IsType(t, &core.SubqueryExpr{}, expr.Left)
	})

	t.Run("exists", func(t *testing.T) {
		expr, ok := mustExpr(t, "NOT EXISTS (SELECT 1 FROM t)").(*core.UnaryExpr)
		require.True(t, ok)
		assert.IsType(t, &core.ExistsExpr{}, expr.Expr)
	})

	t.Run("in subquery", func(t *testing.T) {
		in, ok := mustExpr(t, "a IN (SELECT b FROM t)").(*core.InExpr)
		require.True(t, ok)
		require.NotNil(t, in.Query)
		assert.Empty(t, in.Values)
	})
}

func TestParseExpr_WindowFunctions(t *testing.T) {
	fn, ok := mustExpr(t, "SUM(x) FILTER (WHERE x > 0) OVER (PARTITION BY a ORDER BY b DESC ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW)").(*core.FuncCall)
	require.True(t, ok)
	require.NotNil(t, fn.Filter)
	require.NotNil(t, fn.Over)
	assert.Len(t, fn.Over.PartitionBy, 1)
	require.Len(t, fn.Over.OrderBy, 1)
	assert.True(t, fn.Over.OrderBy[0].Desc)
	require.NotNil(t, fn.Over.Frame)
	assert.Equal(t, core.FrameRows, fn.Over.Frame.Type)
	assert.Equal(t, core.FrameUnboundedPreceding, fn.Over.Frame.Start.Type)
	assert.Equal(t, core.FrameCurrentRow, fn.Over.Frame.End.Type)

	named, ok := mustExpr(t, "RANK() OVER w").(*core.FuncCall)
	require.True(t, ok)
	require.NotNil(t, named.Over.Name)
	assert.Equal(t, "w", named.Over.Name.Value)

	agg, ok := mustExpr(t, "STRING_AGG(name, ',' ORDER BY name)").(*core.FuncCall)
	require.True(t, ok)
	assert.Len(t, agg.Args, 2)
	assert.Len(t, agg.OrderBy, 1)
}

func TestParseExpr_Errors(t *testing.T) {
	tests := []struct {
		sql     string
		message string
	}{
		{"1 +", "expected an expression, found end of input"},
		{"(1", "expected ')', found end of input"},
		{"a IS 5", "expected NULL, TRUE, FALSE or DISTINCT FROM after IS"},
		{"CASE END", "expected WHEN, found END"},
		{"CASE ELSE 1 END", "expected WHEN, found ELSE"},
		{"CASE a END", "expected WHEN, found END"},
		{"CAST(a)", "expected AS"},
		{"a BETWEEN 1", "expected AND"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			_, err := parser.ParseExpr(tt.sql, generic.Generic)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_NestingLimit(t *testing.T) {
	deep := strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500)
	_, err := parser.ParseExpr(deep, generic.Generic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting exceeds")

	shallow := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)
	_, err = parser.ParseExpr(shallow, generic.Generic)
	require.NoError(t, err)
}

// ---------- Spans ----------

func TestParse_Spans(t *testing.T) {
	sel := parseSelect(t, "SELECT a + b FROM t", generic.Generic)
	require.Len(t, sel.Columns, 1)

	expr := sel.Columns[0].Expr
	assert.Equal(t, token.Position{Line: 1, Column: 8, Offset: 7}, expr.Pos())
	assert.Equal(t, token.Position{Line: 1, Column: 13, Offset: 12}, expr.End())

	table := sel.From[0].Relation
	assert.Equal(t, 19, table.Pos().Column)
	assert.Equal(t, 1, sel.Pos().Column)
}

// ---------- Queries ----------

func TestParse_SetOperations(t *testing.T) {
	t.Run("intersect binds tighter", func(t *testing.T) {
		q := parseQuery(t, "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3", generic.Generic)
		union, ok := q.Body.(*core.SetOperation)
		require.True(t, ok)
		assert.Equal(t, core.SetOpUnion, union.Op)
		right, ok := union.Right.(*core.SetOperation)
		require.True(t, ok)
		assert.Equal(t, core.SetOpIntersect, right.Op)
	})

	t.Run("left associative", func(t *testing.T) {
		q := parseQuery(t, "SELECT 1 EXCEPT SELECT 2 UNION ALL SELECT 3", generic.Generic)
		union, ok := q.Body.(*core.SetOperation)
		require.True(t, ok)
		assert.Equal(t, core.SetOpUnion, union.Op)
		assert.True(t, union.All)
		left, ok := union.Left.(*core.SetOperation)
		require.True(t, ok)
		assert.Equal(t, core.SetOpExcept, left.Op)
	})

	t.Run("order by applies to whole query", func(t *testing.T) {
		q := parseQuery(t, "SELECT a FROM t UNION SELECT a FROM u ORDER BY a LIMIT 3", generic.Generic)
		assert.IsType(t, &core.SetOperation{}, q.Body)
		assert.Len(t, q.OrderBy, 1)
		assert.NotNil(t, q.Limit)
	})

	t.Run("values body", func(t *testing.T) {
		q := parseQuery(t, "VALUES (1, 'a'), (2, 'b')", generic.Generic)
		values, ok := q.Body.(*core.ValuesExpr)
		require.True(t, ok)
		assert.Len(t, values.Rows, 2)
	})
}

func TestParse_WithClause(t *testing.T) {
	q := parseQuery(t, "WITH RECURSIVE r(n) AS (SELECT 1 UNION ALL SELECT n + 1 FROM r WHERE n < 5), s AS (SELECT 2) SELECT n FROM r", generic.Generic)
	require.NotNil(t, q.With)
	assert.True(t, q.With.Recursive)
	require.Len(t, q.With.CTEs, 2)
	assert.Equal(t, "r", q.With.CTEs[0].Name.Value)
	assert.Equal(t, []core.Ident{core.NewIdent("n")}, q.With.CTEs[0].Columns)
	assert.Equal(t, "s", q.With.CTEs[1].Name.Value)
}

func TestParse_SelectItems(t *testing.T) {
	sel := parseSelect(t, `SELECT *, t.*, s.t.*, a AS x, b y, c "Quoted" FROM t`, generic.Generic)
	require.Len(t, sel.Columns, 6)

	assert.True(t, sel.Columns[0].Star)
	assert.Equal(t, core.NewObjectName("t"), sel.Columns[1].TableStar)
	assert.Equal(t, core.NewObjectName("s", "t"), sel.Columns[2].TableStar)
	assert.Equal(t, "x", sel.Columns[3].Alias.Value)
	assert.Equal(t, "y", sel.Columns[4].Alias.Value)
	assert.Equal(t, core.Ident{Value: "Quoted", Quote: '"'}, *sel.Columns[5].Alias)
}

func TestParse_ReservedWordsAreNotAliases(t *testing.T) {
	sel := parseSelect(t, "SELECT a FROM t WHERE a = 1", generic.Generic)
	assert.Nil(t, sel.From[0].Relation.(*core.TableName).Alias)
	assert.NotNil(t, sel.Where)

	_, err := parser.Parse("SELECT a AS from FROM t", generic.Generic)
	require.Error(t, err)
}

func TestParse_QueryModifiers(t *testing.T) {
	t.Run("order by with nulls", func(t *testing.T) {
		q := parseQuery(t, "SELECT a FROM t ORDER BY a DESC NULLS LAST, b ASC, c NULLS FIRST", generic.Generic)
		require.Len(t, q.OrderBy, 3)
		assert.True(t, q.OrderBy[0].Desc)
		require.NotNil(t, q.OrderBy[0].NullsFirst)
		assert.False(t, *q.OrderBy[0].NullsFirst)
		assert.False(t, q.OrderBy[1].Desc)
		assert.Nil(t, q.OrderBy[1].NullsFirst)
		assert.True(t, *q.OrderBy[2].NullsFirst)
	})

	t.Run("limit offset", func(t *testing.T) {
		q := parseQuery(t, "SELECT a FROM t LIMIT 10 OFFSET 5 ROWS", generic.Generic)
		assertTree(t, num("10"), q.Limit)
		assertTree(t, num("5"), q.Offset)
	})

	t.Run("limit with offset first", func(t *testing.T) {
		q := parseQuery(t, "SELECT a FROM t LIMIT 5, 10", generic.Generic)
		assertTree(t, num("10"), q.Limit)
		assertTree(t, num("5"), q.Offset)
	})

	t.Run("offset twice", func(t *testing.T) {
		_, err := parser.Parse("SELECT a FROM t LIMIT 5, 10 OFFSET 1", generic.Generic)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OFFSET specified twice")
	})

	t.Run("fetch", func(t *testing.T) {
		q := parseQuery(t, "SELECT a FROM t OFFSET 2 ROWS FETCH NEXT 3 ROWS WITH TIES", generic.Generic)
		require.NotNil(t, q.Fetch)
		assertTree(t, num("3"), q.Fetch.Count)
		assert.True(t, q.Fetch.WithTies)

		q = parseQuery(t, "SELECT a FROM t FETCH FIRST ROW ONLY", generic.Generic)
		require.NotNil(t, q.Fetch)
		assert.Nil(t, q.Fetch.Count)
	})
}

func TestParse_Clauses(t *testing.T) {
	sel := parseSelect(t, "SELECT DISTINCT a, COUNT(*) FROM t WHERE b > 1 GROUP BY a HAVING COUNT(*) > 2", postgres.Postgres)
	assert.True(t, sel.Distinct)
	assert.NotNil(t, sel.Where)
	assert.Len(t, sel.GroupBy, 1)
	assert.NotNil(t, sel.Having)

	_, err := parser.Parse("SELECT a FROM t GROUP BY a WHERE b > 1", postgres.Postgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found WHERE")
}
