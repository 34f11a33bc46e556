package parser_test

import (
	"testing"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/all"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/generic"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/hive"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlparser/pkg/dialects/snowflake"
	"github.com/leapstack-labs/sqlparser/pkg/parser"
	"github.com/leapstack-labs/sqlparser/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialectExpr(t *testing.T, sql string, d *dialect.Dialect) core.Expr {
	t.Helper()
	expr, err := parser.ParseExpr(sql, d)
	require.NoError(t, err)
	return expr
}

// ---------- QUALIFY Clause ----------

const qualifyQuery = `SELECT name, ROW_NUMBER() OVER (PARTITION BY dept ORDER BY salary DESC) AS rn
	FROM employees
	QUALIFY rn = 1`

func TestSnowflakeAcceptsQualify(t *testing.T) {
	sel := parseSelect(t, qualifyQuery, snowflake.Snowflake)
	require.NotNil(t, sel.Qualify)
	assertTree(t, bin(col("rn"), token.EQ, num("1")), sel.Qualify)
}

func TestQualifyRejectedOutsideSnowflake(t *testing.T) {
	for _, d := range []*dialect.Dialect{postgres.Postgres, ansi.ANSI, generic.Generic, mysql.MySQL} {
		t.Run(d.Name, func(t *testing.T) {
			_, err := parser.Parse(qualifyQuery, d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expected end of statement")
		})
	}
}

func TestSnowflakeClauseOrderEnforced(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM t QUALIFY a = 1 WHERE b = 2", snowflake.Snowflake)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found WHERE")
}

func TestConfigWiredQualifyKeepsStandardClauses(t *testing.T) {
	d := dialect.New(&core.DialectConfig{Name: "wired", SupportsQualify: true}).
		Operators(dialect.ANSIOperators).
		Build()

	sel := parseSelect(t, "SELECT a FROM t WHERE b = 1 GROUP BY a HAVING COUNT(*) > 1 QUALIFY a = 2", d)
	assertTree(t, bin(col("b"), token.EQ, num("1")), sel.Where)
	require.Len(t, sel.GroupBy, 1)
	assert.NotNil(t, sel.Having)
	assertTree(t, bin(col("a"), token.EQ, num("2")), sel.Qualify)

	_, err := parser.Parse("SELECT a FROM t WHERE b = 1", d)
	require.NoError(t, err)
}

// ---------- ILIKE ----------

func TestILIKE(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		like, ok := dialectExpr(t, "name NOT ILIKE 'a%'", postgres.Postgres).(*core.LikeExpr)
		require.True(t, ok)
		assert.True(t, like.Not)
		assert.Equal(t, dialect.TokenIlike, like.Op)
	})

	t.Run("binds tighter than OR", func(t *testing.T) {
		expr := dialectExpr(t, "a ILIKE 'x' OR b ILIKE 'y'", snowflake.Snowflake)
		or, ok := expr.(*core.BinaryExpr)
		require.True(t, ok)
		assert.Equal(t, token.OR, or.Op)
		assert.IsType(t, &core.LikeExpr{}, or.Left)
		assert.IsType(t, &core.LikeExpr{}, or.Right)
	})

	t.Run("ansi", func(t *testing.T) {
		_, err := parser.Parse("SELECT * FROM t WHERE name ILIKE 'a%'", ansi.ANSI)
		require.Error(t, err)
	})
}

func TestRegexMatchOperators(t *testing.T) {
	tests := []struct {
		d    *dialect.Dialect
		sql  string
		want token.TokenType
	}{
		{mysql.MySQL, "a RLIKE '^x'", dialect.TokenRlike},
		{mysql.MySQL, "a NOT REGEXP '^x'", dialect.TokenRegexp},
		{hive.Hive, "a RLIKE '^x'", dialect.TokenRlike},
		{snowflake.Snowflake, "a REGEXP '^x'", dialect.TokenRegexp},
	}

	for _, tt := range tests {
		t.Run(tt.d.Name+"/"+tt.sql, func(t *testing.T) {
			like, ok := dialectExpr(t, tt.sql, tt.d).(*core.LikeExpr)
			require.True(t, ok)
			assert.Equal(t, tt.want, like.Op)
		})
	}

	_, err := parser.Parse("SELECT * FROM t WHERE a RLIKE 'x'", postgres.Postgres)
	require.Error(t, err)
}

// ---------- TOP ----------

func TestMSSQLTop(t *testing.T) {
	sel := parseSelect(t, "SELECT TOP 5 a FROM t", mssql.MSSQL)
	assertTree(t, num("5"), sel.Top)
	require.Len(t, sel.Columns, 1)

	sel = parseSelect(t, "SELECT DISTINCT TOP (2 * 3) [a] FROM [dbo].[t]", mssql.MSSQL)
	assert.True(t, sel.Distinct)
	assertTree(t, bin(num("2"), token.STAR, num("3")), sel.Top)
	assert.Equal(t, core.ObjectName{{Value: "dbo", Quote: '['}, {Value: "t", Quote: '['}},
		sel.From[0].Relation.(*core.TableName).Name)

	_, err := parser.Parse("SELECT TOP a FROM t", mssql.MSSQL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row count after TOP")
}

func TestTopRejectedOutsideMSSQL(t *testing.T) {
	for _, d := range []*dialect.Dialect{generic.Generic, postgres.Postgres, mysql.MySQL} {
		t.Run(d.Name, func(t *testing.T) {
			_, err := parser.Parse("SELECT TOP 5 a FROM t", d)
			require.Error(t, err)
		})
	}
}

// ---------- RETURNING ----------

func TestReturning(t *testing.T) {
	stmt, err := parser.Parse("DELETE FROM t WHERE id = 1 RETURNING id, name", postgres.Postgres)
	require.NoError(t, err)
	del, ok := stmt.(*core.DeleteStmt)
	require.True(t, ok)
	assert.Len(t, del.Returning, 2)

	for _, d := range []*dialect.Dialect{ansi.ANSI, mssql.MSSQL} {
		t.Run(d.Name, func(t *testing.T) {
			_, err := parser.Parse("DELETE FROM t RETURNING id", d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "RETURNING is not supported in "+d.Name+" dialect")
		})
	}
}

// ---------- Operators ----------

func TestCastOperator(t *testing.T) {
	cast, ok := dialectExpr(t, "x::INT + 1", postgres.Postgres).(*core.BinaryExpr)
	require.True(t, ok)
	assertTree(t, &core.CastExpr{Expr: col("x"), Type: &core.DataType{Name: "INT"}}, cast.Left)

	arr, ok := dialectExpr(t, "tags::text[]", postgres.Postgres).(*core.CastExpr)
	require.True(t, ok)
	assert.Equal(t, 1, arr.Type.ArrayDims)

	_, err := parser.ParseExpr("x::INT", ansi.ANSI)
	require.Error(t, err)
}

func TestDialectOperatorPrecedence(t *testing.T) {
	a, b, c := col("a"), col("b"), col("c")

	tests := []struct {
		name string
		d    *dialect.Dialect
		sql  string
		want core.Expr
	}{
		{"mysql caret above multiply", mysql.MySQL, "a * b ^ c", bin(a, token.STAR, bin(b, token.CARET, c))},
		{"mysql div", mysql.MySQL, "a DIV b + c", bin(bin(a, dialect.TokenDiv, b), token.PLUS, c)},
		{"hive div", hive.Hive, "a + b DIV c", bin(a, token.PLUS, bin(b, dialect.TokenDiv, c))},
		{"mssql bitwise is additive", mssql.MSSQL, "a & b + c", bin(bin(a, token.AMP, b), token.PLUS, c)},
		{"generic bitwise below additive", generic.Generic, "a & b + c", bin(a, token.AMP, bin(b, token.PLUS, c))},
		{"postgres concat", postgres.Postgres, "a || b = c", bin(bin(a, token.DPIPE, b), token.EQ, c)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, dialectExpr(t, tt.sql, tt.d))
		})
	}
}

// ---------- LIMIT Forms ----------

func TestMySQLLimitOffsetForm(t *testing.T) {
	q := parseQuery(t, "SELECT * FROM `orders` LIMIT 20, 10", mysql.MySQL)
	assertTree(t, num("10"), q.Limit)
	assertTree(t, num("20"), q.Offset)
}

// ---------- Reserved Words ----------

func TestReservedWordsVaryByDialect(t *testing.T) {
	// "user" is reserved in postgres and ansi but a plain name in mysql
	_, err := parser.Parse("SELECT 1 AS user", postgres.Postgres)
	require.Error(t, err)

	_, err = parser.Parse("SELECT 1 AS user", mysql.MySQL)
	require.NoError(t, err)

	// a quoted reserved word is always an identifier
	_, err = parser.Parse(`SELECT 1 AS "user"`, postgres.Postgres)
	require.NoError(t, err)
}

func TestReservedWordsRejectedAsBareNames(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		d       *dialect.Dialect
		wantErr string
	}{
		{name: "column", sql: "SELECT user FROM t", d: postgres.Postgres, wantErr: `found identifier "user"`},
		{name: "table", sql: "SELECT a FROM user", d: postgres.Postgres, wantErr: `expected table name, found identifier "user"`},
		{name: "where operand", sql: "SELECT a FROM t WHERE some = 1", d: ansi.ANSI, wantErr: `found identifier "some"`},
		{name: "create table", sql: "CREATE TABLE t (mod INT)", d: mysql.MySQL, wantErr: `found identifier "mod"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, tt.d)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReservedWordsAcceptedAsNames(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		d    *dialect.Dialect
	}{
		{name: "not reserved in mysql", sql: "SELECT user FROM user", d: mysql.MySQL},
		{name: "quoted", sql: `SELECT "user" FROM "user"`, d: postgres.Postgres},
		{name: "after a dot", sql: "SELECT u.user FROM accounts AS u", d: postgres.Postgres},
		{name: "qualified star", sql: "SELECT s.user.* FROM s.accounts", d: postgres.Postgres},
		{name: "function call", sql: "SELECT MOD(a, 2), CONVERT(b, CHAR) FROM t", d: mysql.MySQL},
		{name: "niladic function", sql: "SELECT CURRENT_DATE, current_timestamp FROM t", d: postgres.Postgres},
		{name: "from dual", sql: "SELECT 1 FROM DUAL", d: mysql.MySQL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, tt.d)
			require.NoError(t, err)
		})
	}
}

func TestReservedFunctionNameBuildsCall(t *testing.T) {
	sel := parseSelect(t, "SELECT MOD(a, 2), CURRENT_DATE", mysql.MySQL)

	fn, ok := sel.Columns[0].Expr.(*core.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "MOD", fn.Name[0].Value)
	assert.Len(t, fn.Args, 2)

	ref, ok := sel.Columns[1].Expr.(*core.ColumnRef)
	require.True(t, ok)
	assert.Equal(t, "CURRENT_DATE", ref.Parts[0].Value)
}

// ---------- Quoting ----------

func TestHiveQuotedIdentifiers(t *testing.T) {
	sel := parseSelect(t, "SELECT `select` FROM db.`table` WHERE x = 'a\\'b'", hive.Hive)
	ref, ok := sel.Columns[0].Expr.(*core.ColumnRef)
	require.True(t, ok)
	assert.Equal(t, core.Ident{Value: "select", Quote: '`'}, ref.Parts[0])

	cmp, ok := sel.Where.(*core.BinaryExpr)
	require.True(t, ok)
	assertTree(t, &core.Literal{Type: core.LiteralString, Value: "a'b"}, cmp.Right)
}

// ---------- Registry ----------

func TestEveryDialectParsesCommonSQL(t *testing.T) {
	sql := `WITH recent AS (SELECT id, amount FROM orders WHERE amount > 10)
		SELECT r.id, SUM(r.amount) AS total
		FROM recent r LEFT JOIN customers c ON c.id = r.id
		GROUP BY r.id
		HAVING SUM(r.amount) > 100
		ORDER BY total DESC
		LIMIT 10`

	for _, d := range all.Dialects {
		t.Run(d.Name, func(t *testing.T) {
			_, err := parser.ParseStatements(sql, d)
			require.NoError(t, err)
		})
	}
}
