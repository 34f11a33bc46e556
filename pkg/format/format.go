// Package format renders AST nodes back to SQL.
//
// Output is canonical rather than a copy of the input: a single line,
// keywords in upper case, one space between tokens and ", " between list
// items. Parentheses appear only where operator precedence requires them,
// so rendering a parsed statement and parsing the result again yields an
// equal tree.
//
//	stmt, _ := parser.Parse("select a+1 from t where not x", postgres.Postgres)
//	format.Format(stmt, postgres.Postgres) // SELECT a + 1 FROM t WHERE NOT x
package format

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Format renders a statement or expression using dialect d's operator
// precedence, clause order and string escaping. A nil dialect uses the
// standard tables.
func Format(node core.Node, d *dialect.Dialect) string {
	p := newPrinter(d)
	switch n := node.(type) {
	case core.Stmt:
		p.formatStmt(n)
	case core.Expr:
		p.formatExpr(n)
	}
	return p.String()
}

// SQL renders node without a dialect.
func SQL(node core.Node) string {
	return Format(node, nil)
}

// Statements renders each statement on its own.
func Statements(stmts []core.Stmt, d *dialect.Dialect) []string {
	out := make([]string, len(stmts))
	for i, stmt := range stmts {
		out[i] = Format(stmt, d)
	}
	return out
}

// Script renders statements one per line, each terminated by ';'.
// Comments collected by the lexer are reproduced on their own lines
// ahead of the statement they precede.
func Script(stmts []core.Stmt, comments []token.Comment, d *dialect.Dialect) string {
	var sb strings.Builder
	for _, ds := range Decorate(stmts, comments) {
		for _, c := range ds.Leading {
			sb.WriteString(c)
			sb.WriteByte('\n')
		}
		sb.WriteString(Format(ds.Stmt, d))
		sb.WriteString(";\n")
		for _, c := range ds.Trailing {
			sb.WriteString(c)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
