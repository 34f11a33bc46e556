package format

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// DecoratedStmt is a statement with the comments that belong to it.
type DecoratedStmt struct {
	Stmt     core.Stmt
	Leading  []string // comments before or inside the statement
	Trailing []string // comments after the last statement
}

// Decorate attaches comments to statements by position. A comment belongs
// to the first statement that ends after it starts; comments past the last
// statement trail it. With no statements, comments are dropped.
func Decorate(stmts []core.Stmt, comments []token.Comment) []DecoratedStmt {
	out := make([]DecoratedStmt, len(stmts))
	for i, stmt := range stmts {
		out[i].Stmt = stmt
	}
	if len(stmts) == 0 {
		return out
	}

	i := 0
	for _, c := range comments {
		for i < len(stmts) && stmts[i].End().Offset <= c.Span.Start.Offset {
			i++
		}
		if i == len(stmts) {
			last := &out[len(out)-1]
			last.Trailing = append(last.Trailing, c.Text)
			continue
		}
		out[i].Leading = append(out[i].Leading, c.Text)
	}
	return out
}
