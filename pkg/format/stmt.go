package format

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

func (p *Printer) formatStmt(stmt core.Stmt) {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		p.formatSelectStmt(s)
	case *core.InsertStmt:
		p.formatInsert(s)
	case *core.UpdateStmt:
		p.formatUpdate(s)
	case *core.DeleteStmt:
		p.formatDelete(s)
	case *core.CreateTableStmt:
		p.formatCreateTable(s)
	case *core.CreateViewStmt:
		p.formatCreateView(s)
	case *core.CreateIndexStmt:
		p.formatCreateIndex(s)
	case *core.CreateSchemaStmt:
		p.write("CREATE SCHEMA ")
		if s.IfNotExists {
			p.write("IF NOT EXISTS ")
		}
		p.objectName(s.Name)
	case *core.AlterTableStmt:
		p.formatAlterTable(s)
	case *core.DropStmt:
		p.formatDrop(s)
	case *core.TruncateStmt:
		p.write("TRUNCATE TABLE ")
		p.objectName(s.Name)
	case *core.StartTransactionStmt:
		p.write("START TRANSACTION")
		for i, m := range s.Modes {
			if i > 0 {
				p.write(",")
			}
			if m.Kind == core.IsolationLevel {
				p.write(" ISOLATION LEVEL ")
			} else {
				p.space()
			}
			p.write(m.Value)
		}
	case *core.CommitStmt:
		p.kw(token.COMMIT)
	case *core.RollbackStmt:
		p.kw(token.ROLLBACK)
	case *core.SetStmt:
		p.kw(token.SET)
		p.space()
		if s.Scope != "" {
			p.write(s.Scope)
			p.space()
		}
		p.objectName(s.Name)
		p.write(" = ")
		p.formatList(len(s.Values), func(i int) { p.formatExpr(s.Values[i]) })
	case *core.ShowStmt:
		p.write("SHOW ")
		p.objectName(s.Name)
	case *core.ShowColumnsStmt:
		p.write("SHOW COLUMNS FROM ")
		p.objectName(s.Table)
	case *core.UseStmt:
		p.write("USE ")
		p.objectName(s.Name)
	case *core.ExplainStmt:
		p.kw(token.EXPLAIN)
		if s.Analyze {
			p.write(" ANALYZE")
		}
		if s.Verbose {
			p.write(" VERBOSE")
		}
		p.space()
		p.formatStmt(s.Stmt)
	}
}

// ---------- Queries ----------

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	if stmt == nil {
		return
	}

	if stmt.With != nil {
		p.formatWithClause(stmt.With)
		p.space()
	}

	p.formatSetExpr(stmt.Body)

	if len(stmt.OrderBy) > 0 {
		p.write(" ORDER BY ")
		p.formatOrderBy(stmt.OrderBy)
	}
	if stmt.Limit != nil {
		p.write(" LIMIT ")
		p.formatExpr(stmt.Limit)
	}
	if stmt.Offset != nil {
		p.write(" OFFSET ")
		p.formatExpr(stmt.Offset)
	}
	if stmt.Fetch != nil {
		p.write(" FETCH FIRST ")
		if stmt.Fetch.Count != nil {
			p.formatExpr(stmt.Fetch.Count)
			p.write(" ROWS")
		} else {
			p.write("ROW")
		}
		if stmt.Fetch.WithTies {
			p.write(" WITH TIES")
		} else {
			p.write(" ONLY")
		}
	}
}

func (p *Printer) formatWithClause(with *core.WithClause) {
	p.kw(token.WITH)
	if with.Recursive {
		p.write(" RECURSIVE")
	}
	p.space()
	p.formatList(len(with.CTEs), func(i int) {
		cte := with.CTEs[i]
		p.ident(cte.Name)
		if len(cte.Columns) > 0 {
			p.space()
			p.identList(cte.Columns)
		}
		p.write(" AS (")
		p.formatSelectStmt(cte.Select)
		p.write(")")
	})
}

// setOpPrecedence mirrors the parser: INTERSECT binds tighter than UNION
// and EXCEPT.
func setOpPrecedence(op core.SetOpType) int {
	if op == core.SetOpIntersect {
		return 2
	}
	return 1
}

func (p *Printer) formatSetExpr(body core.SetExpr) {
	switch b := body.(type) {
	case *core.SelectCore:
		p.formatSelectCore(b)
	case *core.ValuesExpr:
		p.formatValues(b)
	case *core.ParenSelect:
		p.write("(")
		p.formatSelectStmt(b.Select)
		p.write(")")
	case *core.SetOperation:
		prec := setOpPrecedence(b.Op)
		p.formatSetOperand(b.Left, prec)
		p.space()
		p.write(string(b.Op))
		if b.All {
			p.write(" ALL")
		}
		p.space()
		p.formatSetOperand(b.Right, prec+1)
	}
}

func (p *Printer) formatSetOperand(body core.SetExpr, minPrec int) {
	if op, ok := body.(*core.SetOperation); ok && setOpPrecedence(op.Op) < minPrec {
		p.write("(")
		p.formatSetExpr(body)
		p.write(")")
		return
	}
	p.formatSetExpr(body)
}

func (p *Printer) formatValues(v *core.ValuesExpr) {
	p.kw(token.VALUES)
	p.space()
	p.formatList(len(v.Rows), func(i int) {
		p.write("(")
		p.formatList(len(v.Rows[i]), func(j int) { p.formatExpr(v.Rows[i][j]) })
		p.write(")")
	})
}

func (p *Printer) formatSelectCore(sel *core.SelectCore) {
	p.kw(token.SELECT)
	if sel.Distinct {
		p.write(" DISTINCT")
	}
	if sel.Top != nil {
		p.write(" TOP ")
		switch sel.Top.(type) {
		case *core.Literal, *core.Placeholder:
			p.formatExpr(sel.Top)
		default:
			p.write("(")
			p.formatExpr(sel.Top)
			p.write(")")
		}
	}
	p.space()
	p.formatSelectItems(sel.Columns)

	if len(sel.From) > 0 {
		p.write(" FROM ")
		p.formatList(len(sel.From), func(i int) { p.formatTableWithJoins(sel.From[i]) })
	}

	p.formatClauses(sel)
}

// formatClauses renders WHERE, GROUP BY, HAVING and QUALIFY in the order
// the dialect parses them. Populated clauses the dialect does not know
// follow in standard order.
func (p *Printer) formatClauses(sel *core.SelectCore) {
	var defs []core.ClauseDef
	if p.dialect != nil {
		for _, t := range p.dialect.ClauseSequence() {
			if def, ok := p.dialect.ClauseDef(t); ok {
				defs = append(defs, def)
			}
		}
	}
	done := make(map[core.ClauseSlot]bool, 4)
	for _, def := range defs {
		if p.formatClause(sel, def) {
			done[def.Slot] = true
		}
	}

	standard := append(append([]core.ClauseDef{}, dialect.StandardSelectClauses...), dialect.StandardQualify)
	for _, def := range standard {
		if !done[def.Slot] {
			p.formatClause(sel, def)
		}
	}
}

// formatClause prints one clause if its slot is populated.
func (p *Printer) formatClause(sel *core.SelectCore, def core.ClauseDef) bool {
	var body func()
	switch def.Slot {
	case core.SlotWhere:
		if sel.Where != nil {
			body = func() { p.formatExpr(sel.Where) }
		}
	case core.SlotGroupBy:
		if len(sel.GroupBy) > 0 {
			body = func() { p.formatList(len(sel.GroupBy), func(i int) { p.formatExpr(sel.GroupBy[i]) }) }
		}
	case core.SlotHaving:
		if sel.Having != nil {
			body = func() { p.formatExpr(sel.Having) }
		}
	case core.SlotQualify:
		if sel.Qualify != nil {
			body = func() { p.formatExpr(sel.Qualify) }
		}
	}
	if body == nil {
		return false
	}

	p.space()
	for i, word := range def.Keywords {
		if i > 0 {
			p.space()
		}
		p.keyword(word)
	}
	p.space()
	body()
	return true
}

func (p *Printer) formatSelectItems(items []core.SelectItem) {
	p.formatList(len(items), func(i int) {
		item := items[i]
		switch {
		case item.Star:
			p.write("*")
		case len(item.TableStar) > 0:
			p.objectName(item.TableStar)
			p.write(".*")
		default:
			p.formatExpr(item.Expr)
			if item.Alias != nil {
				p.write(" AS ")
				p.ident(*item.Alias)
			}
		}
	})
}

func (p *Printer) formatOrderBy(items []core.OrderByItem) {
	p.formatList(len(items), func(i int) {
		item := items[i]
		p.formatExpr(item.Expr)
		if item.Desc {
			p.write(" DESC")
		}
		if item.NullsFirst != nil {
			if *item.NullsFirst {
				p.write(" NULLS FIRST")
			} else {
				p.write(" NULLS LAST")
			}
		}
	})
}

// ---------- FROM ----------

func (p *Printer) formatTableWithJoins(twj *core.TableWithJoins) {
	p.formatTableRef(twj.Relation)
	for _, j := range twj.Joins {
		p.space()
		p.formatJoin(j)
	}
}

func (p *Printer) formatTableRef(ref core.TableRef) {
	switch t := ref.(type) {
	case *core.TableName:
		p.objectName(t.Name)
		p.formatTableAlias(t.Alias)
	case *core.DerivedTable:
		if t.Lateral {
			p.write("LATERAL ")
		}
		p.write("(")
		p.formatSelectStmt(t.Select)
		p.write(")")
		p.formatTableAlias(t.Alias)
	case *core.NestedJoin:
		p.write("(")
		p.formatTableWithJoins(t.Table)
		p.write(")")
	case *core.TableFunction:
		p.objectName(t.Name)
		p.write("(")
		p.formatList(len(t.Args), func(i int) { p.formatExpr(t.Args[i]) })
		p.write(")")
		p.formatTableAlias(t.Alias)
	}
}

func (p *Printer) formatTableAlias(alias *core.TableAlias) {
	if alias == nil {
		return
	}
	p.write(" AS ")
	p.ident(alias.Name)
	if len(alias.Columns) > 0 {
		p.space()
		p.identList(alias.Columns)
	}
}

func (p *Printer) formatJoin(j *core.Join) {
	if j.Natural {
		p.write("NATURAL ")
	}
	if j.Type != core.JoinInner {
		p.write(string(j.Type))
		p.space()
	}
	p.kw(token.JOIN)
	p.space()
	p.formatTableRef(j.Right)

	switch {
	case j.Condition != nil:
		p.write(" ON ")
		p.formatExpr(j.Condition)
	case len(j.Using) > 0:
		p.write(" USING ")
		p.identList(j.Using)
	}
}

// ---------- DML ----------

func (p *Printer) formatInsert(s *core.InsertStmt) {
	p.write("INSERT INTO ")
	p.objectName(s.Table)
	if len(s.Columns) > 0 {
		p.space()
		p.identList(s.Columns)
	}
	p.space()
	p.formatSelectStmt(s.Source)
	p.formatReturning(s.Returning)
}

func (p *Printer) formatUpdate(s *core.UpdateStmt) {
	p.kw(token.UPDATE)
	p.space()
	p.formatTableRef(s.Table)
	p.write(" SET ")
	p.formatList(len(s.Assignments), func(i int) {
		a := s.Assignments[i]
		p.objectName(a.Column)
		p.write(" = ")
		p.formatExpr(a.Value)
	})
	if len(s.From) > 0 {
		p.write(" FROM ")
		p.formatList(len(s.From), func(i int) { p.formatTableWithJoins(s.From[i]) })
	}
	if s.Where != nil {
		p.write(" WHERE ")
		p.formatExpr(s.Where)
	}
	p.formatReturning(s.Returning)
}

func (p *Printer) formatDelete(s *core.DeleteStmt) {
	p.write("DELETE FROM ")
	p.objectName(s.Table)
	if s.Where != nil {
		p.write(" WHERE ")
		p.formatExpr(s.Where)
	}
	p.formatReturning(s.Returning)
}

func (p *Printer) formatReturning(items []core.SelectItem) {
	if len(items) == 0 {
		return
	}
	p.write(" RETURNING ")
	p.formatSelectItems(items)
}
