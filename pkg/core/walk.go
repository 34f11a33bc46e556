package core

import "reflect"

// Walk traverses an AST depth-first and calls fn for each node, including
// helper structs such as *Join, *CTE and *TableWithJoins.
// If fn returns false, the children of that node are skipped.
func Walk(node any, fn func(node any) bool) {
	if isNil(node) {
		return
	}
	if !fn(node) {
		return
	}
	walkNode(node, fn)
}

// Inspect is like Walk but only reports values implementing Node.
func Inspect(node any, fn func(n Node) bool) {
	Walk(node, func(v any) bool {
		if n, ok := v.(Node); ok {
			return fn(n)
		}
		return true
	})
}

func isNil(node any) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func walkExprs(exprs []Expr, fn func(node any) bool) {
	for _, e := range exprs {
		Walk(e, fn)
	}
}

func walkOrderBy(items []OrderByItem, fn func(node any) bool) {
	for _, item := range items {
		Walk(item.Expr, fn)
	}
}

func walkSelectItems(items []SelectItem, fn func(node any) bool) {
	for _, item := range items {
		Walk(item.Expr, fn)
	}
}

func walkFrom(from []*TableWithJoins, fn func(node any) bool) {
	for _, twj := range from {
		Walk(twj, fn)
	}
}

//nolint:gocyclo,cyclop // one case per node type
func walkNode(node any, fn func(node any) bool) {
	switch n := node.(type) {
	// ---------- Queries ----------
	case *SelectStmt:
		Walk(n.With, fn)
		Walk(n.Body, fn)
		walkOrderBy(n.OrderBy, fn)
		Walk(n.Limit, fn)
		Walk(n.Offset, fn)
		if n.Fetch != nil {
			Walk(n.Fetch.Count, fn)
		}

	case *WithClause:
		for _, cte := range n.CTEs {
			Walk(cte, fn)
		}

	case *CTE:
		Walk(n.Select, fn)

	case *SetOperation:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *SelectCore:
		Walk(n.Top, fn)
		walkSelectItems(n.Columns, fn)
		walkFrom(n.From, fn)
		Walk(n.Where, fn)
		walkExprs(n.GroupBy, fn)
		Walk(n.Having, fn)
		Walk(n.Qualify, fn)

	case *ValuesExpr:
		for _, row := range n.Rows {
			walkExprs(row, fn)
		}

	case *ParenSelect:
		Walk(n.Select, fn)

	// ---------- Tables ----------
	case *TableWithJoins:
		Walk(n.Relation, fn)
		for _, j := range n.Joins {
			Walk(j, fn)
		}

	case *Join:
		Walk(n.Right, fn)
		Walk(n.Condition, fn)

	case *TableName:
		// Leaf node

	case *DerivedTable:
		Walk(n.Select, fn)

	case *NestedJoin:
		Walk(n.Table, fn)

	case *TableFunction:
		walkExprs(n.Args, fn)

	// ---------- Expressions ----------
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *UnaryExpr:
		Walk(n.Expr, fn)

	case *FuncCall:
		walkExprs(n.Args, fn)
		walkOrderBy(n.OrderBy, fn)
		Walk(n.Filter, fn)
		if n.Over != nil {
			walkExprs(n.Over.PartitionBy, fn)
			walkOrderBy(n.Over.OrderBy, fn)
			if f := n.Over.Frame; f != nil {
				if f.Start != nil {
					Walk(f.Start.Offset, fn)
				}
				if f.End != nil {
					Walk(f.End.Offset, fn)
				}
			}
		}

	case *CaseExpr:
		Walk(n.Operand, fn)
		for _, w := range n.Whens {
			Walk(w.Condition, fn)
			Walk(w.Result, fn)
		}
		Walk(n.Else, fn)

	case *CastExpr:
		Walk(n.Expr, fn)

	case *ExtractExpr:
		Walk(n.Expr, fn)

	case *IntervalExpr:
		Walk(n.Value, fn)

	case *InExpr:
		Walk(n.Expr, fn)
		walkExprs(n.Values, fn)
		Walk(n.Query, fn)

	case *BetweenExpr:
		Walk(n.Expr, fn)
		Walk(n.Low, fn)
		Walk(n.High, fn)

	case *LikeExpr:
		Walk(n.Expr, fn)
		Walk(n.Pattern, fn)
		Walk(n.Escape, fn)

	case *IsNullExpr:
		Walk(n.Expr, fn)

	case *IsBoolExpr:
		Walk(n.Expr, fn)

	case *IsDistinctExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *ExistsExpr:
		Walk(n.Query, fn)

	case *SubqueryExpr:
		Walk(n.Query, fn)

	case *TupleExpr:
		walkExprs(n.Exprs, fn)

	case *ColumnRef, *Literal, *TypedLiteral, *Placeholder:
		// Leaf nodes

	// ---------- Data Modification ----------
	case *InsertStmt:
		Walk(n.Source, fn)
		walkSelectItems(n.Returning, fn)

	case *UpdateStmt:
		Walk(n.Table, fn)
		for _, a := range n.Assignments {
			Walk(a.Value, fn)
		}
		walkFrom(n.From, fn)
		Walk(n.Where, fn)
		walkSelectItems(n.Returning, fn)

	case *DeleteStmt:
		Walk(n.Where, fn)
		walkSelectItems(n.Returning, fn)

	// ---------- Schema Definition ----------
	case *CreateTableStmt:
		for _, col := range n.Columns {
			for _, opt := range col.Options {
				Walk(opt.Expr, fn)
			}
		}
		for _, c := range n.Constraints {
			Walk(c.Check, fn)
		}
		Walk(n.As, fn)

	case *CreateViewStmt:
		Walk(n.Query, fn)

	case *CreateIndexStmt:
		walkOrderBy(n.Columns, fn)

	case *AlterTableStmt:
		switch op := n.Operation.(type) {
		case *AddColumn:
			for _, opt := range op.Column.Options {
				Walk(opt.Expr, fn)
			}
		case *AddConstraint:
			Walk(op.Constraint.Check, fn)
		case *AlterColumn:
			Walk(op.Default, fn)
		}

	case *SetStmt:
		walkExprs(n.Values, fn)

	case *ExplainStmt:
		Walk(n.Stmt, fn)
	}
}
