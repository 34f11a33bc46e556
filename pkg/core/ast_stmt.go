package core

// ---------- Query Types ----------

// SelectStmt is a complete query: an optional WITH clause, a body and the
// ORDER BY / LIMIT / OFFSET / FETCH modifiers that apply to the whole body.
// It is used both as a statement and wherever a subquery appears.
type SelectStmt struct {
	NodeInfo
	With    *WithClause
	Body    SetExpr
	OrderBy []OrderByItem
	Limit   Expr
	Offset  Expr
	Fetch   *FetchClause
}

func (*SelectStmt) stmtNode() {}

// WithClause represents a WITH clause with CTEs.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

// CTE represents a Common Table Expression.
type CTE struct {
	Name    Ident
	Columns []Ident
	Select  *SelectStmt
}

// SetOpType represents the type of set operation.
type SetOpType string

// SetOpType constants for set operations in queries.
const (
	SetOpUnion     SetOpType = "UNION"
	SetOpIntersect SetOpType = "INTERSECT"
	SetOpExcept    SetOpType = "EXCEPT"
)

// SetOperation combines two query bodies. Chains are left-associative and
// INTERSECT binds tighter than UNION and EXCEPT.
type SetOperation struct {
	NodeInfo
	Left  SetExpr
	Op    SetOpType
	All   bool
	Right SetExpr
}

func (*SetOperation) setExprNode() {}

// SelectCore represents a single SELECT ... FROM ... WHERE ... block.
type SelectCore struct {
	NodeInfo
	Distinct bool
	Top      Expr // SELECT TOP n (T-SQL)
	Columns  []SelectItem
	From     []*TableWithJoins
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	Qualify  Expr
}

func (*SelectCore) setExprNode() {}

// ValuesExpr is a VALUES list used as a query body.
type ValuesExpr struct {
	NodeInfo
	Rows [][]Expr
}

func (*ValuesExpr) setExprNode() {}

// ParenSelect is a parenthesized query used as an operand of a set operation.
type ParenSelect struct {
	NodeInfo
	Select *SelectStmt
}

func (*ParenSelect) setExprNode() {}

// SelectItem is one entry of a select list: *, t.*, or expr [AS alias].
type SelectItem struct {
	Star      bool
	TableStar ObjectName // qualifier of t.*
	Expr      Expr
	Alias     *Ident
}

// OrderByItem represents an ORDER BY item.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool // nil means unspecified
}

// FetchClause represents FETCH FIRST n ROWS ONLY/WITH TIES.
type FetchClause struct {
	Count    Expr // nil means one row
	WithTies bool
}
