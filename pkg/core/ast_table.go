package core

// ---------- Table Reference Types ----------

// TableWithJoins is one comma-separated FROM item: a table factor followed
// by a left-associative chain of joins.
type TableWithJoins struct {
	Relation TableRef
	Joins    []*Join
}

// TableAlias is AS name [(col, ...)].
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

// TableName represents a table name reference.
type TableName struct {
	NodeInfo
	Name  ObjectName
	Alias *TableAlias
}

func (*TableName) tableRefNode() {}

// DerivedTable represents a subquery in FROM clause.
type DerivedTable struct {
	NodeInfo
	Lateral bool
	Select  *SelectStmt
	Alias   *TableAlias
}

func (*DerivedTable) tableRefNode() {}

// NestedJoin represents a parenthesized join: (a JOIN b ON ...).
type NestedJoin struct {
	NodeInfo
	Table *TableWithJoins
}

func (*NestedJoin) tableRefNode() {}

// TableFunction represents a table-valued function call in FROM.
type TableFunction struct {
	NodeInfo
	Name  ObjectName
	Args  []Expr
	Alias *TableAlias
}

func (*TableFunction) tableRefNode() {}

// JoinType represents the type of join.
type JoinType string

// JoinType constants.
const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
)

// Join represents a JOIN clause.
type Join struct {
	Type      JoinType
	Natural   bool
	Right     TableRef
	Condition Expr    // ON condition
	Using     []Ident // USING columns
}
