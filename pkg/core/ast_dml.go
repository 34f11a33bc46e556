package core

// ---------- Data Modification Statements ----------

// InsertStmt represents INSERT INTO table [(cols)] query [RETURNING ...].
type InsertStmt struct {
	NodeInfo
	Table     ObjectName
	Columns   []Ident
	Source    *SelectStmt
	Returning []SelectItem
}

func (*InsertStmt) stmtNode() {}

// Assignment is one col = expr pair of an UPDATE.
type Assignment struct {
	Column ObjectName
	Value  Expr
}

// UpdateStmt represents UPDATE table SET ... [FROM ...] [WHERE ...] [RETURNING ...].
type UpdateStmt struct {
	NodeInfo
	Table       *TableName
	Assignments []Assignment
	From        []*TableWithJoins
	Where       Expr
	Returning   []SelectItem
}

func (*UpdateStmt) stmtNode() {}

// DeleteStmt represents DELETE FROM table [WHERE ...] [RETURNING ...].
type DeleteStmt struct {
	NodeInfo
	Table     ObjectName
	Where     Expr
	Returning []SelectItem
}

func (*DeleteStmt) stmtNode() {}

// ---------- Session and Transaction Statements ----------

// TransactionModeKind distinguishes isolation level from access mode.
type TransactionModeKind int

// TransactionModeKind constants.
const (
	IsolationLevel TransactionModeKind = iota
	AccessMode
)

// TransactionMode is ISOLATION LEVEL <level> or READ ONLY/READ WRITE.
type TransactionMode struct {
	Kind  TransactionModeKind
	Value string // "READ COMMITTED", "SERIALIZABLE", "READ ONLY", ...
}

// StartTransactionStmt represents START TRANSACTION (or BEGIN).
type StartTransactionStmt struct {
	NodeInfo
	Modes []TransactionMode
}

func (*StartTransactionStmt) stmtNode() {}

// CommitStmt represents COMMIT.
type CommitStmt struct {
	NodeInfo
}

func (*CommitStmt) stmtNode() {}

// RollbackStmt represents ROLLBACK.
type RollbackStmt struct {
	NodeInfo
}

func (*RollbackStmt) stmtNode() {}

// SetStmt represents SET [SESSION|LOCAL] name = value [, ...].
type SetStmt struct {
	NodeInfo
	Scope  string // "", "SESSION" or "LOCAL"
	Name   ObjectName
	Values []Expr
}

func (*SetStmt) stmtNode() {}

// ShowStmt represents SHOW name.
type ShowStmt struct {
	NodeInfo
	Name ObjectName
}

func (*ShowStmt) stmtNode() {}

// ShowColumnsStmt represents SHOW COLUMNS FROM table.
type ShowColumnsStmt struct {
	NodeInfo
	Table ObjectName
}

func (*ShowColumnsStmt) stmtNode() {}

// UseStmt represents USE database.
type UseStmt struct {
	NodeInfo
	Name ObjectName
}

func (*UseStmt) stmtNode() {}

// ExplainStmt represents EXPLAIN [ANALYZE] [VERBOSE] statement.
type ExplainStmt struct {
	NodeInfo
	Analyze bool
	Verbose bool
	Stmt    Stmt
}

func (*ExplainStmt) stmtNode() {}
