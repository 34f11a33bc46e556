package core

import "github.com/leapstack-labs/sqlparser/pkg/token"

// ---------- Expression Types ----------

// ColumnRef represents a column reference, possibly qualified (t.col, s.t.col).
type ColumnRef struct {
	NodeInfo
	Parts []Ident
}

func (*ColumnRef) exprNode() {}

// Column returns the unqualified column name.
func (c *ColumnRef) Column() string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[len(c.Parts)-1].Value
}

// Table returns the qualifier immediately preceding the column, if any.
func (c *ColumnRef) Table() string {
	if len(c.Parts) < 2 {
		return ""
	}
	return c.Parts[len(c.Parts)-2].Value
}

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralType constants for SQL literal value types.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralNationalString // N'...'
	LiteralHexString      // X'...'
	LiteralBool
	LiteralNull
)

// Literal represents a literal value. String values are stored decoded;
// numbers keep their source spelling; booleans are "TRUE" or "FALSE".
type Literal struct {
	NodeInfo
	Type  LiteralType
	Value string
}

func (*Literal) exprNode() {}

// TypedLiteral is a string literal introduced by a type name: DATE '2024-01-01'.
type TypedLiteral struct {
	NodeInfo
	Type  *DataType
	Value string
}

func (*TypedLiteral) exprNode() {}

// IntervalExpr represents INTERVAL 'value' [unit].
type IntervalExpr struct {
	NodeInfo
	Value Expr
	Unit  string // upper-case unit (DAY, HOUR, ...) or empty
}

func (*IntervalExpr) exprNode() {}

// Placeholder is a bind parameter: ?, $1 or :name.
type Placeholder struct {
	NodeInfo
	Value string
}

func (*Placeholder) exprNode() {}

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	NodeInfo
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr represents a prefix operator (-, +, NOT).
type UnaryExpr struct {
	NodeInfo
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// FuncCall represents a function call.
type FuncCall struct {
	NodeInfo
	Name     ObjectName
	Distinct bool
	Star     bool // COUNT(*)
	Args     []Expr
	OrderBy  []OrderByItem // ordered-set aggregates: STRING_AGG(x, ',' ORDER BY y)
	Filter   Expr          // FILTER (WHERE ...)
	Over     *WindowSpec
}

func (*FuncCall) exprNode() {}

// WindowSpec represents an OVER clause. When Name is set the clause refers
// to a named window (OVER w) and the other fields are empty.
type WindowSpec struct {
	Name        *Ident
	PartitionBy []Expr
	OrderBy     []OrderByItem
	Frame       *FrameSpec
}

// FrameType represents ROWS, RANGE or GROUPS.
type FrameType string

// FrameType constants.
const (
	FrameRows   FrameType = "ROWS"
	FrameRange  FrameType = "RANGE"
	FrameGroups FrameType = "GROUPS"
)

// FrameSpec is a window frame. End is nil for the single-bound form.
type FrameSpec struct {
	Type  FrameType
	Start *FrameBound
	End   *FrameBound
}

// FrameBoundType identifies a frame boundary.
type FrameBoundType string

// FrameBoundType constants.
const (
	FrameUnboundedPreceding FrameBoundType = "UNBOUNDED PRECEDING"
	FramePreceding          FrameBoundType = "PRECEDING"
	FrameCurrentRow         FrameBoundType = "CURRENT ROW"
	FrameFollowing          FrameBoundType = "FOLLOWING"
	FrameUnboundedFollowing FrameBoundType = "UNBOUNDED FOLLOWING"
)

// FrameBound is one frame boundary; Offset is set for n PRECEDING/FOLLOWING.
type FrameBound struct {
	Type   FrameBoundType
	Offset Expr
}

// CaseExpr represents CASE [operand] WHEN ... THEN ... [ELSE ...] END.
type CaseExpr struct {
	NodeInfo
	Operand Expr // nil for a searched CASE
	Whens   []WhenClause
	Else    Expr
}

func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN ... THEN ... arm.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// CastExpr represents CAST(expr AS type), TRY_CAST(...) or expr::type.
type CastExpr struct {
	NodeInfo
	Expr Expr
	Type *DataType
	Try  bool
}

func (*CastExpr) exprNode() {}

// ExtractExpr represents EXTRACT(field FROM expr).
type ExtractExpr struct {
	NodeInfo
	Field string // upper-case date part
	Expr  Expr
}

func (*ExtractExpr) exprNode() {}

// InExpr represents expr [NOT] IN (values) or expr [NOT] IN (subquery).
type InExpr struct {
	NodeInfo
	Expr   Expr
	Not    bool
	Values []Expr
	Query  *SelectStmt
}

func (*InExpr) exprNode() {}

// BetweenExpr represents expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	NodeInfo
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

func (*BetweenExpr) exprNode() {}

// LikeExpr represents expr [NOT] LIKE pattern [ESCAPE esc]. Op is LIKE or a
// dialect variant such as ILIKE or RLIKE.
type LikeExpr struct {
	NodeInfo
	Expr    Expr
	Not     bool
	Op      token.TokenType
	Pattern Expr
	Escape  Expr
}

func (*LikeExpr) exprNode() {}

// IsNullExpr represents expr IS [NOT] NULL.
type IsNullExpr struct {
	NodeInfo
	Expr Expr
	Not  bool
}

func (*IsNullExpr) exprNode() {}

// IsBoolExpr represents expr IS [NOT] TRUE/FALSE.
type IsBoolExpr struct {
	NodeInfo
	Expr  Expr
	Not   bool
	Value bool
}

func (*IsBoolExpr) exprNode() {}

// IsDistinctExpr represents left IS [NOT] DISTINCT FROM right.
type IsDistinctExpr struct {
	NodeInfo
	Left  Expr
	Not   bool
	Right Expr
}

func (*IsDistinctExpr) exprNode() {}

// ExistsExpr represents EXISTS (subquery).
type ExistsExpr struct {
	NodeInfo
	Query *SelectStmt
}

func (*ExistsExpr) exprNode() {}

// SubqueryExpr represents a scalar subquery.
type SubqueryExpr struct {
	NodeInfo
	Query *SelectStmt
}

func (*SubqueryExpr) exprNode() {}

// TupleExpr represents a parenthesized row of two or more expressions.
type TupleExpr struct {
	NodeInfo
	Exprs []Expr
}

func (*TupleExpr) exprNode() {}
