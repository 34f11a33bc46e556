package core

// ---------- Schema Definition Statements ----------

// DataType is a column or cast target type. Name holds the canonical type
// name: unquoted words upper-cased and joined by a space (DOUBLE PRECISION),
// qualified parts joined by a dot.
type DataType struct {
	Name      string
	Args      []string // length, precision/scale, MAX or quoted enum values
	Suffix    string   // WITH TIME ZONE, WITHOUT TIME ZONE, UNSIGNED
	ArrayDims int      // number of [] suffixes
}

// ColumnOptionKind identifies a column constraint or option.
type ColumnOptionKind int

// ColumnOptionKind constants.
const (
	ColumnNotNull ColumnOptionKind = iota
	ColumnNull
	ColumnDefault
	ColumnPrimaryKey
	ColumnUnique
	ColumnReferences
	ColumnCheck
	ColumnAutoIncrement
)

// ColumnOption is a constraint or option attached to a column definition.
type ColumnOption struct {
	Name            *Ident // CONSTRAINT name
	Kind            ColumnOptionKind
	Expr            Expr // DEFAULT value or CHECK condition
	ForeignTable    ObjectName
	ReferredColumns []Ident
}

// ColumnDef is one column of CREATE TABLE or ALTER TABLE ADD COLUMN.
type ColumnDef struct {
	Name    Ident
	Type    *DataType
	Options []ColumnOption
}

// ConstraintKind identifies a table constraint.
type ConstraintKind int

// ConstraintKind constants.
const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
	ConstraintCheck
)

// TableConstraint is a table-level constraint.
type TableConstraint struct {
	Name            *Ident
	Kind            ConstraintKind
	Columns         []Ident
	ForeignTable    ObjectName
	ReferredColumns []Ident
	Check           Expr
}

// CreateTableStmt represents CREATE TABLE.
type CreateTableStmt struct {
	NodeInfo
	OrReplace   bool
	Temporary   bool
	External    bool
	IfNotExists bool
	Name        ObjectName
	Columns     []*ColumnDef
	Constraints []*TableConstraint
	StoredAs    string  // STORED AS <format> (Hive)
	Location    *string // LOCATION '<path>' (Hive)
	As          *SelectStmt
}

func (*CreateTableStmt) stmtNode() {}

// CreateViewStmt represents CREATE [OR REPLACE] [MATERIALIZED] VIEW.
type CreateViewStmt struct {
	NodeInfo
	OrReplace    bool
	Materialized bool
	Name         ObjectName
	Columns      []Ident
	Query        *SelectStmt
}

func (*CreateViewStmt) stmtNode() {}

// CreateIndexStmt represents CREATE [UNIQUE] INDEX name ON table (cols).
type CreateIndexStmt struct {
	NodeInfo
	Unique      bool
	IfNotExists bool
	Name        ObjectName
	Table       ObjectName
	Columns     []OrderByItem
}

func (*CreateIndexStmt) stmtNode() {}

// CreateSchemaStmt represents CREATE SCHEMA.
type CreateSchemaStmt struct {
	NodeInfo
	IfNotExists bool
	Name        ObjectName
}

func (*CreateSchemaStmt) stmtNode() {}

// AlterTableStmt represents ALTER TABLE name <operation>.
type AlterTableStmt struct {
	NodeInfo
	Name      ObjectName
	Operation AlterTableOp
}

func (*AlterTableStmt) stmtNode() {}

// AlterTableOp is one ALTER TABLE operation.
type AlterTableOp interface {
	alterTableOp()
}

// AddColumn is ADD [COLUMN] coldef.
type AddColumn struct {
	Column *ColumnDef
}

// AddConstraint is ADD <table constraint>.
type AddConstraint struct {
	Constraint *TableConstraint
}

// DropColumn is DROP COLUMN [IF EXISTS] name [CASCADE].
type DropColumn struct {
	Name     Ident
	IfExists bool
	Cascade  bool
}

// DropConstraint is DROP CONSTRAINT name [CASCADE].
type DropConstraint struct {
	Name    Ident
	Cascade bool
}

// RenameTable is RENAME TO name.
type RenameTable struct {
	Name ObjectName
}

// RenameColumn is RENAME [COLUMN] old TO new.
type RenameColumn struct {
	Old Ident
	New Ident
}

// AlterColumnAction identifies what ALTER COLUMN changes.
type AlterColumnAction int

// AlterColumnAction constants.
const (
	SetDefault AlterColumnAction = iota
	DropDefault
	SetNotNull
	DropNotNull
)

// AlterColumn is ALTER [COLUMN] name SET/DROP DEFAULT or SET/DROP NOT NULL.
type AlterColumn struct {
	Name    Ident
	Action  AlterColumnAction
	Default Expr
}

func (*AddColumn) alterTableOp()      {}
func (*AddConstraint) alterTableOp()  {}
func (*DropColumn) alterTableOp()     {}
func (*DropConstraint) alterTableOp() {}
func (*RenameTable) alterTableOp()    {}
func (*RenameColumn) alterTableOp()   {}
func (*AlterColumn) alterTableOp()    {}

// ObjectType is the kind of object a DROP statement removes.
type ObjectType string

// ObjectType constants.
const (
	ObjectTable  ObjectType = "TABLE"
	ObjectView   ObjectType = "VIEW"
	ObjectIndex  ObjectType = "INDEX"
	ObjectSchema ObjectType = "SCHEMA"
)

// DropStmt represents DROP {TABLE|VIEW|INDEX|SCHEMA} [IF EXISTS] names [CASCADE|RESTRICT].
type DropStmt struct {
	NodeInfo
	ObjectType ObjectType
	IfExists   bool
	Names      []ObjectName
	Cascade    bool
	Restrict   bool
}

func (*DropStmt) stmtNode() {}

// TruncateStmt represents TRUNCATE [TABLE] name.
type TruncateStmt struct {
	NodeInfo
	Name ObjectName
}

func (*TruncateStmt) stmtNode() {}
