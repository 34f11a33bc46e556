package format

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

func (p *Printer) formatCreateTable(s *core.CreateTableStmt) {
	p.kw(token.CREATE)
	if s.OrReplace {
		p.write(" OR REPLACE")
	}
	if s.Temporary {
		p.write(" TEMPORARY")
	}
	if s.External {
		p.write(" EXTERNAL")
	}
	p.write(" TABLE ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)

	if len(s.Columns) > 0 || len(s.Constraints) > 0 {
		p.write(" (")
		p.formatList(len(s.Columns), func(i int) { p.formatColumnDef(s.Columns[i]) })
		for i, c := range s.Constraints {
			if i > 0 || len(s.Columns) > 0 {
				p.write(", ")
			}
			p.formatTableConstraint(c)
		}
		p.write(")")
	}

	if s.StoredAs != "" {
		p.write(" STORED AS ")
		p.write(s.StoredAs)
	}
	if s.Location != nil {
		p.write(" LOCATION ")
		p.stringLiteral(*s.Location)
	}
	if s.As != nil {
		p.write(" AS ")
		p.formatSelectStmt(s.As)
	}
}

func (p *Printer) formatColumnDef(col *core.ColumnDef) {
	p.ident(col.Name)
	p.space()
	p.formatDataType(col.Type)
	for _, opt := range col.Options {
		p.space()
		p.formatColumnOption(opt)
	}
}

func (p *Printer) formatColumnOption(opt core.ColumnOption) {
	if opt.Name != nil {
		p.write("CONSTRAINT ")
		p.ident(*opt.Name)
		p.space()
	}
	switch opt.Kind {
	case core.ColumnNotNull:
		p.write("NOT NULL")
	case core.ColumnNull:
		p.kw(token.NULL)
	case core.ColumnDefault:
		p.write("DEFAULT ")
		p.formatExpr(opt.Expr)
	case core.ColumnPrimaryKey:
		p.write("PRIMARY KEY")
	case core.ColumnUnique:
		p.kw(token.UNIQUE)
	case core.ColumnReferences:
		p.formatReferences(opt.ForeignTable, opt.ReferredColumns)
	case core.ColumnCheck:
		p.write("CHECK (")
		p.formatExpr(opt.Expr)
		p.write(")")
	case core.ColumnAutoIncrement:
		p.keyword("AUTO_INCREMENT")
	}
}

func (p *Printer) formatReferences(table core.ObjectName, cols []core.Ident) {
	p.write("REFERENCES ")
	p.objectName(table)
	if len(cols) > 0 {
		p.space()
		p.identList(cols)
	}
}

func (p *Printer) formatTableConstraint(c *core.TableConstraint) {
	if c.Name != nil {
		p.write("CONSTRAINT ")
		p.ident(*c.Name)
		p.space()
	}
	switch c.Kind {
	case core.ConstraintPrimaryKey:
		p.write("PRIMARY KEY ")
		p.identList(c.Columns)
	case core.ConstraintUnique:
		p.write("UNIQUE ")
		p.identList(c.Columns)
	case core.ConstraintForeignKey:
		p.write("FOREIGN KEY ")
		p.identList(c.Columns)
		p.space()
		p.formatReferences(c.ForeignTable, c.ReferredColumns)
	case core.ConstraintCheck:
		p.write("CHECK (")
		p.formatExpr(c.Check)
		p.write(")")
	}
}

func (p *Printer) formatCreateView(s *core.CreateViewStmt) {
	p.kw(token.CREATE)
	if s.OrReplace {
		p.write(" OR REPLACE")
	}
	if s.Materialized {
		p.write(" MATERIALIZED")
	}
	p.write(" VIEW ")
	p.objectName(s.Name)
	if len(s.Columns) > 0 {
		p.space()
		p.identList(s.Columns)
	}
	p.write(" AS ")
	p.formatSelectStmt(s.Query)
}

func (p *Printer) formatCreateIndex(s *core.CreateIndexStmt) {
	p.kw(token.CREATE)
	if s.Unique {
		p.write(" UNIQUE")
	}
	p.write(" INDEX ")
	if s.IfNotExists {
		p.write("IF NOT EXISTS ")
	}
	p.objectName(s.Name)
	p.write(" ON ")
	p.objectName(s.Table)
	p.write(" (")
	p.formatOrderBy(s.Columns)
	p.write(")")
}

func (p *Printer) formatAlterTable(s *core.AlterTableStmt) {
	p.write("ALTER TABLE ")
	p.objectName(s.Name)
	p.space()

	switch op := s.Operation.(type) {
	case *core.AddColumn:
		p.write("ADD COLUMN ")
		p.formatColumnDef(op.Column)
	case *core.AddConstraint:
		p.write("ADD ")
		p.formatTableConstraint(op.Constraint)
	case *core.DropColumn:
		p.write("DROP COLUMN ")
		if op.IfExists {
			p.write("IF EXISTS ")
		}
		p.ident(op.Name)
		if op.Cascade {
			p.write(" CASCADE")
		}
	case *core.DropConstraint:
		p.write("DROP CONSTRAINT ")
		p.ident(op.Name)
		if op.Cascade {
			p.write(" CASCADE")
		}
	case *core.RenameTable:
		p.write("RENAME TO ")
		p.objectName(op.Name)
	case *core.RenameColumn:
		p.write("RENAME COLUMN ")
		p.ident(op.Old)
		p.write(" TO ")
		p.ident(op.New)
	case *core.AlterColumn:
		p.write("ALTER COLUMN ")
		p.ident(op.Name)
		switch op.Action {
		case core.SetDefault:
			p.write(" SET DEFAULT ")
			p.formatExpr(op.Default)
		case core.DropDefault:
			p.write(" DROP DEFAULT")
		case core.SetNotNull:
			p.write(" SET NOT NULL")
		case core.DropNotNull:
			p.write(" DROP NOT NULL")
		}
	}
}

func (p *Printer) formatDrop(s *core.DropStmt) {
	p.kw(token.DROP)
	p.space()
	p.write(string(s.ObjectType))
	if s.IfExists {
		p.write(" IF EXISTS")
	}
	p.space()
	p.formatList(len(s.Names), func(i int) { p.objectName(s.Names[i]) })
	switch {
	case s.Cascade:
		p.write(" CASCADE")
	case s.Restrict:
		p.write(" RESTRICT")
	}
}
