package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Schema definition parsing: CREATE, ALTER TABLE, DROP, TRUNCATE.
//
// Grammar:
//
//	create_table  → CREATE [OR REPLACE] [TEMPORARY|TEMP] [EXTERNAL] TABLE [IF NOT EXISTS] name
//	                ["(" table_element ("," table_element)* ")"]
//	                [STORED AS word] [LOCATION STRING] [AS query]
//	table_element → column_def | table_constraint
//	column_def    → identifier data_type column_option*
//	column_option → [CONSTRAINT identifier] (NOT NULL | NULL | DEFAULT expr | PRIMARY KEY
//	              | UNIQUE | REFERENCES name ["(" ident_list ")"] | CHECK "(" expr ")"
//	              | AUTO_INCREMENT | AUTOINCREMENT)
//	create_view   → CREATE [OR REPLACE] [MATERIALIZED] VIEW name ["(" ident_list ")"] AS query
//	create_index  → CREATE [UNIQUE] INDEX [IF NOT EXISTS] name ON name "(" order_list ")"
//	create_schema → CREATE SCHEMA [IF NOT EXISTS] name
//	alter_table   → ALTER TABLE name alter_op
//	drop          → DROP (TABLE|VIEW|INDEX|SCHEMA) [IF EXISTS] name ("," name)* [CASCADE|RESTRICT]
//	truncate      → TRUNCATE [TABLE] name

// parseCreate dispatches on the object kind following CREATE.
func (p *Parser) parseCreate() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume CREATE

	orReplace := false
	if p.match(token.OR) {
		if err := p.expect(token.REPLACE); err != nil {
			return nil, err
		}
		orReplace = true
	}

	temporary := p.match(token.TEMPORARY) || p.matchWord("TEMP")
	external := p.matchWord("EXTERNAL")

	switch {
	case p.check(token.TABLE):
		return p.parseCreateTable(start, orReplace, temporary, external)
	case temporary || external:
		return nil, p.errorf(ErrUnexpectedToken, "TABLE", p.token)
	case p.check(token.VIEW), p.check(token.MATERIALIZED):
		return p.parseCreateView(start, orReplace)
	case orReplace:
		return nil, p.errorf(ErrUnexpectedToken, "TABLE or VIEW", p.token)
	case p.check(token.UNIQUE), p.check(token.INDEX):
		return p.parseCreateIndex(start)
	case p.match(token.SCHEMA):
		stmt := &core.CreateSchemaStmt{}
		var err error
		if stmt.IfNotExists, err = p.parseIfNotExists(); err != nil {
			return nil, err
		}
		if stmt.Name, err = p.parseObjectName(); err != nil {
			return nil, err
		}
		p.finish(stmt, start)
		return stmt, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken, "TABLE, VIEW, INDEX or SCHEMA after CREATE", p.token)
	}
}

// parseIfNotExists parses an optional IF NOT EXISTS.
func (p *Parser) parseIfNotExists() (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	if err := p.expect(token.NOT); err != nil {
		return false, err
	}
	return true, p.expect(token.EXISTS)
}

// parseIfExists parses an optional IF EXISTS.
func (p *Parser) parseIfExists() (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	return true, p.expect(token.EXISTS)
}

func (p *Parser) parseCreateTable(start token.Position, orReplace, temporary, external bool) (core.Stmt, error) {
	p.nextToken() // consume TABLE
	stmt := &core.CreateTableStmt{OrReplace: orReplace, Temporary: temporary, External: external}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists(); err != nil {
		return nil, err
	}
	if stmt.Name, err = p.parseObjectName(); err != nil {
		return nil, err
	}

	if p.match(token.LPAREN) {
		if err := p.parseTableElements(stmt); err != nil {
			return nil, err
		}
	}

	if p.matchWord("STORED") {
		if err := p.expect(token.AS); err != nil {
			return nil, err
		}
		if !isWord(p.token) {
			return nil, p.errorf(ErrUnexpectedToken, "storage format", p.token)
		}
		stmt.StoredAs = strings.ToUpper(p.token.Literal)
		p.nextToken()
	}

	if p.matchWord("LOCATION") {
		if !p.check(token.STRING) {
			return nil, p.errorf(ErrUnexpectedToken, "location string", p.token)
		}
		loc := p.token.Literal
		stmt.Location = &loc
		p.nextToken()
	}

	if p.match(token.AS) {
		if stmt.As, err = p.parseQuery(); err != nil {
			return nil, err
		}
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseTableElements parses column definitions and constraints up to the
// closing parenthesis. The opening one has been consumed.
func (p *Parser) parseTableElements(stmt *core.CreateTableStmt) error {
	if p.match(token.RPAREN) {
		return nil
	}
	for {
		if p.startsTableConstraint() {
			c, err := p.parseTableConstraint()
			if err != nil {
				return err
			}
			stmt.Constraints = append(stmt.Constraints, c)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return err
			}
			stmt.Columns = append(stmt.Columns, col)
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return p.expect(token.RPAREN)
}

// startsTableConstraint reports whether the current token opens a
// table-level constraint rather than a column definition.
func (p *Parser) startsTableConstraint() bool {
	switch p.token.Type {
	case token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK:
		return true
	}
	return false
}

// parseColumnDef parses name type [options].
func (p *Parser) parseColumnDef() (*core.ColumnDef, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	col := &core.ColumnDef{Name: name}
	if col.Type, err = p.parseDataType(); err != nil {
		return nil, err
	}

	for {
		opt, ok, err := p.parseColumnOption()
		if err != nil {
			return nil, err
		}
		if !ok {
			return col, nil
		}
		col.Options = append(col.Options, opt)
	}
}

// parseColumnOption parses one column option. ok is false when none follows.
func (p *Parser) parseColumnOption() (opt core.ColumnOption, ok bool, err error) {
	if p.match(token.CONSTRAINT) {
		name, err := p.parseIdentifier()
		if err != nil {
			return opt, false, err
		}
		opt.Name = &name
	}

	switch {
	case p.match(token.NOT):
		if err := p.expect(token.NULL); err != nil {
			return opt, false, err
		}
		opt.Kind = core.ColumnNotNull
	case p.match(token.NULL):
		opt.Kind = core.ColumnNull
	case p.match(token.DEFAULT):
		opt.Kind = core.ColumnDefault
		if opt.Expr, err = p.parseExpression(); err != nil {
			return opt, false, err
		}
	case p.match(token.PRIMARY):
		if err := p.expect(token.KEY); err != nil {
			return opt, false, err
		}
		opt.Kind = core.ColumnPrimaryKey
	case p.match(token.UNIQUE):
		opt.Kind = core.ColumnUnique
	case p.match(token.REFERENCES):
		opt.Kind = core.ColumnReferences
		if opt.ForeignTable, opt.ReferredColumns, err = p.parseReferences(); err != nil {
			return opt, false, err
		}
	case p.match(token.CHECK):
		opt.Kind = core.ColumnCheck
		if opt.Expr, err = p.parseParenExprOnly(); err != nil {
			return opt, false, err
		}
	case p.matchWord("AUTO_INCREMENT"), p.matchWord("AUTOINCREMENT"):
		opt.Kind = core.ColumnAutoIncrement
	default:
		if opt.Name != nil {
			return opt, false, p.errorf(ErrUnexpectedToken, "constraint after CONSTRAINT name", p.token)
		}
		return opt, false, nil
	}
	return opt, true, nil
}

// parseReferences parses name ["(" ident_list ")"] after REFERENCES.
func (p *Parser) parseReferences() (core.ObjectName, []core.Ident, error) {
	table, err := p.parseObjectName()
	if err != nil {
		return nil, nil, err
	}
	if !p.check(token.LPAREN) {
		return table, nil, nil
	}
	cols, err := p.parseParenIdentList()
	return table, cols, err
}

// parseParenExprOnly parses "(" expr ")".
func (p *Parser) parseParenExprOnly() (core.Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return expr, p.expect(token.RPAREN)
}

// parseTableConstraint parses a table-level constraint.
func (p *Parser) parseTableConstraint() (*core.TableConstraint, error) {
	c := &core.TableConstraint{}
	var err error

	if p.match(token.CONSTRAINT) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		c.Name = &name
	}

	switch {
	case p.match(token.PRIMARY):
		if err := p.expect(token.KEY); err != nil {
			return nil, err
		}
		c.Kind = core.ConstraintPrimaryKey
		c.Columns, err = p.parseParenIdentList()
	case p.match(token.UNIQUE):
		c.Kind = core.ConstraintUnique
		c.Columns, err = p.parseParenIdentList()
	case p.match(token.FOREIGN):
		if err := p.expect(token.KEY); err != nil {
			return nil, err
		}
		c.Kind = core.ConstraintForeignKey
		if c.Columns, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
		if err := p.expect(token.REFERENCES); err != nil {
			return nil, err
		}
		c.ForeignTable, c.ReferredColumns, err = p.parseReferences()
	case p.match(token.CHECK):
		c.Kind = core.ConstraintCheck
		c.Check, err = p.parseParenExprOnly()
	default:
		return nil, p.errorf(ErrUnexpectedToken, "PRIMARY KEY, UNIQUE, FOREIGN KEY or CHECK", p.token)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseCreateView(start token.Position, orReplace bool) (core.Stmt, error) {
	stmt := &core.CreateViewStmt{OrReplace: orReplace, Materialized: p.match(token.MATERIALIZED)}
	if err := p.expect(token.VIEW); err != nil {
		return nil, err
	}

	var err error
	if stmt.Name, err = p.parseObjectName(); err != nil {
		return nil, err
	}
	if p.check(token.LPAREN) {
		if stmt.Columns, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if stmt.Query, err = p.parseQuery(); err != nil {
		return nil, err
	}
	p.finish(stmt, start)
	return stmt, nil
}

func (p *Parser) parseCreateIndex(start token.Position) (core.Stmt, error) {
	stmt := &core.CreateIndexStmt{Unique: p.match(token.UNIQUE)}
	if err := p.expect(token.INDEX); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists(); err != nil {
		return nil, err
	}
	if stmt.Name, err = p.parseObjectName(); err != nil {
		return nil, err
	}
	if err := p.expect(token.ON); err != nil {
		return nil, err
	}
	if stmt.Table, err = p.parseObjectName(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if stmt.Columns, err = p.parseOrderByList(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	p.finish(stmt, start)
	return stmt, nil
}

// parseAlterTable parses ALTER TABLE name operation.
func (p *Parser) parseAlterTable() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume ALTER
	if err := p.expect(token.TABLE); err != nil {
		return nil, err
	}

	stmt := &core.AlterTableStmt{}
	var err error
	if stmt.Name, err = p.parseObjectName(); err != nil {
		return nil, err
	}

	switch {
	case p.matchWord("ADD"):
		stmt.Operation, err = p.parseAlterAdd()
	case p.match(token.DROP):
		stmt.Operation, err = p.parseAlterDrop()
	case p.match(token.RENAME):
		stmt.Operation, err = p.parseAlterRename()
	case p.match(token.ALTER):
		stmt.Operation, err = p.parseAlterColumn()
	default:
		err = p.errorf(ErrUnexpectedToken, "ADD, DROP, RENAME or ALTER", p.token)
	}
	if err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

func (p *Parser) parseAlterAdd() (core.AlterTableOp, error) {
	if p.startsTableConstraint() {
		c, err := p.parseTableConstraint()
		if err != nil {
			return nil, err
		}
		return &core.AddConstraint{Constraint: c}, nil
	}
	p.match(token.COLUMN)
	col, err := p.parseColumnDef()
	if err != nil {
		return nil, err
	}
	return &core.AddColumn{Column: col}, nil
}

func (p *Parser) parseAlterDrop() (core.AlterTableOp, error) {
	if p.match(token.CONSTRAINT) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &core.DropConstraint{Name: name, Cascade: p.match(token.CASCADE)}, nil
	}

	p.match(token.COLUMN)
	ifExists, err := p.parseIfExists()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return &core.DropColumn{Name: name, IfExists: ifExists, Cascade: p.match(token.CASCADE)}, nil
}

func (p *Parser) parseAlterRename() (core.AlterTableOp, error) {
	if p.match(token.TO) {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		return &core.RenameTable{Name: name}, nil
	}

	p.match(token.COLUMN)
	old, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.TO); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	return &core.RenameColumn{Old: old, New: name}, nil
}

func (p *Parser) parseAlterColumn() (core.AlterTableOp, error) {
	p.match(token.COLUMN)
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	op := &core.AlterColumn{Name: name}

	switch {
	case p.match(token.SET):
		switch {
		case p.match(token.DEFAULT):
			op.Action = core.SetDefault
			if op.Default, err = p.parseExpression(); err != nil {
				return nil, err
			}
		case p.match(token.NOT):
			op.Action = core.SetNotNull
			err = p.expect(token.NULL)
		default:
			err = p.errorf(ErrUnexpectedToken, "DEFAULT or NOT NULL", p.token)
		}
	case p.match(token.DROP):
		switch {
		case p.match(token.DEFAULT):
			op.Action = core.DropDefault
		case p.match(token.NOT):
			op.Action = core.DropNotNull
			err = p.expect(token.NULL)
		default:
			err = p.errorf(ErrUnexpectedToken, "DEFAULT or NOT NULL", p.token)
		}
	default:
		err = p.errorf(ErrUnexpectedToken, "SET or DROP", p.token)
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// dropObjectTypes maps the keyword after DROP to the object type.
var dropObjectTypes = map[token.TokenType]core.ObjectType{
	token.TABLE:  core.ObjectTable,
	token.VIEW:   core.ObjectView,
	token.INDEX:  core.ObjectIndex,
	token.SCHEMA: core.ObjectSchema,
}

// parseDrop parses DROP object [IF EXISTS] names [CASCADE|RESTRICT].
func (p *Parser) parseDrop() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume DROP

	objType, ok := dropObjectTypes[p.token.Type]
	if !ok {
		return nil, p.errorf(ErrUnexpectedToken, "TABLE, VIEW, INDEX or SCHEMA after DROP", p.token)
	}
	p.nextToken()

	stmt := &core.DropStmt{ObjectType: objType}
	var err error
	if stmt.IfExists, err = p.parseIfExists(); err != nil {
		return nil, err
	}
	for {
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, name)
		if !p.match(token.COMMA) {
			break
		}
	}

	switch {
	case p.match(token.CASCADE):
		stmt.Cascade = true
	case p.match(token.RESTRICT):
		stmt.Restrict = true
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseTruncate parses TRUNCATE [TABLE] name.
func (p *Parser) parseTruncate() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume TRUNCATE
	p.match(token.TABLE)

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &core.TruncateStmt{Name: name}
	p.finish(stmt, start)
	return stmt, nil
}
