package parser

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Data modification parsing: INSERT, UPDATE, DELETE.
//
// Grammar:
//
//	insert        → INSERT [INTO] name ["(" ident_list ")"] query [returning]
//	update        → UPDATE name [alias] SET assignment ("," assignment)*
//	                [FROM from_clause] [WHERE expr] [returning]
//	assignment    → name "=" expr
//	delete        → DELETE FROM name [WHERE expr] [returning]
//	returning     → RETURNING select_list

// parseInsert parses an INSERT statement.
func (p *Parser) parseInsert() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume INSERT
	p.match(token.INTO)

	stmt := &core.InsertStmt{}
	var err error
	if stmt.Table, err = p.parseObjectName(); err != nil {
		return nil, err
	}

	// A column list is "(" followed by a name, never by a query.
	if p.check(token.LPAREN) && !startsQuery(p.peekAt(1).Type) && !p.checkPeek(token.LPAREN) {
		if stmt.Columns, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
	}

	if !startsQuery(p.token.Type) && !p.check(token.LPAREN) {
		return nil, p.errorf(ErrUnexpectedToken, "VALUES or query", p.token)
	}
	if stmt.Source, err = p.parseQuery(); err != nil {
		return nil, err
	}

	if stmt.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseUpdate parses an UPDATE statement.
func (p *Parser) parseUpdate() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume UPDATE

	tableStart := p.token.Pos
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	table := &core.TableName{Name: name}
	if !p.check(token.SET) {
		if table.Alias, err = p.parseTableAlias(); err != nil {
			return nil, err
		}
	}
	p.finish(table, tableStart)

	stmt := &core.UpdateStmt{Table: table}
	if err := p.expect(token.SET); err != nil {
		return nil, err
	}

	for {
		var a core.Assignment
		if a.Column, err = p.parseObjectName(); err != nil {
			return nil, err
		}
		if err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		if a.Value, err = p.parseExpression(); err != nil {
			return nil, err
		}
		stmt.Assignments = append(stmt.Assignments, a)
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.FROM) {
		if stmt.From, err = p.parseFromClause(); err != nil {
			return nil, err
		}
	}

	if p.match(token.WHERE) {
		if stmt.Where, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if stmt.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseDelete parses a DELETE statement.
func (p *Parser) parseDelete() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume DELETE
	if err := p.expect(token.FROM); err != nil {
		return nil, err
	}

	stmt := &core.DeleteStmt{}
	var err error
	if stmt.Table, err = p.parseObjectName(); err != nil {
		return nil, err
	}

	if p.match(token.WHERE) {
		if stmt.Where, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}

	if stmt.Returning, err = p.parseReturning(); err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseReturning parses an optional RETURNING list. Dialects without
// RETURNING reject it.
func (p *Parser) parseReturning() ([]core.SelectItem, error) {
	if !p.check(token.RETURNING) {
		return nil, nil
	}
	if !p.dialect.SupportsReturning() {
		return nil, p.errorf(ErrUnsupportedClause, "RETURNING", p.dialect.GetName())
	}
	p.nextToken()
	return p.parseSelectList()
}
