package parser

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Statement parsing: dispatch, WITH clause, CTEs, query bodies, SELECT
// list, ORDER BY and the query modifiers.
//
// Grammar:
//
//	query         → [WITH [RECURSIVE] cte_list] set_expr
//	                [ORDER BY order_list] [LIMIT expr [, expr]]
//	                [OFFSET expr [ROW|ROWS]]
//	                [FETCH (FIRST|NEXT) [expr] (ROW|ROWS) (ONLY|WITH TIES)]
//	cte_list      → cte ("," cte)*
//	cte           → identifier ["(" ident_list ")"] AS "(" query ")"
//	set_expr      → set_operand ((UNION|EXCEPT|INTERSECT) [ALL|DISTINCT] set_operand)*
//	set_operand   → select_core | VALUES row ("," row)* | "(" query ")"
//	select_core   → SELECT [DISTINCT|ALL] [TOP n] select_list
//	                [FROM from_clause]
//	                [clauses based on dialect sequence]
//	select_list   → select_item ("," select_item)*
//	select_item   → "*" | name "." "*" | expr [[AS] identifier]
//	order_list    → order_item ("," order_item)*
//	order_item    → expr [ASC|DESC] [NULLS FIRST|LAST]
//
// The parser uses dialect.ClauseSequence() and dialect.ClauseHandler() to
// parse clauses in the correct order for the current dialect.

// parseStatement dispatches on the first keyword of a statement.
func (p *Parser) parseStatement() (core.Stmt, error) {
	switch p.token.Type {
	case token.SELECT, token.WITH, token.VALUES, token.LPAREN:
		return p.parseQuery()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlterTable()
	case token.DROP:
		return p.parseDrop()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.START, token.BEGIN:
		return p.parseStartTransaction()
	case token.COMMIT:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SET:
		return p.parseSet()
	case token.SHOW:
		return p.parseShow()
	case token.USE:
		return p.parseUse()
	case token.EXPLAIN:
		return p.parseExplain()
	default:
		return nil, p.errorf(ErrExpectedStatement, p.token)
	}
}

// parseQuery parses a complete query with its modifiers.
func (p *Parser) parseQuery() (*core.SelectStmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start := p.token.Pos
	stmt := &core.SelectStmt{}

	// Optional WITH clause
	if p.check(token.WITH) {
		with, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		stmt.With = with
	}

	// Required body
	body, err := p.parseSetExpr(1)
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	if err := p.parseQueryModifiers(stmt); err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseQueryModifiers parses ORDER BY, LIMIT, OFFSET and FETCH.
func (p *Parser) parseQueryModifiers(stmt *core.SelectStmt) error {
	var err error

	if p.match(token.ORDER) {
		if err = p.expect(token.BY); err != nil {
			return err
		}
		if stmt.OrderBy, err = p.parseOrderByList(); err != nil {
			return err
		}
	}

	if p.match(token.LIMIT) {
		if stmt.Limit, err = p.parseExpression(); err != nil {
			return err
		}
		// LIMIT offset, count
		if p.match(token.COMMA) {
			stmt.Offset = stmt.Limit
			if stmt.Limit, err = p.parseExpression(); err != nil {
				return err
			}
		}
	}

	if p.match(token.OFFSET) {
		if stmt.Offset != nil {
			return p.errorf("OFFSET specified twice")
		}
		if stmt.Offset, err = p.parseExpression(); err != nil {
			return err
		}
		if !p.match(token.ROWS) {
			p.match(token.ROW)
		}
	}

	if p.match(token.FETCH) {
		if stmt.Fetch, err = p.parseFetch(); err != nil {
			return err
		}
	}
	return nil
}

// parseFetch parses the remainder of FETCH {FIRST|NEXT} [n] {ROW|ROWS} {ONLY|WITH TIES}.
func (p *Parser) parseFetch() (*core.FetchClause, error) {
	if !p.match(token.FIRST) && !p.match(token.NEXT) {
		return nil, p.errorf(ErrUnexpectedToken, "FIRST or NEXT", p.token)
	}
	fetch := &core.FetchClause{}
	if !p.check(token.ROW) && !p.check(token.ROWS) {
		count, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		fetch.Count = count
	}
	if !p.match(token.ROWS) && !p.match(token.ROW) {
		return nil, p.errorf(ErrUnexpectedToken, "ROW or ROWS", p.token)
	}
	switch {
	case p.match(token.ONLY):
	case p.match(token.WITH):
		if err := p.expectWord("TIES"); err != nil {
			return nil, err
		}
		fetch.WithTies = true
	default:
		return nil, p.errorf(ErrUnexpectedToken, "ONLY or WITH TIES", p.token)
	}
	return fetch, nil
}

// parseWithClause parses a WITH clause with CTEs.
func (p *Parser) parseWithClause() (*core.WithClause, error) {
	if err := p.expect(token.WITH); err != nil {
		return nil, err
	}
	with := &core.WithClause{}

	// Optional RECURSIVE
	if p.match(token.RECURSIVE) {
		with.Recursive = true
	}

	// Parse CTE list
	for {
		cte, err := p.parseCTE()
		if err != nil {
			return nil, err
		}
		with.CTEs = append(with.CTEs, cte)

		if !p.match(token.COMMA) {
			break
		}
	}

	return with, nil
}

// parseCTE parses a single CTE.
func (p *Parser) parseCTE() (*core.CTE, error) {
	cte := &core.CTE{}

	// CTE name
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	cte.Name = name

	// Optional column list
	if p.check(token.LPAREN) {
		if cte.Columns, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
	}

	// AS ( query )
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if cte.Select, err = p.parseQuery(); err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	return cte, nil
}

// setOpPrecedence returns the binding power of a set operator, or 0.
// INTERSECT binds tighter than UNION and EXCEPT.
func setOpPrecedence(t token.TokenType) (core.SetOpType, int) {
	switch t {
	case token.UNION:
		return core.SetOpUnion, 1
	case token.EXCEPT:
		return core.SetOpExcept, 1
	case token.INTERSECT:
		return core.SetOpIntersect, 2
	}
	return "", 0
}

// parseSetExpr parses a query body with set operations by precedence
// climbing; chains are left-associative.
func (p *Parser) parseSetExpr(minPrec int) (core.SetExpr, error) {
	start := p.token.Pos
	left, err := p.parseSetOperand()
	if err != nil {
		return nil, err
	}

	for {
		op, prec := setOpPrecedence(p.token.Type)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		p.nextToken()

		setOp := &core.SetOperation{Left: left, Op: op}
		if !p.match(token.DISTINCT) {
			setOp.All = p.match(token.ALL)
		}

		if setOp.Right, err = p.parseSetExpr(prec + 1); err != nil {
			return nil, err
		}
		p.finish(setOp, start)
		left = setOp
	}
}

// parseSetOperand parses one operand of a set operation.
func (p *Parser) parseSetOperand() (core.SetExpr, error) {
	switch p.token.Type {
	case token.SELECT:
		return p.parseSelectCore()
	case token.VALUES:
		return p.parseValues()
	case token.LPAREN:
		start := p.token.Pos
		p.nextToken()
		q, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		paren := &core.ParenSelect{Select: q}
		p.finish(paren, start)
		return paren, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken, "SELECT, VALUES or '('", p.token)
	}
}

// parseValues parses VALUES (row), (row), ...
func (p *Parser) parseValues() (*core.ValuesExpr, error) {
	start := p.token.Pos
	if err := p.expect(token.VALUES); err != nil {
		return nil, err
	}
	values := &core.ValuesExpr{}
	for {
		if err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := p.parseExpressionList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		values.Rows = append(values.Rows, row)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.finish(values, start)
	return values, nil
}

// parseSelectCore parses a single SELECT block.
func (p *Parser) parseSelectCore() (*core.SelectCore, error) {
	start := p.token.Pos
	if err := p.expect(token.SELECT); err != nil {
		return nil, err
	}
	sel := &core.SelectCore{}

	// DISTINCT / ALL
	if p.match(token.DISTINCT) {
		sel.Distinct = true
	} else {
		p.match(token.ALL) // optional, consume if present
	}

	// TOP n / TOP (expr)
	if p.check(token.TOP) && p.dialect.SupportsTop() {
		top, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		sel.Top = top
	}

	// SELECT list
	columns, err := p.parseSelectList()
	if err != nil {
		return nil, err
	}
	sel.Columns = columns

	// FROM clause
	if p.match(token.FROM) {
		if sel.From, err = p.parseFromClause(); err != nil {
			return nil, err
		}
	}

	// Parse optional clauses using dialect-driven approach
	if err := p.parseClauses(sel); err != nil {
		return nil, err
	}

	p.finish(sel, start)
	return sel, nil
}

// parseTop parses TOP n or TOP (expr).
func (p *Parser) parseTop() (core.Expr, error) {
	p.nextToken() // consume TOP
	if p.match(token.LPAREN) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return expr, p.expect(token.RPAREN)
	}
	if !p.check(token.NUMBER) && !p.check(token.PLACEHOLDER) {
		return nil, p.errorf(ErrUnexpectedToken, "row count after TOP", p.token)
	}
	return p.parsePrimary()
}

// parseClauses parses clauses using dialect.ClauseDef() for both parsing
// logic and slot-based assignment. Clauses must appear in sequence order;
// one out of order is left unconsumed and fails the statement.
func (p *Parser) parseClauses(sel *core.SelectCore) error {
	for _, clauseType := range p.dialect.ClauseSequence() {
		if !p.check(clauseType) {
			continue
		}
		def, _ := p.dialect.ClauseDef(clauseType)
		handler := p.dialect.ClauseHandler(clauseType)
		if handler == nil {
			return p.errorf(ErrNoClauseHandler, clauseType)
		}

		p.nextToken() // consume clause keyword

		result, err := handler(p)
		if err != nil {
			return err
		}
		if err := p.assignToSlot(sel, def.Slot, result); err != nil {
			return err
		}
	}
	return nil
}

// assignToSlot stores the parsed clause result in the appropriate SelectCore field.
// This uses the declarative ClauseSlot enum to determine where to store data.
func (p *Parser) assignToSlot(sel *core.SelectCore, slot core.ClauseSlot, result any) error {
	var ok bool
	switch slot {
	case core.SlotWhere:
		sel.Where, ok = result.(core.Expr)
	case core.SlotGroupBy:
		sel.GroupBy, ok = result.([]core.Expr)
	case core.SlotHaving:
		sel.Having, ok = result.(core.Expr)
	case core.SlotQualify:
		sel.Qualify, ok = result.(core.Expr)
	}
	if !ok {
		return p.errorf("%s clause handler returned %T", slot, result)
	}
	return nil
}

// parseSelectList parses the list of SELECT items.
func (p *Parser) parseSelectList() ([]core.SelectItem, error) {
	var items []core.SelectItem

	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.match(token.COMMA) {
			break
		}
	}

	return items, nil
}

// qualifiedStarAhead returns the number of name parts when the tokens
// ahead spell name.name.* (no rollback needed).
func (p *Parser) qualifiedStarAhead() int {
	if !p.isIdentifier(p.peekAt(0)) {
		return 0
	}
	i := 0
	for {
		if !p.isNamePart(p.peekAt(i)) || p.peekAt(i+1).Type != token.DOT {
			return 0
		}
		if p.peekAt(i+2).Type == token.STAR {
			return i/2 + 1
		}
		i += 2
	}
}

// parseSelectItem parses a single SELECT item.
func (p *Parser) parseSelectItem() (core.SelectItem, error) {
	item := core.SelectItem{}

	// Check for *
	if p.match(token.STAR) {
		item.Star = true
		return item, nil
	}

	// Check for table.* pattern
	if n := p.qualifiedStarAhead(); n > 0 {
		// qualifiedStarAhead has already checked every part.
		for i := 0; i < n; i++ {
			item.TableStar = append(item.TableStar, core.Ident{Value: p.token.Literal, Quote: p.token.Quote})
			p.nextToken()
			p.nextToken() // consume DOT
		}
		p.nextToken() // consume STAR
		return item, nil
	}

	// Regular expression
	expr, err := p.parseExpression()
	if err != nil {
		return item, err
	}
	item.Expr = expr

	// Optional alias
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return item, err
	}
	item.Alias = alias

	return item, nil
}

// parseOptionalAlias parses [AS] identifier.
func (p *Parser) parseOptionalAlias() (*core.Ident, error) {
	if p.match(token.AS) {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	if p.isImplicitAlias(p.token) {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &id, nil
	}
	return nil, nil
}

// parseOrderByList parses a list of ORDER BY items.
func (p *Parser) parseOrderByList() ([]core.OrderByItem, error) {
	var items []core.OrderByItem

	for {
		item, err := p.parseOrderByItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.match(token.COMMA) {
			break
		}
	}

	return items, nil
}

// parseOrderByItem parses a single ORDER BY item.
func (p *Parser) parseOrderByItem() (core.OrderByItem, error) {
	item := core.OrderByItem{}
	expr, err := p.parseExpression()
	if err != nil {
		return item, err
	}
	item.Expr = expr

	// ASC / DESC
	if !p.match(token.ASC) && p.match(token.DESC) {
		item.Desc = true
	}

	// NULLS FIRST / LAST
	if p.match(token.NULLS) {
		switch {
		case p.match(token.FIRST):
			b := true
			item.NullsFirst = &b
		case p.match(token.LAST):
			b := false
			item.NullsFirst = &b
		default:
			return item, p.errorf(ErrUnexpectedToken, "FIRST or LAST", p.token)
		}
	}

	return item, nil
}

// parseExpressionList parses a comma-separated list of expressions.
func (p *Parser) parseExpressionList() ([]core.Expr, error) {
	var exprs []core.Expr

	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		if !p.match(token.COMMA) {
			break
		}
	}

	return exprs, nil
}

// parseIdentifier parses a single identifier.
func (p *Parser) parseIdentifier() (core.Ident, error) {
	if !p.isIdentifier(p.token) {
		return core.Ident{}, p.errorf(ErrExpectedIdentifier, p.token)
	}
	id := core.Ident{Value: p.token.Literal, Quote: p.token.Quote}
	p.nextToken()
	return id, nil
}

// parseObjectName parses a dotted name: a.b.c.
func (p *Parser) parseObjectName() (core.ObjectName, error) {
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	name := core.ObjectName{id}
	for p.check(token.DOT) && p.isNamePart(p.peekAt(1)) {
		p.nextToken() // consume DOT
		name = append(name, core.Ident{Value: p.token.Literal, Quote: p.token.Quote})
		p.nextToken()
	}
	return name, nil
}

// parseParenIdentList parses "(" ident ("," ident)* ")".
func (p *Parser) parseParenIdentList() ([]core.Ident, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var ids []core.Ident
	for {
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.match(token.COMMA) {
			break
		}
	}
	return ids, p.expect(token.RPAREN)
}
