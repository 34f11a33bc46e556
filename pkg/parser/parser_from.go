package parser

import (
	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// FROM clause parsing: table references, derived tables, nested joins, JOINs.
//
// Grammar:
//
//	from_clause   → table_with_joins ("," table_with_joins)*
//	table_with_joins → table_factor (join)*
//	table_factor  → table_name [alias]
//	              | name "(" [expr_list] ")" [alias]
//	              | [LATERAL] "(" query ")" [alias]
//	              | "(" table_with_joins ")"
//	table_name    → [catalog "."] [schema "."] identifier
//	alias         → [AS] identifier ["(" ident_list ")"]
//	join          → [NATURAL] join_type JOIN table_factor [ON expr | USING "(" ident_list ")"]
//	join_type     → [INNER] | LEFT [OUTER] | RIGHT [OUTER] | FULL [OUTER] | CROSS

// parseFromClause parses the comma-separated FROM list.
func (p *Parser) parseFromClause() ([]*core.TableWithJoins, error) {
	var from []*core.TableWithJoins
	for {
		twj, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		from = append(from, twj)
		if !p.match(token.COMMA) {
			return from, nil
		}
	}
}

// parseTableWithJoins parses a table factor and its left-associative join chain.
func (p *Parser) parseTableWithJoins() (*core.TableWithJoins, error) {
	rel, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	twj := &core.TableWithJoins{Relation: rel}

	// Parse JOINs
	for {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		if join == nil {
			return twj, nil
		}
		twj.Joins = append(twj.Joins, join)
	}
}

// parseTableFactor parses a single table reference.
func (p *Parser) parseTableFactor() (core.TableRef, error) {
	start := p.token.Pos

	// LATERAL subquery
	lateral := p.match(token.LATERAL)

	if p.check(token.LPAREN) {
		return p.parseParenTableFactor(start, lateral)
	}
	if lateral {
		return nil, p.errorf(ErrUnexpectedToken, "subquery after LATERAL", p.token)
	}

	// FROM DUAL names the dummy table even where DUAL is reserved.
	if p.token.Kind() == token.KindIdent && p.checkWord("DUAL") {
		tbl := &core.TableName{Name: core.ObjectName{core.NewIdent(p.token.Literal)}}
		p.nextToken()
		p.finish(tbl, start)
		return tbl, nil
	}

	if !p.isIdentifier(p.token) {
		return nil, p.errorf(ErrUnexpectedToken, "table name", p.token)
	}
	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}

	// Table-valued function
	if p.match(token.LPAREN) {
		fn := &core.TableFunction{Name: name}
		if !p.check(token.RPAREN) {
			if fn.Args, err = p.parseExpressionList(); err != nil {
				return nil, err
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if fn.Alias, err = p.parseTableAlias(); err != nil {
			return nil, err
		}
		p.finish(fn, start)
		return fn, nil
	}

	table := &core.TableName{Name: name}
	if table.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	p.finish(table, start)
	return table, nil
}

// parseParenTableFactor parses a derived table or a nested join.
//
// "(" followed directly by a query keyword is a derived table. When more
// parentheses precede the query keyword the input is ambiguous,
// ((SELECT 1) UNION (SELECT 2)) vs ((SELECT 1) AS a JOIN b ON ...), so the
// derived table is tried first and the buffer rewound on failure.
func (p *Parser) parseParenTableFactor(start token.Position, lateral bool) (core.TableRef, error) {
	query, direct := p.parenQueryAhead()

	if query {
		m := p.mark()
		derived, err := p.parseDerivedTable(start, lateral)
		if err == nil || direct || lateral {
			return derived, err
		}
		p.reset(m)
	}
	if lateral {
		return nil, p.errorf(ErrUnexpectedToken, "subquery after LATERAL", p.token)
	}

	p.nextToken() // consume (
	twj, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	nested := &core.NestedJoin{Table: twj}
	p.finish(nested, start)
	return nested, nil
}

// parseDerivedTable parses "(" query ")" [alias].
func (p *Parser) parseDerivedTable(start token.Position, lateral bool) (core.TableRef, error) {
	p.nextToken() // consume (
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	derived := &core.DerivedTable{Lateral: lateral, Select: q}
	if derived.Alias, err = p.parseTableAlias(); err != nil {
		return nil, err
	}
	p.finish(derived, start)
	return derived, nil
}

// parseTableAlias parses [AS] name ["(" columns ")"].
func (p *Parser) parseTableAlias() (*core.TableAlias, error) {
	id, err := p.parseOptionalAlias()
	if err != nil || id == nil {
		return nil, err
	}
	alias := &core.TableAlias{Name: *id}
	if p.check(token.LPAREN) {
		if alias.Columns, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
	}
	return alias, nil
}

// parseJoin parses a JOIN clause. It returns nil when no join follows.
func (p *Parser) parseJoin() (*core.Join, error) {
	natural := p.match(token.NATURAL)

	var def core.JoinTypeDef
	switch {
	case p.match(token.JOIN):
		def = core.JoinTypeDef{Type: core.JoinInner, RequiresOn: true, AllowsUsing: true}
	case p.dialect.IsJoinTypeToken(p.token.Type):
		def, _ = p.dialect.JoinTypeDef(p.token.Type)
		p.nextToken()
		if def.OptionalToken != 0 {
			p.match(def.OptionalToken)
		}
		if err := p.expect(token.JOIN); err != nil {
			return nil, err
		}
	default:
		if natural {
			return nil, p.errorf(ErrUnexpectedToken, "JOIN after NATURAL", p.token)
		}
		return nil, nil
	}

	if natural && def.Type == core.JoinCross {
		return nil, p.errorf("NATURAL CROSS JOIN is not allowed")
	}

	right, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	join := &core.Join{Type: def.Type, Natural: natural, Right: right}

	// NATURAL and CROSS joins take no condition
	if natural || !def.RequiresOn {
		return join, nil
	}

	switch {
	case p.match(token.ON):
		if join.Condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
	case def.AllowsUsing && p.check(token.USING):
		p.nextToken()
		if join.Using, err = p.parseParenIdentList(); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf(ErrUnexpectedToken, "ON or USING", p.token)
	}
	return join, nil
}
