package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Session, transaction and utility statements.
//
// Grammar:
//
//	start_txn     → START TRANSACTION [txn_modes] | BEGIN [TRANSACTION | WORK] [txn_modes]
//	txn_modes     → txn_mode ("," txn_mode)*
//	txn_mode      → ISOLATION LEVEL level | READ ONLY | READ WRITE
//	level         → READ UNCOMMITTED | READ COMMITTED | REPEATABLE READ | SERIALIZABLE
//	commit        → COMMIT [WORK | TRANSACTION]
//	rollback      → ROLLBACK [WORK | TRANSACTION]
//	set           → SET [SESSION | LOCAL] name ("=" | TO) expr_list
//	show          → SHOW COLUMNS (FROM | IN) name | SHOW name
//	use           → USE name
//	explain       → EXPLAIN [ANALYZE] [VERBOSE] statement

// parseStartTransaction parses START TRANSACTION or BEGIN.
func (p *Parser) parseStartTransaction() (core.Stmt, error) {
	start := p.token.Pos

	if p.match(token.START) {
		if err := p.expect(token.TRANSACTION); err != nil {
			return nil, err
		}
	} else {
		p.nextToken() // consume BEGIN
		if !p.match(token.TRANSACTION) {
			p.matchWord("WORK")
		}
	}

	stmt := &core.StartTransactionStmt{}
	for p.checkWord("ISOLATION") || p.check(token.READ) {
		mode, err := p.parseTransactionMode()
		if err != nil {
			return nil, err
		}
		stmt.Modes = append(stmt.Modes, mode)
		if !p.match(token.COMMA) {
			break
		}
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseTransactionMode parses one isolation level or access mode.
func (p *Parser) parseTransactionMode() (core.TransactionMode, error) {
	if p.matchWord("ISOLATION") {
		if err := p.expectWord("LEVEL"); err != nil {
			return core.TransactionMode{}, err
		}
		level, err := p.parseIsolationLevel()
		return core.TransactionMode{Kind: core.IsolationLevel, Value: level}, err
	}

	p.nextToken() // consume READ
	switch {
	case p.match(token.ONLY):
		return core.TransactionMode{Kind: core.AccessMode, Value: "READ ONLY"}, nil
	case p.matchWord("WRITE"):
		return core.TransactionMode{Kind: core.AccessMode, Value: "READ WRITE"}, nil
	}
	return core.TransactionMode{}, p.errorf(ErrUnexpectedToken, "ONLY or WRITE", p.token)
}

func (p *Parser) parseIsolationLevel() (string, error) {
	switch {
	case p.match(token.READ):
		switch {
		case p.matchWord("UNCOMMITTED"):
			return "READ UNCOMMITTED", nil
		case p.matchWord("COMMITTED"):
			return "READ COMMITTED", nil
		}
		return "", p.errorf(ErrUnexpectedToken, "COMMITTED or UNCOMMITTED", p.token)
	case p.matchWord("REPEATABLE"):
		if err := p.expect(token.READ); err != nil {
			return "", err
		}
		return "REPEATABLE READ", nil
	case p.matchWord("SERIALIZABLE"):
		return "SERIALIZABLE", nil
	}
	return "", p.errorf(ErrUnexpectedToken, "isolation level", p.token)
}

// parseCommit parses COMMIT [WORK | TRANSACTION].
func (p *Parser) parseCommit() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume COMMIT
	if !p.match(token.TRANSACTION) {
		p.matchWord("WORK")
	}
	stmt := &core.CommitStmt{}
	p.finish(stmt, start)
	return stmt, nil
}

// parseRollback parses ROLLBACK [WORK | TRANSACTION].
func (p *Parser) parseRollback() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume ROLLBACK
	if !p.match(token.TRANSACTION) {
		p.matchWord("WORK")
	}
	stmt := &core.RollbackStmt{}
	p.finish(stmt, start)
	return stmt, nil
}

// parseSet parses SET [SESSION | LOCAL] name = value.
func (p *Parser) parseSet() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume SET

	stmt := &core.SetStmt{}
	// SESSION and LOCAL are scopes only when a name follows them.
	if (p.checkWord("SESSION") || p.checkWord("LOCAL")) && p.isIdentifier(p.peekAt(1)) {
		stmt.Scope = strings.ToUpper(p.token.Literal)
		p.nextToken()
	}

	var err error
	if stmt.Name, err = p.parseObjectName(); err != nil {
		return nil, err
	}
	if !p.match(token.EQ) && !p.match(token.TO) {
		return nil, p.errorf(ErrUnexpectedToken, "'=' or TO", p.token)
	}
	if stmt.Values, err = p.parseExpressionList(); err != nil {
		return nil, err
	}

	p.finish(stmt, start)
	return stmt, nil
}

// parseShow parses SHOW COLUMNS FROM table or SHOW name.
func (p *Parser) parseShow() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume SHOW

	if p.checkWord("COLUMNS") && (p.checkPeek(token.FROM) || p.checkPeek(token.IN)) {
		p.nextToken() // consume COLUMNS
		p.nextToken() // consume FROM/IN
		table, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		stmt := &core.ShowColumnsStmt{Table: table}
		p.finish(stmt, start)
		return stmt, nil
	}

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &core.ShowStmt{Name: name}
	p.finish(stmt, start)
	return stmt, nil
}

// parseUse parses USE name.
func (p *Parser) parseUse() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume USE

	name, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &core.UseStmt{Name: name}
	p.finish(stmt, start)
	return stmt, nil
}

// parseExplain parses EXPLAIN [ANALYZE] [VERBOSE] statement.
func (p *Parser) parseExplain() (core.Stmt, error) {
	start := p.token.Pos
	p.nextToken() // consume EXPLAIN

	stmt := &core.ExplainStmt{}
	stmt.Analyze = p.matchWord("ANALYZE")
	stmt.Verbose = p.matchWord("VERBOSE")

	if p.check(token.EXPLAIN) {
		return nil, p.errorf(ErrExpectedStatement, p.token)
	}
	var err error
	if stmt.Stmt, err = p.parseStatement(); err != nil {
		return nil, err
	}
	p.finish(stmt, start)
	return stmt, nil
}
