package format

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Printer renders AST nodes as canonical single-line SQL.
type Printer struct {
	dialect *dialect.Dialect // nil renders with the standard tables
	output  strings.Builder
}

func newPrinter(d *dialect.Dialect) *Printer {
	return &Printer{dialect: d}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// kw prints keywords separated by single spaces.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// keyword prints a word the lexer does not know as a keyword.
func (p *Printer) keyword(s string) {
	p.write(strings.ToUpper(s))
}

func (p *Printer) ident(id core.Ident) {
	p.write(id.String())
}

func (p *Printer) objectName(name core.ObjectName) {
	p.write(name.String())
}

func (p *Printer) identList(ids []core.Ident) {
	p.write("(")
	p.formatList(len(ids), func(i int) { p.ident(ids[i]) })
	p.write(")")
}

// formatList prints count items separated by ", ".
func (p *Printer) formatList(count int, format func(i int)) {
	for i := 0; i < count; i++ {
		if i > 0 {
			p.write(", ")
		}
		format(i)
	}
}

// stringLiteral quotes s, doubling embedded quotes. Backslashes are
// doubled as well when the dialect reads them as escapes.
func (p *Printer) stringLiteral(s string) {
	p.write("'")
	for _, r := range s {
		switch {
		case r == '\'':
			p.write("''")
		case r == '\\' && p.dialect != nil && p.dialect.BackslashEscapes():
			p.write(`\\`)
		default:
			p.output.WriteRune(r)
		}
	}
	p.write("'")
}

// ---------- Precedence ----------

// standardPrecedence is used for operators the rendering dialect does not
// know, and for every operator when no dialect is given.
var standardPrecedence = func() map[token.TokenType]int {
	m := make(map[token.TokenType]int)
	for _, ops := range [][]core.OperatorDef{dialect.ANSIOperators, dialect.BitwiseOperators} {
		for _, op := range ops {
			m[op.Token] = op.Precedence
		}
	}
	m[dialect.TokenDiv] = core.PrecedenceMultiply
	return m
}()

func (p *Printer) precedence(op token.TokenType) int {
	if p.dialect != nil {
		if prec := p.dialect.Precedence(op); prec > core.PrecedenceNone {
			return prec
		}
	}
	if prec, ok := standardPrecedence[op]; ok {
		return prec
	}
	// Unknown operators parenthesize both operands.
	return core.PrecedenceMax - 1
}

func (p *Printer) isRightAssoc(op token.TokenType) bool {
	return p.dialect != nil && p.dialect.IsRightAssoc(op)
}

// exprPrecedence is the binding strength of the operator at the root of e.
// Operands weaker than their slot requires are parenthesized.
func (p *Printer) exprPrecedence(e core.Expr) int {
	switch e := e.(type) {
	case *core.BinaryExpr:
		return p.precedence(e.Op)
	case *core.UnaryExpr:
		if e.Op == token.NOT {
			return core.PrecedenceNot
		}
		return core.PrecedenceUnary
	case *core.InExpr, *core.BetweenExpr, *core.LikeExpr,
		*core.IsNullExpr, *core.IsBoolExpr, *core.IsDistinctExpr:
		return core.PrecedenceComparison
	default:
		return core.PrecedenceMax
	}
}
