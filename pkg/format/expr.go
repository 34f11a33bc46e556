package format

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/token"
)

func (p *Printer) formatExpr(e core.Expr) {
	p.formatOperand(e, core.PrecedenceNone)
}

// formatOperand renders e in a slot that binds at least minPrec tightly,
// adding parentheses only when e's own operator is weaker.
func (p *Printer) formatOperand(e core.Expr, minPrec int) {
	if e == nil {
		return
	}
	if p.exprPrecedence(e) < minPrec {
		p.write("(")
		defer p.write(")")
	}

	switch expr := e.(type) {
	case *core.Literal:
		p.formatLiteral(expr)
	case *core.TypedLiteral:
		p.write(expr.Type.Name)
		p.space()
		p.stringLiteral(expr.Value)
	case *core.IntervalExpr:
		p.formatIntervalExpr(expr)
	case *core.Placeholder:
		p.write(expr.Value)
	case *core.ColumnRef:
		p.objectName(expr.Parts)
	case *core.BinaryExpr:
		p.formatBinaryExpr(expr)
	case *core.UnaryExpr:
		p.formatUnaryExpr(expr)
	case *core.FuncCall:
		p.formatFuncCall(expr)
	case *core.CaseExpr:
		p.formatCaseExpr(expr)
	case *core.CastExpr:
		p.formatCastExpr(expr)
	case *core.ExtractExpr:
		p.kw(token.EXTRACT)
		p.write("(")
		p.write(expr.Field)
		p.space()
		p.kw(token.FROM)
		p.space()
		p.formatExpr(expr.Expr)
		p.write(")")
	case *core.InExpr:
		p.formatInExpr(expr)
	case *core.BetweenExpr:
		p.formatBetweenExpr(expr)
	case *core.LikeExpr:
		p.formatLikeExpr(expr)
	case *core.IsNullExpr:
		p.formatOperand(expr.Expr, core.PrecedenceComparison)
		p.write(" IS ")
		if expr.Not {
			p.write("NOT ")
		}
		p.kw(token.NULL)
	case *core.IsBoolExpr:
		p.formatOperand(expr.Expr, core.PrecedenceComparison)
		p.write(" IS ")
		if expr.Not {
			p.write("NOT ")
		}
		if expr.Value {
			p.kw(token.TRUE)
		} else {
			p.kw(token.FALSE)
		}
	case *core.IsDistinctExpr:
		p.formatOperand(expr.Left, core.PrecedenceComparison)
		p.write(" IS ")
		if expr.Not {
			p.write("NOT ")
		}
		p.write("DISTINCT FROM ")
		p.formatOperand(expr.Right, core.PrecedenceComparison+1)
	case *core.ExistsExpr:
		p.kw(token.EXISTS)
		p.write(" (")
		p.formatSelectStmt(expr.Query)
		p.write(")")
	case *core.SubqueryExpr:
		p.write("(")
		p.formatSelectStmt(expr.Query)
		p.write(")")
	case *core.TupleExpr:
		p.write("(")
		p.formatList(len(expr.Exprs), func(i int) { p.formatExpr(expr.Exprs[i]) })
		p.write(")")
	}
}

func (p *Printer) formatLiteral(lit *core.Literal) {
	switch lit.Type {
	case core.LiteralString:
		p.stringLiteral(lit.Value)
	case core.LiteralNationalString:
		p.write("N")
		p.stringLiteral(lit.Value)
	case core.LiteralHexString:
		p.write("X'")
		p.write(lit.Value)
		p.write("'")
	case core.LiteralBool:
		if strings.EqualFold(lit.Value, "TRUE") {
			p.kw(token.TRUE)
		} else {
			p.kw(token.FALSE)
		}
	case core.LiteralNull:
		p.kw(token.NULL)
	default:
		p.write(lit.Value)
	}
}

func (p *Printer) formatIntervalExpr(iv *core.IntervalExpr) {
	p.kw(token.INTERVAL)
	p.space()
	p.formatOperand(iv.Value, core.PrecedenceUnary)
	if iv.Unit != "" {
		p.space()
		p.write(iv.Unit)
	}
}

func (p *Printer) formatBinaryExpr(expr *core.BinaryExpr) {
	prec := p.precedence(expr.Op)
	leftMin, rightMin := prec, prec+1
	if p.isRightAssoc(expr.Op) {
		leftMin, rightMin = prec+1, prec
	}

	p.formatOperand(expr.Left, leftMin)
	p.space()
	p.kw(expr.Op)
	p.space()
	p.formatOperand(expr.Right, rightMin)
}

func (p *Printer) formatUnaryExpr(expr *core.UnaryExpr) {
	p.kw(expr.Op)
	if expr.Op == token.NOT {
		p.space()
		p.formatOperand(expr.Expr, core.PrecedenceNot)
		return
	}
	// Two adjacent signs would read as a comment.
	if startsWithSign(expr.Expr) {
		p.space()
	}
	p.formatOperand(expr.Expr, core.PrecedenceUnary)
}

func startsWithSign(e core.Expr) bool {
	switch e := e.(type) {
	case *core.UnaryExpr:
		return e.Op == token.MINUS || e.Op == token.PLUS
	case *core.Literal:
		return strings.HasPrefix(e.Value, "-") || strings.HasPrefix(e.Value, "+")
	}
	return false
}

func (p *Printer) formatFuncCall(fn *core.FuncCall) {
	p.objectName(fn.Name)
	p.write("(")

	if fn.Distinct {
		p.kw(token.DISTINCT)
		p.space()
	}

	if fn.Star {
		p.write("*")
	} else {
		p.formatList(len(fn.Args), func(i int) { p.formatExpr(fn.Args[i]) })
	}

	if len(fn.OrderBy) > 0 {
		p.write(" ORDER BY ")
		p.formatOrderBy(fn.OrderBy)
	}
	p.write(")")

	if fn.Filter != nil {
		p.write(" FILTER (WHERE ")
		p.formatExpr(fn.Filter)
		p.write(")")
	}

	if fn.Over != nil {
		p.write(" ")
		p.formatWindowSpec(fn.Over)
	}
}

func (p *Printer) formatWindowSpec(w *core.WindowSpec) {
	p.kw(token.OVER)
	p.space()
	if w.Name != nil {
		p.ident(*w.Name)
		return
	}

	p.write("(")
	var parts []func()
	if len(w.PartitionBy) > 0 {
		parts = append(parts, func() {
			p.write("PARTITION BY ")
			p.formatList(len(w.PartitionBy), func(i int) { p.formatExpr(w.PartitionBy[i]) })
		})
	}
	if len(w.OrderBy) > 0 {
		parts = append(parts, func() {
			p.write("ORDER BY ")
			p.formatOrderBy(w.OrderBy)
		})
	}
	if w.Frame != nil {
		parts = append(parts, func() { p.formatFrameSpec(w.Frame) })
	}
	for i, part := range parts {
		if i > 0 {
			p.space()
		}
		part()
	}
	p.write(")")
}

func (p *Printer) formatFrameSpec(f *core.FrameSpec) {
	p.write(string(f.Type))
	p.space()
	if f.End == nil {
		p.formatFrameBound(f.Start)
		return
	}
	p.kw(token.BETWEEN)
	p.space()
	p.formatFrameBound(f.Start)
	p.space()
	p.kw(token.AND)
	p.space()
	p.formatFrameBound(f.End)
}

func (p *Printer) formatFrameBound(b *core.FrameBound) {
	if b == nil {
		return
	}
	switch b.Type {
	case core.FramePreceding, core.FrameFollowing:
		p.formatOperand(b.Offset, core.PrecedenceComparison+1)
		p.space()
	}
	p.write(string(b.Type))
}

func (p *Printer) formatCaseExpr(c *core.CaseExpr) {
	p.kw(token.CASE)

	if c.Operand != nil {
		p.space()
		p.formatExpr(c.Operand)
	}

	for _, w := range c.Whens {
		p.write(" WHEN ")
		p.formatExpr(w.Condition)
		p.write(" THEN ")
		p.formatExpr(w.Result)
	}

	if c.Else != nil {
		p.write(" ELSE ")
		p.formatExpr(c.Else)
	}

	p.write(" END")
}

func (p *Printer) formatCastExpr(c *core.CastExpr) {
	if c.Try {
		p.kw(token.TRY_CAST)
	} else {
		p.kw(token.CAST)
	}
	p.write("(")
	p.formatExpr(c.Expr)
	p.write(" AS ")
	p.formatDataType(c.Type)
	p.write(")")
}

func (p *Printer) formatDataType(dt *core.DataType) {
	if dt == nil {
		return
	}
	p.write(dt.Name)
	if len(dt.Args) > 0 {
		p.write("(")
		p.write(strings.Join(dt.Args, ", "))
		p.write(")")
	}
	if dt.Suffix != "" {
		p.space()
		p.write(dt.Suffix)
	}
	for i := 0; i < dt.ArrayDims; i++ {
		p.write("[]")
	}
}

func (p *Printer) formatInExpr(in *core.InExpr) {
	p.formatOperand(in.Expr, core.PrecedenceComparison)
	if in.Not {
		p.write(" NOT")
	}
	p.write(" IN (")
	if in.Query != nil {
		p.formatSelectStmt(in.Query)
	} else {
		p.formatList(len(in.Values), func(i int) { p.formatExpr(in.Values[i]) })
	}
	p.write(")")
}

func (p *Printer) formatBetweenExpr(b *core.BetweenExpr) {
	p.formatOperand(b.Expr, core.PrecedenceComparison)
	if b.Not {
		p.write(" NOT")
	}
	p.write(" BETWEEN ")
	p.formatOperand(b.Low, core.PrecedenceComparison+1)
	p.write(" AND ")
	p.formatOperand(b.High, core.PrecedenceComparison+1)
}

func (p *Printer) formatLikeExpr(like *core.LikeExpr) {
	p.formatOperand(like.Expr, core.PrecedenceComparison)
	if like.Not {
		p.write(" NOT")
	}
	p.space()
	p.kw(like.Op)
	p.space()
	p.formatOperand(like.Pattern, core.PrecedenceComparison+1)
	if like.Escape != nil {
		p.write(" ESCAPE ")
		p.formatOperand(like.Escape, core.PrecedenceComparison+1)
	}
}
