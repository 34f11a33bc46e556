package core

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() token.Position
	// End returns the position of the character immediately after the node.
	End() token.Position
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TableRef is a marker interface for table factors in a FROM clause.
type TableRef interface {
	Node
	tableRefNode()
}

// SetExpr is a marker interface for query bodies: a SELECT core, a VALUES
// list, a parenthesized query or a set operation combining two of them.
type SetExpr interface {
	Node
	setExprNode()
}

// NodeInfo records the source span of a parsed node. Nodes built by hand
// carry a zero span; structural equality ignores it.
type NodeInfo struct {
	Span token.Span
}

// Pos implements Node.
func (n *NodeInfo) Pos() token.Position { return n.Span.Start }

// End implements Node.
func (n *NodeInfo) End() token.Position { return n.Span.End }

// SetSpan records the source span of the node.
func (n *NodeInfo) SetSpan(s token.Span) { n.Span = s }

// Ident is an identifier with its original spelling. Quote is the opening
// quote character ('"', '`' or '[') for quoted identifiers and 0 otherwise.
type Ident struct {
	Value string
	Quote rune
}

// NewIdent returns an unquoted identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// ClosingQuote returns the closing delimiter for a quote character.
func ClosingQuote(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}

// String renders the identifier in SQL, quoted as it was written.
// Embedded closing quotes are doubled.
func (i Ident) String() string {
	if i.Quote == 0 {
		return i.Value
	}
	end := ClosingQuote(i.Quote)
	var b strings.Builder
	b.Grow(len(i.Value) + 2)
	b.WriteRune(i.Quote)
	for _, r := range i.Value {
		if r == end {
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	b.WriteRune(end)
	return b.String()
}

// ObjectName is a possibly qualified name such as catalog.schema.table.
type ObjectName []Ident

// NewObjectName builds an unquoted name from its parts.
func NewObjectName(parts ...string) ObjectName {
	name := make(ObjectName, len(parts))
	for i, p := range parts {
		name[i] = Ident{Value: p}
	}
	return name
}

// String renders the dotted name.
func (n ObjectName) String() string {
	parts := make([]string, len(n))
	for i, id := range n {
		parts[i] = id.String()
	}
	return strings.Join(parts, ".")
}

// Last returns the unqualified part of the name.
func (n ObjectName) Last() Ident {
	if len(n) == 0 {
		return Ident{}
	}
	return n[len(n)-1]
}
