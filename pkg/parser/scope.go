package parser

import (
	"strings"

	"github.com/leapstack-labs/sqlparser/pkg/core"
	"github.com/leapstack-labs/sqlparser/pkg/dialect"
)

// ScopeType indicates the type of scope entry.
type ScopeType int

const (
	// ScopeTable represents a physical table.
	ScopeTable ScopeType = iota
	// ScopeCTE represents a Common Table Expression.
	ScopeCTE
	// ScopeDerived represents a derived table (subquery in FROM).
	ScopeDerived
)

// ScopeEntry represents a table, CTE or derived table visible in a query.
type ScopeEntry struct {
	Type  ScopeType
	Name  core.ObjectName
	Alias *core.Ident
}

// EffectiveName returns the name used to reference this entry (alias if present, else name).
func (e *ScopeEntry) EffectiveName() core.Ident {
	if e.Alias != nil {
		return *e.Alias
	}
	return e.Name.Last()
}

// Scope tracks the CTEs and tables available within a query context.
type Scope struct {
	parent  *Scope
	entries map[string]*ScopeEntry
	dialect *dialect.Dialect
}

// NewScope creates a new root scope.
// Returns an error if dialect is nil.
func NewScope(d *dialect.Dialect) (*Scope, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	return &Scope{entries: make(map[string]*ScopeEntry), dialect: d}, nil
}

// Child creates a child scope for nested queries (subqueries, derived tables).
func (s *Scope) Child() *Scope {
	return &Scope{parent: s, entries: make(map[string]*ScopeEntry), dialect: s.dialect}
}

// normalize folds an unquoted identifier according to dialect rules.
// Quoted identifiers keep their spelling.
func (s *Scope) normalize(id core.Ident) string {
	if id.Quote != 0 {
		return id.Value
	}
	return s.dialect.NormalizeName(id.Value)
}

func (s *Scope) normalizeName(name core.ObjectName) string {
	parts := make([]string, len(name))
	for i, id := range name {
		parts[i] = s.normalize(id)
	}
	return strings.Join(parts, ".")
}

// RegisterCTE registers a CTE name.
func (s *Scope) RegisterCTE(name core.Ident) {
	s.entries[s.normalize(name)] = &ScopeEntry{Type: ScopeCTE, Name: core.ObjectName{name}}
}

// RegisterTable registers a physical table from a FROM clause by its
// effective name.
func (s *Scope) RegisterTable(table *core.TableName) {
	entry := &ScopeEntry{Type: ScopeTable, Name: table.Name}
	if table.Alias != nil {
		entry.Alias = &table.Alias.Name
	}
	s.entries[s.normalize(entry.EffectiveName())] = entry
}

// RegisterDerived registers a derived table (subquery in FROM).
func (s *Scope) RegisterDerived(alias core.Ident) {
	s.entries[s.normalize(alias)] = &ScopeEntry{Type: ScopeDerived, Name: core.ObjectName{alias}, Alias: &alias}
}

// Lookup finds a scope entry by name (table name or alias).
// Searches current scope first, then parent scopes.
func (s *Scope) Lookup(name core.Ident) (*ScopeEntry, bool) {
	if entry, ok := s.entries[s.normalize(name)]; ok {
		return entry, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return nil, false
}

// LookupCTE looks up a CTE by name in this scope and its parents.
func (s *Scope) LookupCTE(name core.Ident) (*ScopeEntry, bool) {
	if entry, ok := s.entries[s.normalize(name)]; ok && entry.Type == ScopeCTE {
		return entry, true
	}
	if s.parent != nil {
		return s.parent.LookupCTE(name)
	}
	return nil, false
}

// ---------- Table Extraction ----------

// TableReference is a physical table named by a statement.
type TableReference struct {
	Name  core.ObjectName
	Alias *core.Ident
}

// ReferencedTables returns the physical tables a statement reads or writes,
// in order of first appearance. References to CTEs are excluded and
// repeated names are reported once, compared after dialect normalization.
func ReferencedTables(stmt core.Stmt, d *dialect.Dialect) ([]TableReference, error) {
	root, err := NewScope(d)
	if err != nil {
		return nil, err
	}
	c := &tableCollector{seen: make(map[string]bool)}
	c.collect(stmt, root)
	return c.tables, nil
}

type tableCollector struct {
	tables []TableReference
	seen   map[string]bool
}

func (c *tableCollector) add(scope *Scope, name core.ObjectName, alias *core.Ident) {
	if len(name) == 1 {
		if _, ok := scope.LookupCTE(name[0]); ok {
			return
		}
	}
	key := scope.normalizeName(name)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.tables = append(c.tables, TableReference{Name: name, Alias: alias})
}

// collect walks node, opening a child scope for every query so CTE names
// shadow tables only where they are visible.
func (c *tableCollector) collect(node any, scope *Scope) {
	core.Walk(node, func(n any) bool {
		switch n := n.(type) {
		case *core.SelectStmt:
			child := scope.Child()
			if n.With != nil {
				for _, cte := range n.With.CTEs {
					child.RegisterCTE(cte.Name)
				}
				for _, cte := range n.With.CTEs {
					c.collect(cte.Select, child)
				}
			}
			c.collect(n.Body, child)
			for _, item := range n.OrderBy {
				c.collect(item.Expr, child)
			}
			c.collect(n.Limit, child)
			c.collect(n.Offset, child)
			return false

		case *core.TableName:
			var alias *core.Ident
			if n.Alias != nil {
				alias = &n.Alias.Name
			}
			c.add(scope, n.Name, alias)
			scope.RegisterTable(n)

		case *core.DerivedTable:
			if n.Alias != nil {
				scope.RegisterDerived(n.Alias.Name)
			}

		case *core.InsertStmt:
			c.add(scope, n.Table, nil)
		case *core.DeleteStmt:
			c.add(scope, n.Table, nil)
		case *core.CreateTableStmt:
			c.add(scope, n.Name, nil)
		case *core.CreateIndexStmt:
			c.add(scope, n.Table, nil)
		case *core.AlterTableStmt:
			c.add(scope, n.Name, nil)
		case *core.TruncateStmt:
			c.add(scope, n.Name, nil)
		case *core.DropStmt:
			if n.ObjectType == core.ObjectTable {
				for _, name := range n.Names {
					c.add(scope, name, nil)
				}
			}
		}
		return true
	})
}
