// Package core defines the shared language of the SQL parser.
//
// This package contains:
//   - The AST: Node, Expr, Stmt, TableRef and SetExpr with all node types
//   - Dialect configuration data (DialectConfig) and parsing metadata
//     (precedence levels, ClauseDef, OperatorDef, JoinTypeDef)
//   - Traversal (Walk, Inspect) and structural equality (Equal)
//
// The Golden Rule: pkg/core imports ONLY pkg/token, go-cmp and stdlib.
// All other packages depend on core, not the reverse.
package core
