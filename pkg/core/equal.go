package core

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOpts compares trees by shape: source spans are ignored and nil and
// empty slices are treated alike.
var equalOpts = cmp.Options{
	cmpopts.IgnoreTypes(NodeInfo{}),
	cmpopts.EquateEmpty(),
}

// Equal reports whether two AST values are structurally equal, ignoring
// source positions.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Diff returns a human-readable difference between two AST values, or ""
// when they are structurally equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, equalOpts)
}
