//go:build governance

package core_test

import (
	"go/types"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/sqlparser"

// =============================================================================
// COVERAGE TEST - Every AST node is produced by the parser and rendered
// =============================================================================

// TestGovernance_NodeCoverage verifies that every concrete statement,
// expression, table and query-body node in pkg/core is referenced by both
// pkg/parser and pkg/format. A node the parser never builds is dead weight;
// a node the renderer never mentions breaks the round trip.
func TestGovernance_NodeCoverage(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	byPath := make(map[string]*packages.Package)
	for _, p := range pkgs {
		byPath[p.PkgPath] = p
	}
	corePkg := byPath[modulePath+"/pkg/core"]
	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	scope := corePkg.Types.Scope()
	var markers []*types.Interface
	for _, name := range []string{"Stmt", "Expr", "TableRef", "SetExpr"} {
		markers = append(markers, scope.Lookup(name).Type().Underlying().(*types.Interface))
	}

	nodes := make(map[types.Object]string)
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj.IsAlias() {
			continue
		}
		if _, isStruct := obj.Type().Underlying().(*types.Struct); !isStruct {
			continue
		}
		ptr := types.NewPointer(obj.Type())
		for _, iface := range markers {
			if types.Implements(ptr, iface) {
				nodes[obj] = name
				break
			}
		}
	}
	if len(nodes) == 0 {
		t.Fatal("no AST node types found in pkg/core")
	}

	for _, user := range []string{"pkg/parser", "pkg/format"} {
		p := byPath[modulePath+"/"+user]
		if p == nil || p.TypesInfo == nil {
			t.Fatalf("Could not load %s", user)
		}
		used := make(map[string]bool)
		for _, obj := range p.TypesInfo.Uses {
			if name, ok := nodes[obj]; ok {
				used[name] = true
			}
		}

		var missing []string
		for _, name := range nodes {
			if !used[name] {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		for _, name := range missing {
			t.Errorf("COVERAGE VIOLATION: 'core.%s' is never referenced by %s.", name, user)
		}
	}
}

// =============================================================================
// PURITY TEST - No type alias re-exports from non-core packages
// =============================================================================

// TestGovernance_NoTypeAliasReexports ensures packages don't re-export core
// types as aliases. Consumers use core types directly.
func TestGovernance_NoTypeAliasReexports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	corePath := modulePath + "/pkg/core"
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || pkg.PkgPath == corePath {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || !typeName.IsAlias() {
				continue
			}
			named, ok := typeName.Type().(*types.Named)
			if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != corePath {
				continue
			}
			t.Errorf("PURITY VIOLATION: Package '%s' re-exports type alias '%s'.\n"+
				"   Fix: Remove the alias. Consumers should use core.%s directly.",
				strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), name, named.Obj().Name())
		}
	}
}
