package ast_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/token"
)

func TestIsValidIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"x", true},
		{"_private", true},
		{"camelCase2", true},
		{"", false},
		{"2bad", false},
		{"has-dash", false},
		{"with space", false},
	}
	for _, c := range cases {
		if got := ast.IsValidIdentifier(c.in); got != c.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSetContextSimpleName(t *testing.T) {
	n := &ast.Name{Range: token.Range{Start: 0, End: 1}, Id: "x", Ctx: ast.Load}
	ast.SetContext(n, ast.Store)
	if n.Ctx != ast.Store {
		t.Fatalf("Ctx = %v, want Store", n.Ctx)
	}
}

func TestSetContextStopsAtSubscriptValue(t *testing.T) {
	base := &ast.Name{Range: token.Range{Start: 0, End: 1}, Id: "x", Ctx: ast.Load}
	idx := &ast.Name{Range: token.Range{Start: 2, End: 3}, Id: "i", Ctx: ast.Load}
	sub := &ast.Subscript{Range: token.Range{Start: 0, End: 4}, Value: base, Slice: idx, Ctx: ast.Load}

	ast.SetContext(sub, ast.Store)

	if sub.Ctx != ast.Store {
		t.Fatalf("Subscript.Ctx = %v, want Store", sub.Ctx)
	}
	if base.Ctx != ast.Load {
		t.Fatalf("inner Name.Ctx = %v, want Load (unchanged)", base.Ctx)
	}
}

func TestSetContextRecursesIntoTupleAndStarred(t *testing.T) {
	a := &ast.Name{Range: token.Range{Start: 0, End: 1}, Id: "a", Ctx: ast.Load}
	rest := &ast.Name{Range: token.Range{Start: 3, End: 7}, Id: "rest", Ctx: ast.Load}
	star := &ast.Starred{Range: token.Range{Start: 2, End: 7}, Value: rest, Ctx: ast.Load}
	tup := &ast.Tuple{Range: token.Range{Start: 0, End: 7}, Elts: []ast.Expr{a, star}, Ctx: ast.Load}

	ast.SetContext(tup, ast.Store)

	if tup.Ctx != ast.Store || a.Ctx != ast.Store || star.Ctx != ast.Store || rest.Ctx != ast.Store {
		t.Fatalf("expected full Store rewrite, got tup=%v a=%v star=%v rest=%v", tup.Ctx, a.Ctx, star.Ctx, rest.Ctx)
	}
}

func TestWalkVisitsModuleBody(t *testing.T) {
	name := &ast.Name{Range: token.Range{Start: 4, End: 5}, Id: "x", Ctx: ast.Load}
	stmt := &ast.ExprStmt{Range: token.Range{Start: 4, End: 5}, Value: name}
	mod := &ast.Module{Range: token.Range{Start: 0, End: 5}, Body: []ast.Stmt{stmt}}

	var seen []ast.Node
	ast.Walk(mod, func(n ast.Node) bool {
		seen = append(seen, n)
		return true
	}, nil)

	if len(seen) != 3 {
		t.Fatalf("visited %d nodes, want 3 (module, stmt, name): %v", len(seen), seen)
	}
	if _, ok := seen[2].(*ast.Name); !ok {
		t.Fatalf("last visited node = %T, want *ast.Name", seen[2])
	}
}

func TestWalkBeforeFalseSkipsChildren(t *testing.T) {
	inner := &ast.Name{Range: token.Range{Start: 0, End: 1}, Id: "x", Ctx: ast.Load}
	outer := &ast.ExprStmt{Range: token.Range{Start: 0, End: 1}, Value: inner}

	visits := 0
	ast.Walk(outer, func(n ast.Node) bool {
		visits++
		_, isStmt := n.(*ast.ExprStmt)
		return !isStmt
	}, nil)

	if visits != 1 {
		t.Fatalf("visits = %d, want 1 (before returning false should prune children)", visits)
	}
}
