package parser_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/parser"
	"github.com/pyast-go/pyparse/token"
)

// match x:
//     case 1:
//         pass
func TestMatchStatementShape(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Name, "match"), tk(token.Name, "x"), op(token.Colon), newline(),
		indent(),
		tk(token.Name, "case"), tk(token.Int, "1"), op(token.Colon), newline(),
		indent(),
		tk(token.Pass, "pass"), newline(),
		dedent(),
		dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(body) != 1 {
		t.Fatalf("want 1 top-level statement, got %d", len(body))
	}
	m, ok := body[0].(*ast.Match)
	if !ok {
		t.Fatalf("want *ast.Match, got %#v", body[0])
	}
	if _, ok := m.Subject.(*ast.Name); !ok {
		t.Fatalf("want subject Name, got %#v", m.Subject)
	}
	if len(m.Cases) != 1 {
		t.Fatalf("want 1 case, got %d", len(m.Cases))
	}
	mv, ok := m.Cases[0].Pattern.(*ast.MatchValue)
	if !ok {
		t.Fatalf("want *ast.MatchValue pattern, got %#v", m.Cases[0].Pattern)
	}
	if _, ok := mv.Value.(*ast.NumberLiteral); !ok {
		t.Fatalf("want number literal pattern value, got %#v", mv.Value)
	}
	if len(m.Cases[0].Body) != 1 {
		t.Fatalf("want 1 statement in case body, got %d", len(m.Cases[0].Body))
	}
}

// type Alias[T] = list[T]
func TestTypeAliasWithTypeParams(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Name, "type"), tk(token.Name, "Alias"),
		op(token.LBrack), tk(token.Name, "T"), op(token.RBrack),
		op(token.Assign),
		tk(token.Name, "list"), op(token.LBrack), tk(token.Name, "T"), op(token.RBrack),
		newline(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(body) != 1 {
		t.Fatalf("want 1 statement, got %d", len(body))
	}
	ta, ok := body[0].(*ast.TypeAlias)
	if !ok {
		t.Fatalf("want *ast.TypeAlias, got %#v", body[0])
	}
	if ta.Name.Id != "Alias" {
		t.Fatalf("want alias name Alias, got %q", ta.Name.Id)
	}
	if ta.TypeParams == nil || len(ta.TypeParams.Params) != 1 {
		t.Fatalf("want 1 type param, got %#v", ta.TypeParams)
	}
	if _, ok := ta.Value.(*ast.Subscript); !ok {
		t.Fatalf("want value list[T] to be a Subscript, got %#v", ta.Value)
	}
}

// `type` used as a plain assignment target must stay a Name, never TypeKw.
func TestTypeAsOrdinaryNameIsNotPromoted(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Name, "type"), op(token.Assign), tk(token.Int, "1"), newline(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assign, ok := body[0].(*ast.Assign)
	if !ok {
		t.Fatalf("want *ast.Assign, got %#v", body[0])
	}
	name, ok := assign.Targets[0].(*ast.Name)
	if !ok || name.Id != "type" {
		t.Fatalf("want target Name(type), got %#v", assign.Targets[0])
	}
}

// with (a as x, b as y): pass -- an inline `as` before the matching ')'
// proves this is a parenthesized with-items list.
func TestWithItemListDisambiguation(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.With, "with"), op(token.LParen),
		tk(token.Name, "a"), tk(token.As, "as"), tk(token.Name, "x"), op(token.Comma),
		tk(token.Name, "b"), tk(token.As, "as"), tk(token.Name, "y"),
		op(token.RParen), op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, ok := body[0].(*ast.With)
	if !ok {
		t.Fatalf("want *ast.With, got %#v", body[0])
	}
	if len(w.Items) != 2 {
		t.Fatalf("want 2 with-items, got %d", len(w.Items))
	}
	if w.Items[0].OptionalVars == nil || w.Items[1].OptionalVars == nil {
		t.Fatalf("want both items to carry an `as` target, got %#v", w.Items)
	}
}

// with (a, b) as x: pass -- no `as` appears before the matching ')', so
// the parens wrap a single tuple context-expr bound by the outer `as`.
func TestWithSingleParenthesizedTupleItem(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.With, "with"), op(token.LParen),
		tk(token.Name, "a"), op(token.Comma), tk(token.Name, "b"),
		op(token.RParen), tk(token.As, "as"), tk(token.Name, "x"),
		op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, ok := body[0].(*ast.With)
	if !ok {
		t.Fatalf("want *ast.With, got %#v", body[0])
	}
	if len(w.Items) != 1 {
		t.Fatalf("want 1 with-item, got %d", len(w.Items))
	}
	tup, ok := w.Items[0].ContextExpr.(*ast.Tuple)
	if !ok || !tup.Parenthesized || len(tup.Elts) != 2 {
		t.Fatalf("want a parenthesized 2-tuple context-expr, got %#v", w.Items[0].ContextExpr)
	}
	if w.Items[0].OptionalVars == nil {
		t.Fatalf("want an `as x` target")
	}
}

// with (a, *b): pass -- a starred element at depth 1 rules out the
// items-list reading even though no `as`/`,` follows the matching ')',
// so the parens wrap a single starred-tuple context-expr.
func TestWithStarredTupleIsNotAnItemList(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.With, "with"), op(token.LParen),
		tk(token.Name, "a"), op(token.Comma), op(token.Mul), tk(token.Name, "b"),
		op(token.RParen), op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	w, ok := body[0].(*ast.With)
	if !ok {
		t.Fatalf("want *ast.With, got %#v", body[0])
	}
	if len(w.Items) != 1 {
		t.Fatalf("want 1 with-item, got %d", len(w.Items))
	}
	tup, ok := w.Items[0].ContextExpr.(*ast.Tuple)
	if !ok || !tup.Parenthesized || len(tup.Elts) != 2 {
		t.Fatalf("want a parenthesized 2-tuple context-expr, got %#v", w.Items[0].ContextExpr)
	}
	if _, ok := tup.Elts[1].(*ast.Starred); !ok {
		t.Fatalf("want the second element to be Starred, got %#v", tup.Elts[1])
	}
	if w.Items[0].OptionalVars != nil {
		t.Fatalf("want no `as` target")
	}
}

// def f(*, a, b=1, **kw): pass -- keyword-only params after a bare `*`,
// a default on `b`, and a **kwargs catch-all.
func TestFunctionDefParameterGrouping(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Def, "def"), tk(token.Name, "f"), op(token.LParen),
		op(token.Mul), op(token.Comma),
		tk(token.Name, "a"), op(token.Comma),
		tk(token.Name, "b"), op(token.Assign), tk(token.Int, "1"), op(token.Comma),
		op(token.Pow), tk(token.Name, "kw"),
		op(token.RParen), op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn, ok := body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("want *ast.FunctionDef, got %#v", body[0])
	}
	params := fn.Params
	if len(params.Params) != 0 {
		t.Fatalf("want no positional-or-keyword params (both are kw-only), got %d", len(params.Params))
	}
	if len(params.KwOnlyParams) != 2 {
		t.Fatalf("want 2 kw-only params, got %d", len(params.KwOnlyParams))
	}
	if params.KwOnlyParams[0].Name.Name != "a" || params.KwOnlyParams[0].Default != nil {
		t.Fatalf("want a with no default, got %#v", params.KwOnlyParams[0])
	}
	if params.KwOnlyParams[1].Name.Name != "b" || params.KwOnlyParams[1].Default == nil {
		t.Fatalf("want b with a default, got %#v", params.KwOnlyParams[1])
	}
	if params.KwArg == nil || params.KwArg.Name.Name != "kw" {
		t.Fatalf("want **kw catch-all, got %#v", params.KwArg)
	}
}

// def f(: \n pass \n -- a broken parameter list must not crash the
// parser: it reports an error and still recovers into a usable Module.
func TestErrorRecoveryOnBrokenParameterList(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Def, "def"), tk(token.Name, "f"), op(token.LParen),
		op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) == 0 {
		t.Fatalf("want at least one diagnostic for the malformed parameter list")
	}
	if len(body) == 0 {
		t.Fatalf("want the parser to still produce at least one top-level statement")
	}
	if _, ok := body[0].(*ast.FunctionDef); !ok {
		t.Fatalf("want recovery to still yield a FunctionDef, got %#v", body[0])
	}
}

// x: int = 1 -- a bare Name target is a simple annotated assignment.
func TestAnnAssignBareNameIsSimple(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.Name, "x"), op(token.Colon), tk(token.Name, "int"), op(token.Assign), tk(token.Int, "1"), newline(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	a, ok := body[0].(*ast.AnnAssign)
	if !ok {
		t.Fatalf("want *ast.AnnAssign, got %#v", body[0])
	}
	if !a.Simple {
		t.Fatalf("want Simple=true for a bare Name target")
	}
}

// (x): int = 1 -- a parenthesized Name target is not simple, even though
// it is still a Name.
func TestAnnAssignParenthesizedNameIsNotSimple(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		op(token.LParen), tk(token.Name, "x"), op(token.RParen),
		op(token.Colon), tk(token.Name, "int"), op(token.Assign), tk(token.Int, "1"), newline(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	a, ok := body[0].(*ast.AnnAssign)
	if !ok {
		t.Fatalf("want *ast.AnnAssign, got %#v", body[0])
	}
	if a.Simple {
		t.Fatalf("want Simple=false for a parenthesized Name target")
	}
	if n, ok := a.Target.(*ast.Name); !ok || !n.Parenthesized {
		t.Fatalf("want target Name to be marked Parenthesized, got %#v", a.Target)
	}
}
