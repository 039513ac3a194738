package parser_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/token"
)

// 1 + 2 * 3  -- Mult must bind tighter than Add.
func TestPrattPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	e, errs := parseExpr(t, tk(token.Int, "1"), op(token.Add), tk(token.Int, "2"), op(token.Mul), tk(token.Int, "3"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	top, ok := e.(*ast.BinOp)
	if !ok || top.Op != ast.Add {
		t.Fatalf("want top-level Add BinOp, got %#v", e)
	}
	left, ok := top.Left.(*ast.NumberLiteral)
	if !ok || left.Value != "1" {
		t.Fatalf("want left operand 1, got %#v", top.Left)
	}
	right, ok := top.Right.(*ast.BinOp)
	if !ok || right.Op != ast.Mult {
		t.Fatalf("want right operand to be a Mult BinOp, got %#v", top.Right)
	}
}

// 2 ** 3 ** 2 -- ** is right-associative.
func TestPowerIsRightAssociative(t *testing.T) {
	e, errs := parseExpr(t, tk(token.Int, "2"), op(token.Pow), tk(token.Int, "3"), op(token.Pow), tk(token.Int, "2"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	top, ok := e.(*ast.BinOp)
	if !ok || top.Op != ast.Pow {
		t.Fatalf("want top-level Pow, got %#v", e)
	}
	if _, ok := top.Left.(*ast.NumberLiteral); !ok {
		t.Fatalf("want left operand to be the literal 2, got %#v", top.Left)
	}
	if _, ok := top.Right.(*ast.BinOp); !ok {
		t.Fatalf("want right operand to itself be a Pow BinOp (right-assoc), got %#v", top.Right)
	}
}

// a < b < c folds into one Compare with two ops, not nested BinOps.
func TestComparisonChainIsOneCompareNode(t *testing.T) {
	e, errs := parseExpr(t,
		tk(token.Name, "a"), op(token.Lt), tk(token.Name, "b"), op(token.Lt), tk(token.Name, "c"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cmp, ok := e.(*ast.Compare)
	if !ok {
		t.Fatalf("want *ast.Compare, got %#v", e)
	}
	if len(cmp.Ops) != 2 || len(cmp.Comparators) != 2 {
		t.Fatalf("want a 2-op comparison chain, got %d ops / %d comparators", len(cmp.Ops), len(cmp.Comparators))
	}
	if cmp.Ops[0] != ast.CmpLt || cmp.Ops[1] != ast.CmpLt {
		t.Fatalf("want both ops to be CmpLt, got %v", cmp.Ops)
	}
}

// `is not` and `not in` are each a single CmpOp despite being two tokens.
func TestIsNotAndNotInAreSingleOperators(t *testing.T) {
	e, _ := parseExpr(t,
		tk(token.Name, "a"), tk(token.Is, "is"), tk(token.Not, "not"), tk(token.Name, "b"))
	cmp, ok := e.(*ast.Compare)
	if !ok || len(cmp.Ops) != 1 || cmp.Ops[0] != ast.CmpIsNot {
		t.Fatalf("want single CmpIsNot, got %#v", e)
	}

	e2, _ := parseExpr(t,
		tk(token.Name, "a"), tk(token.Not, "not"), tk(token.In, "in"), tk(token.Name, "b"))
	cmp2, ok := e2.(*ast.Compare)
	if !ok || len(cmp2.Ops) != 1 || cmp2.Ops[0] != ast.CmpNotIn {
		t.Fatalf("want single CmpNotIn, got %#v", e2)
	}
}

// a or b or c folds into one BoolOp with three Values, not nested BoolOps.
func TestBoolOpChainIsNAry(t *testing.T) {
	e, errs := parseExpr(t,
		tk(token.Name, "a"), tk(token.Or, "or"), tk(token.Name, "b"), tk(token.Or, "or"), tk(token.Name, "c"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	b, ok := e.(*ast.BoolOp)
	if !ok || b.Op != ast.OrOp || len(b.Values) != 3 {
		t.Fatalf("want a 3-value Or BoolOp, got %#v", e)
	}
}

// (x, y) is Parenthesized; x, y is not.
func TestParenthesizedTupleDistinction(t *testing.T) {
	e, _ := parseExpr(t, op(token.LParen), tk(token.Name, "x"), op(token.Comma), tk(token.Name, "y"), op(token.RParen))
	tup, ok := e.(*ast.Tuple)
	if !ok || !tup.Parenthesized {
		t.Fatalf("want a parenthesized Tuple, got %#v", e)
	}

	e2, _ := parseExpr(t, tk(token.Name, "x"), op(token.Comma), tk(token.Name, "y"))
	tup2, ok := e2.(*ast.Tuple)
	if !ok || tup2.Parenthesized {
		t.Fatalf("want a bare (non-parenthesized) Tuple, got %#v", e2)
	}
}

// The top-level node's range spans the whole expression, from byte 0 to
// the end of the last token (a weak form of total-range-coverage property).
func TestTopLevelRangeCoversWholeExpression(t *testing.T) {
	_, end := build(tk(token.Int, "1"), op(token.Add), tk(token.Int, "2"), op(token.Mul), tk(token.Int, "3"))
	e, _ := parseExpr(t, tk(token.Int, "1"), op(token.Add), tk(token.Int, "2"), op(token.Mul), tk(token.Int, "3"))
	r := e.NodeRange()
	if r.Start != 0 || r.End != end {
		t.Fatalf("want range [0,%d), got [%d,%d)", end, r.Start, r.End)
	}
}
