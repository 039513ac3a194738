package parser_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/token"
)

// f'{x!r:>{w}}' -- a conversion flag plus a format spec that itself
// contains a nested hole.
func TestFStringConversionAndNestedFormatSpec(t *testing.T) {
	e, errs := parseExpr(t,
		tok{kind: token.FStringStart},
		op(token.LBrace),
		tk(token.Name, "x"),
		op(token.Bang), tk(token.Name, "r"),
		op(token.Colon),
		tok{kind: token.FStringMiddle, lit: ">"},
		op(token.LBrace), tk(token.Name, "w"), op(token.RBrace),
		op(token.RBrace),
		tok{kind: token.FStringEnd},
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fstr, ok := e.(*ast.FString)
	if !ok {
		t.Fatalf("want *ast.FString, got %#v", e)
	}
	if len(fstr.Elements) != 1 {
		t.Fatalf("want 1 top-level element (the hole), got %d", len(fstr.Elements))
	}
	hole, ok := fstr.Elements[0].(*ast.FStringExpression)
	if !ok {
		t.Fatalf("want *ast.FStringExpression, got %#v", fstr.Elements[0])
	}
	if _, ok := hole.Value.(*ast.Name); !ok {
		t.Fatalf("want hole value to be Name(x), got %#v", hole.Value)
	}
	if hole.Conversion != ast.ConvRepr {
		t.Fatalf("want !r conversion, got %v", hole.Conversion)
	}
	if hole.Format == nil || len(hole.Format.Elements) != 2 {
		t.Fatalf("want a 2-element format spec (literal '>' then nested hole), got %#v", hole.Format)
	}
	lit, ok := hole.Format.Elements[0].(*ast.FStringLiteral)
	if !ok || lit.Value != ">" {
		t.Fatalf("want literal format-spec prefix '>', got %#v", hole.Format.Elements[0])
	}
	nested, ok := hole.Format.Elements[1].(*ast.FStringExpression)
	if !ok {
		t.Fatalf("want nested hole for {w}, got %#v", hole.Format.Elements[1])
	}
	if n, ok := nested.Value.(*ast.Name); !ok || n.Id != "w" {
		t.Fatalf("want nested hole value Name(w), got %#v", nested.Value)
	}
}

// An empty hole `{}` is rejected but still recovers without panicking.
func TestFStringEmptyExpressionIsRejected(t *testing.T) {
	_, errs := parseExpr(t,
		tok{kind: token.FStringStart},
		op(token.LBrace),
		op(token.RBrace),
		tok{kind: token.FStringEnd},
	)
	if len(errs) == 0 {
		t.Fatalf("want an error for an empty f-string hole")
	}
}

// f'\xZZ{x}' -- a decode failure in the literal text before a hole is a
// lexical error that recovers into an FStringInvalid piece, not a
// best-effort FStringLiteral.
func TestFStringMiddleDecodeErrorYieldsFStringInvalid(t *testing.T) {
	e, errs := parseExpr(t,
		tok{kind: token.FStringStart},
		tok{kind: token.FStringMiddle, lit: `\xZZ`},
		op(token.LBrace), tk(token.Name, "x"), op(token.RBrace),
		tok{kind: token.FStringEnd},
	)
	if len(errs) == 0 {
		t.Fatalf("want a lexical error for the truncated \\x escape")
	}
	fstr, ok := e.(*ast.FString)
	if !ok {
		t.Fatalf("want *ast.FString, got %#v", e)
	}
	if len(fstr.Elements) != 2 {
		t.Fatalf("want 2 elements (the invalid literal then the hole), got %d", len(fstr.Elements))
	}
	if _, ok := fstr.Elements[0].(*ast.FStringInvalid); !ok {
		t.Fatalf("want *ast.FStringInvalid for the undecodable literal run, got %#v", fstr.Elements[0])
	}
}
