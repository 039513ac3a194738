package parser_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/parser"
	"github.com/pyast-go/pyparse/token"
)

// "hello" "world" -- adjacent plain strings concatenate into one
// StringLiteral the way Python's implicit concatenation does.
func TestAdjacentStringLiteralsConcatenate(t *testing.T) {
	e, errs := parseExpr(t,
		str("hello", '\'', false, false, false),
		str("world", '\'', false, false, false),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	s, ok := e.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("want *ast.StringLiteral, got %#v", e)
	}
	if s.Value != "helloworld" {
		t.Fatalf("want concatenated value %q, got %q", "helloworld", s.Value)
	}
}

// b"a" "b" mixes a bytes literal with a str literal, which Python rejects.
func TestMixingBytesAndStrLiteralsIsAnError(t *testing.T) {
	_, errs := parseExpr(t,
		str("a", '"', false, false, true),
		str("b", '"', false, false, false),
	)
	if len(errs) == 0 {
		t.Fatalf("want an error for mixing bytes and str literals")
	}
}

// "a\" -- a trailing backslash is a lexical error; the parser still
// recovers with an Invalid placeholder rather than a best-effort string.
func TestTrailingBackslashDecodeErrorYieldsInvalid(t *testing.T) {
	e, errs := parseExpr(t, str(`a\`, '"', false, false, false))
	if len(errs) == 0 {
		t.Fatalf("want a lexical error for a trailing backslash")
	}
	if _, ok := e.(*ast.Invalid); !ok {
		t.Fatalf("want *ast.Invalid, got %#v", e)
	}
}

// "\xZZ" -- a truncated \x escape is a lexical error; same Invalid
// recovery as a trailing backslash.
func TestTruncatedHexEscapeDecodeErrorYieldsInvalid(t *testing.T) {
	e, errs := parseExpr(t, str(`\xZZ`, '"', false, false, false))
	if len(errs) == 0 {
		t.Fatalf("want a lexical error for a truncated \\x escape")
	}
	if _, ok := e.(*ast.Invalid); !ok {
		t.Fatalf("want *ast.Invalid, got %#v", e)
	}
}

// Comparisons are suppressed inside a for-target, so `for x in y` doesn't
// swallow `in` as a comparison operator.
func TestForTargetDoesNotConsumeInAsComparison(t *testing.T) {
	body, errs := parseModule(t, parser.Module,
		tk(token.For, "for"), tk(token.Name, "x"), tk(token.In, "in"), tk(token.Name, "y"),
		op(token.Colon), newline(),
		indent(), tk(token.Pass, "pass"), newline(), dedent(),
	)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	f, ok := body[0].(*ast.For)
	if !ok {
		t.Fatalf("want *ast.For, got %#v", body[0])
	}
	target, ok := f.Target.(*ast.Name)
	if !ok || target.Id != "x" {
		t.Fatalf("want target Name(x), got %#v", f.Target)
	}
	if target.Ctx != ast.Store {
		t.Fatalf("want for-target context Store, got %v", target.Ctx)
	}
	iter, ok := f.Iter.(*ast.Name)
	if !ok || iter.Id != "y" {
		t.Fatalf("want iter Name(y), got %#v", f.Iter)
	}
}
