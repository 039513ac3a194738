package parser_test

import (
	"testing"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/parser"
	"github.com/pyast-go/pyparse/token"
)

// tok describes one fixture token; build lays a list of them out
// consecutively, advancing by len(lit) (or 1 for a lit-less token), so
// fixtures can be written as a flat list without hand-computing byte
// offsets, unlike source/filter_test.go's plain()/name() helpers, which
// take explicit offsets.
type tok struct {
	kind     token.Kind
	lit      string
	width    int
	zero     bool
	quote    byte
	triple   bool
	raw      bool
	bytesLit bool
	ipyKind  byte
}

func tk(k token.Kind, lit string) tok { return tok{kind: k, lit: lit} }

func op(k token.Kind) tok { return tok{kind: k, lit: k.String()} }

func newline() tok { return tok{kind: token.Newline, lit: "\n"} }
func indent() tok  { return tok{kind: token.Indent, zero: true} }
func dedent() tok  { return tok{kind: token.Dedent, zero: true} }

func str(lit string, quote byte, triple, raw, bytesLit bool) tok {
	return tok{kind: token.String, lit: lit, quote: quote, triple: triple, raw: raw, bytesLit: bytesLit}
}

// build lays out toks consecutively starting at byte 0 and returns the
// resulting token.Token slice plus the total width (for NewTokenSource's
// end parameter).
func build(toks ...tok) ([]token.Token, int) {
	var out []token.Token
	pos := 0
	for _, tt := range toks {
		w := tt.width
		if w == 0 && !tt.zero {
			w = len(tt.lit)
		}
		if w == 0 && !tt.zero {
			w = 1
		}
		out = append(out, token.Token{
			Kind:     tt.kind,
			Lit:      tt.lit,
			Range:    token.Range{Start: pos, End: pos + w},
			Quote:    tt.quote,
			Triple:   tt.triple,
			RawFlag:  tt.raw,
			BytesLit: tt.bytesLit,
			IpyKind:  tt.ipyKind,
		})
		pos += w
	}
	return out, pos
}

func parseExpr(t *testing.T, toks ...tok) (ast.Expr, errors.List) {
	t.Helper()
	tl, _ := build(toks...)
	n, errs := parser.Parse(nil, tl, parser.Expression)
	expr, ok := n.(*ast.Expression)
	if !ok {
		t.Fatalf("Parse did not return *ast.Expression, got %T", n)
	}
	return expr.Body, errs
}

func parseModule(t *testing.T, mode parser.Mode, toks ...tok) ([]ast.Stmt, errors.List) {
	t.Helper()
	tl, _ := build(toks...)
	n, errs := parser.Parse(nil, tl, mode)
	mod, ok := n.(*ast.Module)
	if !ok {
		t.Fatalf("Parse did not return *ast.Module, got %T", n)
	}
	return mod.Body, errs
}
