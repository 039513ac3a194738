package parser

import (
	"fmt"
	"strings"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/source"
	"github.com/pyast-go/pyparse/token"
)

// ctxFlag is the small bit-stack of context flags requires:
// PARENTHESIZED_EXPR, ARGUMENTS and FOR_TARGET all affect how the Pratt
// loop and a handful of productions behave without needing a distinct
// parser routine per context.
type ctxFlag int

const (
	ctxParenthesizedExpr ctxFlag = 1 << iota
	ctxArguments
	ctxForTarget
)

// parser holds all state for one parse. It borrows the
// token source by reference; identifier and literal text is copied out of
// token payloads as AST nodes are built, and the raw source passed to
// Parse (if any) is kept only so srcText can slice from it.
type parser struct {
	src  source.TokenStream
	file *token.File
	mode Mode

	// rawSrc is the original source passed to Parse, if any; srcText
	// slices directly from it when present. allTokens is the pre-filter
	// token slice, kept so srcText can reconstruct text from token
	// literals when rawSrc is nil (the ParseTokens entry point).
	rawSrc    []byte
	allTokens []token.Token

	errors errors.List

	cur          token.Token
	lastTokenEnd int

	ctx      ctxFlag
	ctxStack []ctxFlag
	lastCtx  ctxFlag // snapshot used only for with-item range fix-up

	// deferredInvalid records a skipped range from expect_and_recover
	// that has not yet been surfaced as a synthetic Expr(Invalid)
	// statement.
	deferredInvalid *token.Range

	trace  bool
	indent int
}

func (p *parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	pos := p.file.Position(p.cur.Range.Start)
	fmt.Printf("%5d:%3d: ", pos.Line, pos.Column)
	i := 2 * p.indent
	for i > n {
		fmt.Print(dots)
		i -= n
	}
	fmt.Print(dots[0:i])
	fmt.Println(a...)
}

func trace(p *parser, msg string) *parser {
	if p.trace {
		p.printTrace(msg, "(")
	}
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "production"))
func un(p *parser) {
	p.indent--
	if p.trace {
		p.printTrace(")")
	}
}

// next advances to the next token from the soft-keyword-filtered stream.
// lastTokenEnd is updated to the end of the token just consumed, unless
// that token is Newline, Dedent or Semi, so node ranges never swallow a
// trailing statement terminator.
func (p *parser) next() {
	switch p.cur.Kind {
	case token.Newline, token.Dedent, token.Semi:
	default:
		if p.cur.Kind != token.ILLEGAL || p.cur.Range != (token.Range{}) {
			p.lastTokenEnd = p.cur.Range.End
		}
	}
	p.cur = p.src.Next()
	if p.trace {
		p.printTrace(p.cur.String())
	}
}

// peek returns the token n positions after the current one: peek(1) is
// the token the next call to next will make current.
func (p *parser) peek(n int) token.Token {
	if n <= 0 {
		return p.cur
	}
	return p.src.PeekNth(n - 1)
}

func (p *parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *parser) atTS(set ...token.Kind) bool {
	for _, k := range set {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// eat advances past the current token and reports true if it matched k.
func (p *parser) eat(k token.Kind) bool {
	if p.cur.Kind != k {
		return false
	}
	p.next()
	return true
}

// bump asserts the current token is k, advances, and returns the
// just-consumed token.
func (p *parser) bump(k token.Kind) token.Token {
	if p.cur.Kind != k {
		panic(fmt.Sprintf("parser: bump(%v) called at %v", k, p.cur.Kind))
	}
	t := p.cur
	p.next()
	return t
}

// expect reports an ExpectedToken error and returns false without
// advancing if the current token doesn't match k; every caller must treat
// a false result as "still positioned at the same token".
func (p *parser) expect(k token.Kind) bool {
	if p.eat(k) {
		return true
	}
	p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), k.String()))
	return false
}

func (p *parser) curRange() token.Range {
	return token.Range{Start: p.cur.Range.Start, End: p.cur.Range.Start}
}

// expectAndRecover is the single canonical resynchronization point
//: on failure it skips tokens until it finds one of
// recoverSet, k, Newline or EndOfFile, records the skipped range as a
// deferred invalid node, reports an "unexpected tokens" error, and
// consumes k if it's now current.
func (p *parser) expectAndRecover(k token.Kind, recoverSet ...token.Kind) bool {
	if p.expect(k) {
		return true
	}
	stop := append([]token.Kind{k, token.Newline, token.EndOfFile}, recoverSet...)
	r := p.skipUntil(stop...)
	if r.Len() > 0 {
		p.errors.Add(errors.NewUnexpectedToken(r, "<skipped>"))
		p.setDeferredInvalid(r)
	}
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

// skipUntil consumes tokens until the current one is in set, returning
// the covering range of everything consumed (possibly zero-width if
// already at a stop token).
func (p *parser) skipUntil(set ...token.Kind) token.Range {
	start := p.cur.Range.Start
	end := start
	for !p.atTS(set...) && !p.at(token.EndOfFile) {
		end = p.cur.Range.End
		p.next()
	}
	return token.Range{Start: start, End: end}
}

func (p *parser) setDeferredInvalid(r token.Range) {
	if p.deferredInvalid == nil {
		p.deferredInvalid = &r
		return
	}
	cov := p.deferredInvalid.Cover(r)
	p.deferredInvalid = &cov
}

func (p *parser) takeDeferredInvalid() *token.Range {
	r := p.deferredInvalid
	p.deferredInvalid = nil
	return r
}

// nodeStart returns the start byte of the current token, the usual
// opening bookend of a node_range(start) call.
func (p *parser) nodeStart() int { return p.cur.Range.Start }

// nodeRange closes a node that began at start using the end of the last
// consumed token.
func (p *parser) nodeRange(start int) token.Range {
	end := p.lastTokenEnd
	if end < start {
		end = start
	}
	return token.Range{Start: start, End: end}
}

func (p *parser) pushCtx(flag ctxFlag) ctxFlag {
	p.ctxStack = append(p.ctxStack, p.ctx)
	old := p.ctx
	p.ctx |= flag
	return old
}

func (p *parser) popCtx() {
	n := len(p.ctxStack)
	p.lastCtx = p.ctx
	p.ctx = p.ctxStack[n-1]
	p.ctxStack = p.ctxStack[:n-1]
}

func (p *parser) hasCtx(flag ctxFlag) bool { return p.ctx&flag != 0 }

// srcText returns the exact source text of r, sliced from the raw source
// when Parse supplied it, or else reconstructed from the token literals
// ParseTokens was given.
func (p *parser) srcText(r token.Range) string {
	if p.rawSrc != nil && r.Start >= 0 && r.End <= len(p.rawSrc) && r.Start <= r.End {
		return string(p.rawSrc[r.Start:r.End])
	}
	var b strings.Builder
	for _, t := range p.allTokens {
		lo, hi := t.Range.Start, t.Range.End
		if hi <= r.Start || lo >= r.End || t.Lit == "" || len(t.Lit) != hi-lo {
			continue
		}
		start, end := lo, hi
		if start < r.Start {
			start = r.Start
		}
		if end > r.End {
			end = r.End
		}
		b.WriteString(t.Lit[start-lo : end-lo])
	}
	return b.String()
}

// ---------------------------------------------------------------------
// Top-level parse

func (p *parser) parseModuleMode() *ast.Module {
	defer un(trace(p, "Module"))
	start := p.nodeStart()
	var body []ast.Stmt
	for !p.at(token.EndOfFile) {
		if p.at(token.Indent) {
			p.errors.Add(errors.NewUnexpectedToken(p.curRange(), "INDENT"))
			p.next()
			body = append(body, p.parseStatementsUntilDedent()...)
			continue
		}
		body = append(body, p.parseStatement()...)
	}
	mod := &ast.Module{Range: p.nodeRange(start), Body: body}
	p.assertClean()
	return mod
}

func (p *parser) parseStatementsUntilDedent() []ast.Stmt {
	var out []ast.Stmt
	for !p.atTS(token.Dedent, token.EndOfFile) {
		out = append(out, p.parseStatement()...)
	}
	p.eat(token.Dedent)
	return out
}

func (p *parser) parseExpressionMode() *ast.Expression {
	defer un(trace(p, "Expression"))
	start := p.nodeStart()
	e := p.parseExprs()
	for p.eat(token.Newline) {
	}
	p.expect(token.EndOfFile)
	p.assertClean()
	return &ast.Expression{Range: p.nodeRange(start), Body: e}
}

func (p *parser) assertClean() {
	if len(p.ctxStack) != 0 {
		panic("parser: context stack not empty at end of parse")
	}
	if p.ctx != 0 {
		panic("parser: context flags not empty at end of parse")
	}
}
