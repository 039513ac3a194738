package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/token"
)

func (p *parser) parseWith(isAsync bool) ast.Stmt {
	defer un(trace(p, "With"))
	start := p.nodeStart()
	p.bump(token.With)
	items := p.parseWithItems()
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	return &ast.With{Range: p.nodeRange(start), IsAsync: isAsync, Items: items, Body: body}
}

// parseWithItems implements disambiguation between a
// parenthesized list of with-items and a single with-item whose
// context-expr happens to be a parenthesized expression.
func (p *parser) parseWithItems() []*ast.WithItem {
	if p.at(token.LParen) && p.looksLikeParenthesizedItemList() {
		p.bump(token.LParen)
		var items []*ast.WithItem
		for !p.at(token.RParen) && !p.at(token.EndOfFile) {
			items = append(items, p.parseWithItem())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
		return items
	}

	var items []*ast.WithItem
	for {
		items = append(items, p.parseWithItemShrinkParens())
		if !p.eat(token.Comma) {
			break
		}
	}
	return items
}

func (p *parser) parseWithItem() *ast.WithItem {
	start := p.nodeStart()
	ctxExpr := p.parseExprSimple()
	var vars ast.Expr
	if p.eat(token.As) {
		vars = p.parseExprSimple()
		ast.SetContext(vars, ast.Store)
	}
	return &ast.WithItem{Range: p.nodeRange(start), ContextExpr: ctxExpr, OptionalVars: vars}
}

// parseWithItemShrinkParens parses one with-item through the ordinary
// expression path, and when the result is a redundant parenthesization
// (not a tuple, no `as` target) shrinks its range by one byte on each
// side so the parentheses are attributed to the with-statement rather
// than the item itself.
func (p *parser) parseWithItemShrinkParens() *ast.WithItem {
	start := p.nodeStart()
	wasParen := p.at(token.LParen)
	ctxExpr := p.parseExprSimple()
	var vars ast.Expr
	if p.eat(token.As) {
		vars = p.parseExprSimple()
		ast.SetContext(vars, ast.Store)
	}
	if wasParen && vars == nil {
		if _, isTuple := ctxExpr.(*ast.Tuple); !isTuple {
			if r, ok := shrinkByOne(ctxExpr.NodeRange()); ok {
				setExprRange(ctxExpr, r)
			}
		}
	}
	return &ast.WithItem{Range: p.nodeRange(start), ContextExpr: ctxExpr, OptionalVars: vars}
}

func shrinkByOne(r token.Range) (token.Range, bool) {
	if r.End-r.Start < 2 {
		return r, false
	}
	return token.Range{Start: r.Start + 1, End: r.End - 1}, true
}

// setExprRange overwrites the Range field of e in place; used only by the
// with-item parenthesization fix-up.
func setExprRange(e ast.Expr, r token.Range) {
	switch n := e.(type) {
	case *ast.Name:
		n.Range = r
	case *ast.BinOp:
		n.Range = r
	case *ast.Call:
		n.Range = r
	case *ast.Attribute:
		n.Range = r
	case *ast.Subscript:
		n.Range = r
	case *ast.Compare:
		n.Range = r
	case *ast.BoolOp:
		n.Range = r
	case *ast.NamedExpr:
		n.Range = r
	case *ast.IfExp:
		n.Range = r
	case *ast.Lambda:
		n.Range = r
	case *ast.Await:
		n.Range = r
	case *ast.UnaryOp:
		n.Range = r
	}
}

// looksLikeParenthesizedItemList implements the bounded pre-scan.
// Scanning starts just inside the candidate wrapper '(' at
// depth 1: seeing `as`, `:=`, or a top-level `*` before the matching ')'
// closes resolves immediately (an inline `as` proves an items list; a
// walrus or a starred expression at depth 1 proves a single expression,
// since neither can appear as a bare with-item). Once
// the matching ')' is found, what follows it decides: `as` means the
// whole parenthesized group is one expression being bound by that `as`
// (single expression); a ',' means more with-items follow outside these
// parens, so this '(' was never the items-list wrapper at all (treat it
// as an ordinary expression and let the per-item loop continue past the
// comma); anything else (typically ':'/Newline) means the parens wrap a
// comma-separated list of bare items (items list).
func (p *parser) looksLikeParenthesizedItemList() bool {
	depth := 1
	for i := 1; ; i++ {
		t := p.peek(i)
		switch t.Kind {
		case token.Newline, token.EndOfFile:
			return true
		case token.LParen, token.LBrack, token.LBrace:
			depth++
		case token.RParen, token.RBrack, token.RBrace:
			depth--
			if depth == 0 {
				switch p.peek(i + 1).Kind {
				case token.As, token.Comma:
					return false
				default:
					return true
				}
			}
		case token.Mul:
			if depth == 1 {
				return false
			}
		case token.Walrus:
			if depth == 1 {
				return false
			}
		case token.As:
			if depth == 1 {
				return true
			}
		}
	}
}
