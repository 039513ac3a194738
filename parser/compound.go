package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/token"
)

func (p *parser) parseCompoundStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.For:
		return p.parseFor(false)
	case token.With:
		return p.parseWith(false)
	case token.Try:
		return p.parseTry()
	case token.Def:
		return p.parseFunctionDef(false, nil)
	case token.Class:
		return p.parseClassDef(nil)
	case token.Match:
		return p.parseMatch()
	}
	panic("parser: parseCompoundStatement called on non-compound token")
}

func (p *parser) parseDecorated() ast.Stmt {
	var decorators []*ast.Decorator
	for p.at(token.At) {
		start := p.nodeStart()
		p.bump(token.At)
		expr := p.parseExprSimple()
		p.expect(token.Newline)
		decorators = append(decorators, &ast.Decorator{Range: p.nodeRange(start), Expression: expr})
	}
	switch p.cur.Kind {
	case token.Def:
		return p.parseFunctionDef(false, decorators)
	case token.Class:
		return p.parseClassDef(decorators)
	case token.Async:
		p.bump(token.Async)
		if p.at(token.Def) {
			return p.parseFunctionDef(true, decorators)
		}
		p.errors.Add(errors.NewStmtIsNotAsync(p.curRange(), p.cur.Kind.String()))
		return p.parseCompoundOrSimple()
	default:
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "def or class"))
		return p.parseCompoundOrSimple()
	}
}

func (p *parser) parseCompoundOrSimple() ast.Stmt {
	if isCompoundStart(p.cur.Kind) {
		return p.parseCompoundStatement()
	}
	stmts := p.parseSimpleStatementLine()
	if len(stmts) == 1 {
		return stmts[0]
	}
	start := stmts[0].NodeRange().Start
	end := stmts[len(stmts)-1].NodeRange().End
	return &ast.ExprStmt{Range: token.Range{Start: start, End: end}, Value: &ast.Invalid{Range: token.Range{Start: start, End: end}}}
}

// parseAsyncStatement handles `async def/for/with`; any other statement
// following `async` is not a valid async statement, so it reports
// StmtIsNotAsync and recurses into ordinary statement parsing so the next
// statement still parses.
func (p *parser) parseAsyncStatement() ast.Stmt {
	p.bump(token.Async)
	switch p.cur.Kind {
	case token.Def:
		return p.parseFunctionDef(true, nil)
	case token.For:
		return p.parseFor(true)
	case token.With:
		return p.parseWith(true)
	default:
		p.errors.Add(errors.NewStmtIsNotAsync(p.curRange(), p.cur.Kind.String()))
		return p.parseCompoundOrSimple()
	}
}

// parseHeaderExpr parses a compound statement's header expression, recovering
// by skipping to ':' on failure.
func (p *parser) parseHeaderExpr() ast.Expr {
	start := p.nodeStart()
	if p.at(token.Colon) {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "expression"))
		return &ast.Invalid{Range: p.nodeRange(start)}
	}
	e := p.parseExprs()
	if !p.at(token.Colon) {
		r := p.skipUntil(token.Colon, token.Newline, token.EndOfFile)
		if r.Len() > 0 {
			p.errors.Add(errors.NewUnexpectedToken(r, "<skipped>"))
		}
	}
	return e
}

// parseBody implements parse_body.
func (p *parser) parseBody() []ast.Stmt {
	if !p.at(token.Newline) && !p.at(token.EndOfFile) {
		return p.parseSimpleStatementLine()
	}
	p.eat(token.Newline)
	p.expect(token.Indent)
	var out []ast.Stmt
	for !p.atTS(token.Dedent, token.Newline, token.EndOfFile) {
		if p.at(token.Indent) {
			p.errors.Add(errors.NewUnexpectedToken(p.curRange(), "INDENT"))
			p.next()
			out = append(out, p.parseBody()...)
			continue
		}
		out = append(out, p.parseStatement()...)
	}
	p.eat(token.Dedent)
	return out
}

func (p *parser) parseClause(keyword token.Kind) (header ast.Expr, body []ast.Stmt) {
	p.bump(keyword)
	header = p.parseHeaderExpr()
	p.expectAndRecover(token.Colon)
	body = p.parseBody()
	return header, body
}

func (p *parser) parseIf() ast.Stmt {
	defer un(trace(p, "If"))
	start := p.nodeStart()
	test, body := p.parseClause(token.If)
	var orelse []ast.Stmt
	if p.at(token.Elif) {
		orelse = []ast.Stmt{p.parseElif()}
	} else if p.eat(token.Else) {
		p.expectAndRecover(token.Colon)
		orelse = p.parseBody()
	}
	return &ast.If{Range: p.nodeRange(start), Test: test, Body: body, Orelse: orelse}
}

func (p *parser) parseElif() ast.Stmt {
	start := p.nodeStart()
	test, body := p.parseClause(token.Elif)
	var orelse []ast.Stmt
	if p.at(token.Elif) {
		orelse = []ast.Stmt{p.parseElif()}
	} else if p.eat(token.Else) {
		p.expectAndRecover(token.Colon)
		orelse = p.parseBody()
	}
	return &ast.If{Range: p.nodeRange(start), Test: test, Body: body, Orelse: orelse}
}

func (p *parser) parseWhile() ast.Stmt {
	defer un(trace(p, "While"))
	start := p.nodeStart()
	test, body := p.parseClause(token.While)
	var orelse []ast.Stmt
	if p.eat(token.Else) {
		p.expectAndRecover(token.Colon)
		orelse = p.parseBody()
	}
	return &ast.While{Range: p.nodeRange(start), Test: test, Body: body, Orelse: orelse}
}

func (p *parser) parseFor(isAsync bool) ast.Stmt {
	defer un(trace(p, "For"))
	start := p.nodeStart()
	p.bump(token.For)
	p.pushCtx(ctxForTarget)
	target := p.parseExprs()
	p.popCtx()
	ast.SetContext(target, ast.Store)
	p.expect(token.In)
	iter := p.parseExprs()
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	var orelse []ast.Stmt
	if p.eat(token.Else) {
		p.expectAndRecover(token.Colon)
		orelse = p.parseBody()
	}
	return &ast.For{Range: p.nodeRange(start), IsAsync: isAsync, Target: target, Iter: iter, Body: body, Orelse: orelse}
}

func (p *parser) parseTry() ast.Stmt {
	defer un(trace(p, "Try"))
	start := p.nodeStart()
	p.bump(token.Try)
	p.expectAndRecover(token.Colon)
	body := p.parseBody()

	var handlers []*ast.ExceptHandler
	isStar := false
	for p.at(token.Except) {
		h, star := p.parseExceptHandler()
		handlers = append(handlers, h)
		isStar = isStar || star
	}
	var orelse, finalbody []ast.Stmt
	if p.eat(token.Else) {
		p.expectAndRecover(token.Colon)
		orelse = p.parseBody()
	}
	if p.eat(token.Finally) {
		p.expectAndRecover(token.Colon)
		finalbody = p.parseBody()
	}
	return &ast.Try{Range: p.nodeRange(start), Body: body, Handlers: handlers, Orelse: orelse, Finalbody: finalbody, IsStar: isStar}
}

func (p *parser) parseExceptHandler() (*ast.ExceptHandler, bool) {
	start := p.nodeStart()
	p.bump(token.Except)
	star := p.eat(token.Mul)
	var typ ast.Expr
	var name *ast.Ident
	if !p.at(token.Colon) {
		typ = p.parseExprSimple()
		if p.eat(token.As) {
			name = p.parseIdent()
		}
	}
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	return &ast.ExceptHandler{Range: p.nodeRange(start), Type: typ, Name: name, Body: body}, star
}

func (p *parser) parseFunctionDef(isAsync bool, decorators []*ast.Decorator) ast.Stmt {
	defer un(trace(p, "FunctionDef"))
	start := p.nodeStart()
	p.bump(token.Def)
	name := p.parseIdent()
	var tp *ast.TypeParams
	if p.at(token.LBrack) {
		tp = p.parseTypeParams()
	}
	p.expect(token.LParen)
	params := p.parseParameters(token.RParen)
	p.expect(token.RParen)
	var returns ast.Expr
	if p.eat(token.Arrow) {
		returns = p.parseExprSimple()
	}
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	return &ast.FunctionDef{
		Range: p.nodeRange(start), IsAsync: isAsync, Decorators: decorators,
		Name: name, TypeParams: tp, Params: params, Returns: returns, Body: body,
	}
}

func (p *parser) parseClassDef(decorators []*ast.Decorator) ast.Stmt {
	defer un(trace(p, "ClassDef"))
	start := p.nodeStart()
	p.bump(token.Class)
	name := p.parseIdent()
	var tp *ast.TypeParams
	if p.at(token.LBrack) {
		tp = p.parseTypeParams()
	}
	var bases []ast.Expr
	var keywords []*ast.Keyword
	if p.eat(token.LParen) {
		bases, keywords = p.parseCallArgLists(token.RParen)
		p.expect(token.RParen)
	}
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	return &ast.ClassDef{Range: p.nodeRange(start), Decorators: decorators, Name: name, TypeParams: tp, Bases: bases, Keywords: keywords, Body: body}
}

func (p *parser) parseTypeParams() *ast.TypeParams {
	start := p.nodeStart()
	p.bump(token.LBrack)
	var params []ast.TypeParam
	for !p.at(token.RBrack) && !p.at(token.EndOfFile) {
		params = append(params, p.parseTypeParam())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrack)
	return &ast.TypeParams{Range: p.nodeRange(start), Params: params}
}

func (p *parser) parseTypeParam() ast.TypeParam {
	start := p.nodeStart()
	switch {
	case p.eat(token.Mul):
		name := p.parseIdent()
		return &ast.TypeVarTuple{Range: p.nodeRange(start), Name: name}
	case p.eat(token.Pow):
		name := p.parseIdent()
		return &ast.ParamSpec{Range: p.nodeRange(start), Name: name}
	default:
		name := p.parseIdent()
		var bound ast.Expr
		if p.eat(token.Colon) {
			bound = p.parseExprSimple()
		}
		return &ast.TypeVar{Range: p.nodeRange(start), Name: name, Bound: bound}
	}
}
