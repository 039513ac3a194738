package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/token"
)

// isCompoundStart reports whether k begins a statement that
// parseCompoundStatement handles.
func isCompoundStart(k token.Kind) bool {
	switch k {
	case token.If, token.Try, token.For, token.With, token.While, token.Def, token.Class, token.Match:
		return true
	}
	return false
}

// parseStatement parses exactly one statement and, if expectAndRecover
// left a deferred-invalid range behind, appends a synthetic
// Expr(Invalid{...}) for it.
func (p *parser) parseStatement() []ast.Stmt {
	var out []ast.Stmt
	switch {
	case isCompoundStart(p.cur.Kind):
		out = append(out, p.parseCompoundStatement())
	case p.at(token.At):
		out = append(out, p.parseDecorated())
	case p.at(token.Async):
		out = append(out, p.parseAsyncStatement())
	default:
		out = append(out, p.parseSimpleStatementLine()...)
	}
	if r := p.takeDeferredInvalid(); r != nil {
		out = append(out, &ast.ExprStmt{Range: *r, Value: &ast.Invalid{Range: *r, Text: p.srcText(*r)}})
	}
	return out
}

// parseSimpleStatementLine parses one or more ';'-separated simple
// statements terminated by Newline or EndOfFile.
func (p *parser) parseSimpleStatementLine() []ast.Stmt {
	defer un(trace(p, "SimpleStatementLine"))
	var stmts []ast.Stmt
	for {
		s := p.parseSimpleStatement()
		stmts = append(stmts, s)
		if !p.eat(token.Semi) {
			break
		}
		if p.at(token.Newline) || p.at(token.EndOfFile) {
			break
		}
		if isCompoundStart(p.cur.Kind) {
			p.errors.Add(errors.NewSimpleStmtAndCompoundStmtInSameLine(s.NodeRange()))
			break
		}
	}
	if isCompoundStart(p.cur.Kind) {
		last := stmts[len(stmts)-1]
		if _, invalid := last.(*ast.ExprStmt); !invalid || !isInvalidExpr(last) {
			p.errors.Add(errors.NewSimpleStmtAndCompoundStmtInSameLine(last.NodeRange()))
		}
	} else if !p.atTS(token.Newline, token.EndOfFile, token.Dedent) {
		p.errors.Add(errors.NewSimpleStmtsInSameLine(stmts[len(stmts)-1].NodeRange()))
	}
	if !p.at(token.EndOfFile) {
		p.expect(token.Newline)
	}
	return stmts
}

func isInvalidExpr(s ast.Stmt) bool {
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		return false
	}
	_, ok = es.Value.(*ast.Invalid)
	return ok
}

func (p *parser) parseSimpleStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.Pass:
		r := p.bump(token.Pass).Range
		return &ast.Pass{Range: r}
	case token.Break:
		r := p.bump(token.Break).Range
		return &ast.Break{Range: r}
	case token.Continue:
		r := p.bump(token.Continue).Range
		return &ast.Continue{Range: r}
	case token.Del:
		return p.parseDelete()
	case token.Return:
		return p.parseReturn()
	case token.Raise:
		return p.parseRaise()
	case token.Assert:
		return p.parseAssert()
	case token.Global:
		return p.parseGlobal()
	case token.Nonlocal:
		return p.parseNonlocal()
	case token.Import:
		return p.parseImport()
	case token.From:
		return p.parseImportFrom()
	case token.TypeKw:
		return p.parseTypeAlias()
	case token.Bang, token.Question:
		if p.mode == Ipython {
			return p.parseIpyEscapeCommand()
		}
	}
	return p.parseExprOrAssignStatement()
}

func (p *parser) parseDelete() ast.Stmt {
	defer un(trace(p, "Delete"))
	start := p.nodeStart()
	p.bump(token.Del)
	targets := p.parseTargetList()
	for _, t := range targets {
		ast.SetContext(t, ast.Del)
	}
	return &ast.Delete{Range: p.nodeRange(start), Targets: targets}
}

func (p *parser) parseTargetList() []ast.Expr {
	var out []ast.Expr
	out = append(out, p.parseExprSimple())
	for p.eat(token.Comma) {
		if p.atTS(token.Newline, token.Semi, token.EndOfFile) {
			break
		}
		out = append(out, p.parseExprSimple())
	}
	return out
}

func (p *parser) parseReturn() ast.Stmt {
	defer un(trace(p, "Return"))
	start := p.nodeStart()
	p.bump(token.Return)
	var val ast.Expr
	if !p.atTS(token.Newline, token.Semi, token.EndOfFile) {
		val = p.parseExprs()
	}
	return &ast.Return{Range: p.nodeRange(start), Value: val}
}

func (p *parser) parseRaise() ast.Stmt {
	defer un(trace(p, "Raise"))
	start := p.nodeStart()
	p.bump(token.Raise)
	var exc, cause ast.Expr
	if !p.atTS(token.Newline, token.Semi, token.EndOfFile) {
		exc = p.parseExprSimple()
		if p.eat(token.From) {
			cause = p.parseExprSimple()
		}
	}
	return &ast.Raise{Range: p.nodeRange(start), Exc: exc, Cause: cause}
}

func (p *parser) parseAssert() ast.Stmt {
	defer un(trace(p, "Assert"))
	start := p.nodeStart()
	p.bump(token.Assert)
	test := p.parseExprSimple()
	var msg ast.Expr
	if p.eat(token.Comma) {
		msg = p.parseExprSimple()
	}
	return &ast.Assert{Range: p.nodeRange(start), Test: test, Msg: msg}
}

func (p *parser) parseGlobal() ast.Stmt {
	defer un(trace(p, "Global"))
	start := p.nodeStart()
	p.bump(token.Global)
	names := p.parseIdentList()
	return &ast.Global{Range: p.nodeRange(start), Names: names}
}

func (p *parser) parseNonlocal() ast.Stmt {
	defer un(trace(p, "Nonlocal"))
	start := p.nodeStart()
	p.bump(token.Nonlocal)
	names := p.parseIdentList()
	return &ast.Nonlocal{Range: p.nodeRange(start), Names: names}
}

func (p *parser) parseIdentList() []*ast.Ident {
	var out []*ast.Ident
	out = append(out, p.parseIdent())
	for p.eat(token.Comma) {
		out = append(out, p.parseIdent())
	}
	return out
}

func (p *parser) parseIdent() *ast.Ident {
	start := p.nodeStart()
	name := p.cur.Lit
	if p.at(token.Name) {
		p.next()
	} else {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "NAME"))
	}
	return &ast.Ident{Range: p.nodeRange(start), Name: name}
}

func (p *parser) parseImport() ast.Stmt {
	defer un(trace(p, "Import"))
	start := p.nodeStart()
	p.bump(token.Import)
	names := p.parseAliasList(true)
	return &ast.Import{Range: p.nodeRange(start), Names: names}
}

func (p *parser) parseImportFrom() ast.Stmt {
	defer un(trace(p, "ImportFrom"))
	start := p.nodeStart()
	p.bump(token.From)
	level := 0
	for p.atTS(token.Dot, token.Ellipsis) {
		if p.at(token.Ellipsis) {
			level += 3
		} else {
			level++
		}
		p.next()
	}
	var module *ast.Name
	if p.at(token.Name) {
		module = p.parseDottedName()
	}
	if level == 0 && module == nil {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "module name"))
	}
	p.expect(token.Import)
	var names []*ast.Alias
	if p.eat(token.LParen) {
		names = p.parseAliasList(false)
		p.expect(token.RParen)
	} else if p.eat(token.Mul) {
		names = []*ast.Alias{{Range: p.nodeRange(p.lastTokenEnd - 1), Name: &ast.Ident{Name: "*"}}}
	} else {
		names = p.parseAliasList(false)
	}
	return &ast.ImportFrom{Range: p.nodeRange(start), Module: module, Names: names, Level: level}
}

func (p *parser) parseDottedName() *ast.Name {
	start := p.nodeStart()
	text := p.cur.Lit
	p.expect(token.Name)
	for p.at(token.Dot) && p.peek(1).Kind == token.Name {
		p.next()
		text += "." + p.cur.Lit
		p.next()
	}
	return &ast.Name{Range: p.nodeRange(start), Id: text, Ctx: ast.Load}
}

func (p *parser) parseAliasList(dotted bool) []*ast.Alias {
	var out []*ast.Alias
	out = append(out, p.parseAlias(dotted))
	for p.eat(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		out = append(out, p.parseAlias(dotted))
	}
	return out
}

func (p *parser) parseAlias(dotted bool) *ast.Alias {
	start := p.nodeStart()
	var name *ast.Ident
	if dotted {
		n := p.parseDottedName()
		name = &ast.Ident{Range: n.Range, Name: n.Id}
	} else {
		name = p.parseIdent()
	}
	var asName *ast.Ident
	if p.eat(token.As) {
		asName = p.parseIdent()
	}
	return &ast.Alias{Range: p.nodeRange(start), Name: name, AsName: asName}
}

func (p *parser) parseTypeAlias() ast.Stmt {
	defer un(trace(p, "TypeAlias"))
	start := p.nodeStart()
	p.bump(token.TypeKw)
	nameStart := p.nodeStart()
	id := p.parseIdent()
	name := &ast.Name{Range: id.Range, Id: id.Name, Ctx: ast.Store}
	_ = nameStart
	var tp *ast.TypeParams
	if p.at(token.LBrack) {
		tp = p.parseTypeParams()
	}
	p.expect(token.Assign)
	value := p.parseExprSimple()
	return &ast.TypeAlias{Range: p.nodeRange(start), Name: name, TypeParams: tp, Value: value}
}

func (p *parser) parseIpyEscapeCommand() ast.Stmt {
	defer un(trace(p, "IpyEscapeCommand"))
	start := p.nodeStart()
	kind := byte('!')
	switch p.cur.Kind {
	case token.Bang:
		kind = '!'
	case token.Question:
		kind = '?'
	}
	val := p.cur.Lit
	p.next()
	return &ast.IpyEscapeCommand{Range: p.nodeRange(start), Kind: kind, Value: val}
}

// parseExprOrAssignStatement parses the fallback simple statement
// production: a tuple expression, optionally continued as an Assign,
// AnnAssign, AugAssign, or left as a bare ExprStmt.
func (p *parser) parseExprOrAssignStatement() ast.Stmt {
	defer un(trace(p, "ExprOrAssign"))
	start := p.nodeStart()
	first := p.parseExprs()

	if p.at(token.Colon) {
		p.next()
		annotation := p.parseExprSimple()
		var value ast.Expr
		if p.eat(token.Assign) {
			value = p.parseExprs()
		}
		p.validateAnnAssignTarget(first)
		ast.SetContext(first, ast.Store)
		simple := isSimpleAnnTarget(first)
		return &ast.AnnAssign{Range: p.nodeRange(start), Target: first, Annotation: annotation, Value: value, Simple: simple}
	}

	if op, ok := augAssignOp(p.cur.Kind); ok {
		p.next()
		value := p.parseExprs()
		p.validateAugAssignTarget(first)
		ast.SetContext(first, ast.Store)
		return &ast.AugAssign{Range: p.nodeRange(start), Target: first, Op: op, Value: value}
	}

	if p.at(token.Assign) {
		targets := []ast.Expr{first}
		var value ast.Expr
		for p.eat(token.Assign) {
			value = p.parseExprs()
			if p.at(token.Assign) {
				targets = append(targets, value)
			}
		}
		for _, t := range targets {
			p.validateAssignTarget(t)
			ast.SetContext(t, ast.Store)
		}
		return &ast.Assign{Range: p.nodeRange(start), Targets: targets, Value: value}
	}

	return &ast.ExprStmt{Range: p.nodeRange(start), Value: first}
}

// isSimpleAnnTarget reports whether an annotated-assignment target is a
// bare, non-parenthesized Name -- `(x): int = 1` is not simple even
// though its target is still a Name.
func isSimpleAnnTarget(e ast.Expr) bool {
	n, ok := e.(*ast.Name)
	return ok && n != nil && !n.Parenthesized
}

func augAssignOp(k token.Kind) (ast.Operator, bool) {
	switch k {
	case token.AddAssign:
		return ast.Add, true
	case token.SubAssign:
		return ast.Sub, true
	case token.MulAssign:
		return ast.Mult, true
	case token.AtAssign:
		return ast.MatMult, true
	case token.DivAssign:
		return ast.Div, true
	case token.ModAssign:
		return ast.Mod, true
	case token.PowAssign:
		return ast.Pow, true
	case token.LShiftAssign:
		return ast.LShift, true
	case token.RShiftAssign:
		return ast.RShift, true
	case token.BitAndAssign:
		return ast.BitAnd, true
	case token.BitOrAssign:
		return ast.BitOr, true
	case token.BitXorAssign:
		return ast.BitXor, true
	case token.FloorDivAssign:
		return ast.FloorDiv, true
	}
	return 0, false
}
