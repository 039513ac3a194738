package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/token"
)

// Binding powers from table. Higher binds tighter.
const (
	bpOr         = 4
	bpAnd        = 5
	bpNot        = 6
	bpCompare    = 7
	bpBitOr      = 8
	bpBitXor     = 9
	bpBitAnd     = 10
	bpShift      = 11
	bpAddSub     = 12
	bpMulDiv     = 14
	bpUnary      = 17
	bpPow        = 18
	bpAwaitOperand = 19
)

// parseExprSimple is expr_bp(1): the Pratt entry point with no trailing
// ternary or walrus.
func (p *parser) parseExprSimple() ast.Expr { return p.exprBP(1) }

// parseExpr wraps parseExprSimple with a trailing `if test else orelse`.
func (p *parser) parseExpr() ast.Expr {
	start := p.nodeStart()
	body := p.parseExprSimple()
	if !p.eat(token.If) {
		return body
	}
	test := p.parseExprSimple()
	p.expect(token.Else)
	orelse := p.parseExpr()
	return &ast.IfExp{Range: p.nodeRange(start), Test: test, Body: body, Orelse: orelse}
}

// parseExpr2 additionally permits a trailing `:=` named expression.
func (p *parser) parseExpr2() ast.Expr {
	start := p.nodeStart()
	e := p.parseExpr()
	if !p.at(token.Walrus) {
		return e
	}
	name, ok := e.(*ast.Name)
	if !ok {
		p.errors.Add(errors.NewAssignmentError(e.NodeRange()))
		name = &ast.Name{Range: e.NodeRange(), Id: p.srcText(e.NodeRange()), Ctx: ast.Store}
	} else {
		name.Ctx = ast.Store
	}
	p.next()
	value := p.parseExpr()
	return &ast.NamedExpr{Range: p.nodeRange(start), Target: name, Value: value}
}

// parseExprs additionally folds a trailing `,`-list into a Tuple.
func (p *parser) parseExprs() ast.Expr {
	start := p.nodeStart()
	first := p.parseExpr2()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if !canStartExpr(p.cur.Kind) {
			break
		}
		elts = append(elts, p.parseExpr2())
	}
	return &ast.Tuple{Range: p.nodeRange(start), Elts: elts, Parenthesized: false}
}

func canStartExpr(k token.Kind) bool {
	switch k {
	case token.Name, token.Int, token.Float, token.Complex, token.String,
		token.FStringStart, token.True, token.False, token.None, token.Ellipsis,
		token.LParen, token.LBrack, token.LBrace, token.Add, token.Sub, token.BitNot,
		token.Not, token.Mul, token.Pow, token.Await, token.Lambda, token.Yield,
		token.IpyEscapeCommand:
		return true
	}
	return false
}

// ---------------------------------------------------------------------
// The Pratt loop

func (p *parser) exprBP(minBP int) ast.Expr {
	left := p.parseLHS()
	for {
		switch {
		case bpOr >= minBP && p.at(token.Or):
			left = p.collectBoolOp(left, token.Or, ast.OrOp, bpOr)
		case bpAnd >= minBP && p.at(token.And):
			left = p.collectBoolOp(left, token.And, ast.AndOp, bpAnd)
		case bpCompare >= minBP && !p.hasCtx(ctxForTarget) && p.atComparisonStart():
			left = p.collectCompare(left, bpCompare)
		case bpBitOr >= minBP && p.at(token.BitOr):
			left = p.binBuildOp(left, ast.BitOr, bpBitOr, false)
		case bpBitXor >= minBP && p.at(token.BitXor):
			left = p.binBuildOp(left, ast.BitXor, bpBitXor, false)
		case bpBitAnd >= minBP && p.at(token.BitAnd):
			left = p.binBuildOp(left, ast.BitAnd, bpBitAnd, false)
		case bpShift >= minBP && p.at(token.LShift):
			left = p.binBuildOp(left, ast.LShift, bpShift, false)
		case bpShift >= minBP && p.at(token.RShift):
			left = p.binBuildOp(left, ast.RShift, bpShift, false)
		case bpAddSub >= minBP && p.at(token.Add):
			left = p.binBuildOp(left, ast.Add, bpAddSub, false)
		case bpAddSub >= minBP && p.at(token.Sub):
			left = p.binBuildOp(left, ast.Sub, bpAddSub, false)
		case bpMulDiv >= minBP && p.at(token.Mul):
			left = p.binBuildOp(left, ast.Mult, bpMulDiv, false)
		case bpMulDiv >= minBP && p.at(token.Div):
			left = p.binBuildOp(left, ast.Div, bpMulDiv, false)
		case bpMulDiv >= minBP && p.at(token.FloorDiv):
			left = p.binBuildOp(left, ast.FloorDiv, bpMulDiv, false)
		case bpMulDiv >= minBP && p.at(token.Mod):
			left = p.binBuildOp(left, ast.Mod, bpMulDiv, false)
		case bpMulDiv >= minBP && p.at(token.At):
			left = p.binBuildOp(left, ast.MatMult, bpMulDiv, false)
		case bpPow >= minBP && p.at(token.Pow):
			left = p.binBuildOp(left, ast.Pow, bpPow, true)
		default:
			return left
		}
	}
}

func (p *parser) binBuildOp(left ast.Expr, op ast.Operator, bp int, rightAssoc bool) ast.Expr {
	start := left.NodeRange().Start
	p.next()
	var right ast.Expr
	if rightAssoc {
		right = p.exprBP(bp)
	} else {
		right = p.exprBP(bp + 1)
	}
	return &ast.BinOp{Range: p.nodeRange(start), Left: left, Op: op, Right: right}
}

// collectBoolOp gathers a run of the same boolean operator into a single
// N-ary BoolOp.
func (p *parser) collectBoolOp(left ast.Expr, tk token.Kind, op ast.BoolOpKind, bp int) ast.Expr {
	start := left.NodeRange().Start
	values := []ast.Expr{left}
	for p.at(tk) {
		p.next()
		values = append(values, p.exprBP(bp+1))
	}
	return &ast.BoolOp{Range: p.nodeRange(start), Op: op, Values: values}
}

func (p *parser) atComparisonStart() bool {
	switch p.cur.Kind {
	case token.Lt, token.Gt, token.Le, token.Ge, token.Eq, token.Ne, token.In, token.Is:
		return true
	case token.Not:
		return p.peek(1).Kind == token.In
	}
	return false
}

func (p *parser) tryConsumeCmpOp() (ast.CmpOp, bool) {
	switch p.cur.Kind {
	case token.Lt:
		p.next()
		return ast.CmpLt, true
	case token.Gt:
		p.next()
		return ast.CmpGt, true
	case token.Le:
		p.next()
		return ast.CmpLtE, true
	case token.Ge:
		p.next()
		return ast.CmpGtE, true
	case token.Eq:
		p.next()
		return ast.CmpEq, true
	case token.Ne:
		p.next()
		return ast.CmpNotEq, true
	case token.In:
		p.next()
		return ast.CmpIn, true
	case token.Is:
		p.next()
		if p.eat(token.Not) {
			return ast.CmpIsNot, true
		}
		return ast.CmpIs, true
	case token.Not:
		if p.peek(1).Kind == token.In {
			p.next()
			p.next()
			return ast.CmpNotIn, true
		}
	}
	return 0, false
}

// collectCompare gathers a comparison chain into a single Compare node
//: `a < b == c` is one node, not nested BinOps.
func (p *parser) collectCompare(left ast.Expr, bp int) ast.Expr {
	start := left.NodeRange().Start
	var ops []ast.CmpOp
	var comparators []ast.Expr
	for {
		op, ok := p.tryConsumeCmpOp()
		if !ok {
			break
		}
		ops = append(ops, op)
		comparators = append(comparators, p.exprBP(bp+1))
	}
	return &ast.Compare{Range: p.nodeRange(start), Left: left, Ops: ops, Comparators: comparators}
}

// ---------------------------------------------------------------------
// LHS dispatch

func (p *parser) parseLHS() ast.Expr {
	switch {
	case p.at(token.Add):
		start := p.nodeStart()
		p.next()
		return &ast.UnaryOp{Range: p.nodeRange(start), Op: ast.UAdd, Operand: p.exprBP(bpUnary)}
	case p.at(token.Sub):
		start := p.nodeStart()
		p.next()
		return &ast.UnaryOp{Range: p.nodeRange(start), Op: ast.USub, Operand: p.exprBP(bpUnary)}
	case p.at(token.BitNot):
		start := p.nodeStart()
		p.next()
		return &ast.UnaryOp{Range: p.nodeRange(start), Op: ast.Invert, Operand: p.exprBP(bpUnary)}
	case p.at(token.Not):
		start := p.nodeStart()
		p.next()
		return &ast.UnaryOp{Range: p.nodeRange(start), Op: ast.NotOp, Operand: p.exprBP(bpNot)}
	case p.at(token.Mul):
		start := p.nodeStart()
		p.next()
		return &ast.Starred{Range: p.nodeRange(start), Value: p.exprBP(1), Ctx: ast.Load}
	case p.at(token.Await):
		return p.parseAwait()
	case p.at(token.Lambda):
		return p.parseLambda()
	default:
		return p.parsePostfix(p.parseAtom())
	}
}

func (p *parser) parseAwait() ast.Expr {
	start := p.nodeStart()
	p.bump(token.Await)
	value := p.exprBP(bpAwaitOperand)
	if s, ok := value.(*ast.Starred); ok {
		p.errors.AddNewf(s.Range, "starred expression not allowed after await")
	}
	return &ast.Await{Range: p.nodeRange(start), Value: value}
}

// parseLambda implements : a lambda body directly starting
// with yield, `*` or `**` is rejected, but parsing continues best-effort.
func (p *parser) parseLambda() ast.Expr {
	start := p.nodeStart()
	p.bump(token.Lambda)
	params := p.parseParameters(token.Colon)
	p.expect(token.Colon)
	switch p.cur.Kind {
	case token.Yield:
		p.errors.AddNewf(p.curRange(), "yield not allowed in lambda body")
	case token.Mul:
		p.errors.AddNewf(p.curRange(), "starred expression not allowed in lambda body")
	case token.Pow:
		p.errors.AddNewf(p.curRange(), "dict unpacking not allowed in lambda body")
	}
	body := p.parseExpr()
	return &ast.Lambda{Range: p.nodeRange(start), Params: params, Body: body}
}

// parseYield implements : a bare `yield` yields Yield(nil);
// `yield from` forbids a starred or unparenthesized-tuple operand.
func (p *parser) parseYield() ast.Expr {
	start := p.nodeStart()
	p.bump(token.Yield)
	if p.eat(token.From) {
		value := p.parseExprSimple()
		switch v := value.(type) {
		case *ast.Starred:
			p.errors.AddNewf(v.Range, "starred expression not allowed in yield from")
		case *ast.Tuple:
			if !v.Parenthesized {
				p.errors.AddNewf(v.Range, "unparenthesized tuple not allowed in yield from")
			}
		}
		return &ast.YieldFrom{Range: p.nodeRange(start), Value: value}
	}
	if !canStartExpr(p.cur.Kind) {
		return &ast.Yield{Range: p.nodeRange(start), Value: nil}
	}
	value := p.parseExprs()
	return &ast.Yield{Range: p.nodeRange(start), Value: value}
}

// ---------------------------------------------------------------------
// Postfix: call, subscript, attribute

func (p *parser) parsePostfix(e ast.Expr) ast.Expr {
	start := e.NodeRange().Start
	for {
		switch {
		case p.at(token.Dot):
			p.next()
			attr := p.parseIdent()
			e = &ast.Attribute{Range: p.nodeRange(start), Value: e, Attr: attr, Ctx: ast.Load}
		case p.at(token.LParen):
			p.next()
			argsStart := p.nodeStart()
			args, keywords := p.parseCallArgLists(token.RParen)
			argsRange := p.nodeRange(argsStart)
			p.expect(token.RParen)
			p.validateArguments(args, keywords)
			e = &ast.Call{Range: p.nodeRange(start), Func: e, Args: &ast.Arguments{Range: argsRange, Args: args, Keywords: keywords}}
		case p.at(token.LBrack):
			e = p.parseSubscript(e)
		case p.mode == Ipython && p.at(token.Question):
			// `?`/`??` postfix help: the
			// marker is folded into Value since IpyEscapeCommand.Kind's
			// one-byte payload can't itself distinguish "?" from "??".
			exprText := p.srcText(e.NodeRange())
			p.next()
			marker := "?"
			if p.eat(token.Question) {
				marker = "??"
			}
			e = &ast.IpyEscapeCommand{Range: p.nodeRange(start), Kind: '?', Value: marker + exprText}
		default:
			return e
		}
	}
}

// ---------------------------------------------------------------------
// Atoms

func (p *parser) parseAtom() ast.Expr {
	switch p.cur.Kind {
	case token.Int:
		t := p.bump(token.Int)
		return &ast.NumberLiteral{Range: t.Range, Kind: ast.NumberInt, Value: t.Lit}
	case token.Float:
		t := p.bump(token.Float)
		return &ast.NumberLiteral{Range: t.Range, Kind: ast.NumberFloat, Value: t.Lit}
	case token.Complex:
		t := p.bump(token.Complex)
		return &ast.NumberLiteral{Range: t.Range, Kind: ast.NumberComplex, Value: t.Lit}
	case token.True:
		t := p.bump(token.True)
		return &ast.BooleanLiteral{Range: t.Range, Value: true}
	case token.False:
		t := p.bump(token.False)
		return &ast.BooleanLiteral{Range: t.Range, Value: false}
	case token.None:
		t := p.bump(token.None)
		return &ast.NoneLiteral{Range: t.Range}
	case token.Ellipsis:
		t := p.bump(token.Ellipsis)
		return &ast.EllipsisLiteral{Range: t.Range}
	case token.Name:
		t := p.bump(token.Name)
		return &ast.Name{Range: t.Range, Id: t.Lit, Ctx: ast.Load}
	case token.String, token.FStringStart:
		return p.parseStringRun()
	case token.LParen:
		return p.parseParenForm()
	case token.LBrack:
		return p.parseBracketForm()
	case token.LBrace:
		return p.parseBraceForm()
	case token.Yield:
		return p.parseYield()
	case token.IpyEscapeCommand:
		if p.mode == Ipython {
			t := p.bump(token.IpyEscapeCommand)
			return &ast.IpyEscapeCommand{Range: t.Range, Kind: t.IpyKind, Value: t.Lit}
		}
	}
	start := p.nodeStart()
	text := p.srcText(p.cur.Range)
	p.errors.Add(errors.NewUnexpectedToken(p.cur.Range, p.cur.Kind.String()))
	if !p.at(token.EndOfFile) {
		p.next()
	}
	return &ast.Invalid{Range: p.nodeRange(start), Text: text}
}

// ---------------------------------------------------------------------
// Parentheses, brackets, braces

func (p *parser) parseParenForm() ast.Expr {
	start := p.nodeStart()
	p.bump(token.LParen)
	if p.atTS(token.Newline, token.EndOfFile) {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), ")"))
		return &ast.Tuple{Range: p.nodeRange(start), Parenthesized: true}
	}
	if p.at(token.RParen) {
		p.next()
		return &ast.Tuple{Range: p.nodeRange(start), Parenthesized: true}
	}
	if p.at(token.Yield) {
		y := p.parseYield()
		p.expect(token.RParen)
		return y
	}
	p.pushCtx(ctxParenthesizedExpr)
	first := p.parseExpr2()
	p.popCtx()
	switch {
	case p.at(token.Comma):
		elts := []ast.Expr{first}
		for p.eat(token.Comma) {
			if p.at(token.RParen) {
				break
			}
			p.pushCtx(ctxParenthesizedExpr)
			elts = append(elts, p.parseExpr2())
			p.popCtx()
		}
		p.expect(token.RParen)
		return &ast.Tuple{Range: p.nodeRange(start), Elts: elts, Parenthesized: true}
	case p.atTS(token.For, token.Async):
		generators := p.parseComprehensionClauses()
		p.expect(token.RParen)
		return &ast.GeneratorExp{Range: p.nodeRange(start), Elt: first, Generators: generators}
	default:
		p.expect(token.RParen)
		if n, ok := first.(*ast.Name); ok {
			n.Parenthesized = true
		}
		return first
	}
}

func (p *parser) parseBracketForm() ast.Expr {
	start := p.nodeStart()
	p.bump(token.LBrack)
	if p.at(token.RBrack) {
		p.next()
		return &ast.List{Range: p.nodeRange(start), Ctx: ast.Load}
	}
	if p.atTS(token.Newline, token.EndOfFile) {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "]"))
		return &ast.List{Range: p.nodeRange(start), Ctx: ast.Load}
	}
	first := p.parseListOrSetElt()
	switch {
	case p.atTS(token.For, token.Async):
		generators := p.parseComprehensionClauses()
		p.expect(token.RBrack)
		return &ast.ListComp{Range: p.nodeRange(start), Elt: first, Generators: generators}
	default:
		elts := []ast.Expr{first}
		for p.eat(token.Comma) {
			if p.at(token.RBrack) {
				break
			}
			elts = append(elts, p.parseListOrSetElt())
		}
		p.expect(token.RBrack)
		return &ast.List{Range: p.nodeRange(start), Elts: elts, Ctx: ast.Load}
	}
}

func (p *parser) parseListOrSetElt() ast.Expr {
	if p.at(token.Mul) {
		start := p.nodeStart()
		p.next()
		v := p.parseExprSimple()
		return &ast.Starred{Range: p.nodeRange(start), Value: v, Ctx: ast.Load}
	}
	return p.parseExpr2()
}

func (p *parser) parseBraceForm() ast.Expr {
	start := p.nodeStart()
	p.bump(token.LBrace)
	if p.at(token.RBrace) {
		p.next()
		return &ast.Dict{Range: p.nodeRange(start)}
	}
	if p.atTS(token.Newline, token.EndOfFile) {
		p.errors.Add(errors.NewExpectedToken(p.curRange(), p.cur.Kind.String(), "}"))
		return &ast.Dict{Range: p.nodeRange(start)}
	}
	if p.at(token.Pow) {
		return p.parseDictBody(start, nil, nil)
	}
	first := p.parseExpr2()
	if p.eat(token.Colon) {
		value := p.parseExpr2()
		return p.parseDictBody(start, first, value)
	}
	switch {
	case p.atTS(token.For, token.Async):
		generators := p.parseComprehensionClauses()
		p.expect(token.RBrace)
		return &ast.SetComp{Range: p.nodeRange(start), Elt: first, Generators: generators}
	default:
		elts := []ast.Expr{first}
		for p.eat(token.Comma) {
			if p.at(token.RBrace) {
				break
			}
			elts = append(elts, p.parseExpr2())
		}
		p.expect(token.RBrace)
		return &ast.Set{Range: p.nodeRange(start), Elts: elts}
	}
}

func (p *parser) parseDictBody(start int, firstKey, firstValue ast.Expr) ast.Expr {
	var keys, values []ast.Expr
	parseOneEntry := func() {
		if p.at(token.Pow) {
			p.next()
			v := p.parseExprSimple()
			keys = append(keys, nil)
			values = append(values, v)
			return
		}
		k := p.parseExpr2()
		p.expect(token.Colon)
		v := p.parseExpr2()
		keys = append(keys, k)
		values = append(values, v)
	}
	if firstKey != nil || firstValue != nil {
		keys = append(keys, firstKey)
		values = append(values, firstValue)
	} else {
		parseOneEntry()
	}
	if p.atTS(token.For, token.Async) {
		if keys[0] == nil {
			p.errors.AddNewf(p.curRange(), "dict unpacking cannot be used in dict comprehension")
		}
		generators := p.parseComprehensionClauses()
		p.expect(token.RBrace)
		return &ast.DictComp{Range: p.nodeRange(start), Key: keys[0], Value: values[0], Generators: generators}
	}
	for p.eat(token.Comma) {
		if p.at(token.RBrace) {
			break
		}
		parseOneEntry()
	}
	p.expect(token.RBrace)
	return &ast.Dict{Range: p.nodeRange(start), Keys: keys, Values: values}
}

// ---------------------------------------------------------------------
// Slices

func (p *parser) parseSubscript(value ast.Expr) ast.Expr {
	start := value.NodeRange().Start
	p.bump(token.LBrack)
	if p.at(token.RBrack) {
		p.errors.Add(errors.NewEmptySlice(p.curRange()))
		r := p.curRange()
		p.next()
		return &ast.Subscript{Range: p.nodeRange(start), Value: value, Slice: &ast.Invalid{Range: r}, Ctx: ast.Load}
	}
	slice := p.parseSubscriptBody()
	p.expect(token.RBrack)
	return &ast.Subscript{Range: p.nodeRange(start), Value: value, Slice: slice, Ctx: ast.Load}
}

func (p *parser) parseSubscriptBody() ast.Expr {
	start := p.nodeStart()
	first := p.parseOneSliceItem()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if p.at(token.RBrack) {
			break
		}
		elts = append(elts, p.parseOneSliceItem())
	}
	return &ast.Tuple{Range: p.nodeRange(start), Elts: elts, Parenthesized: false}
}

// parseOneSliceItem implements slice grammar: a NamedExpr
// as lower disables slice-form detection entirely (the colon, if any,
// belongs to something else -- a nested walrus'd index, not this slice).
func (p *parser) parseOneSliceItem() ast.Expr {
	start := p.nodeStart()
	var lower ast.Expr
	if !p.atTS(token.Colon, token.Comma, token.RBrack) {
		lower = p.parseExpr2()
	}
	if _, isNamed := lower.(*ast.NamedExpr); isNamed {
		return lower
	}
	if !p.at(token.Colon) {
		if lower != nil {
			return lower
		}
		return &ast.Invalid{Range: p.nodeRange(start), Text: p.srcText(p.nodeRange(start))}
	}
	p.next()
	var upper ast.Expr
	if !p.atTS(token.Colon, token.Comma, token.RBrack) {
		upper = p.parseExpr2()
	}
	var step ast.Expr
	if p.eat(token.Colon) {
		if !p.atTS(token.Comma, token.RBrack) {
			step = p.parseExpr2()
		}
	}
	return &ast.Slice{Range: p.nodeRange(start), Lower: lower, Upper: upper, Step: step}
}

// ---------------------------------------------------------------------
// Calls and arguments

func (p *parser) parseCallArgLists(end token.Kind) ([]ast.Expr, []*ast.Keyword) {
	p.pushCtx(ctxArguments)
	defer p.popCtx()
	var args []ast.Expr
	var keywords []*ast.Keyword
	seenKeyword := false
	seenDoubleStar := false
	for !p.at(end) && !p.at(token.EndOfFile) {
		switch {
		case p.at(token.Pow):
			start := p.nodeStart()
			p.next()
			value := p.parseExprSimple()
			keywords = append(keywords, &ast.Keyword{Range: p.nodeRange(start), Name: nil, Value: value})
			seenDoubleStar = true
			seenKeyword = true
		case p.at(token.Mul):
			start := p.nodeStart()
			p.next()
			value := p.parseExprSimple()
			if seenDoubleStar {
				p.errors.Add(errors.NewUnpackedArgumentError(p.nodeRange(start)))
			}
			args = append(args, &ast.Starred{Range: p.nodeRange(start), Value: value, Ctx: ast.Load})
		default:
			start := p.nodeStart()
			value := p.parseExpr2()
			if p.atTS(token.For, token.Async) {
				generators := p.parseComprehensionClauses()
				args = append(args, &ast.GeneratorExp{Range: p.nodeRange(start), Elt: value, Generators: generators})
			} else if p.eat(token.Assign) {
				var ident *ast.Ident
				if name, ok := value.(*ast.Name); ok {
					ident = &ast.Ident{Range: name.Range, Name: name.Id}
				} else {
					p.errors.Add(errors.NewExpectedToken(value.NodeRange(), "expr", "NAME"))
					ident = &ast.Ident{Range: value.NodeRange(), Name: p.srcText(value.NodeRange())}
				}
				kwValue := p.parseExprSimple()
				keywords = append(keywords, &ast.Keyword{Range: p.nodeRange(start), Name: ident, Value: kwValue})
				seenKeyword = true
			} else {
				if seenKeyword {
					p.errors.Add(errors.NewPositionalArgumentError(p.nodeRange(start)))
				}
				args = append(args, value)
			}
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	return args, keywords
}

// validateArguments checks keyword-name uniqueness; positional-after-
// keyword is already reported as each offending argument is parsed.
func (p *parser) validateArguments(args []ast.Expr, keywords []*ast.Keyword) {
	_ = args
	seen := map[string]bool{}
	for _, kw := range keywords {
		if kw.Name == nil {
			continue
		}
		if seen[kw.Name.Name] {
			p.errors.AddNewf(kw.Range, "keyword argument %q repeated", kw.Name.Name)
		}
		seen[kw.Name.Name] = true
	}
}

// ---------------------------------------------------------------------
// Parameters (shared by function defs and lambdas, /§4.7.6)

func (p *parser) parseParameters(end token.Kind) *ast.Parameters {
	start := p.nodeStart()
	params := &ast.Parameters{}
	var current []*ast.Parameter
	seenDefault := false
	inKwOnly := false
	kwargSeen := false

	for !p.at(end) && !p.at(token.EndOfFile) {
		if kwargSeen {
			p.errors.Add(errors.NewParamFollowsVarKeywordParam(p.curRange()))
		}
		switch {
		case p.at(token.Div):
			p.next()
			params.PosOnlyParams = current
			current = nil
		case p.at(token.Pow):
			pstart := p.nodeStart()
			p.next()
			name := p.parseIdent()
			var ann ast.Expr
			if p.eat(token.Colon) {
				ann = p.parseExprSimple()
			}
			params.KwArg = &ast.Parameter{Range: p.nodeRange(pstart), Name: name, Annotation: ann}
			kwargSeen = true
		case p.at(token.Mul):
			pstart := p.nodeStart()
			p.next()
			inKwOnly = true
			if p.at(token.Name) {
				name := p.parseIdent()
				var ann ast.Expr
				if p.eat(token.Colon) {
					ann = p.parseExprSimple()
				}
				params.VarArg = &ast.Parameter{Range: p.nodeRange(pstart), Name: name, Annotation: ann}
			}
		default:
			pstart := p.nodeStart()
			name := p.parseIdent()
			var ann, def ast.Expr
			if p.eat(token.Colon) {
				ann = p.parseExprSimple()
			}
			if p.eat(token.Assign) {
				def = p.parseExprSimple()
			}
			param := &ast.Parameter{Range: p.nodeRange(pstart), Name: name, Annotation: ann, Default: def}
			if inKwOnly {
				params.KwOnlyParams = append(params.KwOnlyParams, param)
			} else {
				if def != nil {
					seenDefault = true
				} else if seenDefault {
					p.errors.Add(errors.NewDefaultArgumentError(param.Range))
				}
				current = append(current, param)
			}
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	params.Params = current
	params.Range = p.nodeRange(start)
	return params
}

// ---------------------------------------------------------------------
// Comprehensions

func (p *parser) parseComprehensionClauses() []*ast.Comprehension {
	var gens []*ast.Comprehension
	for p.atTS(token.For, token.Async) {
		gens = append(gens, p.parseComprehensionClause())
	}
	return gens
}

func (p *parser) parseComprehensionClause() *ast.Comprehension {
	start := p.nodeStart()
	isAsync := p.eat(token.Async)
	p.expect(token.For)
	p.pushCtx(ctxForTarget)
	target := p.parseComprehensionTarget()
	p.popCtx()
	ast.SetContext(target, ast.Store)
	p.expect(token.In)
	iter := p.parseExprSimple()
	var ifs []ast.Expr
	for p.at(token.If) {
		p.next()
		ifs = append(ifs, p.parseExprSimple())
	}
	return &ast.Comprehension{Range: p.nodeRange(start), IsAsync: isAsync, Target: target, Iter: iter, Ifs: ifs}
}

func (p *parser) parseComprehensionTarget() ast.Expr {
	start := p.nodeStart()
	first := p.parseExprSimple()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	for p.eat(token.Comma) {
		if p.at(token.In) {
			break
		}
		elts = append(elts, p.parseExprSimple())
	}
	return &ast.Tuple{Range: p.nodeRange(start), Elts: elts, Parenthesized: false}
}
