package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/token"
)

// parseMatch implements : the soft-keyword filter has already
// promoted this statement's leading Name to token.Match.
func (p *parser) parseMatch() ast.Stmt {
	defer un(trace(p, "Match"))
	start := p.nodeStart()
	p.bump(token.Match)
	subject := p.parseExprs()
	p.expectAndRecover(token.Colon)
	p.eat(token.Newline)
	p.expect(token.Indent)
	var cases []*ast.MatchCase
	for p.at(token.Case) {
		cases = append(cases, p.parseMatchCase())
	}
	p.eat(token.Dedent)
	return &ast.Match{Range: p.nodeRange(start), Subject: subject, Cases: cases}
}

func (p *parser) parseMatchCase() *ast.MatchCase {
	start := p.nodeStart()
	p.bump(token.Case)
	pattern := p.parsePatterns()
	var guard ast.Expr
	if p.eat(token.If) {
		guard = p.parseExprSimple()
	}
	p.expectAndRecover(token.Colon)
	body := p.parseBody()
	return &ast.MatchCase{Range: p.nodeRange(start), Pattern: pattern, Guard: guard, Body: body}
}

// parsePatterns is the case header's `patterns` production: a single
// pattern, or an open (unparenthesized) comma-list folded into a
// MatchSequence.
func (p *parser) parsePatterns() ast.Pattern {
	start := p.nodeStart()
	var first ast.Pattern
	if p.at(token.Mul) {
		first = p.parseStarPattern()
	} else {
		first = p.parseAsPattern()
	}
	if !p.at(token.Comma) {
		return first
	}
	patterns := []ast.Pattern{first}
	for p.eat(token.Comma) {
		if p.atTS(token.Colon, token.If) {
			break
		}
		if p.at(token.Mul) {
			patterns = append(patterns, p.parseStarPattern())
		} else {
			patterns = append(patterns, p.parseAsPattern())
		}
	}
	return &ast.MatchSequence{Range: p.nodeRange(start), Patterns: patterns}
}

// parseAsPattern is an or-pattern optionally bound with `as NAME`.
func (p *parser) parseAsPattern() ast.Pattern {
	start := p.nodeStart()
	pat := p.parseOrPattern()
	if p.eat(token.As) {
		name := p.parseIdent()
		return &ast.MatchAs{Range: p.nodeRange(start), Pattern: pat, Name: name}
	}
	return pat
}

// parseOrPattern collapses a `|`-chain left-associatively into one MatchOr,
// matching the N-ary collection style exprBP uses for BoolOp.
func (p *parser) parseOrPattern() ast.Pattern {
	start := p.nodeStart()
	first := p.parseClosedPattern()
	if !p.at(token.BitOr) {
		return first
	}
	patterns := []ast.Pattern{first}
	for p.eat(token.BitOr) {
		patterns = append(patterns, p.parseClosedPattern())
	}
	return &ast.MatchOr{Range: p.nodeRange(start), Patterns: patterns}
}

func (p *parser) parseStarPattern() ast.Pattern {
	start := p.nodeStart()
	p.bump(token.Mul)
	if p.at(token.Name) && p.cur.Lit == "_" {
		p.next()
		return &ast.MatchStar{Range: p.nodeRange(start)}
	}
	name := p.parseIdent()
	return &ast.MatchStar{Range: p.nodeRange(start), Name: name}
}

func (p *parser) parseClosedPattern() ast.Pattern {
	start := p.nodeStart()
	switch {
	case p.atTS(token.None, token.True, token.False):
		value := p.parseAtom()
		return &ast.MatchSingleton{Range: p.nodeRange(start), Value: value}
	case p.atTS(token.Int, token.Float, token.Complex, token.String, token.FStringStart):
		value := p.parseAtom()
		return &ast.MatchValue{Range: p.nodeRange(start), Value: value}
	case p.at(token.Sub):
		return p.parseSignedNumberPattern()
	case p.at(token.Name) && p.cur.Lit == "_":
		p.next()
		return &ast.MatchAs{Range: p.nodeRange(start)}
	case p.at(token.Name):
		return p.parseCaptureOrValueOrClassPattern()
	case p.at(token.LParen):
		return p.parseGroupOrSequencePattern(token.LParen, token.RParen)
	case p.at(token.LBrack):
		return p.parseGroupOrSequencePattern(token.LBrack, token.RBrack)
	case p.at(token.LBrace):
		return p.parseMappingPattern()
	default:
		text := p.srcText(p.cur.Range)
		r := p.cur.Range
		p.errors.Add(errors.NewInvalidMatchPatternLiteral(r, text))
		if !p.at(token.EndOfFile) {
			p.next()
		}
		return &ast.InvalidPattern{Range: r, Text: text}
	}
}

// parseSignedNumberPattern handles `-1`, `-1.0j`, and the binary
// real(+|-)imaginary complex-literal pattern form.
func (p *parser) parseSignedNumberPattern() ast.Pattern {
	start := p.nodeStart()
	left := p.parseSignedNumber()
	if p.atTS(token.Add, token.Sub) {
		op := p.cur.Kind
		p.next()
		right := p.parseUnsignedNumberLiteral()
		binOp := ast.Add
		if op == token.Sub {
			binOp = ast.Sub
		}
		combined := &ast.BinOp{Range: p.nodeRange(start), Left: left, Op: binOp, Right: right}
		return &ast.MatchValue{Range: p.nodeRange(start), Value: combined}
	}
	return &ast.MatchValue{Range: p.nodeRange(start), Value: left}
}

func (p *parser) parseSignedNumber() ast.Expr {
	start := p.nodeStart()
	p.bump(token.Sub)
	operand := p.parseUnsignedNumberLiteral()
	return &ast.UnaryOp{Range: p.nodeRange(start), Op: ast.USub, Operand: operand}
}

func (p *parser) parseUnsignedNumberLiteral() ast.Expr {
	switch p.cur.Kind {
	case token.Int, token.Float, token.Complex:
		return p.parseAtom()
	default:
		start := p.nodeStart()
		text := p.srcText(p.cur.Range)
		p.errors.Add(errors.NewInvalidMatchPatternLiteral(p.cur.Range, text))
		if !p.at(token.EndOfFile) {
			p.next()
		}
		return &ast.Invalid{Range: p.nodeRange(start), Text: text}
	}
}

// parseCaptureOrValueOrClassPattern dispatches a Name-led closed_pattern:
// a bare name is a capture, a dotted chain is a value pattern, and a
// dotted chain followed by `(` is a class pattern.
func (p *parser) parseCaptureOrValueOrClassPattern() ast.Pattern {
	start := p.nodeStart()
	name := p.parseIdent()
	if !p.atTS(token.Dot, token.LParen) {
		return &ast.MatchAs{Range: p.nodeRange(start), Name: name}
	}
	var value ast.Expr = &ast.Name{Range: name.Range, Id: name.Name, Ctx: ast.Load}
	for p.eat(token.Dot) {
		attr := p.parseIdent()
		value = &ast.Attribute{Range: p.nodeRange(start), Value: value, Attr: attr, Ctx: ast.Load}
	}
	if p.at(token.LParen) {
		return p.parseClassPatternArgs(start, value)
	}
	return &ast.MatchValue{Range: p.nodeRange(start), Value: value}
}

// parseClassPatternArgs implements positional-before-keyword
// ordering rule for `Cls(pos, ..., kwd=pat, ...)`.
func (p *parser) parseClassPatternArgs(start int, cls ast.Expr) ast.Pattern {
	p.bump(token.LParen)
	var positional []ast.Pattern
	var kwdAttrs []*ast.Ident
	var kwdPatterns []ast.Pattern
	seenKeyword := false
	for !p.at(token.RParen) && !p.at(token.EndOfFile) {
		if p.at(token.Name) && p.peek(1).Kind == token.Assign {
			attr := p.parseIdent()
			p.next()
			val := p.parseAsPattern()
			kwdAttrs = append(kwdAttrs, attr)
			kwdPatterns = append(kwdPatterns, val)
			seenKeyword = true
		} else {
			pat := p.parseAsPattern()
			if seenKeyword {
				p.errors.Add(errors.NewPositionalArgumentError(pat.NodeRange()))
			}
			positional = append(positional, pat)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return &ast.MatchClass{Range: p.nodeRange(start), Cls: cls, Patterns: positional, KwdAttrs: kwdAttrs, KwdPatterns: kwdPatterns}
}

// parseGroupOrSequencePattern implements distinction: `(`
// wraps a plain group (no comma -> the inner pattern itself) unless a comma
// makes it a sequence, while `[` is always a sequence regardless of arity.
func (p *parser) parseGroupOrSequencePattern(open, close token.Kind) ast.Pattern {
	start := p.nodeStart()
	p.bump(open)
	if p.at(close) {
		p.next()
		return &ast.MatchSequence{Range: p.nodeRange(start)}
	}
	var first ast.Pattern
	if p.at(token.Mul) {
		first = p.parseStarPattern()
	} else {
		first = p.parseAsPattern()
	}
	if !p.at(token.Comma) {
		p.expect(close)
		if open == token.LParen {
			return first
		}
		return &ast.MatchSequence{Range: p.nodeRange(start), Patterns: []ast.Pattern{first}}
	}
	patterns := []ast.Pattern{first}
	for p.eat(token.Comma) {
		if p.at(close) {
			break
		}
		if p.at(token.Mul) {
			patterns = append(patterns, p.parseStarPattern())
		} else {
			patterns = append(patterns, p.parseAsPattern())
		}
	}
	p.expect(close)
	return &ast.MatchSequence{Range: p.nodeRange(start), Patterns: patterns}
}

func (p *parser) parseMappingPattern() ast.Pattern {
	start := p.nodeStart()
	p.bump(token.LBrace)
	var keys []ast.Expr
	var values []ast.Pattern
	var rest *ast.Ident
	for !p.at(token.RBrace) && !p.at(token.EndOfFile) {
		if p.at(token.Pow) {
			p.next()
			rest = p.parseIdent()
		} else {
			key := p.parseMappingPatternKey()
			p.expect(token.Colon)
			val := p.parseAsPattern()
			keys = append(keys, key)
			values = append(values, val)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return &ast.MatchMapping{Range: p.nodeRange(start), Keys: keys, Values: values, Rest: rest}
}

// parseMappingPatternKey implements the mapping-pattern key grammar: a
// literal, or a dotted-name value pattern -- never a bare capture name.
func (p *parser) parseMappingPatternKey() ast.Expr {
	if p.at(token.Sub) {
		return p.parseSignedNumberKeyExpr()
	}
	if p.at(token.Name) {
		start := p.nodeStart()
		name := p.parseIdent()
		var value ast.Expr = &ast.Name{Range: name.Range, Id: name.Name, Ctx: ast.Load}
		for p.eat(token.Dot) {
			attr := p.parseIdent()
			value = &ast.Attribute{Range: p.nodeRange(start), Value: value, Attr: attr, Ctx: ast.Load}
		}
		return value
	}
	return p.parseAtom()
}

func (p *parser) parseSignedNumberKeyExpr() ast.Expr {
	start := p.nodeStart()
	p.bump(token.Sub)
	operand := p.parseUnsignedNumberLiteral()
	left := ast.Expr(&ast.UnaryOp{Range: p.nodeRange(start), Op: ast.USub, Operand: operand})
	if p.atTS(token.Add, token.Sub) {
		op := p.cur.Kind
		p.next()
		right := p.parseUnsignedNumberLiteral()
		binOp := ast.Add
		if op == token.Sub {
			binOp = ast.Sub
		}
		left = &ast.BinOp{Range: p.nodeRange(start), Left: left, Op: binOp, Right: right}
	}
	return left
}
