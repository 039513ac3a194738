package parser

import (
	"strings"

	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/literal"
	"github.com/pyast-go/pyparse/token"
)

// stringPiece is one element of an implicit string-literal concatenation
// run: a plain str, a bytes literal, an f-string, or an Invalid placeholder
// left by a decode failure.
type stringPiece struct {
	isBytes bool
	isF     bool
	invalid *ast.Invalid
	str     *ast.StringLiteral
	bts     *ast.BytesLiteral
	fstr    *ast.FString
	r       token.Range
}

// parseStringRun collects a run of adjacent String/FStringStart atoms into
// one literal node, decoding payloads through package literal and folding
// plain-string runs together the way Python's implicit concatenation does.
func (p *parser) parseStringRun() ast.Expr {
	start := p.nodeStart()
	var pieces []stringPiece
	for p.atTS(token.String, token.FStringStart) {
		if p.at(token.String) {
			t := p.bump(token.String)
			value, kind, err := literal.Decode(t.Lit, literal.DecodeOptions{
				Quote: t.Quote, Triple: t.Triple, Raw: t.RawFlag, AsBytes: t.BytesLit,
			})
			switch {
			case err != nil:
				p.errors.Add(errors.NewLexical(t.Range, "%s", err))
				pieces = append(pieces, stringPiece{invalid: &ast.Invalid{Range: t.Range, Text: p.srcText(t.Range)}, r: t.Range})
			case kind == literal.Bytes:
				pieces = append(pieces, stringPiece{isBytes: true, bts: &ast.BytesLiteral{Range: t.Range, Value: []byte(value)}, r: t.Range})
			default:
				pieces = append(pieces, stringPiece{str: &ast.StringLiteral{Range: t.Range, Value: value}, r: t.Range})
			}
		} else {
			f := p.parseFString()
			pieces = append(pieces, stringPiece{isF: true, fstr: f, r: f.Range})
		}
	}
	return p.combineStringPieces(start, pieces)
}

func (p *parser) combineStringPieces(start int, pieces []stringPiece) ast.Expr {
	if len(pieces) == 0 {
		return &ast.Invalid{Range: p.nodeRange(start)}
	}
	var anyF, anyBytes, anyStr, anyInvalid bool
	for _, pc := range pieces {
		switch {
		case pc.invalid != nil:
			anyInvalid = true
		case pc.isF:
			anyF = true
		case pc.isBytes:
			anyBytes = true
		default:
			anyStr = true
		}
	}
	if anyInvalid {
		return &ast.Invalid{Range: p.nodeRange(start), Text: p.srcText(p.nodeRange(start))}
	}
	if anyBytes && (anyF || anyStr) {
		p.errors.AddNewf(p.nodeRange(start), "cannot mix bytes and non-bytes literals")
	}
	if !anyF {
		if anyBytes {
			var buf []byte
			for _, pc := range pieces {
				if pc.bts != nil {
					buf = append(buf, pc.bts.Value...)
				}
			}
			return &ast.BytesLiteral{Range: p.nodeRange(start), Value: buf}
		}
		if len(pieces) == 1 {
			return pieces[0].str
		}
		var sb strings.Builder
		for _, pc := range pieces {
			sb.WriteString(pc.str.Value)
		}
		return &ast.StringLiteral{Range: p.nodeRange(start), Value: sb.String()}
	}
	if len(pieces) == 1 {
		return pieces[0].fstr
	}
	var elems []ast.FStringElement
	for _, pc := range pieces {
		switch {
		case pc.isF:
			elems = append(elems, pc.fstr.Elements...)
		case pc.isBytes:
			elems = append(elems, &ast.FStringInvalid{Range: pc.r, Text: p.srcText(pc.r)})
		default:
			elems = append(elems, &ast.FStringLiteral{Range: pc.r, Value: pc.str.Value})
		}
	}
	return &ast.FString{Range: p.nodeRange(start), Elements: elems}
}

// parseFString parses one FStringStart..FStringEnd run into a single
// FString node.
func (p *parser) parseFString() *ast.FString {
	start := p.nodeStart()
	p.bump(token.FStringStart)
	var elems []ast.FStringElement
	for !p.at(token.FStringEnd) && !p.at(token.EndOfFile) {
		switch p.cur.Kind {
		case token.FStringMiddle:
			t := p.bump(token.FStringMiddle)
			value, _, err := literal.Decode(t.Lit, literal.DecodeOptions{Raw: t.RawFlag})
			if err != nil {
				p.errors.Add(errors.NewLexical(t.Range, "%s", err))
				elems = append(elems, &ast.FStringInvalid{Range: t.Range, Text: p.srcText(t.Range)})
			} else {
				elems = append(elems, &ast.FStringLiteral{Range: t.Range, Value: value})
			}
		case token.LBrace:
			elems = append(elems, p.parseFStringExpression())
		default:
			p.errors.Add(errors.NewFStringError(p.curRange(), errors.FStringUnclosedLBrace))
			r := p.skipUntil(token.FStringEnd, token.EndOfFile)
			elems = append(elems, &ast.FStringInvalid{Range: r, Text: p.srcText(r)})
		}
	}
	p.expect(token.FStringEnd)
	return &ast.FString{Range: p.nodeRange(start), Elements: elems}
}

// parseFStringFormatSpec parses the portion of a format spec after `:`,
// which is itself a run of literal text and nested holes terminated by the
// enclosing `}` rather than FStringEnd.
func (p *parser) parseFStringFormatSpec() *ast.FString {
	start := p.nodeStart()
	var elems []ast.FStringElement
	for !p.atTS(token.RBrace, token.FStringEnd, token.EndOfFile) {
		switch p.cur.Kind {
		case token.FStringMiddle:
			t := p.bump(token.FStringMiddle)
			value, _, err := literal.Decode(t.Lit, literal.DecodeOptions{Raw: t.RawFlag})
			if err != nil {
				p.errors.Add(errors.NewLexical(t.Range, "%s", err))
				elems = append(elems, &ast.FStringInvalid{Range: t.Range, Text: p.srcText(t.Range)})
			} else {
				elems = append(elems, &ast.FStringLiteral{Range: t.Range, Value: value})
			}
		case token.LBrace:
			elems = append(elems, p.parseFStringExpression())
		default:
			p.errors.Add(errors.NewFStringError(p.curRange(), errors.FStringUnclosedLBrace))
			r := p.skipUntil(token.RBrace, token.FStringEnd, token.EndOfFile)
			elems = append(elems, &ast.FStringInvalid{Range: r, Text: p.srcText(r)})
		}
	}
	return &ast.FString{Range: p.nodeRange(start), Elements: elems}
}

// parseFStringExpression parses one `{expr[=][!conv][:format]}` hole. A
// bare (unparenthesized) lambda is rejected because its own `:` would be
// ambiguous with the format-spec separator; an empty `{}` is rejected
// outright.
func (p *parser) parseFStringExpression() ast.FStringElement {
	start := p.nodeStart()
	p.bump(token.LBrace)
	if p.at(token.RBrace) {
		p.errors.Add(errors.NewFStringError(p.curRange(), errors.FStringEmptyExpression))
		p.next()
		return &ast.FStringInvalid{Range: p.nodeRange(start), Text: p.srcText(p.nodeRange(start))}
	}
	exprStart := p.nodeStart()
	isLambda := p.at(token.Lambda)
	value := p.parseExprs()
	if isLambda {
		p.errors.Add(errors.NewFStringError(value.NodeRange(), errors.FStringLambdaWithoutParentheses))
	}
	exprRange := p.nodeRange(exprStart)
	exprText := p.srcText(exprRange)
	selfDoc := p.eat(token.Assign)
	conv := ast.ConvNone
	if p.at(token.Bang) {
		p.next()
		switch {
		case p.at(token.Name) && p.cur.Lit == "s":
			conv = ast.ConvStr
			p.next()
		case p.at(token.Name) && p.cur.Lit == "r":
			conv = ast.ConvRepr
			p.next()
		case p.at(token.Name) && p.cur.Lit == "a":
			conv = ast.ConvAscii
			p.next()
		default:
			p.errors.Add(errors.NewFStringError(p.curRange(), errors.FStringInvalidConversion))
		}
	}
	var format *ast.FString
	if p.eat(token.Colon) {
		format = p.parseFStringFormatSpec()
	}
	if !p.at(token.RBrace) {
		r := p.skipUntil(token.RBrace, token.FStringEnd, token.EndOfFile)
		p.errors.Add(errors.NewFStringError(r, errors.FStringUnclosedLBrace))
	}
	p.eat(token.RBrace)
	return &ast.FStringExpression{
		Range: p.nodeRange(start), Value: value, Conversion: conv, Format: format,
		SelfDocumented: selfDoc, ExprText: exprText,
	}
}
