// Package parser implements a hand-written, error-recovering
// recursive-descent and Pratt-style expression parser that turns a
// pre-lexed Python token stream into a full AST plus an ordered
// diagnostic list.
package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/source"
	"github.com/pyast-go/pyparse/token"
)

// Mode selects which of the two grammar entry points a
// parse uses.
type Mode int

const (
	// Module parses a full module: zero or more statements.
	Module Mode = iota
	// Expression parses a single (tuple-producing) expression.
	Expression
	// Ipython additionally accepts IPython escape-command statements and
	// the `?`/`??` postfix help syntax.
	Ipython
)

// Option configures a parse the way cue/parser/interface.go's functional
// options configure ParseFile.
type Option func(p *parser)

var (
	// Trace causes the parser to print an indented trace of every
	// production it enters and leaves.
	Trace    Option = traceOpt
	traceOpt        = func(p *parser) { p.trace = true }
)

// Parse lexes nothing itself -- tokens must already be produced by an
// external lexer -- and runs the soft-keyword filter and parser over them,
// building a line table from the token ranges as it goes. It is the
// spec's `parse(source, mode)` entry point.
func Parse(src []byte, tokens []token.Token, mode Mode, opts ...Option) (ast.Node, errors.List) {
	file := token.NewFile("", len(src))
	for _, t := range tokens {
		file.AddLines(t.Range.Start, t.Lit)
	}
	return parse(tokens, file, mode, src, opts...)
}

// ParseTokens is the spec's `parse_tokens(source, tokens, mode)` entry
// point: it accepts an already-built line table instead of deriving one
// from raw source, for callers that lexed incrementally. Since no raw
// source bytes are available here, any source text the parser needs to
// quote back (e.g. an Invalid node's offending range) is reconstructed
// from the token stream itself rather than sliced from src.
func ParseTokens(tokens []token.Token, file *token.File, mode Mode, opts ...Option) (ast.Node, errors.List) {
	return parse(tokens, file, mode, nil, opts...)
}

func parse(tokens []token.Token, file *token.File, mode Mode, src []byte, opts ...Option) (ast.Node, errors.List) {
	end := file.Size()
	ts := source.NewTokenSource(tokens, end)
	filt := source.NewSoftKeywordFilter(ts)

	p := &parser{src: filt, file: file, mode: mode, rawSrc: src, allTokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	p.next()

	var result ast.Node
	switch mode {
	case Expression:
		result = p.parseExpressionMode()
	default:
		result = p.parseModuleMode()
	}

	for _, le := range ts.Finish() {
		p.errors.Add(le)
	}
	p.errors.Sort()
	return result, p.errors
}
