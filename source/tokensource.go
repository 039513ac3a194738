// Package source adapts a pre-lexed token buffer into the pull-based
// interface the parser drives, and rewrites the contextual identifiers
// match/case/type back into Name tokens where they are not keyword uses.
//
// Shaped after cue/scanner.Scanner's role as a peekable token source the
// parser calls next/peek on, reshaped around a buffer instead of a live
// lexer since lexing happens upstream of this package.
package source

import (
	"github.com/pyast-go/pyparse/errors"
	"github.com/pyast-go/pyparse/token"
)

// TokenSource exposes the lexed token buffer through the Next/PeekNth pull
// interface the parser requires. Lookahead is O(1): PeekNth
// just indexes into the already-fully-lexed buffer, the simplest realization
// of the "ring or deque of already-consumed-from-lexer tokens" the
// specification allows for.
type TokenSource struct {
	tokens []token.Token
	pos    int
	eof    token.Token
	errs   []errors.Error
}

// NewTokenSource builds a TokenSource over an already-lexed buffer. end is
// the byte length of the source, used to build the zero-width EndOfFile
// sentinel Next returns once the buffer is exhausted.
func NewTokenSource(tokens []token.Token, end int) *TokenSource {
	return &TokenSource{
		tokens: tokens,
		eof:    token.Token{Kind: token.EndOfFile, Range: token.Range{Start: end, End: end}},
	}
}

// Next returns the current token and advances past it.
func (s *TokenSource) Next() token.Token {
	t := s.PeekNth(0)
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return t
}

// PeekNth returns the token n positions ahead of the current one without
// consuming anything; PeekNth(0) is the token Next would return.
func (s *TokenSource) PeekNth(n int) token.Token {
	i := s.pos + n
	if i < 0 || i >= len(s.tokens) {
		return s.eof
	}
	return s.tokens[i]
}

// AddLexicalError records a diagnostic surfaced by the (out-of-scope)
// lexer, to be merged into the parser's error list by Finish.
func (s *TokenSource) AddLexicalError(err errors.Error) {
	s.errs = append(s.errs, err)
}

// Finish returns the lexical errors accumulated during lexing, in the
// order they were recorded.
func (s *TokenSource) Finish() []errors.Error {
	return s.errs
}
