package source_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/pyast-go/pyparse/source"
	"github.com/pyast-go/pyparse/token"
)

func tok(k token.Kind, start, end int) token.Token {
	return token.Token{Kind: k, Range: token.Range{Start: start, End: end}}
}

func TestTokenSourceNextAdvances(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		tok(token.Name, 0, 1),
		tok(token.Assign, 2, 3),
		tok(token.Int, 4, 5),
	}, 6)

	qt.Assert(t, qt.Equals(ts.Next().Kind, token.Name))
	qt.Assert(t, qt.Equals(ts.Next().Kind, token.Assign))
	qt.Assert(t, qt.Equals(ts.Next().Kind, token.Int))
	qt.Assert(t, qt.Equals(ts.Next().Kind, token.EndOfFile))
	qt.Assert(t, qt.Equals(ts.Next().Kind, token.EndOfFile))
}

func TestTokenSourcePeekNthDoesNotConsume(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		tok(token.Name, 0, 1),
		tok(token.Assign, 2, 3),
	}, 3)

	qt.Assert(t, qt.Equals(ts.PeekNth(0).Kind, token.Name))
	qt.Assert(t, qt.Equals(ts.PeekNth(1).Kind, token.Assign))
	qt.Assert(t, qt.Equals(ts.PeekNth(0).Kind, token.Name))

	qt.Assert(t, qt.Equals(ts.Next().Kind, token.Name))
	qt.Assert(t, qt.Equals(ts.PeekNth(0).Kind, token.Assign))
}

func TestTokenSourcePeekPastEndReturnsEOF(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{tok(token.Name, 0, 1)}, 1)
	eof := ts.PeekNth(10)
	qt.Assert(t, qt.Equals(eof.Kind, token.EndOfFile))
	qt.Assert(t, qt.Equals(eof.Range.Start, 1))
}

func TestTokenSourceFinishWithNoErrorsIsEmpty(t *testing.T) {
	ts := source.NewTokenSource(nil, 0)
	qt.Assert(t, qt.HasLen(ts.Finish(), 0))
}
