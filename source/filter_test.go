package source_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/pyast-go/pyparse/source"
	"github.com/pyast-go/pyparse/token"
)

func name(lit string, start, end int) token.Token {
	return token.Token{Kind: token.Name, Lit: lit, Range: token.Range{Start: start, End: end}}
}

func plain(k token.Kind, start, end int) token.Token {
	return token.Token{Kind: k, Range: token.Range{Start: start, End: end}}
}

func drain(f *source.SoftKeywordFilter) []token.Token {
	var out []token.Token
	for {
		t := f.Next()
		out = append(out, t)
		if t.Kind == token.EndOfFile {
			return out
		}
	}
}

func TestSoftKeywordFilterMatchAsAssignmentTarget(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("match", 0, 5),
		plain(token.Assign, 6, 7),
		plain(token.Int, 8, 9),
		plain(token.Newline, 9, 10),
	}, 10)
	f := source.NewSoftKeywordFilter(ts)
	out := drain(f)

	qt.Assert(t, qt.Equals(out[1].Kind, token.Name))
	qt.Assert(t, qt.Equals(out[1].Lit, "match"))
}

func TestSoftKeywordFilterMatchAsStatement(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("match", 0, 5),
		name("x", 6, 7),
		plain(token.Colon, 7, 8),
		plain(token.Newline, 8, 9),
		plain(token.Indent, 9, 9),
		name("case", 9, 13),
		plain(token.Int, 14, 15),
		plain(token.Colon, 15, 16),
		plain(token.Newline, 16, 17),
		plain(token.Dedent, 17, 17),
	}, 17)
	f := source.NewSoftKeywordFilter(ts)
	out := drain(f)

	qt.Assert(t, qt.Equals(out[1].Kind, token.Match))
	qt.Assert(t, qt.Equals(out[6].Kind, token.Case))
}

func TestSoftKeywordFilterTypeAlias(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("type", 0, 4),
		name("X", 5, 6),
		plain(token.Assign, 7, 8),
		name("int", 9, 12),
		plain(token.Newline, 12, 13),
	}, 13)
	f := source.NewSoftKeywordFilter(ts)
	out := drain(f)

	qt.Assert(t, qt.Equals(out[1].Kind, token.TypeKw))
}

func TestSoftKeywordFilterTypeAsAssignmentTarget(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("type", 0, 4),
		plain(token.Assign, 5, 6),
		plain(token.Int, 7, 8),
		plain(token.Newline, 8, 9),
	}, 9)
	f := source.NewSoftKeywordFilter(ts)
	out := drain(f)

	qt.Assert(t, qt.Equals(out[1].Kind, token.Name))
	qt.Assert(t, qt.Equals(out[1].Lit, "type"))
}

func TestSoftKeywordFilterColonInsideBracketsDoesNotLeaveNested(t *testing.T) {
	// match {1: 2}[0]:  -- the dict colon at depth 1 must not be mistaken
	// for the statement-ending colon, and match's own top-level colon is
	// the one after the closing ']'.
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("match", 0, 5),
		plain(token.LBrace, 6, 7),
		plain(token.Int, 7, 8),
		plain(token.Colon, 8, 9),
		plain(token.Int, 10, 11),
		plain(token.RBrace, 11, 12),
		plain(token.LBrack, 12, 13),
		plain(token.Int, 13, 14),
		plain(token.RBrack, 14, 15),
		plain(token.Colon, 15, 16),
		plain(token.Newline, 16, 17),
	}, 17)
	f := source.NewSoftKeywordFilter(ts)
	out := drain(f)

	qt.Assert(t, qt.Equals(out[1].Kind, token.Match))
}

func TestSoftKeywordFilterPeekNthIsStable(t *testing.T) {
	ts := source.NewTokenSource([]token.Token{
		plain(token.StartModule, 0, 0),
		name("match", 0, 5),
		name("x", 6, 7),
		plain(token.Colon, 7, 8),
		plain(token.Newline, 8, 9),
	}, 9)
	f := source.NewSoftKeywordFilter(ts)

	first := f.PeekNth(1)
	second := f.PeekNth(1)
	qt.Assert(t, qt.Equals(first.Kind, second.Kind))
	qt.Assert(t, qt.Equals(f.Next().Kind, token.StartModule))
	qt.Assert(t, qt.Equals(f.Next().Kind, token.Match))
}
