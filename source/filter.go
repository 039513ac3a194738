package source

import "github.com/pyast-go/pyparse/token"

// TokenStream is implemented by TokenSource and by SoftKeywordFilter
// itself, so the filter can wrap a raw source and the parser can consume
// either one uniformly.
type TokenStream interface {
	Next() token.Token
	PeekNth(n int) token.Token
}

// posKind is one of the four states the soft-keyword filter's Position
// state machine can be in.
type posKind int

const (
	posStatement posKind = iota
	posSimpleStatement
	posNested
	posOther
)

type filterState struct {
	kind  posKind
	depth int // meaningful only when kind == posNested
}

// SoftKeywordFilter wraps a raw token stream and promotes Name tokens
// spelled "match", "case" or "type" to their keyword Kind when the
// surrounding syntax makes that the only sensible reading. Lookahead is
// bounded: both heuristics scan at most to the next
// Newline in the raw stream, using the wrapped stream's own PeekNth so no
// separate buffering of "future" raw tokens is needed beyond the small
// window the wrapped TokenSource already holds in memory.
type SoftKeywordFilter struct {
	raw    TokenStream
	rawIdx int
	state  filterState // position to use when deciding the next un-buffered token
	buf    []token.Token
}

// NewSoftKeywordFilter wraps raw, which the filter consumes via PeekNth
// only -- it advances its own cursor and never calls raw.Next directly, so
// a single TokenSource can equally be driven straight (bypassing the
// filter) for diagnostic tooling that wants raw tokens.
func NewSoftKeywordFilter(raw TokenStream) *SoftKeywordFilter {
	return &SoftKeywordFilter{raw: raw, state: filterState{kind: posStatement}}
}

func (f *SoftKeywordFilter) rawPeek(n int) token.Token {
	return f.raw.PeekNth(f.rawIdx + n)
}

// Next returns the current (possibly rewritten) token and advances.
func (f *SoftKeywordFilter) Next() token.Token {
	f.fillTo(0)
	t := f.buf[0]
	f.buf = f.buf[1:]
	f.rawIdx++
	return t
}

// PeekNth returns the rewritten token n positions ahead without consuming.
func (f *SoftKeywordFilter) PeekNth(n int) token.Token {
	f.fillTo(n)
	return f.buf[n]
}

func (f *SoftKeywordFilter) fillTo(n int) {
	for len(f.buf) <= n {
		idx := len(f.buf)
		raw := f.rawPeek(idx)
		out := f.rewrite(raw, idx)
		f.state = nextState(f.state, raw.Kind)
		f.buf = append(f.buf, out)
	}
}

func (f *SoftKeywordFilter) rewrite(raw token.Token, idx int) token.Token {
	if raw.Kind != token.Name {
		return raw
	}
	switch raw.Lit {
	case "match", "case":
		if f.state.kind == posStatement && f.scanForTopLevelColon(idx) {
			out := raw
			if raw.Lit == "match" {
				out.Kind = token.Match
			} else {
				out.Kind = token.Case
			}
			return out
		}
	case "type":
		if (f.state.kind == posStatement || f.state.kind == posSimpleStatement) && f.looksLikeTypeAlias(idx) {
			out := raw
			out.Kind = token.TypeKw
			return out
		}
	}
	return raw
}

// scanForTopLevelColon implements the match/case lookahead: starting just
// after idx, scan to the line-ending Newline tracking all three bracket
// pairs and lambda nesting, and report whether a top-level ':' appears
// that is neither the first scanned token nor a lambda's own colon.
func (f *SoftKeywordFilter) scanForTopLevelColon(idx int) bool {
	depth := 0
	lambdaPending := 0
	for k := idx + 1; ; k++ {
		t := f.rawPeek(k)
		switch t.Kind {
		case token.Newline, token.EndOfFile:
			return false
		case token.LParen, token.LBrack, token.LBrace:
			depth++
		case token.RParen, token.RBrack, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.Lambda:
			if depth == 0 {
				lambdaPending++
			}
		case token.Colon:
			if depth == 0 {
				if lambdaPending > 0 {
					lambdaPending--
					continue
				}
				if k == idx+1 {
					return false
				}
				return true
			}
		}
	}
}

// looksLikeTypeAlias implements the `type` lookahead: the next token must
// be a Name (or a match/case/type spelling, to allow `type type = int`),
// and a top-level '=' must appear before the line-ending Newline, with
// bracket depth tracked using only '['/']' since a type-parameter list is
// the only nestable construct that can appear before the '='.
func (f *SoftKeywordFilter) looksLikeTypeAlias(idx int) bool {
	next := f.rawPeek(idx + 1)
	if next.Kind != token.Name {
		return false
	}
	depth := 0
	for k := idx + 2; ; k++ {
		t := f.rawPeek(k)
		switch t.Kind {
		case token.Newline, token.EndOfFile:
			return false
		case token.LBrack:
			depth++
		case token.RBrack:
			if depth > 0 {
				depth--
			}
		case token.Assign:
			if depth == 0 {
				return true
			}
		}
	}
}

// nextState computes the Position transition for the token just emitted.
// A token seen while already Nested never escapes nesting except via a
// matching close bracket dropping depth to zero -- without this, any
// non-bracket token inside e.g. a dict literal would fall through to the
// "anything else" rule and incorrectly reset to Other, losing the
// enclosing bracket depth.
func nextState(prev filterState, kind token.Kind) filterState {
	switch kind {
	case token.StartModule, token.Newline, token.Indent, token.Dedent:
		return filterState{kind: posStatement}
	case token.Semi:
		return filterState{kind: posSimpleStatement}
	case token.LParen, token.LBrack, token.LBrace:
		if prev.kind == posNested {
			return filterState{kind: posNested, depth: prev.depth + 1}
		}
		return filterState{kind: posNested, depth: 1}
	case token.RParen, token.RBrack, token.RBrace:
		if prev.kind == posNested {
			if prev.depth-1 <= 0 {
				return filterState{kind: posOther}
			}
			return filterState{kind: posNested, depth: prev.depth - 1}
		}
		return filterState{kind: posOther}
	case token.Colon:
		if prev.kind == posNested {
			return prev
		}
		if prev.kind == posOther {
			return filterState{kind: posSimpleStatement}
		}
		return filterState{kind: posOther}
	case token.NonLogicalNewline, token.Comment:
		return prev
	default:
		if prev.kind == posNested {
			return prev
		}
		return filterState{kind: posOther}
	}
}
