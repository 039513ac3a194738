package ast

import "github.com/pyast-go/pyparse/token"

// MatchValue matches when the subject equals a literal or dotted-name
// constant, e.g. `case 1:` or `case Color.RED:`.
type MatchValue struct {
	Range token.Range
	Value Expr
}

// MatchSingleton matches `None`, `True` or `False` by identity.
type MatchSingleton struct {
	Range token.Range
	Value Expr // a *NoneLiteral or *BooleanLiteral
}

// MatchSequence matches `case [a, b, *rest]:` and `case (a, b):`; a nil
// entry is never produced -- a bare `*rest` shows up as a *MatchStar.
type MatchSequence struct {
	Range    token.Range
	Patterns []Pattern
}

// MatchMapping matches `case {"k": v, **rest}:`. Rest is nil unless a
// `**rest` capture is present.
type MatchMapping struct {
	Range  token.Range
	Keys   []Expr
	Values []Pattern
	Rest   *Ident
}

// MatchClass matches `case Point(x, y, z=0):`.
type MatchClass struct {
	Range       token.Range
	Cls         Expr
	Patterns    []Pattern
	KwdAttrs    []*Ident
	KwdPatterns []Pattern
}

// MatchStar captures the remainder of a sequence pattern, `*rest`. Name is
// nil for the wildcard form `*_`.
type MatchStar struct {
	Range token.Range
	Name  *Ident
}

// MatchAs binds the match (or, with Pattern nil, any subject) to Name; a
// nil Name is the wildcard pattern `_`.
type MatchAs struct {
	Range   token.Range
	Pattern Pattern // nil for a bare capture or wildcard
	Name    *Ident
}

// MatchOr matches if any alternative matches, e.g. `case 1 | 2 | 3:`.
type MatchOr struct {
	Range    token.Range
	Patterns []Pattern
}

// InvalidPattern is the error-recovery placeholder for pattern position.
type InvalidPattern struct {
	Range token.Range
	Text  string
}

func (n *MatchValue) NodeRange() token.Range      { return n.Range }
func (n *MatchSingleton) NodeRange() token.Range   { return n.Range }
func (n *MatchSequence) NodeRange() token.Range    { return n.Range }
func (n *MatchMapping) NodeRange() token.Range     { return n.Range }
func (n *MatchClass) NodeRange() token.Range       { return n.Range }
func (n *MatchStar) NodeRange() token.Range        { return n.Range }
func (n *MatchAs) NodeRange() token.Range          { return n.Range }
func (n *MatchOr) NodeRange() token.Range          { return n.Range }
func (n *InvalidPattern) NodeRange() token.Range   { return n.Range }

func (*MatchValue) patternNode()     {}
func (*MatchSingleton) patternNode() {}
func (*MatchSequence) patternNode()  {}
func (*MatchMapping) patternNode()   {}
func (*MatchClass) patternNode()     {}
func (*MatchStar) patternNode()      {}
func (*MatchAs) patternNode()        {}
func (*MatchOr) patternNode()        {}
func (*InvalidPattern) patternNode() {}
