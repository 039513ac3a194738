package ast

// SetContext rewrites the ExprContext of e and, recursively, of its target
// sub-expressions to ctx. It implements the parser's context-fixup pass: an
// assignment target is first parsed as an ordinary expression (so the
// grammar for `x`, `x.a`, `x[i]`, `(x, y)` and `[x, y]` doesn't need a
// separate target production), then walked once to rewrite Load to Store
// or Del in place.
//
// The walk stops at expression boundaries that are never themselves
// targets: a Subscript or Attribute's Value (the thing being indexed or
// dotted into) keeps its Load context, since `x[i] = v` loads x and
// subscripts it, only the subscript result is stored into. Call, BinOp and
// other non-target expressions are left unchanged: the parser reports an
// invalid target as an error and still calls SetContext on it, and such
// nodes simply match no case below.
func SetContext(e Expr, ctx ExprContext) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *Name:
		n.Ctx = ctx
	case *Attribute:
		n.Ctx = ctx
	case *Subscript:
		n.Ctx = ctx
	case *Starred:
		n.Ctx = ctx
		SetContext(n.Value, ctx)
	case *List:
		n.Ctx = ctx
		for _, elt := range n.Elts {
			SetContext(elt, ctx)
		}
	case *Tuple:
		n.Ctx = ctx
		for _, elt := range n.Elts {
			SetContext(elt, ctx)
		}
	}
}
