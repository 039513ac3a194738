package ast

// Walk traverses an AST in depth-first order: it calls before(node) first;
// node must not be nil. If before returns true, Walk recurses into each
// non-nil child, then calls after(node). Either callback may be nil, in
// which case it is treated as always returning true / doing nothing.
//
// Grounded on cue/ast/walk.go's Walk, simplified: this tree carries no
// comment groups to interleave, so there is no separate comment pass.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	if before == nil {
		before = func(Node) bool { return true }
	}
	if after == nil {
		after = func(Node) {}
	}
	walk(node, before, after)
}

func walkStmts(list []Stmt, before func(Node) bool, after func(Node)) {
	for _, s := range list {
		walk(s, before, after)
	}
}

func walkExprs(list []Expr, before func(Node) bool, after func(Node)) {
	for _, e := range list {
		if e != nil {
			walk(e, before, after)
		}
	}
}

func walkPatterns(list []Pattern, before func(Node) bool, after func(Node)) {
	for _, p := range list {
		if p != nil {
			walk(p, before, after)
		}
	}
}

func walk(node Node, before func(Node) bool, after func(Node)) {
	if node == nil || !before(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		walkStmts(n.Body, before, after)
	case *Expression:
		walk(n.Body, before, after)

	case *FunctionDef:
		for _, d := range n.Decorators {
			walk(d, before, after)
		}
		walk(n.Name, before, after)
		if n.TypeParams != nil {
			walk(n.TypeParams, before, after)
		}
		walk(n.Params, before, after)
		if n.Returns != nil {
			walk(n.Returns, before, after)
		}
		walkStmts(n.Body, before, after)
	case *ClassDef:
		for _, d := range n.Decorators {
			walk(d, before, after)
		}
		walk(n.Name, before, after)
		if n.TypeParams != nil {
			walk(n.TypeParams, before, after)
		}
		walkExprs(n.Bases, before, after)
		for _, k := range n.Keywords {
			walk(k, before, after)
		}
		walkStmts(n.Body, before, after)
	case *Return:
		if n.Value != nil {
			walk(n.Value, before, after)
		}
	case *Delete:
		walkExprs(n.Targets, before, after)
	case *Assign:
		walkExprs(n.Targets, before, after)
		walk(n.Value, before, after)
	case *AugAssign:
		walk(n.Target, before, after)
		walk(n.Value, before, after)
	case *AnnAssign:
		walk(n.Target, before, after)
		walk(n.Annotation, before, after)
		if n.Value != nil {
			walk(n.Value, before, after)
		}
	case *TypeAlias:
		walk(n.Name, before, after)
		if n.TypeParams != nil {
			walk(n.TypeParams, before, after)
		}
		walk(n.Value, before, after)
	case *For:
		walk(n.Target, before, after)
		walk(n.Iter, before, after)
		walkStmts(n.Body, before, after)
		walkStmts(n.Orelse, before, after)
	case *While:
		walk(n.Test, before, after)
		walkStmts(n.Body, before, after)
		walkStmts(n.Orelse, before, after)
	case *If:
		walk(n.Test, before, after)
		walkStmts(n.Body, before, after)
		walkStmts(n.Orelse, before, after)
	case *With:
		for _, it := range n.Items {
			walk(it, before, after)
		}
		walkStmts(n.Body, before, after)
	case *Match:
		walk(n.Subject, before, after)
		for _, c := range n.Cases {
			walk(c, before, after)
		}
	case *Raise:
		if n.Exc != nil {
			walk(n.Exc, before, after)
		}
		if n.Cause != nil {
			walk(n.Cause, before, after)
		}
	case *Try:
		walkStmts(n.Body, before, after)
		for _, h := range n.Handlers {
			walk(h, before, after)
		}
		walkStmts(n.Orelse, before, after)
		walkStmts(n.Finalbody, before, after)
	case *Assert:
		walk(n.Test, before, after)
		if n.Msg != nil {
			walk(n.Msg, before, after)
		}
	case *Import:
		for _, a := range n.Names {
			walk(a, before, after)
		}
	case *ImportFrom:
		if n.Module != nil {
			walk(n.Module, before, after)
		}
		for _, a := range n.Names {
			walk(a, before, after)
		}
	case *Global:
		for _, id := range n.Names {
			walk(id, before, after)
		}
	case *Nonlocal:
		for _, id := range n.Names {
			walk(id, before, after)
		}
	case *ExprStmt:
		walk(n.Value, before, after)
	case *Pass, *Break, *Continue:
		// no children
	case *IpyEscapeCommand:
		// no children

	case *BoolOp:
		walkExprs(n.Values, before, after)
	case *NamedExpr:
		walk(n.Target, before, after)
		walk(n.Value, before, after)
	case *BinOp:
		walk(n.Left, before, after)
		walk(n.Right, before, after)
	case *UnaryOp:
		walk(n.Operand, before, after)
	case *Lambda:
		walk(n.Params, before, after)
		walk(n.Body, before, after)
	case *IfExp:
		walk(n.Test, before, after)
		walk(n.Body, before, after)
		walk(n.Orelse, before, after)
	case *Dict:
		for i := range n.Keys {
			if n.Keys[i] != nil {
				walk(n.Keys[i], before, after)
			}
			walk(n.Values[i], before, after)
		}
	case *Set:
		walkExprs(n.Elts, before, after)
	case *ListComp:
		walk(n.Elt, before, after)
		for _, c := range n.Generators {
			walk(c, before, after)
		}
	case *SetComp:
		walk(n.Elt, before, after)
		for _, c := range n.Generators {
			walk(c, before, after)
		}
	case *DictComp:
		walk(n.Key, before, after)
		walk(n.Value, before, after)
		for _, c := range n.Generators {
			walk(c, before, after)
		}
	case *GeneratorExp:
		walk(n.Elt, before, after)
		for _, c := range n.Generators {
			walk(c, before, after)
		}
	case *Await:
		walk(n.Value, before, after)
	case *Yield:
		if n.Value != nil {
			walk(n.Value, before, after)
		}
	case *YieldFrom:
		walk(n.Value, before, after)
	case *Compare:
		walk(n.Left, before, after)
		walkExprs(n.Comparators, before, after)
	case *Call:
		walk(n.Func, before, after)
		if n.Args != nil {
			walkExprs(n.Args.Args, before, after)
			for _, k := range n.Args.Keywords {
				walk(k, before, after)
			}
		}
	case *FString:
		for _, el := range n.Elements {
			walk(el, before, after)
		}
	case *Attribute:
		walk(n.Value, before, after)
		walk(n.Attr, before, after)
	case *Subscript:
		walk(n.Value, before, after)
		walk(n.Slice, before, after)
	case *Starred:
		walk(n.Value, before, after)
	case *List:
		walkExprs(n.Elts, before, after)
	case *Tuple:
		walkExprs(n.Elts, before, after)
	case *Slice:
		if n.Lower != nil {
			walk(n.Lower, before, after)
		}
		if n.Upper != nil {
			walk(n.Upper, before, after)
		}
		if n.Step != nil {
			walk(n.Step, before, after)
		}
	case *StringLiteral, *BytesLiteral, *NumberLiteral, *BooleanLiteral,
		*NoneLiteral, *EllipsisLiteral, *Name, *Invalid, *Ident:
		// leaves

	case *FStringLiteral, *FStringInvalid:
		// leaves
	case *FStringExpression:
		walk(n.Value, before, after)
		if n.Format != nil {
			walk(n.Format, before, after)
		}

	case *MatchValue:
		walk(n.Value, before, after)
	case *MatchSingleton:
		walk(n.Value, before, after)
	case *MatchSequence:
		walkPatterns(n.Patterns, before, after)
	case *MatchMapping:
		for i, k := range n.Keys {
			walk(k, before, after)
			walk(n.Values[i], before, after)
		}
		if n.Rest != nil {
			walk(n.Rest, before, after)
		}
	case *MatchClass:
		walk(n.Cls, before, after)
		walkPatterns(n.Patterns, before, after)
		for _, id := range n.KwdAttrs {
			walk(id, before, after)
		}
		walkPatterns(n.KwdPatterns, before, after)
	case *MatchStar:
		if n.Name != nil {
			walk(n.Name, before, after)
		}
	case *MatchAs:
		if n.Pattern != nil {
			walk(n.Pattern, before, after)
		}
		if n.Name != nil {
			walk(n.Name, before, after)
		}
	case *MatchOr:
		walkPatterns(n.Patterns, before, after)
	case *InvalidPattern:
		// leaf

	case *WithItem:
		walk(n.ContextExpr, before, after)
		if n.OptionalVars != nil {
			walk(n.OptionalVars, before, after)
		}
	case *Comprehension:
		walk(n.Target, before, after)
		walk(n.Iter, before, after)
		walkExprs(n.Ifs, before, after)
	case *ExceptHandler:
		if n.Type != nil {
			walk(n.Type, before, after)
		}
		if n.Name != nil {
			walk(n.Name, before, after)
		}
		walkStmts(n.Body, before, after)
	case *MatchCase:
		walk(n.Pattern, before, after)
		if n.Guard != nil {
			walk(n.Guard, before, after)
		}
		walkStmts(n.Body, before, after)
	case *Decorator:
		walk(n.Expression, before, after)
	case *Alias:
		walk(n.Name, before, after)
		if n.AsName != nil {
			walk(n.AsName, before, after)
		}
	case *TypeParams:
		for _, p := range n.Params {
			walk(p, before, after)
		}
	case *TypeVar:
		walk(n.Name, before, after)
		if n.Bound != nil {
			walk(n.Bound, before, after)
		}
	case *TypeVarTuple:
		walk(n.Name, before, after)
	case *ParamSpec:
		walk(n.Name, before, after)
	case *Keyword:
		if n.Name != nil {
			walk(n.Name, before, after)
		}
		walk(n.Value, before, after)
	case *Parameters:
		for _, p := range n.PosOnlyParams {
			walk(p, before, after)
		}
		for _, p := range n.Params {
			walk(p, before, after)
		}
		if n.VarArg != nil {
			walk(n.VarArg, before, after)
		}
		for _, p := range n.KwOnlyParams {
			walk(p, before, after)
		}
		if n.KwArg != nil {
			walk(n.KwArg, before, after)
		}
	case *Parameter:
		walk(n.Name, before, after)
		if n.Annotation != nil {
			walk(n.Annotation, before, after)
		}
		if n.Default != nil {
			walk(n.Default, before, after)
		}

	default:
		panic(node)
	}

	after(node)
}
