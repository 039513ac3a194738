package ast

import "github.com/pyast-go/pyparse/token"

// Arguments is the argument list of a Call: positional Args in source
// order (each *Starred wrapping a `*iterable` unpack), then Keywords in
// source order (a Keyword with a nil Name is a `**mapping` unpack).
type Arguments struct {
	Range   token.Range
	Args    []Expr
	Keywords []*Keyword
}

// Keyword is one `name=value` or `**value` call argument.
type Keyword struct {
	Range token.Range
	Name  *Ident // nil for a **value unpack
	Value Expr
}

func (n *Keyword) NodeRange() token.Range { return n.Range }

// Parameters is a function or lambda's full parameter list, split into the
// five Python parameter groups in source order.
type Parameters struct {
	Range          token.Range
	PosOnlyParams  []*Parameter
	Params         []*Parameter
	VarArg         *Parameter // nil if no *args
	KwOnlyParams   []*Parameter
	KwArg          *Parameter // nil if no **kwargs
}

// Parameter is one parameter: a name, an optional annotation, and for
// ordinary (non-vararg) parameters an optional default value.
type Parameter struct {
	Range      token.Range
	Name       *Ident
	Annotation Expr
	Default    Expr // nil if the parameter has no default
}

func (n *Parameters) NodeRange() token.Range { return n.Range }
func (n *Parameter) NodeRange() token.Range  { return n.Range }

// WithItem is one `expr [as target]` clause of a with-statement.
type WithItem struct {
	Range         token.Range
	ContextExpr   Expr
	OptionalVars  Expr // nil if no `as target`
}

func (n *WithItem) NodeRange() token.Range { return n.Range }

// Comprehension is one `for target in iter [if cond]*` clause of a
// comprehension or generator expression.
type Comprehension struct {
	Range   token.Range
	IsAsync bool
	Target  Expr
	Iter    Expr
	Ifs     []Expr
}

func (n *Comprehension) NodeRange() token.Range { return n.Range }

// ExceptHandler is one `except [Type [as name]]:` clause of a Try.
type ExceptHandler struct {
	Range token.Range
	Type  Expr // nil for a bare `except:`
	Name  *Ident
	Body  []Stmt
}

func (n *ExceptHandler) NodeRange() token.Range { return n.Range }

// MatchCase is one `case pattern [if guard]:` clause of a Match.
type MatchCase struct {
	Range   token.Range
	Pattern Pattern
	Guard   Expr // nil if no `if` guard
	Body    []Stmt
}

func (n *MatchCase) NodeRange() token.Range { return n.Range }

// Decorator wraps the expression following an `@` on its own line.
type Decorator struct {
	Range      token.Range
	Expression Expr
}

func (n *Decorator) NodeRange() token.Range { return n.Range }

// Alias is one `name [as asname]` entry of an import statement.
type Alias struct {
	Range  token.Range
	Name   *Ident // may itself encode a dotted path as a single Ident, e.g. "a.b.c"
	AsName *Ident // nil if no `as`
}

func (n *Alias) NodeRange() token.Range { return n.Range }

// TypeParams is the `[T, *Ts, **P]` clause attached to a generic function,
// class, or type-alias declaration (PEP 695).
type TypeParams struct {
	Range  token.Range
	Params []TypeParam
}

func (n *TypeParams) NodeRange() token.Range { return n.Range }

// TypeParam is implemented by TypeVar, TypeVarTuple and ParamSpec.
type TypeParam interface {
	Node
	typeParamNode()
}

// TypeVar is a plain `T` or `T: bound` type parameter.
type TypeVar struct {
	Range token.Range
	Name  *Ident
	Bound Expr // nil if unbounded
}

// TypeVarTuple is a `*Ts` type parameter.
type TypeVarTuple struct {
	Range token.Range
	Name  *Ident
}

// ParamSpec is a `**P` type parameter.
type ParamSpec struct {
	Range token.Range
	Name  *Ident
}

func (n *TypeVar) NodeRange() token.Range      { return n.Range }
func (n *TypeVarTuple) NodeRange() token.Range { return n.Range }
func (n *ParamSpec) NodeRange() token.Range    { return n.Range }

func (*TypeVar) typeParamNode()      {}
func (*TypeVarTuple) typeParamNode() {}
func (*ParamSpec) typeParamNode()    {}

// FStringElement is implemented by the literal-text and expression-hole
// parts an FString's Elements list interleaves.
type FStringElement interface {
	Node
	fstringElementNode()
}

// FStringLiteral is a run of literal text between expression holes, with
// escapes already decoded by package literal.
type FStringLiteral struct {
	Range token.Range
	Value string
}

// FStringExpression is one `{expr[=][!conv][:format]}` hole. Format is
// itself a nested FString so format specs can embed further holes
//; it is nil when absent.
type FStringExpression struct {
	Range      token.Range
	Value      Expr
	Conversion Conversion
	Format     *FString
	// SelfDocumented records the `=` debug form (`f"{x=}"`), which also
	// requires the sub-parser to retain Expression's exact source text
	// for re-emission.
	SelfDocumented bool
	ExprText       string
}

// FStringInvalid is the error-recovery placeholder used inside an
// FString's Elements when a hole cannot be parsed.
type FStringInvalid struct {
	Range token.Range
	Text  string
}

func (n *FStringLiteral) NodeRange() token.Range   { return n.Range }
func (n *FStringExpression) NodeRange() token.Range { return n.Range }
func (n *FStringInvalid) NodeRange() token.Range   { return n.Range }

func (*FStringLiteral) fstringElementNode()    {}
func (*FStringExpression) fstringElementNode() {}
func (*FStringInvalid) fstringElementNode()    {}
