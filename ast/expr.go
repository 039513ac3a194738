package ast

import "github.com/pyast-go/pyparse/token"

type BoolOp struct {
	Range  token.Range
	Op     BoolOpKind
	Values []Expr
}

type NamedExpr struct {
	Range  token.Range
	Target *Name
	Value  Expr
}

type BinOp struct {
	Range token.Range
	Left  Expr
	Op    Operator
	Right Expr
}

type UnaryOp struct {
	Range   token.Range
	Op      UnaryOpKind
	Operand Expr
}

type Lambda struct {
	Range  token.Range
	Params *Parameters
	Body   Expr
}

type IfExp struct {
	Range  token.Range
	Test   Expr
	Body   Expr
	Orelse Expr
}

// Dict represents `{k: v, ...}`. A nil entry in Keys at index i marks a
// `**value` unpack, whose value is Values[i].
type Dict struct {
	Range  token.Range
	Keys   []Expr
	Values []Expr
}

type Set struct {
	Range token.Range
	Elts  []Expr
}

type ListComp struct {
	Range      token.Range
	Elt        Expr
	Generators []*Comprehension
}

type SetComp struct {
	Range      token.Range
	Elt        Expr
	Generators []*Comprehension
}

type DictComp struct {
	Range      token.Range
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

type GeneratorExp struct {
	Range      token.Range
	Elt        Expr
	Generators []*Comprehension
}

type Await struct {
	Range token.Range
	Value Expr
}

type Yield struct {
	Range token.Range
	Value Expr // nil for bare `yield`
}

type YieldFrom struct {
	Range token.Range
	Value Expr
}

type Compare struct {
	Range       token.Range
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

type Call struct {
	Range token.Range
	Func  Expr
	Args  *Arguments
}

// FString is the root of a (possibly concatenated) f-string literal; its
// Elements interleave literal text with expression holes.
type FString struct {
	Range    token.Range
	Elements []FStringElement
}

type StringLiteral struct {
	Range token.Range
	Value string
}

type BytesLiteral struct {
	Range token.Range
	Value []byte
}

// NumberKind distinguishes the three numeric literal forms.
type NumberKind int

const (
	NumberInt NumberKind = iota
	NumberFloat
	NumberComplex
)

// NumberLiteral retains the literal's exact source text in Value; decoding
// to a machine number is a concern of the (out-of-scope) evaluator, not the
// parser.
type NumberLiteral struct {
	Range token.Range
	Kind  NumberKind
	Value string
}

type BooleanLiteral struct {
	Range token.Range
	Value bool
}

type NoneLiteral struct{ Range token.Range }
type EllipsisLiteral struct{ Range token.Range }

type Attribute struct {
	Range token.Range
	Value Expr
	Attr  *Ident
	Ctx   ExprContext
}

type Subscript struct {
	Range token.Range
	Value Expr
	Slice Expr
	Ctx   ExprContext
}

type Starred struct {
	Range token.Range
	Value Expr
	Ctx   ExprContext
}

// Name is a bound or free identifier reference. Parenthesized records
// whether the reference was wrapped in `(...)`, the same way Tuple
// tracks it, since annotated-assignment targets need to tell `x` apart
// from `(x)`.
type Name struct {
	Range         token.Range
	Id            string
	Ctx           ExprContext
	Parenthesized bool
}

type List struct {
	Range token.Range
	Elts  []Expr
	Ctx   ExprContext
}

// Tuple records whether it was built via the parenthesized-expression path
// so printers/linters outside
// this module's scope can tell `(x, y)` from `x, y`.
type Tuple struct {
	Range         token.Range
	Elts          []Expr
	Parenthesized bool
	Ctx           ExprContext
}

type Slice struct {
	Range token.Range
	Lower Expr
	Upper Expr
	Step  Expr
}

// Invalid is the placeholder node error recovery inserts in expression
// position, carrying the exact source text of the offending range.
type Invalid struct {
	Range token.Range
	Text  string
}

func (n *BoolOp) NodeRange() token.Range          { return n.Range }
func (n *NamedExpr) NodeRange() token.Range       { return n.Range }
func (n *BinOp) NodeRange() token.Range           { return n.Range }
func (n *UnaryOp) NodeRange() token.Range         { return n.Range }
func (n *Lambda) NodeRange() token.Range          { return n.Range }
func (n *IfExp) NodeRange() token.Range           { return n.Range }
func (n *Dict) NodeRange() token.Range            { return n.Range }
func (n *Set) NodeRange() token.Range             { return n.Range }
func (n *ListComp) NodeRange() token.Range        { return n.Range }
func (n *SetComp) NodeRange() token.Range         { return n.Range }
func (n *DictComp) NodeRange() token.Range        { return n.Range }
func (n *GeneratorExp) NodeRange() token.Range     { return n.Range }
func (n *Await) NodeRange() token.Range           { return n.Range }
func (n *Yield) NodeRange() token.Range           { return n.Range }
func (n *YieldFrom) NodeRange() token.Range       { return n.Range }
func (n *Compare) NodeRange() token.Range         { return n.Range }
func (n *Call) NodeRange() token.Range            { return n.Range }
func (n *FString) NodeRange() token.Range         { return n.Range }
func (n *StringLiteral) NodeRange() token.Range   { return n.Range }
func (n *BytesLiteral) NodeRange() token.Range    { return n.Range }
func (n *NumberLiteral) NodeRange() token.Range   { return n.Range }
func (n *BooleanLiteral) NodeRange() token.Range  { return n.Range }
func (n *NoneLiteral) NodeRange() token.Range     { return n.Range }
func (n *EllipsisLiteral) NodeRange() token.Range { return n.Range }
func (n *Attribute) NodeRange() token.Range       { return n.Range }
func (n *Subscript) NodeRange() token.Range       { return n.Range }
func (n *Starred) NodeRange() token.Range         { return n.Range }
func (n *Name) NodeRange() token.Range            { return n.Range }
func (n *List) NodeRange() token.Range            { return n.Range }
func (n *Tuple) NodeRange() token.Range           { return n.Range }
func (n *Slice) NodeRange() token.Range           { return n.Range }
func (n *Invalid) NodeRange() token.Range         { return n.Range }

func (*BoolOp) exprNode()          {}
func (*NamedExpr) exprNode()       {}
func (*BinOp) exprNode()           {}
func (*UnaryOp) exprNode()         {}
func (*Lambda) exprNode()          {}
func (*IfExp) exprNode()           {}
func (*Dict) exprNode()            {}
func (*Set) exprNode()             {}
func (*ListComp) exprNode()        {}
func (*SetComp) exprNode()         {}
func (*DictComp) exprNode()        {}
func (*GeneratorExp) exprNode()    {}
func (*Await) exprNode()           {}
func (*Yield) exprNode()           {}
func (*YieldFrom) exprNode()       {}
func (*Compare) exprNode()         {}
func (*Call) exprNode()            {}
func (*FString) exprNode()         {}
func (*StringLiteral) exprNode()   {}
func (*BytesLiteral) exprNode()    {}
func (*NumberLiteral) exprNode()   {}
func (*BooleanLiteral) exprNode()  {}
func (*NoneLiteral) exprNode()     {}
func (*EllipsisLiteral) exprNode() {}
func (*Attribute) exprNode()       {}
func (*Subscript) exprNode()       {}
func (*Starred) exprNode()         {}
func (*Name) exprNode()            {}
func (*List) exprNode()            {}
func (*Tuple) exprNode()           {}
func (*Slice) exprNode()           {}
func (*Invalid) exprNode()         {}

// Ident is a bare identifier used where an expression wrapper (and hence an
// ExprContext) is not meaningful: function/class names, attribute/keyword
// labels, import aliases, parameter names.
type Ident struct {
	Range token.Range
	Name  string
}

func (n *Ident) NodeRange() token.Range { return n.Range }
