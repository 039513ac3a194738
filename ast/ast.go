// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast declares the tagged-union data model of a Python syntax
// tree: statements, expressions, patterns, f-string parts,
// parameters and comprehensions. It holds data definitions only; all
// construction happens in package parser.
package ast

import "github.com/pyast-go/pyparse/token"

// Node is implemented by every statement, expression, pattern and
// auxiliary production in the tree. NodeRange returns the node's byte
// Range, which by always covers at least its last
// constituent token's non-trivia extent.
type Node interface {
	NodeRange() token.Range
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pattern is implemented by all match-statement pattern nodes.
type Pattern interface {
	Node
	patternNode()
}

// Label is implemented by match-mapping and class-pattern leaves that name
// something a Keyword or pattern can hang off without being full Exprs.
type Label interface {
	Node
}

// Module is the root node for Module-mode and Ipython-mode parses.
type Module struct {
	Range token.Range
	Body  []Stmt
}

func (n *Module) NodeRange() token.Range { return n.Range }

// Expression is the root node for Expression-mode parses.
type Expression struct {
	Range token.Range
	Body  Expr
}

func (n *Expression) NodeRange() token.Range { return n.Range }

// ---------------------------------------------------------------------
// Statements

type FunctionDef struct {
	Range      token.Range
	IsAsync    bool
	Decorators []*Decorator
	Name       *Ident
	TypeParams *TypeParams
	Params     *Parameters
	Returns    Expr
	Body       []Stmt
}

type ClassDef struct {
	Range      token.Range
	Decorators []*Decorator
	Name       *Ident
	TypeParams *TypeParams
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
}

type Return struct {
	Range token.Range
	Value Expr // nil for bare `return`
}

type Delete struct {
	Range   token.Range
	Targets []Expr
}

type Assign struct {
	Range   token.Range
	Targets []Expr
	Value   Expr
}

type AugAssign struct {
	Range  token.Range
	Target Expr
	Op     Operator
	Value  Expr
}

type AnnAssign struct {
	Range      token.Range
	Target     Expr
	Annotation Expr
	Value      Expr // nil if no initializer
	Simple     bool
}

type TypeAlias struct {
	Range      token.Range
	Name       *Name
	TypeParams *TypeParams
	Value      Expr
}

type For struct {
	Range   token.Range
	IsAsync bool
	Target  Expr
	Iter    Expr
	Body    []Stmt
	Orelse  []Stmt
}

type While struct {
	Range  token.Range
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

type If struct {
	Range  token.Range
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

type With struct {
	Range   token.Range
	IsAsync bool
	Items   []*WithItem
	Body    []Stmt
}

type Match struct {
	Range   token.Range
	Subject Expr
	Cases   []*MatchCase
}

type Raise struct {
	Range token.Range
	Exc   Expr
	Cause Expr
}

type Try struct {
	Range     token.Range
	Body      []Stmt
	Handlers  []*ExceptHandler
	Orelse    []Stmt
	Finalbody []Stmt
	IsStar    bool
}

type Assert struct {
	Range token.Range
	Test  Expr
	Msg   Expr
}

type Import struct {
	Range token.Range
	Names []*Alias
}

type ImportFrom struct {
	Range  token.Range
	Module *Name // nil if `from . import x`
	Names  []*Alias
	Level  int
}

type Global struct {
	Range token.Range
	Names []*Ident
}

type Nonlocal struct {
	Range token.Range
	Names []*Ident
}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Range token.Range
	Value Expr
}

type Pass struct{ Range token.Range }
type Break struct{ Range token.Range }
type Continue struct{ Range token.Range }

// IpyEscapeCommand can appear as either a statement or an expression atom
//; it carries the one-byte `kind` ('!', '%', '?') the IPython-mode lexer
// reports. Kind cannot tell `?` from `??`: the postfix help form keeps
// Kind '?' and puts the "?" or "??" marker at the start of Value.
type IpyEscapeCommand struct {
	Range token.Range
	Kind  byte
	Value string
}

func (n *FunctionDef) NodeRange() token.Range      { return n.Range }
func (n *ClassDef) NodeRange() token.Range         { return n.Range }
func (n *Return) NodeRange() token.Range           { return n.Range }
func (n *Delete) NodeRange() token.Range           { return n.Range }
func (n *Assign) NodeRange() token.Range           { return n.Range }
func (n *AugAssign) NodeRange() token.Range        { return n.Range }
func (n *AnnAssign) NodeRange() token.Range        { return n.Range }
func (n *TypeAlias) NodeRange() token.Range        { return n.Range }
func (n *For) NodeRange() token.Range              { return n.Range }
func (n *While) NodeRange() token.Range            { return n.Range }
func (n *If) NodeRange() token.Range               { return n.Range }
func (n *With) NodeRange() token.Range             { return n.Range }
func (n *Match) NodeRange() token.Range            { return n.Range }
func (n *Raise) NodeRange() token.Range            { return n.Range }
func (n *Try) NodeRange() token.Range              { return n.Range }
func (n *Assert) NodeRange() token.Range           { return n.Range }
func (n *Import) NodeRange() token.Range           { return n.Range }
func (n *ImportFrom) NodeRange() token.Range       { return n.Range }
func (n *Global) NodeRange() token.Range           { return n.Range }
func (n *Nonlocal) NodeRange() token.Range         { return n.Range }
func (n *ExprStmt) NodeRange() token.Range         { return n.Range }
func (n *Pass) NodeRange() token.Range             { return n.Range }
func (n *Break) NodeRange() token.Range            { return n.Range }
func (n *Continue) NodeRange() token.Range         { return n.Range }
func (n *IpyEscapeCommand) NodeRange() token.Range { return n.Range }

func (*FunctionDef) stmtNode()      {}
func (*ClassDef) stmtNode()         {}
func (*Return) stmtNode()           {}
func (*Delete) stmtNode()           {}
func (*Assign) stmtNode()           {}
func (*AugAssign) stmtNode()        {}
func (*AnnAssign) stmtNode()        {}
func (*TypeAlias) stmtNode()        {}
func (*For) stmtNode()              {}
func (*While) stmtNode()            {}
func (*If) stmtNode()               {}
func (*With) stmtNode()             {}
func (*Match) stmtNode()            {}
func (*Raise) stmtNode()            {}
func (*Try) stmtNode()              {}
func (*Assert) stmtNode()           {}
func (*Import) stmtNode()           {}
func (*ImportFrom) stmtNode()       {}
func (*Global) stmtNode()           {}
func (*Nonlocal) stmtNode()         {}
func (*ExprStmt) stmtNode()         {}
func (*Pass) stmtNode()             {}
func (*Break) stmtNode()            {}
func (*Continue) stmtNode()         {}
func (*IpyEscapeCommand) stmtNode() {}
func (*IpyEscapeCommand) exprNode() {}
