package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// LetDecl declares a mutable binding. DeclaredType and Init are each
// optional, but the checker rejects a LetDecl with neither (spec §4.4).
type LetDecl struct {
	Token        token.Token
	Name         string
	DeclaredType rosetype.Type // nil if omitted
	Init         Expr          // nil if omitted
}

func (d *LetDecl) Tok() token.Token { return d.Token }
func (d *LetDecl) declNode()        {}

// ConstDecl declares an immutable binding. It shares LetDecl's
// well-formedness rules (spec §4.4); the evaluator treats it as a
// LetDecl at runtime (spec §4.5.1).
type ConstDecl struct {
	Token        token.Token
	Name         string
	DeclaredType rosetype.Type
	Init         Expr
}

func (d *ConstDecl) Tok() token.Token { return d.Token }
func (d *ConstDecl) declNode()        {}

// FieldDecl names one struct field or one function parameter.
type FieldDecl struct {
	Token token.Token
	Name  string
	Type  rosetype.Type
}

func (d *FieldDecl) Tok() token.Token { return d.Token }
func (d *FieldDecl) declNode()        {}

// FunctionDecl declares a named function: its parameters, declared
// return types (empty means Void), and body.
type FunctionDecl struct {
	Token   token.Token
	Name    string
	Params  []*FieldDecl
	Returns []rosetype.Type
	Body    *Block
}

func (d *FunctionDecl) Tok() token.Token { return d.Token }
func (d *FunctionDecl) declNode()        {}

// StructDecl declares a nominal struct type and its ordered fields.
// Struct declarations have no runtime semantics (spec §9 Open
// Questions): the evaluator never binds a value for one.
type StructDecl struct {
	Token  token.Token
	Name   string
	Fields []*FieldDecl
}

func (d *StructDecl) Tok() token.Token { return d.Token }
func (d *StructDecl) declNode()        {}

// StmtDecl wraps a statement so it can appear wherever a Decl is
// expected (block bodies are lists of Decl, per spec §3.2).
type StmtDecl struct {
	Token token.Token
	Stmt  Stmt
}

func (d *StmtDecl) Tok() token.Token { return d.Token }
func (d *StmtDecl) declNode()        {}
