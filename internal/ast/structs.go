package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// FieldInit supplies one field's value inside a StructInit or
// StructInline initializer.
type FieldInit struct {
	Token token.Token
	Name  string
	Value Expr
}

func (e *FieldInit) Tok() token.Token { return e.Token }
func (e *FieldInit) exprNode()        {}

// StructInit initializes a named struct type declared elsewhere via
// StructDecl. Struct declarations and their initializers have no
// runtime semantics in this version (spec §9 Open Questions): the
// checker types the expression but the evaluator treats it as a no-op.
type StructInit struct {
	Token  token.Token
	Name   string
	Fields []*FieldInit
}

func (e *StructInit) Tok() token.Token { return e.Token }
func (e *StructInit) exprNode()        {}

// StructInline initializes an anonymous (inline) struct type rather
// than one declared with StructDecl. Same no-op runtime status as
// StructInit.
type StructInline struct {
	Token  token.Token
	Type   rosetype.Struct
	Fields []*FieldInit
}

func (e *StructInline) Tok() token.Token { return e.Token }
func (e *StructInline) exprNode()        {}
