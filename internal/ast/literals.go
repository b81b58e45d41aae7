package ast

import "github.com/roselang/rose/internal/token"

// IdentRef names a binding to be resolved by environment lookup. It is
// also one of the two legal assignment targets (spec §3.2).
type IdentRef struct {
	Token token.Token
	Name  string
}

func (e *IdentRef) Tok() token.Token  { return e.Token }
func (e *IdentRef) exprNode()         {}
func (e *IdentRef) assignTargetNode() {}

// IntLiteral is a literal integer value.
type IntLiteral struct {
	Token token.Token
	Value int64
}

func (e *IntLiteral) Tok() token.Token { return e.Token }
func (e *IntLiteral) exprNode()        {}

// FloatLiteral is a literal floating-point value.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (e *FloatLiteral) Tok() token.Token { return e.Token }
func (e *FloatLiteral) exprNode()        {}

// CharLiteral is a literal single byte.
type CharLiteral struct {
	Token token.Token
	Value byte
}

func (e *CharLiteral) Tok() token.Token { return e.Token }
func (e *CharLiteral) exprNode()        {}

// StringLiteral is a literal string, stored with its escapes not yet
// decoded; decoding happens at display time (spec §6).
type StringLiteral struct {
	Token token.Token
	Value string
}

func (e *StringLiteral) Tok() token.Token { return e.Token }
func (e *StringLiteral) exprNode()        {}

// BoolLiteral is a literal `true`/`false`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (e *BoolLiteral) Tok() token.Token { return e.Token }
func (e *BoolLiteral) exprNode()        {}

// VoidLiteral is the literal `void` value.
type VoidLiteral struct {
	Token token.Token
}

func (e *VoidLiteral) Tok() token.Token { return e.Token }
func (e *VoidLiteral) exprNode()        {}

// NilLiteral is the literal `nil` value.
type NilLiteral struct {
	Token token.Token
}

func (e *NilLiteral) Tok() token.Token { return e.Token }
func (e *NilLiteral) exprNode()        {}
