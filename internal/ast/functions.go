package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// Function is an anonymous function literal: same shape as
// FunctionDecl but unnamed, evaluating to a Callable that closes over
// the environment active where it appears (spec §3.2/§4.5.3).
type Function struct {
	Token   token.Token
	Params  []*FieldDecl
	Returns []rosetype.Type
	Body    *Block
}

func (e *Function) Tok() token.Token { return e.Token }
func (e *Function) exprNode()        {}
