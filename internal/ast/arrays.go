package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// ArrayInit constructs an array value from a literal element list; Type
// carries the declared element type and dimensions (spec §3.2/§4.4).
type ArrayInit struct {
	Token    token.Token
	Type     rosetype.Array
	Elements []Expr
}

func (e *ArrayInit) Tok() token.Token { return e.Token }
func (e *ArrayInit) exprNode()        {}
