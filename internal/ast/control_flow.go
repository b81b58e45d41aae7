package ast

import "github.com/roselang/rose/internal/token"

// If evaluates Cond and executes Then (or Else, if present and Cond is
// false) in a fresh child scope.
type If struct {
	Token token.Token
	Cond  Expr
	Then  *Block
	Else  *Block // nil if there is no else branch
}

func (s *If) Tok() token.Token { return s.Token }
func (s *If) stmtNode()        {}

// While repeatedly evaluates Cond and, while truthy, executes Body.
type While struct {
	Token token.Token
	Cond  Expr
	Body  *Block
}

func (s *While) Tok() token.Token { return s.Token }
func (s *While) stmtNode()        {}

// For is a C-style counted loop: Init runs once in a fresh scope that
// also hosts Cond/Action/Body, Cond gates each iteration, and Action
// runs after each Body execution.
type For struct {
	Token  token.Token
	Init   Decl
	Cond   Expr
	Action Expr
	Body   *Block
}

func (s *For) Tok() token.Token { return s.Token }
func (s *For) stmtNode()        {}
