package ast

import "github.com/roselang/rose/internal/token"

// Block is an ordered list of declarations sharing one lexical scope.
// A Block may appear as a function body, an if/while/for body, or
// nested directly as a statement.
type Block struct {
	Token token.Token
	Decls []Decl
}

func (s *Block) Tok() token.Token { return s.Token }
func (s *Block) stmtNode()        {}

// ExpressionStmt evaluates Expr for its side effects and discards the
// result (spec §4.5.2).
type ExpressionStmt struct {
	Token token.Token
	Expr  Expr
}

func (s *ExpressionStmt) Tok() token.Token { return s.Token }
func (s *ExpressionStmt) stmtNode()        {}

// Return evaluates Expr (or yields Void if absent) and unwinds to the
// nearest enclosing function.
type Return struct {
	Token token.Token
	Expr  Expr // nil means a bare "return;"
}

func (s *Return) Tok() token.Token { return s.Token }
func (s *Return) stmtNode()        {}

// Break unwinds to the nearest enclosing loop and terminates it.
type Break struct {
	Token token.Token
}

func (s *Break) Tok() token.Token { return s.Token }
func (s *Break) stmtNode()        {}

// Continue unwinds to the nearest enclosing loop and starts its next
// iteration.
type Continue struct {
	Token token.Token
}

func (s *Continue) Tok() token.Token { return s.Token }
func (s *Continue) stmtNode()        {}
