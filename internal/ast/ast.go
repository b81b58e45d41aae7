// Package ast defines Rose's declaration/statement/expression tree
// (spec §3.2). Lexing and parsing are out of scope for this module
// (spec §1): a producer elsewhere is assumed to build these nodes: the
// tree here is what the type checker (internal/checker) and evaluator
// (internal/eval) consume.
//
// Each node owns its children exclusively; a Program owns the ordered
// top-level Decl list (spec §3.2, Ownership).
package ast

import "github.com/roselang/rose/internal/token"

// Node is the common interface every AST node implements: enough to
// recover the token that introduced it, for diagnostics.
type Node interface {
	// Tok returns the token that introduced this node.
	Tok() token.Token
}

// Decl is a top-level or block-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement: performs an action, produces no value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression: evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file: an ordered, flat list
// of declarations (spec has no module/import system).
type Program struct {
	Decls []Decl
}
