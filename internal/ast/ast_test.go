package ast

import (
	"testing"

	"github.com/roselang/rose/internal/rosetype"
)

func TestIdentRefAndArrayMemberAreAssignTargets(t *testing.T) {
	var _ AssignTarget = Ident("x")
	var _ AssignTarget = AMem(Ident("a"), Int(0))
}

func TestProgramHoldsOrderedDecls(t *testing.T) {
	p := &Program{Decls: []Decl{
		Let("x", rosetype.IntType, Int(1)),
		ExprStmt(Ident("x")),
	}}
	if len(p.Decls) != 2 {
		t.Fatalf("len(Decls) = %d, want 2", len(p.Decls))
	}
	letDecl, ok := p.Decls[0].(*LetDecl)
	if !ok || letDecl.Name != "x" {
		t.Fatalf("Decls[0] = %#v, want *LetDecl named x", p.Decls[0])
	}
}

func TestBlockNestsStmtDeclsOfExpressionStatements(t *testing.T) {
	block := Blk(ExprStmt(call(Ident("println"))))
	if len(block.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(block.Decls))
	}
	sd, ok := block.Decls[0].(*StmtDecl)
	if !ok {
		t.Fatalf("Decls[0] type = %T, want *StmtDecl", block.Decls[0])
	}
	if _, ok := sd.Stmt.(*ExpressionStmt); !ok {
		t.Fatalf("StmtDecl.Stmt type = %T, want *ExpressionStmt", sd.Stmt)
	}
}

// call is a tiny local alias for Cl; it is lower-case so it stays
// private to the test file and does not collide with the Call node type.
func call(callee Expr, args ...Expr) Expr {
	return Cl(callee, args...)
}
