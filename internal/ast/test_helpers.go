package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// asType lets the helpers below accept either a rosetype.Type or nil
// (meaning "no declared type") without every caller needing to spell
// out a rosetype.Type-typed nil.
func asType(t any) rosetype.Type {
	if t == nil {
		return nil
	}
	return t.(rosetype.Type)
}

// This file collects small constructor helpers used by this module's
// test suites to build AST fragments by hand, since no parser lives in
// this repository (spec §1 places lexing/parsing out of scope). They
// are ordinary exported functions, not a DSL: each one mirrors a
// single node's fields.

// Tk builds a token with the given kind and literal on line 1. Tests
// that care about line numbers should build a token.Token directly.
func Tk(kind token.Kind, literal string) token.Token {
	return token.New(kind, literal, 1)
}

// Ident builds an *IdentRef.
func Ident(name string) *IdentRef {
	return &IdentRef{Token: Tk(token.IDENT, name), Name: name}
}

// Int builds an *IntLiteral.
func Int(v int64) *IntLiteral {
	return &IntLiteral{Token: Tk(token.INT, ""), Value: v}
}

// Float builds a *FloatLiteral.
func Float(v float64) *FloatLiteral {
	return &FloatLiteral{Token: Tk(token.FLOAT, ""), Value: v}
}

// Char builds a *CharLiteral.
func Char(v byte) *CharLiteral {
	return &CharLiteral{Token: Tk(token.CHAR, ""), Value: v}
}

// Str builds a *StringLiteral.
func Str(v string) *StringLiteral {
	return &StringLiteral{Token: Tk(token.STRING, v), Value: v}
}

// Bool builds a *BoolLiteral.
func Bool(v bool) *BoolLiteral {
	lit := "false"
	if v {
		lit = "true"
	}
	return &BoolLiteral{Token: Tk(token.TRUE, lit), Value: v}
}

// Void builds a *VoidLiteral.
func Void() *VoidLiteral { return &VoidLiteral{Token: Tk(token.VOID_KW, "void")} }

// Nil builds a *NilLiteral.
func Nil() *NilLiteral { return &NilLiteral{Token: Tk(token.NIL_KW, "nil")} }

// Let builds a *LetDecl.
func Let(name string, declaredType any, init Expr) *LetDecl {
	return &LetDecl{Token: Tk(token.IDENT, "let"), Name: name, DeclaredType: asType(declaredType), Init: init}
}

// Const builds a *ConstDecl.
func Const(name string, declaredType any, init Expr) *ConstDecl {
	return &ConstDecl{Token: Tk(token.IDENT, "const"), Name: name, DeclaredType: asType(declaredType), Init: init}
}

// Field builds a *FieldDecl.
func Field(name string, typ any) *FieldDecl {
	return &FieldDecl{Token: Tk(token.IDENT, name), Name: name, Type: asType(typ)}
}

// SD wraps a statement as a *StmtDecl, for placement in a Block.
func SD(s Stmt) *StmtDecl {
	return &StmtDecl{Token: s.Tok(), Stmt: s}
}

// ExprStmt builds an *ExpressionStmt wrapped as a Decl.
func ExprStmt(e Expr) Decl {
	return SD(&ExpressionStmt{Token: e.Tok(), Expr: e})
}

// Blk builds a *Block from a list of Decls.
func Blk(decls ...Decl) *Block {
	return &Block{Token: Tk(token.LBRACE, "{"), Decls: decls}
}

// Ret builds a *Return.
func Ret(e Expr) *Return {
	return &Return{Token: Tk(token.IDENT, "return"), Expr: e}
}

// Brk builds a *Break.
func Brk() *Break { return &Break{Token: Tk(token.IDENT, "break")} }

// Cont builds a *Continue.
func Cont() *Continue { return &Continue{Token: Tk(token.IDENT, "continue")} }

// IfS builds an *If.
func IfS(cond Expr, then *Block, els *Block) *If {
	return &If{Token: Tk(token.IDENT, "if"), Cond: cond, Then: then, Else: els}
}

// WhileS builds a *While.
func WhileS(cond Expr, body *Block) *While {
	return &While{Token: Tk(token.IDENT, "while"), Cond: cond, Body: body}
}

// ForS builds a *For.
func ForS(init Decl, cond Expr, action Expr, body *Block) *For {
	return &For{Token: Tk(token.IDENT, "for"), Init: init, Cond: cond, Action: action, Body: body}
}

// Bin builds a *Binary.
func Bin(left Expr, op token.Kind, right Expr) *Binary {
	return &Binary{Token: left.Tok(), Left: left, Op: Tk(op, ""), Right: right}
}

// Logic builds a *Logical.
func Logic(left Expr, op token.Kind, right Expr) *Logical {
	return &Logical{Token: left.Tok(), Left: left, Op: Tk(op, ""), Right: right}
}

// Un builds a *Unary.
func Un(op token.Kind, operand Expr) *Unary {
	return &Unary{Token: Tk(op, ""), Op: Tk(op, ""), Operand: operand}
}

// Upd builds an *Update.
func Upd(operand Expr, op token.Kind) *Update {
	return &Update{Token: operand.Tok(), Operand: operand, Op: Tk(op, "")}
}

// Asn builds an *Assign.
func Asn(target AssignTarget, op token.Kind, value Expr) *Assign {
	return &Assign{Token: target.Tok(), Target: target, Op: Tk(op, ""), Value: value}
}

// Grp builds a *Group.
func Grp(inner Expr) *Group {
	return &Group{Token: inner.Tok(), Inner: inner}
}

// Cl builds a *Call.
func Cl(callee Expr, args ...Expr) *Call {
	return &Call{Token: callee.Tok(), Callee: callee, Args: args}
}

// Cnd builds a *Conditional.
func Cnd(cond, then, els Expr) *Conditional {
	return &Conditional{Token: cond.Tok(), Cond: cond, Then: then, Else: els}
}

// Mem builds a *Member.
func Mem(receiver Expr, name string) *Member {
	return &Member{Token: receiver.Tok(), Receiver: receiver, Name: name}
}

// AMem builds an *ArrayMember.
func AMem(receiver Expr, indices ...Expr) *ArrayMember {
	return &ArrayMember{Token: receiver.Tok(), Receiver: receiver, Indices: indices}
}

// Cst builds a *Cast.
func Cst(target Expr, typ any) *Cast {
	return &Cast{Token: target.Tok(), Target: target, Type: asType(typ)}
}

// ArrLit builds an *ArrayInit.
func ArrLit(typ rosetype.Array, elements ...Expr) *ArrayInit {
	return &ArrayInit{Token: Tk(token.LBRACKET, "["), Type: typ, Elements: elements}
}

// Fn builds a *FunctionDecl.
func Fn(name string, params []*FieldDecl, returns []rosetype.Type, body *Block) *FunctionDecl {
	return &FunctionDecl{Token: Tk(token.IDENT, name), Name: name, Params: params, Returns: returns, Body: body}
}

// FnExpr builds an anonymous *Function.
func FnExpr(params []*FieldDecl, returns []rosetype.Type, body *Block) *Function {
	return &Function{Token: Tk(token.IDENT, "func"), Params: params, Returns: returns, Body: body}
}

// StructDeclNode builds a *StructDecl.
func StructDeclNode(name string, fields ...*FieldDecl) *StructDecl {
	return &StructDecl{Token: Tk(token.IDENT, name), Name: name, Fields: fields}
}
