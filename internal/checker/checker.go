// Package checker implements Rose's static type checker (spec §4.4): a
// single pre-pass installs top-level function and struct names, then
// each node is visited and assigned a Type. Diagnostics are collected
// rather than raised as Go errors, so first failure does not abort,
// matching the teacher's split between pure analysis (its semantic
// package) and reporting (its cmd package).
package checker

import (
	"fmt"

	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/rosetype"
)

// Checker walks a program's declarations, deriving and recording a
// Type for each node it visits.
type Checker struct {
	result  *Result
	diags   Diagnostics
	scope   *typeScope
	returns [][]rosetype.Type // stack of the enclosing function's declared return types
}

// Check type-checks decls and returns the derived type information
// alongside any diagnostics raised. A nil or empty Diagnostics means
// TypeChecker::Success in spec.md's terms.
func Check(decls []ast.Decl) (*Result, Diagnostics) {
	c := &Checker{
		result: newResult(),
		scope:  newTypeScope(nil),
	}
	c.preDeclare(decls)
	for _, d := range decls {
		c.checkDecl(d)
	}
	return c.result, c.diags
}

func (c *Checker) errorf(line int, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}

// preDeclare installs every top-level function and struct name before
// any body is checked, so mutual reference between top-level
// declarations works (spec §4.4).
func (c *Checker) preDeclare(decls []ast.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *ast.FunctionDecl:
			ft := functionType(decl.Params, decl.Returns)
			c.scope.define(decl.Name, ft)
			c.result.functions[decl.Name] = ft
		case *ast.StructDecl:
			st := structType(decl.Fields)
			c.result.structs[decl.Name] = st
		}
	}
}

func functionType(params []*ast.FieldDecl, returns []rosetype.Type) rosetype.Function {
	paramTypes := make([]rosetype.Type, len(params))
	for i, p := range params {
		paramTypes[i] = p.Type
	}
	return rosetype.Function{Params: paramTypes, Returns: returns}
}

func structType(fields []*ast.FieldDecl) rosetype.Struct {
	named := make([]rosetype.Named, len(fields))
	for i, f := range fields {
		named[i] = rosetype.Named{Name: f.Name, Inner: f.Type}
	}
	return rosetype.Struct{Fields: named}
}

// pushScope enters a fresh child scope and returns a function that
// restores the previous one.
func (c *Checker) pushScope() func() {
	outer := c.scope
	c.scope = newTypeScope(outer)
	return func() { c.scope = outer }
}

func (c *Checker) record(d ast.Decl, t rosetype.Type) rosetype.Type {
	c.result.declTypes[d] = t
	return t
}

func (c *Checker) recordExpr(e ast.Expr, t rosetype.Type) rosetype.Type {
	c.result.exprTypes[e] = t
	return t
}

// checkDecl visits a declaration and returns its derived Type (nil on
// failure).
func (c *Checker) checkDecl(d ast.Decl) rosetype.Type {
	switch decl := d.(type) {
	case *ast.LetDecl:
		return c.record(d, c.checkBinding(decl.Token.Line, decl.Name, decl.DeclaredType, decl.Init))
	case *ast.ConstDecl:
		return c.record(d, c.checkBinding(decl.Token.Line, decl.Name, decl.DeclaredType, decl.Init))
	case *ast.FunctionDecl:
		return c.record(d, c.checkFunctionDecl(decl))
	case *ast.StructDecl:
		return c.record(d, c.result.structs[decl.Name])
	case *ast.FieldDecl:
		return c.record(d, decl.Type)
	case *ast.StmtDecl:
		return c.record(d, c.checkStmt(decl.Stmt))
	default:
		c.errorf(d.Tok().Line, "unchecked declaration kind %T", d)
		return nil
	}
}

// checkBinding implements the shared LetDecl/ConstDecl rule (spec
// §4.4): either a declared type or an init expression must be
// present; if both are, they must agree; if only a type is given the
// zero value's type is synthesised; the name is bound in the current
// scope to the result.
func (c *Checker) checkBinding(line int, name string, declared rosetype.Type, init ast.Expr) rosetype.Type {
	if declared == nil && init == nil {
		c.errorf(line, "%s: declaration has neither a declared type nor an initializer", name)
		return nil
	}
	var result rosetype.Type
	if init != nil {
		initType := c.checkExpr(init)
		switch {
		case declared == nil:
			result = initType
		case initType == nil:
			result = declared
		case !rosetype.Equal(declared, initType):
			c.errorf(line, "%s: declared type %s does not match initializer type %s", name, declared, initType)
			result = declared
		default:
			result = declared
		}
	} else {
		result = declared
	}
	c.scope.define(name, result)
	return result
}

// checkFunctionDecl builds the function's type, binds its name in the
// enclosing scope before checking the body (for recursion), then
// checks the body in a fresh scope populated with parameter bindings.
func (c *Checker) checkFunctionDecl(decl *ast.FunctionDecl) rosetype.Type {
	ft := functionType(decl.Params, decl.Returns)
	c.scope.define(decl.Name, ft)
	c.result.functions[decl.Name] = ft

	restore := c.pushScope()
	for _, p := range decl.Params {
		c.scope.define(p.Name, p.Type)
	}
	c.returns = append(c.returns, decl.Returns)
	for _, bd := range decl.Body.Decls {
		c.checkDecl(bd)
	}
	c.returns = c.returns[:len(c.returns)-1]
	restore()

	return ft
}

// checkStmt visits a statement and returns the Type recorded for it
// (Void for pure control-flow statements).
func (c *Checker) checkStmt(s ast.Stmt) rosetype.Type {
	switch stmt := s.(type) {
	case *ast.Block:
		c.checkBlock(stmt)
		return rosetype.VoidType
	case *ast.ExpressionStmt:
		return c.checkExpr(stmt.Expr)
	case *ast.Return:
		return c.checkReturn(stmt)
	case *ast.Break, *ast.Continue:
		return rosetype.VoidType
	case *ast.If:
		c.checkCondition(stmt.Cond)
		c.checkBlock(stmt.Then)
		if stmt.Else != nil {
			c.checkBlock(stmt.Else)
		}
		return rosetype.VoidType
	case *ast.While:
		c.checkCondition(stmt.Cond)
		c.checkBlock(stmt.Body)
		return rosetype.VoidType
	case *ast.For:
		c.checkFor(stmt)
		return rosetype.VoidType
	default:
		c.errorf(s.Tok().Line, "unchecked statement kind %T", s)
		return nil
	}
}

func (c *Checker) checkBlock(b *ast.Block) {
	restore := c.pushScope()
	for _, d := range b.Decls {
		c.checkDecl(d)
	}
	restore()
}

// checkCondition requires cond's type to be Bool (spec §4.4,
// IfStmt/WhileStmt).
func (c *Checker) checkCondition(cond ast.Expr) {
	t := c.checkExpr(cond)
	if t != nil && !rosetype.Equal(t, rosetype.BoolType) {
		c.errorf(cond.Tok().Line, "condition must be bool, got %s", t)
	}
}

func (c *Checker) checkFor(s *ast.For) {
	restore := c.pushScope()
	if s.Init != nil {
		c.checkDecl(s.Init)
	}
	if s.Cond != nil {
		c.checkCondition(s.Cond)
	}
	if s.Action != nil {
		c.checkExpr(s.Action)
	}
	for _, bd := range s.Body.Decls {
		c.checkDecl(bd)
	}
	restore()
}

// checkReturn requires the statement to be inside a function, and its
// expression's type (Void if absent) to match one of the enclosing
// function's declared return types (spec §4.4).
func (c *Checker) checkReturn(s *ast.Return) rosetype.Type {
	if len(c.returns) == 0 {
		c.errorf(s.Token.Line, "return outside of a function")
		return nil
	}
	expected := c.returns[len(c.returns)-1]

	var actual rosetype.Type = rosetype.VoidType
	if s.Expr != nil {
		actual = c.checkExpr(s.Expr)
	}

	if len(expected) == 0 {
		if s.Expr != nil {
			c.errorf(s.Token.Line, "function returns void but return statement carries a value")
		}
		return rosetype.VoidType
	}

	if actual == nil {
		return nil
	}
	for _, want := range expected {
		if rosetype.Equal(actual, want) {
			return actual
		}
	}
	c.errorf(s.Token.Line, "return type %s does not match any declared return type", actual)
	return actual
}
