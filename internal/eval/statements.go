package eval

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/object"
)

// evalStmt evaluates a statement, returning Nil (or the last
// expression statement's value) on ordinary completion, or a
// control-flow/error Value to propagate (spec §4.5.2).
func (ev *Evaluator) evalStmt(env *object.Context, s ast.Stmt) object.Value {
	switch stmt := s.(type) {
	case *ast.Block:
		return ev.evalBlock(env, stmt)
	case *ast.ExpressionStmt:
		return ev.evalExpr(env, stmt.Expr)
	case *ast.Return:
		return ev.evalReturn(env, stmt)
	case *ast.Break:
		return ev.breakVal
	case *ast.Continue:
		return ev.contVal
	case *ast.If:
		return ev.evalIf(env, stmt)
	case *ast.While:
		return ev.evalWhile(env, stmt)
	case *ast.For:
		return ev.evalFor(env, stmt)
	default:
		return ev.Nil
	}
}

// evalBlock pushes a fresh child environment and evaluates inner
// declarations in order. Any Return/Break/Continue/Error stops the
// block immediately and propagates to the caller, which is either an
// enclosing block (propagate further) or a loop/function boundary
// that intercepts it (spec §4.5.2).
func (ev *Evaluator) evalBlock(env *object.Context, b *ast.Block) object.Value {
	child := object.Enclose(env)
	var result object.Value = ev.Nil
	for _, d := range b.Decls {
		result = ev.evalDecl(child, d)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalReturn(env *object.Context, s *ast.Return) object.Value {
	var value object.Value = ev.Void
	if s.Expr != nil {
		value = ev.evalExpr(env, s.Expr)
		if isSignal(value) {
			return value
		}
	}
	return &object.ReturnValue{Value: value}
}

func (ev *Evaluator) evalIf(env *object.Context, s *ast.If) object.Value {
	cond := ev.evalExpr(env, s.Cond)
	if isSignal(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return ev.evalBlock(env, s.Then)
	}
	if s.Else != nil {
		return ev.evalBlock(env, s.Else)
	}
	return ev.Nil
}

// evalWhile repeatedly evaluates Cond and, while truthy, Body. Break
// terminates the loop and yields Nil; Continue is consumed here and
// the loop proceeds to its next condition check; Return/Error
// propagate to the caller (spec §4.5.2).
func (ev *Evaluator) evalWhile(env *object.Context, s *ast.While) object.Value {
	for {
		cond := ev.evalExpr(env, s.Cond)
		if isSignal(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			return ev.Nil
		}
		result := ev.evalBlock(env, s.Body)
		switch result.(type) {
		case *object.BreakSignal:
			return ev.Nil
		case *object.ContinueSignal:
			continue
		case *object.ReturnValue, *object.Error:
			return result
		}
	}
}

// evalFor is a C-style counted loop: Init runs once in a fresh scope
// that also hosts Cond/Action/Body; Break/Continue/Return/Error are
// handled exactly as in evalWhile (spec §4.5.2).
func (ev *Evaluator) evalFor(env *object.Context, s *ast.For) object.Value {
	loopEnv := object.Enclose(env)
	if s.Init != nil {
		init := ev.evalDecl(loopEnv, s.Init)
		if isSignal(init) {
			return init
		}
	}
	for {
		if s.Cond != nil {
			cond := ev.evalExpr(loopEnv, s.Cond)
			if isSignal(cond) {
				return cond
			}
			if !object.IsTruthy(cond) {
				return ev.Nil
			}
		}
		result := ev.evalBlock(loopEnv, s.Body)
		switch result.(type) {
		case *object.BreakSignal:
			return ev.Nil
		case *object.ReturnValue, *object.Error:
			return result
		}
		if s.Action != nil {
			action := ev.evalExpr(loopEnv, s.Action)
			if isSignal(action) {
				return action
			}
		}
	}
}
