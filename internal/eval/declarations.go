package eval

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/object"
	"github.com/roselang/rose/internal/roseerr"
	"github.com/roselang/rose/internal/rosetype"
)

// evalDecl evaluates one declaration in env, returning Nil on success
// or a control-flow/error Value to propagate (spec §4.5.1).
func (ev *Evaluator) evalDecl(env *object.Context, d ast.Decl) object.Value {
	switch decl := d.(type) {
	case *ast.LetDecl:
		return ev.evalBinding(env, decl.Token.Line, decl.Name, decl.DeclaredType, decl.Init)
	case *ast.ConstDecl:
		// ConstDecl is treated as LetDecl at runtime (spec §4.5.1);
		// neither the checker nor the evaluator rejects a later
		// assignment to a const binding.
		return ev.evalBinding(env, decl.Token.Line, decl.Name, decl.DeclaredType, decl.Init)
	case *ast.FunctionDecl:
		return ev.evalFunctionDecl(env, decl)
	case *ast.StmtDecl:
		return ev.evalStmt(env, decl.Stmt)
	case *ast.FieldDecl, *ast.StructDecl:
		// Covered entirely by the checker; no runtime value to bind
		// (spec §4.5.1, §9 Open Questions).
		return ev.Nil
	default:
		return object.NewError(roseerr.Runtime, d.Tok().Line, "unevaluable declaration")
	}
}

// evalBinding implements the shared LetDecl/ConstDecl runtime rule: a
// duplicate name in the current frame is an error; otherwise the init
// expression (or the declared type's zero value, if init is absent)
// is bound.
func (ev *Evaluator) evalBinding(env *object.Context, line int, name string, declaredType rosetype.Type, init ast.Expr) object.Value {
	if env.Exists(name) {
		return object.NewError(roseerr.Runtime, line, name+": already defined")
	}

	var value object.Value
	if init != nil {
		value = ev.evalExpr(env, init)
		if isSignal(value) {
			return value
		}
	} else {
		value = ev.zeroValue(declaredType)
	}

	env.Define(name, value)
	return ev.Nil
}

// zeroValue synthesises the runtime counterpart of the checker's
// declared-type zero value (spec §4.4): Int->0, Float->0.0, Char->
// '\0', String->"", Bool->false, otherwise Nil.
func (ev *Evaluator) zeroValue(t rosetype.Type) object.Value {
	if t == nil {
		return ev.Nil
	}
	switch t.Tag() {
	case rosetype.Int:
		return &object.Integer{Value: 0}
	case rosetype.Float:
		return &object.Float{Value: 0}
	case rosetype.Char:
		return &object.Char{Value: 0}
	case rosetype.String:
		return &object.String{Value: ""}
	case rosetype.Bool:
		return ev.False
	default:
		return ev.Nil
	}
}

// evalFunctionDecl builds a Function value capturing env as its
// closure environment and binds it under decl.Name. A duplicate
// definition is an error (spec §4.5.1).
func (ev *Evaluator) evalFunctionDecl(env *object.Context, decl *ast.FunctionDecl) object.Value {
	if env.Exists(decl.Name) {
		return object.NewError(roseerr.Runtime, decl.Token.Line, decl.Name+": already defined")
	}
	fn := &object.Function{
		FuncType: rosetype.Function{Params: paramTypes(decl.Params), Returns: decl.Returns},
		Env:      env,
		Params:   decl.Params,
		Body:     decl.Body,
	}
	env.Define(decl.Name, fn)
	return ev.Nil
}

func paramTypes(params []*ast.FieldDecl) []rosetype.Type {
	types := make([]rosetype.Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}
