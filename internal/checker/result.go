package checker

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/rosetype"
)

// Result records the Type the checker derived for every declaration
// and expression it visited, so the evaluator can query it afterward
// (spec §4.4: "get_decl_type / get_expr_type").
type Result struct {
	declTypes map[ast.Decl]rosetype.Type
	exprTypes map[ast.Expr]rosetype.Type
	functions map[string]rosetype.Function
	structs   map[string]rosetype.Struct
}

func newResult() *Result {
	return &Result{
		declTypes: make(map[ast.Decl]rosetype.Type),
		exprTypes: make(map[ast.Expr]rosetype.Type),
		functions: make(map[string]rosetype.Function),
		structs:   make(map[string]rosetype.Struct),
	}
}

// GetDeclType returns the Type derived for d, if any.
func (r *Result) GetDeclType(d ast.Decl) (rosetype.Type, bool) {
	t, ok := r.declTypes[d]
	return t, ok
}

// GetExprType returns the Type derived for e, if any.
func (r *Result) GetExprType(e ast.Expr) (rosetype.Type, bool) {
	t, ok := r.exprTypes[e]
	return t, ok
}

// FunctionType returns the Function type bound to a top-level function
// name, if one was declared.
func (r *Result) FunctionType(name string) (rosetype.Function, bool) {
	t, ok := r.functions[name]
	return t, ok
}

// StructType returns the Struct type bound to a top-level struct name,
// if one was declared.
func (r *Result) StructType(name string) (rosetype.Struct, bool) {
	t, ok := r.structs[name]
	return t, ok
}
