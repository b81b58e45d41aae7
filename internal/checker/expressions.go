package checker

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// checkExpr visits an expression and returns its derived Type (nil on
// failure, after a diagnostic has been recorded).
func (c *Checker) checkExpr(e ast.Expr) rosetype.Type {
	switch expr := e.(type) {
	case *ast.IntLiteral:
		return c.recordExpr(e, rosetype.IntType)
	case *ast.FloatLiteral:
		return c.recordExpr(e, rosetype.FloatType)
	case *ast.CharLiteral:
		return c.recordExpr(e, rosetype.CharType)
	case *ast.StringLiteral:
		return c.recordExpr(e, rosetype.StringType)
	case *ast.BoolLiteral:
		return c.recordExpr(e, rosetype.BoolType)
	case *ast.VoidLiteral:
		return c.recordExpr(e, rosetype.VoidType)
	case *ast.NilLiteral:
		return c.recordExpr(e, rosetype.NilType)
	case *ast.IdentRef:
		return c.checkIdentRef(expr)
	case *ast.Group:
		return c.recordExpr(e, c.checkExpr(expr.Inner))
	case *ast.Binary:
		return c.recordExpr(e, c.checkBinary(expr))
	case *ast.Logical:
		return c.recordExpr(e, c.checkLogical(expr))
	case *ast.Unary:
		return c.recordExpr(e, c.checkUnary(expr))
	case *ast.Update:
		return c.recordExpr(e, c.checkUpdate(expr))
	case *ast.Assign:
		return c.recordExpr(e, c.checkAssign(expr))
	case *ast.Call:
		return c.recordExpr(e, c.checkCall(expr))
	case *ast.Conditional:
		return c.recordExpr(e, c.checkConditional(expr))
	case *ast.ArrayInit:
		return c.recordExpr(e, c.checkArrayInit(expr))
	case *ast.ArrayMember:
		return c.recordExpr(e, c.checkArrayMember(expr))
	case *ast.Cast:
		c.checkExpr(expr.Target)
		return c.recordExpr(e, expr.Type)
	case *ast.Function:
		return c.recordExpr(e, c.checkFunctionExpr(expr))
	case *ast.Member:
		// Struct field access has no runtime semantics in this version
		// (spec §9 Open Questions); type it permissively as Void so
		// surrounding expressions can still be checked.
		c.checkExpr(expr.Receiver)
		return c.recordExpr(e, rosetype.VoidType)
	case *ast.StructInit:
		return c.recordExpr(e, c.checkStructInit(expr))
	case *ast.StructInline:
		return c.recordExpr(e, c.checkStructInline(expr))
	default:
		c.errorf(e.Tok().Line, "unchecked expression kind %T", e)
		return nil
	}
}

func (c *Checker) checkIdentRef(e *ast.IdentRef) rosetype.Type {
	t, ok := c.scope.lookup(e.Name)
	if !ok {
		c.errorf(e.Token.Line, "%s: undefined", e.Name)
		return nil
	}
	return c.recordExpr(e, t)
}

var equalityTags = map[rosetype.Tag]bool{
	rosetype.Int:    true,
	rosetype.Float:  true,
	rosetype.String: true,
	rosetype.Char:   true,
	rosetype.Bool:   true,
}

func isStringOrChar(t rosetype.Type) bool {
	return t != nil && (t.Tag() == rosetype.String || t.Tag() == rosetype.Char)
}

func isRelational(k token.Kind) bool {
	switch k {
	case token.LT, token.GT, token.LT_EQ, token.GT_EQ:
		return true
	}
	return false
}

func isBitwise(k token.Kind) bool {
	switch k {
	case token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR:
		return true
	}
	return false
}

// numericResult widens to Float when either operand is Float,
// otherwise Int (spec §4.4 Binary rules).
func numericResult(a, b rosetype.Type) rosetype.Type {
	if a.Tag() == rosetype.Float || b.Tag() == rosetype.Float {
		return rosetype.FloatType
	}
	return rosetype.IntType
}

func (c *Checker) checkBinary(e *ast.Binary) rosetype.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)
	if left == nil || right == nil {
		return nil
	}
	op := e.Op.Kind
	line := e.Token.Line

	switch {
	case op == token.PLUS:
		if isStringOrChar(left) && isStringOrChar(right) {
			return rosetype.StringType
		}
		if !rosetype.IsNumeric(left) || !rosetype.IsNumeric(right) {
			c.errorf(line, "operator %s requires numeric or string/char operands, got %s and %s", op, left, right)
			return nil
		}
		return numericResult(left, right)

	case op == token.MINUS || op == token.STAR || op == token.SLASH || op == token.PERCENT || isRelational(op):
		if !rosetype.IsNumeric(left) || !rosetype.IsNumeric(right) {
			c.errorf(line, "operator %s requires numeric operands, got %s and %s", op, left, right)
			return nil
		}
		if isRelational(op) {
			return rosetype.BoolType
		}
		return numericResult(left, right)

	case op == token.EQ || op == token.NOT_EQ:
		if !equalityTags[left.Tag()] || !equalityTags[right.Tag()] {
			c.errorf(line, "operator %s does not support %s and %s", op, left, right)
			return nil
		}
		if !rosetype.Equal(left, right) && !(rosetype.IsNumeric(left) && rosetype.IsNumeric(right)) {
			c.errorf(line, "operator %s requires matching types, got %s and %s", op, left, right)
			return nil
		}
		return rosetype.BoolType

	case isBitwise(op):
		if left.Tag() != rosetype.Int || right.Tag() != rosetype.Int {
			c.errorf(line, "operator %s requires int operands, got %s and %s", op, left, right)
			return nil
		}
		return rosetype.IntType

	default:
		c.errorf(line, "unchecked binary operator %s", op)
		return nil
	}
}

func (c *Checker) checkLogical(e *ast.Logical) rosetype.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)
	if left != nil && !rosetype.Equal(left, rosetype.BoolType) {
		c.errorf(e.Token.Line, "left operand of %s must be bool, got %s", e.Op.Kind, left)
	}
	if right != nil && !rosetype.Equal(right, rosetype.BoolType) {
		c.errorf(e.Token.Line, "right operand of %s must be bool, got %s", e.Op.Kind, right)
	}
	return rosetype.BoolType
}

func (c *Checker) checkUnary(e *ast.Unary) rosetype.Type {
	operand := c.checkExpr(e.Operand)
	if operand == nil {
		return nil
	}
	switch e.Op.Kind {
	case token.PLUS, token.MINUS:
		if !rosetype.IsNumeric(operand) {
			c.errorf(e.Token.Line, "unary %s requires a numeric operand, got %s", e.Op.Kind, operand)
			return nil
		}
		return operand
	case token.TILDE:
		if operand.Tag() != rosetype.Int {
			c.errorf(e.Token.Line, "unary ~ requires an int operand, got %s", operand)
			return nil
		}
		return operand
	case token.BANG:
		if !rosetype.Equal(operand, rosetype.BoolType) {
			c.errorf(e.Token.Line, "unary ! requires a bool operand, got %s", operand)
		}
		return rosetype.BoolType
	default:
		c.errorf(e.Token.Line, "unchecked unary operator %s", e.Op.Kind)
		return nil
	}
}

func (c *Checker) checkUpdate(e *ast.Update) rosetype.Type {
	operand := c.checkExpr(e.Operand)
	if operand == nil {
		return nil
	}
	if !rosetype.IsNumeric(operand) {
		c.errorf(e.Token.Line, "%s requires an int or float operand, got %s", e.Op.Kind, operand)
		return nil
	}
	return operand
}

func (c *Checker) checkAssign(e *ast.Assign) rosetype.Type {
	targetType := c.checkExpr(e.Target)
	valueType := c.checkExpr(e.Value)
	if targetType == nil || valueType == nil {
		return nil
	}
	if !rosetype.Equal(targetType, valueType) {
		c.errorf(e.Token.Line, "cannot assign %s to target of type %s", valueType, targetType)
		return nil
	}
	return targetType
}

// builtinNames are the callables the evaluator installs into every
// root environment (spec §4.2); they have no declaration of their own
// for checkCall to find, so calls to them are checked structurally
// here instead of through the ordinary Function-type path.
var builtinNames = map[string]bool{
	"print": true, "println": true, "input": true, "len": true,
}

func (c *Checker) checkCall(e *ast.Call) rosetype.Type {
	if ident, ok := e.Callee.(*ast.IdentRef); ok && builtinNames[ident.Name] {
		if _, shadowed := c.scope.lookup(ident.Name); !shadowed {
			return c.checkBuiltinCall(e, ident.Name)
		}
	}

	calleeType := c.checkExpr(e.Callee)
	argTypes := make([]rosetype.Type, len(e.Args))
	for i, a := range e.Args {
		argTypes[i] = c.checkExpr(a)
	}
	if calleeType == nil {
		return nil
	}
	fn, ok := calleeType.(rosetype.Function)
	if !ok {
		c.errorf(e.Token.Line, "call target is not a function, got %s", calleeType)
		return nil
	}
	if len(argTypes) != len(fn.Params) {
		c.errorf(e.Token.Line, "expected %d argument(s), got %d", len(fn.Params), len(argTypes))
		return nil
	}
	for i, want := range fn.Params {
		if argTypes[i] == nil {
			continue
		}
		if !rosetype.Equal(argTypes[i], want) {
			c.errorf(e.Token.Line, "argument %d: expected %s, got %s", i+1, want, argTypes[i])
		}
	}
	if len(fn.Returns) == 0 {
		return rosetype.VoidType
	}
	return fn.Returns[0]
}

// checkBuiltinCall types a call to one of the fixed builtin names.
// print/println/input are all variadic, printing their arguments as a
// prompt in input's case, and accept any argument types; len takes one
// String or Array argument and returns Int.
func (c *Checker) checkBuiltinCall(e *ast.Call, name string) rosetype.Type {
	for _, a := range e.Args {
		c.checkExpr(a)
	}
	switch name {
	case "print", "println":
		return rosetype.VoidType
	case "input":
		return rosetype.StringType
	case "len":
		if len(e.Args) != 1 {
			c.errorf(e.Token.Line, "len expects exactly one argument, got %d", len(e.Args))
			return rosetype.IntType
		}
		argType, ok := c.result.exprTypes[e.Args[0]]
		if ok && argType != nil && argType.Tag() != rosetype.String {
			if _, isArray := argType.(rosetype.Array); !isArray {
				c.errorf(e.Token.Line, "len: unsupported argument type %s", argType)
			}
		}
		return rosetype.IntType
	default:
		return nil
	}
}

func (c *Checker) checkConditional(e *ast.Conditional) rosetype.Type {
	condType := c.checkExpr(e.Cond)
	if condType != nil && !rosetype.Equal(condType, rosetype.BoolType) {
		c.errorf(e.Token.Line, "conditional test must be bool, got %s", condType)
	}
	thenType := c.checkExpr(e.Then)
	elseType := c.checkExpr(e.Else)
	if thenType != nil && elseType != nil && !rosetype.Equal(thenType, elseType) {
		c.errorf(e.Token.Line, "conditional branches have different types: %s vs %s", thenType, elseType)
	}
	return thenType
}

func (c *Checker) checkArrayInit(e *ast.ArrayInit) rosetype.Type {
	for _, el := range e.Elements {
		t := c.checkExpr(el)
		if t != nil && !rosetype.Equal(t, e.Type.Elem) {
			c.errorf(el.Tok().Line, "array element type %s does not match declared element type %s", t, e.Type.Elem)
		}
	}
	return e.Type
}

func (c *Checker) checkArrayMember(e *ast.ArrayMember) rosetype.Type {
	receiverType := c.checkExpr(e.Receiver)
	for _, idx := range e.Indices {
		idxType := c.checkExpr(idx)
		if idxType != nil && idxType.Tag() != rosetype.Int {
			c.errorf(idx.Tok().Line, "array index must be int, got %s", idxType)
		}
	}
	if receiverType == nil {
		return nil
	}
	arr, ok := receiverType.(rosetype.Array)
	if !ok {
		c.errorf(e.Token.Line, "indexed value is not an array, got %s", receiverType)
		return nil
	}
	return arr.Elem
}

func (c *Checker) checkFunctionExpr(e *ast.Function) rosetype.Type {
	ft := functionType(e.Params, e.Returns)

	restore := c.pushScope()
	for _, p := range e.Params {
		c.scope.define(p.Name, p.Type)
	}
	c.returns = append(c.returns, e.Returns)
	for _, bd := range e.Body.Decls {
		c.checkDecl(bd)
	}
	c.returns = c.returns[:len(c.returns)-1]
	restore()

	return ft
}

func (c *Checker) checkStructInit(e *ast.StructInit) rosetype.Type {
	st, ok := c.result.structs[e.Name]
	if !ok {
		c.errorf(e.Token.Line, "%s: undefined struct type", e.Name)
		for _, f := range e.Fields {
			c.checkExpr(f.Value)
		}
		return nil
	}
	c.checkStructFields(st, e.Fields, e.Token.Line)
	return rosetype.Custom{Name: e.Name}
}

func (c *Checker) checkStructInline(e *ast.StructInline) rosetype.Type {
	c.checkStructFields(e.Type, e.Fields, e.Token.Line)
	return e.Type
}

func (c *Checker) checkStructFields(st rosetype.Struct, fields []*ast.FieldInit, line int) {
	fieldType := func(name string) (rosetype.Type, bool) {
		for _, f := range st.Fields {
			if f.Name == name {
				return f.Inner, true
			}
		}
		return nil, false
	}
	for _, f := range fields {
		valueType := c.checkExpr(f.Value)
		want, ok := fieldType(f.Name)
		if !ok {
			c.errorf(line, "%s: no such field", f.Name)
			continue
		}
		if valueType != nil && !rosetype.Equal(valueType, want) {
			c.errorf(line, "field %s: expected %s, got %s", f.Name, want, valueType)
		}
	}
}
