package eval

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/object"
	"github.com/roselang/rose/internal/roseerr"
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// evalExpr evaluates an expression to a runtime Value, or to a
// control-flow/error Value that the caller must propagate (spec
// §4.5.3).
func (ev *Evaluator) evalExpr(env *object.Context, e ast.Expr) object.Value {
	switch expr := e.(type) {
	case *ast.IntLiteral:
		return &object.Integer{Value: int32(expr.Value)}
	case *ast.FloatLiteral:
		return &object.Float{Value: expr.Value}
	case *ast.CharLiteral:
		return &object.Char{Value: expr.Value}
	case *ast.StringLiteral:
		return &object.String{Value: expr.Value}
	case *ast.BoolLiteral:
		return ev.boolVal(expr.Value)
	case *ast.VoidLiteral:
		return ev.Void
	case *ast.NilLiteral:
		return ev.Nil
	case *ast.IdentRef:
		v, ok := env.Get(expr.Name)
		if !ok {
			return object.NewError(roseerr.Runtime, expr.Token.Line, expr.Name+": undefined")
		}
		return v
	case *ast.Group:
		return ev.evalExpr(env, expr.Inner)
	case *ast.Binary:
		return ev.evalBinary(env, expr)
	case *ast.Logical:
		return ev.evalLogical(env, expr)
	case *ast.Unary:
		return ev.evalUnary(env, expr)
	case *ast.Update:
		return ev.evalUpdate(env, expr)
	case *ast.Assign:
		return ev.evalAssign(env, expr)
	case *ast.Call:
		return ev.evalCall(env, expr)
	case *ast.Conditional:
		return ev.evalConditional(env, expr)
	case *ast.ArrayInit:
		return ev.evalArrayInit(env, expr)
	case *ast.ArrayMember:
		return ev.evalArrayMember(env, expr)
	case *ast.Cast:
		return ev.evalCast(env, expr)
	case *ast.Function:
		return ev.evalFunctionExpr(env, expr)
	case *ast.Member:
		// No runtime semantics in this version (spec §9 Open
		// Questions); still evaluate the receiver for its side
		// effects and to propagate any signal.
		if sig := ev.evalExpr(env, expr.Receiver); isSignal(sig) {
			return sig
		}
		return ev.Nil
	case *ast.StructInit:
		return ev.evalStructInitLike(env, expr.Fields)
	case *ast.StructInline:
		return ev.evalStructInitLike(env, expr.Fields)
	default:
		return object.NewError(roseerr.Runtime, e.Tok().Line, "unevaluable expression")
	}
}

// evalStructInitLike evaluates each field's value expression (for its
// side effects) and yields Nil: struct declarations and initializers
// have no runtime semantics in this version (spec §9 Open Questions).
func (ev *Evaluator) evalStructInitLike(env *object.Context, fields []*ast.FieldInit) object.Value {
	for _, f := range fields {
		if sig := ev.evalExpr(env, f.Value); isSignal(sig) {
			return sig
		}
	}
	return ev.Nil
}

func isStringLike(v object.Value) bool {
	switch v.(type) {
	case *object.String, *object.Char:
		return true
	}
	return false
}

func rawString(v object.Value) string {
	switch val := v.(type) {
	case *object.String:
		return val.Value
	case *object.Char:
		return string(val.Value)
	}
	return ""
}

func asFloat(v object.Value) float64 {
	switch val := v.(type) {
	case *object.Integer:
		return float64(val.Value)
	case *object.Float:
		return val.Value
	}
	return 0
}

func (ev *Evaluator) evalBinary(env *object.Context, node *ast.Binary) object.Value {
	left := ev.evalExpr(env, node.Left)
	if isSignal(left) {
		return left
	}
	right := ev.evalExpr(env, node.Right)
	if isSignal(right) {
		return right
	}
	return ev.applyBinary(node.Token.Line, node.Op.Kind, left, right)
}

// applyBinary mirrors the checker's type rules for Binary (spec
// §4.4/§4.5.3): string/char concatenation and equality, boolean
// equality, and numeric arithmetic/comparison/bitwise ops.
func (ev *Evaluator) applyBinary(line int, op token.Kind, left, right object.Value) object.Value {
	if isStringLike(left) && isStringLike(right) {
		switch op {
		case token.PLUS:
			return &object.String{Value: rawString(left) + rawString(right)}
		case token.EQ:
			return ev.boolVal(rawString(left) == rawString(right))
		case token.NOT_EQ:
			return ev.boolVal(rawString(left) != rawString(right))
		}
	}
	if lb, ok := left.(*object.Bool); ok {
		if rb, ok := right.(*object.Bool); ok {
			switch op {
			case token.EQ:
				return ev.boolVal(lb.Value == rb.Value)
			case token.NOT_EQ:
				return ev.boolVal(lb.Value != rb.Value)
			}
		}
	}
	return ev.numericBinary(line, op, left, right)
}

func (ev *Evaluator) numericBinary(line int, op token.Kind, left, right object.Value) object.Value {
	li, lIsInt := left.(*object.Integer)
	ri, rIsInt := right.(*object.Integer)
	if lIsInt && rIsInt {
		return ev.intBinary(line, op, li.Value, ri.Value)
	}

	a, b := asFloat(left), asFloat(right)
	switch op {
	case token.PLUS:
		return &object.Float{Value: a + b}
	case token.MINUS:
		return &object.Float{Value: a - b}
	case token.STAR:
		return &object.Float{Value: a * b}
	case token.SLASH:
		if b == 0 {
			return object.NewError(roseerr.DivByZero, line, "division by zero")
		}
		return &object.Float{Value: a / b}
	case token.PERCENT:
		if b == 0 {
			return object.NewError(roseerr.DivByZero, line, "division by zero")
		}
		return &object.Float{Value: floatMod(a, b)}
	case token.LT:
		return ev.boolVal(a < b)
	case token.GT:
		return ev.boolVal(a > b)
	case token.LT_EQ:
		return ev.boolVal(a <= b)
	case token.GT_EQ:
		return ev.boolVal(a >= b)
	case token.EQ:
		return ev.boolVal(a == b)
	case token.NOT_EQ:
		return ev.boolVal(a != b)
	default:
		return object.NewError(roseerr.Runtime, line, "unsupported operator on float operands")
	}
}

func (ev *Evaluator) intBinary(line int, op token.Kind, a, b int32) object.Value {
	switch op {
	case token.PLUS:
		return &object.Integer{Value: a + b}
	case token.MINUS:
		return &object.Integer{Value: a - b}
	case token.STAR:
		return &object.Integer{Value: a * b}
	case token.SLASH:
		if b == 0 {
			return object.NewError(roseerr.DivByZero, line, "division by zero")
		}
		return &object.Integer{Value: a / b}
	case token.PERCENT:
		if b == 0 {
			return object.NewError(roseerr.DivByZero, line, "division by zero")
		}
		return &object.Integer{Value: a % b}
	case token.LT:
		return ev.boolVal(a < b)
	case token.GT:
		return ev.boolVal(a > b)
	case token.LT_EQ:
		return ev.boolVal(a <= b)
	case token.GT_EQ:
		return ev.boolVal(a >= b)
	case token.EQ:
		return ev.boolVal(a == b)
	case token.NOT_EQ:
		return ev.boolVal(a != b)
	case token.AMP:
		return &object.Integer{Value: a & b}
	case token.PIPE:
		return &object.Integer{Value: a | b}
	case token.CARET:
		return &object.Integer{Value: a ^ b}
	case token.SHL:
		return &object.Integer{Value: a << uint32(b)}
	case token.SHR:
		return &object.Integer{Value: a >> uint32(b)}
	default:
		return object.NewError(roseerr.Runtime, line, "unsupported operator on int operands")
	}
}

func (ev *Evaluator) evalLogical(env *object.Context, node *ast.Logical) object.Value {
	left := ev.evalExpr(env, node.Left)
	if isSignal(left) {
		return left
	}
	leftTruthy := object.IsTruthy(left)

	if node.Op.Kind == token.AND_AND {
		if !leftTruthy {
			return ev.False
		}
		right := ev.evalExpr(env, node.Right)
		if isSignal(right) {
			return right
		}
		return ev.boolVal(object.IsTruthy(right))
	}

	if leftTruthy {
		return ev.True
	}
	right := ev.evalExpr(env, node.Right)
	if isSignal(right) {
		return right
	}
	return ev.boolVal(object.IsTruthy(right))
}

func (ev *Evaluator) evalUnary(env *object.Context, node *ast.Unary) object.Value {
	operand := ev.evalExpr(env, node.Operand)
	if isSignal(operand) {
		return operand
	}
	switch node.Op.Kind {
	case token.PLUS:
		return operand
	case token.MINUS:
		switch v := operand.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}
		case *object.Float:
			return &object.Float{Value: -v.Value}
		}
	case token.TILDE:
		if v, ok := operand.(*object.Integer); ok {
			return &object.Integer{Value: ^v.Value}
		}
	case token.BANG:
		return ev.boolVal(!object.IsTruthy(operand))
	}
	return object.NewError(roseerr.Runtime, node.Token.Line, "invalid unary operation")
}

// evalUpdate yields the pre-update value without persisting a change
// to the operand's binding (spec §9 Open Questions: the spec's own
// literal resolution of the source's apparent mutate-a-copy behavior).
func (ev *Evaluator) evalUpdate(env *object.Context, node *ast.Update) object.Value {
	return ev.evalExpr(env, node.Operand)
}

func (ev *Evaluator) evalConditional(env *object.Context, node *ast.Conditional) object.Value {
	cond := ev.evalExpr(env, node.Cond)
	if isSignal(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return ev.evalExpr(env, node.Then)
	}
	return ev.evalExpr(env, node.Else)
}

func (ev *Evaluator) evalArrayInit(env *object.Context, node *ast.ArrayInit) object.Value {
	elems := make([]object.Value, len(node.Elements))
	for i, el := range node.Elements {
		v := ev.evalExpr(env, el)
		if isSignal(v) {
			return v
		}
		elems[i] = v
	}
	dims := node.Type.Dims
	if len(dims) == 1 && dims[0] == 0 {
		dims = []int{len(elems)}
	}
	return &object.Array{ElemType: node.Type.Elem, Dims: dims, Elements: elems}
}

func (ev *Evaluator) evalFunctionExpr(env *object.Context, node *ast.Function) object.Value {
	return &object.Function{
		FuncType: rosetype.Function{Params: paramTypes(node.Params), Returns: node.Returns},
		Env:      env,
		Params:   node.Params,
		Body:     node.Body,
	}
}

// floatMod implements Rose's `%` on floats as C's fmod (truncating
// quotient), not Go's math.Mod-via-remainder-of-truncated-division
// distinction matters only in sign for mixed operands.
func floatMod(a, b float64) float64 {
	q := a / b
	trunc := float64(int64(q))
	return a - trunc*b
}

func (ev *Evaluator) evalAssign(env *object.Context, node *ast.Assign) object.Value {
	value := ev.evalExpr(env, node.Value)
	if isSignal(value) {
		return value
	}

	if node.Op.Kind != token.ASSIGN {
		current := ev.evalExpr(env, node.Target)
		if isSignal(current) {
			return current
		}
		value = ev.applyBinary(node.Token.Line, compoundOp(node.Op.Kind), current, value)
		if isSignal(value) {
			return value
		}
	}

	switch target := node.Target.(type) {
	case *ast.IdentRef:
		if !env.Exists(target.Name) && !existsInParent(env, target.Name) {
			return object.NewError(roseerr.Runtime, node.Token.Line, target.Name+": undefined")
		}
		env.Assign(target.Name, value)
		return value
	case *ast.ArrayMember:
		return ev.assignArrayMember(env, target, value)
	default:
		return object.NewError(roseerr.Runtime, node.Token.Line, "invalid assignment target")
	}
}

// existsInParent reports whether name is bound anywhere in env's chain
// (Exists only checks the current frame; Assign needs the full chain
// to decide whether the target is legitimately undefined).
func existsInParent(env *object.Context, name string) bool {
	_, ok := env.Get(name)
	return ok
}

func compoundOp(op token.Kind) token.Kind {
	switch op {
	case token.PLUS_ASSIGN:
		return token.PLUS
	case token.MINUS_ASSIGN:
		return token.MINUS
	case token.STAR_ASSIGN:
		return token.STAR
	case token.SLASH_ASSIGN:
		return token.SLASH
	default:
		return op
	}
}

func (ev *Evaluator) assignArrayMember(env *object.Context, target *ast.ArrayMember, value object.Value) object.Value {
	recv := ev.evalExpr(env, target.Receiver)
	if isSignal(recv) {
		return recv
	}
	arr, ok := recv.(*object.Array)
	if !ok {
		return object.NewError(roseerr.Runtime, target.Token.Line, "invalid array access")
	}
	idx, sig := ev.resolveIndex(env, target, arr)
	if sig != nil {
		return sig
	}
	arr.Elements[idx] = value
	return value
}

func (ev *Evaluator) evalCall(env *object.Context, node *ast.Call) object.Value {
	callee := ev.evalExpr(env, node.Callee)
	if isSignal(callee) {
		return callee
	}
	args := make([]object.Value, len(node.Args))
	for i, a := range node.Args {
		v := ev.evalExpr(env, a)
		if isSignal(v) {
			return v
		}
		args[i] = v
	}
	return ev.callFunction(node.Token.Line, callee, args)
}

func (ev *Evaluator) callFunction(line int, callee object.Value, args []object.Value) object.Value {
	switch fn := callee.(type) {
	case *object.Builtin:
		return fn.Fn(args)
	case *object.Function:
		callEnv := object.Enclose(fn.Env)
		for i, p := range fn.Params {
			callEnv.Define(p.Name, args[i])
		}
		result := ev.evalBlock(callEnv, fn.Body)
		switch v := result.(type) {
		case *object.ReturnValue:
			return v.Value
		case *object.BreakSignal, *object.ContinueSignal:
			return object.NewError(roseerr.Runtime, line, "break/continue used outside of a loop")
		default:
			return result
		}
	default:
		return object.NewError(roseerr.Runtime, line, "value is not callable")
	}
}

func (ev *Evaluator) evalArrayMember(env *object.Context, node *ast.ArrayMember) object.Value {
	recv := ev.evalExpr(env, node.Receiver)
	if isSignal(recv) {
		return recv
	}
	arr, ok := recv.(*object.Array)
	if !ok {
		return object.NewError(roseerr.Runtime, node.Token.Line, "invalid array access")
	}
	idx, sig := ev.resolveIndex(env, node, arr)
	if sig != nil {
		return sig
	}
	return arr.Elements[idx]
}

// resolveIndex evaluates node's index expressions and computes a flat,
// row-major offset into arr.Elements. It requires one index per
// dimension; arrays here have no partial-indexing form (spec §4.5.3).
func (ev *Evaluator) resolveIndex(env *object.Context, node *ast.ArrayMember, arr *object.Array) (int, object.Value) {
	if len(node.Indices) != len(arr.Dims) {
		return 0, object.NewError(roseerr.Runtime, node.Token.Line, "invalid array access")
	}
	offset := 0
	for i, idxExpr := range node.Indices {
		iv := ev.evalExpr(env, idxExpr)
		if isSignal(iv) {
			return 0, iv
		}
		ival, ok := iv.(*object.Integer)
		if !ok {
			return 0, object.NewError(roseerr.Runtime, node.Token.Line, "invalid array access")
		}
		idx := int(ival.Value)
		if idx < 0 || idx >= arr.Dims[i] {
			return 0, object.NewError(roseerr.Runtime, node.Token.Line, "index out of range")
		}
		stride := 1
		for j := i + 1; j < len(arr.Dims); j++ {
			stride *= arr.Dims[j]
		}
		offset += idx * stride
	}
	if offset < 0 || offset >= len(arr.Elements) {
		return 0, object.NewError(roseerr.Runtime, node.Token.Line, "index out of range")
	}
	return offset, nil
}
