package eval

import (
	"strconv"

	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/object"
	"github.com/roselang/rose/internal/roseerr"
	"github.com/roselang/rose/internal/rosetype"
)

// evalCast converts Target's runtime value to node.Type following the
// conversion table in spec §4.5.3. The checker does not validate casts
// statically (spec §4.4 has no Cast rule); an unsupported source/target
// pairing is a runtime error here.
func (ev *Evaluator) evalCast(env *object.Context, node *ast.Cast) object.Value {
	v := ev.evalExpr(env, node.Target)
	if isSignal(v) {
		return v
	}
	result := ev.castValue(v, node.Type)
	if result == nil {
		return object.NewError(roseerr.Runtime, node.Token.Line, "invalid cast")
	}
	return result
}

// castValue implements the cast table:
//
//	source \ target | Int | Float | Char | String | Bool
//	Int              | ok  | ok    | --   | --     | --
//	Float            | trunc| ok   | --   | --     | --
//	Char             | ok  | --    | ok   | ok     | --
//	String (numeric) | ok  | ok    | --   | ok     | --
//	String (len 1)   | --  | --    | ok   | ok     | --
//	String (bool lit)| --  | --    | --   | ok     | ok
//
// It returns nil for any pairing the table doesn't allow.
func (ev *Evaluator) castValue(v object.Value, target rosetype.Type) object.Value {
	switch target.Tag() {
	case rosetype.Int:
		return castToInt(v)
	case rosetype.Float:
		return castToFloat(v)
	case rosetype.Char:
		return castToChar(v)
	case rosetype.String:
		return ev.castToString(v)
	case rosetype.Bool:
		return ev.castToBool(v)
	default:
		return nil
	}
}

func castToInt(v object.Value) object.Value {
	switch val := v.(type) {
	case *object.Integer:
		return &object.Integer{Value: val.Value}
	case *object.Float:
		return &object.Integer{Value: int32(val.Value)}
	case *object.Char:
		return &object.Integer{Value: int32(val.Value)}
	case *object.String:
		if n, ok := parseIntLiteral(val.Value); ok {
			return &object.Integer{Value: n}
		}
	}
	return nil
}

func castToFloat(v object.Value) object.Value {
	switch val := v.(type) {
	case *object.Integer:
		return &object.Float{Value: float64(val.Value)}
	case *object.Float:
		return &object.Float{Value: val.Value}
	case *object.String:
		if f, err := strconv.ParseFloat(val.Value, 64); err == nil {
			return &object.Float{Value: f}
		}
	}
	return nil
}

func castToChar(v object.Value) object.Value {
	switch val := v.(type) {
	case *object.Char:
		return &object.Char{Value: val.Value}
	case *object.String:
		if len(val.Value) == 1 {
			return &object.Char{Value: val.Value[0]}
		}
	}
	return nil
}

// castToString handles Char->String and the String->String identity
// cast. A String source keeps its raw (un-decoded) Value rather than
// going through String()'s escape decoding, so a round trip through a
// cast doesn't collapse an escape sequence early.
func (ev *Evaluator) castToString(v object.Value) object.Value {
	switch val := v.(type) {
	case *object.Char:
		return &object.String{Value: val.String()}
	case *object.String:
		return &object.String{Value: val.Value}
	}
	return nil
}

func (ev *Evaluator) castToBool(v object.Value) object.Value {
	s, ok := v.(*object.String)
	if !ok {
		return nil
	}
	switch s.Value {
	case "true":
		return ev.True
	case "false":
		return ev.False
	default:
		return nil
	}
}

// parseIntLiteral accepts only a whole base-10 integer that fits in 32
// bits; text with a decimal fraction (e.g. "3.7") or trailing garbage
// is rejected, so the cast fails.
func parseIntLiteral(s string) (int32, bool) {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(n), true
	}
	return 0, false
}
