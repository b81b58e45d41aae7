// Package object implements Rose's runtime value universe (spec §3.4):
// scalars, strings, arrays, first-class functions and builtins, and the
// control-flow/error signals the evaluator uses internally. It also
// holds Context (spec §3.3/§4.3), the lexical environment, because a
// Function value's captured environment and an Environment's stored
// values are mutually referential, keeping them in one package avoids
// an import cycle, the same way the teacher keeps its runtime Value and
// Environment types in one "runtime" package.
package object

import (
	"strconv"
	"strings"

	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/roseerr"
	"github.com/roselang/rose/internal/rosetype"
)

// Value is a runtime value. Every concrete variant below implements it.
type Value interface {
	// Type returns the value's static type.
	Type() rosetype.Type
	// String renders the value's display form (spec §6). For control
	// flow signals and errors this is a debug representation, not a
	// user-visible display form.
	String() string
}

// Integer is a 32-bit signed integer value (spec uses i32).
type Integer struct {
	Value int32
}

func (v *Integer) Type() rosetype.Type { return rosetype.IntType }
func (v *Integer) String() string      { return strconv.FormatInt(int64(v.Value), 10) }

// Float is a 64-bit floating-point value.
type Float struct {
	Value float64
}

func (v *Float) Type() rosetype.Type { return rosetype.FloatType }

// String renders the shortest decimal form with at least one
// fractional digit (3 -> "3.0", 3.5 -> "3.5"); unlike C's "%f" it does
// not pad to six fractional digits (spec §6).
func (v *Float) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64) + fractionalPad(v.Value)
}

// fractionalPad ensures a float with no fractional digits still shows
// one, e.g. "3" -> "3.0".
func fractionalPad(f float64) string {
	if f == float64(int64(f)) {
		return ".0"
	}
	return ""
}

// Char is a single byte.
type Char struct {
	Value byte
}

func (v *Char) Type() rosetype.Type { return rosetype.CharType }
func (v *Char) String() string      { return string(v.Value) }

// String is an immutable byte sequence with the small escape
// vocabulary in spec §6 decoded at display time; Value itself stores
// the raw (un-decoded) text.
type String struct {
	Value string
}

func (v *String) Type() rosetype.Type { return rosetype.StringType }

// String decodes the escape vocabulary `\n \t \" \' \\`; any other
// backslash sequence passes its backslash through unchanged (spec §6,
// grounded on original_source/ast/src/object.c:string_object_to_string).
func (v *String) String() string {
	var b strings.Builder
	s := v.Value
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\'':
			b.WriteByte('\'')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Len returns the raw byte length used by the `len` builtin: it counts
// stored bytes, not the decoded display form (spec §4.5.5).
func (v *String) Len() int { return len(v.Value) }

// Bool is a boolean value. The evaluator hands out its own True/False
// singletons (eval.Evaluator.True and .False) rather than constructing
// a fresh Bool per result (spec §4.5, "reused by reference").
type Bool struct {
	Value bool
}

func (v *Bool) Type() rosetype.Type { return rosetype.BoolType }
func (v *Bool) String() string {
	if v.Value {
		return "true"
	}
	return "false"
}

// NilValue is the sole nil value.
type NilValue struct{}

func (v *NilValue) Type() rosetype.Type { return rosetype.NilType }
func (v *NilValue) String() string      { return "nil" }

// VoidValue is the sole void value: the result of a bare `return;` and
// of a `void` literal.
type VoidValue struct{}

func (v *VoidValue) Type() rosetype.Type { return rosetype.VoidType }
func (v *VoidValue) String() string      { return "void" }

// Array is an N-dimensional array, laid out row-major in a flat
// element slice (spec §3.4).
type Array struct {
	ElemType rosetype.Type
	Dims     []int
	Elements []Value
}

func (v *Array) Type() rosetype.Type {
	return rosetype.Array{Dims: v.Dims, Elem: v.ElemType}
}
func (v *Array) String() string {
	return "array<" + v.Type().String() + ">"
}

// Function is a user-defined closure: its static type, the
// environment it captured at definition time, and the parameter/body
// AST it evaluates on Call.
type Function struct {
	FuncType rosetype.Function
	Env      *Context
	Params   []*ast.FieldDecl
	Body     *ast.Block
}

func (v *Function) Type() rosetype.Type { return v.FuncType }
func (v *Function) String() string      { return "func<" + v.FuncType.String() + ">" }

// Builtin is a native callable (print, println, input, len). Fn is
// supplied by the evaluator package, which closes over its own I/O
// streams; object stays free of any dependency on eval.
type Builtin struct {
	Name string
	Fn   func(args []Value) Value
}

func (v *Builtin) Type() rosetype.Type {
	return rosetype.Function{Params: nil, Returns: nil}
}
func (v *Builtin) String() string { return "builtin<" + v.Name + ">" }

// ReturnValue wraps the value a Return statement yields. It is a
// control-flow carrier: the evaluator intercepts it at the enclosing
// function boundary and never lets it escape to user-visible code
// (spec §3.4/§4.5.2).
type ReturnValue struct {
	Value Value
}

func (v *ReturnValue) Type() rosetype.Type { return rosetype.VoidType }
func (v *ReturnValue) String() string      { return "return<" + v.Value.String() + ">" }

// BreakSignal is the control-flow carrier for a break statement.
type BreakSignal struct{}

func (v *BreakSignal) Type() rosetype.Type { return rosetype.VoidType }
func (v *BreakSignal) String() string      { return "break" }

// ContinueSignal is the control-flow carrier for a continue statement.
type ContinueSignal struct{}

func (v *ContinueSignal) Type() rosetype.Type { return rosetype.VoidType }
func (v *ContinueSignal) String() string      { return "continue" }

// RuntimeErrorKind and DivByZeroErrorKind are the two roseerr
// categories an object.Error ever carries (roseerr.Type is a
// checker-only diagnostic category and never reaches a runtime Error).
const (
	RuntimeErrorKind   = roseerr.Runtime
	DivByZeroErrorKind = roseerr.DivByZero
)

// Error is a first-class runtime error value wrapping a *roseerr.Error.
// Once produced it propagates outward like any other value until the
// top-level driver reports it (spec §3.4/§7).
type Error struct {
	Err *roseerr.Error
}

// NewError builds an Error of the given category.
func NewError(kind roseerr.Category, line int, message string) *Error {
	return &Error{Err: &roseerr.Error{Category: kind, Line: line, Message: message}}
}

// Error returns the formatted message of the wrapped *roseerr.Error.
func (v *Error) Error() string { return v.Err.Error() }

func (v *Error) Type() rosetype.Type { return rosetype.VoidType }
func (v *Error) String() string      { return v.Err.Message }

// IsTruthy implements the truthiness projection of spec §4.5.4: nil is
// false, false is false, numeric zero is false, everything else true.
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case *NilValue:
		return false
	case *Bool:
		return val.Value
	case *Integer:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	default:
		return true
	}
}
