package eval

import (
	"fmt"
	"strings"

	"github.com/roselang/rose/internal/object"
)

// defineBuiltins installs the evaluator's fixed set of builtin
// callables into env: output (print/println), input, and len. These
// are the only names a Rose program can call without declaring them
// itself (spec §4.2 builtin surface).
func (ev *Evaluator) defineBuiltins(env *object.Context) {
	env.Define("print", &object.Builtin{Name: "print", Fn: ev.builtinPrint})
	env.Define("println", &object.Builtin{Name: "println", Fn: ev.builtinPrintln})
	env.Define("input", &object.Builtin{Name: "input", Fn: ev.builtinInput})
	env.Define("len", &object.Builtin{Name: "len", Fn: ev.builtinLen})
}

func (ev *Evaluator) builtinPrint(args []object.Value) object.Value {
	fmt.Fprint(ev.stdout, joinArgs(args))
	return ev.Nil
}

func (ev *Evaluator) builtinPrintln(args []object.Value) object.Value {
	fmt.Fprintln(ev.stdout, joinArgs(args))
	return ev.Nil
}

func joinArgs(args []object.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, "")
}

// builtinInput prints each argument as a prompt (no separator, same as
// print) before reading one line from stdin, stripping the trailing
// newline (and a preceding carriage return, for CRLF input).
func (ev *Evaluator) builtinInput(args []object.Value) object.Value {
	fmt.Fprint(ev.stdout, joinArgs(args))
	line, err := ev.stdin.ReadString('\n')
	if err != nil && line == "" {
		return &object.String{Value: ""}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return &object.String{Value: line}
}

// builtinLen reports a String's raw byte length or an Array's element
// count; any other argument type yields a runtime error.
func (ev *Evaluator) builtinLen(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError(object.RuntimeErrorKind, 0, "len expects exactly one argument")
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int32(v.Len())}
	case *object.Array:
		return &object.Integer{Value: int32(len(v.Elements))}
	default:
		return object.NewError(object.RuntimeErrorKind, 0, "len: unsupported argument type")
	}
}
