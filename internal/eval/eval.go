// Package eval implements Rose's evaluator (spec §4.5): type-check,
// then walk the declaration list with a lexical environment, routing
// the control-flow/error values defined in internal/object through
// every enclosing construct until a function or loop intercepts them.
//
// Grounded on the teacher's internal/interp.Interpreter, notably its
// constructor pattern of taking the output stream as an argument
// rather than writing to os.Stdout directly.
package eval

import (
	"bufio"
	"io"

	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/checker"
	"github.com/roselang/rose/internal/object"
)

// Evaluator walks a program's declarations against a root lexical
// environment. Its singleton values (True, False, Nil, Void, the
// control-flow signals) are constructed once per Evaluator rather than
// as package-level globals, per the design note against process-wide
// mutable state (spec §9).
type Evaluator struct {
	stdout io.Writer
	stdin  *bufio.Reader

	True     *object.Bool
	False    *object.Bool
	Nil      *object.NilValue
	Void     *object.VoidValue
	breakVal *object.BreakSignal
	contVal  *object.ContinueSignal
}

// New builds an Evaluator writing builtin output to stdout and
// reading `input` lines from stdin.
func New(stdout io.Writer, stdin io.Reader) *Evaluator {
	return &Evaluator{
		stdout:   stdout,
		stdin:    bufio.NewReader(stdin),
		True:     &object.Bool{Value: true},
		False:    &object.Bool{Value: false},
		Nil:      &object.NilValue{},
		Void:     &object.VoidValue{},
		breakVal: &object.BreakSignal{},
		contVal:  &object.ContinueSignal{},
	}
}

// boolVal returns the True/False singleton matching b.
func (ev *Evaluator) boolVal(b bool) *object.Bool {
	if b {
		return ev.True
	}
	return ev.False
}

// Outcome is the result of evaluating a program: the process exit
// code the top-level driver should use, and the error messages raised
// along the way (spec §6 exit codes, §7 user-visible failure).
type Outcome struct {
	ExitCode int
	Errors   []string
}

// Eval type-checks decls and, if that succeeds, evaluates them in
// order against a fresh root environment pre-populated with the
// builtin callables (spec §4.5 Entry).
func (ev *Evaluator) Eval(decls []ast.Decl) *Outcome {
	_, diags := checker.Check(decls)
	if !diags.OK() {
		errs := make([]string, len(diags))
		for i, d := range diags {
			errs[i] = d.String()
		}
		return &Outcome{ExitCode: 1, Errors: errs}
	}

	root := object.NewContext()
	ev.defineBuiltins(root)

	var errs []string
topLevel:
	for _, d := range decls {
		result := ev.evalDecl(root, d)
		switch v := result.(type) {
		case *object.Error:
			errs = append(errs, v.Error())
		case *object.ReturnValue, *object.BreakSignal, *object.ContinueSignal:
			errs = append(errs, "control flow signal escaped to top level")
			break topLevel
		}
	}

	exitCode := 0
	if len(errs) > 0 {
		exitCode = 1
	}
	return &Outcome{ExitCode: exitCode, Errors: errs}
}

// isSignal reports whether v is a control-flow or error carrier that
// must propagate past whatever evaluated it (spec §7 propagation
// policy).
func isSignal(v object.Value) bool {
	switch v.(type) {
	case *object.ReturnValue, *object.BreakSignal, *object.ContinueSignal, *object.Error:
		return true
	}
	return false
}
