package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

func run(t *testing.T, decls []ast.Decl) (*Outcome, string) {
	t.Helper()
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	outcome := ev.Eval(decls)
	return outcome, out.String()
}

func mustSucceed(t *testing.T, outcome *Outcome) {
	t.Helper()
	if outcome.ExitCode != 0 {
		t.Fatalf("expected success, got errors: %v", outcome.Errors)
	}
}

func TestTypeErrorsShortCircuitEvaluation(t *testing.T) {
	decls := []ast.Decl{ast.Let("x", rosetype.StringType, ast.Int(1))}
	outcome, _ := run(t, decls)
	if outcome.ExitCode == 0 {
		t.Fatalf("expected a nonzero exit code for a type error")
	}
}

func TestLetBindsAndPrintPrintsIt(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("x", nil, ast.Int(42)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("x"))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "42" {
		t.Fatalf("stdout = %q, want %q", out, "42")
	}
}

func TestDuplicateLetIsRuntimeError(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("x", nil, ast.Int(1)),
		ast.Let("x", nil, ast.Int(2)),
	}
	outcome, _ := run(t, decls)
	if outcome.ExitCode == 0 {
		t.Fatalf("expected an error for a duplicate top-level binding")
	}
}

func TestDivisionByZeroIsReported(t *testing.T) {
	decls := []ast.Decl{
		ast.ExprStmt(ast.Bin(ast.Int(1), token.SLASH, ast.Int(0))),
	}
	outcome, _ := run(t, decls)
	if outcome.ExitCode == 0 {
		t.Fatalf("expected an error for division by zero")
	}
	if len(outcome.Errors) != 1 || !strings.Contains(outcome.Errors[0], "division") {
		t.Fatalf("Errors = %v, want a division error", outcome.Errors)
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("sum", rosetype.IntType, ast.Int(0)),
		ast.Let("i", rosetype.IntType, ast.Int(0)),
		ast.SD(ast.WhileS(
			ast.Bin(ast.Ident("i"), token.LT, ast.Int(5)),
			ast.Blk(
				ast.ExprStmt(ast.Asn(ast.Ident("sum"), token.PLUS_ASSIGN, ast.Ident("i"))),
				ast.ExprStmt(ast.Asn(ast.Ident("i"), token.PLUS_ASSIGN, ast.Int(1))),
			),
		)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("sum"))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "10" {
		t.Fatalf("stdout = %q, want %q", out, "10")
	}
}

func TestBreakExitsLoopEarly(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("i", rosetype.IntType, ast.Int(0)),
		ast.SD(ast.WhileS(
			ast.Bool(true),
			ast.Blk(
				ast.SD(ast.IfS(ast.Bin(ast.Ident("i"), token.GT_EQ, ast.Int(3)), ast.Blk(ast.SD(ast.Brk())), nil)),
				ast.ExprStmt(ast.Asn(ast.Ident("i"), token.PLUS_ASSIGN, ast.Int(1))),
			),
		)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("i"))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("stdout = %q, want %q", out, "3")
	}
}

func TestContinueSkipsRestOfBodyButForStillRunsAction(t *testing.T) {
	// for (let i = 0; i < 5; i += 1) { if (i == 2) continue; sum += i; }
	decls := []ast.Decl{
		ast.Let("sum", rosetype.IntType, ast.Int(0)),
		ast.SD(ast.ForS(
			ast.Let("i", rosetype.IntType, ast.Int(0)),
			ast.Bin(ast.Ident("i"), token.LT, ast.Int(5)),
			ast.Asn(ast.Ident("i"), token.PLUS_ASSIGN, ast.Int(1)),
			ast.Blk(
				ast.SD(ast.IfS(ast.Bin(ast.Ident("i"), token.EQ, ast.Int(2)), ast.Blk(ast.SD(ast.Cont())), nil)),
				ast.ExprStmt(ast.Asn(ast.Ident("sum"), token.PLUS_ASSIGN, ast.Ident("i"))),
			),
		)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("sum"))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	// 0+1+3+4 = 8 (2 is skipped)
	if strings.TrimSpace(out) != "8" {
		t.Fatalf("stdout = %q, want %q", out, "8")
	}
}

func TestFactorialRecursion(t *testing.T) {
	// func fact(n int) int { if (n <= 1) return 1; return n * fact(n - 1); }
	fact := ast.Fn("fact",
		[]*ast.FieldDecl{ast.Field("n", rosetype.IntType)},
		[]rosetype.Type{rosetype.IntType},
		ast.Blk(
			ast.SD(ast.IfS(
				ast.Bin(ast.Ident("n"), token.LT_EQ, ast.Int(1)),
				ast.Blk(ast.SD(ast.Ret(ast.Int(1)))),
				nil,
			)),
			ast.SD(ast.Ret(ast.Bin(ast.Ident("n"), token.STAR, ast.Cl(ast.Ident("fact"), ast.Bin(ast.Ident("n"), token.MINUS, ast.Int(1)))))),
		),
	)
	decls := []ast.Decl{
		fact,
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("fact"), ast.Int(5)))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "120" {
		t.Fatalf("stdout = %q, want %q", out, "120")
	}
}

func TestClosureCapturesEnclosingBinding(t *testing.T) {
	// let mk = func() func() int { let n = 0; return func() int { n += 1; return n; }; };
	innerType := rosetype.Function{Params: nil, Returns: []rosetype.Type{rosetype.IntType}}
	inner := ast.FnExpr(nil, []rosetype.Type{rosetype.IntType}, ast.Blk(
		ast.ExprStmt(ast.Asn(ast.Ident("n"), token.PLUS_ASSIGN, ast.Int(1))),
		ast.SD(ast.Ret(ast.Ident("n"))),
	))
	outer := ast.FnExpr(nil, []rosetype.Type{innerType}, ast.Blk(
		ast.Let("n", rosetype.IntType, ast.Int(0)),
		ast.SD(ast.Ret(inner)),
	))
	decls := []ast.Decl{
		ast.Let("counter", nil, ast.Cl(outer)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("counter")))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("counter")))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "1" || lines[1] != "2" {
		t.Fatalf("stdout = %q, want two lines 1 then 2", out)
	}
}

func TestArrayIndexOutOfRange(t *testing.T) {
	arrType := rosetype.Array{Dims: []int{3}, Elem: rosetype.IntType}
	decls := []ast.Decl{
		ast.Let("xs", arrType, ast.ArrLit(arrType, ast.Int(1), ast.Int(2), ast.Int(3))),
		ast.ExprStmt(ast.AMem(ast.Ident("xs"), ast.Int(5))),
	}
	outcome, _ := run(t, decls)
	if outcome.ExitCode == 0 {
		t.Fatalf("expected an out-of-range error")
	}
}

func TestArrayIndexAndAssign(t *testing.T) {
	arrType := rosetype.Array{Dims: []int{3}, Elem: rosetype.IntType}
	decls := []ast.Decl{
		ast.Let("xs", arrType, ast.ArrLit(arrType, ast.Int(1), ast.Int(2), ast.Int(3))),
		ast.ExprStmt(ast.Asn(ast.AMem(ast.Ident("xs"), ast.Int(1)), token.ASSIGN, ast.Int(99))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.AMem(ast.Ident("xs"), ast.Int(1)))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "99" {
		t.Fatalf("stdout = %q, want %q", out, "99")
	}
}

func TestStringConcatWithChar(t *testing.T) {
	decls := []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Bin(ast.Str("ab"), token.PLUS, ast.Char('c')))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "abc" {
		t.Fatalf("stdout = %q, want %q", out, "abc")
	}
}

func TestBinaryPrecedenceMultiplyBeforeAdd(t *testing.T) {
	// println(2 + 3 * 4); with explicit tree, * binds tighter since the
	// AST already encodes precedence (no parser in this module).
	decls := []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Bin(ast.Int(2), token.PLUS, ast.Bin(ast.Int(3), token.STAR, ast.Int(4))))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	if strings.TrimSpace(out) != "14" {
		t.Fatalf("stdout = %q, want %q", out, "14")
	}
}

func TestLogicalShortCircuitDoesNotEvaluateRight(t *testing.T) {
	// false && (1 / 0 == 0) must not divide by zero.
	decls := []ast.Decl{
		ast.ExprStmt(ast.Logic(ast.Bool(false), token.AND_AND, ast.Bin(ast.Bin(ast.Int(1), token.SLASH, ast.Int(0)), token.EQ, ast.Int(0)))),
	}
	outcome, _ := run(t, decls)
	mustSucceed(t, outcome)
}

func TestCastIntToFloatAndBack(t *testing.T) {
	decls := []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cst(ast.Int(3), rosetype.FloatType))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cst(ast.Float(3.9), rosetype.IntType))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "3.0" || lines[1] != "3" {
		t.Fatalf("stdout = %q, want [3.0 3]", out)
	}
}

func TestUpdateDoesNotMutateBinding(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("i", rosetype.IntType, ast.Int(5)),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Upd(ast.Ident("i"), token.INC))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("i"))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "5" || lines[1] != "5" {
		t.Fatalf("stdout = %q, want [5 5] (Update does not persist)", out)
	}
}

func TestInputPrintsPromptArgumentsBeforeReadingLine(t *testing.T) {
	decls := []ast.Decl{
		ast.Let("name", nil, ast.Cl(ast.Ident("input"), ast.Str("Name: "))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Ident("name"))),
	}
	var out bytes.Buffer
	ev := New(&out, strings.NewReader("Alice\n"))
	outcome := ev.Eval(decls)
	mustSucceed(t, outcome)
	if out.String() != "Name: Alice\n" {
		t.Fatalf("stdout = %q, want prompt printed then the read line echoed", out.String())
	}
}

func TestLenBuiltinOnStringAndArray(t *testing.T) {
	arrType := rosetype.Array{Dims: []int{2}, Elem: rosetype.IntType}
	decls := []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("len"), ast.Str("hi")))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("len"), ast.ArrLit(arrType, ast.Int(1), ast.Int(2))))),
	}
	outcome, out := run(t, decls)
	mustSucceed(t, outcome)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "2" || lines[1] != "2" {
		t.Fatalf("stdout = %q, want [2 2]", out)
	}
}
