// Package demo holds hand-built ASTs for the six end-to-end scenarios
// this module's test suite and CLI both exercise, since no lexer or
// parser is in scope to build them from source text (spec §1). Each
// builder returns a fresh, independently evaluable declaration list.
package demo

import (
	"github.com/roselang/rose/internal/ast"
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// Program is one named, runnable demo scenario.
type Program struct {
	Name        string
	Description string
	Build       func() []ast.Decl
}

// Programs lists the six scenarios in a fixed order.
var Programs = []Program{
	{"factorial", "recursive factorial(5)", Factorial},
	{"arrays", "array init, index, and assignment", Arrays},
	{"divzero", "division by zero reported as a runtime error", DivByZero},
	{"while", "while-loop accumulation", WhileLoop},
	{"concat", "string/char concatenation", StringConcat},
	{"precedence", "binary operator precedence", Precedence},
}

// Lookup finds a demo program by name.
func Lookup(name string) (Program, bool) {
	for _, p := range Programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// Factorial builds: func fact(n int) int { if (n <= 1) return 1; return
// n * fact(n - 1); } println(fact(5));
func Factorial() []ast.Decl {
	fact := ast.Fn("fact",
		[]*ast.FieldDecl{ast.Field("n", rosetype.IntType)},
		[]rosetype.Type{rosetype.IntType},
		ast.Blk(
			ast.SD(ast.IfS(
				ast.Bin(ast.Ident("n"), token.LT_EQ, ast.Int(1)),
				ast.Blk(ast.SD(ast.Ret(ast.Int(1)))),
				nil,
			)),
			ast.SD(ast.Ret(ast.Bin(
				ast.Ident("n"), token.STAR,
				ast.Cl(ast.Ident("fact"), ast.Bin(ast.Ident("n"), token.MINUS, ast.Int(1))),
			))),
		),
	)
	return []ast.Decl{
		fact,
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Cl(ast.Ident("fact"), ast.Int(5)))),
	}
}

// Arrays builds: let xs int[3] = [1, 2, 3]; xs[1] = 99; println(xs[1]);
func Arrays() []ast.Decl {
	arrType := rosetype.Array{Dims: []int{3}, Elem: rosetype.IntType}
	return []ast.Decl{
		ast.Let("xs", arrType, ast.ArrLit(arrType, ast.Int(1), ast.Int(2), ast.Int(3))),
		ast.ExprStmt(ast.Asn(ast.AMem(ast.Ident("xs"), ast.Int(1)), token.ASSIGN, ast.Int(99))),
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.AMem(ast.Ident("xs"), ast.Int(1)))),
	}
}

// DivByZero builds: println(1 / 0); (reported as a runtime error, not
// evaluated to a printed value).
func DivByZero() []ast.Decl {
	return []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Bin(ast.Int(1), token.SLASH, ast.Int(0)))),
	}
}

// WhileLoop builds: let sum = 0; let i = 0; while (i < 5) { sum += i; i
// += 1; } println(sum);
func WhileLoop() []ast.Decl {
	return []ast.Decl{
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
}

// StringConcat builds: println("ab" + 'c');
func StringConcat() []ast.Decl {
	return []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Bin(ast.Str("ab"), token.PLUS, ast.Char('c')))),
	}
}

// Precedence builds: println(2 + 3 * 4);
func Precedence() []ast.Decl {
	return []ast.Decl{
		ast.ExprStmt(ast.Cl(ast.Ident("println"), ast.Bin(
			ast.Int(2), token.PLUS,
			ast.Bin(ast.Int(3), token.STAR, ast.Int(4)),
		))),
	}
}
