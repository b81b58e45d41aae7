package ast

import (
	"github.com/roselang/rose/internal/rosetype"
	"github.com/roselang/rose/internal/token"
)

// Binary applies an arithmetic, comparison, equality, or bitwise
// operator to two operands (spec §4.4/§4.5.3).
type Binary struct {
	Token token.Token
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Tok() token.Token { return e.Token }
func (e *Binary) exprNode()        {}

// Group is a parenthesized sub-expression; it exists only to preserve
// source structure and defers entirely to Inner at evaluation time.
type Group struct {
	Token token.Token
	Inner Expr
}

func (e *Group) Tok() token.Token { return e.Token }
func (e *Group) exprNode()        {}

// AssignTarget is either an *IdentRef or an *ArrayMember: the two
// expression forms legal as an assignment's left-hand side.
type AssignTarget interface {
	Expr
	assignTargetNode()
}

// Assign writes Value to Target, applying Op (plain `=` or a compound
// operator such as `+=`) and yielding the value that was written
// (spec §4.5.3).
type Assign struct {
	Token  token.Token
	Target AssignTarget
	Op     token.Token
	Value  Expr
}

func (e *Assign) Tok() token.Token { return e.Token }
func (e *Assign) exprNode()        {}

// Call invokes Callee (which must evaluate to a Callable) with Args,
// evaluated left to right (spec §4.5.3).
type Call struct {
	Token  token.Token
	Callee Expr
	Args   []Expr
}

func (e *Call) Tok() token.Token { return e.Token }
func (e *Call) exprNode()        {}

// Logical is a short-circuiting `&&`/`||` expression (spec §4.5.3).
type Logical struct {
	Token token.Token
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Tok() token.Token { return e.Token }
func (e *Logical) exprNode()        {}

// Unary applies a prefix operator (`+`, `-`, `~`, `!`) to Operand.
type Unary struct {
	Token   token.Token
	Op      token.Token
	Operand Expr
}

func (e *Unary) Tok() token.Token { return e.Token }
func (e *Unary) exprNode()        {}

// Update is a post-increment/decrement (`++`/`--`) on Operand; it
// yields the pre-update value without persisting the change (spec §9
// Open Questions, the spec's own resolution, followed literally).
type Update struct {
	Token   token.Token
	Operand Expr
	Op      token.Token
}

func (e *Update) Tok() token.Token { return e.Token }
func (e *Update) exprNode()        {}

// Conditional is the classic ternary `cond ? then : else`.
type Conditional struct {
	Token token.Token
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (e *Conditional) Tok() token.Token { return e.Token }
func (e *Conditional) exprNode()        {}

// Member accesses a named field of Receiver. Struct field access has
// no runtime semantics in this version (spec §9 Open Questions); the
// node exists so the checker can still type a `.Name` expression.
type Member struct {
	Token    token.Token
	Receiver Expr
	Name     string
}

func (e *Member) Tok() token.Token { return e.Token }
func (e *Member) exprNode()        {}

// ArrayMember indexes Receiver, an array, with one index expression
// per dimension (spec §4.5.3).
type ArrayMember struct {
	Token    token.Token
	Receiver Expr
	Indices  []Expr
}

func (e *ArrayMember) Tok() token.Token  { return e.Token }
func (e *ArrayMember) exprNode()         {}
func (e *ArrayMember) assignTargetNode() {}

// Cast converts Target's runtime value to Type, per the conversion
// table in spec §4.5.3.
type Cast struct {
	Token  token.Token
	Target Expr
	Type   rosetype.Type
}

func (e *Cast) Tok() token.Token { return e.Token }
func (e *Cast) exprNode()        {}
