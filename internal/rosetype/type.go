// Package rosetype implements Rose's static type model: a tagged type
// value with atomic, named, struct, array, and function variants
// (spec §3.1), their equality rules, and canonical pretty-printing
// (spec §4.2). The package is named rosetype rather than type to avoid
// colliding with the Go keyword.
package rosetype

import (
	"strconv"
	"strings"
)

// Tag identifies which Type variant a value is.
type Tag int

const (
	Int Tag = iota
	Float
	Char
	String
	Bool
	Void
	NilTag
	CustomTag
	NamedTag
	StructTag
	ArrayTag
	FunctionTag
)

// Type is a tagged static type value. Atomic variants (Int, Float,
// Char, String, Bool, Void, NilTag) are represented as singletons
// returned by the package-level constants below; Equals compares them
// structurally by tag, so two independently constructed atomic types
// of the same kind still compare equal.
type Type interface {
	Tag() Tag
	// Equals reports whether t and other denote the same type, per
	// the variant-specific rules in spec §3.1/§4.2.
	Equals(other Type) bool
	// String renders the canonical display form (spec §4.2).
	String() string
}

type atomic struct {
	tag  Tag
	name string
}

func (a atomic) Tag() Tag { return a.tag }
func (a atomic) String() string {
	return a.name
}
func (a atomic) Equals(other Type) bool {
	o, ok := other.(atomic)
	return ok && o.tag == a.tag
}

// Atomic singleton instances. Every call site that needs e.g. the Int
// type uses this same value, but Equals never relies on pointer
// identity; two freshly constructed Int types still compare equal.
var (
	IntType    Type = atomic{tag: Int, name: "int"}
	FloatType  Type = atomic{tag: Float, name: "float"}
	CharType   Type = atomic{tag: Char, name: "char"}
	StringType Type = atomic{tag: String, name: "string"}
	BoolType   Type = atomic{tag: Bool, name: "bool"}
	VoidType   Type = atomic{tag: Void, name: "void"}
	NilType    Type = atomic{tag: NilTag, name: "nil"}
)

// Custom is a user-defined nominal type, compared by name alone.
type Custom struct {
	Name string
}

func (c Custom) Tag() Tag      { return CustomTag }
func (c Custom) String() string { return c.Name }
func (c Custom) Equals(other Type) bool {
	o, ok := other.(Custom)
	return ok && o.Name == c.Name
}

// Named labels an inner type with a field or parameter name, compared
// by (name, inner) pair.
type Named struct {
	Name  string
	Inner Type
}

func (n Named) Tag() Tag { return NamedTag }
func (n Named) String() string {
	return n.Name + ": " + n.Inner.String()
}
func (n Named) Equals(other Type) bool {
	o, ok := other.(Named)
	return ok && o.Name == n.Name && o.Inner.Equals(n.Inner)
}

// Struct is an ordered list of Named fields; field labels are unique
// within a given Struct. Equality is ordered, pairwise field equality.
type Struct struct {
	Fields []Named
}

func (s Struct) Tag() Tag { return StructTag }
func (s Struct) String() string {
	var b strings.Builder
	b.WriteString("struct { ")
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Inner.String())
	}
	b.WriteString(" }")
	return b.String()
}
func (s Struct) Equals(other Type) bool {
	o, ok := other.(Struct)
	if !ok || len(o.Fields) != len(s.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Equals(o.Fields[i]) {
			return false
		}
	}
	return true
}

// Array is an N-dimensional array type. Dims entries of 0 mean the
// dimension's size is unspecified; two unspecified dimensions compare
// equal to each other (spec §3.1).
type Array struct {
	Dims []int
	Elem Type
}

func (a Array) Tag() Tag { return ArrayTag }
func (a Array) String() string {
	var b strings.Builder
	b.WriteString(a.Elem.String())
	for _, d := range a.Dims {
		b.WriteString("[")
		if d != 0 {
			b.WriteString(strconv.Itoa(d))
		}
		b.WriteString("]")
	}
	return b.String()
}
func (a Array) Equals(other Type) bool {
	o, ok := other.(Array)
	if !ok || len(o.Dims) != len(a.Dims) || !a.Elem.Equals(o.Elem) {
		return false
	}
	for i := range a.Dims {
		if a.Dims[i] != o.Dims[i] {
			return false
		}
	}
	return true
}

// Function is a callable type: ordered parameter types and ordered
// return types, compared structurally.
type Function struct {
	Params  []Type
	Returns []Type
}

func (f Function) Tag() Tag { return FunctionTag }
func (f Function) String() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if len(f.Returns) > 0 {
		b.WriteString(" -> ")
		for i, r := range f.Returns {
			if i > 0 {
				b.WriteString("|")
			}
			b.WriteString(r.String())
		}
	}
	return b.String()
}
func (f Function) Equals(other Type) bool {
	o, ok := other.(Function)
	if !ok || len(o.Params) != len(f.Params) || len(o.Returns) != len(f.Returns) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	for i := range f.Returns {
		if !f.Returns[i].Equals(o.Returns[i]) {
			return false
		}
	}
	return true
}

// Equal is a free function equivalent of t.Equals(other), handling the
// nil/nil and nil/non-nil cases that the Type interface's method set
// can't: a nil Type never equals anything, including another nil.
func Equal(t, other Type) bool {
	if t == nil || other == nil {
		return false
	}
	return t.Equals(other)
}

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool {
	return t != nil && (t.Tag() == Int || t.Tag() == Float)
}
