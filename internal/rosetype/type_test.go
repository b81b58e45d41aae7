package rosetype

import "testing"

func TestAtomicEqualityIsStructural(t *testing.T) {
	a := atomic{tag: Int, name: "int"}
	b := atomic{tag: Int, name: "int"}
	if !a.Equals(b) {
		t.Fatalf("two independently constructed Int types should be equal")
	}
	if !IntType.Equals(IntType) {
		t.Fatalf("IntType should equal itself")
	}
	if IntType.Equals(FloatType) {
		t.Fatalf("IntType should not equal FloatType")
	}
}

func TestCustomEqualsByName(t *testing.T) {
	a := Custom{Name: "Point"}
	b := Custom{Name: "Point"}
	c := Custom{Name: "Vector"}
	if !a.Equals(b) {
		t.Fatalf("Custom types with same name should be equal")
	}
	if a.Equals(c) {
		t.Fatalf("Custom types with different names should not be equal")
	}
}

func TestNamedEqualsByNameAndInner(t *testing.T) {
	a := Named{Name: "x", Inner: IntType}
	b := Named{Name: "x", Inner: IntType}
	c := Named{Name: "y", Inner: IntType}
	d := Named{Name: "x", Inner: FloatType}
	if !a.Equals(b) {
		t.Fatalf("same name/inner should be equal")
	}
	if a.Equals(c) || a.Equals(d) {
		t.Fatalf("different name or inner should not be equal")
	}
}

func TestStructEqualsOrderedFields(t *testing.T) {
	a := Struct{Fields: []Named{{Name: "x", Inner: IntType}, {Name: "y", Inner: FloatType}}}
	b := Struct{Fields: []Named{{Name: "x", Inner: IntType}, {Name: "y", Inner: FloatType}}}
	reordered := Struct{Fields: []Named{{Name: "y", Inner: FloatType}, {Name: "x", Inner: IntType}}}
	if !a.Equals(b) {
		t.Fatalf("identical ordered fields should be equal")
	}
	if a.Equals(reordered) {
		t.Fatalf("reordered fields should not be equal (ordered comparison)")
	}
}

func TestArrayEqualityMatchesUnspecifiedDims(t *testing.T) {
	a := Array{Dims: []int{0, 3}, Elem: IntType}
	b := Array{Dims: []int{0, 3}, Elem: IntType}
	c := Array{Dims: []int{5, 3}, Elem: IntType}
	if !a.Equals(b) {
		t.Fatalf("arrays with same dims/elem should be equal")
	}
	if a.Equals(c) {
		t.Fatalf("arrays with different dims should not be equal")
	}
}

func TestFunctionEqualityStructural(t *testing.T) {
	a := Function{Params: []Type{IntType, StringType}, Returns: []Type{BoolType}}
	b := Function{Params: []Type{IntType, StringType}, Returns: []Type{BoolType}}
	c := Function{Params: []Type{IntType}, Returns: []Type{BoolType}}
	if !a.Equals(b) {
		t.Fatalf("identical function signatures should be equal")
	}
	if a.Equals(c) {
		t.Fatalf("different arity should not be equal")
	}
}

func TestPrettyPrinting(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{IntType, "int"},
		{StringType, "string"},
		{Struct{Fields: []Named{{Name: "x", Inner: IntType}, {Name: "y", Inner: FloatType}}}, "struct { x: int, y: float }"},
		{Array{Dims: []int{3}, Elem: IntType}, "int[3]"},
		{Array{Dims: []int{0}, Elem: CharType}, "char[]"},
		{Function{Params: []Type{IntType, IntType}, Returns: []Type{BoolType}}, "func(int,int) -> bool"},
	}
	for _, c := range cases {
		if got := c.typ.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestEqualHandlesNil(t *testing.T) {
	if Equal(nil, IntType) || Equal(IntType, nil) || Equal(nil, nil) {
		t.Fatalf("Equal should be false whenever either operand is nil")
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric(IntType) || !IsNumeric(FloatType) {
		t.Fatalf("Int and Float should be numeric")
	}
	if IsNumeric(StringType) || IsNumeric(nil) {
		t.Fatalf("String and nil should not be numeric")
	}
}
