package roseerr

import "testing"

func TestErrorFormattingWithAndWithoutLine(t *testing.T) {
	withLine := NewRuntimeError(7, "x: already defined")
	if got, want := withLine.Error(), "runtime error at line 7: x: already defined"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	noLine := NewRuntimeError(0, "boom")
	if got, want := noLine.Error(), "runtime error: boom"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCategoryLabels(t *testing.T) {
	cases := []struct {
		c    Category
		want string
	}{
		{Runtime, "runtime"},
		{DivByZero, "division"},
		{Type, "type"},
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Fatalf("%v.String() = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestFormattedConstructors(t *testing.T) {
	err := NewRuntimeErrorf(3, "%s: already defined", "n")
	if err.Message != "n: already defined" {
		t.Fatalf("Message = %q", err.Message)
	}
	typeErr := NewTypeErrorf(1, "expected %s, got %s", "int", "string")
	if typeErr.Category != Type {
		t.Fatalf("Category = %v, want Type", typeErr.Category)
	}
}

func TestDivByZeroConstructor(t *testing.T) {
	err := NewDivByZeroError(10, "division by zero")
	if err.Category != DivByZero {
		t.Fatalf("Category = %v, want DivByZero", err.Category)
	}
}
