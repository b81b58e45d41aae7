package object

import "testing"

func TestLookupLaw(t *testing.T) {
	root := NewContext()
	root.Define("x", &Integer{Value: 1})
	child := Enclose(root)

	for _, frame := range []*Context{root, child} {
		v, ok := frame.Get("x")
		if !ok {
			t.Fatalf("Get(x) not found")
		}
		if v.(*Integer).Value != 1 {
			t.Fatalf("Get(x) = %v, want 1", v)
		}
	}
}

func TestShadowingDoesNotLeakUpward(t *testing.T) {
	root := NewContext()
	root.Define("x", &Integer{Value: 1})
	child := Enclose(root)
	child.Define("x", &Integer{Value: 2})

	v, _ := child.Get("x")
	if v.(*Integer).Value != 2 {
		t.Fatalf("child Get(x) = %v, want 2 (shadowed)", v)
	}
	v, _ = root.Get("x")
	if v.(*Integer).Value != 1 {
		t.Fatalf("root Get(x) = %v, want 1 (unaffected by shadow)", v)
	}
}

func TestAssignLaw(t *testing.T) {
	root := NewContext()
	root.Define("x", &Integer{Value: 1})
	child := Enclose(root)
	grandchild := Enclose(child)

	grandchild.Assign("x", &Integer{Value: 99})

	v, _ := root.Get("x")
	if v.(*Integer).Value != 99 {
		t.Fatalf("root Get(x) after descendant Assign = %v, want 99", v)
	}
	v, _ = grandchild.Get("x")
	if v.(*Integer).Value != 99 {
		t.Fatalf("grandchild Get(x) = %v, want 99", v)
	}
}

func TestAssignToUndefinedNameIsNoOp(t *testing.T) {
	root := NewContext()
	root.Assign("missing", &Integer{Value: 1})
	if _, ok := root.Get("missing"); ok {
		t.Fatalf("Assign to undefined name should not define it")
	}
}

func TestExistsChecksCurrentFrameOnly(t *testing.T) {
	root := NewContext()
	root.Define("x", &Integer{Value: 1})
	child := Enclose(root)

	if child.Exists("x") {
		t.Fatalf("Exists should not see parent bindings")
	}
	if !root.Exists("x") {
		t.Fatalf("Exists should see its own binding")
	}
}
