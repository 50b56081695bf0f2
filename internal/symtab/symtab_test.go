package symtab

import "testing"

func TestScopeDeclareRejectsDuplicates(t *testing.T) {
	tbl := New()
	ok := tbl.Declare(Entry{Kind: VarEntry, Name: "x", Type: Int})
	if !ok {
		t.Fatalf("first declaration of x should succeed")
	}
	ok = tbl.Declare(Entry{Kind: VarEntry, Name: "x", Type: Int})
	if ok {
		t.Fatalf("redeclaring x in the same scope should fail")
	}
}

func TestResolveWalksScopeStackOutward(t *testing.T) {
	tbl := New()
	tbl.Declare(Entry{Kind: VarEntry, Name: "x", Type: Int})

	tbl.PushScope(None)
	tbl.Declare(Entry{Kind: VarEntry, Name: "y", Type: Bool})

	if e, ok := tbl.Resolve("y"); !ok || e.Type != Bool {
		t.Fatalf("Resolve(y) = %+v, %v, want Bool entry", e, ok)
	}
	if e, ok := tbl.Resolve("x"); !ok || e.Type != Int {
		t.Fatalf("Resolve(x) should fall through to the global scope, got %+v, %v", e, ok)
	}

	tbl.PopScope()
	if _, ok := tbl.Resolve("y"); ok {
		t.Fatalf("y should not resolve once its scope is popped")
	}
}

func TestShadowingAcrossScopesIsLegal(t *testing.T) {
	tbl := New()
	tbl.Declare(Entry{Kind: VarEntry, Name: "x", Type: Int})

	tbl.PushScope(None)
	ok := tbl.Declare(Entry{Kind: VarEntry, Name: "x", Type: Bool})
	if !ok {
		t.Fatalf("shadowing an outer x from a nested scope should succeed")
	}

	e, _ := tbl.Resolve("x")
	if e.Type != Bool {
		t.Fatalf("innermost x should shadow the outer one, got %s", e.Type)
	}
}

func TestReturnTypeWalksOutwardToTheMethodScope(t *testing.T) {
	tbl := New()
	tbl.PushScope(Int) // method scope
	tbl.PushScope(None) // nested block, e.g. an if-body

	rt, ok := tbl.ReturnType()
	if !ok || rt != Int {
		t.Fatalf("ReturnType() = %s, %v, want Int, true", rt, ok)
	}
}

func TestReturnTypeFalseOutsideAnyMethod(t *testing.T) {
	tbl := New()
	if _, ok := tbl.ReturnType(); ok {
		t.Fatalf("ReturnType() should report false at the top level")
	}
}

func TestPopScopeOnEmptyStackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("PopScope on an empty stack should panic")
		}
	}()
	New().PopScope()
}

func TestTypeLattice(t *testing.T) {
	tests := []struct {
		elem Type
		arr  Type
	}{
		{Int, IntArray},
		{Long, LongArray},
		{Bool, BoolArray},
	}
	for _, tt := range tests {
		if got := ArrayOf(tt.elem); got != tt.arr {
			t.Errorf("ArrayOf(%s) = %s, want %s", tt.elem, got, tt.arr)
		}
		if got := tt.arr.ElementType(); got != tt.elem {
			t.Errorf("%s.ElementType() = %s, want %s", tt.arr, got, tt.elem)
		}
		if !tt.arr.IsArray() {
			t.Errorf("%s.IsArray() = false, want true", tt.arr)
		}
	}
	if Int.IsArray() {
		t.Errorf("Int.IsArray() = true, want false")
	}
	if ArrayOf(Void) != None {
		t.Errorf("ArrayOf(Void) should be None")
	}
}

func TestScalarTypeOf(t *testing.T) {
	tests := []struct {
		name string
		want Type
		ok   bool
	}{
		{"int", Int, true},
		{"long", Long, true},
		{"bool", Bool, true},
		{"void", Void, true},
		{"nope", None, false},
	}
	for _, tt := range tests {
		got, ok := ScalarTypeOf(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ScalarTypeOf(%q) = %s, %v, want %s, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
