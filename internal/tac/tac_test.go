package tac

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/cfg"
	"github.com/go-decaf/decafc/internal/lexer"
	"github.com/go-decaf/decafc/internal/parser"
)

func lowerMain(t *testing.T, src string) []Instruction {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanAll()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", lexErrs)
	}
	prog, parseErrs := parser.New(toks, src, "t.decaf").Parse()
	if !parseErrs.Empty() {
		t.Fatalf("unexpected parse errors: %v", parseErrs.Lines())
	}
	graphs := cfg.Build(prog)
	out := Build(prog, graphs)
	instrs, ok := out.Methods["main"]
	if !ok {
		t.Fatalf("no instructions lowered for main")
	}
	return instrs
}

func labels(instrs []Instruction) []int {
	var got []int
	for _, in := range instrs {
		if f, ok := in.(*Flow); ok && f.Op == Label {
			got = append(got, f.Label)
		}
	}
	return got
}

// TestLabelsFollowArenaOrder checks that label numbering is derived
// from block arena indices: one Label per block, strictly increasing
// since lowerGraph walks Nodes in order.
func TestLabelsFollowArenaOrder(t *testing.T) {
	instrs := lowerMain(t, `void main() {
		int x;
		if (x > 0) {
			x = 1;
		} else {
			x = 2;
		}
		x = x + 1;
	}`)

	got := labels(instrs)
	if len(got) == 0 {
		t.Fatalf("expected at least one Label instruction")
	}
	want := make([]int, len(got))
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSimpleAssignmentLowersToMove(t *testing.T) {
	instrs := lowerMain(t, `void main() { int x; x = 1; }`)

	var mv *Unary
	for _, in := range instrs {
		if u, ok := in.(*Unary); ok && u.Op == Move {
			mv = u
		}
	}
	if mv == nil {
		t.Fatalf("expected a Move instruction, got %+v", instrs)
	}

	if _, ok := instrs[len(instrs)-1].(*Ret); !ok {
		t.Fatalf("method with a fallthrough tail should end in Ret, got %T", instrs[len(instrs)-1])
	}
}

func TestArithmeticLowersToBinaryReusingTargetSlot(t *testing.T) {
	instrs := lowerMain(t, `void main() { int x; x = x + 1; }`)

	var bin *Binary
	for _, in := range instrs {
		if b, ok := in.(*Binary); ok {
			bin = b
		}
	}
	if bin == nil || bin.Op != Add {
		t.Fatalf("expected an Add Binary, got %+v", instrs)
	}

	// The move that stores the addition's result should target the same
	// slot the addition read its left operand from (both are "x").
	var mv *Unary
	for _, in := range instrs {
		if u, ok := in.(*Unary); ok && u.Op == Move {
			mv = u
		}
	}
	if mv == nil {
		t.Fatalf("expected a closing Move, got %+v", instrs)
	}
	if bin.V1 != mv.Target {
		t.Fatalf("Binary.V1 = %d should equal the Move's Target %d (both name x)", bin.V1, mv.Target)
	}
}

func TestConditionLowersToGuardedAndUnconditionalFlow(t *testing.T) {
	instrs := lowerMain(t, `void main() {
		int x;
		if (x > 0) {
			x = 1;
		} else {
			x = 2;
		}
		x = x + 1;
	}`)

	// The condition block's false-branch guard (a conditional Goto) must
	// be immediately followed by the true-branch's unconditional Goto,
	// since the true target is not the arena's next block for this
	// program.
	for i, in := range instrs {
		guard, ok := in.(*Flow)
		if !ok || guard.Op != Goto || guard.Cond == nil {
			continue
		}
		if i+1 >= len(instrs) {
			t.Fatalf("conditional Goto at %d has no following instruction", i)
		}
		jump, ok := instrs[i+1].(*Flow)
		if !ok || jump.Op != Goto || jump.Cond != nil {
			t.Fatalf("expected an unconditional Goto after the conditional one at %d, got %+v", i, instrs[i+1])
		}
		return
	}
	t.Fatalf("expected a conditional Goto in %+v", instrs)
}

func TestMethodCallEmitsPushThenCall(t *testing.T) {
	instrs := lowerMain(t, `void main() { printf("hi"); }`)

	var pushIdx, callIdx = -1, -1
	for i, in := range instrs {
		switch v := in.(type) {
		case *Push:
			pushIdx = i
		case *Call:
			if v.Func == "printf" {
				callIdx = i
			}
		}
	}
	if pushIdx == -1 || callIdx == -1 || callIdx <= pushIdx {
		t.Fatalf("expected a Push before a Call to printf, got %+v", instrs)
	}
	call := instrs[callIdx].(*Call)
	if call.ParamCount != 1 {
		t.Fatalf("Call.ParamCount = %d, want 1", call.ParamCount)
	}
}

func TestArrayAssignmentEmitsStoreArray(t *testing.T) {
	prog := mustProgram(t, `
	int nums[5];
	void main() { nums[0] = 1; }
	`)
	out := Build(prog, cfg.Build(prog))
	instrs := out.Methods["main"]

	var store *Array
	for _, in := range instrs {
		if a, ok := in.(*Array); ok && a.Op == StoreArray {
			store = a
		}
	}
	if store == nil {
		t.Fatalf("expected a StoreArray instruction, got %+v", instrs)
	}
}

func mustProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanAll()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", lexErrs)
	}
	prog, parseErrs := parser.New(toks, src, "t.decaf").Parse()
	if !parseErrs.Empty() {
		t.Fatalf("unexpected parse errors: %v", parseErrs.Lines())
	}
	return prog
}

func TestGlobalInitializerLowersIntoProgramGlobal(t *testing.T) {
	prog := mustProgram(t, `int total = 0; void main() { }`)
	out := Build(prog, cfg.Build(prog))

	var mv *Unary
	for _, in := range out.Global {
		if u, ok := in.(*Unary); ok && u.Op == Move {
			mv = u
		}
	}
	if mv == nil {
		t.Fatalf("expected a Move lowering the global initializer, got %+v", out.Global)
	}
}
