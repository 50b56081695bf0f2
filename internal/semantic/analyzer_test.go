package semantic

import (
	"testing"

	"github.com/go-decaf/decafc/internal/lexer"
	"github.com/go-decaf/decafc/internal/parser"
)

// check lexes and parses src, then runs the analyzer over it, failing the
// test on lex or parse errors (those are covered by their own packages).
func check(t *testing.T, src string) []string {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanAll()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", lexErrs)
	}
	prog, parseErrs := parser.New(toks, src, "t.decaf").Parse()
	if !parseErrs.Empty() {
		t.Fatalf("unexpected parse errors: %v", parseErrs.Lines())
	}
	errs := Check(prog, src, "t.decaf")
	return errs.Lines()
}

func TestValidProgramHasNoErrors(t *testing.T) {
	src := `
	import printf;

	int total = 0;
	const int limit = 10;
	int nums[5];

	int add(int a, int b) {
		return a + b;
	}

	void main() {
		int i = 0;
		while (i < limit) {
			total = add(total, i);
			i = i + 1;
		}
		for (i = 0; i < 5; i++) {
			nums[i] = i;
		}
		if (total > 0) {
			printf("positive");
		} else {
			printf("non-positive");
		}
	}
	`
	if errs := check(t, src); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestUndefinedIdentifier(t *testing.T) {
	errs := check(t, `void main() { x = 1; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for undefined identifier x")
	}
}

func TestDuplicateDeclarationInSameScope(t *testing.T) {
	errs := check(t, `
	int x;
	int x;
	void main() { }
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for redeclaring x")
	}
}

func TestMainMustExist(t *testing.T) {
	errs := check(t, `int helper() { return 1; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for a missing main method")
	}
}

func TestMainMustReturnVoidWithNoParams(t *testing.T) {
	errs := check(t, `int main() { return 1; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for main returning non-void")
	}
	errs = check(t, `void main(int a) { }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for main taking parameters")
	}
}

func TestAssignmentTypeMismatch(t *testing.T) {
	errs := check(t, `void main() { int x; x = true; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error assigning bool to an int location")
	}
}

func TestReturnTypeMismatch(t *testing.T) {
	errs := check(t, `bool pick() { return 1; } void main() { }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error returning int from a bool method")
	}
}

func TestReturnValueInVoidMethodIsAnError(t *testing.T) {
	errs := check(t, `void main() { return 1; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error returning a value from a void method")
	}
}

func TestConditionMustBeBool(t *testing.T) {
	errs := check(t, `void main() { int x; if (x) { } }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error using an int as an if condition")
	}
}

func TestBreakOutsideLoopIsAnError(t *testing.T) {
	errs := check(t, `void main() { break; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for break outside a loop")
	}
}

func TestContinueInsideLoopIsLegal(t *testing.T) {
	errs := check(t, `void main() { while (true) { continue; } }`)
	if len(errs) != 0 {
		t.Fatalf("continue inside a loop should be legal, got %v", errs)
	}
}

func TestArrayDeclRequiresPositiveLength(t *testing.T) {
	errs := check(t, `int nums[0]; void main() { }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error declaring an array of length 0")
	}
}

func TestArrayIndexMustBeInt(t *testing.T) {
	errs := check(t, `
	int nums[5];
	void main() {
		bool b;
		nums[b] = 1;
	}
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error indexing with a bool")
	}
}

func TestAssignToConstIsAnError(t *testing.T) {
	errs := check(t, `const int limit = 10; void main() { limit = 20; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error assigning to a const location")
	}
}

func TestCallArgumentCountMismatch(t *testing.T) {
	errs := check(t, `
	int add(int a, int b) { return a + b; }
	void main() { add(1); }
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error calling add with too few arguments")
	}
}

func TestCallArgumentTypeMismatch(t *testing.T) {
	errs := check(t, `
	int add(int a, int b) { return a + b; }
	void main() { add(true, 2); }
	`)
	if len(errs) == 0 {
		t.Fatalf("expected an error passing a bool where an int is expected")
	}
}

func TestCallingUndefinedMethodIsAnError(t *testing.T) {
	errs := check(t, `void main() { ghost(); }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error calling an undefined method")
	}
}

func TestArithmeticRequiresMatchingNumericTypes(t *testing.T) {
	errs := check(t, `void main() { int x; long y; x = x + y; }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error mixing int and long in arithmetic")
	}
}

func TestLogicalOperatorsRequireBool(t *testing.T) {
	errs := check(t, `void main() { int x; if (x && true) { } }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error using an int operand with &&")
	}
}

func TestIntLiteralOutOfRangeIsAnError(t *testing.T) {
	errs := check(t, `int x = 99999999999; void main() { }`)
	if len(errs) == 0 {
		t.Fatalf("expected an error for an int literal exceeding 32 bits")
	}
}

func TestLongLiteralWithinRangeIsLegal(t *testing.T) {
	errs := check(t, `long x = 99999999999L; void main() { }`)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for a long literal within range, got %v", errs)
	}
}

func TestShadowingParamInNestedBlockIsLegal(t *testing.T) {
	src := `
	int pick(int x) {
		if (x > 0) {
			int x;
			x = 5;
		}
		return x;
	}
	void main() { }
	`
	if errs := check(t, src); len(errs) != 0 {
		t.Fatalf("expected no errors shadowing a param in a nested block, got %v", errs)
	}
}
