package parser

import (
	"testing"

	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.New(src).ScanAll()
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", lexErrs)
	}
	prog, errs := New(toks, src, "test.decaf").Parse()
	if !errs.Empty() {
		t.Fatalf("unexpected parse errors: %v", errs.Lines())
	}
	return prog
}

func TestParseProgramShape(t *testing.T) {
	src := `
	import printf;

	int count = 0;
	const bool debug = true;

	void main() {
		int x = 1;
		x = x + 1;
	}
	`
	prog := mustParse(t, src)

	if len(prog.Imports) != 1 || prog.Imports[0].Name.Name != "printf" {
		t.Fatalf("Imports = %+v", prog.Imports)
	}
	if len(prog.Globals) != 2 {
		t.Fatalf("want 2 global fields, got %d", len(prog.Globals))
	}
	if !prog.Globals[1].IsConst {
		t.Fatalf("debug field should be const")
	}
	if len(prog.Methods) != 1 || prog.Methods[0].Name.Name != "main" {
		t.Fatalf("Methods = %+v", prog.Methods)
	}
	// `int x = 1;` is a local field declaration and lands in Body.Fields;
	// only `x = x + 1;` is a statement.
	if len(prog.Methods[0].Body.Fields) != 1 {
		t.Fatalf("want 1 field declaration in main's body, got %d", len(prog.Methods[0].Body.Fields))
	}
	if len(prog.Methods[0].Body.Stmts) != 1 {
		t.Fatalf("want 1 statement in main's body, got %d", len(prog.Methods[0].Body.Stmts))
	}
}

func TestParseIfElse(t *testing.T) {
	prog := mustParse(t, `void main() { if (1 > 0) { return; } else { return; } }`)
	stmt := prog.Methods[0].Body.Stmts[0]
	ifStmt, ok := stmt.(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStmt", stmt)
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else clause")
	}
}

func TestParseForDesugarShape(t *testing.T) {
	prog := mustParse(t, `void main() { for (i = 0; i < 10; i++) { } }`)
	stmt := prog.Methods[0].Body.Stmts[0]
	forStmt, ok := stmt.(*ast.ForStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStmt", stmt)
	}
	if forStmt.Init.Target.(*ast.Identifier).Name != "i" {
		t.Fatalf("Init.Target = %+v", forStmt.Init.Target)
	}
	upd, ok := forStmt.Update.(*ast.Assignment)
	if !ok {
		t.Fatalf("Update = %T, want *ast.Assignment", forStmt.Update)
	}
	if upd.Value != nil {
		t.Fatalf("i++ should leave Value nil, got %+v", upd.Value)
	}
}

func TestParseArrayDeclAndIndex(t *testing.T) {
	prog := mustParse(t, `
	int nums[5];
	void main() {
		nums[0] = 1;
	}
	`)
	field := prog.Globals[0]
	v := field.Vars[0]
	if !v.IsArray || v.ArrayLen == nil || v.ArrayLen.Text != "5" {
		t.Fatalf("nums decl = %+v", v)
	}

	assign := prog.Methods[0].Body.Stmts[0].(*ast.Assignment)
	idx, ok := assign.Target.(*ast.Index)
	if !ok {
		t.Fatalf("assignment target = %T, want *ast.Index", assign.Target)
	}
	if idx.Array.Name != "nums" {
		t.Fatalf("Index.Array.Name = %q", idx.Array.Name)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3), i.e. the Binary's Right is
	// itself the multiplication.
	// A field initializer only admits a literal, so the expression is
	// parsed on the right-hand side of an assignment.
	prog := mustParse(t, `void main() { x = 1 + 2 * 3; }`)
	assign := prog.Methods[0].Body.Stmts[0].(*ast.Assignment)
	bin, ok := assign.Value.(*ast.Binary)
	if !ok {
		t.Fatalf("Value = %T, want *ast.Binary", assign.Value)
	}
	if bin.Op.String() != "+" {
		t.Fatalf("outer op = %s, want +", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op.String() != "*" {
		t.Fatalf("rhs = %+v, want a * Binary", bin.Right)
	}
}

func TestParseNegativeLiteralIsAbsorbed(t *testing.T) {
	prog := mustParse(t, `int x = -5;`)
	v := prog.Globals[0].Vars[0]
	lit, ok := v.Initializer.(*ast.IntConst)
	if !ok {
		t.Fatalf("Initializer = %T, want *ast.IntConst", v.Initializer)
	}
	if !lit.IsNeg || lit.Text != "5" {
		t.Fatalf("IntConst = %+v, want {IsNeg: true, Text: \"5\"}", lit)
	}
}

func TestParseMethodCallAsStatement(t *testing.T) {
	prog := mustParse(t, `void main() { printf("hi"); }`)
	call, ok := prog.Methods[0].Body.Stmts[0].(*ast.MethodCall)
	if !ok {
		t.Fatalf("got %T, want *ast.MethodCall", prog.Methods[0].Body.Stmts[0])
	}
	if call.Callee.Name != "printf" || len(call.Args) != 1 {
		t.Fatalf("call = %+v", call)
	}
}

func TestParseErrorOnMissingSemicolon(t *testing.T) {
	toks, _ := lexer.New(`int x`).ScanAll()
	_, errs := New(toks, "int x", "t.decaf").Parse()
	if errs.Empty() {
		t.Fatalf("expected a parse error for a missing semicolon")
	}
}
