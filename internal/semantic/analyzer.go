// Package semantic implements a visitor-driven analyzer: one top-down
// pass enforcing all 25 rules while propagating expression types
// through nested lexical scopes.
package semantic

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/errors"
	"github.com/go-decaf/decafc/internal/symtab"
	"github.com/go-decaf/decafc/pkg/token"
)

// zeroPos is used for program-level diagnostics (rule 3) that are not
// anchored to a single AST node.
var zeroPos = token.Position{Line: 0, Column: 0}

// Analyzer walks a Program once, accumulating every rule violation it
// finds rather than stopping at the first.
//
// resultType is a scratch field: expression visit methods set it, and
// the caller (usually the parent expression's own Visit method) reads
// it back via evalType. A return-value style would work just as well;
// decafc keeps the scratch-field form because it lets Analyzer satisfy
// ast.Visitor directly rather than needing a second, parallel typed
// visitor interface.
type Analyzer struct {
	ast.BaseVisitor

	table      *symtab.Table
	errs       *errors.List
	resultType symtab.Type
	loopDepth  int
}

// New constructs an Analyzer that will report diagnostics against
// source/file.
func New(source, file string) *Analyzer {
	return &Analyzer{
		table: symtab.New(),
		errs:  errors.NewList(errors.Semantic, source, file),
	}
}

// Check runs the analyzer over prog and returns the accumulated
// diagnostics (contract: `check(program) -> ok | errors[]`).
func Check(prog *ast.Program, source, file string) *errors.List {
	a := New(source, file)
	a.visitProgram(prog)
	return a.errs
}

func (a *Analyzer) errorf(pos ast.Node, format string, args ...any) {
	a.errs.Add(pos.Pos(), format, args...)
}

// evalType visits e and returns the type the visit left in resultType.
// On a nested typing error the subtree's type is coerced to None so
// that errors do not cascade into spurious outer-rule violations at the
// same expression level, while outer rules (on the parent node) still
// run.
func (a *Analyzer) evalType(e ast.Expression) symtab.Type {
	a.resultType = symtab.None
	e.Accept(a)

	// Rule 8: a call used where a value is expected must not return
	// void. Calls dispatched as bare statements go through
	// Statement.Accept directly, never through evalType, so this check
	// only fires for calls nested inside a larger expression.
	if call, ok := e.(*ast.MethodCall); ok && a.resultType == symtab.Void {
		a.errorf(call, "Call to %s is used as an expression but returns void.", call.Callee.Name)
		a.resultType = symtab.None
	}

	return a.resultType
}

func (a *Analyzer) declareMethod(m *ast.MethodDecl) {
	retType, _ := symtab.ScalarTypeOf(m.ReturnType)

	params := make([]symtab.Entry, 0, len(m.Params))
	for _, p := range m.Params {
		pt, _ := symtab.ScalarTypeOf(p.TypeName)
		params = append(params, symtab.Entry{Kind: symtab.VarEntry, Name: p.Name.Name, Type: pt})
	}

	entry := symtab.Entry{
		Kind:       symtab.MethodEntry,
		Name:       m.Name.Name,
		Type:       symtab.Void,
		ReturnType: retType,
		Params:     params,
	}
	if !a.table.Declare(entry) {
		a.errorf(m.Name, "Identifier %s is declared twice in the same scope.", m.Name.Name)
	}
}

func (a *Analyzer) declareImport(imp *ast.ImportDecl) {
	entry := symtab.Entry{Kind: symtab.ImportEntry, Name: imp.Name.Name, Type: symtab.None}
	if !a.table.Declare(entry) {
		a.errorf(imp.Name, "Identifier %s is declared twice in the same scope.", imp.Name.Name)
	}
}

// visitProgram drives the top-level pass: declare imports/globals/method
// signatures first so forward references between methods resolve (spec
// §4.5 rule 2 concerns use-before-declaration within a scope, not
// declaration order across top-level methods), then analyze bodies, then
// check rule 3.
func (a *Analyzer) visitProgram(prog *ast.Program) {
	for _, imp := range prog.Imports {
		a.declareImport(imp)
	}
	for _, field := range prog.Globals {
		a.declareField(field)
	}
	for _, m := range prog.Methods {
		a.declareMethod(m)
	}
	for _, m := range prog.Methods {
		a.analyzeMethodBody(m)
	}
	a.checkMain()
}

// VisitProgram satisfies ast.Visitor; Check drives visitProgram directly
// so callers outside this package still go through the documented
// visitor dispatch if they hold an ast.Node.
func (a *Analyzer) VisitProgram(n *ast.Program) { a.visitProgram(n) }

// checkMain enforces rule 3: main exists, returns Void, takes zero
// parameters.
func (a *Analyzer) checkMain() {
	entry, ok := a.table.Global.Lookup("main")
	if !ok || entry.Kind != symtab.MethodEntry {
		a.errs.Add(zeroPos, "Method main is not defined.")
		return
	}
	if entry.ReturnType != symtab.Void {
		a.errs.Add(zeroPos, "Method main must return void.")
	}
	if len(entry.Params) != 0 {
		a.errs.Add(zeroPos, "Method main must take zero parameters.")
	}
}
