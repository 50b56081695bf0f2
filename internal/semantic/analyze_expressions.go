package semantic

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/symtab"
)

// resolveLocation enforces rules 2 and 12 for any Identifier used as a
// value or assignment target (as opposed to a call callee, which rule
// 13 governs separately in analyze_calls.go). It returns the resolved
// entry's Type, or None on any failure.
func (a *Analyzer) resolveLocation(id *ast.Identifier) (symtab.Entry, symtab.Type) {
	entry, ok := a.table.Resolve(id.Name)
	if !ok {
		a.errorf(id, "Identifier %s is undefined.", id.Name)
		return symtab.Entry{}, symtab.None
	}
	if entry.Kind != symtab.VarEntry && entry.Kind != symtab.ArrayEntry {
		a.errorf(id, "Identifier %s is a %s and cannot be used as a location.", id.Name, entry.Kind)
		return entry, symtab.None
	}
	return entry, entry.Type
}

// VisitIdentifier types a bare identifier reference (spec rules 2, 12).
func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	_, t := a.resolveLocation(n)
	a.resultType = t
}

// VisitIndex enforces rule 14: `id[e]` requires id : SomeArray and
// e : Int.
func (a *Analyzer) VisitIndex(n *ast.Index) {
	entry, _ := a.resolveLocation(n.Array)
	indexType := a.evalType(n.Index)

	if entry.Kind == symtab.ArrayEntry || entry.Type.IsArray() {
		a.resultType = entry.Type.ElementType()
	} else if entry.Kind == symtab.VarEntry {
		a.errorf(n.Array, "Identifier %s is not an array and cannot be indexed.", n.Array.Name)
		a.resultType = symtab.None
	} else {
		a.resultType = symtab.None
	}

	if indexType != symtab.None && indexType != symtab.Int {
		a.errorf(n.Index, "Array index must have type int, got %s.", indexType)
	}
}

// VisitLenCall enforces rule 15: `len(id)` requires id : SomeArray.
func (a *Analyzer) VisitLenCall(n *ast.LenCall) {
	entry, _ := a.resolveLocation(n.Target)
	if entry.Kind != symtab.ArrayEntry && !entry.Type.IsArray() {
		if entry.Kind == symtab.VarEntry {
			a.errorf(n.Target, "len() requires an array argument; %s is not an array.", n.Target.Name)
		}
	}
	a.resultType = symtab.Int
}

// VisitIntCast and VisitLongCast type the `int(id)`/`long(id)` builtin
// conversions. The grammar admits only a scalar identifier target; an
// array target is rejected the same way an out-of-lattice location
// would be.
func (a *Analyzer) VisitIntCast(n *ast.IntCast) {
	entry, _ := a.resolveLocation(n.Target)
	if entry.Type.IsArray() {
		a.errorf(n.Target, "int() cannot convert array %s.", n.Target.Name)
	}
	a.resultType = symtab.Int
}

func (a *Analyzer) VisitLongCast(n *ast.LongCast) {
	entry, _ := a.resolveLocation(n.Target)
	if entry.Type.IsArray() {
		a.errorf(n.Target, "long() cannot convert array %s.", n.Target.Name)
	}
	a.resultType = symtab.Long
}

// VisitUnary enforces rule 19 for `!` and the arithmetic-operand
// restriction of rule 17 for prefix `-` (a non-literal negation; a `-`
// applied directly to a literal is absorbed at parse time and never
// reaches here — "Constants").
func (a *Analyzer) VisitUnary(n *ast.Unary) {
	operand := a.evalType(n.Operand)

	switch n.Op.String() {
	case "!":
		if operand != symtab.None && operand != symtab.Bool {
			a.errorf(n, "Operand of '!' must have type bool, got %s.", operand)
		}
		a.resultType = symtab.Bool
	case "-":
		if operand != symtab.None && operand != symtab.Int && operand != symtab.Long {
			a.errorf(n, "Operand of unary '-' must have type int or long, got %s.", operand)
			a.resultType = symtab.None
			return
		}
		a.resultType = operand
	}
}

// VisitBinary enforces rules 17, 18, and 19.
func (a *Analyzer) VisitBinary(n *ast.Binary) {
	left := a.evalType(n.Left)
	right := a.evalType(n.Right)
	op := n.Op.String()

	switch op {
	case "&&", "||":
		a.checkLogical(n, left, right)
		a.resultType = symtab.Bool
	case "==", "!=":
		a.checkEquality(n, left, right)
		a.resultType = symtab.Bool
	case "<", "<=", ">", ">=":
		a.checkArithmeticOperands(n, left, right, "relational")
		a.resultType = symtab.Bool
	default: // + - * / %
		a.resultType = a.checkArithmeticOperands(n, left, right, "arithmetic")
	}
}

// checkArithmeticOperands enforces rule 17: operand types are each in
// {Int, Long}, and both operands share the same type. It returns the
// shared type (for arithmetic operators) or None if the rule failed.
func (a *Analyzer) checkArithmeticOperands(n *ast.Binary, left, right symtab.Type, kind string) symtab.Type {
	leftOK := left == symtab.None || left == symtab.Int || left == symtab.Long
	rightOK := right == symtab.None || right == symtab.Int || right == symtab.Long
	if !leftOK || !rightOK {
		a.errorf(n, "Operands of %s %s must have type int or long.", kind, n.Op)
		return symtab.None
	}
	if left != symtab.None && right != symtab.None && left != right {
		a.errorf(n, "Operands of %s %s must have the same type, got %s and %s.", kind, n.Op, left, right)
		return symtab.None
	}
	if left != symtab.None {
		return left
	}
	return right
}

// checkEquality enforces rule 18: operand types equal, drawn from
// {Int, Long, Bool}.
func (a *Analyzer) checkEquality(n *ast.Binary, left, right symtab.Type) {
	allowed := func(t symtab.Type) bool {
		return t == symtab.None || t == symtab.Int || t == symtab.Long || t == symtab.Bool
	}
	if !allowed(left) || !allowed(right) {
		a.errorf(n, "Operands of %s must have type int, long, or bool.", n.Op)
		return
	}
	if left != symtab.None && right != symtab.None && left != right {
		a.errorf(n, "Operands of %s must have the same type, got %s and %s.", n.Op, left, right)
	}
}

// checkLogical enforces rule 19 for `&&`/`||`.
func (a *Analyzer) checkLogical(n *ast.Binary, left, right symtab.Type) {
	if (left != symtab.None && left != symtab.Bool) || (right != symtab.None && right != symtab.Bool) {
		a.errorf(n, "Operands of %s must have type bool.", n.Op)
	}
}

// VisitArrayLit types an array literal generically; its element typing
// against a declared array's element type is rule 4/5's job
// (analyze_declarations.go checkArrayDecl), since an ArrayLit only ever
// appears as a VarDecl initializer in this grammar.
func (a *Analyzer) VisitArrayLit(n *ast.ArrayLit) {
	a.resultType = symtab.None
}
