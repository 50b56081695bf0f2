package semantic

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/symtab"
	"github.com/go-decaf/decafc/pkg/token"
)

// checkCondition enforces rule 16: if/while conditions and the for
// loop's second Expr must have type bool.
func (a *Analyzer) checkCondition(cond ast.Expression, context string) {
	t := a.evalType(cond)
	if t != symtab.None && t != symtab.Bool {
		a.errorf(cond, "Condition of %s must have type bool, got %s.", context, t)
	}
}

// VisitIfStmt enforces rule 16 and opens nested scopes for both arms.
func (a *Analyzer) VisitIfStmt(n *ast.IfStmt) {
	a.checkCondition(n.Cond, "if")
	n.Then.Accept(a)
	if n.Else != nil {
		n.Else.Accept(a)
	}
}

// visitLoopBody increments the loop-depth counter ("State
// machine of the loop-depth counter") for the duration of a for/while
// body, so break/continue checking (rule 24) can test loopDepth > 0.
func (a *Analyzer) visitLoopBody(b *ast.Block) {
	a.loopDepth++
	b.Accept(a)
	a.loopDepth--
}

// VisitWhileStmt enforces rule 16 and tracks loop depth for rule 24.
func (a *Analyzer) VisitWhileStmt(n *ast.WhileStmt) {
	a.checkCondition(n.Cond, "while")
	a.visitLoopBody(n.Body)
}

// VisitForStmt desugars, for checking purposes, to
// `init; while (cond) { body; update; }` (its CFG desugaring is
// mirrored here for the semantic pass): the induction variable's
// initializer is a plain assignment (rule 20), the condition is rule 16,
// and the body/update run under loop depth (rule 24).
func (a *Analyzer) VisitForStmt(n *ast.ForStmt) {
	a.checkAssignment(n.Init)
	a.checkCondition(n.Cond, "for")

	a.loopDepth++
	n.Body.Accept(a)
	n.Update.Accept(a)
	a.loopDepth--
}

// VisitReturnStmt enforces rules 10 and 11.
func (a *Analyzer) VisitReturnStmt(n *ast.ReturnStmt) {
	retType, ok := a.table.ReturnType()
	if !ok {
		a.errorf(n, "return used outside of a method body.")
		return
	}

	if n.Value == nil {
		if retType != symtab.Void {
			a.errorf(n, "return with no value is only allowed in a void method.")
		}
		return
	}

	if retType == symtab.Void {
		a.errorf(n, "return with a value is not allowed in a void method.")
		a.evalType(n.Value)
		return
	}

	valueType := a.evalType(n.Value)
	if valueType != symtab.None && valueType != retType {
		a.errorf(n.Value, "Returned expression has type %s but %s was expected.", valueType, retType)
	}
}

// VisitBreakContinue enforces rule 24.
func (a *Analyzer) VisitBreakContinue(n *ast.BreakContinue) {
	if a.loopDepth <= 0 {
		kw := "continue"
		if n.IsBreak {
			kw = "break"
		}
		a.errorf(n, "%s used outside of a for or while loop.", kw)
	}
}

// VisitAssignment is the dispatch entry for an Assignment reached as a
// Statement; it delegates to checkAssignment which also serves the
// for-loop initializer (a synthetic Assignment that is never itself
// walked as a Statement).
func (a *Analyzer) VisitAssignment(n *ast.Assignment) { a.checkAssignment(n) }

// checkAssignment enforces rules 20, 21, and 23.
func (a *Analyzer) checkAssignment(n *ast.Assignment) {
	targetType, isConst := a.resolveAssignTarget(n.Target)

	if isConst {
		a.errorf(n, "Cannot assign to const location.")
	}

	switch n.Op {
	case token.ASSIGN:
		// Rule 20: plain assignment requires matching location and
		// expression types.
		valueType := a.evalType(n.Value)
		if targetType != symtab.None && valueType != symtab.None && targetType != valueType {
			a.errorf(n.Value, "Cannot assign %s to a location of type %s.", valueType, targetType)
		}
	case token.INC, token.DEC:
		// Rule 21: ++/-- require an int location.
		if targetType != symtab.None && targetType != symtab.Int {
			a.errorf(n, "%s requires an int location, got %s.", n.Op, targetType)
		}
	default: // PLUSEQ, MINUSEQ, STAREQ, SLASHEQ, PERCENTEQ
		// Rule 21: compound assignments require an int location and,
		// where applicable, an int RHS.
		valueType := a.evalType(n.Value)
		if targetType != symtab.None && targetType != symtab.Int {
			a.errorf(n, "%s requires an int location, got %s.", n.Op, targetType)
		}
		if valueType != symtab.None && valueType != symtab.Int {
			a.errorf(n.Value, "%s requires an int right-hand side, got %s.", n.Op, valueType)
		}
	}
}

// resolveAssignTarget types the assignment's Locatable target (an
// Identifier or an Index) and reports whether it is const (rule 23).
func (a *Analyzer) resolveAssignTarget(target ast.Locatable) (symtab.Type, bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		entry, typ := a.resolveLocation(t)
		return typ, entry.IsConst
	case *ast.Index:
		entry, _ := a.resolveLocation(t.Array)
		indexType := a.evalType(t.Index)
		if indexType != symtab.None && indexType != symtab.Int {
			a.errorf(t.Index, "Array index must have type int, got %s.", indexType)
		}
		return entry.Type.ElementType(), entry.IsConst
	default:
		return symtab.None, false
	}
}
