package semantic

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/symtab"
)

// VisitMethodCall enforces rules 7, 9, and 13. Rule 8 (a call used as an
// expression must return non-void) is checked by evalType, the only
// place a call's result is consumed as a value.
func (a *Analyzer) VisitMethodCall(n *ast.MethodCall) {
	entry, ok := a.table.Resolve(n.Callee.Name)
	if !ok {
		a.errorf(n.Callee, "Identifier %s is undefined.", n.Callee.Name)
		for _, arg := range n.Args {
			a.evalType(arg)
		}
		a.resultType = symtab.None
		return
	}

	if entry.Kind != symtab.MethodEntry && entry.Kind != symtab.ImportEntry {
		a.errorf(n.Callee, "Identifier %s is a %s and cannot be called.", n.Callee.Name, entry.Kind)
		for _, arg := range n.Args {
			a.evalType(arg)
		}
		a.resultType = symtab.None
		return
	}

	if entry.Kind == symtab.ImportEntry {
		// Rule 9: imports accept anything, including string literals
		// and array variables; no count/type checking applies.
		for _, arg := range n.Args {
			a.evalType(arg)
		}
		a.resultType = symtab.Int // imported calls are treated as returning a value; callers that discard it are fine as statements
		return
	}

	a.checkCallArgs(n, entry)
	a.resultType = entry.ReturnType
}

// checkCallArgs enforces rule 7 (arg count and type match the
// signature) and rule 9 (no string literals or array variables as
// arguments to a non-import method).
func (a *Analyzer) checkCallArgs(n *ast.MethodCall, method symtab.Entry) {
	if len(n.Args) != len(method.Params) {
		a.errorf(n, "Call to %s passes %d argument(s) but %d were expected.",
			n.Callee.Name, len(n.Args), len(method.Params))
	}

	for i, arg := range n.Args {
		if _, isString := arg.(*ast.StringConst); isString {
			a.errorf(arg, "String literals cannot be passed to %s.", n.Callee.Name)
			continue
		}
		if id, isIdent := arg.(*ast.Identifier); isIdent {
			if entry, ok := a.table.Resolve(id.Name); ok && entry.Kind == symtab.ArrayEntry {
				a.errorf(arg, "Array variable %s cannot be passed to %s.", id.Name, n.Callee.Name)
				continue
			}
		}

		argType := a.evalType(arg)
		if i >= len(method.Params) {
			continue
		}
		paramType := method.Params[i].Type
		if argType != symtab.None && argType != paramType {
			a.errorf(arg, "Argument %d to %s has type %s but %s was expected.",
				i+1, n.Callee.Name, argType, paramType)
		}
	}
}
