package ast

// Visitor is the generic tree-walking contract: one method
// per AST variant. BaseVisitor gives every method a no-op default so
// implementers override only what they need, the same visitor pattern
// the analyzer and printer passes build on.
type Visitor interface {
	VisitProgram(n *Program)
	VisitImportDecl(n *ImportDecl)
	VisitFieldDecl(n *FieldDecl)
	VisitVarDecl(n *VarDecl)
	VisitMethodDecl(n *MethodDecl)
	VisitMethodArgDecl(n *MethodArgDecl)
	VisitBlock(n *Block)
	VisitIfStmt(n *IfStmt)
	VisitForStmt(n *ForStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitBreakContinue(n *BreakContinue)
	VisitAssignment(n *Assignment)
	VisitMethodCall(n *MethodCall)
	VisitLenCall(n *LenCall)
	VisitIntCast(n *IntCast)
	VisitLongCast(n *LongCast)
	VisitUnary(n *Unary)
	VisitBinary(n *Binary)
	VisitIndex(n *Index)
	VisitArrayLit(n *ArrayLit)
	VisitIdentifier(n *Identifier)
	VisitIntConst(n *IntConst)
	VisitLongConst(n *LongConst)
	VisitBoolConst(n *BoolConst)
	VisitCharConst(n *CharConst)
	VisitStringConst(n *StringConst)
}

// BaseVisitor implements Visitor with every method a no-op. Embed it in
// a concrete visitor and override only the methods of interest.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program)               {}
func (BaseVisitor) VisitImportDecl(n *ImportDecl)         {}
func (BaseVisitor) VisitFieldDecl(n *FieldDecl)           {}
func (BaseVisitor) VisitVarDecl(n *VarDecl)               {}
func (BaseVisitor) VisitMethodDecl(n *MethodDecl)         {}
func (BaseVisitor) VisitMethodArgDecl(n *MethodArgDecl)   {}
func (BaseVisitor) VisitBlock(n *Block)                   {}
func (BaseVisitor) VisitIfStmt(n *IfStmt)                 {}
func (BaseVisitor) VisitForStmt(n *ForStmt)               {}
func (BaseVisitor) VisitWhileStmt(n *WhileStmt)           {}
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt)         {}
func (BaseVisitor) VisitBreakContinue(n *BreakContinue)   {}
func (BaseVisitor) VisitAssignment(n *Assignment)         {}
func (BaseVisitor) VisitMethodCall(n *MethodCall)         {}
func (BaseVisitor) VisitLenCall(n *LenCall)               {}
func (BaseVisitor) VisitIntCast(n *IntCast)               {}
func (BaseVisitor) VisitLongCast(n *LongCast)             {}
func (BaseVisitor) VisitUnary(n *Unary)                   {}
func (BaseVisitor) VisitBinary(n *Binary)                 {}
func (BaseVisitor) VisitIndex(n *Index)                   {}
func (BaseVisitor) VisitArrayLit(n *ArrayLit)             {}
func (BaseVisitor) VisitIdentifier(n *Identifier)         {}
func (BaseVisitor) VisitIntConst(n *IntConst)             {}
func (BaseVisitor) VisitLongConst(n *LongConst)           {}
func (BaseVisitor) VisitBoolConst(n *BoolConst)           {}
func (BaseVisitor) VisitCharConst(n *CharConst)           {}
func (BaseVisitor) VisitStringConst(n *StringConst)       {}

// Walk dispatches n to its matching Visitor method. It exists so callers
// holding a bare Node (rather than a concrete type) can still drive a
// visitor without a type switch.
func Walk(v Visitor, n Node) {
	n.Accept(v)
}
