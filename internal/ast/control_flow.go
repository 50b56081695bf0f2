package ast

import "github.com/go-decaf/decafc/pkg/token"

// IfStmt is `if '(' Expr ')' Block ['else' Block]`.
type IfStmt struct {
	TokPos token.Position
	Cond   Expression
	Then   *Block
	Else   *Block // nil when no else clause
}

func (s *IfStmt) Pos() token.Position { return s.TokPos }
func (s *IfStmt) Accept(v Visitor)    { v.VisitIfStmt(s) }
func (s *IfStmt) stmtNode()           {}

// ForStmt is `for '(' id '=' Expr ';' Expr ';' (MethodCall | Location AssignOp) ')' Block`.
type ForStmt struct {
	TokPos token.Position
	Init   *Assignment // induction variable initializer; Target.Status == Write
	Cond   Expression
	Update Statement // *Assignment or *MethodCall
	Body   *Block
}

func (s *ForStmt) Pos() token.Position { return s.TokPos }
func (s *ForStmt) Accept(v Visitor)    { v.VisitForStmt(s) }
func (s *ForStmt) stmtNode()           {}

// WhileStmt is `while '(' Expr ')' Block`.
type WhileStmt struct {
	TokPos token.Position
	Cond   Expression
	Body   *Block
}

func (s *WhileStmt) Pos() token.Position { return s.TokPos }
func (s *WhileStmt) Accept(v Visitor)    { v.VisitWhileStmt(s) }
func (s *WhileStmt) stmtNode()           {}

// ReturnStmt is `return [Expr] ';'`.
type ReturnStmt struct {
	TokPos token.Position
	Value  Expression // nil for a bare `return;`
}

func (s *ReturnStmt) Pos() token.Position { return s.TokPos }
func (s *ReturnStmt) Accept(v Visitor)    { v.VisitReturnStmt(s) }
func (s *ReturnStmt) stmtNode()           {}

// BreakContinue is `break ';'` or `continue ';'`.
type BreakContinue struct {
	TokPos  token.Position
	IsBreak bool // false means `continue`
}

func (s *BreakContinue) Pos() token.Position { return s.TokPos }
func (s *BreakContinue) Accept(v Visitor)    { v.VisitBreakContinue(s) }
func (s *BreakContinue) stmtNode()           {}

// Assignment is `Location AssignOp`: plain `=`, a compound `+= -= *= /=
// %=`, or a bare `++`/`--` (Value is nil in the latter case).
type Assignment struct {
	TokPos token.Position
	Target Locatable
	Op     token.Kind // ASSIGN, PLUSEQ, MINUSEQ, STAREQ, SLASHEQ, PERCENTEQ, INC, DEC
	Value  Expression // nil when Op is INC or DEC
}

func (a *Assignment) Pos() token.Position { return a.TokPos }
func (a *Assignment) Accept(v Visitor)    { v.VisitAssignment(a) }
func (a *Assignment) stmtNode()           {}
