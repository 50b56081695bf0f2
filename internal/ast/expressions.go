package ast

import "github.com/go-decaf/decafc/pkg/token"

// Unary is a prefix `-`/`!` expression.
type Unary struct {
	TokPos  token.Position
	Op      token.Kind // MINUS or BANG
	Operand Expression
}

func (u *Unary) Pos() token.Position { return u.TokPos }
func (u *Unary) Accept(v Visitor)    { v.VisitUnary(u) }
func (u *Unary) exprNode()           {}

// Binary is an infix arithmetic, relational, equality, or logical
// expression.
type Binary struct {
	TokPos token.Position
	Op     token.Kind
	Left   Expression
	Right  Expression
}

func (b *Binary) Pos() token.Position { return b.TokPos }
func (b *Binary) Accept(v Visitor)    { v.VisitBinary(b) }
func (b *Binary) exprNode()           {}

// Index is an array-index location/expression: `id '[' Expr ']'`.
type Index struct {
	TokPos token.Position
	Array  *Identifier
	Index  Expression
}

func (x *Index) Pos() token.Position { return x.TokPos }
func (x *Index) Accept(v Visitor)    { v.VisitIndex(x) }
func (x *Index) exprNode()           {}
func (x *Index) locationNode()       {}

// LenCall is the builtin `len(id)` expression (Primary).
type LenCall struct {
	TokPos token.Position
	Target *Identifier
}

func (l *LenCall) Pos() token.Position { return l.TokPos }
func (l *LenCall) Accept(v Visitor)    { v.VisitLenCall(l) }
func (l *LenCall) exprNode()           {}

// IntCast is the builtin `int(id)` conversion expression.
type IntCast struct {
	TokPos token.Position
	Target *Identifier
}

func (c *IntCast) Pos() token.Position { return c.TokPos }
func (c *IntCast) Accept(v Visitor)    { v.VisitIntCast(c) }
func (c *IntCast) exprNode()           {}

// LongCast is the builtin `long(id)` conversion expression.
type LongCast struct {
	TokPos token.Position
	Target *Identifier
}

func (c *LongCast) Pos() token.Position { return c.TokPos }
func (c *LongCast) Accept(v Visitor)    { v.VisitLongCast(c) }
func (c *LongCast) exprNode()           {}

// MethodCall is a call `id(args...)`. It implements both Expression (a
// call used where a value is expected, rule 8) and Statement (a bare
// call statement), matching its grammar which allows MethodCall
// in both positions.
type MethodCall struct {
	TokPos token.Position
	Callee *Identifier
	Args   []Expression
}

func (m *MethodCall) Pos() token.Position { return m.TokPos }
func (m *MethodCall) Accept(v Visitor)    { v.VisitMethodCall(m) }
func (m *MethodCall) exprNode()           {}
func (m *MethodCall) stmtNode()           {}
