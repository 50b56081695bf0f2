package ast

import "github.com/go-decaf/decafc/pkg/token"

// ImportDecl is `import id ;`.
type ImportDecl struct {
	TokPos token.Position
	Name   *Identifier // status Declare
}

func (i *ImportDecl) Pos() token.Position { return i.TokPos }
func (i *ImportDecl) Accept(v Visitor)    { v.VisitImportDecl(i) }

// VarDecl is one binding within a Field declaration:
// `id ([ '[' [IntLit] ']' ]) [ '=' Initializer ]`.
//
// If IsArray, exactly one of ArrayLen or Initializer may be set (rule
// 5); IntCast/LongCast-style scalar casts do not apply here.
type VarDecl struct {
	TokPos      token.Position
	Name        *Identifier // status Declare
	TypeName    string      // "int", "long", "bool" — copied down from the enclosing FieldDecl
	IsConst     bool
	IsArray     bool
	ArrayLen    *IntConst // non-nil when the declaration gave an explicit length
	Initializer Expression
}

func (d *VarDecl) Pos() token.Position { return d.TokPos }
func (d *VarDecl) Accept(v Visitor)    { v.VisitVarDecl(d) }

// FieldDecl is `[const] Type VarDecl (',' VarDecl)* ';'`.
type FieldDecl struct {
	TokPos   token.Position
	TypeName string // "int", "long", "bool"
	IsConst  bool
	Vars     []*VarDecl
}

func (f *FieldDecl) Pos() token.Position { return f.TokPos }
func (f *FieldDecl) Accept(v Visitor)    { v.VisitFieldDecl(f) }
func (f *FieldDecl) stmtNode()           {} // Field* may appear at the head of a Block

// MethodArgDecl is one formal parameter: `Type id`.
type MethodArgDecl struct {
	TokPos   token.Position
	TypeName string
	Name     *Identifier // status Declare
}

func (a *MethodArgDecl) Pos() token.Position { return a.TokPos }
func (a *MethodArgDecl) Accept(v Visitor)    { v.VisitMethodArgDecl(a) }

// MethodDecl is `(Type | 'void') id '(' [Param (',' Param)*] ')' Block`.
type MethodDecl struct {
	TokPos     token.Position
	ReturnType string // "int", "long", "bool", or "void"
	Name       *Identifier // status Declare
	Params     []*MethodArgDecl
	Body       *Block
}

func (m *MethodDecl) Pos() token.Position { return m.TokPos }
func (m *MethodDecl) Accept(v Visitor)    { v.VisitMethodDecl(m) }

// Block is `'{' Field* Stmt* '}'`.
type Block struct {
	TokPos token.Position
	Fields []*FieldDecl
	Stmts  []Statement
}

func (b *Block) Pos() token.Position { return b.TokPos }
func (b *Block) Accept(v Visitor)    { v.VisitBlock(b) }
