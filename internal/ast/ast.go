// Package ast defines the shared algebraic description of all syntactic
// forms produced by the parser.
//
// decafc represents the sum type as a set of structs implementing a
// common Node interface rather than a tagged union: an interface keeps
// each variant's fields typed and lets the visitor dispatch on the
// concrete Go type instead of a hand-rolled tag switch.
package ast

import "github.com/go-decaf/decafc/pkg/token"

// Node is the base of every AST variant.
type Node interface {
	Pos() token.Position
	// Accept double-dispatches to the matching Visitor method.
	Accept(v Visitor)
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is any node that performs an action without producing a
// value of its own (though it may wrap an Expression, e.g. MethodCall
// used as a statement).
type Statement interface {
	Node
	stmtNode()
}

// Locatable is the grammar's "Location" category (spec GLOSSARY): an
// identifier or an array index, usable as an l-value.
type Locatable interface {
	Expression
	locationNode()
}

// Program is the root node: Import* Field* Method*.
type Program struct {
	TokPos  token.Position
	Imports []*ImportDecl
	Globals []*FieldDecl
	Methods []*MethodDecl
}

func (p *Program) Pos() token.Position { return p.TokPos }
func (p *Program) Accept(v Visitor)    { v.VisitProgram(p) }
