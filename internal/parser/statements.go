package parser

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/pkg/token"
)

// parseBlock implements `Block := '{' Field* Stmt* '}'`.
func (p *Parser) parseBlock() *ast.Block {
	pos := p.expect(token.LBRACE).Pos
	block := &ast.Block{TokPos: pos}

	for p.isFieldStart() {
		block.Fields = append(block.Fields, p.parseField())
	}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		block.Stmts = append(block.Stmts, p.parseStmt())
	}
	p.expect(token.RBRACE)
	return block
}

// parseStmt implements the Stmt production.
func (p *Parser) parseStmt() ast.Statement {
	switch p.cur().Kind {
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		pos := p.advance().Pos
		p.expect(token.SEMI)
		return &ast.BreakContinue{TokPos: pos, IsBreak: true}
	case token.CONTINUE:
		pos := p.advance().Pos
		p.expect(token.SEMI)
		return &ast.BreakContinue{TokPos: pos, IsBreak: false}
	case token.IDENTIFIER:
		stmt := p.parseCallOrAssignment()
		p.expect(token.SEMI)
		return stmt
	default:
		p.fail("Expected a statement but got %q", p.cur().Text)
		panic(abortParse{})
	}
}

// parseCallOrAssignment resolves the MethodCall/Location ambiguity with
// one token of lookahead: an identifier followed by '(' is a call;
// otherwise it is a Location (optionally indexed) followed by an
// AssignOp ("Resolving the ambiguity").
func (p *Parser) parseCallOrAssignment() ast.Statement {
	nameTok := p.expect(token.IDENTIFIER)

	if p.check(token.LPAREN) {
		return p.parseCallTail(nameTok)
	}

	target := p.parseLocationTail(nameTok, ast.Write)
	return p.parseAssignOp(target)
}

// parseCallTail parses the `'(' [CallArg (',' CallArg)*] ')'` suffix of
// a call whose callee identifier has already been consumed.
func (p *Parser) parseCallTail(nameTok token.Token) *ast.MethodCall {
	call := &ast.MethodCall{
		TokPos: nameTok.Pos,
		Callee: &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Read},
	}
	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		call.Args = append(call.Args, p.parseCallArg())
		for p.match(token.COMMA) {
			call.Args = append(call.Args, p.parseCallArg())
		}
	}
	p.expect(token.RPAREN)
	return call
}

// parseCallArg implements `CallArg := StringLit | Expr`.
func (p *Parser) parseCallArg() ast.Expression {
	if p.check(token.STRINGLITERAL) {
		t := p.advance()
		return &ast.StringConst{TokPos: t.Pos, Value: decodeStringLiteral(t.Text), Raw: t.Text}
	}
	return p.parseExpr()
}

// parseLocationTail builds the Locatable for an identifier already
// consumed, optionally indexed, tagging it with status.
func (p *Parser) parseLocationTail(nameTok token.Token, status ast.IdentStatus) ast.Locatable {
	if p.match(token.LBRACKET) {
		arrIdent := &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Read}
		idxExpr := p.parseExpr()
		p.expect(token.RBRACKET)
		return &ast.Index{TokPos: nameTok.Pos, Array: arrIdent, Index: idxExpr}
	}
	return &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: status}
}

// parseAssignOp implements `AssignOp := ('=' | '+=' | '-=' | '*=' | '/=' | '%=') Expr | '++' | '--'`.
func (p *Parser) parseAssignOp(target ast.Locatable) *ast.Assignment {
	pos := p.cur().Pos
	switch p.cur().Kind {
	case token.INC, token.DEC:
		op := p.advance().Kind
		return &ast.Assignment{TokPos: pos, Target: target, Op: op}
	case token.ASSIGN, token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.PERCENTEQ:
		op := p.advance().Kind
		value := p.parseExpr()
		return &ast.Assignment{TokPos: pos, Target: target, Op: op, Value: value}
	default:
		p.fail("Expected an assignment operator but got %q", p.cur().Text)
		panic(abortParse{})
	}
}

// parseIf implements `If := 'if' '(' Expr ')' Block ['else' Block]`.
func (p *Parser) parseIf() *ast.IfStmt {
	pos := p.expect(token.IF).Pos
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseBlock()
	stmt := &ast.IfStmt{TokPos: pos, Cond: cond, Then: then}
	if p.match(token.ELSE) {
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// parseWhile implements `While := 'while' '(' Expr ')' Block`.
func (p *Parser) parseWhile() *ast.WhileStmt {
	pos := p.expect(token.WHILE).Pos
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseBlock()
	return &ast.WhileStmt{TokPos: pos, Cond: cond, Body: body}
}

// parseFor implements:
//
//	For := 'for' '(' id '=' Expr ';' Expr ';' (MethodCall | Location AssignOp) ')' Block
func (p *Parser) parseFor() *ast.ForStmt {
	pos := p.expect(token.FOR).Pos
	p.expect(token.LPAREN)

	initTok := p.expect(token.IDENTIFIER)
	initPos := p.expect(token.ASSIGN).Pos
	initExpr := p.parseExpr()
	init := &ast.Assignment{
		TokPos: initPos,
		Target: &ast.Identifier{TokPos: initTok.Pos, Name: initTok.Text, Status: ast.Write},
		Op:     token.ASSIGN,
		Value:  initExpr,
	}
	p.expect(token.SEMI)

	cond := p.parseExpr()
	p.expect(token.SEMI)

	update := p.parseForUpdate()
	p.expect(token.RPAREN)
	body := p.parseBlock()

	return &ast.ForStmt{TokPos: pos, Init: init, Cond: cond, Update: update, Body: body}
}

// parseForUpdate implements the for-header's `MethodCall | Location AssignOp`
// slot, without a trailing ';' (grammar).
func (p *Parser) parseForUpdate() ast.Statement {
	nameTok := p.expect(token.IDENTIFIER)
	if p.check(token.LPAREN) {
		return p.parseCallTail(nameTok)
	}
	target := p.parseLocationTail(nameTok, ast.Write)
	return p.parseAssignOp(target)
}

// parseReturn implements `Return := 'return' [Expr] ';'`.
func (p *Parser) parseReturn() *ast.ReturnStmt {
	pos := p.expect(token.RETURN).Pos
	stmt := &ast.ReturnStmt{TokPos: pos}
	if !p.check(token.SEMI) {
		stmt.Value = p.parseExpr()
	}
	p.expect(token.SEMI)
	return stmt
}
