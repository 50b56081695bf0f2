package parser

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/pkg/token"
)

// parseImport implements `Import := 'import' id ';'`.
func (p *Parser) parseImport() *ast.ImportDecl {
	pos := p.cur().Pos
	p.expect(token.IMPORT)
	nameTok := p.expect(token.IDENTIFIER)
	p.expect(token.SEMI)
	return &ast.ImportDecl{
		TokPos: pos,
		Name:   &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Declare},
	}
}

// parseType implements `Type := 'int' | 'long' | 'bool'`.
func (p *Parser) parseType() string {
	t := p.cur()
	switch t.Kind {
	case token.INT, token.LONG, token.BOOL:
		p.advance()
		return t.Text
	default:
		p.fail("Expected a type (int, long, bool) but got %q", t.Text)
		panic(abortParse{})
	}
}

// parseField implements:
//
//	Field := [const] Type VarDecl (',' VarDecl)* ';'
func (p *Parser) parseField() *ast.FieldDecl {
	pos := p.cur().Pos
	isConst := p.match(token.CONST)
	typeName := p.parseType()

	field := &ast.FieldDecl{TokPos: pos, TypeName: typeName, IsConst: isConst}
	field.Vars = append(field.Vars, p.parseVarDecl(typeName, isConst))
	for p.match(token.COMMA) {
		field.Vars = append(field.Vars, p.parseVarDecl(typeName, isConst))
	}
	p.expect(token.SEMI)
	return field
}

// parseVarDecl implements:
//
//	VarDecl := id (['[' [IntLit] ']']) ['=' Initializer]
func (p *Parser) parseVarDecl(typeName string, isConst bool) *ast.VarDecl {
	nameTok := p.expect(token.IDENTIFIER)
	decl := &ast.VarDecl{
		TokPos:   nameTok.Pos,
		Name:     &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Declare},
		TypeName: typeName,
		IsConst:  isConst,
	}

	if p.match(token.LBRACKET) {
		decl.IsArray = true
		if !p.check(token.RBRACKET) {
			decl.ArrayLen = p.parseIntLiteral()
		}
		p.expect(token.RBRACKET)
	}

	if p.match(token.ASSIGN) {
		decl.Initializer = p.parseInitializer()
	}

	return decl
}

// parseIntLiteral parses a bare (unsigned, in this grammar position)
// integer literal token into an IntConst.
func (p *Parser) parseIntLiteral() *ast.IntConst {
	t := p.expect(token.INTLITERAL)
	return &ast.IntConst{TokPos: t.Pos, Text: t.Text}
}

// parseInitializer implements `Initializer := Literal | '{' Literal (',' Literal)* '}'`.
func (p *Parser) parseInitializer() ast.Expression {
	if p.match(token.LBRACE) {
		lit := &ast.ArrayLit{TokPos: p.cur().Pos}
		lit.Elements = append(lit.Elements, p.parseLiteral())
		for p.match(token.COMMA) {
			lit.Elements = append(lit.Elements, p.parseLiteral())
		}
		p.expect(token.RBRACE)
		return lit
	}
	return p.parseLiteral()
}

// parseLiteral implements `Literal := [-]IntLit | [-]LongLit | CharLit | BoolLit`.
// A unary minus directly applied to an int/long literal is absorbed into
// the literal node ("Constants") rather than kept as a Unary.
func (p *Parser) parseLiteral() ast.Expression {
	isNeg := p.match(token.MINUS)
	t := p.cur()
	switch t.Kind {
	case token.INTLITERAL:
		p.advance()
		return &ast.IntConst{TokPos: t.Pos, IsNeg: isNeg, Text: t.Text}
	case token.LONGLITERAL:
		p.advance()
		return &ast.LongConst{TokPos: t.Pos, IsNeg: isNeg, Text: t.Text}
	case token.CHARLITERAL:
		if isNeg {
			p.fail("unary '-' cannot apply to a character literal")
			panic(abortParse{})
		}
		return p.parseCharLiteral()
	case token.BOOLEANLITERAL:
		if isNeg {
			p.fail("unary '-' cannot apply to a boolean literal")
			panic(abortParse{})
		}
		p.advance()
		return &ast.BoolConst{TokPos: t.Pos, Value: t.Text == "true"}
	default:
		p.fail("Expected a literal but got %q", t.Text)
		panic(abortParse{})
	}
}

func (p *Parser) parseCharLiteral() *ast.CharConst {
	t := p.expect(token.CHARLITERAL)
	value, _ := decodeCharLiteral(t.Text)
	return &ast.CharConst{TokPos: t.Pos, Value: value, Raw: t.Text}
}

// parseMethod implements:
//
//	Method := (Type | 'void') id '(' [Param (',' Param)*] ')' Block
func (p *Parser) parseMethod() *ast.MethodDecl {
	pos := p.cur().Pos
	var retType string
	if p.check(token.VOID) {
		retType = p.advance().Text
	} else {
		retType = p.parseType()
	}

	nameTok := p.expect(token.IDENTIFIER)
	method := &ast.MethodDecl{
		TokPos:     pos,
		ReturnType: retType,
		Name:       &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Declare},
	}

	p.expect(token.LPAREN)
	if !p.check(token.RPAREN) {
		method.Params = append(method.Params, p.parseParam())
		for p.match(token.COMMA) {
			method.Params = append(method.Params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)

	method.Body = p.parseBlock()
	return method
}

// parseParam implements `Param := Type id`.
func (p *Parser) parseParam() *ast.MethodArgDecl {
	typeName := p.parseType()
	nameTok := p.expect(token.IDENTIFIER)
	return &ast.MethodArgDecl{
		TokPos:   nameTok.Pos,
		TypeName: typeName,
		Name:     &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Declare},
	}
}
