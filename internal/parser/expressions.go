package parser

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/pkg/token"
)

// parseExpr is the entry point for the full precedence chain, low to
// high: || , && , == != , < <= > >= , + - , * / % , prefix - ! , primary.
func (p *Parser) parseExpr() ast.Expression {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.check(token.OR) {
		pos := p.advance().Pos
		right := p.parseAnd()
		left = &ast.Binary{TokPos: pos, Op: token.OR, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseEquality()
	for p.check(token.AND) {
		pos := p.advance().Pos
		right := p.parseEquality()
		left = &ast.Binary{TokPos: pos, Op: token.AND, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for p.check(token.EQ) || p.check(token.NEQ) {
		op := p.advance()
		right := p.parseRelational()
		left = &ast.Binary{TokPos: op.Pos, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	for p.check(token.LT) || p.check(token.LEQ) || p.check(token.GT) || p.check(token.GEQ) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{TokPos: op.Pos, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{TokPos: op.Pos, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{TokPos: op.Pos, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// parseUnary implements prefix `- !`. A `-` applied directly to an
// int/long literal token is absorbed into the literal node rather than
// producing a Unary wrapper ("Constants"), so that rule 25's
// range check sees the combined magnitude.
func (p *Parser) parseUnary() ast.Expression {
	if p.check(token.MINUS) {
		pos := p.cur().Pos
		if p.peekAt(1).Kind == token.INTLITERAL {
			p.advance()
			t := p.advance()
			return &ast.IntConst{TokPos: pos, IsNeg: true, Text: t.Text}
		}
		if p.peekAt(1).Kind == token.LONGLITERAL {
			p.advance()
			t := p.advance()
			return &ast.LongConst{TokPos: pos, IsNeg: true, Text: t.Text}
		}
		p.advance()
		operand := p.parseUnary()
		return &ast.Unary{TokPos: pos, Op: token.MINUS, Operand: operand}
	}
	if p.check(token.BANG) {
		pos := p.advance().Pos
		operand := p.parseUnary()
		return &ast.Unary{TokPos: pos, Op: token.BANG, Operand: operand}
	}
	return p.parsePrimary()
}

// parsePrimary implements:
//
//	Primary := IntLit | LongLit | CharLit | BoolLit | 'len(' id ')'
//	         | 'int(' id ')' | 'long(' id ')' | '(' Expr ')'
//	         | Location | MethodCall
func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.INTLITERAL:
		p.advance()
		return &ast.IntConst{TokPos: t.Pos, Text: t.Text}
	case token.LONGLITERAL:
		p.advance()
		return &ast.LongConst{TokPos: t.Pos, Text: t.Text}
	case token.CHARLITERAL:
		return p.parseCharLiteral()
	case token.BOOLEANLITERAL:
		p.advance()
		return &ast.BoolConst{TokPos: t.Pos, Value: t.Text == "true"}
	case token.STRINGLITERAL:
		// Only legal as a CallArg in this grammar, but accepting it here
		// lets the analyzer give rule 9's dedicated diagnostic instead
		// of a generic parse error when a string is misused as an
		// operand.
		p.advance()
		return &ast.StringConst{TokPos: t.Pos, Value: decodeStringLiteral(t.Text), Raw: t.Text}
	case token.LEN:
		return p.parseBuiltinUnaryCall(func(pos token.Position, target *ast.Identifier) ast.Expression {
			return &ast.LenCall{TokPos: pos, Target: target}
		})
	case token.INT:
		return p.parseBuiltinUnaryCall(func(pos token.Position, target *ast.Identifier) ast.Expression {
			return &ast.IntCast{TokPos: pos, Target: target}
		})
	case token.LONG:
		return p.parseBuiltinUnaryCall(func(pos token.Position, target *ast.Identifier) ast.Expression {
			return &ast.LongCast{TokPos: pos, Target: target}
		})
	case token.LPAREN:
		p.advance()
		expr := p.parseExpr()
		p.expect(token.RPAREN)
		return expr
	case token.IDENTIFIER:
		nameTok := p.advance()
		if p.check(token.LPAREN) {
			return p.parseCallTail(nameTok)
		}
		loc := p.parseLocationTail(nameTok, ast.Read)
		return loc
	default:
		p.fail("Expected an expression but got %q", t.Text)
		panic(abortParse{})
	}
}

// parseBuiltinUnaryCall implements the shared `'kw(' id ')'` shape of
// len/int/long (Primary).
func (p *Parser) parseBuiltinUnaryCall(build func(token.Position, *ast.Identifier) ast.Expression) ast.Expression {
	pos := p.advance().Pos
	p.expect(token.LPAREN)
	nameTok := p.expect(token.IDENTIFIER)
	p.expect(token.RPAREN)
	target := &ast.Identifier{TokPos: nameTok.Pos, Name: nameTok.Text, Status: ast.Read}
	return build(pos, target)
}
