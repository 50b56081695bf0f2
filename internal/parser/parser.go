// Package parser implements a recursive-descent parser: an LL(1)
// grammar with one token of lookahead, plus a two-token lookahead used
// only to distinguish a field declaration from a method declaration.
package parser

import (
	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/errors"
	"github.com/go-decaf/decafc/pkg/token"
)

// Parser consumes a token stream and produces a Program. On the first
// unrecoverable mismatch it aborts the parse of the current file and
// returns the errors collected so far — it does not
// attempt error-recovery synchronization.
type Parser struct {
	tokens []token.Token
	pos    int
	errs   *errors.List
}

// New constructs a Parser over tokens (which must end with a single EOF
// sentinel, as produced by lexer.ScanAll). source and file feed the
// error list's formatting context.
func New(tokens []token.Token, source, file string) *Parser {
	return &Parser{
		tokens: tokens,
		errs:   errors.NewList(errors.Parse, source, file),
	}
}

// abortParse is the sentinel panicked on the first structural mismatch;
// Parse() recovers it. This is the same abort-on-first-error technique
// Go's own standard library parser (go/parser) uses for hand-written
// recursive descent, rather than threading an error return through
// every grammar production.
type abortParse struct{}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, otherwise records a
// "Line: <n> - Expected ...: ..." diagnostic and aborts the
// parse.
func (p *Parser) expect(kind token.Kind) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail("Expected %s but got %s (%q)", kind, p.cur().Kind, p.cur().Text)
	panic(abortParse{})
}

func (p *Parser) fail(format string, args ...any) {
	p.errs.Add(p.cur().Pos, format, args...)
}

// save/restore let isFieldStart and isMethodStart look past
// `[const] Type id` and rewind. Location vs MethodCall needs no rewind:
// the token after the identifier is checked for '(' before anything more
// is consumed.
func (p *Parser) save() int       { return p.pos }
func (p *Parser) restore(mark int) { p.pos = mark }

// Parse runs the parser to completion, returning the Program and any
// diagnostics collected. A non-empty error list always means the parse
// was aborted and the returned Program is nil.
func (p *Parser) Parse() (prog *ast.Program, errs *errors.List) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortParse); ok {
				errs = p.errs
				return
			}
			panic(r)
		}
	}()

	prog = p.parseProgram()
	return prog, p.errs
}

// parseProgram implements `Program := Import* Field* Method* EOF`.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{TokPos: p.cur().Pos}

	for p.check(token.IMPORT) {
		prog.Imports = append(prog.Imports, p.parseImport())
	}
	for p.isFieldStart() {
		prog.Globals = append(prog.Globals, p.parseField())
	}
	for p.isMethodStart() {
		prog.Methods = append(prog.Methods, p.parseMethod())
	}
	p.expect(token.EOF)
	return prog
}

// isTypeStart reports whether the current token begins a Type.
func (p *Parser) isTypeStart() bool {
	switch p.cur().Kind {
	case token.INT, token.LONG, token.BOOL:
		return true
	default:
		return false
	}
}

// isFieldStart disambiguates a Field from a Method using the two-token
// lookahead rule: after `[const] Type id`, a following `(`
// means it was actually a method declaration.
func (p *Parser) isFieldStart() bool {
	mark := p.save()
	defer p.restore(mark)

	if p.check(token.CONST) {
		p.advance()
	}
	if !p.isTypeStart() {
		return false
	}
	p.advance() // Type
	if !p.check(token.IDENTIFIER) {
		return false
	}
	p.advance() // id
	return !p.check(token.LPAREN)
}

func (p *Parser) isMethodStart() bool {
	if p.check(token.VOID) {
		return true
	}
	mark := p.save()
	defer p.restore(mark)
	if !p.isTypeStart() {
		return false
	}
	p.advance()
	if !p.check(token.IDENTIFIER) {
		return false
	}
	p.advance()
	return p.check(token.LPAREN)
}
