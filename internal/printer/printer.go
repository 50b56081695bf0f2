// Package printer implements a pretty-printer visitor that reproduces
// source faithfully modulo whitespace, using the common
// printer.New(...).Print(node) shape even though this printer, unlike
// a multi-format/multi-style one, only ever needs a single textual form.
package printer

import (
	"fmt"
	"strings"

	"github.com/go-decaf/decafc/internal/ast"
)

// Options configures a Printer. IndentWidth is the only knob // names (block indentation); it defaults to four spaces via New.
type Options struct {
	IndentWidth int
}

// Printer walks an AST with the standard visitor and renders source
// text into an internal buffer ("The analyzer and both IR
// builders are visitors" — so is the printer).
type Printer struct {
	ast.BaseVisitor

	opts   Options
	buf    strings.Builder
	indent int
}

// New constructs a Printer. A zero Options value gets a four-space
// indent.
func New(opts Options) *Printer {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	return &Printer{opts: opts}
}

// Print renders n to source text.
func (p *Printer) Print(n ast.Node) string {
	p.buf.Reset()
	p.indent = 0
	n.Accept(p)
	return p.buf.String()
}

func (p *Printer) write(s string) { p.buf.WriteString(s) }

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat(" ", p.indent*p.opts.IndentWidth))
}

func (p *Printer) writeLine(s string) {
	p.writeIndent()
	p.write(s)
	p.write("\n")
}

// VisitProgram renders imports, a blank line, globals, then a blank
// line before each method.
func (p *Printer) VisitProgram(n *ast.Program) {
	for _, imp := range n.Imports {
		imp.Accept(p)
	}
	if len(n.Imports) > 0 {
		p.write("\n")
	}

	for _, field := range n.Globals {
		field.Accept(p)
	}
	if len(n.Globals) > 0 {
		p.write("\n")
	}

	for i, m := range n.Methods {
		if i > 0 {
			p.write("\n")
		}
		m.Accept(p)
	}
}

func (p *Printer) VisitImportDecl(n *ast.ImportDecl) {
	p.writeLine(fmt.Sprintf("import %s;", n.Name.Name))
}

// VisitFieldDecl renders `[const] Type v1, v2, ...;`.
func (p *Printer) VisitFieldDecl(n *ast.FieldDecl) {
	p.writeIndent()
	if n.IsConst {
		p.write("const ")
	}
	p.write(n.TypeName)
	p.write(" ")
	for i, v := range n.Vars {
		if i > 0 {
			p.write(", ")
		}
		p.write(p.varDeclString(v))
	}
	p.write(";\n")
}

func (p *Printer) varDeclString(v *ast.VarDecl) string {
	var b strings.Builder
	b.WriteString(v.Name.Name)
	if v.IsArray {
		b.WriteString("[")
		if v.ArrayLen != nil {
			b.WriteString(v.ArrayLen.Text)
		}
		b.WriteString("]")
	}
	if v.Initializer != nil {
		b.WriteString(" = ")
		b.WriteString(p.exprString(v.Initializer))
	}
	return b.String()
}

// VisitVarDecl is only reachable if a caller walks a *VarDecl directly;
// VisitFieldDecl renders its Vars inline via varDeclString instead, to
// keep the comma-joined `Type v1, v2;` shape names.
func (p *Printer) VisitVarDecl(n *ast.VarDecl) {
	p.write(p.varDeclString(n))
}

func (p *Printer) VisitMethodDecl(n *ast.MethodDecl) {
	p.writeIndent()
	p.write(n.ReturnType)
	p.write(" ")
	p.write(n.Name.Name)
	p.write("(")
	for i, param := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.TypeName)
		p.write(" ")
		p.write(param.Name.Name)
	}
	p.write(") ")
	n.Body.Accept(p)
	p.write("\n")
}

func (p *Printer) VisitMethodArgDecl(n *ast.MethodArgDecl) {
	p.write(n.TypeName)
	p.write(" ")
	p.write(n.Name.Name)
}

func (p *Printer) VisitBlock(n *ast.Block) {
	p.write("{\n")
	p.indent++
	for _, f := range n.Fields {
		f.Accept(p)
	}
	for _, s := range n.Stmts {
		p.printStmt(s)
	}
	p.indent--
	p.writeIndent()
	p.write("}\n")
}

// printStmt renders one statement, terminating it with `;` except for a
// for-loop Update assignment, which the ForStmt case itself terminates
// ("for-update assignments do not terminate with ;").
func (p *Printer) printStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.FieldDecl:
		n.Accept(p)
	case *ast.IfStmt, *ast.ForStmt, *ast.WhileStmt:
		p.writeIndent()
		s.Accept(p)
	default:
		p.writeIndent()
		p.write(p.inlineStmtString(s))
		p.write(";\n")
	}
}

// inlineStmtString renders a statement that terminates with a bare `;`
// (Return, BreakContinue, Assignment, bare MethodCall).
func (p *Printer) inlineStmtString(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.ReturnStmt:
		if n.Value == nil {
			return "return"
		}
		return "return " + p.exprString(n.Value)
	case *ast.BreakContinue:
		if n.IsBreak {
			return "break"
		}
		return "continue"
	case *ast.Assignment:
		return p.assignmentString(n)
	case *ast.MethodCall:
		return p.exprString(n)
	default:
		return ""
	}
}

func (p *Printer) assignmentString(n *ast.Assignment) string {
	target := p.exprString(n.Target)
	switch n.Op.String() {
	case "++", "--":
		return target + n.Op.String()
	default:
		return fmt.Sprintf("%s %s %s", target, n.Op, p.exprString(n.Value))
	}
}

func (p *Printer) VisitIfStmt(n *ast.IfStmt) {
	p.write("if (")
	p.write(p.exprString(n.Cond))
	p.write(") ")
	thenStr := strings.TrimSuffix(p.blockString(n.Then), "\n")
	p.write(thenStr)
	if n.Else != nil {
		p.write(" else ")
		p.write(p.blockString(n.Else))
	} else {
		p.write("\n")
	}
}

// blockString renders b at the current indent level into a scratch
// buffer, used by VisitIfStmt to splice "} else {" onto one line.
func (p *Printer) blockString(b *ast.Block) string {
	scratch := New(p.opts)
	scratch.indent = p.indent
	b.Accept(scratch)
	return scratch.buf.String()
}

func (p *Printer) VisitWhileStmt(n *ast.WhileStmt) {
	p.write("while (")
	p.write(p.exprString(n.Cond))
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) VisitForStmt(n *ast.ForStmt) {
	p.write("for (")
	p.write(p.assignmentString(n.Init))
	p.write("; ")
	p.write(p.exprString(n.Cond))
	p.write("; ")
	p.write(p.updateString(n.Update))
	p.write(") ")
	n.Body.Accept(p)
}

func (p *Printer) updateString(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.Assignment:
		return p.assignmentString(n)
	case *ast.MethodCall:
		return p.exprString(n)
	default:
		return ""
	}
}

// exprString renders an Expression using a scratch Printer so VisitBinary
// et al. can return a string to their caller in one expression instead
// of plumbing the shared buffer through every recursive call.
func (p *Printer) exprString(e ast.Expression) string {
	scratch := New(p.opts)
	e.Accept(scratch)
	return scratch.buf.String()
}

func (p *Printer) VisitAssignment(n *ast.Assignment) { p.write(p.assignmentString(n)) }

func (p *Printer) VisitMethodCall(n *ast.MethodCall) {
	p.write(n.Callee.Name)
	p.write("(")
	for i, arg := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		p.write(p.exprString(arg))
	}
	p.write(")")
}

func (p *Printer) VisitLenCall(n *ast.LenCall) {
	p.write("len(")
	p.write(n.Target.Name)
	p.write(")")
}

func (p *Printer) VisitIntCast(n *ast.IntCast) {
	p.write("int(")
	p.write(n.Target.Name)
	p.write(")")
}

func (p *Printer) VisitLongCast(n *ast.LongCast) {
	p.write("long(")
	p.write(n.Target.Name)
	p.write(")")
}

func (p *Printer) VisitUnary(n *ast.Unary) {
	p.write(n.Op.String())
	p.write(p.exprString(n.Operand))
}

func (p *Printer) VisitBinary(n *ast.Binary) {
	p.write(p.exprString(n.Left))
	p.write(" ")
	p.write(n.Op.String())
	p.write(" ")
	p.write(p.exprString(n.Right))
}

func (p *Printer) VisitIndex(n *ast.Index) {
	p.write(n.Array.Name)
	p.write("[")
	p.write(p.exprString(n.Index))
	p.write("]")
}

func (p *Printer) VisitArrayLit(n *ast.ArrayLit) {
	p.write("{")
	for i, e := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		p.write(p.exprString(e))
	}
	p.write("}")
}

func (p *Printer) VisitIdentifier(n *ast.Identifier) { p.write(n.Name) }

func (p *Printer) VisitIntConst(n *ast.IntConst) {
	if n.IsNeg {
		p.write("-")
	}
	p.write(n.Text)
}

func (p *Printer) VisitLongConst(n *ast.LongConst) {
	if n.IsNeg {
		p.write("-")
	}
	p.write(n.Text)
}

func (p *Printer) VisitBoolConst(n *ast.BoolConst) {
	p.write(fmt.Sprintf("%v", n.Value))
}

func (p *Printer) VisitCharConst(n *ast.CharConst) { p.write(n.Raw) }

func (p *Printer) VisitStringConst(n *ast.StringConst) { p.write(n.Raw) }
