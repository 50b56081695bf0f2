package tac

import (
	"fmt"

	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/cfg"
)

// VarEntry is one row of the flat variable-entry table // describes. Name is empty for a compiler-generated temporary.
type VarEntry struct {
	Name string
}

// Program is the linearized output for a whole compilation unit: a
// global instruction list for field initializers, plus one instruction
// list per method.
type Program struct {
	Vars    []VarEntry
	Global  []Instruction
	Methods map[string][]Instruction
}

// Build lowers prog's globals and every method's CFG to three-address
// code. graphs must come from cfg.Build(prog).
func Build(prog *ast.Program, graphs cfg.ProgramGraph) *Program {
	p := &Program{Methods: make(map[string][]Instruction)}
	b := &builder{prog: p, slots: make(map[string]Slot)}

	for _, field := range prog.Globals {
		b.lowerFieldDecl(field, &p.Global)
	}

	for _, m := range prog.Methods {
		g, ok := graphs[m.Name.Name]
		if !ok {
			continue
		}
		b.slots = make(map[string]Slot) // each method gets its own slot namespace
		var out []Instruction
		b.lowerGraph(g, &out)
		p.Methods[m.Name.Name] = out
	}

	return p
}

type builder struct {
	prog  *Program
	slots map[string]Slot
}

// slotFor returns the stable slot for a named variable, allocating a
// table entry on first use.
func (b *builder) slotFor(name string) Slot {
	if s, ok := b.slots[name]; ok {
		return s
	}
	s := Slot(len(b.prog.Vars))
	b.prog.Vars = append(b.prog.Vars, VarEntry{Name: name})
	b.slots[name] = s
	return s
}

// temp allocates a fresh, unnamed slot to hold one subexpression's
// post-order result.
func (b *builder) temp() Slot {
	s := Slot(len(b.prog.Vars))
	b.prog.Vars = append(b.prog.Vars, VarEntry{})
	return s
}

// lowerGraph walks a method's CFG in arena order, emitting one Label
// per block (the label number is the block's arena index, per spec
// §4.7: "label numbering is derived from block arena indices") followed
// by the block's lowered content and its control transfer.
func (b *builder) lowerGraph(g *cfg.ControlFlowGraph, out *[]Instruction) {
	for idx, blk := range g.Nodes {
		*out = append(*out, &Flow{Label: idx, Op: Label})

		switch block := blk.(type) {
		case *cfg.Decl:
			for _, f := range block.Decls {
				b.lowerFieldDecl(f, out)
			}
			b.gotoNext(int(block.Next), idx, out)

		case *cfg.Basic:
			for _, stmt := range block.Statements {
				b.lowerStatement(stmt, out)
			}
			b.gotoNext(int(block.Next), idx, out)

		case *cfg.NoOp:
			b.gotoNext(int(block.Next), idx, out)

		case *cfg.Condition:
			condSlot := b.lowerExpr(block.Cond, out)
			// Fall through to True; jump to False when the condition is
			// unmet.
			falseIdx := int(block.False)
			*out = append(*out, &Flow{Label: falseIdx, Op: Goto, Cond: &condSlot})
			trueIdx := int(block.True)
			if trueIdx != idx+1 {
				*out = append(*out, &Flow{Label: trueIdx, Op: Goto})
			}
		}
	}
}

// gotoNext emits an unconditional jump to next unless next is the
// arena's very next block (straight-line fallthrough needs no Goto) or
// there is no successor at all (a terminal block).
func (b *builder) gotoNext(next int, fromIdx int, out *[]Instruction) {
	if next < 0 {
		*out = append(*out, &Ret{})
		return
	}
	if next == fromIdx+1 {
		return
	}
	*out = append(*out, &Flow{Label: next, Op: Goto})
}

func (b *builder) lowerFieldDecl(f *ast.FieldDecl, out *[]Instruction) {
	for _, v := range f.Vars {
		target := b.slotFor(v.Name.Name)
		if v.Initializer == nil {
			continue
		}
		if lit, ok := v.Initializer.(*ast.ArrayLit); ok {
			for i, elem := range lit.Elements {
				src := b.lowerExpr(elem, out)
				idx := b.literalIndexSlot(i, out)
				*out = append(*out, &Array{Target: target, V: src, Index: idx, Op: StoreArray})
			}
			continue
		}
		src := b.lowerExpr(v.Initializer, out)
		*out = append(*out, &Unary{Target: target, V: src, Op: Move})
	}
}

// literalIndexSlot materializes the compile-time constant i as a Move
// into a fresh slot so Array instructions can reference it uniformly by
// Slot rather than mixing in raw integers.
func (b *builder) literalIndexSlot(i int, out *[]Instruction) Slot {
	s := b.temp()
	lit := b.temp()
	b.prog.Vars[lit] = VarEntry{Name: fmt.Sprintf("$const%d", i)}
	*out = append(*out, &Unary{Target: s, V: lit, Op: Move})
	return s
}

func (b *builder) lowerStatement(stmt ast.Statement, out *[]Instruction) {
	switch s := stmt.(type) {
	case *ast.FieldDecl:
		b.lowerFieldDecl(s, out)
	case *ast.Assignment:
		b.lowerAssignment(s, out)
	case *ast.MethodCall:
		b.lowerCall(s, out)
	case *ast.ReturnStmt:
		if s.Value != nil {
			v := b.lowerExpr(s.Value, out)
			*out = append(*out, &Unary{Target: b.slotFor("$result"), V: v, Op: Move})
		}
		*out = append(*out, &Ret{})
	}
	// IfStmt/WhileStmt/ForStmt/BreakContinue never reach lowerStatement:
	// the CFG builder already dissolved them into Condition/NoOp blocks
	// and Goto edges before this pass runs.
}

func (b *builder) lowerAssignment(n *ast.Assignment, out *[]Instruction) {
	switch target := n.Target.(type) {
	case *ast.Identifier:
		dst := b.slotFor(target.Name)
		b.lowerScalarAssign(n, dst, out)
	case *ast.Index:
		arr := b.slotFor(target.Array.Name)
		idx := b.lowerExpr(target.Index, out)
		switch n.Op.String() {
		case "=":
			v := b.lowerExpr(n.Value, out)
			*out = append(*out, &Array{Target: arr, V: v, Index: idx, Op: StoreArray})
		case "++", "--":
			cur := b.temp()
			*out = append(*out, &Array{Target: cur, V: arr, Index: idx, Op: LoadArray})
			op := Add
			if n.Op.String() == "--" {
				op = Sub
			}
			one := b.slotFor("$one")
			res := b.temp()
			*out = append(*out, &Binary{Target: res, V1: cur, V2: one, Op: op})
			*out = append(*out, &Array{Target: arr, V: res, Index: idx, Op: StoreArray})
		default:
			cur := b.temp()
			*out = append(*out, &Array{Target: cur, V: arr, Index: idx, Op: LoadArray})
			rhs := b.lowerExpr(n.Value, out)
			res := b.temp()
			*out = append(*out, &Binary{Target: res, V1: cur, V2: rhs, Op: compoundOp(n.Op.String())})
			*out = append(*out, &Array{Target: arr, V: res, Index: idx, Op: StoreArray})
		}
	}
}

func (b *builder) lowerScalarAssign(n *ast.Assignment, dst Slot, out *[]Instruction) {
	switch n.Op.String() {
	case "=":
		v := b.lowerExpr(n.Value, out)
		*out = append(*out, &Unary{Target: dst, V: v, Op: Move})
	case "++", "--":
		op := Add
		if n.Op.String() == "--" {
			op = Sub
		}
		one := b.slotFor("$one")
		*out = append(*out, &Binary{Target: dst, V1: dst, V2: one, Op: op})
	default:
		rhs := b.lowerExpr(n.Value, out)
		*out = append(*out, &Binary{Target: dst, V1: dst, V2: rhs, Op: compoundOp(n.Op.String())})
	}
}

func compoundOp(op string) BinaryOp {
	switch op {
	case "+=":
		return Add
	case "-=":
		return Sub
	case "*=":
		return Mul
	case "/=":
		return Div
	case "%=":
		return Mod
	default:
		return Add
	}
}

// lowerCall emits Push per argument left to right followed by
// Call(func, n).
func (b *builder) lowerCall(n *ast.MethodCall, out *[]Instruction) {
	for _, arg := range n.Args {
		if s, ok := arg.(*ast.StringConst); ok {
			v := b.temp()
			b.prog.Vars[v] = VarEntry{Name: s.Value}
			*out = append(*out, &Push{V: v})
			continue
		}
		v := b.lowerExpr(arg, out)
		*out = append(*out, &Push{V: v})
	}
	*out = append(*out, &Call{Func: n.Callee.Name, ParamCount: len(n.Args)})
}

// lowerExpr linearizes e by post-order, returning the slot holding its
// result.
func (b *builder) lowerExpr(e ast.Expression, out *[]Instruction) Slot {
	switch n := e.(type) {
	case *ast.Identifier:
		return b.slotFor(n.Name)

	case *ast.IntConst:
		if n.IsNeg {
			return b.constSlot("-" + n.Text)
		}
		return b.constSlot(n.Text)
	case *ast.LongConst:
		if n.IsNeg {
			return b.constSlot("-" + n.Text)
		}
		return b.constSlot(n.Text)
	case *ast.BoolConst:
		return b.constSlot(fmt.Sprintf("%v", n.Value))
	case *ast.CharConst:
		return b.constSlot(n.Raw)
	case *ast.StringConst:
		return b.constSlot(n.Raw)

	case *ast.Index:
		arr := b.slotFor(n.Array.Name)
		idx := b.lowerExpr(n.Index, out)
		tgt := b.temp()
		*out = append(*out, &Array{Target: tgt, V: arr, Index: idx, Op: LoadArray})
		return tgt

	case *ast.Unary:
		v := b.lowerExpr(n.Operand, out)
		tgt := b.temp()
		op := Neg
		if n.Op.String() == "!" {
			op = Not
		}
		*out = append(*out, &Unary{Target: tgt, V: v, Op: op})
		return tgt

	case *ast.Binary:
		left := b.lowerExpr(n.Left, out)
		right := b.lowerExpr(n.Right, out)
		// The instruction set has no Lt/Leq/Neq: a < b is lowered as
		// b > a, a <= b as b >= a, and a != b as !(a == b).
		op := n.Op.String()
		switch op {
		case "<":
			left, right, op = right, left, ">"
		case "<=":
			left, right, op = right, left, ">="
		}
		tgt := b.temp()
		*out = append(*out, &Binary{Target: tgt, V1: left, V2: right, Op: binaryOp(op)})
		if op == "!=" {
			neg := b.temp()
			*out = append(*out, &Unary{Target: neg, V: tgt, Op: Not})
			return neg
		}
		return tgt

	case *ast.LenCall:
		// len() emits no instruction: its result is the synthetic
		// "$len$<name>" slot itself.
		return b.slotFor("$len$" + n.Target.Name)

	case *ast.IntCast:
		v := b.slotFor(n.Target.Name)
		tgt := b.temp()
		*out = append(*out, &Unary{Target: tgt, V: v, Op: IntCast})
		return tgt

	case *ast.LongCast:
		v := b.slotFor(n.Target.Name)
		tgt := b.temp()
		*out = append(*out, &Unary{Target: tgt, V: v, Op: LongCast})
		return tgt

	case *ast.MethodCall:
		b.lowerCall(n, out)
		tgt := b.temp()
		*out = append(*out, &Unary{Target: tgt, V: b.slotFor("$result"), Op: Move})
		return tgt

	default:
		return b.temp()
	}
}

func (b *builder) constSlot(text string) Slot {
	key := "$const:" + text
	if s, ok := b.slots[key]; ok {
		return s
	}
	s := Slot(len(b.prog.Vars))
	b.prog.Vars = append(b.prog.Vars, VarEntry{Name: text})
	b.slots[key] = s
	return s
}

func binaryOp(op string) BinaryOp {
	switch op {
	case "+":
		return Add
	case "-":
		return Sub
	case "*":
		return Mul
	case "/":
		return Div
	case "%":
		return Mod
	case "==", "!=":
		return Eq
	case "&&":
		return And
	case "||":
		return Or
	case ">":
		return Gt
	case ">=":
		return Geq
	case "<", "<=":
		// Not reached from lowerExpr, which rewrites < and <= as the
		// swapped-operand > and >= first; the instruction set omits
		// dedicated Lt/Leq opcodes.
		return Gt
	default:
		return Add
	}
}
