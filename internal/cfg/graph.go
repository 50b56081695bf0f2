package cfg

import "github.com/go-decaf/decafc/internal/ast"

// ControlFlowGraph is an arena of Blocks for one method body.
type ControlFlowGraph struct {
	Nodes []Block
	Start BlockIndex
	End   BlockIndex // the tail reached when the method falls off its body; noBlock if every path returns
}

// ProgramGraph maps method name to its ControlFlowGraph.
type ProgramGraph map[string]*ControlFlowGraph

// loopFrame records the two join points a break/continue inside a loop
// needs to reach; pushed/popped around while/for bodies so nested loops
// resolve correctly ("Push loop-head onto a stack for
// break/continue").
type loopFrame struct {
	head BlockIndex // continue target: the loop's NoOp condition-guard
	exit BlockIndex // break target: the NoOp merge following the loop
}

// builder accumulates one method's graph.
type builder struct {
	g    *ControlFlowGraph
	loop []loopFrame
}

func (b *builder) alloc(blk Block) BlockIndex {
	b.g.Nodes = append(b.g.Nodes, blk)
	return BlockIndex(len(b.g.Nodes) - 1)
}

func (b *builder) block(idx BlockIndex) Block {
	return b.g.Nodes[idx]
}

// setNext wires a Basic/NoOp/Decl block's successor. Condition blocks
// are wired exclusively through setBranch.
func (b *builder) setNext(idx, next BlockIndex) {
	if idx == noBlock {
		return
	}
	switch blk := b.block(idx).(type) {
	case *Basic:
		blk.Next = next
	case *NoOp:
		blk.Next = next
	case *Decl:
		blk.Next = next
	default:
		panic("cfg: setNext on a Condition block")
	}
}

func (b *builder) setBranch(idx BlockIndex, trueIdx, falseIdx BlockIndex) {
	cond := b.block(idx).(*Condition)
	cond.True = trueIdx
	cond.False = falseIdx
}

// Build constructs one ControlFlowGraph per method declared in prog.
// Only semantically valid programs are expected; the builder assumes
// the semantic analyzer already ran and enforced its invariants.
func Build(prog *ast.Program) ProgramGraph {
	out := make(ProgramGraph)
	for _, m := range prog.Methods {
		out[m.Name.Name] = buildMethod(m)
	}
	return out
}

func buildMethod(m *ast.MethodDecl) *ControlFlowGraph {
	g := &ControlFlowGraph{}
	b := &builder{g: g}

	head, tail := b.buildBlock(m.Body)
	g.Start = head
	g.End = tail
	return g
}

// buildBlock linearizes one lexical block (field decls then
// statements), returning the block's entry point and its open tail
// (noBlock if every path through the block terminates in a return).
func (b *builder) buildBlock(blk *ast.Block) (head, tail BlockIndex) {
	declIdx := b.alloc(&Decl{Decls: blk.Fields, Next: noBlock})
	head = declIdx
	cur := declIdx // most recently opened Basic/NoOp/Decl with a pending Next

	var pending []ast.Statement
	flush := func() BlockIndex {
		idx := b.alloc(&Basic{Statements: pending, Next: noBlock})
		pending = nil
		if cur != noBlock {
			b.setNext(cur, idx)
		}
		return idx
	}

	for _, stmt := range blk.Stmts {
		switch s := stmt.(type) {
		case *ast.IfStmt:
			cur = flush()
			cur = b.buildIf(s, cur)

		case *ast.WhileStmt:
			cur = flush()
			cur = b.buildWhile(s, cur)

		case *ast.ForStmt:
			cur = flush()
			cur = b.buildFor(s, cur)

		case *ast.ReturnStmt:
			pending = append(pending, stmt)
			flush()
			cur = noBlock // terminal: no statement after a return is reachable

		case *ast.BreakContinue:
			pending = append(pending, stmt)
			idx := flush()
			if len(b.loop) == 0 {
				// Unreachable once the semantic analyzer has run (rule 24);
				// kept only so a malformed tree doesn't panic the builder.
				cur = idx
				continue
			}
			frame := b.loop[len(b.loop)-1]
			if s.IsBreak {
				b.setNext(idx, frame.exit)
			} else {
				b.setNext(idx, frame.head)
			}
			cur = noBlock

		default:
			pending = append(pending, stmt)
		}
	}

	if cur != noBlock {
		cur = flush()
	}
	return head, cur
}

// buildIf emits a Condition block plus a NoOp merge, wiring prev's
// successor to the condition (if/else rule).
func (b *builder) buildIf(s *ast.IfStmt, prev BlockIndex) BlockIndex {
	thenHead, thenTail := b.buildBlock(s.Then)

	var elseHead, elseTail BlockIndex = noBlock, noBlock
	if s.Else != nil {
		elseHead, elseTail = b.buildBlock(s.Else)
	}

	condIdx := b.alloc(&Condition{Cond: s.Cond})
	b.setNext(prev, condIdx)

	merge := b.alloc(&NoOp{Next: noBlock})

	if s.Else != nil {
		b.setBranch(condIdx, thenHead, elseHead)
		if elseTail != noBlock {
			b.setNext(elseTail, merge)
		}
	} else {
		b.setBranch(condIdx, thenHead, merge)
	}
	if thenTail != noBlock {
		b.setNext(thenTail, merge)
	}

	return merge
}

// buildWhile emits a NoOp loop-head, a Condition, and wires the body's
// tail back to the head; the condition's false edge is the NoOp exit
// that becomes the loop's successor (while rule).
func (b *builder) buildWhile(s *ast.WhileStmt, prev BlockIndex) BlockIndex {
	head := b.alloc(&NoOp{Next: noBlock})
	b.setNext(prev, head)

	condIdx := b.alloc(&Condition{Cond: s.Cond})
	b.setNext(head, condIdx)

	exit := b.alloc(&NoOp{Next: noBlock})

	b.loop = append(b.loop, loopFrame{head: head, exit: exit})
	bodyHead, bodyTail := b.buildBlock(s.Body)
	b.loop = b.loop[:len(b.loop)-1]

	b.setBranch(condIdx, bodyHead, exit)
	if bodyTail != noBlock {
		b.setNext(bodyTail, head)
	}

	return exit
}

// buildFor desugars `for (init; cond; upd) body` to
// `init; while (cond) { body; upd; }`, splicing Update onto the end of
// Body before delegating to buildWhile.
func (b *builder) buildFor(s *ast.ForStmt, prev BlockIndex) BlockIndex {
	initIdx := b.alloc(&Basic{Statements: []ast.Statement{s.Init}, Next: noBlock})
	b.setNext(prev, initIdx)

	body := &ast.Block{
		TokPos: s.Body.Pos(),
		Fields: s.Body.Fields,
		Stmts:  append(append([]ast.Statement{}, s.Body.Stmts...), s.Update),
	}
	desugared := &ast.WhileStmt{TokPos: s.TokPos, Cond: s.Cond, Body: body}

	return b.buildWhile(desugared, initIdx)
}
