// Package tac linearizes a semantically-checked method body into flat
// three-address code, grounded on
// original_source/src/irs/three_address for the instruction-variant
// shape.
package tac

// Slot indexes a fresh entry in a Program's flat variable-entry table.
// Operands are indices into that table, not strings.
type Slot int

// BinaryOp is the operator set of a Binary instruction.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	And
	Or
	Gt
	Geq
)

// UnaryOp is the operator set of a Unary instruction.
type UnaryOp int

const (
	Not UnaryOp = iota
	Neg
	IntCast
	LongCast
	Move
)

// ArrayOp distinguishes array read from array write.
type ArrayOp int

const (
	LoadArray ArrayOp = iota
	StoreArray
)

// FlowOp is Goto or Label; label numbering is derived from
// the originating CFG block's arena index.
type FlowOp int

const (
	Goto FlowOp = iota
	Label
)

// Instruction is the sum type.
type Instruction interface {
	isInstruction()
}

// Binary performs tgt := v1 op v2.
type Binary struct {
	Target Slot
	V1     Slot
	V2     Slot
	Op     BinaryOp
}

func (*Binary) isInstruction() {}

// Unary performs tgt := op v.
type Unary struct {
	Target Slot
	V      Slot
	Op     UnaryOp
}

func (*Unary) isInstruction() {}

// Push stores v onto the argument stack ahead of a Call.
type Push struct {
	V Slot
}

func (*Push) isInstruction() {}

// Array performs an indexed array load or store.
type Array struct {
	Target Slot
	V      Slot
	Index  Slot
	Op     ArrayOp
}

func (*Array) isInstruction() {}

// Call invokes Func with the ParamCount most recently Pushed values.
type Call struct {
	Func       string
	ParamCount int
}

func (*Call) isInstruction() {}

// Ret returns from the enclosing method.
type Ret struct{}

func (*Ret) isInstruction() {}

// Flow is a Goto to Label, or the Label pseudo-instruction it targets.
// Cond extends its bare Goto to carry the CFG's branching: a
// non-nil Cond makes this a conditional jump taken when the slot holds
// false (the CFG's Condition block lowers to one Flow per branch: the
// false edge carries Cond, and the true edge is an unconditional Goto
// unless the true block is next in arena order, where it falls through).
type Flow struct {
	Label int
	Op    FlowOp
	Cond  *Slot
}

func (*Flow) isInstruction() {}
