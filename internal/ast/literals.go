package ast

import "github.com/go-decaf/decafc/pkg/token"

// IdentStatus tags the role an Identifier plays, set by the parser and
// consumed by the semantic analyzer: "the single mechanism
// that tells the analyzer what role an identifier plays".
type IdentStatus int

const (
	// Declare marks a binding site: imports, field/var names, a
	// method's own name, and its parameters.
	Declare IdentStatus = iota
	// Read marks a use of an already-bound name.
	Read
	// Write marks the left side of an assignment/update, or a for
	// loop's induction variable.
	Write
)

func (s IdentStatus) String() string {
	switch s {
	case Declare:
		return "Declare"
	case Write:
		return "Write"
	default:
		return "Read"
	}
}

// Identifier is a name reference, tagged with the role it plays at this
// syntactic position.
type Identifier struct {
	TokPos token.Position
	Name   string
	Status IdentStatus
}

func (i *Identifier) Pos() token.Position { return i.TokPos }
func (i *Identifier) Accept(v Visitor)    { v.VisitIdentifier(i) }
func (i *Identifier) exprNode()           {}
func (i *Identifier) locationNode()       {}

// IntConst is an integer literal. Parsing to native width is deferred to
// the analyzer (rule 25) so overflow is reportable rather than fatal at
// scan/parse time. IsNeg records a unary minus the parser absorbed
// directly into the literal ("Constants").
type IntConst struct {
	TokPos token.Position
	IsNeg  bool
	Text   string // digits only, no sign; hex text includes "0x"/"0X" prefix
}

func (c *IntConst) Pos() token.Position { return c.TokPos }
func (c *IntConst) Accept(v Visitor)    { v.VisitIntConst(c) }
func (c *IntConst) exprNode()           {}

// LongConst is an integer literal with a trailing 'L' suffix.
type LongConst struct {
	TokPos token.Position
	IsNeg  bool
	Text   string
}

func (c *LongConst) Pos() token.Position { return c.TokPos }
func (c *LongConst) Accept(v Visitor)    { v.VisitLongConst(c) }
func (c *LongConst) exprNode()           {}

// BoolConst is a `true`/`false` literal.
type BoolConst struct {
	TokPos token.Position
	Value  bool
}

func (c *BoolConst) Pos() token.Position { return c.TokPos }
func (c *BoolConst) Accept(v Visitor)    { v.VisitBoolConst(c) }
func (c *BoolConst) exprNode()           {}

// CharConst is a character literal. Value is the decoded character (after
// escape processing); Raw preserves the surrounding quotes as scanned,
// used verbatim by the token listing format.
type CharConst struct {
	TokPos token.Position
	Value  rune
	Raw    string
}

func (c *CharConst) Pos() token.Position { return c.TokPos }
func (c *CharConst) Accept(v Visitor)    { v.VisitCharConst(c) }
func (c *CharConst) exprNode()           {}

// StringConst is a string literal. Value is decoded (escapes resolved);
// Raw preserves the surrounding quotes as scanned.
type StringConst struct {
	TokPos token.Position
	Value  string
	Raw    string
}

func (c *StringConst) Pos() token.Position { return c.TokPos }
func (c *StringConst) Accept(v Visitor)    { v.VisitStringConst(c) }
func (c *StringConst) exprNode()           {}

// ArrayLit is an array initializer's brace-delimited literal list:
// `{` Literal (`,` Literal)* `}` (grammar, Initializer rule).
type ArrayLit struct {
	TokPos   token.Position
	Elements []Expression
}

func (a *ArrayLit) Pos() token.Position { return a.TokPos }
func (a *ArrayLit) Accept(v Visitor)    { v.VisitArrayLit(a) }
func (a *ArrayLit) exprNode()           {}
