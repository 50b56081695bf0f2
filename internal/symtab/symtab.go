package symtab

import "fmt"

// Kind discriminates the four Entry variants.
type Kind int

const (
	VarEntry Kind = iota
	ArrayEntry
	MethodEntry
	ImportEntry
)

// Entry is one bound name. Method additionally carries a return type and
// ordered parameter list (as Var entries); the other kinds leave those
// fields zero.
type Entry struct {
	Kind       Kind
	Name       string
	IsConst    bool
	Type       Type
	ReturnType Type    // valid when Kind == MethodEntry
	Params     []Entry // valid when Kind == MethodEntry; each a VarEntry/ArrayEntry
}

// Scope is a name→entry mapping with insertion-order uniqueness (spec
// §3.3). The order slice exists purely so diagnostics and debug dumps
// can report declarations in source order; resolution itself uses the
// map.
type Scope struct {
	entries map[string]Entry
	order   []string
	// ReturnType is the declared return type of the enclosing method,
	// used by return-statement checks (rule 11). Only meaningful on a
	// method scope (the outermost scope pushed per method body).
	ReturnType Type
}

func newScope() *Scope {
	return &Scope{entries: make(map[string]Entry)}
}

// Declare inserts name into the scope. It reports ok=false (Duplicate)
// if name already exists in this scope (rule 1) — it never looks at
// enclosing scopes, matching its "Fails if name already exists
// in scope" (shadowing across scopes is legal).
func (s *Scope) Declare(e Entry) (ok bool) {
	if _, exists := s.entries[e.Name]; exists {
		return false
	}
	s.entries[e.Name] = e
	s.order = append(s.order, e.Name)
	return true
}

// Lookup resolves name within this single scope only.
func (s *Scope) Lookup(name string) (Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Names returns declared names in insertion order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Table is the analyzer's scope stack: one GlobalScope plus a stack of
// method/block scopes.
type Table struct {
	Global *Scope
	stack  []*Scope
}

// New creates a Table with an empty global scope.
func New() *Table {
	return &Table{Global: newScope()}
}

// PushScope opens a new nested scope. returnType is only meaningful when
// this call opens a method's outermost scope; nested block scopes
// inherit it from the enclosing method scope (see ReturnType()).
func (t *Table) PushScope(returnType Type) *Scope {
	s := newScope()
	s.ReturnType = returnType
	t.stack = append(t.stack, s)
	return s
}

// PopScope discards the innermost scope.
func (t *Table) PopScope() {
	if len(t.stack) == 0 {
		panic("symtab: PopScope on empty stack")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Current returns the innermost scope, or nil if only the global scope
// is active.
func (t *Table) Current() *Scope {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

// Declare inserts into the innermost active scope (or global, if no
// method scope is open).
func (t *Table) Declare(e Entry) bool {
	if cur := t.Current(); cur != nil {
		return cur.Declare(e)
	}
	return t.Global.Declare(e)
}

// Resolve walks from the top of the scope stack down to global and
// returns the first hit.
func (t *Table) Resolve(name string) (Entry, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if e, ok := t.stack[i].Lookup(name); ok {
			return e, true
		}
	}
	return t.Global.Lookup(name)
}

// ReturnType reports the declared return type of the innermost enclosing
// method, walking outward through nested block scopes to find it.
func (t *Table) ReturnType() (Type, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].ReturnType != None {
			return t.stack[i].ReturnType, true
		}
	}
	return None, false
}

func (k Kind) String() string {
	switch k {
	case VarEntry:
		return "Var"
	case ArrayEntry:
		return "Array"
	case MethodEntry:
		return "Method"
	case ImportEntry:
		return "Import"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
