// Package symtab implements the scoped name table: insertion-ordered
// scopes, a global scope plus a method-scope stack, and the
// declare/resolve operations the semantic analyzer drives.
package symtab

// Type is the analyzer's value-type lattice.
type Type int

const (
	None Type = iota // error/unknown sentinel
	Int
	Long
	Bool
	Void
	IntArray
	LongArray
	BoolArray
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Long:
		return "long"
	case Bool:
		return "bool"
	case Void:
		return "void"
	case IntArray:
		return "int[]"
	case LongArray:
		return "long[]"
	case BoolArray:
		return "bool[]"
	default:
		return "<none>"
	}
}

// IsArray reports whether t is one of the three array types.
func (t Type) IsArray() bool {
	return t == IntArray || t == LongArray || t == BoolArray
}

// ElementType returns the scalar element type of an array type, or None
// if t is not an array type.
func (t Type) ElementType() Type {
	switch t {
	case IntArray:
		return Int
	case LongArray:
		return Long
	case BoolArray:
		return Bool
	default:
		return None
	}
}

// ArrayOf returns the array type whose elements are t, or None if t is
// not a scalar that has an array form.
func ArrayOf(elem Type) Type {
	switch elem {
	case Int:
		return IntArray
	case Long:
		return LongArray
	case Bool:
		return BoolArray
	default:
		return None
	}
}

// ScalarTypeOf maps a source type-name keyword to its Type.
func ScalarTypeOf(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "long":
		return Long, true
	case "bool":
		return Bool, true
	case "void":
		return Void, true
	default:
		return None, false
	}
}
