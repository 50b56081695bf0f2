package semantic

import (
	"math"
	"math/big"
	"strings"

	"github.com/go-decaf/decafc/internal/ast"
	"github.com/go-decaf/decafc/internal/symtab"
)

// parseMagnitude parses an unsigned literal's digit text (decimal, or
// hex with a "0x"/"0X" prefix) into its magnitude, ignoring any sign.
func parseMagnitude(text string) (*big.Int, bool) {
	n := new(big.Int)
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		_, ok := n.SetString(text[2:], 16)
		return n, ok
	}
	_, ok := n.SetString(text, 10)
	return n, ok
}

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
	minInt64 = new(big.Int).SetInt64(math.MinInt64)
	maxInt64 = new(big.Int).SetInt64(math.MaxInt64)
)

// VisitIntConst enforces rule 25 for 32-bit Int literals.
func (a *Analyzer) VisitIntConst(n *ast.IntConst) {
	mag, ok := parseMagnitude(n.Text)
	if !ok {
		a.errorf(n, "Integer literal %q is malformed.", n.Text)
		a.resultType = symtab.None
		return
	}
	value := mag
	if n.IsNeg {
		value = new(big.Int).Neg(mag)
	}
	if value.Cmp(minInt32) < 0 || value.Cmp(maxInt32) > 0 {
		a.errorf(n, "Integer literal %s exceeds the range of a 32-bit int.", signedText(n.IsNeg, n.Text))
		a.resultType = symtab.None
		return
	}
	a.resultType = symtab.Int
}

// VisitLongConst enforces rule 25 for 64-bit Long literals.
func (a *Analyzer) VisitLongConst(n *ast.LongConst) {
	mag, ok := parseMagnitude(strings.TrimSuffix(n.Text, "L"))
	if !ok {
		a.errorf(n, "Long literal %q is malformed.", n.Text)
		a.resultType = symtab.None
		return
	}
	value := mag
	if n.IsNeg {
		value = new(big.Int).Neg(mag)
	}
	if value.Cmp(minInt64) < 0 || value.Cmp(maxInt64) > 0 {
		a.errorf(n, "Long literal %s exceeds the range of a 64-bit long.", signedText(n.IsNeg, n.Text))
		a.resultType = symtab.None
		return
	}
	a.resultType = symtab.Long
}

func signedText(isNeg bool, text string) string {
	if isNeg {
		return "-" + text
	}
	return text
}

func (a *Analyzer) VisitBoolConst(n *ast.BoolConst) {
	a.resultType = symtab.Bool
}

// VisitCharConst sets resultType to None: the lattice has no char type.
// Checks that skip None operands (initializers, array elements,
// assignments) therefore accept a char literal wherever it appears.
func (a *Analyzer) VisitCharConst(n *ast.CharConst) {
	a.resultType = symtab.None
}

func (a *Analyzer) VisitStringConst(n *ast.StringConst) {
	a.resultType = symtab.None
}
