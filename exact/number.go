// Package exact: the tri-state Number scalar.
package exact

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/gasket/radical"
)

// Sentinel errors for the exact package.
var (
	// ErrDivisionByZero is returned when a divisor is exactly zero.
	ErrDivisionByZero = errors.New("exact: division by zero")

	// ErrNegativeSqrt is returned when Sqrt is asked for the square root
	// of a negative real value.
	ErrNegativeSqrt = errors.New("exact: square root of negative value")

	// ErrParse is returned when ParseExact cannot recognize its input.
	ErrParse = errors.New("exact: malformed number")
)

// symTolerance bounds the numeric equality test used when a symbolic
// operand is involved. Values closer than this are treated as equal.
const symTolerance = 1e-10

// Kind identifies the active representation of a Number.
type Kind uint8

const (
	// KindInt is an int64 integer.
	KindInt Kind = iota
	// KindRat is an arbitrary-precision rational.
	KindRat
	// KindSym is a symbolic radical expression.
	KindSym
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRat:
		return "frac"
	case KindSym:
		return "sym"
	default:
		return "unknown"
	}
}

// Number is an exact real scalar. The zero value is the integer 0.
// Numbers are immutable; every operation returns a fresh value.
type Number struct {
	kind Kind
	i    int64
	r    *big.Rat      // set when kind == KindRat
	s    *radical.Expr // set when kind == KindSym
}

// Int returns the integer n.
func Int(n int64) Number { return Number{kind: KindInt, i: n} }

// NewRat returns the rational num/den, demoted to an integer when den
// divides num. A zero denominator yields ErrDivisionByZero.
func NewRat(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, ErrDivisionByZero
	}
	return fromRat(big.NewRat(num, den)), nil
}

// FromBigRat returns the value of r, demoted when possible. r is copied.
func FromBigRat(r *big.Rat) Number { return fromRat(new(big.Rat).Set(r)) }

// fromRat normalizes a rational downward. It takes ownership of r.
func fromRat(r *big.Rat) Number {
	if r.IsInt() && r.Num().IsInt64() {
		return Int(r.Num().Int64())
	}
	return Number{kind: KindRat, r: r}
}

// fromExpr normalizes a symbolic expression downward.
func fromExpr(e *radical.Expr) Number {
	if r, ok := e.Rat(); ok {
		return fromRat(r)
	}
	return Number{kind: KindSym, s: e}
}

// Kind reports the active representation.
func (n Number) Kind() Kind { return n.kind }

// IsZero reports whether n is exactly zero.
func (n Number) IsZero() bool {
	switch n.kind {
	case KindInt:
		return n.i == 0
	case KindRat:
		return n.r.Sign() == 0
	default:
		return n.s.IsZero()
	}
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	switch n.kind {
	case KindInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		}
		return 0
	case KindRat:
		return n.r.Sign()
	default:
		return n.s.Sign()
	}
}

// bigRat returns n's exact rational value. Valid for KindInt and KindRat.
func (n Number) bigRat() *big.Rat {
	if n.kind == KindInt {
		return new(big.Rat).SetInt64(n.i)
	}
	return new(big.Rat).Set(n.r)
}

// expr lifts n into the symbolic representation.
func (n Number) expr() *radical.Expr {
	if n.kind == KindSym {
		return n.s
	}
	return radical.FromRat(n.bigRat())
}

// Equal reports whether n and o hold the same value. The test is exact
// when neither operand is symbolic; otherwise values within symTolerance
// of each other are considered equal.
func (n Number) Equal(o Number) bool {
	if n.kind != KindSym && o.kind != KindSym {
		return n.bigRat().Cmp(o.bigRat()) == 0
	}
	diff := n.expr().Sub(o.expr())
	if diff.IsZero() {
		return true
	}
	f, _ := new(big.Float).SetRat(diff.Approx()).Float64()
	if f < 0 {
		f = -f
	}
	return f < symTolerance
}

// Cmp compares n and o as real numbers, returning -1, 0 or +1.
func (n Number) Cmp(o Number) int {
	if n.kind != KindSym && o.kind != KindSym {
		return n.bigRat().Cmp(o.bigRat())
	}
	if n.Equal(o) {
		return 0
	}
	return n.expr().Cmp(o.expr())
}
