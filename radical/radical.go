// Package radical: core Expr type, canonicalization and rendering.
package radical

import (
	"errors"
	"math/big"
	"sort"
	"strings"
)

// Sentinel errors for the radical package.
var (
	// ErrNegativeRadicand is returned when Sqrt is asked for the square
	// root of a negative value; the engine models real radicals only.
	ErrNegativeRadicand = errors.New("radical: negative radicand")

	// ErrZeroInverse is returned when Inverse is called on the zero
	// expression.
	ErrZeroInverse = errors.New("radical: inverse of zero")

	// ErrParse is returned when Parse cannot recognize its input.
	ErrParse = errors.New("radical: malformed expression")
)

// approxPrec is the binary precision used for numeric fallbacks (Approx,
// Sign resolution, non-denestable square roots). 192 bits leaves a wide
// margin over the 1e-10 geometric tolerances used by callers.
const approxPrec = 192

// term is one c·√r summand. coef is never zero; rad is squarefree and ≥ 1,
// with rad == 1 denoting the rational part.
type term struct {
	coef *big.Rat
	rad  *big.Int
}

// Expr is an immutable linear combination of square roots with rational
// coefficients. The zero value (no terms) represents the number 0.
// Expr values must be treated as read-only; all operations return fresh
// expressions and never alias their operands' internals.
type Expr struct {
	terms []term // sorted by radicand ascending, radicand 1 first
}

// Zero returns the zero expression.
func Zero() *Expr { return &Expr{} }

// FromRat builds the rational expression r.
func FromRat(r *big.Rat) *Expr {
	if r.Sign() == 0 {
		return Zero()
	}
	return &Expr{terms: []term{{coef: new(big.Rat).Set(r), rad: big.NewInt(1)}}}
}

// FromInt64 builds the integer expression n.
func FromInt64(n int64) *Expr { return FromRat(new(big.Rat).SetInt64(n)) }

// newTerm builds c·√r, extracting square factors of r into the coefficient
// so the stored radicand is squarefree. r must be ≥ 1.
func newTerm(c *big.Rat, r *big.Int) term {
	sq, rest := extractSquare(r)
	coef := new(big.Rat).Set(c)
	if sq.Cmp(oneInt) != 0 {
		coef.Mul(coef, new(big.Rat).SetInt(sq))
	}
	return term{coef: coef, rad: rest}
}

// canonical sorts terms by radicand, merges equal radicands and drops zero
// coefficients. It owns ts and may modify it in place.
func canonical(ts []term) *Expr {
	sort.Slice(ts, func(i, j int) bool { return ts[i].rad.Cmp(ts[j].rad) < 0 })
	out := ts[:0]
	for _, t := range ts {
		if n := len(out); n > 0 && out[n-1].rad.Cmp(t.rad) == 0 {
			out[n-1].coef.Add(out[n-1].coef, t.coef)
			continue
		}
		out = append(out, term{coef: new(big.Rat).Set(t.coef), rad: new(big.Int).Set(t.rad)})
	}
	kept := out[:0]
	for _, t := range out {
		if t.coef.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	return &Expr{terms: append([]term(nil), kept...)}
}

// IsZero reports whether e is exactly zero.
func (e *Expr) IsZero() bool { return len(e.terms) == 0 }

// IsRational reports whether e carries no irrational component.
func (e *Expr) IsRational() bool {
	switch len(e.terms) {
	case 0:
		return true
	case 1:
		return e.terms[0].rad.Cmp(oneInt) == 0
	default:
		return false
	}
}

// Rat returns the exact rational value of e and true when IsRational;
// otherwise (nil, false).
func (e *Expr) Rat() (*big.Rat, bool) {
	if !e.IsRational() {
		return nil, false
	}
	if len(e.terms) == 0 {
		return new(big.Rat), true
	}
	return new(big.Rat).Set(e.terms[0].coef), true
}

// Equal reports exact structural equality of canonical forms.
func (e *Expr) Equal(o *Expr) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if e.terms[i].rad.Cmp(o.terms[i].rad) != 0 || e.terms[i].coef.Cmp(o.terms[i].coef) != 0 {
			return false
		}
	}
	return true
}

// String renders the canonical text form, e.g. "7/6 + 2/3*sqrt(2)".
// The output is deterministic and accepted by Parse.
func (e *Expr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range e.terms {
		c := t.coef
		if i == 0 {
			if c.Sign() < 0 {
				sb.WriteByte('-')
				c = new(big.Rat).Neg(c)
			}
		} else {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
				c = new(big.Rat).Neg(c)
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(formatTerm(c, t.rad))
	}
	return sb.String()
}

// formatTerm renders |c|·√r without a sign.
func formatTerm(c *big.Rat, r *big.Int) string {
	if r.Cmp(oneInt) == 0 {
		return c.RatString()
	}
	if c.Cmp(oneRat) == 0 {
		return "sqrt(" + r.String() + ")"
	}
	return c.RatString() + "*sqrt(" + r.String() + ")"
}

var (
	oneInt = big.NewInt(1)
	oneRat = big.NewRat(1, 1)
)
