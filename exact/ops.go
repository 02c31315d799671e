// Package exact: arithmetic on Number.
package exact

import "math"

// addInt64 reports a+b and whether it stayed inside int64.
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// mulInt64 reports a·b and whether it stayed inside int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// |MinInt64| is not representable; the only safe products are ×1.
		if a == 1 || b == 1 {
			return a * b, true
		}
		return 0, false
	}
	c := a * b
	if c/a != b {
		return 0, false
	}
	return c, true
}

// Add returns n + o. Integer sums that overflow promote to rationals.
func (n Number) Add(o Number) Number {
	if n.kind == KindInt && o.kind == KindInt {
		if c, ok := addInt64(n.i, o.i); ok {
			return Int(c)
		}
	}
	if n.kind != KindSym && o.kind != KindSym {
		return fromRat(n.bigRat().Add(n.bigRat(), o.bigRat()))
	}
	return fromExpr(n.expr().Add(o.expr()))
}

// Sub returns n − o.
func (n Number) Sub(o Number) Number { return n.Add(o.Neg()) }

// Neg returns −n.
func (n Number) Neg() Number {
	switch n.kind {
	case KindInt:
		if n.i != math.MinInt64 {
			return Int(-n.i)
		}
		return fromRat(n.bigRat().Neg(n.bigRat()))
	case KindRat:
		return fromRat(n.bigRat().Neg(n.bigRat()))
	default:
		return fromExpr(n.s.Neg())
	}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}
	return n
}

// Mul returns n · o. Integer products that overflow promote to rationals.
func (n Number) Mul(o Number) Number {
	if n.kind == KindInt && o.kind == KindInt {
		if c, ok := mulInt64(n.i, o.i); ok {
			return Int(c)
		}
	}
	if n.kind != KindSym && o.kind != KindSym {
		return fromRat(n.bigRat().Mul(n.bigRat(), o.bigRat()))
	}
	return fromExpr(n.expr().Mul(o.expr()))
}

// Div returns n / o, or ErrDivisionByZero when o is zero. The quotient of
// two non-symbolic operands is exact; a symbolic divisor is inverted by
// conjugation, so the result is exact as well.
func (n Number) Div(o Number) (Number, error) {
	if o.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	if n.kind != KindSym && o.kind != KindSym {
		return fromRat(n.bigRat().Quo(n.bigRat(), o.bigRat())), nil
	}
	inv, err := o.expr().Inverse()
	if err != nil {
		return Number{}, ErrDivisionByZero
	}
	return fromExpr(n.expr().Mul(inv)), nil
}

// Inverse returns 1 / n.
func (n Number) Inverse() (Number, error) { return Int(1).Div(n) }

// Pow returns n raised to the integer power k. Negative k inverts the
// base first and fails with ErrDivisionByZero on a zero base.
func (n Number) Pow(k int) (Number, error) {
	base := n
	if k < 0 {
		inv, err := n.Inverse()
		if err != nil {
			return Number{}, err
		}
		base, k = inv, -k
	}
	out := Int(1)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
	}
	return out, nil
}

// Sqrt returns the principal square root of n, or ErrNegativeSqrt when n
// is negative. Perfect squares stay integer or rational; other rational
// operands become single-radical symbolic values; symbolic operands
// denest when possible and otherwise degrade to a bounded-precision
// rational.
func (n Number) Sqrt() (Number, error) {
	if n.Sign() < 0 {
		return Number{}, ErrNegativeSqrt
	}
	root, err := n.expr().Sqrt()
	if err != nil {
		return Number{}, ErrNegativeSqrt
	}
	return fromExpr(root), nil
}
