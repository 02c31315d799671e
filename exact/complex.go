// Package exact: the exact complex pair used for circle centers.
package exact

import "math/big"

// Complex is an exact complex value with Number components. The zero
// value is 0 + 0i. Complex values are immutable like their parts.
type Complex struct {
	Re Number
	Im Number
}

// Cmplx builds re + im·i.
func Cmplx(re, im Number) Complex { return Complex{Re: re, Im: im} }

// RealC builds the real value re + 0i.
func RealC(re Number) Complex { return Complex{Re: re} }

// IsZero reports whether both components are exactly zero.
func (c Complex) IsZero() bool { return c.Re.IsZero() && c.Im.IsZero() }

// Equal compares componentwise with Number semantics.
func (c Complex) Equal(o Complex) bool { return c.Re.Equal(o.Re) && c.Im.Equal(o.Im) }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re.Add(o.Re), Im: c.Im.Add(o.Im)}
}

// Sub returns c − o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re.Sub(o.Re), Im: c.Im.Sub(o.Im)}
}

// Neg returns −c.
func (c Complex) Neg() Complex { return Complex{Re: c.Re.Neg(), Im: c.Im.Neg()} }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex { return Complex{Re: c.Re, Im: c.Im.Neg()} }

// Mul returns c · o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im)),
		Im: c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re)),
	}
}

// Scale returns c scaled by the real factor k.
func (c Complex) Scale(k Number) Complex {
	return Complex{Re: c.Re.Mul(k), Im: c.Im.Mul(k)}
}

// AbsSquared returns |c|² = Re² + Im², always a non-negative real.
func (c Complex) AbsSquared() Number {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}

// Div returns c / o, or ErrDivisionByZero when o is zero. Computed as
// c·conj(o) / |o|², which keeps every step exact.
func (c Complex) Div(o Complex) (Complex, error) {
	den := o.AbsSquared()
	if den.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	inv, err := den.Inverse()
	if err != nil {
		return Complex{}, err
	}
	return c.Mul(o.Conj()).Scale(inv), nil
}

// Sqrt returns the principal square root of c (the branch with
// non-negative real part). Real operands stay on an exact axis: √x for
// x ≥ 0, i·√(−x) otherwise. The general case uses the half-angle form
//
//	m = |c|, re = √((m+Re)/2), im = sign(Im)·√((m−Re)/2)
//
// where each radicand is clamped at zero when a symbolic approximation
// leaves it negative by less than the comparison tolerance.
func (c Complex) Sqrt() (Complex, error) {
	if c.Im.IsZero() {
		if c.Re.Sign() >= 0 {
			re, err := c.Re.Sqrt()
			if err != nil {
				return Complex{}, err
			}
			return Complex{Re: re}, nil
		}
		im, err := c.Re.Neg().Sqrt()
		if err != nil {
			return Complex{}, err
		}
		return Complex{Im: im}, nil
	}

	m, err := c.AbsSquared().Sqrt()
	if err != nil {
		return Complex{}, err
	}
	half := fromRat(big.NewRat(1, 2))
	re, err := sqrtClamped(m.Add(c.Re).Mul(half))
	if err != nil {
		return Complex{}, err
	}
	im, err := sqrtClamped(m.Sub(c.Re).Mul(half))
	if err != nil {
		return Complex{}, err
	}
	if c.Im.Sign() < 0 {
		im = im.Neg()
	}
	return Complex{Re: re, Im: im}, nil
}

// sqrtClamped is Number.Sqrt with tiny negative radicands, an artifact of
// bounded-precision symbolic fallbacks, snapped to zero.
func sqrtClamped(n Number) (Number, error) {
	if n.Sign() < 0 {
		if n.Float64() > -symTolerance {
			return Int(0), nil
		}
		return Number{}, ErrNegativeSqrt
	}
	return n.Sqrt()
}

// Approx returns float64 views of both components. Lossy; rendering only.
func (c Complex) Approx() (re, im float64) { return c.Re.Float64(), c.Im.Float64() }

// String renders "(re, im)" with the plain Number forms.
func (c Complex) String() string { return "(" + c.Re.String() + ", " + c.Im.String() + ")" }
