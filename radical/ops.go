// Package radical: exact arithmetic over radical expressions.
package radical

import "math/big"

// Add returns e + o.
func (e *Expr) Add(o *Expr) *Expr {
	ts := make([]term, 0, len(e.terms)+len(o.terms))
	ts = append(ts, e.terms...)
	ts = append(ts, o.terms...)
	return canonical(ts)
}

// Sub returns e − o.
func (e *Expr) Sub(o *Expr) *Expr { return e.Add(o.Neg()) }

// Neg returns −e.
func (e *Expr) Neg() *Expr {
	ts := make([]term, 0, len(e.terms))
	for _, t := range e.terms {
		ts = append(ts, term{coef: new(big.Rat).Neg(t.coef), rad: new(big.Int).Set(t.rad)})
	}
	return canonical(ts)
}

// Mul returns e · o. Products of radicals reduce without factorization:
// for squarefree r, s with g = gcd(r, s), √r·√s = g·√(rs/g²), and rs/g² is
// squarefree again.
func (e *Expr) Mul(o *Expr) *Expr {
	ts := make([]term, 0, len(e.terms)*len(o.terms))
	for _, a := range e.terms {
		for _, b := range o.terms {
			coef := new(big.Rat).Mul(a.coef, b.coef)
			g := new(big.Int).GCD(nil, nil, a.rad, b.rad)
			rad := new(big.Int).Div(a.rad, g)
			rad.Mul(rad, new(big.Int).Div(b.rad, g))
			if g.Cmp(oneInt) != 0 {
				coef.Mul(coef, new(big.Rat).SetInt(g))
			}
			ts = append(ts, term{coef: coef, rad: rad})
		}
	}
	return canonical(ts)
}

// MulRat returns e scaled by the rational r.
func (e *Expr) MulRat(r *big.Rat) *Expr { return e.Mul(FromRat(r)) }

// Inverse returns 1/e exactly, eliminating the divisor's radicals one
// prime at a time. Writing e = A + B·√p, where p is a prime dividing
// some radicand and B√p collects every term whose radicand p divides,
// the conjugate product (A+B√p)(A−B√p) = A² − p·B² carries no radicand
// divisible by p, so each pass strictly shrinks the set of primes in
// play and the recursion bottoms out at a plain rational. Conjugating a
// single term instead would not terminate: cross products of the
// remaining radicals can regenerate the eliminated radicand.
func (e *Expr) Inverse() (*Expr, error) {
	if e.IsZero() {
		return nil, ErrZeroInverse
	}
	if r, ok := e.Rat(); ok {
		return FromRat(new(big.Rat).Inv(r)), nil
	}
	p := smallestPrimeFactor(e.terms[len(e.terms)-1].rad)
	var twice []term
	var m big.Int
	for _, t := range e.terms {
		if m.Mod(t.rad, p).Sign() == 0 {
			twice = append(twice, term{coef: new(big.Rat).Add(t.coef, t.coef), rad: new(big.Int).Set(t.rad)})
		}
	}
	conj := e.Sub(&Expr{terms: twice})
	prod := e.Mul(conj) // √p is gone; it is ℚ-independent of the p-free radicals, so prod ≠ 0
	inv, err := prod.Inverse()
	if err != nil {
		return nil, err
	}
	return conj.Mul(inv), nil
}

// smallestPrimeFactor returns the least prime dividing n ≥ 2.
func smallestPrimeFactor(n *big.Int) *big.Int {
	var m, sq big.Int
	for d := int64(2); ; d++ {
		p := big.NewInt(d)
		if sq.Mul(p, p).Cmp(n) > 0 {
			break
		}
		if m.Mod(n, p).Sign() == 0 {
			return p
		}
	}
	return new(big.Int).Set(n)
}

// approxFloat evaluates e at approxPrec binary precision.
func (e *Expr) approxFloat() *big.Float {
	sum := new(big.Float).SetPrec(approxPrec)
	for _, t := range e.terms {
		v := new(big.Float).SetPrec(approxPrec).SetRat(t.coef)
		if t.rad.Cmp(oneInt) != 0 {
			root := new(big.Float).SetPrec(approxPrec).SetInt(t.rad)
			root.Sqrt(root)
			v.Mul(v, root)
		}
		sum.Add(sum, v)
	}
	return sum
}

// Approx returns a bounded-precision rational approximation of e. Exact
// when e is rational; otherwise correct to approxPrec bits, which callers
// compare against geometric tolerances far coarser than that.
func (e *Expr) Approx() *big.Rat {
	if r, ok := e.Rat(); ok {
		return r
	}
	rat, _ := e.approxFloat().Rat(nil)
	return rat
}

// Sign returns the sign of e's real value: -1, 0, or +1.
func (e *Expr) Sign() int {
	if e.IsZero() {
		return 0
	}
	if r, ok := e.Rat(); ok {
		return r.Sign()
	}
	return e.approxFloat().Sign()
}

// Cmp compares e and o as real numbers.
func (e *Expr) Cmp(o *Expr) int { return e.Sub(o).Sign() }
