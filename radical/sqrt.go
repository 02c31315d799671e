// Package radical: square roots, square-factor extraction, denesting.
package radical

import "math/big"

// squareTrialBound limits trial division in extractSquare. Square factors
// whose prime exceeds the bound survive in the radicand; the form is then
// non-minimal but still consistent, because every arithmetic path runs the
// same extraction.
const squareTrialBound = 1000

// extractSquare splits n ≥ 1 into (s, d) with n = s²·d and d free of
// square factors below squareTrialBound².
func extractSquare(n *big.Int) (*big.Int, *big.Int) {
	rest := new(big.Int).Set(n)
	sq := big.NewInt(1)

	// whole perfect square
	root := new(big.Int).Sqrt(rest)
	if new(big.Int).Mul(root, root).Cmp(rest) == 0 {
		return root, big.NewInt(1)
	}

	var p2, q, r big.Int
	for d := int64(2); d <= squareTrialBound; d++ {
		p2.SetInt64(d * d)
		if p2.Cmp(rest) > 0 {
			break
		}
		for {
			q.QuoRem(rest, &p2, &r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(&q)
			sq.Mul(sq, big.NewInt(d))
		}
	}
	return sq, rest
}

// SqrtRat returns the exact square root of the non-negative rational r:
// an Integer/Rational expression when r is a perfect square, otherwise a
// single-radical expression. √(p/q) is computed as √(p·q)/q so the
// radicand stays integral.
func SqrtRat(r *big.Rat) (*Expr, error) {
	switch r.Sign() {
	case -1:
		return nil, ErrNegativeRadicand
	case 0:
		return Zero(), nil
	}
	n := new(big.Int).Mul(r.Num(), r.Denom())
	s, d := extractSquare(n)
	coef := new(big.Rat).SetFrac(s, r.Denom())
	if d.Cmp(oneInt) == 0 {
		return FromRat(coef), nil
	}
	return canonical([]term{{coef: coef, rad: d}}), nil
}

// Sqrt returns the square root of e.
//
// Rational operands delegate to SqrtRat and stay exact. A two-term operand
// a + b√d denests to √x ± √y when a² − b²·d is a perfect rational square
// (x, y = (a ± √(a²−b²d))/2), which again stays exact. Anything deeper is
// a nested radical outside this representation and degrades to a
// bounded-precision rational approximation — the resolution chosen for the
// open question of symbolic growth in deep irrational gaskets.
func (e *Expr) Sqrt() (*Expr, error) {
	if e.Sign() < 0 {
		return nil, ErrNegativeRadicand
	}
	if e.IsZero() {
		return Zero(), nil
	}
	if r, ok := e.Rat(); ok {
		return SqrtRat(r)
	}
	if out, ok := e.denest(); ok {
		return out, nil
	}
	f := e.approxFloat()
	f.Sqrt(f)
	rat, _ := f.Rat(nil)
	return FromRat(rat), nil
}

// denest attempts √(a + b√d) = √x ± √y for a two-term operand.
func (e *Expr) denest() (*Expr, bool) {
	if len(e.terms) != 2 || e.terms[0].rad.Cmp(oneInt) != 0 {
		return nil, false
	}
	a := e.terms[0].coef
	b := e.terms[1].coef
	d := e.terms[1].rad

	// D = a² − b²·d must be a non-negative perfect rational square.
	disc := new(big.Rat).Mul(b, b)
	disc.Mul(disc, new(big.Rat).SetInt(d))
	disc.Sub(new(big.Rat).Mul(a, a), disc)
	if disc.Sign() < 0 {
		return nil, false
	}
	sd, ok := ratSqrt(disc)
	if !ok {
		return nil, false
	}

	half := big.NewRat(1, 2)
	x := new(big.Rat).Add(a, sd)
	x.Mul(x, half)
	y := new(big.Rat).Sub(a, sd)
	y.Mul(y, half)
	if x.Sign() < 0 || y.Sign() < 0 {
		return nil, false
	}
	sx, err := SqrtRat(x)
	if err != nil {
		return nil, false
	}
	sy, err := SqrtRat(y)
	if err != nil {
		return nil, false
	}
	if b.Sign() < 0 {
		return sx.Sub(sy), true
	}
	return sx.Add(sy), true
}

// ratSqrt returns the exact rational square root of r when both numerator
// and denominator are perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	sn := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(sn, sn).Cmp(r.Num()) != 0 {
		return nil, false
	}
	sd := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(sd, sd).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(sn, sd), true
}
