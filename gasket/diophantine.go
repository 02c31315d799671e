// Package gasket: enumeration of integral seed quadruples.
package gasket

import "github.com/katalvlaran/gasket/exact"

// RootQuadruple is a primitive integral Descartes quadruple
// (-B, B+k, B+n, B+k+n-2μ): the curvatures of an all-integer gasket,
// enclosing circle first.
type RootQuadruple [4]int64

// Reflected returns the fifth curvature of the quintet, B+k+n+2μ: the
// second Descartes solution over the quadruple's first three members,
// obtained by reflecting the fourth (2·(q₀+q₁+q₂) − q₃).
func (q RootQuadruple) Reflected() int64 {
	return 2*(q[0]+q[1]+q[2]) - q[3]
}

// Curvatures returns the quadruple as seed curvatures for Generate.
func (q RootQuadruple) Curvatures() []exact.Number {
	out := make([]exact.Number, len(q))
	for i, k := range q {
		out[i] = exact.Int(k)
	}
	return out
}

// EnumerateRootQuadruples lists every primitive integral root quadruple
// with enclosing curvature B from 1 to maxBend, ordered by B and then by
// the parametrization below.
//
// The quadruples are exactly the (-B, B+k, B+n, B+k+n-2μ) with
//
//	B² + μ² = k·n,  0 ≤ μ ≤ B/√3,  max(2μ, 1) ≤ k ≤ √(B²+μ²),
//	k | B²+μ²,  gcd(B, k, n) = 1,
//
// each satisfying the Descartes identity (Σkᵢ)² = 2·Σkᵢ². A maxBend
// below 1 yields nil.
func EnumerateRootQuadruples(maxBend int64) []RootQuadruple {
	var out []RootQuadruple
	for b := int64(1); b <= maxBend; b++ {
		for mu := int64(0); 3*mu*mu <= b*b; mu++ {
			m := b*b + mu*mu
			k := 2 * mu
			if k < 1 {
				k = 1
			}
			for ; k*k <= m; k++ {
				if m%k != 0 {
					continue
				}
				n := m / k
				if gcd(gcd(b, k), n) != 1 {
					continue
				}
				out = append(out, RootQuadruple{-b, b + k, b + n, b + k + n - 2*mu})
			}
		}
	}
	return out
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
