// Package descartes: the Descartes Circle Theorem over exact numbers.
package descartes

import (
	"errors"
	"math"

	"github.com/katalvlaran/gasket/exact"
)

// ErrDegenerateCircle is returned when three circles admit no tangent
// circle with nonzero curvature.
var ErrDegenerateCircle = errors.New("descartes: degenerate configuration")

// tangencyTol bounds the residual accepted when matching a center
// candidate to a curvature.
const tangencyTol = 1e-10

// Circle is a curvature with an exact center. Curvature is signed:
// negative for a circle enclosing the packing, positive otherwise.
type Circle struct {
	K exact.Number
	Z exact.Complex
}

// Radius returns |1/K|.
func (c Circle) Radius() (exact.Number, error) {
	inv, err := c.K.Inverse()
	if err != nil {
		return exact.Number{}, err
	}
	return inv.Abs(), nil
}

// FourthCurvatures returns both Descartes solutions for the curvature
// tangent to three mutually tangent circles with curvatures k1, k2, k3:
// k₁+k₂+k₃ ± 2√(k₁k₂+k₂k₃+k₃k₁). A negative discriminant means the
// inputs are not a tangent triple and yields ErrDegenerateCircle.
func FourthCurvatures(k1, k2, k3 exact.Number) (plus, minus exact.Number, err error) {
	disc := k1.Mul(k2).Add(k2.Mul(k3)).Add(k3.Mul(k1))
	if disc.Sign() < 0 {
		return exact.Number{}, exact.Number{}, ErrDegenerateCircle
	}
	root, err := disc.Sqrt()
	if err != nil {
		return exact.Number{}, exact.Number{}, ErrDegenerateCircle
	}
	sum := k1.Add(k2).Add(k3)
	twice := root.Add(root)
	return sum.Add(twice), sum.Sub(twice), nil
}

// Solve returns the circles tangent to the three mutually tangent inputs,
// one per Descartes curvature solution. Zero-curvature solutions (lines)
// are dropped; if both solutions are lines the result is
// ErrDegenerateCircle. A repeated root is reported twice, so callers see
// one circle per sign branch.
func Solve(c1, c2, c3 Circle) ([]Circle, error) {
	plus, minus, err := FourthCurvatures(c1.K, c2.K, c3.K)
	if err != nil {
		return nil, err
	}

	sum, twice, err := centerTerms(c1, c2, c3)
	if err != nil {
		return nil, err
	}

	parents := []Circle{c1, c2, c3}
	out := make([]Circle, 0, 2)
	if plus.Equal(minus) {
		// Repeated curvature root: two distinct tangent circles share the
		// curvature and the center branches are one circle each.
		if plus.IsZero() {
			return nil, ErrDegenerateCircle
		}
		for _, numer := range []exact.Complex{sum.Add(twice), sum.Sub(twice)} {
			z4, err := numer.Div(exact.RealC(plus))
			if err != nil {
				return nil, ErrDegenerateCircle
			}
			c := Circle{K: plus, Z: z4}
			if worstResidual(c, parents) > tangencyTol {
				return nil, ErrDegenerateCircle
			}
			out = append(out, c)
		}
		return out, nil
	}
	for _, k4 := range []exact.Number{plus, minus} {
		if k4.IsZero() {
			continue
		}
		c, err := matchCenter(k4, sum, twice, parents)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, ErrDegenerateCircle
	}
	return out, nil
}

// Center returns the center of the tangent circle with curvature k4,
// which must be one of the two FourthCurvatures solutions. The sign
// branch of the complex root is resolved against the inputs the same way
// Solve resolves it.
func Center(c1, c2, c3 Circle, k4 exact.Number) (exact.Complex, error) {
	if k4.IsZero() {
		return exact.Complex{}, ErrDegenerateCircle
	}
	sum, twice, err := centerTerms(c1, c2, c3)
	if err != nil {
		return exact.Complex{}, err
	}
	c, err := matchCenter(k4, sum, twice, []Circle{c1, c2, c3})
	if err != nil {
		return exact.Complex{}, err
	}
	return c.Z, nil
}

// centerTerms computes the complex Descartes pieces
// Σwᵢ and 2√(w₁w₂ + w₂w₃ + w₃w₁) with wᵢ = kᵢzᵢ.
func centerTerms(c1, c2, c3 Circle) (sum, twice exact.Complex, err error) {
	w1 := c1.Z.Scale(c1.K)
	w2 := c2.Z.Scale(c2.K)
	w3 := c3.Z.Scale(c3.K)
	sum = w1.Add(w2).Add(w3)
	root, err := w1.Mul(w2).Add(w2.Mul(w3)).Add(w3.Mul(w1)).Sqrt()
	if err != nil {
		return exact.Complex{}, exact.Complex{}, ErrDegenerateCircle
	}
	return sum, root.Add(root), nil
}

// worstResidual is the largest tangency residual of c against the parents.
func worstResidual(c Circle, parents []Circle) float64 {
	res := 0.0
	for _, p := range parents {
		if r := tangencyResidual(c, p); r > res {
			res = r
		}
	}
	return res
}

// matchCenter resolves the center sign branch for curvature k4 by picking
// the candidate with the smaller worst-case tangency residual against the
// three parents.
func matchCenter(k4 exact.Number, sum, twice exact.Complex, parents []Circle) (Circle, error) {
	best := Circle{}
	bestRes := math.Inf(1)
	for _, numer := range []exact.Complex{sum.Add(twice), sum.Sub(twice)} {
		z4, err := numer.Div(exact.RealC(k4))
		if err != nil {
			return Circle{}, ErrDegenerateCircle
		}
		cand := Circle{K: k4, Z: z4}
		if res := worstResidual(cand, parents); res < bestRes {
			best, bestRes = cand, res
		}
	}
	if bestRes > tangencyTol {
		return Circle{}, ErrDegenerateCircle
	}
	return best, nil
}

// tangencyResidual measures |dist(centers) − |1/kₐ + 1/k_b|| in float64.
// With signed radii rᵢ = 1/kᵢ this single form covers external tangency
// and internal tangency against an enclosing circle.
func tangencyResidual(a, b Circle) float64 {
	dre := a.Z.Re.Float64() - b.Z.Re.Float64()
	dim := a.Z.Im.Float64() - b.Z.Im.Float64()
	dist := math.Hypot(dre, dim)
	want := math.Abs(1/a.K.Float64() + 1/b.K.Float64())
	return math.Abs(dist - want)
}
