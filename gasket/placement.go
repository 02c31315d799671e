// Package gasket: exact placement of seed circles in the plane.
package gasket

import (
	"fmt"

	"github.com/katalvlaran/gasket/descartes"
	"github.com/katalvlaran/gasket/exact"
)

// PlaceInitialCircles positions three or four mutually tangent seed
// curvatures in the plane with exact coordinates:
//
//   - the first circle is centered at the origin;
//   - the second sits on the positive x axis at the tangent distance;
//   - the third is triangulated from its tangent distances to the first
//     two, with the positive-y solution chosen;
//   - a fourth curvature, when given, must match one of the two Descartes
//     solutions of the first three and takes that solution's center.
//
// Negative curvatures mark enclosing circles; at most one seed may be
// negative. The returned circles are generation 0, in seed order.
func PlaceInitialCircles(seeds []exact.Number) ([]Circle, error) {
	if len(seeds) != 3 && len(seeds) != 4 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrPlacement, ErrSeedCount, len(seeds))
	}
	for i, s := range seeds {
		if s.IsZero() {
			return nil, fmt.Errorf("%w: %w: seed %d", ErrPlacement, ErrZeroCurvature, i)
		}
	}

	d12, err := tangentDistance(seeds[0], seeds[1])
	if err != nil {
		return nil, err
	}
	d13, err := tangentDistance(seeds[0], seeds[2])
	if err != nil {
		return nil, err
	}
	d23, err := tangentDistance(seeds[1], seeds[2])
	if err != nil {
		return nil, err
	}

	origin := exact.Cmplx(exact.Int(0), exact.Int(0))
	out := []Circle{
		{K: seeds[0], Z: origin},
		{K: seeds[1], Z: exact.Cmplx(d12, exact.Int(0))},
	}

	z3, err := thirdCenter(d12, d13, d23)
	if err != nil {
		return nil, err
	}
	out = append(out, Circle{K: seeds[2], Z: z3})

	if len(seeds) == 4 {
		fourth, err := closeQuadruple(out, seeds[3])
		if err != nil {
			return nil, err
		}
		out = append(out, fourth)
	}
	return out, nil
}

// tangentDistance returns the center distance of two externally or
// internally tangent circles with signed curvatures a and b. With signed
// radii rᵢ = 1/kᵢ the distance is rₐ+r_b for two positive curvatures and
// |r_neg|−r_pos when one circle encloses the other. Two negative
// curvatures, or an inner circle at least as large as its enclosure,
// cannot be tangent and yield ErrPlacement.
func tangentDistance(a, b exact.Number) (exact.Number, error) {
	if a.Sign() < 0 && b.Sign() < 0 {
		return exact.Number{}, fmt.Errorf("%w: two enclosing curvatures", ErrPlacement)
	}
	ra, err := a.Inverse()
	if err != nil {
		return exact.Number{}, fmt.Errorf("%w: %v", ErrPlacement, err)
	}
	rb, err := b.Inverse()
	if err != nil {
		return exact.Number{}, fmt.Errorf("%w: %v", ErrPlacement, err)
	}
	sum := ra.Add(rb)
	if a.Sign() > 0 && b.Sign() > 0 {
		return sum, nil
	}
	d := sum.Neg() // |r_neg| − r_pos
	if d.Sign() < 0 {
		return exact.Number{}, fmt.Errorf("%w: inner circle larger than enclosure", ErrPlacement)
	}
	return d, nil
}

// thirdCenter triangulates the third seed center from the three pairwise
// tangent distances. A zero d12 (concentric first pair) collapses the
// triangulation; the third circle then sits on the x axis at d13.
func thirdCenter(d12, d13, d23 exact.Number) (exact.Complex, error) {
	if d12.IsZero() {
		return exact.Cmplx(d13, exact.Int(0)), nil
	}
	// x = (d12² + d13² − d23²) / (2·d12), y = +√(d13² − x²)
	num := d12.Mul(d12).Add(d13.Mul(d13)).Sub(d23.Mul(d23))
	x, err := num.Div(d12.Add(d12))
	if err != nil {
		return exact.Complex{}, fmt.Errorf("%w: %v", ErrPlacement, err)
	}
	y2 := d13.Mul(d13).Sub(x.Mul(x))
	if y2.Sign() < 0 {
		if y2.Float64() < -defaultTolerance {
			return exact.Complex{}, fmt.Errorf("%w: tangent distances violate the triangle inequality", ErrPlacement)
		}
		// approximation dust on a collinear configuration
		return exact.Cmplx(x, exact.Int(0)), nil
	}
	y, err := y2.Sqrt()
	if err != nil {
		return exact.Complex{}, fmt.Errorf("%w: %v", ErrPlacement, err)
	}
	return exact.Cmplx(x, y), nil
}

// closeQuadruple solves the Descartes circles of the placed triple and
// returns the one whose curvature equals k4.
func closeQuadruple(triple []Circle, k4 exact.Number) (Circle, error) {
	if k4.Sign() < 0 && triple[0].K.Sign() < 0 {
		return Circle{}, fmt.Errorf("%w: two enclosing curvatures", ErrPlacement)
	}
	sols, err := descartes.Solve(triple[0].solver(), triple[1].solver(), triple[2].solver())
	if err != nil {
		return Circle{}, fmt.Errorf("%w: %w: %v", ErrPlacement, ErrUnsolvable, err)
	}
	for _, s := range sols {
		if s.K.Equal(k4) {
			return Circle{K: s.K, Z: s.Z}, nil
		}
	}
	return Circle{}, fmt.Errorf("%w: %w: %s matches neither solution", ErrPlacement, ErrUnsolvable, k4)
}
