// Package gasket generates Apollonian circle packings with exact
// arithmetic, from seed curvatures to any requested depth.
//
// A packing starts from three or four mutually tangent seed circles.
// Each triple of mutually tangent circles admits two more tangent
// circles by the Descartes Circle Theorem; repeating the construction on
// every new triple fills the gasket. The generator walks these triples
// breadth-first, so circles are emitted in non-decreasing generation
// order and the whole process is deterministic for a given seed set.
//
// # Pipeline
//
//  1. PlaceInitialCircles positions the seed curvatures in the plane
//     with exact coordinates: the first circle at the origin, the second
//     on the positive x axis, the third resolved by tangent-distance
//     triangulation, and an optional fourth solved from the first three.
//  2. NewRun seeds a breadth-first walk over mutually tangent triples.
//  3. Next and All pull generated circles in batches or to completion;
//     Generate wraps the three steps for the common one-shot case.
//
// Every curvature and center stays in the exact.Number representation,
// so integer-curvature packings such as (-1, 2, 2, 3) produce exactly
// integral curvatures at every depth. Duplicate suppression combines a
// hash of the exact tagged form with a numeric sweep at the configured
// tolerance, which also catches rediscoveries of a triple's fourth
// neighbor.
//
// # Usage
//
//	res, err := gasket.Generate(
//	    []exact.Number{exact.Int(-1), exact.Int(2), exact.Int(2), exact.Int(3)},
//	    3,
//	)
//	if err != nil { ... }
//	for _, c := range res.Circles {
//	    fmt.Println(c.Gen, c.K, c.Z)
//	}
//
// Long runs cooperate with context cancellation via WithContext, and
// WithMaxCircles caps the output for untrusted depth values.
// EnumerateRootQuadruples lists the integral seed quadruples up to a
// bound on the enclosing curvature, for callers that want every
// all-integer gasket in range.
//
// # Errors
//
//   - ErrSeedCount: not three or four seed curvatures.
//   - ErrZeroCurvature: a seed curvature is zero.
//   - ErrPlacement: the seeds admit no mutually tangent placement.
//   - ErrUnsolvable: a fourth seed curvature does not close the triple.
//   - ErrGeneration: a walk step failed to solve a triple.
//   - ErrOptionViolation: an invalid Option or depth was supplied.
package gasket
