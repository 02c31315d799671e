// Package gasket: numeric tangency verification.
package gasket

import "math"

// VerifyTangency reports whether a and b touch within tol: the center
// distance must equal |1/ka + 1/kb|, the signed-radius form that covers
// both external tangency and internal tangency against an enclosing
// circle.
func VerifyTangency(a, b Circle, tol float64) bool {
	ka, ax, ay := a.Approx()
	kb, bx, by := b.Approx()
	dist := math.Hypot(ax-bx, ay-by)
	want := math.Abs(1/ka + 1/kb)
	return math.Abs(dist-want) <= tol
}
