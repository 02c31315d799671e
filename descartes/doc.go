// Package descartes solves for the circles tangent to three mutually
// tangent circles, keeping curvatures and centers exact.
//
// What
//
//   - Circle: a curvature paired with an exact complex center. Negative
//     curvature marks an enclosing circle; zero curvature (a straight
//     line) is outside the model.
//   - FourthCurvatures: both solutions of the Descartes Circle Theorem
//     k₄ = k₁+k₂+k₃ ± 2√(k₁k₂+k₂k₃+k₃k₁).
//   - Center: the center for one known curvature solution, from the
//     complex Descartes theorem k₄z₄ = Σkᵢzᵢ ± 2√(k₁k₂z₁z₂+k₂k₃z₂z₃+k₃k₁z₃z₁).
//   - Solve: full circles for both solutions.
//
// Why
//
// The theorem gives two curvature candidates and, independently, two
// center candidates per curvature. The sign choices do not line up
// algebraically, so each curvature is matched with the center whose
// circle is actually tangent to all three inputs.
//
// Complexity
//
// O(1) field operations per solve; exact unless a center root requires a
// nested radical, in which case the affected coordinate degrades to a
// bounded-precision rational.
//
// Errors
//
//   - ErrDegenerateCircle: the inputs admit no tangent circle (negative
//     discriminant) or only straight-line solutions.
package descartes
