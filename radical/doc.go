// Package radical implements the symbolic subsystem of the exact-arithmetic
// stack: immutable linear combinations of square roots with rational
// coefficients,
//
//	c₀ + c₁·√r₁ + c₂·√r₂ + … ,  cᵢ ∈ ℚ, rᵢ distinct squarefree integers > 1.
//
// What
//
//   - Expr — canonical, immutable value; the radicand-1 term carries the
//     rational part.
//   - Exact Add, Sub, Mul, Neg over the combination ring.
//   - Exact Inverse by iterated conjugation: each pass eliminates one
//     radical from the divisor, so division never approximates.
//   - Sqrt with denesting: √(a+b√d) is rewritten as √x ± √y whenever
//     a²−b²d is a perfect rational square; non-denestable radicals fall
//     back to a bounded-precision rational approximation (192-bit), the
//     package's documented degradation point.
//   - IsRational / Rat detection, Sign, Cmp, Equal.
//   - String/Parse — canonical text that round-trips exactly.
//
// Why
//
//	Curvature and center formulas for tangent-circle systems introduce
//	square roots of rationals. Keeping those radicals symbolic instead of
//	approximating them preserves exactness through arbitrarily many
//	arithmetic steps, and downstream layers can still detect when a result
//	simplifies back to a plain rational.
//
// Canonical form
//
//	Radicands are squarefree (square factors are extracted into the
//	coefficient), terms are sorted by radicand, and zero-coefficient terms
//	are dropped. Two Exprs are Equal iff their canonical term lists match,
//	which also makes String deterministic.
//
// Complexity (t = number of terms)
//
//   - Add/Sub: O(t) merge.
//   - Mul:     O(t²) pairwise products.
//   - Inverse: one conjugation pass per distinct radical in the divisor.
//
// Errors
//
//   - ErrNegativeRadicand — Sqrt of a negative value.
//   - ErrZeroInverse      — Inverse of the zero expression.
//   - ErrParse            — malformed text passed to Parse.
package radical
