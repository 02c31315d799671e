// Package exact implements an exact scalar number for circle-packing
// arithmetic, together with an exact complex pair built from two of them.
//
// What
//
//   - Number: a tri-state scalar that is an int64 integer, a big.Rat
//     rational, or a symbolic radical expression, whichever is the
//     simplest faithful representation of its value.
//   - Complex: an exact complex value with Number real and imaginary
//     parts, supporting field arithmetic and principal square roots.
//   - A tagged text codec (FormatExact / ParseExact) that round-trips
//     values without precision loss, and clearly lossy Approx / Float64
//     accessors for rendering.
//
// Why
//
// Curvatures and centers in a circle packing are related by square roots
// of products of earlier values. Floating point drifts after a few
// generations and breaks tangency checks; plain rationals cannot hold
// √3. Number keeps every value exact for as long as the representation
// allows and demotes each result to the cheapest of the three states, so
// integer-curvature packings never pay the symbolic cost.
//
// Representation invariant
//
// After every operation the value is normalized downward: a symbolic
// result that is rational becomes a Rational, and a rational result with
// unit denominator that fits int64 becomes an Integer. Integer overflow
// promotes upward to Rational instead of wrapping.
//
// Comparison semantics
//
// Equal and Cmp are exact whenever both operands are Integer or
// Rational. When a symbolic operand is involved, equality falls back to
// a high-precision numeric test against a tolerance far coarser than the
// working precision, because non-denestable roots are carried as
// bounded-precision rationals.
//
// Complexity
//
// Integer operations are O(1). Rational operations inherit big.Rat
// costs. Symbolic operations are linear in the number of radical terms,
// except division, which eliminates one radical per conjugation pass.
//
// Errors
//
//   - ErrDivisionByZero: Div or Inverse with a zero divisor.
//   - ErrNegativeSqrt: Sqrt of a negative real value.
//   - ErrParse: ParseExact rejected its input.
package exact
