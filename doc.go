// Package gasket is an exact-arithmetic engine for Apollonian circle
// packings — curvatures and centers stay integers, rationals or radical
// expressions, so tangency survives any depth without float drift.
//
// 🚀 What is gasket?
//
//	A deterministic packing generator built from four layers:
//		• Radical engine: symbolic sums of square roots over ℚ, with exact
//		  multiplication, division by conjugation and root denesting
//		• Exact scalars: a tri-state number (int64 → big.Rat → radical)
//		  with overflow promotion, plus an exact complex pair for centers
//		• Descartes solver: both circles tangent to any mutually tangent
//		  triple, curvature and center
//		• Generator: seed placement, breadth-first generation walk,
//		  duplicate suppression, batch pulls and integral seed enumeration
//
// ✨ Why choose gasket?
//
//   - Exact by default – integer seeds like (-1, 2, 2, 3) give exactly
//     integral curvatures at every generation
//   - Deterministic – identical seeds always yield the identical circle
//     sequence, whether pulled in batches or generated in one shot
//   - Cooperative – context cancellation, circle caps & OnCircle hooks
//   - Pure Go – no cgo, testify is the only test-time dependency
//
// Under the hood, everything is organized under four subpackages:
//
//	radical/   — canonical radical expressions and their field arithmetic
//	exact/     — Number, Complex, tagged lossless serialization
//	descartes/ — the Descartes Circle Theorem over exact values
//	gasket/    — placement, generation runs, root-quadruple enumeration
//
// Quick start:
//
//	res, _ := gasket.Generate(
//	    []exact.Number{exact.Int(-1), exact.Int(2), exact.Int(2), exact.Int(3)}, 3)
//	fmt.Println(len(res.Circles)) // 56
//
// Dive into each subpackage's doc.go for invariants, complexity notes
// and the full error taxonomy.
//
//	go get github.com/katalvlaran/gasket
package gasket
