// Package gasket: the circle entity, hashing, and seed fingerprints.
package gasket

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/katalvlaran/gasket/descartes"
	"github.com/katalvlaran/gasket/exact"
)

// Circle is one member of a packing: a signed exact curvature, an exact
// center, and the generation at which it was produced (seeds are
// generation 0). Within a Run each circle additionally carries its
// 1-based emission ID, the IDs of the three circles it was solved from
// (zero for seeds), and the IDs of every tangent partner known when the
// circle was pulled.
type Circle struct {
	K   exact.Number
	Z   exact.Complex
	Gen int

	ID       int64
	Parents  [3]int64
	Tangents []int64
}

// Radius returns |1/K|.
func (c Circle) Radius() (exact.Number, error) {
	return c.solver().Radius()
}

// Approx returns float64 views (curvature, center x, center y) for
// rendering. Lossy; never feed these back into generation.
func (c Circle) Approx() (k, x, y float64) {
	x, y = c.Z.Approx()
	return c.K.Float64(), x, y
}

// HashKey returns a hex SHA-256 over the lossless tagged forms of the
// curvature and both center coordinates. Equal exact values produce
// equal keys, which makes the key usable for duplicate suppression.
func (c Circle) HashKey() string {
	h := sha256.New()
	h.Write([]byte(exact.FormatExact(c.K)))
	h.Write([]byte{';'})
	h.Write([]byte(exact.FormatExact(c.Z.Re)))
	h.Write([]byte{';'})
	h.Write([]byte(exact.FormatExact(c.Z.Im)))
	return hex.EncodeToString(h.Sum(nil))
}

// solver converts to the descartes representation.
func (c Circle) solver() descartes.Circle {
	return descartes.Circle{K: c.K, Z: c.Z}
}

// SeedHash fingerprints a seed curvature set: the tagged forms are
// sorted, joined and hashed, so the fingerprint is independent of seed
// order and stable across runs and processes.
func SeedHash(seeds []exact.Number) string {
	tags := make([]string, len(seeds))
	for i, s := range seeds {
		tags[i] = exact.FormatExact(s)
	}
	sort.Strings(tags)
	sum := sha256.Sum256([]byte(strings.Join(tags, ",")))
	return hex.EncodeToString(sum[:])
}
