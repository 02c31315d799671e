// Package exact: lossless tagged text codec and lossy numeric views.
package exact

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/gasket/radical"
)

// String renders the plain human-readable value: "6", "3/2" or a radical
// expression such as "3 + 2*sqrt(3)".
func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindRat:
		return n.r.RatString()
	default:
		return n.s.String()
	}
}

// FormatExact renders n in the lossless tagged form used for hashing and
// persistence: "int:6", "frac:3/2" or "sym:3 + 2*sqrt(3)". Normalization
// keeps the state canonical per value, so the output is deterministic and
// ParseExact restores the exact state.
func FormatExact(n Number) string {
	return n.kind.String() + ":" + n.String()
}

// ParseExact reads the tagged form produced by FormatExact.
func ParseExact(s string) (Number, error) {
	tag, body, ok := strings.Cut(s, ":")
	if !ok {
		return Number{}, fmt.Errorf("%w: missing tag in %q", ErrParse, s)
	}
	switch tag {
	case "int":
		v, err := strconv.ParseInt(body, 10, 64)
		if err != nil {
			return Number{}, fmt.Errorf("%w: bad integer %q", ErrParse, body)
		}
		return Int(v), nil
	case "frac":
		r, ok := new(big.Rat).SetString(body)
		if !ok {
			return Number{}, fmt.Errorf("%w: bad rational %q", ErrParse, body)
		}
		return fromRat(r), nil
	case "sym":
		e, err := radical.Parse(body)
		if err != nil {
			return Number{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return fromExpr(e), nil
	default:
		return Number{}, fmt.Errorf("%w: unknown tag %q", ErrParse, tag)
	}
}

// Approx returns a rational approximation of n. Exact for integer and
// rational states; correct to the working precision for symbolic ones.
func (n Number) Approx() *big.Rat {
	if n.kind == KindSym {
		return n.s.Approx()
	}
	return n.bigRat()
}

// Float64 returns the nearest float64 to n. Lossy; rendering only.
func (n Number) Float64() float64 {
	f, _ := new(big.Float).SetRat(n.Approx()).Float64()
	return f
}
