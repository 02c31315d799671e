// Package radical: parsing of the canonical text form.
package radical

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse reads the text form produced by String: terms of the shape "C",
// "sqrt(N)" or "C*sqrt(N)" joined by " + " / " - ", with an optional
// leading minus on the first term. Non-canonical input (duplicate or
// non-squarefree radicands) is normalized on the way in, so
// Parse(e.String()).Equal(e) holds for every e.
func Parse(s string) (*Expr, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	neg := false
	first := fields[0]
	if strings.HasPrefix(first, "-") {
		neg = true
		first = strings.TrimPrefix(first, "-")
	}
	t, err := parseTerm(first, neg)
	if err != nil {
		return nil, err
	}
	ts := []term{t}

	rest := fields[1:]
	for len(rest) > 0 {
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: dangling operator in %q", ErrParse, s)
		}
		var negTerm bool
		switch rest[0] {
		case "+":
			negTerm = false
		case "-":
			negTerm = true
		default:
			return nil, fmt.Errorf("%w: expected + or -, got %q", ErrParse, rest[0])
		}
		t, err = parseTerm(rest[1], negTerm)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
		rest = rest[2:]
	}
	return canonical(ts), nil
}

// parseTerm reads one "C", "sqrt(N)" or "C*sqrt(N)" token.
func parseTerm(tok string, neg bool) (term, error) {
	coefStr, radStr := tok, ""
	if i := strings.Index(tok, "sqrt("); i >= 0 {
		if !strings.HasSuffix(tok, ")") {
			return term{}, fmt.Errorf("%w: unterminated sqrt in %q", ErrParse, tok)
		}
		radStr = tok[i+len("sqrt(") : len(tok)-1]
		switch {
		case i == 0:
			coefStr = "1"
		case tok[i-1] == '*':
			coefStr = tok[:i-1]
		default:
			return term{}, fmt.Errorf("%w: missing * before sqrt in %q", ErrParse, tok)
		}
	}

	coef, ok := new(big.Rat).SetString(coefStr)
	if !ok {
		return term{}, fmt.Errorf("%w: bad coefficient %q", ErrParse, coefStr)
	}
	if neg {
		coef.Neg(coef)
	}
	if radStr == "" {
		return term{coef: coef, rad: big.NewInt(1)}, nil
	}
	rad, ok := new(big.Int).SetString(radStr, 10)
	if !ok || rad.Sign() < 1 {
		return term{}, fmt.Errorf("%w: bad radicand %q", ErrParse, radStr)
	}
	return newTerm(coef, rad), nil
}
