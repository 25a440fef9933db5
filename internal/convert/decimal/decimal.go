// Released under an MIT license. See LICENSE.

// Package decimal converts between positional (decimal) notation and
// exact values.
//
// Three literal families are handled, all generalized to an arbitrary
// numeral base:
//
//	1.25#0     exact terminating decimal
//	0.1#6      repeating decimal (non-repeating prefix, repeating block)
//	1.23       unmarked decimal: the half-ulp interval [1.225, 1.235]
//	1.23[...]  uncertainty bracket: an interval built from the base value
//
// Long digit runs can be written {d~n}, meaning the digit d repeated n
// times, on both the parsing and producing sides.
package decimal

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

// DefaultMaxPeriodDigits bounds the search for a repeating decimal's
// period. Denominators whose period is longer report "period too long"
// instead of looping unboundedly.
const DefaultMaxPeriodDigits = 10000

// DefaultRunLength is the shortest digit run that Compress rewrites
// into {d~n} form.
const DefaultRunLength = 6

// ParseInt converts a digit string in the base b to an integer.
func ParseInt(s string, b *base.T) (*big.Int, error) {
	if s == "" {
		return nil, fault.New(fault.MalformedLiteral, "empty digit string")
	}

	radix := big.NewInt(int64(b.Base()))
	v := new(big.Int)

	for _, r := range s {
		d, err := b.DigitToValue(r)
		if err != nil {
			return nil, err
		}

		v.Mul(v, radix)
		v.Add(v, big.NewInt(int64(d)))
	}

	return v, nil
}

// Parse converts an unsigned decimal literal in the base b to an exact
// value: a rational for marked (exact) forms, an interval for unmarked
// decimals and uncertainty brackets.
func Parse(s string, b *base.T) (value.I, error) {
	expanded, err := Expand(s)
	if err != nil {
		return nil, err
	}

	s = expanded

	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") {
			return nil, fault.Newf(fault.InvalidUncertainty, "'%s' is missing a closing bracket", s)
		}

		return parseUncertainty(s[:i], s[i+1:len(s)-1], b)
	}

	if i := strings.IndexByte(s, '#'); i >= 0 {
		return parseRepeating(s[:i], s[i+1:], b)
	}

	if !strings.ContainsRune(s, '.') {
		v, err := ParseInt(s, b)
		if err != nil {
			return nil, err
		}

		return rational.FromBig(new(big.Rat).SetInt(v)), nil
	}

	// An unmarked decimal does not claim exactness: it denotes the
	// interval of radius one half of the last printed digit.
	x, frac, err := exact(s, b)
	if err != nil {
		return nil, err
	}

	if frac == 0 {
		return x, nil
	}

	h, err := rational.New(big.NewInt(1), scale(b, frac, 2))
	if err != nil {
		return nil, err
	}

	return interval.New(x.Sub(h), x.Add(h)), nil
}

// exact converts a plain decimal string to its exact rational value,
// also reporting the number of fractional digits.
func exact(s string, b *base.T) (*rational.T, int, error) {
	whole, frac := s, ""

	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]

		if strings.ContainsRune(frac, '.') {
			return nil, 0, fault.Newf(fault.MalformedLiteral, "'%s' has more than one point", s)
		}
	}

	if whole == "" && frac == "" {
		return nil, 0, fault.Newf(fault.MalformedLiteral, "'%s' has no digits", s)
	}

	if whole == "" {
		whole = "0"
	}

	if frac == "" {
		v, err := ParseInt(whole, b)
		if err != nil {
			return nil, 0, err
		}

		return rational.FromBig(new(big.Rat).SetInt(v)), 0, nil
	}

	num, err := ParseInt(whole+frac, b)
	if err != nil {
		return nil, 0, err
	}

	r, err := rational.New(num, scale(b, len(frac), 1))
	if err != nil {
		return nil, 0, err
	}

	return r, len(frac), nil
}

// parseRepeating converts a '#'-marked literal. For the literal AB#C
// with n non-repeating fractional digits and m repeating digits, the
// exact value is (ABC - AB) / (b^n * (b^m - 1)). A repeating block of
// "0" marks an exact terminating decimal.
func parseRepeating(head, rep string, b *base.T) (value.I, error) {
	if rep == "" {
		return nil, fault.Newf(fault.MalformedLiteral, "'%s#' is missing its repeating digits", head)
	}

	if !b.IsValidDigitString(rep) {
		return nil, fault.Newf(fault.MalformedLiteral, "'%s' is not a valid digit string", rep)
	}

	if strings.Trim(rep, "0") == "" {
		r, _, err := exact(head, b)

		return r, err
	}

	whole, frac := head, ""
	if i := strings.IndexByte(head, '.'); i >= 0 {
		whole, frac = head[:i], head[i+1:]
	}

	if whole == "" {
		whole = "0"
	}

	ab, err := ParseInt(whole+frac, b)
	if err != nil {
		return nil, err
	}

	abc, err := ParseInt(whole+frac+rep, b)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Sub(abc, ab)

	bm := scale(b, len(rep), 1)
	bm.Sub(bm, big.NewInt(1))

	den := new(big.Int).Mul(scale(b, len(frac), 1), bm)

	return rational.New(num, den)
}

// parseUncertainty converts an uncertainty bracket. The payload is
// either a range (digits appended to the base value to form the two
// endpoints), a symmetric offset +-k, or a relative offset +p,-n.
func parseUncertainty(head, payload string, b *base.T) (value.I, error) {
	if head == "" || payload == "" {
		return nil, fault.New(fault.InvalidUncertainty, "empty uncertainty bracket")
	}

	if i := strings.IndexByte(payload, ':'); i >= 0 {
		return parseRange(head, payload[:i], payload[i+1:], b)
	}

	if strings.HasPrefix(payload, "+-") || strings.HasPrefix(payload, "-+") {
		k, err := offset(head, payload[2:], b)
		if err != nil {
			return nil, err
		}

		x, _, err := exact(head, b)
		if err != nil {
			return nil, err
		}

		return interval.New(x.Sub(k), x.Add(k)), nil
	}

	plus, minus, ok := split(payload)
	if !ok {
		return nil, fault.Newf(fault.InvalidUncertainty, "'%s' is not a valid uncertainty", payload)
	}

	p, err := offset(head, plus, b)
	if err != nil {
		return nil, err
	}

	n, err := offset(head, minus, b)
	if err != nil {
		return nil, err
	}

	x, _, err := exact(head, b)
	if err != nil {
		return nil, err
	}

	return interval.New(x.Sub(n), x.Add(p)), nil
}

// parseRange builds the endpoints of base[lo:hi] by appending the digit
// strings lo and hi to the base value.
func parseRange(head, lo, hi string, b *base.T) (value.I, error) {
	if !b.IsValidDigitString(lo) || !b.IsValidDigitString(hi) {
		return nil, fault.Newf(fault.InvalidUncertainty, "'%s:%s' is not a valid uncertainty range", lo, hi)
	}

	x, _, err := exact(head+lo, b)
	if err != nil {
		return nil, err
	}

	y, _, err := exact(head+hi, b)
	if err != nil {
		return nil, err
	}

	return interval.New(x, y), nil
}

// split breaks a relative payload into its + and - digit strings,
// accepting the two parts in either order.
func split(payload string) (plus, minus string, ok bool) {
	parts := strings.SplitN(payload, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	for _, p := range parts {
		switch {
		case strings.HasPrefix(p, "+"):
			plus = p[1:]
		case strings.HasPrefix(p, "-"):
			minus = p[1:]
		default:
			return "", "", false
		}
	}

	return plus, minus, plus != "" && minus != ""
}

// offset converts an uncertainty digit string to the rational it
// offsets the base value by. With a fractional base value the digits
// are scaled to start at the place following the last printed digit;
// with an integer base value they apply unscaled.
func offset(head, digits string, b *base.T) (*rational.T, error) {
	if !b.IsValidDigitString(digits) {
		return nil, fault.Newf(fault.InvalidUncertainty, "'%s' is not a valid uncertainty offset", digits)
	}

	k, err := ParseInt(digits, b)
	if err != nil {
		return nil, err
	}

	dot := strings.IndexByte(head, '.')
	if dot < 0 {
		return rational.FromBig(new(big.Rat).SetInt(k)), nil
	}

	frac := len(head) - dot - 1

	return rational.New(k, scale(b, frac+len(digits), 1))
}

// scale returns m * b^n.
func scale(b *base.T, n int, m int64) *big.Int {
	radix := big.NewInt(int64(b.Base()))
	e := new(big.Int).Exp(radix, big.NewInt(int64(n)), nil)

	return e.Mul(e, big.NewInt(m))
}
