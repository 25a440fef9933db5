// Released under an MIT license. See LICENSE.

// Package format renders values in the notations front ends present:
// mixed numbers, fixed and repeating decimals, continued fractions, and
// scientific notation.
package format

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
	"github.com/ratmath/ratmath/internal/convert/contfrac"
	"github.com/ratmath/ratmath/internal/convert/decimal"
	"github.com/ratmath/ratmath/internal/engine/arith"
)

// Mixed formats the rational r as a mixed number "a..b/c", matching the
// literal form the parser accepts. Values between -1 and 1 have no
// whole part and format as plain fractions.
func Mixed(r *rational.T) string {
	if r.IsInt() {
		return r.String()
	}

	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r = r.Neg()
	}

	whole, rem := new(big.Int).QuoRem(r.Num(), r.Den(), new(big.Int))

	if whole.Sign() == 0 {
		return sign + r.String()
	}

	return sign + whole.String() + ".." + rem.String() + "/" + r.Den().String()
}

// Fixed formats the value v as a decimal in the base b rounded to the
// given number of places. Intervals format endpointwise as "low:high".
func Fixed(v value.I, b *base.T, places int) string {
	if t, ok := v.(*interval.T); ok {
		return decimal.Fixed(t.Low(), b, places) + ":" + decimal.Fixed(t.High(), b, places)
	}

	r, _ := arith.Rational(v)

	return decimal.Fixed(r, b, places)
}

// Repeating formats the value v exactly in the base b using repeating
// decimal notation. Intervals format endpointwise as "low:high".
func Repeating(v value.I, b *base.T) (string, error) {
	if t, ok := v.(*interval.T); ok {
		lo, err := decimal.Repeating(t.Low(), b, decimal.DefaultMaxPeriodDigits)
		if err != nil {
			return "", err
		}

		hi, err := decimal.Repeating(t.High(), b, decimal.DefaultMaxPeriodDigits)
		if err != nil {
			return "", err
		}

		return lo + ":" + hi, nil
	}

	r, _ := arith.Rational(v)

	return decimal.Repeating(r, b, decimal.DefaultMaxPeriodDigits)
}

// RepeatingWithPeriod is Repeating for a rational, along with the
// length of the repeating block.
func RepeatingWithPeriod(r *rational.T, b *base.T) (string, int, error) {
	return decimal.RepeatingWithPeriod(r, b, decimal.DefaultMaxPeriodDigits)
}

// ContinuedFraction formats the rational r as "[a0; a1, a2, ...]".
func ContinuedFraction(r *rational.T) string {
	return contfrac.FromRational(r).String()
}

// Scientific formats the rational r in scientific notation with the
// given number of significant digits: "1.2346E5".
func Scientific(r *rational.T, precision int) string {
	if precision < 1 {
		precision = 1
	}

	if r.IsZero() {
		return pad("0", precision) + "E0"
	}

	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r = r.Neg()
	}

	exp := exponent(r)

	// Mantissa scaled to precision digits, rounded half away from zero.
	m := mantissa(r, exp, precision)

	// Rounding can carry over: 9.99 at precision 2 becomes 10.
	if len(m) > precision {
		m = m[:len(m)-1]
		exp++
	}

	s := m[:1]
	if len(m) > 1 {
		s += "." + m[1:]
	}

	return sign + pad(s, precision) + "E" + itoa(exp)
}

// exponent returns e with 10^e <= r < 10^(e+1) for a positive r.
func exponent(r *rational.T) int {
	e := len(r.Num().String()) - len(r.Den().String())

	for ; cmpPow(r, e) < 0; e-- {
	}

	for ; cmpPow(r, e+1) >= 0; e++ {
	}

	return e
}

// cmpPow compares r with 10^e.
func cmpPow(r *rational.T, e int) int {
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Den())

	if e >= 0 {
		d.Mul(d, pow10(e))
	} else {
		n.Mul(n, pow10(-e))
	}

	return n.Cmp(d)
}

// mantissa returns the first precision digits of r / 10^exp, rounded.
func mantissa(r *rational.T, exp, precision int) string {
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Den())

	shift := precision - 1 - exp
	if shift >= 0 {
		n.Mul(n, pow10(shift))
	} else {
		d.Mul(d, pow10(-shift))
	}

	// Round half away from zero.
	n.Mul(n, big.NewInt(2))
	n.Add(n, d)
	n.Div(n, new(big.Int).Mul(d, big.NewInt(2)))

	return n.String()
}

func pow10(e int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
}

func pad(s string, precision int) string {
	digits := len(strings.ReplaceAll(s, ".", ""))
	if digits >= precision {
		return s
	}

	if !strings.ContainsRune(s, '.') {
		s += "."
	}

	return s + strings.Repeat("0", precision-digits)
}

func itoa(e int) string {
	return big.NewInt(int64(e)).String()
}
