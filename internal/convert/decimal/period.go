// Released under an MIT license. See LICENSE.

package decimal

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

// Period reports the shape of the expansion of 1/den in the base b: the
// length of the non-repeating prefix and the length of the repeating
// block. A period of zero means the expansion terminates.
//
// The prefix length is the number of factors of b that must be stripped
// from den; the period is the multiplicative order of b modulo what
// remains, found by iterated multiplication and bounded by maxDigits.
func Period(den *big.Int, b *base.T, maxDigits int) (prefix, period int, err error) {
	if den.Sign() <= 0 {
		return 0, 0, fault.New(fault.DivisionByZero, "Denominator cannot be zero")
	}

	radix := big.NewInt(int64(b.Base()))
	one := big.NewInt(1)

	d := new(big.Int).Set(den)

	for {
		g := new(big.Int).GCD(nil, nil, d, radix)
		if g.Cmp(one) == 0 {
			break
		}

		d.Div(d, g)
		prefix++
	}

	if d.Cmp(one) == 0 {
		return prefix, 0, nil
	}

	pow := new(big.Int).Mod(radix, d)

	for period = 1; pow.Cmp(one) != 0; period++ {
		if period > maxDigits {
			return 0, 0, fault.New(fault.PeriodTooLong, "period too long")
		}

		pow.Mul(pow, radix)
		pow.Mod(pow, d)
	}

	return prefix, period, nil
}

// Repeating converts the rational r to its exact positional notation in
// the base b: a plain integer, a terminating decimal marked with #0, or
// a repeating decimal with the repeating block after #. Parsing the
// result recovers r exactly.
func Repeating(r *rational.T, b *base.T, maxDigits int) (string, error) {
	s, _, err := RepeatingWithPeriod(r, b, maxDigits)

	return s, err
}

// RepeatingWithPeriod is Repeating along with the detected period.
func RepeatingWithPeriod(r *rational.T, b *base.T, maxDigits int) (string, int, error) {
	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r = r.Neg()
	}

	if r.IsInt() {
		return sign + itoa(r.Num(), b), 0, nil
	}

	prefix, period, err := Period(r.Den(), b, maxDigits)
	if err != nil {
		return "", 0, err
	}

	radix := big.NewInt(int64(b.Base()))

	whole, num := new(big.Int).QuoRem(r.Num(), r.Den(), new(big.Int))

	digits := func(n int) string {
		var sb strings.Builder

		for i := 0; i < n; i++ {
			num.Mul(num, radix)

			d, rem := new(big.Int).QuoRem(num, r.Den(), new(big.Int))

			c, err := b.ValueToDigit(int(d.Int64()))
			if err != nil {
				panic(err.Error())
			}

			sb.WriteRune(c)

			num = rem
		}

		return sb.String()
	}

	head := digits(prefix)

	rep := "0"
	if period > 0 {
		rep = digits(period)
	}

	// Long digit runs compact to {d~n} form; Parse expands them back.
	s := Compress(itoa(whole, b)+"."+head+"#"+rep, DefaultRunLength)

	return sign + s, period, nil
}

// Fixed converts the rational r to a plain decimal in the base b,
// rounded half away from zero to the given number of places.
func Fixed(r *rational.T, b *base.T, places int) string {
	if places < 0 {
		places = 0
	}

	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r = r.Neg()
	}

	// Round: floor(r * b^places + 1/2).
	m := new(big.Int).Mul(r.Num(), scale(b, places, 2))
	m.Add(m, r.Den())
	m.Div(m, new(big.Int).Mul(r.Den(), big.NewInt(2)))

	s := itoa(m, b)

	if places == 0 {
		return sign + s
	}

	for len(s) <= places {
		s = "0" + s
	}

	cut := len(s) - places

	return sign + s[:cut] + "." + s[cut:]
}

// itoa formats the non-negative integer v in the base b.
func itoa(v *big.Int, b *base.T) string {
	return v.Text(b.Base())
}
