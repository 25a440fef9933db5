// Released under an MIT license. See LICENSE.

// Package contfrac converts between rationals and simple continued
// fractions [a0; a1, a2, ...].
package contfrac

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

// T (contfrac) is a continued fraction coefficient sequence. The first
// coefficient may be any integer; the rest are positive.
type T []*big.Int

type contfrac = T

// FromRational produces the coefficient sequence for r via the
// Euclidean algorithm. ToRational inverts it exactly.
func FromRational(r *rational.T) T {
	t := contfrac{}

	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Den())

	for den.Sign() != 0 {
		a, rem := new(big.Int), new(big.Int)

		// Floor division keeps every coefficient after the first
		// positive, for negative rationals too.
		a.DivMod(num, den, rem)

		t = append(t, a)

		num, den = den, rem
	}

	return t
}

// ToRational rebuilds the rational value of the contfrac t using the
// convergent recurrence.
func (t T) ToRational() (*rational.T, error) {
	if len(t) == 0 {
		return nil, fault.New(fault.MalformedLiteral, "empty continued fraction")
	}

	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)

	var h, k *big.Int

	for _, a := range t {
		h = new(big.Int).Mul(a, h1)
		h.Add(h, h2)

		k = new(big.Int).Mul(a, k1)
		k.Add(k, k2)

		h2, h1 = h1, h
		k2, k1 = k1, k
	}

	return rational.New(h, k)
}

// Convergents returns every partial evaluation h_k/k_k of the contfrac
// t, from the leading integer to the exact value.
func (t T) Convergents() ([]*rational.T, error) {
	if len(t) == 0 {
		return nil, fault.New(fault.MalformedLiteral, "empty continued fraction")
	}

	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)

	cs := make([]*rational.T, 0, len(t))

	for _, a := range t {
		h := new(big.Int).Mul(a, h1)
		h.Add(h, h2)

		k := new(big.Int).Mul(a, k1)
		k.Add(k, k2)

		c, err := rational.New(h, k)
		if err != nil {
			return nil, err
		}

		cs = append(cs, c)

		h2, h1 = h1, h
		k2, k1 = k1, k
	}

	return cs, nil
}

// BestApproximation returns the rational closest to r among the
// convergents of r whose denominator does not exceed maxDen.
func BestApproximation(r *rational.T, maxDen *big.Int) (*rational.T, error) {
	if maxDen.Sign() <= 0 {
		return nil, fault.New(fault.MalformedLiteral, "denominator ceiling must be positive")
	}

	cs, err := FromRational(r).Convergents()
	if err != nil {
		return nil, err
	}

	var best *rational.T

	for _, c := range cs {
		if c.Den().Cmp(maxDen) > 0 {
			break
		}

		best = c
	}

	if best == nil {
		return nil, fault.New(fault.MalformedLiteral, "no approximation within denominator ceiling")
	}

	return best, nil
}

// ApproximationError returns |a - b| exactly.
func ApproximationError(a, b *rational.T) *rational.T {
	return a.Sub(b).Abs()
}

// String formats the contfrac t as "[a0; a1, a2, ...]".
func (t T) String() string {
	if len(t) == 0 {
		return "[]"
	}

	var sb strings.Builder

	sb.WriteByte('[')
	sb.WriteString(t[0].String())

	if len(t) > 1 {
		sb.WriteString("; ")

		rest := make([]string, 0, len(t)-1)
		for _, a := range t[1:] {
			rest = append(rest, a.String())
		}

		sb.WriteString(strings.Join(rest, ", "))
	}

	sb.WriteByte(']')

	return sb.String()
}

// Parse reads the "[a0; a1, a2, ...]" form produced by String.
func Parse(s string) (T, error) {
	t := strings.TrimSpace(s)

	if !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, "]") {
		return nil, fault.Newf(fault.MalformedLiteral, "'%s' is not a continued fraction", s)
	}

	t = strings.TrimSpace(t[1 : len(t)-1])
	if t == "" {
		return nil, fault.Newf(fault.MalformedLiteral, "'%s' is not a continued fraction", s)
	}

	head, tail := t, ""
	if i := strings.IndexByte(t, ';'); i >= 0 {
		head, tail = t[:i], t[i+1:]
	}

	cf := contfrac{}

	a, ok := new(big.Int).SetString(strings.TrimSpace(head), 10)
	if !ok {
		return nil, fault.Newf(fault.MalformedLiteral, "'%s' is not a continued fraction coefficient", head)
	}

	cf = append(cf, a)

	if strings.TrimSpace(tail) == "" {
		return cf, nil
	}

	for _, part := range strings.Split(tail, ",") {
		a, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok || a.Sign() <= 0 {
			return nil, fault.Newf(fault.MalformedLiteral, "'%s' is not a continued fraction coefficient", part)
		}

		cf = append(cf, a)
	}

	return cf, nil
}
