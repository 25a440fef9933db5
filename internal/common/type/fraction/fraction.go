// Released under an MIT license. See LICENSE.

// Package fraction provides an unreduced numerator/denominator pair.
//
// Unlike rational, a fraction keeps the exact textual form it was built
// with: 2/4 is distinct from 1/2. Mediant and Stern-Brocot computations
// depend on this structural identity.
package fraction

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

// T (fraction) is an unreduced pair. The denominator is never zero.
type T struct {
	num *big.Int
	den *big.Int
}

type fraction = T

// New creates the fraction num/den without reducing it.
// The denominator must not be zero.
func New(num, den *big.Int) (*T, error) {
	if den.Sign() == 0 {
		return nil, fault.New(fault.DivisionByZero, "Denominator cannot be zero")
	}

	return &fraction{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}, nil
}

// NewInt64 creates the fraction num/den from int64 values.
func NewInt64(num, den int64) (*T, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// Num returns the numerator of the fraction t.
func (t *T) Num() *big.Int {
	return t.num
}

// Den returns the denominator of the fraction t.
func (t *T) Den() *big.Int {
	return t.den
}

// String returns the text of the fraction t as "num/den", unreduced.
func (t *T) String() string {
	return t.num.String() + "/" + t.den.String()
}

// Equal returns true if u has the same numerator and denominator as t.
// Mathematically equal fractions with different forms are not equal.
func (t *T) Equal(u *T) bool {
	return t.num.Cmp(u.num) == 0 && t.den.Cmp(u.den) == 0
}

// Mediant returns the mediant of t and u: (a+c)/(b+d).
func (t *T) Mediant(u *T) *T {
	return &fraction{
		num: new(big.Int).Add(t.num, u.num),
		den: new(big.Int).Add(t.den, u.den),
	}
}

// Reduce returns the value of the fraction t as a rational.
func (t *T) Reduce() *rational.T {
	r, err := rational.New(t.num, t.den)
	if err != nil {
		// The denominator was checked at construction.
		panic(err.Error())
	}

	return r
}

// Path returns the Stern-Brocot tree path from the root 1/1 to the
// fraction with the value of t, as a string of 'L' and 'R' steps. The
// value must be positive.
func (t *T) Path() (string, error) {
	if t.num.Sign() <= 0 || t.den.Sign() <= 0 {
		return "", fault.New(fault.MalformedLiteral, "Stern-Brocot tree entries must be positive")
	}

	num := new(big.Int).Set(t.num)
	den := new(big.Int).Set(t.den)

	var sb strings.Builder

	for num.Cmp(den) != 0 {
		if num.Cmp(den) < 0 {
			sb.WriteByte('L')
			den.Sub(den, num)
		} else {
			sb.WriteByte('R')
			num.Sub(num, den)
		}
	}

	return sb.String(), nil
}

// FromPath descends the Stern-Brocot tree from the root 1/1, taking
// the mediant of the bounding fractions at each 'L' or 'R' step, and
// returns the fraction reached. Every fraction FromPath builds is
// already in lowest terms.
func FromPath(path string) (*T, error) {
	lo := &fraction{num: big.NewInt(0), den: big.NewInt(1)}
	hi := &fraction{num: big.NewInt(1), den: big.NewInt(0)}

	cur := lo.Mediant(hi)

	for _, step := range path {
		switch step {
		case 'L':
			hi = cur
		case 'R':
			lo = cur
		default:
			return nil, fault.Newf(fault.MalformedLiteral, "'%c' is not a Stern-Brocot step", step)
		}

		cur = lo.Mediant(hi)
	}

	return cur, nil
}

// Parent returns the parent of t in the Stern-Brocot tree. The root
// has no parent.
func (t *T) Parent() (*T, error) {
	path, err := t.Path()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return nil, fault.New(fault.MalformedLiteral, "the root of the Stern-Brocot tree has no parent")
	}

	return FromPath(path[:len(path)-1])
}
