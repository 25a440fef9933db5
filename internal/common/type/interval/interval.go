// Released under an MIT license. See LICENSE.

// Package interval provides ratmath's closed rational interval type.
//
// An interval is the set of all reals between two rational endpoints,
// inclusive. Arithmetic is defined set-theoretically and implemented by
// endpoint algebra. Values are immutable; every operation returns a new
// interval.
package interval

import (
	"math/big"
	"math/rand"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

const name = "interval"

// T (interval) is a closed interval of rationals. The low endpoint never
// exceeds the high endpoint.
type T struct {
	low  *rational.T
	high *rational.T
}

type interval = T

// New creates an interval with the endpoints a and b, in either order.
func New(a, b *rational.T) *T {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}

	return &interval{low: a, high: b}
}

// Point creates the degenerate interval [r, r].
func Point(r *rational.T) *T {
	return &interval{low: r, high: r}
}

// Is returns true if c is an interval.
func Is(c value.I) bool {
	_, ok := c.(*interval)

	return ok
}

// To returns the interval c or panics if c is not an interval.
func To(c value.I) *T {
	t, ok := c.(*interval)
	if !ok {
		panic("not an " + name)
	}

	return t
}

// Low returns the low endpoint of the interval t.
func (t *T) Low() *rational.T {
	return t.low
}

// High returns the high endpoint of the interval t.
func (t *T) High() *rational.T {
	return t.high
}

// Name returns the type name for the interval t.
func (t *T) Name() string {
	return name
}

// String returns the text of the interval t as "low:high".
func (t *T) String() string {
	return t.low.String() + ":" + t.high.String()
}

// Equal returns true if c is an interval with the same endpoints as t.
func (t *T) Equal(c value.I) bool {
	u, ok := c.(*interval)

	return ok && t.low.Cmp(u.low) == 0 && t.high.Cmp(u.high) == 0
}

// IsPoint returns true if both endpoints of t are equal.
func (t *T) IsPoint() bool {
	return t.low.Cmp(t.high) == 0
}

// ContainsZero returns true if zero lies within t.
func (t *T) ContainsZero() bool {
	return t.low.Sign() <= 0 && t.high.Sign() >= 0
}

// Add returns t + u: [a,b] + [c,d] = [a+c, b+d].
func (t *T) Add(u *T) *T {
	return &interval{low: t.low.Add(u.low), high: t.high.Add(u.high)}
}

// Sub returns t - u: [a,b] - [c,d] = [a-d, b-c].
func (t *T) Sub(u *T) *T {
	return &interval{low: t.low.Sub(u.high), high: t.high.Sub(u.low)}
}

// Mul returns t * u: the min and max of the four cross products.
func (t *T) Mul(u *T) *T {
	ac := t.low.Mul(u.low)
	ad := t.low.Mul(u.high)
	bc := t.high.Mul(u.low)
	bd := t.high.Mul(u.high)

	low := rational.Min(rational.Min(ac, ad), rational.Min(bc, bd))
	high := rational.Max(rational.Max(ac, ad), rational.Max(bc, bd))

	return &interval{low: low, high: high}
}

// Div returns t / u, the product of t with the reciprocal of u.
// It fails if u contains zero.
func (t *T) Div(u *T) (*T, error) {
	if u.ContainsZero() {
		return nil, fault.New(fault.DivisionByZero, "Cannot divide by an interval containing zero")
	}

	r, err := u.Reciprocal()
	if err != nil {
		return nil, err
	}

	return t.Mul(r), nil
}

// Neg returns -t, negating and swapping the endpoints.
func (t *T) Neg() *T {
	return &interval{low: t.high.Neg(), high: t.low.Neg()}
}

// Reciprocal returns the interval of reciprocals of t.
// It fails if t contains zero.
func (t *T) Reciprocal() (*T, error) {
	if t.ContainsZero() {
		return nil, fault.New(fault.DivisionByZero, "Cannot divide by an interval containing zero")
	}

	low, err := t.high.Reciprocal()
	if err != nil {
		return nil, err
	}

	high, err := t.low.Reciprocal()
	if err != nil {
		return nil, err
	}

	return &interval{low: low, high: high}, nil
}

// Pow returns the set {x^n : x in t}, raising every element of t to the
// integer exponent n. Unlike Mpow, the result is always exact.
func (t *T) Pow(n int64) (*T, error) {
	if n == 0 {
		// Anything to the zero power is one, except the single
		// point zero.
		if t.IsPoint() && t.low.IsZero() {
			return nil, fault.New(fault.UndefinedPower, "Zero cannot be raised to the power of zero")
		}

		one := rational.FromInt64(1)

		return &interval{low: one, high: one}, nil
	}

	if n < 0 {
		if t.ContainsZero() {
			return nil, fault.New(fault.UndefinedPower, "Cannot raise an interval containing zero to a negative power")
		}

		r, err := t.Reciprocal()
		if err != nil {
			return nil, err
		}

		return r.Pow(-n)
	}

	lo, err := t.low.Pow(n)
	if err != nil {
		return nil, err
	}

	hi, err := t.high.Pow(n)
	if err != nil {
		return nil, err
	}

	if n%2 != 0 {
		// Odd powers are monotone.
		return &interval{low: lo, high: hi}, nil
	}

	switch {
	case t.low.Sign() >= 0:
		return &interval{low: lo, high: hi}, nil
	case t.high.Sign() <= 0:
		return &interval{low: hi, high: lo}, nil
	default:
		// Straddles zero: the minimum of x^n is 0.
		return &interval{low: rational.FromInt64(0), high: rational.Max(lo, hi)}, nil
	}
}

// Mpow multiplies t by itself |n| times, treating each factor as an
// independent interval: |n| self-multiplications over |n|+1 factors.
// Unlike Pow, which maps the set through x^n exactly, every
// multiplication compounds the base again, so Mpow(n) and Pow(n)
// disagree on non-point bases. At least one factor is required.
func (t *T) Mpow(n int64) (*T, error) {
	if n == 0 {
		return nil, fault.New(fault.UndefinedPower, "at least one factor required")
	}

	b := t

	if n < 0 {
		r, err := t.Reciprocal()
		if err != nil {
			return nil, err
		}

		b = r
		n = -n
	}

	p := b
	for i := int64(0); i < n; i++ {
		p = p.Mul(b)
	}

	return p, nil
}

// Overlaps returns true if t and u share at least one value.
func (t *T) Overlaps(u *T) bool {
	return t.low.Cmp(u.high) <= 0 && u.low.Cmp(t.high) <= 0
}

// Contains returns true if every value of u lies within t.
func (t *T) Contains(u *T) bool {
	return t.low.Cmp(u.low) <= 0 && t.high.Cmp(u.high) >= 0
}

// ContainsValue returns true if the rational r lies within t.
func (t *T) ContainsValue(r *rational.T) bool {
	return t.low.Cmp(r) <= 0 && t.high.Cmp(r) >= 0
}

// Intersection returns the overlapping sub-interval of t and u.
// The second return value is false if t and u do not overlap.
func (t *T) Intersection(u *T) (*T, bool) {
	if !t.Overlaps(u) {
		return nil, false
	}

	return &interval{
		low:  rational.Max(t.low, u.low),
		high: rational.Min(t.high, u.high),
	}, true
}

// Union returns the interval covering both t and u. The second return
// value is false if t and u neither overlap nor touch, since the union
// of two disjoint intervals is not an interval.
func (t *T) Union(u *T) (*T, bool) {
	if !t.Overlaps(u) {
		return nil, false
	}

	return &interval{
		low:  rational.Min(t.low, u.low),
		high: rational.Max(t.high, u.high),
	}, true
}

// Mediant returns the mediant of the endpoints of t: the fraction formed
// by summing numerators and denominators componentwise. The endpoints
// contribute in lowest terms.
func (t *T) Mediant() *rational.T {
	num := new(big.Int).Add(t.low.Num(), t.high.Num())
	den := new(big.Int).Add(t.low.Den(), t.high.Den())

	r, err := rational.New(num, den)
	if err != nil {
		// Denominators are positive; the sum cannot be zero.
		panic(err.Error())
	}

	return r
}

// Midpoint returns the arithmetic midpoint of t.
func (t *T) Midpoint() *rational.T {
	half := rational.FromBig(big.NewRat(1, 2))

	return t.low.Add(t.high).Mul(half)
}

// ShortestDecimal returns the rational p/base^k inside t with the
// smallest such k, preferring the smallest |p| at that k. The second
// return value is false if no power-of-base rational lies within t,
// which can only happen for a point whose denominator is not a product
// of the prime factors of base.
func (t *T) ShortestDecimal(base int64) (*rational.T, bool) {
	if base < 2 {
		return nil, false
	}

	b := big.NewInt(base)

	if t.IsPoint() {
		// Representable iff the denominator divides some power of base.
		den := new(big.Int).Set(t.low.Den())

		for {
			g := new(big.Int).GCD(nil, nil, den, b)
			if g.Cmp(big.NewInt(1)) == 0 {
				break
			}

			den.Div(den, g)
		}

		if den.Cmp(big.NewInt(1)) != 0 {
			return nil, false
		}

		return t.low, true
	}

	pow := big.NewInt(1)

	for {
		// Smallest p with low <= p/base^k. p = ceil(low * base^k).
		p := ceilMul(t.low, pow)

		r, err := rational.New(p, new(big.Int).Set(pow))
		if err != nil {
			panic(err.Error())
		}

		if t.ContainsValue(r) {
			return r, true
		}

		pow = new(big.Int).Mul(pow, b)
	}
}

// RandomRational returns a uniformly chosen rational p/q inside t with
// 1 <= q <= maxDen. The second return value is false if no such
// rational exists.
func (t *T) RandomRational(maxDen int64, rnd *rand.Rand) (*rational.T, bool) {
	if maxDen < 1 {
		return nil, false
	}

	one := big.NewInt(1)
	candidates := []*rational.T{}

	for q := int64(1); q <= maxDen; q++ {
		den := big.NewInt(q)

		lo := ceilMul(t.low, den)
		hi := floorMul(t.high, den)

		for p := new(big.Int).Set(lo); p.Cmp(hi) <= 0; p.Add(p, one) {
			// Only coprime pairs count, so each rational value
			// appears once however many p/q forms it has.
			g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(p), den)
			if g.Cmp(one) != 0 {
				continue
			}

			r, err := rational.New(new(big.Int).Set(p), den)
			if err != nil {
				panic(err.Error())
			}

			candidates = append(candidates, r)
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}

	return candidates[rnd.Intn(len(candidates))], true
}

// ceilMul returns ceil(r * m) for a positive integer m.
func ceilMul(r *rational.T, m *big.Int) *big.Int {
	num := new(big.Int).Mul(r.Num(), m)
	q, rem := new(big.Int).QuoRem(num, r.Den(), new(big.Int))

	if rem.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}

	return q
}

// floorMul returns floor(r * m) for a positive integer m.
func floorMul(r *rational.T, m *big.Int) *big.Int {
	num := new(big.Int).Mul(r.Num(), m)
	q, rem := new(big.Int).QuoRem(num, r.Den(), new(big.Int))

	if rem.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}

	return q
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t interval

	// The interval type is a value.
	_ = value.I(&t)
}
