// Released under an MIT license. See LICENSE.

// Package arith implements binary operations over the numeric tower.
//
// The tower is closed: integer, rational, interval. Binary operations
// promote both operands to the higher tier, compute on that tier, and
// demote the result to the tightest type that loses no exactness.
package arith

import (
	"math/big"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/integer"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

// Rational returns the value of c as a rational. The second return
// value is false when c is a non-degenerate interval.
func Rational(c value.I) (*rational.T, bool) {
	switch t := c.(type) {
	case *integer.T:
		return rational.FromBig(new(big.Rat).SetInt(t.Int())), true
	case *rational.T:
		return t, true
	case *interval.T:
		if t.IsPoint() {
			return t.Low(), true
		}

		return nil, false
	}

	return nil, false
}

// Interval returns the value of c as an interval, promoting scalars to
// point intervals.
func Interval(c value.I) *interval.T {
	if t, ok := c.(*interval.T); ok {
		return t
	}

	r, ok := Rational(c)
	if !ok {
		panic(c.Name() + " cannot be used in a numeric context")
	}

	return interval.Point(r)
}

// Demote returns the tightest representation of c: point intervals
// become rationals and integral rationals become integers.
func Demote(c value.I) value.I {
	if t, ok := c.(*interval.T); ok {
		if !t.IsPoint() {
			return t
		}

		c = t.Low()
	}

	if r, ok := c.(*rational.T); ok && r.IsInt() {
		return r.Int()
	}

	return c
}

// scalar returns true if both a and b sit below the interval tier.
func scalar(a, b value.I) bool {
	_, i := a.(*interval.T)
	_, j := b.(*interval.T)

	return !i && !j
}

// Add returns a + b.
func Add(a, b value.I) (value.I, error) {
	if scalar(a, b) {
		x, _ := Rational(a)
		y, _ := Rational(b)

		return Demote(x.Add(y)), nil
	}

	return Demote(Interval(a).Add(Interval(b))), nil
}

// Sub returns a - b.
func Sub(a, b value.I) (value.I, error) {
	if scalar(a, b) {
		x, _ := Rational(a)
		y, _ := Rational(b)

		return Demote(x.Sub(y)), nil
	}

	return Demote(Interval(a).Sub(Interval(b))), nil
}

// Mul returns a * b.
func Mul(a, b value.I) (value.I, error) {
	if scalar(a, b) {
		x, _ := Rational(a)
		y, _ := Rational(b)

		return Demote(x.Mul(y)), nil
	}

	return Demote(Interval(a).Mul(Interval(b))), nil
}

// Div returns a / b. Division by zero, or by an interval containing
// zero, fails.
func Div(a, b value.I) (value.I, error) {
	if scalar(a, b) {
		x, _ := Rational(a)
		y, _ := Rational(b)

		q, err := x.Div(y)
		if err != nil {
			return nil, err
		}

		return Demote(q), nil
	}

	q, err := Interval(a).Div(Interval(b))
	if err != nil {
		return nil, err
	}

	return Demote(q), nil
}

// Neg returns -a.
func Neg(a value.I) value.I {
	if t, ok := a.(*interval.T); ok {
		return t.Neg()
	}

	r, _ := Rational(a)

	return Demote(r.Neg())
}

// Exponent returns the int64 value of c. The exponent of pow and mpow
// must be an integer-valued point.
func Exponent(c value.I) (int64, error) {
	r, ok := Rational(c)
	if !ok || !r.IsInt() {
		return 0, fault.New(fault.UndefinedPower, "Exponent must be an integer")
	}

	n := r.Num()
	if !n.IsInt64() {
		return 0, fault.New(fault.UndefinedPower, "Exponent too large")
	}

	return n.Int64(), nil
}

// Pow returns a raised to the integer exponent held by b, applying the
// exponent to every element when a is an interval.
func Pow(a, b value.I) (value.I, error) {
	n, err := Exponent(b)
	if err != nil {
		return nil, err
	}

	if t, ok := a.(*interval.T); ok && !t.IsPoint() {
		p, err := t.Pow(n)
		if err != nil {
			return nil, err
		}

		return Demote(p), nil
	}

	r, _ := Rational(a)

	p, err := r.Pow(n)
	if err != nil {
		return nil, err
	}

	return Demote(p), nil
}

// Mpow returns a multiplied by itself the number of times held by b.
// Every factor varies independently and each multiplication compounds
// the base again, so Mpow never agrees with Pow on a non-point
// interval.
func Mpow(a, b value.I) (value.I, error) {
	n, err := Exponent(b)
	if err != nil {
		return nil, err
	}

	p, err := Interval(a).Mpow(n)
	if err != nil {
		return nil, err
	}

	return Demote(p), nil
}

// point returns the non-negative integer value of c required by the
// factorial operations.
func point(c value.I) (*integer.T, error) {
	r, ok := Rational(c)
	if !ok || !r.IsInt() || r.Sign() < 0 {
		return nil, fault.New(fault.NegativeFactorial, "Factorial requires a non-negative integer")
	}

	return r.Int(), nil
}

// Factorial returns a!. The operand must be a non-negative integer
// point value.
func Factorial(a value.I) (value.I, error) {
	i, err := point(a)
	if err != nil {
		return nil, err
	}

	return i.Factorial()
}

// DoubleFactorial returns a!!. The operand must be a non-negative
// integer point value.
func DoubleFactorial(a value.I) (value.I, error) {
	i, err := point(a)
	if err != nil {
		return nil, err
	}

	return i.DoubleFactorial()
}
