// Released under an MIT license. See LICENSE.

// Package rational provides ratmath's exact fraction type.
//
// A rational wraps Go's big.Rat, which keeps every value reduced to
// lowest terms with a positive denominator. Values are immutable; every
// operation returns a new rational.
package rational

import (
	"math/big"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/integer"
)

const name = "rational"

// T (rational) wraps Go's big.Rat type.
type T big.Rat

type rational = T

// New creates a rational num/den. The denominator must not be zero.
func New(num, den *big.Int) (*T, error) {
	if den.Sign() == 0 {
		return nil, fault.New(fault.DivisionByZero, "Denominator cannot be zero")
	}

	return (*rational)(new(big.Rat).SetFrac(num, den)), nil
}

// NewInt64 creates a rational num/den from int64 values.
// The denominator must not be zero.
func NewInt64(num, den int64) (*T, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromBig creates a rational holding a copy of v.
func FromBig(v *big.Rat) *T {
	return (*rational)(new(big.Rat).Set(v))
}

// FromInt creates a rational with the value of the integer i.
func FromInt(i *integer.T) *T {
	return (*rational)(new(big.Rat).SetInt(i.Int()))
}

// FromInt64 creates a rational with the value i.
func FromInt64(i int64) *T {
	return (*rational)(new(big.Rat).SetInt64(i))
}

// Is returns true if c is a rational.
func Is(c value.I) bool {
	_, ok := c.(*rational)

	return ok
}

// To returns the rational c or panics if c is not a rational.
func To(c value.I) *T {
	t, ok := c.(*rational)
	if !ok {
		panic("not a " + name)
	}

	return t
}

// Rat returns the value of the rational t as a *big.Rat.
// The result must not be modified.
func (t *T) Rat() *big.Rat {
	return (*big.Rat)(t)
}

// Num returns the numerator of the rational t.
func (t *T) Num() *big.Int {
	return t.Rat().Num()
}

// Den returns the denominator of the rational t.
func (t *T) Den() *big.Int {
	return t.Rat().Denom()
}

// Name returns the type name for the rational t.
func (t *T) Name() string {
	return name
}

// String returns the text of the rational t: "num/den", or just the
// numerator when the denominator is 1.
func (t *T) String() string {
	return t.Rat().RatString()
}

// Equal returns true if c is a rational with the same value as t.
func (t *T) Equal(c value.I) bool {
	u, ok := c.(*rational)

	return ok && t.Cmp(u) == 0
}

// Add returns t + u.
func (t *T) Add(u *T) *T {
	return (*rational)(new(big.Rat).Add(t.Rat(), u.Rat()))
}

// Sub returns t - u.
func (t *T) Sub(u *T) *T {
	return (*rational)(new(big.Rat).Sub(t.Rat(), u.Rat()))
}

// Mul returns t * u.
func (t *T) Mul(u *T) *T {
	return (*rational)(new(big.Rat).Mul(t.Rat(), u.Rat()))
}

// Div returns t / u or an error if u is zero.
func (t *T) Div(u *T) (*T, error) {
	if u.IsZero() {
		return nil, fault.New(fault.DivisionByZero, "Division by zero")
	}

	return (*rational)(new(big.Rat).Quo(t.Rat(), u.Rat())), nil
}

// Neg returns -t.
func (t *T) Neg() *T {
	return (*rational)(new(big.Rat).Neg(t.Rat()))
}

// Abs returns the absolute value of t.
func (t *T) Abs() *T {
	return (*rational)(new(big.Rat).Abs(t.Rat()))
}

// Reciprocal returns 1/t or an error if t is zero.
func (t *T) Reciprocal() (*T, error) {
	if t.IsZero() {
		return nil, fault.New(fault.DivisionByZero, "Division by zero")
	}

	return (*rational)(new(big.Rat).Inv(t.Rat())), nil
}

// Pow returns t raised to the integer exponent n. A negative exponent
// inverts t and applies the positive case. Zero cannot be raised to the
// power of zero or to a negative power.
func (t *T) Pow(n int64) (*T, error) {
	if t.IsZero() {
		if n == 0 {
			return nil, fault.New(fault.UndefinedPower, "Zero cannot be raised to the power of zero")
		}

		if n < 0 {
			return nil, fault.New(fault.UndefinedPower, "Zero cannot be raised to a negative power")
		}

		return FromInt64(0), nil
	}

	b := t
	if n < 0 {
		b = (*rational)(new(big.Rat).Inv(t.Rat()))
		n = -n
	}

	e := new(big.Int).SetInt64(n)
	num := new(big.Int).Exp(b.Num(), e, nil)
	den := new(big.Int).Exp(b.Den(), e, nil)

	return (*rational)(new(big.Rat).SetFrac(num, den)), nil
}

// Cmp compares t and u and returns -1, 0, or 1.
func (t *T) Cmp(u *T) int {
	return t.Rat().Cmp(u.Rat())
}

// Sign returns -1, 0, or 1 depending on the sign of t.
func (t *T) Sign() int {
	return t.Rat().Sign()
}

// IsZero returns true if t is zero.
func (t *T) IsZero() bool {
	return t.Sign() == 0
}

// IsInt returns true if the denominator of t is 1.
func (t *T) IsInt() bool {
	return t.Rat().IsInt()
}

// Int returns the value of t as an integer when IsInt is true.
func (t *T) Int() *integer.T {
	return integer.FromBig(t.Num())
}

// Floor returns the largest integer not greater than t.
func (t *T) Floor() *big.Int {
	f := new(big.Int)
	m := new(big.Int)

	f.DivMod(t.Num(), t.Den(), m)

	return f
}

// Min returns the smaller of t and u.
func Min(t, u *T) *T {
	if t.Cmp(u) <= 0 {
		return t
	}

	return u
}

// Max returns the larger of t and u.
func Max(t, u *T) *T {
	if t.Cmp(u) >= 0 {
		return t
	}

	return u
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t rational

	// The rational type is a value.
	_ = value.I(&t)
}
