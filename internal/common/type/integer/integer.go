// Released under an MIT license. See LICENSE.

// Package integer provides ratmath's arbitrary-precision integer type.
package integer

import (
	"math/big"

	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
)

const name = "integer"

// T (integer) wraps Go's big.Int type. Values are immutable; every
// operation returns a new integer.
type T big.Int

type integer = T

// New creates an integer from i.
func New(i int64) *T {
	return (*integer)(big.NewInt(i))
}

// FromBig creates an integer holding a copy of v.
func FromBig(v *big.Int) *T {
	return (*integer)(new(big.Int).Set(v))
}

// Is returns true if c is an integer.
func Is(c value.I) bool {
	_, ok := c.(*integer)

	return ok
}

// To returns the integer c or panics if c is not an integer.
func To(c value.I) *T {
	t, ok := c.(*integer)
	if !ok {
		panic("not an " + name)
	}

	return t
}

// Int returns the value of the integer t as a *big.Int.
// The result must not be modified.
func (t *T) Int() *big.Int {
	return (*big.Int)(t)
}

// Name returns the type name for the integer t.
func (t *T) Name() string {
	return name
}

// String returns the text of the integer t.
func (t *T) String() string {
	return t.Int().String()
}

// Equal returns true if c is an integer with the same value as t.
func (t *T) Equal(c value.I) bool {
	u, ok := c.(*integer)

	return ok && t.Cmp(u) == 0
}

// Add returns t + u.
func (t *T) Add(u *T) *T {
	return (*integer)(new(big.Int).Add(t.Int(), u.Int()))
}

// Sub returns t - u.
func (t *T) Sub(u *T) *T {
	return (*integer)(new(big.Int).Sub(t.Int(), u.Int()))
}

// Mul returns t * u.
func (t *T) Mul(u *T) *T {
	return (*integer)(new(big.Int).Mul(t.Int(), u.Int()))
}

// Neg returns -t.
func (t *T) Neg() *T {
	return (*integer)(new(big.Int).Neg(t.Int()))
}

// Cmp compares t and u and returns -1, 0, or 1.
func (t *T) Cmp(u *T) int {
	return t.Int().Cmp(u.Int())
}

// Sign returns -1, 0, or 1 depending on the sign of t.
func (t *T) Sign() int {
	return t.Int().Sign()
}

// IsZero returns true if t is zero.
func (t *T) IsZero() bool {
	return t.Sign() == 0
}

// Pow returns t raised to the non-negative exponent n.
func (t *T) Pow(n uint64) *T {
	e := new(big.Int).SetUint64(n)

	return (*integer)(new(big.Int).Exp(t.Int(), e, nil))
}

// Factorial returns t! or an error if t is negative.
func (t *T) Factorial() (*T, error) {
	if t.Sign() < 0 {
		return nil, fault.New(fault.NegativeFactorial, "Factorial requires a non-negative integer")
	}

	f := big.NewInt(1)
	one := big.NewInt(1)

	for i := big.NewInt(2); i.Cmp(t.Int()) <= 0; i.Add(i, one) {
		f.Mul(f, i)
	}

	return (*integer)(f), nil
}

// DoubleFactorial returns t!!, the product t(t-2)(t-4)..., or an error
// if t is negative.
func (t *T) DoubleFactorial() (*T, error) {
	if t.Sign() < 0 {
		return nil, fault.New(fault.NegativeFactorial, "Factorial requires a non-negative integer")
	}

	f := big.NewInt(1)
	two := big.NewInt(2)

	for i := new(big.Int).Set(t.Int()); i.Sign() > 0; i.Sub(i, two) {
		f.Mul(f, i)
	}

	return (*integer)(f), nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a value.
	_ = value.I(&t)
}
