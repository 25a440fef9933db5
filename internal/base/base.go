// Released under an MIT license. See LICENSE.

// Package base maps between digit characters and values for a numeral
// base. The parser consumes a base instead of assuming base-10 digits.
package base

import (
	"strings"

	"github.com/ratmath/ratmath/internal/common/fault"
)

// Min and Max bound the supported numeral bases.
const (
	Min = 2
	Max = 36
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// T (base) is a numeral base. Digits are 0-9 then a-z, matched
// case-insensitively.
type T struct {
	radix int
}

type base = T

// Ten is the default numeral base.
var Ten = &base{radix: 10} //nolint:gochecknoglobals

// New creates a numeral base with the given radix.
func New(radix int) (*T, error) {
	if radix < Min || radix > Max {
		return nil, fault.Newf(fault.InvalidBase, "Base must be between %d and %d", Min, Max)
	}

	return &base{radix: radix}, nil
}

// Base returns the radix of the base t.
func (t *T) Base() int {
	return t.radix
}

// DigitToValue returns the value of the digit r in the base t.
func (t *T) DigitToValue(r rune) (int, error) {
	v := strings.IndexRune(alphabet, lower(r))
	if v < 0 || v >= t.radix {
		return 0, fault.Newf(fault.InvalidBase, "'%c' is not a digit in base %d", r, t.radix)
	}

	return v, nil
}

// ValueToDigit returns the digit for the value v in the base t.
func (t *T) ValueToDigit(v int) (rune, error) {
	if v < 0 || v >= t.radix {
		return 0, fault.Newf(fault.InvalidBase, "%d is not a digit value in base %d", v, t.radix)
	}

	return rune(alphabet[v]), nil
}

// IsValidDigitString returns true if every character of s is a digit in
// the base t and s is not empty.
func (t *T) IsValidDigitString(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !t.HasDigit(r) {
			return false
		}
	}

	return true
}

// HasDigit returns true if r is a digit in the base t.
func (t *T) HasDigit(r rune) bool {
	v := strings.IndexRune(alphabet, lower(r))

	return v >= 0 && v < t.radix
}

// ScientificMarker returns the exponent marker for literals in the base
// t. The marker 'E' is only usable when it is not itself a digit; for
// larger bases the alternate marker '@' is required.
func (t *T) ScientificMarker() rune {
	if t.HasDigit('e') {
		return '@'
	}

	return 'E'
}

func lower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}
