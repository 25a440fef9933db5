// Released under an MIT license. See LICENSE.

// Package fault provides the typed error returned by every failing operation.
package fault

import "fmt"

// K identifies a failure category.
type K int

// Failure categories. The set is closed; callers can switch exhaustively.
const (
	MalformedLiteral K = iota
	DivisionByZero
	UndefinedPower
	NegativeFactorial
	InvalidBase
	InvalidUncertainty
	PeriodTooLong
)

// T carries a failure category and a human-readable message.
type T struct {
	kind K
	msg  string
}

type fault = T

// New creates a new fault with the category k and the message msg.
func New(k K, msg string) *T {
	return &fault{kind: k, msg: msg}
}

// Newf creates a new fault with the category k and a formatted message.
func Newf(k K, format string, args ...interface{}) *T {
	return &fault{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Error returns the message for the fault t.
func (t *T) Error() string {
	return t.msg
}

// Kind returns the category for the fault t.
func (t *T) Kind() K {
	return t.kind
}

// Is returns true if err is a fault of the category k.
func Is(err error, k K) bool {
	t, ok := err.(*fault)

	return ok && t.kind == k
}
