// Released under an MIT license. See LICENSE.

// Package value defines the interface shared by ratmath's numeric types.
package value

// I (value) is any member of the numeric tower: an integer, a rational,
// or a rational interval.
type I interface {
	Name() string
	String() string
	Equal(c I) bool
}
