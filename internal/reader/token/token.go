// Released under an MIT license. See LICENSE.

// Package token is shared by the ratmath lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type. Single-character operators use their own
// rune as the class.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	pos   int
	value string
}

type token = T

// Token classes beyond single characters.
const (
	Error Class = iota

	Number Class = unicode.MaxRune + iota
	Mpow
	DoubleBang
	DotDot
)

// New creates a new token.
func New(class Class, value string, pos int) *T {
	return &token{class: class, pos: pos, value: value}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Number:
		return "Number"
	case Mpow:
		return "'**'"
	case DoubleBang:
		return "'!!'"
	case DotDot:
		return "'..'"
	}

	return strconv.QuoteRune(rune(c))
}

// Is returns true if the token t is any of the classes in cs.
func (t *T) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if c == t.class {
			return true
		}
	}

	return false
}

// Class returns the class of the token t.
func (t *T) Class() Class {
	return t.class
}

// Pos returns the position of the token t: a 1-based character offset
// into the expression with whitespace removed.
func (t *T) Pos() int {
	return t.pos
}

// Value returns the text of the token t.
func (t *T) Value() string {
	return t.value
}
