// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for ratmath expressions.
//
// The scanner uses the state function approach described in Rob Pike's
// talk "Lexical Scanning in Go", simplified to a single buffer.
// Whitespace is insignificant in the expression grammar and is stripped
// before scanning, so no token ever spans or contains a space.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned, whitespace stripped.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.

	input *base.T // Active numeral base for digit classification.

	state  action
	tokens []*token.T
}

type lexer = T

type action func(*lexer) action

const eof = -1

// New creates a scanner for text with digits classified by the numeral
// base b.
func New(text string, b *base.T) *T {
	return &lexer{
		bytes: strip(text),
		input: b,
		state: scanAny,
	}
}

// Token returns the next scanned token, or nil at the end of input.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Text returns the text of the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

func (l *T) accept(w int) {
	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.first+1))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(w)

	return r
}

func (l *T) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *T) peek2() rune {
	_, w := l.peek()
	if l.index+w >= len(l.bytes) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(l.bytes[l.index+w:])

	return r
}

func (l *T) skip() {
	l.first = l.index
}

// T states.

func scanAny(l *lexer) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case l.input.HasDigit(r):
		return scanNumber
	case r == '.':
		if l.peek2() == '.' {
			l.accept(w)
			l.next()
			l.emit(token.DotDot)

			return scanAny
		}

		return scanNumber
	}

	l.accept(w)

	switch r {
	case '*':
		if p, _ := l.peek(); p == '*' {
			l.next()
			l.emit(token.Mpow)

			return scanAny
		}
	case '!':
		if p, _ := l.peek(); p == '!' {
			l.next()
			l.emit(token.DoubleBang)

			return scanAny
		}
	case '+', '-', '/', '^', '(', ')', ':':
	default:
		l.emit(token.Error)

		return scanAny
	}

	l.emit(token.Class(r))

	return scanAny
}

// scanNumber consumes a numeric literal: digits of the active base with
// an optional point, an optional repeat marker '#', run-length groups
// {d~n}, an optional uncertainty bracket, and an optional scientific
// exponent.
func scanNumber(l *lexer) action {
	seenPoint := false
	seenMark := false

scan:
	for {
		r, w := l.peek()

		switch {
		case l.input.HasDigit(r):
			l.accept(w)
		case r == '.':
			// A second point ends the literal, as does "..",
			// the mixed number separator.
			if seenPoint || seenMark || l.peek2() == '.' {
				break scan
			}

			seenPoint = true
			l.accept(w)
		case r == '#':
			if seenMark {
				break scan
			}

			seenMark = true
			l.accept(w)
		case r == '{':
			if !l.run() {
				l.emit(token.Error)

				return scanAny
			}
		default:
			break scan
		}
	}

	if r, _ := l.peek(); r == '[' {
		if !l.bracket() {
			l.emit(token.Error)

			return scanAny
		}
	}

	l.exponent()

	l.emit(token.Number)

	return scanAny
}

// run consumes a run-length group "{d~n}".
func (l *T) run() bool {
	l.next() // '{'

	for {
		r, w := l.peek()

		switch r {
		case eof, '{':
			return false
		case '}':
			l.accept(w)

			return true
		}

		l.accept(w)
	}
}

// bracket consumes an uncertainty bracket "[...]".
func (l *T) bracket() bool {
	l.next() // '['

	for {
		r, w := l.peek()

		switch r {
		case eof, '[':
			return false
		case ']':
			l.accept(w)

			return true
		}

		l.accept(w)
	}
}

// exponent consumes a scientific exponent: the base's marker, an
// optional sign, and at least one digit. Without a digit the marker is
// left unconsumed.
func (l *T) exponent() {
	m := l.input.ScientificMarker()

	r, w := l.peek()
	if r != m && !(m == 'E' && r == 'e') {
		return
	}

	i := l.index

	l.accept(w)

	if p, pw := l.peek(); p == '+' || p == '-' {
		l.accept(pw)
	}

	digits := 0

	for {
		p, pw := l.peek()
		if !l.input.HasDigit(p) {
			break
		}

		l.accept(pw)
		digits++
	}

	if digits == 0 {
		l.index = i
	}
}

// strip removes all whitespace from s.
func strip(s string) string {
	return strings.Join(strings.Fields(s), "")
}
