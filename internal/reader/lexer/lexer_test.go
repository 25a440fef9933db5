package lexer

import (
	"testing"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/reader/token"
)

type expected struct {
	class token.Class
	value string
}

func number(s string) expected {
	return expected{token.Number, s}
}

func op(r rune) expected {
	return expected{token.Class(r), string(r)}
}

func scan(t *testing.T, b *base.T, text string, want ...expected) {
	t.Helper()

	l := New(text, b)

	for i, e := range want {
		tok := l.Token()
		if tok == nil {
			t.Fatalf("%q: token %d: unexpected end of input", text, i)
		}

		if tok.Class() != e.class || tok.Value() != e.value {
			t.Fatalf("%q: token %d: got %s %q, want %s %q",
				text, i, tok.Class(), tok.Value(), e.class, e.value)
		}
	}

	if tok := l.Token(); tok != nil {
		t.Fatalf("%q: trailing token %s %q", text, tok.Class(), tok.Value())
	}
}

func TestOperators(t *testing.T) {
	scan(t, base.Ten, "1/2 + 3/4",
		number("1"), op('/'), number("2"),
		op('+'),
		number("3"), op('/'), number("4"),
	)

	scan(t, base.Ten, "(2/3:3/2)**2",
		op('('),
		number("2"), op('/'), number("3"),
		op(':'),
		number("3"), op('/'), number("2"),
		op(')'),
		expected{token.Mpow, "**"},
		number("2"),
	)

	scan(t, base.Ten, "5!", number("5"), op('!'))
	scan(t, base.Ten, "7!!", number("7"), expected{token.DoubleBang, "!!"})
	scan(t, base.Ten, "2^3", number("2"), op('^'), number("3"))
}

func TestMixedNumber(t *testing.T) {
	scan(t, base.Ten, "2..3/4",
		number("2"),
		expected{token.DotDot, ".."},
		number("3"), op('/'), number("4"),
	)

	// A point followed by another point is the mixed separator, not
	// part of a decimal.
	scan(t, base.Ten, "1.5..1/2",
		number("1.5"),
		expected{token.DotDot, ".."},
		number("1"), op('/'), number("2"),
	)
}

func TestDecimals(t *testing.T) {
	scan(t, base.Ten, "0.#3", number("0.#3"))
	scan(t, base.Ten, ".5", number(".5"))
	scan(t, base.Ten, "1.25#0", number("1.25#0"))
	scan(t, base.Ten, "0.{3~5}", number("0.{3~5}"))
}

func TestUncertainty(t *testing.T) {
	scan(t, base.Ten, "1.23[+-5]", number("1.23[+-5]"))
	scan(t, base.Ten, "1.23[+4,-2]E2", number("1.23[+4,-2]E2"))
	scan(t, base.Ten, "1.2[3:7]", number("1.2[3:7]"))
}

func TestExponent(t *testing.T) {
	scan(t, base.Ten, "12E2", number("12E2"))
	scan(t, base.Ten, "12e-3", number("12e-3"))

	// A marker with no digits is not an exponent.
	scan(t, base.Ten, "12E+3", number("12E+3"))
	scan(t, base.Ten, "12E", number("12"), expected{token.Error, "E"})
}

func TestBases(t *testing.T) {
	b16, err := base.New(16)
	if err != nil {
		t.Fatal(err)
	}

	// 'e' is a digit in base 16; the exponent marker is '@'.
	scan(t, b16, "1E", number("1E"))
	scan(t, b16, "ff@2", number("ff@2"))

	b2, err := base.New(2)
	if err != nil {
		t.Fatal(err)
	}

	scan(t, b2, "101", number("101"))
	scan(t, b2, "12", number("1"), expected{token.Error, "2"})
}

func TestWhitespaceInsignificant(t *testing.T) {
	scan(t, base.Ten, "  1 +\t2 ", number("1"), op('+'), number("2"))
}

func TestErrorToken(t *testing.T) {
	scan(t, base.Ten, "$", expected{token.Error, "$"})
}

func TestPositions(t *testing.T) {
	l := New("1 + 2", base.Ten)

	// Positions index the whitespace-stripped text.
	for i, want := range []int{1, 2, 3} {
		tok := l.Token()
		if tok == nil || tok.Pos() != want {
			t.Fatalf("token %d: position %d, want %d", i, tok.Pos(), want)
		}
	}
}
