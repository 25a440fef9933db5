// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser and evaluator for
// ratmath expressions.
//
// Parsing is all-or-nothing: any malformed literal or trailing input
// fails the whole call with a message naming the offending token.
// Inside the productions errors propagate by panic; the Parse boundary
// recovers them into an error result.
package parser

import (
	"math/big"
	"strings"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common"
	"github.com/ratmath/ratmath/internal/common/fault"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
	"github.com/ratmath/ratmath/internal/convert/decimal"
	"github.com/ratmath/ratmath/internal/engine/arith"
	"github.com/ratmath/ratmath/internal/reader/lexer"
	"github.com/ratmath/ratmath/internal/reader/token"
)

// T holds the state of the parser.
type T struct {
	ahead []*token.T      // Token lookahead.
	input *base.T         // Active numeral base.
	item  func() *token.T // Function to call to get another token.
}

type parser = T

// New creates a parser reading tokens from item with literals in the
// numeral base b.
func New(b *base.T, item func() *token.T) *T {
	return &parser{input: b, item: item}
}

// Evaluate parses and evaluates the expression text in base 10.
func Evaluate(text string) (value.I, error) {
	return EvaluateIn(text, base.Ten)
}

// EvaluateIn parses and evaluates the expression text with literals in
// the numeral base b.
func EvaluateIn(text string, b *base.T) (value.I, error) {
	l := lexer.New(text, b)

	return New(b, l.Token).Parse()
}

// Parse consumes the whole token stream and returns the value of the
// expression, demoted to the tightest exact type.
func (p *T) Parse() (v value.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *fault.T:
			err = r
		case error:
			err = fault.New(fault.MalformedLiteral, r.Error())
		case string:
			err = fault.New(fault.MalformedLiteral, r)
		case common.Stringer:
			err = fault.New(fault.MalformedLiteral, r.String())
		default:
			err = fault.New(fault.MalformedLiteral, "unexpected error")
		}
	}()

	c := p.expression()

	if t := p.peek(); t != nil {
		panic(fault.Newf(fault.MalformedLiteral, "unexpected '%s' after expression", t.Value()))
	}

	return arith.Demote(c), nil
}

func (p *T) consume() *token.T {
	if len(p.ahead) == 0 {
		panic("nothing to consume.")
	}

	t := p.ahead[0]
	p.ahead = p.ahead[1:]

	return t
}

func (p *T) peek() *token.T {
	return p.peekN(1)
}

// peekN returns the nth token of lookahead. The fraction and mixed
// number literals need two tokens.
func (p *T) peekN(n int) *token.T {
	for len(p.ahead) < n {
		t := p.item()
		if t == nil {
			return nil
		}

		p.ahead = append(p.ahead, t)
	}

	return p.ahead[n-1]
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		p.unexpected(t, "expected "+c.String())
	}

	return p.consume()
}

func (p *T) unexpected(t *token.T, msg string) {
	if t == nil {
		panic(fault.Newf(fault.MalformedLiteral, "unexpected end of expression: %s", msg))
	}

	panic(fault.Newf(fault.MalformedLiteral, "unexpected '%s': %s", t.Value(), msg))
}

func (p *T) value(v value.I, err error) value.I {
	if err != nil {
		panic(err)
	}

	return v
}

// T productions.

// <expression> ::= <interval> (('+' | '-') <interval>)*
func (p *T) expression() value.I {
	c := p.interval()

	for {
		t := p.peek()

		switch {
		case t.Is('+'):
			p.consume()
			c = p.value(arith.Add(c, p.interval()))
		case t.Is('-'):
			p.consume()
			c = p.value(arith.Sub(c, p.interval()))
		default:
			return c
		}
	}
}

// <interval> ::= <term> (':' <term>)?
//
// The colon sits between the additive and multiplicative levels so
// that endpoints can carry their own sign and fractions: -1:1 and
// 1/2:3/4 both read as single intervals.
func (p *T) interval() value.I {
	c := p.term()

	if !p.peek().Is(':') {
		return c
	}

	p.consume()

	return interval.New(p.endpoint(c), p.endpoint(p.term()))
}

// endpoint converts an interval endpoint to its exact rational value.
// An unmarked decimal evaluates to its half-ulp interval; as an
// endpoint it means its face value, which is that interval's midpoint.
func (p *T) endpoint(c value.I) *rational.T {
	if t, ok := c.(*interval.T); ok {
		return t.Midpoint()
	}

	r, ok := arith.Rational(c)
	if !ok {
		panic(fault.New(fault.MalformedLiteral, "interval endpoints must be rational"))
	}

	return r
}

// <term> ::= <factor> (('*' | '/') <factor>)*
func (p *T) term() value.I {
	c := p.factor()

	for {
		t := p.peek()

		switch {
		case t.Is('*'):
			p.consume()
			c = p.value(arith.Mul(c, p.factor()))
		case t.Is('/'):
			p.consume()
			c = p.value(arith.Div(c, p.factor()))
		default:
			return c
		}
	}
}

// <factor> ::= '(' <expression> ')' <power>?
//            | '-' <factor>
//            | <literal> <factorial>* <power>?
func (p *T) factor() value.I {
	t := p.peek()

	switch {
	case t.Is('('):
		p.consume()

		c := p.expression()

		p.expect(')')

		return p.power(c)
	case t.Is('-'):
		p.consume()

		return arith.Neg(p.factor())
	}

	c := p.literal()

	for {
		t := p.peek()

		switch {
		case t.Is('!'):
			p.consume()
			c = p.value(arith.Factorial(c))
		case t.Is(token.DoubleBang):
			p.consume()
			c = p.value(arith.DoubleFactorial(c))
		default:
			return p.power(c)
		}
	}
}

// <power> ::= ('^' | '**') <factor>
//
// '^' raises every element of its operand; '**' multiplies the operand
// by itself, factor by independent factor.
func (p *T) power(c value.I) value.I {
	t := p.peek()

	switch {
	case t.Is('^'):
		p.consume()

		return p.value(arith.Pow(c, p.factor()))
	case t.Is(token.Mpow):
		p.consume()

		return p.value(arith.Mpow(c, p.factor()))
	}

	return c
}

// <literal> ::= Number
//             | Number '/' Number
//             | Number '..' Number '/' Number
//
// The fraction form binds tighter than division: 2/3^2 is (2/3)^2.
// It only applies when both sides are plain integers; anything else is
// left for the division operator.
func (p *T) literal() value.I {
	t := p.peek()
	if !t.Is(token.Number) {
		p.unexpected(t, "expected a number")
	}

	p.consume()

	if !p.plain(t) {
		return p.number(t)
	}

	n := p.peek()

	switch {
	case n.Is(token.DotDot):
		p.consume()

		return p.mixed(t)
	case n.Is('/') && p.plain(p.peekN(2)):
		p.consume()

		return p.fraction(t, p.consume())
	}

	return p.number(t)
}

// plain returns true if t is a number made only of digits of the
// active base.
func (p *T) plain(t *token.T) bool {
	return t.Is(token.Number) && p.input.IsValidDigitString(t.Value())
}

// mixed builds the mixed number whole..num/den.
func (p *T) mixed(whole *token.T) value.I {
	num := p.expect(token.Number)

	p.expect('/')

	den := p.expect(token.Number)

	if !p.plain(num) || !p.plain(den) {
		panic(fault.Newf(fault.MalformedLiteral, "'%s..%s/%s' is not a valid mixed number", whole.Value(), num.Value(), den.Value()))
	}

	w := p.integer(whole)
	f := p.rational(num, den)

	return arith.Demote(rational.FromBig(new(big.Rat).SetInt(w)).Add(f))
}

// fraction builds the fraction num/den.
func (p *T) fraction(num, den *token.T) value.I {
	if !p.plain(den) {
		p.unexpected(den, "expected an integer denominator")
	}

	return arith.Demote(p.rational(num, den))
}

func (p *T) integer(t *token.T) *big.Int {
	v, err := decimal.ParseInt(t.Value(), p.input)
	if err != nil {
		panic(err)
	}

	return v
}

func (p *T) rational(num, den *token.T) *rational.T {
	r, err := rational.New(p.integer(num), p.integer(den))
	if err != nil {
		panic(err)
	}

	return r
}

// number evaluates a single number token: an integer, a decimal in any
// of its marked and unmarked forms, or either with a scientific
// exponent.
func (p *T) number(t *token.T) value.I {
	text := t.Value()

	mantissa, exp, ok := p.splitExponent(text)

	var v value.I

	if p.input.IsValidDigitString(mantissa) {
		v = rational.FromBig(new(big.Rat).SetInt(p.integer(token.New(token.Number, mantissa, t.Pos()))))
	} else {
		parsed, err := decimal.Parse(mantissa, p.input)
		if err != nil {
			panic(err)
		}

		v = parsed
	}

	if !ok {
		return arith.Demote(v)
	}

	scale, err := rational.FromInt64(int64(p.input.Base())).Pow(exp)
	if err != nil {
		panic(err)
	}

	return p.value(arith.Mul(v, scale))
}

// splitExponent splits a literal into its mantissa and scientific
// exponent. The exponent marker is only recognized outside uncertainty
// brackets; its digits are read in the active base.
func (p *T) splitExponent(text string) (string, int64, bool) {
	m := p.input.ScientificMarker()

	depth := 0

	for i, r := range text {
		switch {
		case r == '[' || r == '{':
			depth++
		case r == ']' || r == '}':
			depth--
		case depth == 0 && i > 0 && (r == m || (m == 'E' && r == 'e')):
			return text[:i], p.exponentValue(text, text[i+1:]), true
		}
	}

	return text, 0, false
}

func (p *T) exponentValue(literal, s string) int64 {
	neg := false

	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	v, err := decimal.ParseInt(s, p.input)
	if err != nil {
		panic(err)
	}

	if !v.IsInt64() {
		panic(fault.Newf(fault.MalformedLiteral, "'%s' has an exponent that is too large", literal))
	}

	n := v.Int64()
	if neg {
		n = -n
	}

	return n
}
