package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common/type/integer"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

func TestEvaluate(t *testing.T) {
	for _, c := range []struct {
		expr string
		want string
	}{
		{"1/2 + 3/4", "5/4"},
		{"1/2 - 3/4", "-1/4"},
		{"2 * 3 + 4", "10"},
		{"2 * (3 + 4)", "14"},
		{"2..3/4 * 4", "11"},
		{"-2..3/4", "-11/4"},
		{"0.#3", "1/3"},
		{"0.#3 * 3", "1"},
		{"1.25#0", "5/4"},
		{"4/2", "2"},
		{"2/3^2", "4/9"},
		{"-3^2", "-9"},
		{"2^-2", "1/4"},
		{"5!", "120"},
		{"7!!", "105"},
		{"3!^2", "36"},
		{"12E2", "1200"},
		{"12E-2", "3/25"},
		{"0.{3~5}#3", "1/3"},
	} {
		v, err := Evaluate(c.expr)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.want, v.String(), c.expr)
	}
}

func TestEvaluateIntervals(t *testing.T) {
	for _, c := range []struct {
		expr string
		want string
	}{
		{"-1:1", "-1:1"},
		{"1/2:3/4", "1/2:3/4"},
		{"3/4:1/2", "1/2:3/4"},
		{"1.23", "49/40:247/200"},
		{"1.23[+-5]", "49/40:247/200"},
		{"(2/3:3/2)^2", "4/9:9/4"},
		{"(-1:2)^2", "0:4"},
		{"(-1:2)**2", "-4:8"},
		{"(2/3:3/2)**2", "8/27:27/8"},
		{"(1/2:3/4)^3", "1/8:27/64"},
		{"(1/2:3/4)**3", "1/16:81/256"},
		{"(1:2) + (3:4)", "4:6"},
		{"2 * (1:2)", "2:4"},
		{"1.5:2.5", "3/2:5/2"},
	} {
		v, err := Evaluate(c.expr)
		require.NoError(t, err, c.expr)
		require.True(t, interval.Is(v), c.expr)
		assert.Equal(t, c.want, v.String(), c.expr)
	}
}

// An interval of zero width evaluates to its scalar value.
func TestDemotion(t *testing.T) {
	v, err := Evaluate("(1:2) * 0")
	require.NoError(t, err)
	require.True(t, integer.Is(v))

	v, err = Evaluate("2:2")
	require.NoError(t, err)
	assert.True(t, integer.Is(v))

	v, err = Evaluate("1/2:2/4")
	require.NoError(t, err)
	assert.True(t, rational.Is(v))
}

func TestEvaluateErrors(t *testing.T) {
	for _, c := range []struct {
		expr string
		want string
	}{
		{"1/0", "Division by zero"},
		{"1/2 / (-1:1)", "Cannot divide by an interval containing zero"},
		{"0^0", "Zero cannot be raised to the power of zero"},
		{"0^-1", "Zero cannot be raised to a negative power"},
		{"2**0", "at least one factor required"},
		{"3^(1/2)", "Exponent must be an integer"},
		{"(-1)!", "Factorial requires a non-negative integer"},
		{"(1/2)!", "Factorial requires a non-negative integer"},
		{"1)", "unexpected ')' after expression"},
		{"(1", "unexpected end of expression: expected ')'"},
		{"2^", "unexpected end of expression: expected a number"},
		{".", "'.' has no digits"},
		{". + 1", "'.' has no digits"},
	} {
		_, err := Evaluate(c.expr)
		require.Error(t, err, c.expr)
		assert.EqualError(t, err, c.want, c.expr)
	}
}

func TestEvaluateIn(t *testing.T) {
	b16, err := base.New(16)
	require.NoError(t, err)

	for _, c := range []struct {
		expr string
		want string
	}{
		{"ff", "255"},
		{"FF", "255"},
		{"ff + 1", "256"},
		{"a/2", "5"},
		{"0.8#0", "1/2"},
		{"f@1", "240"},
	} {
		v, err := EvaluateIn(c.expr, b16)
		require.NoError(t, err, c.expr)
		assert.Equal(t, c.want, v.String(), c.expr)
	}

	b2, err := base.New(2)
	require.NoError(t, err)

	v, err := EvaluateIn("101 + 1", b2)
	require.NoError(t, err)
	assert.Equal(t, "6", v.String())
}

// The two exponentiation operators never agree on a non-point
// interval.
func TestPowOperatorsDiffer(t *testing.T) {
	for _, c := range []struct{ pow, mpow string }{
		{"(2/3:3/2)^2", "(2/3:3/2)**2"},
		{"(1/2:3/4)^3", "(1/2:3/4)**3"},
	} {
		p, err := Evaluate(c.pow)
		require.NoError(t, err, c.pow)

		m, err := Evaluate(c.mpow)
		require.NoError(t, err, c.mpow)

		assert.False(t, p.Equal(m), "%s = %s = %s", c.pow, c.mpow, p)
	}
}

// The scientific exponent scales an unmarked decimal's half-ulp
// interval along with its face value.
func TestScientificUnmarked(t *testing.T) {
	v, err := Evaluate("1.5E-1")
	require.NoError(t, err)
	assert.Equal(t, "29/200:31/200", v.String())
}

func TestWhitespaceInsignificant(t *testing.T) {
	a, err := Evaluate("1/2+3/4")
	require.NoError(t, err)

	b, err := Evaluate(" 1 / 2 + 3 / 4 ")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}
