package format

import (
	"testing"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common/type/interval"
	"github.com/ratmath/ratmath/internal/common/type/rational"
)

func rat(t *testing.T, num, den int64) *rational.T {
	t.Helper()

	r, err := rational.NewInt64(num, den)
	if err != nil {
		t.Fatalf("rational %d/%d: %s", num, den, err)
	}

	return r
}

func TestMixed(t *testing.T) {
	for _, c := range []struct {
		num, den int64
		want     string
	}{
		{11, 4, "2..3/4"},
		{-11, 4, "-2..3/4"},
		{3, 4, "3/4"},
		{-3, 4, "-3/4"},
		{5, 1, "5"},
		{0, 1, "0"},
	} {
		if got := Mixed(rat(t, c.num, c.den)); got != c.want {
			t.Errorf("mixed(%d/%d) = %s, want %s", c.num, c.den, got, c.want)
		}
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed(rat(t, 1, 3), base.Ten, 4); got != "0.3333" {
		t.Errorf("fixed(1/3) = %s", got)
	}

	v := interval.New(rat(t, 1, 3), rat(t, 1, 2))

	if got := Fixed(v, base.Ten, 2); got != "0.33:0.50" {
		t.Errorf("fixed(1/3:1/2) = %s", got)
	}
}

func TestRepeating(t *testing.T) {
	s, err := Repeating(rat(t, 1, 7), base.Ten)
	if err != nil {
		t.Fatal(err)
	}

	if s != "0.#142857" {
		t.Errorf("repeating(1/7) = %s", s)
	}

	v := interval.New(rat(t, 1, 3), rat(t, 1, 2))

	s, err = Repeating(v, base.Ten)
	if err != nil {
		t.Fatal(err)
	}

	if s != "0.#3:0.5#0" {
		t.Errorf("repeating(1/3:1/2) = %s", s)
	}
}

func TestRepeatingWithPeriod(t *testing.T) {
	s, period, err := RepeatingWithPeriod(rat(t, 1, 7), base.Ten)
	if err != nil {
		t.Fatal(err)
	}

	if s != "0.#142857" || period != 6 {
		t.Errorf("repeating(1/7) = %s, period %d", s, period)
	}
}

func TestContinuedFraction(t *testing.T) {
	if got := ContinuedFraction(rat(t, 355, 113)); got != "[3; 7, 16]" {
		t.Errorf("contfrac(355/113) = %s", got)
	}
}

func TestScientific(t *testing.T) {
	for _, c := range []struct {
		num, den  int64
		precision int
		want      string
	}{
		{123456, 1, 5, "1.2346E5"},
		{123456, 1, 2, "1.2E5"},
		{1, 8, 3, "1.25E-1"},
		{-1, 8, 3, "-1.25E-1"},
		{0, 1, 3, "0.00E0"},
		{999, 10, 2, "1.0E2"},
		{5, 1, 3, "5.00E0"},
	} {
		if got := Scientific(rat(t, c.num, c.den), c.precision); got != c.want {
			t.Errorf("scientific(%d/%d, %d) = %s, want %s", c.num, c.den, c.precision, got, c.want)
		}
	}
}
