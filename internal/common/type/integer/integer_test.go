package integer

import "testing"

func TestFactorial(t *testing.T) {
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{10, "3628800"},
	} {
		f, err := New(c.n).Factorial()
		if err != nil {
			t.Fatalf("%d!: %s", c.n, err)
		}

		if got := f.String(); got != c.want {
			t.Errorf("%d! = %s, want %s", c.n, got, c.want)
		}
	}
}

func TestFactorialNegative(t *testing.T) {
	_, err := New(-1).Factorial()
	if err == nil || err.Error() != "Factorial requires a non-negative integer" {
		t.Errorf("unexpected error: %v", err)
	}

	_, err = New(-1).DoubleFactorial()
	if err == nil || err.Error() != "Factorial requires a non-negative integer" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDoubleFactorial(t *testing.T) {
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{6, "48"},
		{7, "105"},
	} {
		f, err := New(c.n).DoubleFactorial()
		if err != nil {
			t.Fatalf("%d!!: %s", c.n, err)
		}

		if got := f.String(); got != c.want {
			t.Errorf("%d!! = %s, want %s", c.n, got, c.want)
		}
	}
}

func TestPow(t *testing.T) {
	if got := New(2).Pow(10).String(); got != "1024" {
		t.Errorf("2^10 = %s", got)
	}

	if got := New(-3).Pow(3).String(); got != "-27" {
		t.Errorf("(-3)^3 = %s", got)
	}
}

func TestImmutable(t *testing.T) {
	a := New(3)
	b := a.Add(New(4))

	if a.String() != "3" || b.String() != "7" {
		t.Errorf("3 + 4 mutated an operand: %s, %s", a, b)
	}
}
