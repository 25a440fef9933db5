package fraction

import "testing"

func mk(t *testing.T, num, den int64) *T {
	t.Helper()

	f, err := NewInt64(num, den)
	if err != nil {
		t.Fatalf("fraction %d/%d: %s", num, den, err)
	}

	return f
}

func TestUnreduced(t *testing.T) {
	f := mk(t, 2, 4)

	if got := f.String(); got != "2/4" {
		t.Errorf("2/4 = %s", got)
	}

	// Equality is structural, not mathematical.
	if f.Equal(mk(t, 1, 2)) {
		t.Error("2/4 should not equal 1/2")
	}

	if got := f.Reduce().String(); got != "1/2" {
		t.Errorf("reduce(2/4) = %s", got)
	}
}

func TestZeroDenominator(t *testing.T) {
	_, err := NewInt64(1, 0)
	if err == nil || err.Error() != "Denominator cannot be zero" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSternBrocot(t *testing.T) {
	for _, c := range []struct {
		num, den int64
		path     string
	}{
		{1, 1, ""},
		{1, 2, "L"},
		{2, 1, "R"},
		{3, 5, "LRL"},
		{22, 7, "RRRLLLLLL"},
	} {
		path, err := mk(t, c.num, c.den).Path()
		if err != nil {
			t.Fatalf("path(%d/%d): %s", c.num, c.den, err)
		}

		if path != c.path {
			t.Errorf("path(%d/%d) = %q, want %q", c.num, c.den, path, c.path)
		}

		f, err := FromPath(path)
		if err != nil {
			t.Fatal(err)
		}

		want := mk(t, c.num, c.den).Reduce().String()
		if got := f.Reduce().String(); got != want {
			t.Errorf("fromPath(%q) = %s, want %s", path, got, want)
		}
	}

	// The path of an unreduced fraction follows its value.
	path, err := mk(t, 2, 4).Path()
	if err != nil || path != "L" {
		t.Errorf("path(2/4) = %q, %v", path, err)
	}

	if _, err := mk(t, -1, 2).Path(); err == nil {
		t.Error("negative fractions are not in the tree")
	}

	if _, err := FromPath("LX"); err == nil {
		t.Error("invalid step accepted")
	}
}

func TestParent(t *testing.T) {
	p, err := mk(t, 3, 5).Parent()
	if err != nil {
		t.Fatal(err)
	}

	if got := p.String(); got != "2/3" {
		t.Errorf("parent(3/5) = %s", got)
	}

	if _, err := mk(t, 1, 1).Parent(); err == nil {
		t.Error("the root has no parent")
	}
}

func TestMediant(t *testing.T) {
	m := mk(t, 1, 2).Mediant(mk(t, 2, 3))

	if got := m.String(); got != "3/5" {
		t.Errorf("mediant(1/2, 2/3) = %s", got)
	}

	// The mediant of unreduced forms differs from the mediant of
	// their values.
	m = mk(t, 2, 4).Mediant(mk(t, 2, 3))

	if got := m.String(); got != "4/7" {
		t.Errorf("mediant(2/4, 2/3) = %s", got)
	}
}
