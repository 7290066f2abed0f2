package classify

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b PointClass
		want bool
	}{
		{EscapedAt(5), EscapedAt(5), true},
		{EscapedAt(5), EscapedAt(6), false},
		{PeriodicAt(2), PeriodicAt(2), true},
		{PeriodicAt(2), PeriodicAt(3), false},
		{UndeterminedClass, UndeterminedClass, true},
		{EscapedAt(1), PeriodicAt(1), false},
		{EscapedAt(0), UndeterminedClass, false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%+v.Equal(%+v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestIterate(t *testing.T) {
	// c = 0: z stays at 0 forever.
	z := Iterate(complex(0, 0), complex(0, 0), 10)
	if z != complex(0, 0) {
		t.Fatalf("Iterate(0,0,10) = %v, want 0", z)
	}
}

func TestClassifyOriginIsPeriodOne(t *testing.T) {
	// c = 0 is the fixed point z=0 of the main cardioid: multiplier 2z = 0
	// at every orbit point, so the period-1 test must pass immediately.
	pc := Classify(complex(0, 0), Params{Iterations: 1000, MaxPeriod: 20})
	if pc.Kind != Periodic || pc.Period != 1 {
		t.Fatalf("Classify(0) = %+v, want Periodic{1}", pc)
	}
}

func TestClassifyEscapesQuickly(t *testing.T) {
	// c = 3 leaves the escape radius after one iteration: z1 = 3, |z1|^2 = 9.
	pc := Classify(complex(3, 0), Params{Iterations: 1000, MaxPeriod: 20})
	if pc.Kind != Escaped {
		t.Fatalf("Classify(3) = %+v, want Escaped", pc)
	}
	if pc.EscapeTime > 3 {
		t.Fatalf("Classify(3).EscapeTime = %d, want a small escape time", pc.EscapeTime)
	}
}

func TestClassifyNeverEscapesAtMinusTwo(t *testing.T) {
	// c = -2 is the tip of the real axis: the orbit 0 -> -2 -> 2 -> 2 -> ...
	// stays exactly on |z|^2 = 4 and never exceeds it, so it must never be
	// classified Escaped, whatever the period test decides.
	pc := Classify(complex(-2, 0), Params{Iterations: 1000, MaxPeriod: 8})
	if pc.Kind == Escaped {
		t.Fatalf("Classify(-2) = %+v, want non-Escaped (interior)", pc)
	}
}

func TestScenarioOneQuickEscape(t *testing.T) {
	// End-to-end scenario 1 (spec §8): W=H=16, viewport (-2,1,-1.5,1.5),
	// pixel (15,0) maps to c ~= 1 - 1.5i, which must escape with a small
	// escape time.
	w, h := 16, 16
	xmin, xmax, ymin, ymax := -2.0, 1.0, -1.5, 1.5
	i, j := 15, 0
	x := xmin + (float64(i)/float64(w))*(xmax-xmin)
	y := ymin + (float64(j)/float64(h))*(ymax-ymin)
	pc := Classify(complex(x, y), Params{Iterations: 1000, MaxPeriod: 8})
	if pc.Kind != Escaped {
		t.Fatalf("Classify(%v) = %+v, want Escaped", complex(x, y), pc)
	}
	if pc.EscapeTime > 5 {
		t.Fatalf("Classify(%v).EscapeTime = %d, want small", complex(x, y), pc.EscapeTime)
	}
}
