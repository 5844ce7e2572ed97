package aggregate

import "testing"

func TestProject(t *testing.T) {
	p := Project(10000000, 2000000)
	if p.Months != 5 {
		t.Errorf("months = %d, want 5", p.Months)
	}
	if len(p.Saved) != 5 {
		t.Fatalf("saved series length = %d, want 5", len(p.Saved))
	}
	want := []float64{2000000, 4000000, 6000000, 8000000, 10000000}
	for i := range want {
		if p.Saved[i] != want[i] {
			t.Errorf("saved[%d] = %v, want %v", i, p.Saved[i], want[i])
		}
	}
}

func TestProjectFloorsPartialMonths(t *testing.T) {
	// Whole contributions only: 10jt at 3jt/bulan counts 3 full months.
	p := Project(10000000, 3000000)
	if p.Months != 3 {
		t.Errorf("months = %d, want 3", p.Months)
	}
}

func TestProjectContributionLargerThanTarget(t *testing.T) {
	p := Project(1000, 5000)
	if p.Months != 0 || len(p.Saved) != 0 {
		t.Errorf("expected an empty series, got %+v", p)
	}
}

func TestProjectRejectsNonPositiveInputs(t *testing.T) {
	cases := []struct{ target, perMonth float64 }{
		{0, 1000},
		{1000, 0},
		{-1, 1000},
		{1000, -1},
	}
	for _, tc := range cases {
		p := Project(tc.target, tc.perMonth)
		if p.Months != 0 || len(p.Saved) != 0 {
			t.Errorf("Project(%v, %v) should be empty, got %+v", tc.target, tc.perMonth, p)
		}
	}
}
