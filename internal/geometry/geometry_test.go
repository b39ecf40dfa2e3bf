package geometry

import "testing"

func TestInchToPt(t *testing.T) {
	if got := InchToPt(1); got != 72 {
		t.Errorf("InchToPt(1) = %v, want 72", got)
	}
}

func TestMMToPt(t *testing.T) {
	got := MMToPt(25.4)
	if got < 71.999 || got > 72.001 {
		t.Errorf("MMToPt(25.4) = %v, want ~72", got)
	}
}

func TestNewRectRejectsNonPositive(t *testing.T) {
	if _, err := NewRect(0, 0, 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewRect(0, 0, 10, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestRectContains(t *testing.T) {
	r, err := NewRect(0, 0, 100, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(Point{X: 50, Y: 25}) {
		t.Error("expected point inside rect to be contained")
	}
	if r.Contains(Point{X: 150, Y: 25}) {
		t.Error("expected point outside rect to not be contained")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer, _ := NewRect(0, 0, 100, 100)
	inner, _ := NewRect(10, 10, 20, 20)
	if !outer.ContainsRect(inner) {
		t.Error("expected outer to contain inner")
	}
	if inner.ContainsRect(outer) {
		t.Error("expected inner to not contain outer")
	}
}

func TestMaxUnitsAlong(t *testing.T) {
	cases := []struct {
		available, item, gutter float64
		want                     int
	}{
		{100, 20, 0, 5},
		{100, 30, 5, 3}, // (100+5)/(30+5) = 3.0 -> 3
		{10, 0, 0, 0},
	}
	for _, c := range cases {
		if got := MaxUnitsAlong(c.available, c.item, c.gutter); got != c.want {
			t.Errorf("MaxUnitsAlong(%v,%v,%v) = %d, want %d", c.available, c.item, c.gutter, got, c.want)
		}
	}
}

func TestFitsTolerance(t *testing.T) {
	if !Fits(10, 10, 10.0000001, 10.0000001) {
		t.Error("expected near-exact fit within tolerance")
	}
	if Fits(11, 10, 10, 10) {
		t.Error("expected oversized block to not fit")
	}
}

func TestCenterFit(t *testing.T) {
	p := CenterFit(100, 50, 40, 20)
	if p.X != 30 || p.Y != 15 {
		t.Errorf("CenterFit = %+v, want {30 15}", p)
	}
}
