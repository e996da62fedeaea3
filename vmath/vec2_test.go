package vmath

import (
	"math"
	"testing"
)

func TestV2Perp(t *testing.T) {
	p := V2Perp(V2(1, 0))
	if p.X != 0 || p.Y != 1 {
		t.Errorf("Expected (0,1), got %v", p)
	}
}

func TestV2DivZeroSafe(t *testing.T) {
	got := V2Div(V2(4, 3), V2(2, 0))
	if got.X != 2 || got.Y != 0 {
		t.Errorf("Expected (2,0), got %v", got)
	}
}

func TestV2Round(t *testing.T) {
	tests := []struct {
		in   Vec2
		x, y int
	}{
		{V2(0.4, 0.6), 0, 1},
		{V2(-0.4, -0.6), 0, -1},
		{V2(9.5, 2.49), 10, 2},
	}
	for _, tt := range tests {
		x, y := V2Round(tt.in)
		if x != tt.x || y != tt.y {
			t.Errorf("V2Round(%v): expected (%d,%d), got (%d,%d)", tt.in, tt.x, tt.y, x, y)
		}
	}
}

func TestClampAndFinite(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned value outside bounds")
	}
	if Finite(math.NaN()) || Finite(math.Inf(1)) || !Finite(1) {
		t.Error("Finite misclassified value")
	}
	if V2Finite(V2(1, math.Inf(-1))) {
		t.Error("Expected infinite component to be rejected")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1e11, 1e11*(1+1e-10), 1e-9) {
		t.Error("Expected relative comparison to pass for large magnitudes")
	}
	if NearlyEqual(1, 1.1, 1e-3) {
		t.Error("Expected 1 and 1.1 to differ")
	}
	if d := V2Dist(V2(0, 0), V2(3, 4)); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}
