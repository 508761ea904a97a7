package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(1, 2, 10, 6)

	if r.Right() != 11 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 11/8", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 6 || y != 5 {
		t.Errorf("Center() = (%d, %d), expected (6, 5)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(7, 0, 10) != 7 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF returned a value outside the range")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{0, 10, 1, 10},
		{0, 10, 2, 10},
		{3, 1, 0.5, 2},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}
