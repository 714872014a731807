package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{
			name:     "inside",
			r:        NewRect(0, 0, 10, 10),
			x:        5,
			y:        5,
			expected: true,
		},
		{
			name:     "top-left corner",
			r:        NewRect(0, 0, 10, 10),
			x:        0,
			y:        0,
			expected: true,
		},
		{
			name:     "right edge (exclusive)",
			r:        NewRect(0, 0, 10, 10),
			x:        10,
			y:        5,
			expected: false,
		},
		{
			name:     "bottom edge (exclusive)",
			r:        NewRect(0, 0, 10, 10),
			x:        5,
			y:        10,
			expected: false,
		},
		{
			name:     "outside",
			r:        NewRect(5, 5, 10, 10),
			x:        2,
			y:        2,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: -1, Y: 2}
	got := p.Add(q)
	if got != (Point{X: 2, Y: 6}) {
		t.Errorf("Add() = %+v, expected {2 6}", got)
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(0, 0, 10, 6).Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center() = (%d, %d), expected (5, 3)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, expected 10", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(120.5, 0, 100); got != 100 {
		t.Errorf("ClampF(120.5, 0, 100) = %v, expected 100", got)
	}
	if got := ClampF(-0.1, 0, 100); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 100) = %v, expected 0", got)
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs() broken")
	}
	if Min(2, 5) != 2 || Max(2, 5) != 5 {
		t.Error("Min/Max broken")
	}
}
