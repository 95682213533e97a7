package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"inside", Vec{15, 15}, true},
		{"top-left corner", Vec{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec{30, 25}, false},
		{"outside left", Vec{5, 15}, false},
		{"outside bottom", Vec{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec{50, 40}, 20, 10)

	if r.Left() != 40 || r.Right() != 60 {
		t.Errorf("horizontal edges = (%v, %v), expected (40, 60)", r.Left(), r.Right())
	}
	if r.Top() != 35 || r.Bottom() != 45 {
		t.Errorf("vertical edges = (%v, %v), expected (35, 45)", r.Top(), r.Bottom())
	}
	if c := r.Center(); c != (Vec{50, 40}) {
		t.Errorf("Center() = %v, expected (50, 40)", c)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-90, 270},
		{-720, 0},
		{1e-13 - 360, 1e-13},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeAngle(%v) = %v, out of [0, 360)", tc.in, got)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},     // within range
		{-5, 0, 10, 0},    // below min
		{15.5, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(0)
	c.Advance(16)
	c.Advance(-100) // ignored
	if c.Now() != 16 {
		t.Errorf("Now() = %v, expected 16ns", c.Now())
	}
}
