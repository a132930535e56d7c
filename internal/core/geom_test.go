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
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromBounds(-10, 10, 100, 150)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(0, 120), true},
		{"top-left corner", V(-10, 100), true},
		{"right edge (exclusive)", V(10, 120), false},
		{"bottom edge (exclusive)", V(0, 150), false},
		{"outside left", V(-11, 120), false},
		{"outside top", V(0, 99), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if !r.ContainsClosed(V(10, 150)) {
		t.Error("ContainsClosed should include the bottom-right corner")
	}
}

func TestRectAroundAndOffset(t *testing.T) {
	r := RectAround(V(100, 50), 20, 10)
	if r.X != 90 || r.Y != 45 || r.Right() != 110 || r.Bottom() != 55 {
		t.Errorf("RectAround() = %+v", r)
	}

	moved := r.Offset(V(-90, -45))
	if moved.X != 0 || moved.Y != 0 {
		t.Errorf("Offset() = %+v, expected origin", moved)
	}
	if c := moved.Center(); c != V(10, 5) {
		t.Errorf("Center() = %v, expected (10, 5)", c)
	}
}

func TestVecRotateAndHeading(t *testing.T) {
	const eps = 1e-9

	v := V(0, -1).Rotate(math.Pi / 2)
	if math.Abs(v.X-1) > eps || math.Abs(v.Y) > eps {
		t.Errorf("Rotate(pi/2) = %v, expected (1, 0)", v)
	}

	h := Heading(math.Pi)
	if math.Abs(h.X+1) > eps || math.Abs(h.Y) > eps {
		t.Errorf("Heading(pi) = %v, expected (-1, 0)", h)
	}

	if l := V(3, 4).Len(); l != 5 {
		t.Errorf("Len() = %f, expected 5", l)
	}
	if s := V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2); s != V(6, 10) {
		t.Errorf("Add/Sub/Scale = %v, expected (6, 10)", s)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{4.5, 0.0, 5.0, 4.5},
		{7.5, 0.0, 5.0, 5.0},
		{-1.0, 0.0, 5.0, 0.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
