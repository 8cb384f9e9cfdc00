package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        RectF{X: 0, Y: 0, W: 50, H: 50},
			b:        RectF{X: 40, Y: 40, W: 30, H: 30},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectF{X: 0, Y: 0, W: 50, H: 50},
			b:        RectF{X: 60, Y: 0, W: 30, H: 30},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectF{X: 0, Y: 0, W: 50, H: 50},
			b:        RectF{X: 0, Y: 60, W: 30, H: 30},
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        RectF{X: 0, Y: 0, W: 50, H: 50},
			b:        RectF{X: 50, Y: 0, W: 30, H: 30},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        RectF{X: 0, Y: 0, W: 100, H: 100},
			b:        RectF{X: 10, Y: 10, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
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
		{5.5, 0.0, 350.0, 5.5},
		{-8.0, 0.0, 350.0, 0.0},
		{358.0, 0.0, 350.0, 350.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		expected bool
	}{
		{StatusIdle, StatusActive, true},
		{StatusIdle, StatusEnded, false},
		{StatusIdle, StatusPaused, false},
		{StatusActive, StatusPaused, true},
		{StatusActive, StatusEnded, true},
		{StatusActive, StatusIdle, false},
		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusEnded, true},
		{StatusEnded, StatusActive, false},
		{StatusEnded, StatusPaused, false},
	}

	for _, tc := range tests {
		if got := CanTransition(tc.from, tc.to); got != tc.expected {
			t.Errorf("CanTransition(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
		}
	}
}
