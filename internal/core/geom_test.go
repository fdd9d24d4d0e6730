package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
	}{
		{"origin", NewRect(0, 0, 4, 3), 4, 3},
		{"offset", NewRect(5, 2, 10, 6), 15, 8},
		{"empty", NewRect(7, 7, 0, 0), 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.r.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b     int
		min, max int
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{-3, 0, -3, 0},
		{5, 5, 5, 5},
	}

	for _, tt := range tests {
		if got := Min(tt.a, tt.b); got != tt.min {
			t.Errorf("Min(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.min)
		}
		if got := Max(tt.a, tt.b); got != tt.max {
			t.Errorf("Max(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.max)
		}
	}
}
