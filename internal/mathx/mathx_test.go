package mathx

import (
	"math"
	"testing"
)

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name         string
		num, den, fb float64
		want         float64
	}{
		{"regular", 1, 4, 0, 0.25},
		{"negative", -3, 2, 0, -1.5},
		{"zero over zero", 0, 0, 0, 0},
		{"one over zero", 1, 0, 0, 0},
		{"minus one over zero", -1, 0, 7, 7},
		{"custom fallback", 0, 0, 1, 1},
		{"inf numerator", math.Inf(1), 2, 3, 3},
		{"nan numerator", math.NaN(), 2, 5, 5},
		{"overflow", math.MaxFloat64, 1e-300, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDiv(tt.num, tt.den, tt.fb)
			if got != tt.want {
				t.Errorf("SafeDiv(%v, %v, %v) = %v, want %v", tt.num, tt.den, tt.fb, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	for _, x := range []float64{0, 1, -1, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		if !IsFinite(x) {
			t.Errorf("IsFinite(%v) = false, want true", x)
		}
	}
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(x) {
			t.Errorf("IsFinite(%v) = true, want false", x)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1.49, 1},
		{127.5, 128},
		{-0.5, 0},
		{-1.5, -1},
		{-1.51, -2},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSector(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{5.99, 5},
		{6, 0},
		{7.5, 1},
		{-0.5, 5},
		{-6, 0},
	}
	for _, tt := range tests {
		if got := Sector(tt.in); got != tt.want {
			t.Errorf("Sector(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinMax3(t *testing.T) {
	if got := Min3(0.3, 0.1, 0.2); got != 0.1 {
		t.Errorf("Min3 = %v, want 0.1", got)
	}
	if got := Max3(0.3, 0.1, 0.7); got != 0.7 {
		t.Errorf("Max3 = %v, want 0.7", got)
	}
}
