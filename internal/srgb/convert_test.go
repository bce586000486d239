package srgb

import (
	"math"
	"testing"
)

func floatNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestExpandEdgeCases tests edge cases of the transfer curve.
func TestExpandEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.03928, 0.03928 / 12.92},
		{"just above threshold", 0.03929, math.Pow((0.03929+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative stays linear", -0.5, -0.5 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("Expand(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 1, 1, 1, 1},
		{"red", 1, 0, 0, WeightR},
		{"green", 0, 1, 0, WeightG},
		{"blue", 0, 0, 1, WeightB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("Luminance(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLStar(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"black", 0, 0},
		{"white", 1, 100},
		{"linear segment", 0.005, 0.005 * 24389.0 / 27.0},
		{"mid", 0.18, math.Cbrt(0.18)*116 - 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LStar(tt.y)
			if !floatNear(got, tt.want, 1e-9) {
				t.Errorf("LStar(%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

// TestLStarContinuous checks that both segments meet at the break point.
func TestLStarContinuous(t *testing.T) {
	below := epsilon * kappa
	above := math.Pow(epsilon, 1.0/3.0)*116 - 16
	if !floatNear(below, above, 1e-9) {
		t.Errorf("L* discontinuous at break point: %v vs %v", below, above)
	}
}
