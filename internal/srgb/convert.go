// Package srgb implements the sRGB transfer curve and the CIE lightness
// function used by the perceptual metrics.
//
// The transfer curve follows WCAG 2.x, which uses 0.03928 as the threshold
// of the linear segment rather than the 0.04045 of IEC 61966-2-1. The two
// agree for every 8-bit input.
//
// References:
//   - WCAG 2.1 relative luminance: https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
//   - CIE 1976 L*: https://en.wikipedia.org/wiki/CIELAB_color_space
package srgb

import "math"

// Threshold is the upper end of the linear segment of the transfer curve.
const Threshold = 0.03928

// Luminance weights for linear R, G and B (Rec. 709 primaries).
const (
	WeightR = 0.2126
	WeightG = 0.7152
	WeightB = 0.0722
)

// CIE lightness constants, as exact fractions.
const (
	epsilon = 216.0 / 24389.0
	kappa   = 24389.0 / 27.0
)

// Expand converts a gamma-encoded channel to linear light.
// Formula: if c <= 0.03928: c/12.92; else: pow((c+0.055)/1.055, 2.4)
// The input is not clamped.
func Expand(c float64) float64 {
	if c <= Threshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of a gamma-encoded color.
func Luminance(r, g, b float64) float64 {
	return WeightR*Expand(r) + WeightG*Expand(g) + WeightB*Expand(b)
}

// LStar converts a relative luminance Y to CIE lightness L*.
// The result is in [0, 100] for Y in [0, 1].
func LStar(y float64) float64 {
	if y <= epsilon {
		return y * kappa
	}
	return math.Pow(y, 1.0/3.0)*116 - 16
}
