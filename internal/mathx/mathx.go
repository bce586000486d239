// Package mathx provides floating-point helpers shared by the conversion code.
package mathx

import "math"

// SafeDiv returns num/den, or fallback when the quotient is NaN or infinite.
//
// The check is made on the quotient rather than on den so that every way of
// producing a non-finite result (0/0, x/0, Inf/Inf, overflow) takes the
// same path.
func SafeDiv(num, den, fallback float64) float64 {
	q := num / den
	if !IsFinite(q) {
		return fallback
	}
	return q
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Finite returns x, or fallback when x is NaN or infinite.
func Finite(x, fallback float64) float64 {
	if !IsFinite(x) {
		return fallback
	}
	return x
}

// RoundHalfUp rounds x to the nearest integer, with halves rounded towards
// positive infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Sector returns floor(x) reduced into [0, 6).
func Sector(x float64) int {
	i := int(math.Floor(x)) % 6
	if i < 0 {
		i += 6
	}
	return i
}

// Min3 returns the smallest of a, b and c.
func Min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

// Max3 returns the largest of a, b and c.
func Max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
